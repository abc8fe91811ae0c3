package main

import (
	"fmt"
	"os"

	"greetcard/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configForce bool

// configCmd groups config helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the greet configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Writes the default configuration to --config, or to .greet/config.yaml
when no path is given. An existing file is kept unless --force is set.`,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logger.Info("wrote config", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
