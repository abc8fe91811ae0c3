package main

import (
	"fmt"
	"os"

	"greetcard/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath  string
	contentPath string
	themeName   string
	seed        uint64
	watch       bool
	verbose     bool
	noAltScreen bool

	// Loaded in PersistentPreRunE
	cfg *config.Config

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd plays the greeting
var rootCmd = &cobra.Command{
	Use:   "greet",
	Short: "An animated birthday greeting for the terminal",
	Long: `greet plays a scripted birthday greeting: a few timed messages, a sky of
balloons, a cake that opens after enough taps, confetti and a closing note.

Tap the cake with the mouse or with space/enter. Press r on the last screen
to play it again, q to quit.

Run without arguments to start the greeting.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config init rewrites the file, so it must not depend on it parsing
		if cmd != configInitCmd {
			if err := loadConfig(cmd); err != nil {
				return err
			}
		}

		// The greeting owns the terminal; it logs to files only
		if !cmd.HasParent() {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .greet/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Script YAML file (or set GREET_CONTENT)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme: auto, light or dark")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Decoration seed (0 = random)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the script file when it changes")
	rootCmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "Draw inline instead of on the alternate screen")

	scriptCmd.Flags().BoolVar(&scriptRaw, "raw", false, "Print the Markdown source instead of rendering it")
	timelineCmd.Flags().IntVar(&timelineTaps, "taps", -1, "Taps to send at the cake (default: the configured total)")

	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and layers explicit flags over it.
func loadConfig(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("content") {
		loaded.ContentPath = contentPath
	}
	if flags.Changed("theme") {
		loaded.UI.Theme = themeName
	}
	if flags.Changed("seed") {
		loaded.Seed = seed
	}
	if flags.Changed("watch") {
		loaded.WatchContent = watch
	}
	if flags.Changed("no-alt-screen") {
		loaded.UI.AltScreen = !noAltScreen
	}
	if verbose {
		loaded.Logging.DebugMode = true
		loaded.Logging.Level = "debug"
	}

	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}
