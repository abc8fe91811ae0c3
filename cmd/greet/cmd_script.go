package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scriptRaw bool

// scriptCmd prints the greeting script
var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Print the greeting script as Markdown",
	Long: `Renders every message, caption and the cake art of the active script
(the built-in one, or --content) as a Markdown document.

Example:
  greet script --content birthday.yaml
  greet script --raw > birthday.md`,
	RunE: runScript,
}

func runScript(cmd *cobra.Command, args []string) error {
	script, err := loadScript()
	if err != nil {
		return err
	}
	md := script.Markdown(cfg.Timing.TotalTaps)
	if scriptRaw {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	renderer, err := newRenderer(cfg.UI.Theme)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render script: %w", err)
	}
	logger.Debug("rendered script", zap.Int("bytes", len(out)), zap.String("theme", cfg.UI.Theme))
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func newRenderer(theme string) (*glamour.TermRenderer, error) {
	style := glamour.WithAutoStyle()
	switch theme {
	case "dark", "light":
		style = glamour.WithStandardStyle(theme)
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
}
