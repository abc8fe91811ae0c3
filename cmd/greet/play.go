package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"

	"greetcard/cmd/greet/show"
	"greetcard/cmd/greet/ui"
	"greetcard/internal/content"
	"greetcard/internal/decor"
	"greetcard/internal/logging"
	"greetcard/internal/sequencer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// runPlay runs the greeting until the user quits.
func runPlay(cmd *cobra.Command, args []string) error {
	if err := initLogging(cmd.ErrOrStderr()); err != nil {
		return err
	}
	defer logging.CloseAll()

	timer := logging.StartTimer(logging.CategoryBoot, "boot")
	script, err := loadScript()
	if err != nil {
		logging.BootError("script load failed: %v", err)
		return err
	}
	model := newModel(script)
	timer.Stop()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM)
	defer stop()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	// The watcher lives exactly as long as the program.
	watchCtx, cancelWatch := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(watchCtx)

	g.Go(func() error {
		defer cancelWatch()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	if cfg.WatchContent && cfg.ContentPath != "" {
		w, err := content.NewWatcher(cfg.ContentPath, func(s *content.Script) {
			p.Send(show.ScriptMsg{Script: s})
		})
		if err != nil {
			// Play on without hot reload.
			logging.ContentWarn("hot reload disabled: %v", err)
		} else {
			g.Go(func() error { return w.Run(gctx) })
		}
	}

	logging.Boot("playing (theme=%s seed=%d watch=%v)", cfg.UI.Theme, cfg.Seed, cfg.WatchContent)
	return g.Wait()
}

// initLogging opens the file loggers. In debug mode it names the log
// directory on w before the greeting takes over the terminal.
func initLogging(w io.Writer) error {
	if err := logging.Initialize(cfg.Logging.Dir, cfg.Logging.ToLogging()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if logging.IsDebugMode() {
		fmt.Fprintf(w, "Debug logs: %s\n", filepath.Join(cfg.Logging.Dir, "logs"))
	}
	return nil
}

// loadScript returns the configured script, or the built-in one.
func loadScript() (*content.Script, error) {
	if cfg.ContentPath == "" {
		return content.Default(), nil
	}
	s, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, err
	}
	logging.Content("loaded script %s: %d intro, %d outro", cfg.ContentPath, len(s.Intro), len(s.Outro))
	return s, nil
}

// newSequencer wires the configured timings and decoration counts.
func newSequencer(script *content.Script) *sequencer.Sequencer {
	gen := decor.NewGenerator(cfg.Seed).WithCounts(cfg.Timing.Balloons, cfg.Timing.Confetti)
	return sequencer.New(cfg.SequencerConfig(len(script.Intro), len(script.Outro)), gen)
}

func newModel(script *content.Script) show.Model {
	return show.New(show.Options{
		Sequencer:     newSequencer(script),
		Script:        script,
		Styles:        ui.NewStyles(ui.ThemeFor(cfg.UI.Theme)),
		FrameInterval: cfg.GetFrameInterval(),
	})
}
