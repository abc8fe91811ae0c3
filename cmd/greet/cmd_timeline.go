package main

import (
	"fmt"
	"strconv"

	"greetcard/cmd/greet/ui"
	"greetcard/internal/sequencer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var timelineTaps int

// timelineCmd simulates a full run
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the timeline of a simulated run",
	Long: `Runs the sequence on a virtual clock and prints every transition with
its time offset. Taps are sent as soon as the cake appears.

Example:
  greet timeline
  greet timeline --taps 3   # stops at the cake`,
	RunE: runTimeline,
}

func runTimeline(cmd *cobra.Command, args []string) error {
	script, err := loadScript()
	if err != nil {
		return err
	}
	seq := newSequencer(script)
	taps := timelineTaps
	if taps < 0 {
		taps = seq.Config().TotalTaps
	}

	entries := sequencer.Simulate(seq, taps)
	logger.Debug("simulated run", zap.Int("entries", len(entries)), zap.Int("taps", taps))

	table := ui.NewTable(script.Title, "At", "Event", "Phase", "Message", "Taps")
	for _, e := range entries {
		table.AddRow(
			e.At.String(),
			e.Event,
			e.State.Phase.String(),
			strconv.Itoa(e.State.MessageIndex),
			strconv.Itoa(e.State.TapCount),
		)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View(ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))))

	last := entries[len(entries)-1].State
	if last.Phase != sequencer.PhaseFinal {
		fmt.Fprintf(cmd.OutOrStdout(), "\nStopped in %s with %d taps to go.\n", last.Phase, seq.TapsRemaining(last))
	}
	return nil
}
