package show

import (
	"github.com/charmbracelet/bubbles/key"

	"greetcard/internal/sequencer"
)

// keyMap defines the greeting's keybindings. Bindings are enabled per phase
// so the help footer only lists what currently does something.
type keyMap struct {
	Tap    key.Binding
	Replay key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Tap: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/click", "tap the cake"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "replay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forPhase enables the bindings that apply in p.
func (k keyMap) forPhase(p sequencer.Phase) keyMap {
	k.Tap.SetEnabled(p == sequencer.PhaseCake)
	k.Replay.SetEnabled(p == sequencer.PhaseFinal)
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Replay, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tap, k.Replay}, {k.Help, k.Quit}}
}
