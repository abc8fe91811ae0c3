package show

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"greetcard/internal/logging"
	"greetcard/internal/sequencer"
)

// Update routes input, timers and frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case timerMsg:
		return m.apply(sequencer.TimerFired{Epoch: msg.epoch})

	case frameMsg:
		m.now = time.Time(msg)
		m.rise, m.riseVel = m.spring.Update(m.rise, m.riseVel, 0)
		m.press, m.pressVel = m.spring.Update(m.press, m.pressVel, 0)
		return m, m.tickFrame()

	case ScriptMsg:
		if msg.Script == nil {
			return m, nil
		}
		m.script = msg.Script
		logging.Content("script reloaded: %d intro, %d outro", len(msg.Script.Intro), len(msg.Script.Outro))
		return m.apply(sequencer.ContentChanged{Intro: len(msg.Script.Intro), Outro: len(msg.Script.Outro)})

	case tea.KeyMsg:
		keys := m.keys.forPhase(m.state.Phase)
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			m.log.Info("quit in phase %s", m.state.Phase)
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, keys.Tap):
			return m.tap()
		case key.Matches(msg, keys.Replay):
			return m.apply(sequencer.Replay{})
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.layout().target.Contains(msg.X, msg.Y) {
			return m, nil
		}
		switch m.state.Phase {
		case sequencer.PhaseCake:
			return m.tap()
		case sequencer.PhaseFinal:
			return m.apply(sequencer.Replay{})
		}
		return m, nil
	}
	return m, nil
}

func (m Model) tap() (tea.Model, tea.Cmd) {
	if m.state.Phase != sequencer.PhaseCake {
		return m, nil
	}
	m.press, m.pressVel = tapPulse, 0
	logging.UIDebug("tap %d/%d", m.state.TapCount+1, m.seq.Config().TotalTaps)
	return m.apply(sequencer.Tap{})
}

// apply feeds ev to the sequencer and schedules whatever timer it asks for.
func (m Model) apply(ev sequencer.Event) (tea.Model, tea.Cmd) {
	prev := m.state
	next, timer := m.seq.Step(prev, ev)
	m.state = next

	if prev.Phase == sequencer.PhaseFinal && next.Phase != sequencer.PhaseFinal {
		m.newRun()
		m.log.Info("replay")
	}
	if next.Phase != prev.Phase {
		m.log.Info("phase %s -> %s", prev.Phase, next.Phase)
	}
	if next.Phase != prev.Phase || next.MessageIndex != prev.MessageIndex {
		m.rise, m.riseVel = riseStart, 0
	}
	if len(prev.Balloons) == 0 && len(next.Balloons) > 0 {
		m.balloonsAt = m.now
	}
	if len(prev.Confetti) == 0 && len(next.Confetti) > 0 {
		m.confettiAt = m.now
	}
	if timer != nil {
		logging.SequencerDebug("armed %s timer epoch=%d delay=%s", timer.Phase, timer.Epoch, timer.Delay)
	}
	return m, schedule(timer)
}
