// Package show hosts the greeting in a bubbletea program. It owns the
// sequencer state, turns sequencer timers into tea.Tick commands, and draws
// each phase over the particle fields.
package show

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"greetcard/cmd/greet/ui"
	"greetcard/internal/content"
	"greetcard/internal/logging"
	"greetcard/internal/sequencer"
)

const (
	// riseStart is how many rows below center a new message starts.
	riseStart = 3.0
	// tapPulse is the cake press amount set on every tap.
	tapPulse = 1.0
)

// Options configures a Model.
type Options struct {
	Sequencer     *sequencer.Sequencer
	Script        *content.Script
	Styles        ui.Styles
	FrameInterval time.Duration
	Now           func() time.Time
}

// Model is the bubbletea model for one greeting session.
type Model struct {
	seq    *sequencer.Sequencer
	state  sequencer.State
	script *content.Script
	first  *sequencer.Timer

	styles   ui.Styles
	keys     keyMap
	help     help.Model
	progress progress.Model

	width, height int
	frame         time.Duration
	now           time.Time
	balloonsAt    time.Time
	confettiAt    time.Time

	spring          harmonica.Spring
	rise, riseVel   float64
	press, pressVel float64

	runID    string
	log      *logging.Logger
	quitting bool
}

// New builds the model and mounts the sequencer.
func New(opts Options) Model {
	if opts.Script == nil {
		opts.Script = content.Default()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 50 * time.Millisecond
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	fps := max(int(time.Second/opts.FrameInterval), 1)
	m := Model{
		seq:    opts.Sequencer,
		script: opts.Script,
		styles: opts.Styles,
		keys:   defaultKeyMap(),
		help:   help.New(),
		progress: progress.New(
			progress.WithGradient(string(ui.Rose), string(ui.Purple)),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),
		frame:  opts.FrameInterval,
		now:    now(),
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.6),
		rise:   riseStart,
	}
	m.help.Styles.ShortKey = m.styles.HelpStyle
	m.help.Styles.ShortDesc = m.styles.HelpStyle
	m.newRun()

	m.state, m.first = m.seq.Start()
	m.log.Info("mounted in phase %s", m.state.Phase)
	return m
}

// ScriptMsg replaces the script while the greeting is running.
type ScriptMsg struct{ Script *content.Script }

// timerMsg is delivered when a sequencer timer elapses.
type timerMsg struct{ epoch uint64 }

// frameMsg advances animations only; it never touches phase state.
type frameMsg time.Time

// Init starts the first sequencer timer and the frame clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.script.Title),
		schedule(m.first),
		m.tickFrame(),
	)
}

// State returns the current sequencer state.
func (m Model) State() sequencer.State { return m.state }

// RunID identifies the current playthrough in logs.
func (m Model) RunID() string { return m.runID }

func (m *Model) newRun() {
	m.runID = uuid.NewString()
	m.log = logging.Get(logging.CategorySequencer).With(zap.String("run", m.runID))
}

func (m Model) tickFrame() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func schedule(t *sequencer.Timer) tea.Cmd {
	if t == nil {
		return nil
	}
	epoch := t.Epoch
	return tea.Tick(t.Delay, func(time.Time) tea.Msg { return timerMsg{epoch: epoch} })
}
