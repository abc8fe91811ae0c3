// Package sequencer drives the greeting through its fixed narrative.
//
// Step takes the current State and an Event and returns the next State plus,
// at most, one Timer for the host to schedule. The only thing it keeps outside
// State is the message counts of the active script, which ContentChanged
// replaces. Every phase entry stamps a new epoch; a TimerFired carrying any
// other epoch is stale and ignored. That is the only cancellation mechanism,
// so hosts never need to stop a timer they already scheduled.
package sequencer

import (
	"time"

	"greetcard/internal/decor"
)

// Config holds the sequence timing and the shape of the script.
type Config struct {
	IntroCount   int
	OutroCount   int
	MessageDelay time.Duration
	PhaseDelay   time.Duration
	TotalTaps    int
}

// DefaultConfig returns the stock timings. Message counts match the built-in
// script (7 intro, 4 outro).
func DefaultConfig() Config {
	return Config{
		IntroCount:   7,
		OutroCount:   4,
		MessageDelay: 3000 * time.Millisecond,
		PhaseDelay:   5000 * time.Millisecond,
		TotalTaps:    18,
	}
}

// Generator supplies decoration sets on phase entry.
type Generator interface {
	Balloons() []decor.Item
	Confetti() []decor.Item
}

// State is the whole in-memory presentation state.
type State struct {
	Phase        Phase
	MessageIndex int
	TapCount     int
	Balloons     []decor.Item
	Confetti     []decor.Item
	Epoch        uint64
}

// Timer asks the host to deliver TimerFired{Epoch} after Delay.
type Timer struct {
	Epoch uint64
	Delay time.Duration
	Phase Phase
}

// Event is an input to Step.
type Event interface{ isEvent() }

type (
	// TimerFired is delivered when a scheduled Timer elapses.
	TimerFired struct{ Epoch uint64 }
	// Tap is one user tap on the cake.
	Tap struct{}
	// Replay restarts the sequence from the final phase.
	Replay struct{}
	// ContentChanged carries new message list lengths after a script reload.
	ContentChanged struct{ Intro, Outro int }
)

func (TimerFired) isEvent()     {}
func (Tap) isEvent()            {}
func (Replay) isEvent()         {}
func (ContentChanged) isEvent() {}

// Sequencer owns the transition rules.
type Sequencer struct {
	cfg Config
	gen Generator
}

// New creates a sequencer. TotalTaps below 1 is raised to 1.
func New(cfg Config, gen Generator) *Sequencer {
	if cfg.TotalTaps < 1 {
		cfg.TotalTaps = 1
	}
	return &Sequencer{cfg: cfg, gen: gen}
}

// Config returns the active configuration.
func (s *Sequencer) Config() Config { return s.cfg }

// Start returns the mount state and its first timer.
func (s *Sequencer) Start() (State, *Timer) {
	return s.enter(State{Phase: PhaseIntro})
}

// Step applies ev to st. A nil Timer means nothing new to schedule; a timer
// already pending for st.Epoch stays valid. ContentChanged also updates the
// message counts used by every later Step.
func (s *Sequencer) Step(st State, ev Event) (State, *Timer) {
	switch ev := ev.(type) {
	case TimerFired:
		if ev.Epoch != st.Epoch {
			return st, nil
		}
		return s.fire(st)

	case Tap:
		if st.Phase != PhaseCake {
			return st, nil
		}
		if st.TapCount < s.cfg.TotalTaps-1 {
			st.TapCount++
			return st, nil
		}
		st.TapCount = s.cfg.TotalTaps
		return s.enter(advance(st, PhaseCelebration))

	case Replay:
		if !st.Phase.CanTransitionTo(PhaseIntro) {
			return st, nil
		}
		return s.enter(State{Phase: PhaseIntro, Epoch: st.Epoch})

	case ContentChanged:
		s.cfg.IntroCount = max(ev.Intro, 0)
		s.cfg.OutroCount = max(ev.Outro, 0)
		if st.Phase.HasMessages() && st.MessageIndex >= s.messageCount(st.Phase) {
			return s.enter(st)
		}
		return st, nil
	}
	return st, nil
}

// TapsRemaining is the countdown shown on the cake. It reaches 0 only once
// the gate has opened.
func (s *Sequencer) TapsRemaining(st State) int {
	return max(s.cfg.TotalTaps-st.TapCount, 0)
}

func (s *Sequencer) fire(st State) (State, *Timer) {
	switch st.Phase {
	case PhaseIntro, PhaseOutro:
		st.MessageIndex++
		return s.enter(st)
	case PhaseBalloons:
		return s.enter(advance(st, PhaseCake))
	case PhaseCelebration:
		return s.enter(advance(st, PhaseOutro))
	}
	return st, nil
}

// enter runs the onEnter action for st.Phase. It always takes a fresh epoch,
// which invalidates whatever timer the previous state armed.
func (s *Sequencer) enter(st State) (State, *Timer) {
	st.Epoch++
	switch st.Phase {
	case PhaseIntro, PhaseOutro:
		if st.MessageIndex < s.messageCount(st.Phase) {
			return st, s.arm(st, s.cfg.MessageDelay)
		}
		return s.enter(advance(st, st.Phase.Next()))

	case PhaseBalloons:
		if len(st.Balloons) == 0 && s.gen != nil {
			st.Balloons = s.gen.Balloons()
		}
		return st, s.arm(st, s.cfg.PhaseDelay)

	case PhaseCelebration:
		if len(st.Confetti) == 0 && s.gen != nil {
			st.Confetti = s.gen.Confetti()
		}
		return st, s.arm(st, s.cfg.PhaseDelay)
	}
	return st, nil
}

func (s *Sequencer) arm(st State, d time.Duration) *Timer {
	return &Timer{Epoch: st.Epoch, Delay: d, Phase: st.Phase}
}

func (s *Sequencer) messageCount(p Phase) int {
	if p == PhaseOutro {
		return s.cfg.OutroCount
	}
	return s.cfg.IntroCount
}

func advance(st State, to Phase) State {
	st.Phase = to
	st.MessageIndex = 0
	if to == PhaseCake {
		st.TapCount = 0
	}
	return st
}
