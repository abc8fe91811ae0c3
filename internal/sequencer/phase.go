package sequencer

// Phase is the current stage of the greeting.
type Phase int

const (
	PhaseIntro       Phase = iota // timed intro messages
	PhaseBalloons                 // balloon field, then the cake
	PhaseCake                     // tap gate
	PhaseCelebration              // confetti and the headline
	PhaseOutro                    // timed outro messages
	PhaseFinal                    // closing quote and replay
)

var phaseNames = [...]string{
	PhaseIntro:       "intro",
	PhaseBalloons:    "balloons",
	PhaseCake:        "cake",
	PhaseCelebration: "celebration",
	PhaseOutro:       "outro",
	PhaseFinal:       "final",
}

// String returns the lowercase phase name.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Next returns the phase that follows p in the forward sequence.
// PhaseFinal has no successor and returns itself; leaving it is a reset.
func (p Phase) Next() Phase {
	if p >= PhaseFinal {
		return PhaseFinal
	}
	return p + 1
}

// CanTransitionTo reports whether target is a legal next phase. The only
// backward move is the replay from final to intro.
func (p Phase) CanTransitionTo(target Phase) bool {
	if p == PhaseFinal {
		return target == PhaseIntro
	}
	return target == p.Next()
}

// HasMessages reports whether the phase walks a message list.
func (p Phase) HasMessages() bool {
	return p == PhaseIntro || p == PhaseOutro
}
