package sequencer

import "time"

// Entry is one step of a simulated run.
type Entry struct {
	At    time.Duration
	Event string
	State State
}

// Simulate runs s on a virtual clock from mount until the final phase,
// sending taps taps as soon as the cake appears. It stops early when the
// machine has nothing left to wait for, e.g. too few taps to open the gate.
func Simulate(s *Sequencer, taps int) []Entry {
	st, timer := s.Start()
	var now time.Duration
	log := []Entry{{At: 0, Event: "start", State: st}}

	// Each step consumes a timer or a tap, so the walk is bounded by the
	// script length; the guard only protects against a broken config.
	for guard := 0; guard < 10_000; guard++ {
		if st.Phase == PhaseFinal {
			break
		}
		if st.Phase == PhaseCake && taps > 0 {
			taps--
			var next *Timer
			st, next = s.Step(st, Tap{})
			if next != nil {
				timer = next
			}
			log = append(log, Entry{At: now, Event: "tap", State: st})
			continue
		}
		if timer == nil || timer.Epoch != st.Epoch {
			break
		}
		now += timer.Delay
		st, timer = s.Step(st, TimerFired{Epoch: timer.Epoch})
		log = append(log, Entry{At: now, Event: "timer", State: st})
	}
	return log
}
