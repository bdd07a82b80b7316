package tone

import "sync/atomic"

// State is the buzzer runtime state shared with the timer interrupt.
//
// Every field is a single atomic word with one writer:
//   - enabled, pattern, periodMs: main loop.
//   - phase, beepOn, beepStart: the interrupt, except that the main loop seeds
//     them while the timer is disarmed.
//
// Readers on the other side may observe a value one toggle old; that costs at
// most a half-cycle of the square wave.
type State struct {
	enabled  atomic.Bool
	pattern  atomic.Bool
	periodMs atomic.Uint32

	phase     atomic.Bool
	beepOn    atomic.Bool
	beepStart atomic.Uint32
}

// Snapshot is a point-in-time copy of State for main-loop readers.
type Snapshot struct {
	Enabled   bool
	Pattern   bool
	Phase     bool
	BeepOn    bool
	BeepStart uint32
}

func (s *State) snapshot() Snapshot {
	return Snapshot{
		Enabled:   s.enabled.Load(),
		Pattern:   s.pattern.Load(),
		Phase:     s.phase.Load(),
		BeepOn:    s.beepOn.Load(),
		BeepStart: s.beepStart.Load(),
	}
}
