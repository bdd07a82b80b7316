package touch

import (
	"alarmclock/hal"
	"alarmclock/kernel"
)

// DefaultDebounceMs is how long contact may drop out before a press ends.
const DefaultDebounceMs = 60

// Tracker follows one press across samples. Contact that returns within the
// debounce window continues the same press, so a flickering panel cannot
// restart a long hold.
type Tracker struct {
	debounceMs uint32

	pressed   bool
	lifting   bool
	pressedAt uint32
	liftedAt  uint32
}

// NewTracker returns an idle tracker. Zero selects DefaultDebounceMs.
func NewTracker(debounceMs uint32) *Tracker {
	if debounceMs == 0 {
		debounceMs = DefaultDebounceMs
	}
	return &Tracker{debounceMs: debounceMs}
}

// Update feeds one sample. It returns Tap on the first sample of a press,
// Hold with the held time while contact continues and None otherwise.
func (t *Tracker) Update(p hal.Point, down bool, now uint32) Action {
	if down {
		if t.pressed {
			t.lifting = false
			return Action{Kind: Hold, Point: p, HeldMs: kernel.Elapsed(now, t.pressedAt)}
		}
		t.pressed = true
		t.lifting = false
		t.pressedAt = now
		return Action{Kind: Tap, Point: p}
	}

	if !t.pressed {
		return Action{}
	}
	if !t.lifting {
		t.lifting = true
		t.liftedAt = now
		return Action{}
	}
	if kernel.Expired(now, t.liftedAt, t.debounceMs) {
		t.pressed = false
		t.lifting = false
	}
	return Action{}
}

// Pressed reports whether a press is in progress, including a pending lift.
func (t *Tracker) Pressed() bool { return t.pressed }

// Reset forgets any press in progress.
func (t *Tracker) Reset() {
	t.pressed = false
	t.lifting = false
}
