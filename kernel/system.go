package kernel

import "sync/atomic"

// Clock is the monotonic millisecond source stamped onto events.
type Clock interface {
	Millis() uint32
}

// System is the bridge between interrupt-side producers and the cooperative
// main loop.
type System struct {
	mbox    Mailbox
	clock   Clock
	dropped atomic.Uint32
}

// NewSystem creates a kernel instance.
func NewSystem(clock Clock) *System {
	return &System{clock: clock}
}

// Post stamps and enqueues an event without blocking. A full mailbox drops the
// event and counts it.
func (s *System) Post(kind EventKind, seq uint64) bool {
	ev := Event{Kind: kind, Seq: seq}
	if s.clock != nil {
		ev.At = s.clock.Millis()
	}
	if !s.mbox.TrySend(ev) {
		s.dropped.Add(1)
		return false
	}
	return true
}

// Attach forwards every value of ch as an event of the given kind.
func (s *System) Attach(kind EventKind, ch <-chan uint64) {
	if ch == nil {
		return
	}
	go func() {
		for seq := range ch {
			s.Post(kind, seq)
		}
	}()
}

// Poll returns the next pending event, if any. Main loop only.
func (s *System) Poll() (Event, bool) {
	return s.mbox.TryRecv()
}

// Dropped returns how many events were lost to a full mailbox.
func (s *System) Dropped() uint32 {
	return s.dropped.Load()
}
