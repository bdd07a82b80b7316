//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostRTC is the system clock plus a user-settable offset.
//
// The square wave is emulated by a goroutine aligned to whole seconds of the
// offset clock, so a Set shifts the edges just like rewriting the DS3231.
type hostRTC struct {
	mu     sync.Mutex
	clock  func() time.Time
	offset time.Duration

	once sync.Once
	ch   chan uint64
	seq  uint64
}

func newHostRTC() *hostRTC {
	return newHostRTCWithClock(time.Now)
}

func newHostRTCWithClock(clock func() time.Time) *hostRTC {
	if clock == nil {
		clock = time.Now
	}
	return &hostRTC{clock: clock, ch: make(chan uint64, 4)}
}

func (r *hostRTC) Now() (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clock().Add(r.offset).Truncate(time.Second), nil
}

func (r *hostRTC) Set(t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offset = t.Sub(r.clock())
	return nil
}

// Shift moves the wall clock by d. The window uses it for quick manual testing.
func (r *hostRTC) Shift(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offset += d
}

func (r *hostRTC) Seconds() <-chan uint64 {
	r.once.Do(func() { go r.run() })
	return r.ch
}

func (r *hostRTC) untilNextEdge() time.Duration {
	r.mu.Lock()
	now := r.clock().Add(r.offset)
	r.mu.Unlock()
	next := now.Truncate(time.Second).Add(time.Second)
	return next.Sub(now)
}

func (r *hostRTC) run() {
	for {
		time.Sleep(r.untilNextEdge())
		r.seq++
		select {
		case r.ch <- r.seq:
		default:
		}
	}
}
