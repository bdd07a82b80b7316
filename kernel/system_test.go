package kernel

import (
	"testing"
	"time"
)

type fakeClock uint32

func (c *fakeClock) Millis() uint32 { return uint32(*c) }

func TestSystemPostStampsAndCountsDrops(t *testing.T) {
	clk := fakeClock(1234)
	s := NewSystem(&clk)

	for i := 0; i < mailboxSlots; i++ {
		if !s.Post(EventSecond, uint64(i+1)) {
			t.Fatalf("Post(%d) = false, want true", i)
		}
	}
	if s.Post(EventSecond, 99) {
		t.Fatalf("Post() on full mailbox = true, want false")
	}
	if got := s.Dropped(); got != 1 {
		t.Fatalf("Dropped() = %d, want 1", got)
	}

	ev, ok := s.Poll()
	if !ok {
		t.Fatalf("Poll() ok = false, want true")
	}
	if ev.At != 1234 || ev.Seq != 1 || ev.Kind != EventSecond {
		t.Fatalf("Poll() = %+v, want {Kind:%d Seq:1 At:1234}", ev, EventSecond)
	}
}

func TestSystemAttachForwardsChannel(t *testing.T) {
	s := NewSystem(nil)
	ch := make(chan uint64)
	s.Attach(EventSecond, ch)

	ch <- 7
	close(ch)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ev, ok := s.Poll(); ok {
			if ev.Seq != 7 {
				t.Fatalf("Poll() seq = %d, want 7", ev.Seq)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Poll() never returned the attached event")
}

func TestElapsedAcrossWrap(t *testing.T) {
	tests := []struct {
		now, since, want uint32
	}{
		{now: 1000, since: 400, want: 600},
		{now: 5, since: 0xFFFFFFF0, want: 21},
		{now: 0, since: 0xFFFFFFFF, want: 1},
	}
	for _, tt := range tests {
		if got := Elapsed(tt.now, tt.since); got != tt.want {
			t.Fatalf("Elapsed(%d, %d) = %d, want %d", tt.now, tt.since, got, tt.want)
		}
	}

	if !Expired(100, 0xFFFFFF00, 356) {
		t.Fatalf("Expired() across wrap = false, want true")
	}
	if Expired(100, 0xFFFFFF00, 357) {
		t.Fatalf("Expired() one ms early = true, want false")
	}
}
