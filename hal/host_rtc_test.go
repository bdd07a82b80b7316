//go:build !tinygo

package hal

import (
	"testing"
	"time"
)

func TestHostRTCSetAppliesOffset(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	rtc := newHostRTCWithClock(clock)
	want := time.Date(2024, 3, 1, 7, 29, 59, 0, time.UTC)
	if err := rtc.Set(want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := rtc.Now()
	if err != nil {
		t.Fatalf("Now: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("Now() = %v, want %v", got, want)
	}

	now = now.Add(1500 * time.Millisecond)
	got, _ = rtc.Now()
	if want := want.Add(time.Second); !got.Equal(want) {
		t.Fatalf("Now() after 1.5s = %v, want %v", got, want)
	}
}

func TestHostRTCUntilNextEdge(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 250*int(time.Millisecond), time.UTC)
	rtc := newHostRTCWithClock(func() time.Time { return now })

	if got, want := rtc.untilNextEdge(), 750*time.Millisecond; got != want {
		t.Fatalf("untilNextEdge() = %v, want %v", got, want)
	}

	rtc.Shift(500 * time.Millisecond)
	if got, want := rtc.untilNextEdge(), 250*time.Millisecond; got != want {
		t.Fatalf("untilNextEdge() after shift = %v, want %v", got, want)
	}
}
