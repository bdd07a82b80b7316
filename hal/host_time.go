//go:build !tinygo

package hal

import "time"

type hostTime struct {
	start time.Time
}

func newHostTime() *hostTime {
	return &hostTime{start: time.Now()}
}

// Millis truncates to 32 bits so the host wraps exactly like the MCU counter.
func (t *hostTime) Millis() uint32 {
	return uint32(time.Since(t.start).Milliseconds())
}
