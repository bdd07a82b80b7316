//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Hz is the main-loop rate. The clock itself advances on RTC edges, so
	// this only sets touch and animation granularity.
	Hz int
	// Ticks stops the run after that many loop iterations; 0 runs until ctx ends.
	Ticks uint64
}

// RunHeadless runs the clock without opening a window. Touch and audio are
// unavailable; the RTC, timers and store behave as in window mode.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := New().(*hostHAL)
	defer h.flash.Close()
	step := newApp(h)
	if step == nil {
		return nil
	}
	h.logger.WriteLineString(fmt.Sprintf("hal: headless at %d Hz", cfg.Hz))

	t := time.NewTicker(d)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := step(); err != nil {
				return err
			}
			n++
			if cfg.Ticks > 0 && n >= cfg.Ticks {
				return nil
			}
		}
	}
}
