package config

import (
	"fmt"
	"time"
)

// Duration wraps time.Duration so TOML values read as "800ms", "2m", "25s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Millis returns d in whole milliseconds, saturating at the uint32 range the
// firmware counters use.
func (d Duration) Millis() uint32 {
	ms := d.Duration.Milliseconds()
	switch {
	case ms <= 0:
		return 0
	case ms > int64(^uint32(0)):
		return ^uint32(0)
	}
	return uint32(ms)
}

// WholeSeconds returns d in whole seconds.
func (d Duration) WholeSeconds() uint32 {
	return d.Millis() / 1000
}
