// Package config holds the clock's tunables. The host reads them from a TOML
// file; the device uses Default compiled in.
package config

import (
	"errors"
	"fmt"
	"time"

	"alarmclock/clockos/alarm"
	"alarmclock/clockos/brightness"
	"alarmclock/clockos/page"
	"alarmclock/clockos/tone"
	"alarmclock/clockos/touch"
)

// Store backends.
const (
	BackendFlash = "flash"
	BackendYAML  = "yaml"
)

var ErrInvalid = errors.New("invalid config")

// Config is the root configuration.
type Config struct {
	Tone     ToneConfig     `toml:"tone"`
	Alarm    AlarmConfig    `toml:"alarm"`
	Display  DisplayConfig  `toml:"display"`
	Touch    TouchConfig    `toml:"touch"`
	Store    StoreConfig    `toml:"store"`
	Headless HeadlessConfig `toml:"headless"`
}

// ToneConfig sets the buzzer.
type ToneConfig struct {
	FrequencyHz uint32   `toml:"frequency_hz"`
	BeepPeriod  Duration `toml:"beep_period"`
}

// AlarmConfig sets how long the alert runs and how it is dismissed.
type AlarmConfig struct {
	Ceiling   Duration `toml:"ceiling"`
	LongPress Duration `toml:"long_press"`
	Celebrate bool     `toml:"celebrate"`
	// GoodMorning is how long the greeting stays up after a dismissal.
	GoodMorning Duration `toml:"good_morning"`
}

// DisplayConfig covers the backlight and the screensaver.
type DisplayConfig struct {
	Inactivity        Duration `toml:"inactivity"`
	BrightnessCeiling uint8    `toml:"brightness_ceiling"`
	BrightnessRecheck Duration `toml:"brightness_recheck"`
	SaverFrame        Duration `toml:"saver_frame"`
	SaverStep         int16    `toml:"saver_step"`
	SaverSeed         uint32   `toml:"saver_seed"`
}

// TouchConfig tunes the press tracker.
type TouchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// StoreConfig picks where the alarm is persisted.
//
// The flash backend keeps the device record layout; on the host it lives in
// the file flash. The yaml backend writes a readable file at Path.
type StoreConfig struct {
	Backend     string `toml:"backend"`
	Path        string `toml:"path"`
	FlashOffset uint32 `toml:"flash_offset"`
}

// HeadlessConfig drives the windowless host runner.
type HeadlessConfig struct {
	Hz    int    `toml:"hz"`
	Ticks uint64 `toml:"ticks"`
}

// Default returns the factory settings.
func Default() *Config {
	return &Config{
		Tone: ToneConfig{
			FrequencyHz: tone.DefaultFrequency,
			BeepPeriod:  Duration{alarm.DefaultBeepPeriodMs * time.Millisecond},
		},
		Alarm: AlarmConfig{
			Ceiling:   Duration{alarm.DefaultCeilingMs * time.Millisecond},
			LongPress: Duration{alarm.DefaultLongPressSeconds * time.Second},
			Celebrate: true,

			GoodMorning: Duration{page.DefaultGoodMorningMs * time.Millisecond},
		},
		Display: DisplayConfig{
			Inactivity:        Duration{page.DefaultInactivityMs * time.Millisecond},
			BrightnessCeiling: brightness.Day,
			BrightnessRecheck: Duration{page.DefaultBrightnessSeconds * time.Second},
			SaverFrame:        Duration{page.DefaultSaverFrameMs * time.Millisecond},
			SaverStep:         1,
			SaverSeed:         1,
		},
		Touch: TouchConfig{
			Debounce: Duration{touch.DefaultDebounceMs * time.Millisecond},
		},
		Store: StoreConfig{
			Backend: BackendFlash,
			Path:    "alarm.yaml",
		},
		Headless: HeadlessConfig{
			Hz: 60,
		},
	}
}

// Validate rejects settings the clock cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Tone.FrequencyHz < 100 || c.Tone.FrequencyHz > 20000:
		return fmt.Errorf("tone.frequency_hz %d outside 100..20000: %w", c.Tone.FrequencyHz, ErrInvalid)
	case c.Tone.BeepPeriod.Millis() < 10:
		return fmt.Errorf("tone.beep_period %s too short: %w", c.Tone.BeepPeriod, ErrInvalid)
	case c.Alarm.Ceiling.Millis() == 0:
		return fmt.Errorf("alarm.ceiling must be positive: %w", ErrInvalid)
	case c.Alarm.LongPress.WholeSeconds() == 0:
		return fmt.Errorf("alarm.long_press must be at least 1s: %w", ErrInvalid)
	case c.Alarm.LongPress.Millis() >= c.Alarm.Ceiling.Millis():
		return fmt.Errorf("alarm.long_press %s not shorter than alarm.ceiling %s: %w",
			c.Alarm.LongPress, c.Alarm.Ceiling, ErrInvalid)
	case c.Display.BrightnessCeiling == 0:
		return fmt.Errorf("display.brightness_ceiling must be positive: %w", ErrInvalid)
	case c.Display.SaverStep <= 0:
		return fmt.Errorf("display.saver_step must be positive: %w", ErrInvalid)
	}
	switch c.Store.Backend {
	case BackendFlash:
	case BackendYAML:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path required for the yaml backend: %w", ErrInvalid)
		}
	default:
		return fmt.Errorf("store.backend %q: %w", c.Store.Backend, ErrInvalid)
	}
	return nil
}

// AlarmOptions returns the scheduler timing.
func (c *Config) AlarmOptions() alarm.Options {
	return alarm.Options{
		CeilingMs:        c.Alarm.Ceiling.Millis(),
		LongPressSeconds: c.Alarm.LongPress.WholeSeconds(),
		BeepPeriodMs:     c.Tone.BeepPeriod.Millis(),
	}
}

// PageOptions returns the page machine timing.
func (c *Config) PageOptions() page.Options {
	return page.Options{
		InactivityMs:      c.Display.Inactivity.Millis(),
		BrightnessSeconds: c.Display.BrightnessRecheck.WholeSeconds(),
		SaverFrameMs:      c.Display.SaverFrame.Millis(),
		DebounceMs:        c.Touch.Debounce.Millis(),
		GoodMorningMs:     c.Alarm.GoodMorning.Millis(),
		Celebrate:         c.Alarm.Celebrate,
	}
}
