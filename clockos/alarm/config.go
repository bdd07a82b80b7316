package alarm

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"alarmclock/clockos/clocktime"
)

// MaxLabelLen is the longest label, in runes, the alarm screen can show.
const MaxLabelLen = 16

// ErrInvalidConfig is returned when an alarm time is out of range.
var ErrInvalidConfig = errors.New("invalid alarm config")

// Config is the committed alarm setting.
type Config struct {
	Hour    uint8 // 1–12
	Minute  uint8 // 0–59
	IsAM    bool
	Enabled bool
	Label   string
}

// DefaultConfig is used when nothing valid is persisted: 7:00 AM, on.
func DefaultConfig() Config {
	return Config{Hour: 7, Minute: 0, IsAM: true, Enabled: true}
}

// Valid reports whether c holds a time the clock can show.
func (c Config) Valid() bool {
	return c.Hour >= 1 && c.Hour <= 12 &&
		c.Minute <= 59 &&
		utf8.RuneCountInString(c.Label) <= MaxLabelLen
}

// MinuteKey returns the alarm as minutes since midnight.
func (c Config) MinuteKey() int {
	return clocktime.To24(c.Hour, c.IsAM)*60 + int(c.Minute)
}

// Matches reports whether t falls in the configured minute.
func (c Config) Matches(t clocktime.Time) bool {
	return c.Hour == t.Hour && c.Minute == t.Minute && c.IsAM == t.IsAM
}

// MinutesUntil returns how many minutes remain until the alarm next fires,
// counting from the start of t's minute. The alarm minute itself is 0.
func (c Config) MinutesUntil(t clocktime.Time) int {
	d := c.MinuteKey() - t.MinuteKey()
	if d < 0 {
		d += 24 * 60
	}
	return d
}

func (c Config) String() string {
	return fmt.Sprintf("%d:%02d %s", c.Hour, c.Minute, clocktime.Meridiem(c.IsAM))
}

// StepHour moves the hour by delta, wrapping 12→1 and flipping AM/PM when
// crossing 11↔12.
func (c *Config) StepHour(delta int) {
	h := clocktime.To24(c.Hour, c.IsAM)
	h = ((h+delta)%24 + 24) % 24
	c.Hour, c.IsAM = clocktime.From24(h)
}

// StepMinute moves the minute by delta, wrapping within the hour.
func (c *Config) StepMinute(delta int) {
	c.Minute = uint8(((int(c.Minute)+delta)%60 + 60) % 60)
}
