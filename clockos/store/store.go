// Package store persists the committed alarm.
package store

import (
	"errors"
	"fmt"

	"alarmclock/clockos/alarm"
	"alarmclock/hal"
)

// ErrCorrupt means a record exists but cannot be trusted.
var ErrCorrupt = errors.New("alarm record corrupt")

// Store loads and saves the alarm. Load reports ok=false when nothing has
// been saved yet.
type Store interface {
	Load() (cfg alarm.Config, ok bool, err error)
	Save(cfg alarm.Config) error
}

// LoadOrDefault returns the stored alarm, or the default when the record is
// absent, corrupt or unreadable. Failures are logged, never returned.
func LoadOrDefault(s Store, log hal.Logger) alarm.Config {
	if s == nil {
		return alarm.DefaultConfig()
	}
	cfg, ok, err := s.Load()
	switch {
	case err != nil:
		logf(log, "store: load alarm: %v; using default", err)
		return alarm.DefaultConfig()
	case !ok:
		logf(log, "store: no saved alarm; using default")
		return alarm.DefaultConfig()
	}
	logf(log, "store: loaded alarm %s", cfg)
	return cfg
}

func logf(log hal.Logger, format string, args ...any) {
	if log == nil {
		return
	}
	log.WriteLineString(fmt.Sprintf(format, args...))
}
