package clocktime

import (
	"fmt"
	"time"

	"alarmclock/hal"
)

// Source is the external wall clock. hal.RTC satisfies it.
type Source interface {
	Now() (time.Time, error)
	Set(t time.Time) error
}

// Keeper advances the displayed time one second per tick and re-reads the
// full time from the RTC only when the seconds field reaches 60.
type Keeper struct {
	src  Source
	log  hal.Logger
	wall time.Time
	cur  Time
}

// NewKeeper returns a keeper and performs the boot read. A failed read leaves
// the keeper at the zero date; the next minute rollover retries.
func NewKeeper(src Source, log hal.Logger) *Keeper {
	k := &Keeper{src: src, log: log}
	k.wall = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	k.cur = FromTime(k.wall)
	if err := k.Refresh(); err != nil {
		k.logf("clock: boot read: %v", err)
	}
	return k
}

// Now returns the current reading.
func (k *Keeper) Now() Time { return k.cur }

// Refresh reads the RTC and replaces the whole reading.
func (k *Keeper) Refresh() error {
	if k.src == nil {
		return hal.ErrNotImplemented
	}
	t, err := k.src.Now()
	if err != nil {
		return fmt.Errorf("read rtc: %w", err)
	}
	k.wall = t
	k.cur = FromTime(t)
	return nil
}

// Tick advances one second. At the minute boundary the RTC is re-read; if
// that fails the minute is rolled forward locally. rolled reports the
// boundary.
func (k *Keeper) Tick() (now Time, rolled bool) {
	if k.cur.Second < 59 {
		k.wall = k.wall.Add(time.Second)
		k.cur.Second++
		return k.cur, false
	}

	if err := k.Refresh(); err != nil {
		k.logf("clock: minute refresh: %v", err)
		k.wall = k.wall.Truncate(time.Minute).Add(time.Minute)
		k.cur = FromTime(k.wall)
	}
	return k.cur, true
}

// Set writes t to the RTC and adopts it.
func (k *Keeper) Set(t time.Time) error {
	if k.src == nil {
		return hal.ErrNotImplemented
	}
	if err := k.src.Set(t); err != nil {
		return fmt.Errorf("set rtc: %w", err)
	}
	if err := k.Refresh(); err != nil {
		k.logf("clock: read back after set: %v", err)
		k.wall = t
		k.cur = FromTime(t)
	}
	return nil
}

func (k *Keeper) logf(format string, args ...any) {
	if k.log == nil {
		return
	}
	k.log.WriteLineString(fmt.Sprintf(format, args...))
}
