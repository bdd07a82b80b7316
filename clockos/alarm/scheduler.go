// Package alarm decides when the alarm sounds and when it stops.
package alarm

import (
	"fmt"

	"alarmclock/clockos/clocktime"
	"alarmclock/hal"
	"alarmclock/kernel"
)

const (
	// DefaultCeilingMs is the longest the alert may sound without a dismissal.
	DefaultCeilingMs = 120 * 1000
	// DefaultLongPressSeconds is the hold needed to dismiss a sounding alarm.
	DefaultLongPressSeconds = 25
	// DefaultBeepPeriodMs is the beep…pause cadence.
	DefaultBeepPeriodMs = 800
)

// Sounder is the part of the tone generator the scheduler drives.
type Sounder interface {
	EnablePattern(periodMs uint32)
	Disable()
}

// Options tunes the scheduler.
type Options struct {
	CeilingMs        uint32
	LongPressSeconds uint32
	BeepPeriodMs     uint32
}

// DefaultOptions returns the factory timing.
func DefaultOptions() Options {
	return Options{
		CeilingMs:        DefaultCeilingMs,
		LongPressSeconds: DefaultLongPressSeconds,
		BeepPeriodMs:     DefaultBeepPeriodMs,
	}
}

// Event is what a tick or poll changed.
type Event uint8

const (
	EventNone Event = iota
	// EventTriggered means the alarm minute began and the alert started.
	EventTriggered
	// EventTimedOut means the alert hit the ceiling and was stopped.
	EventTimedOut
)

func (e Event) String() string {
	switch e {
	case EventTriggered:
		return "triggered"
	case EventTimedOut:
		return "timed-out"
	default:
		return "none"
	}
}

// Decision is the outcome of a press while the alarm sounds.
type Decision uint8

const (
	Continue Decision = iota
	Silence
)

// Scheduler holds the committed alarm and the alert's lifetime.
type Scheduler struct {
	cfg     Config
	opts    Options
	sounder Sounder
	log     hal.Logger

	active    bool
	startedAt uint32
	// lastKey is the minute already evaluated; -1 before the first tick.
	lastKey int
}

// NewScheduler returns an idle scheduler. An invalid cfg is replaced by
// DefaultConfig. Zero option fields take their defaults.
func NewScheduler(cfg Config, sounder Sounder, opts Options, log hal.Logger) *Scheduler {
	def := DefaultOptions()
	if opts.CeilingMs == 0 {
		opts.CeilingMs = def.CeilingMs
	}
	if opts.LongPressSeconds == 0 {
		opts.LongPressSeconds = def.LongPressSeconds
	}
	if opts.BeepPeriodMs == 0 {
		opts.BeepPeriodMs = def.BeepPeriodMs
	}
	if !cfg.Valid() {
		cfg = DefaultConfig()
	}
	return &Scheduler{cfg: cfg, opts: opts, sounder: sounder, log: log, lastKey: -1}
}

// Config returns the committed alarm.
func (s *Scheduler) Config() Config { return s.cfg }

// Options returns the timing in effect.
func (s *Scheduler) Options() Options { return s.opts }

// SetConfig commits a new alarm. It does not re-evaluate the current minute,
// so setting the alarm to "now" waits for tomorrow.
func (s *Scheduler) SetConfig(c Config) error {
	if !c.Valid() {
		return fmt.Errorf("alarm %s: %w", c, ErrInvalidConfig)
	}
	s.cfg = c
	return nil
}

// IsAlarmDue reports whether t is inside the enabled alarm minute.
func (s *Scheduler) IsAlarmDue(t clocktime.Time) bool {
	return s.cfg.Enabled && s.cfg.Matches(t)
}

// OnSecondTick runs once per RTC second. The due check only runs when t is in
// a minute not seen before, so a silenced alarm cannot re-trigger within its
// minute.
func (s *Scheduler) OnSecondTick(t clocktime.Time, now uint32) Event {
	if ev := s.Poll(now); ev != EventNone {
		return ev
	}

	key := t.MinuteKey()
	if key == s.lastKey {
		return EventNone
	}
	s.lastKey = key

	if s.active || !s.IsAlarmDue(t) {
		return EventNone
	}
	s.active = true
	s.startedAt = now
	if s.sounder != nil {
		s.sounder.EnablePattern(s.opts.BeepPeriodMs)
	}
	s.logf("alarm: %s triggered at %s", s.cfg, t)
	return EventTriggered
}

// Poll enforces the alert ceiling. The main loop calls it every iteration so
// the cutoff does not depend on the one-second tick arriving.
func (s *Scheduler) Poll(now uint32) Event {
	if !s.active || !kernel.Expired(now, s.startedAt, s.opts.CeilingMs) {
		return EventNone
	}
	s.stop()
	s.logf("alarm: stopped after %d ms without dismissal", s.opts.CeilingMs)
	return EventTimedOut
}

// OnLongPress reports what a continuous press of heldSeconds means. Only a
// press at or above the threshold silences the alarm.
func (s *Scheduler) OnLongPress(heldSeconds uint32) Decision {
	if !s.active || heldSeconds < s.opts.LongPressSeconds {
		return Continue
	}
	s.stop()
	s.logf("alarm: dismissed after %d s hold", heldSeconds)
	return Silence
}

// Active reports whether the alert is sounding.
func (s *Scheduler) Active() bool { return s.active }

// Elapsed returns how long the current alert has been sounding.
func (s *Scheduler) Elapsed(now uint32) uint32 {
	if !s.active {
		return 0
	}
	return kernel.Elapsed(now, s.startedAt)
}

func (s *Scheduler) stop() {
	s.active = false
	if s.sounder != nil {
		s.sounder.Disable()
	}
}

func (s *Scheduler) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
