// Package page runs the clock's screens: which page is shown, what a touch
// does on it and when the alarm takes over.
package page

import (
	"fmt"
	"time"

	"alarmclock/clockos/alarm"
	"alarmclock/clockos/clocktime"
	"alarmclock/clockos/keyboard"
	"alarmclock/clockos/screensaver"
	"alarmclock/clockos/store"
	"alarmclock/clockos/tone"
	"alarmclock/clockos/touch"
	"alarmclock/clockos/ui"
	"alarmclock/hal"
	"alarmclock/kernel"
)

const (
	DefaultInactivityMs      = 120 * 1000
	DefaultBrightnessSeconds = 60
	DefaultSaverFrameMs      = 20
	DefaultGoodMorningMs     = 10 * 1000
)

// Clock is the wall clock the time-set page writes to.
type Clock interface {
	Now() clocktime.Time
	Set(t time.Time) error
}

// Player plays the short melody after a dismissal.
type Player interface {
	PlaySequence(notes []tone.Request)
	Advance(now uint32) bool
}

// Backlight follows ambient light, or the hour when there is no reading, and
// goes to full while the alarm sounds. Edge reports whether the screensaver
// draws its colored border at the current level.
type Backlight interface {
	Recheck(hour24 int)
	Full()
	Edge() bool
}

// Deps are the collaborators the machine drives. Only Scheduler is required.
type Deps struct {
	Scheduler *alarm.Scheduler
	Clock     Clock
	Store     store.Store
	Player    Player
	Backlight Backlight
	Saver     *screensaver.Animator
	Log       hal.Logger
}

// Options tunes timeouts. Zero fields take their defaults.
type Options struct {
	InactivityMs      uint32
	BrightnessSeconds uint32
	SaverFrameMs      uint32
	DebounceMs        uint32
	GoodMorningMs     uint32
	Celebrate         bool
}

// Machine is the page state machine. All methods run on the main loop.
type Machine struct {
	deps       Deps
	opts       Options
	classifier *touch.Classifier
	tracker    *touch.Tracker

	state     pageState
	queued    bool
	now       clocktime.Time
	nowMs     uint32
	lastInput uint32
	sinceLux  uint32
	frame     screensaver.Frame
	seq       uint32
}

// New starts on the main page at time now.
func New(deps Deps, opts Options, now uint32) *Machine {
	if opts.InactivityMs == 0 {
		opts.InactivityMs = DefaultInactivityMs
	}
	if opts.BrightnessSeconds == 0 {
		opts.BrightnessSeconds = DefaultBrightnessSeconds
	}
	if opts.SaverFrameMs == 0 {
		opts.SaverFrameMs = DefaultSaverFrameMs
	}
	if opts.GoodMorningMs == 0 {
		opts.GoodMorningMs = DefaultGoodMorningMs
	}
	if deps.Saver == nil {
		deps.Saver = screensaver.New(screensaver.DefaultConfig(), nil)
	}
	m := &Machine{
		deps:       deps,
		opts:       opts,
		classifier: touch.NewClassifier(),
		tracker:    touch.NewTracker(opts.DebounceMs),
		nowMs:      now,
		lastInput:  now,
	}
	if deps.Clock != nil {
		m.now = deps.Clock.Now()
	}
	m.enter(&mainState{})
	m.recheckLight()
	return m
}

// Page returns the active page.
func (m *Machine) Page() ui.Page { return m.state.page() }

// Queued reports whether an alarm is waiting for an edit to finish.
func (m *Machine) Queued() bool { return m.queued }

// OnSecond handles one wall-clock tick carrying the updated time.
func (m *Machine) OnSecond(t clocktime.Time, now uint32) {
	m.nowMs = now
	m.now = t
	m.seq++
	m.onAlarm(m.deps.Scheduler.OnSecondTick(t, now))

	if m.Page() == ui.PageAlarmTriggered {
		m.sinceLux = 0
		return
	}
	m.sinceLux++
	if m.sinceLux >= m.opts.BrightnessSeconds {
		m.sinceLux = 0
		m.recheckLight()
	}
}

// Poll runs the time-based work of one loop iteration. It never blocks.
func (m *Machine) Poll(now uint32) {
	m.nowMs = now
	m.onAlarm(m.deps.Scheduler.Poll(now))
	if m.deps.Player != nil {
		m.deps.Player.Advance(now)
	}

	switch st := m.state.(type) {
	case *mainState:
		if st.greeting && kernel.Expired(now, st.since, m.opts.GoodMorningMs) {
			st.greeting = false
			m.seq++
		}
		if kernel.Expired(now, m.lastInput, m.opts.InactivityMs) {
			m.logf("page: idle %d ms", m.opts.InactivityMs)
			m.enter(&screensaverState{})
		}
	case *screensaverState:
		if kernel.Expired(now, st.lastFrame, m.opts.SaverFrameMs) {
			st.lastFrame = now
			m.frame = m.deps.Saver.Step()
			m.seq++
		}
	}
}

// OnTouch feeds one touch sample.
func (m *Machine) OnTouch(p hal.Point, down bool, now uint32) {
	m.nowMs = now
	a := m.tracker.Update(p, down, now)
	if a.Kind != touch.None {
		m.lastInput = now
	}

	if st, ok := m.state.(*alarmTriggeredState); ok {
		m.holdToDismiss(st, a)
		return
	}
	if a.Kind != touch.Tap {
		return
	}

	if m.Page() == ui.PageScreensaver {
		m.enter(&mainState{})
		return
	}
	if st, ok := m.state.(*mainState); ok && st.greeting {
		st.greeting = false
		m.seq++
		return
	}
	hit := m.classifier.Classify(a.Point, m.Page())
	if hit.Kind == touch.None {
		return
	}
	m.seq++

	switch st := m.state.(type) {
	case *mainState:
		m.onMainTap(hit.Target)
	case *alarmSetState:
		m.onAlarmSetTap(st, hit.Target)
	case *keyboardState:
		m.onKey(st, hit.Key)
	case *timeSetState:
		m.onTimeSetTap(st, hit.Target)
	}
}

func (m *Machine) onAlarm(ev alarm.Event) {
	switch ev {
	case alarm.EventTriggered:
		if unsaved(m.state) {
			m.queued = true
			m.logf("page: alarm queued behind %s edit", m.Page())
			if m.deps.Backlight != nil {
				m.deps.Backlight.Full()
			}
			return
		}
		m.enter(&alarmTriggeredState{})
	case alarm.EventTimedOut:
		if m.Page() == ui.PageAlarmTriggered {
			m.enter(&mainState{})
		}
	}
}

func (m *Machine) holdToDismiss(st *alarmTriggeredState, a touch.Action) {
	if a.Kind == touch.None {
		if st.heldSeconds != 0 {
			st.heldSeconds = 0
			m.seq++
		}
		return
	}
	held := a.HeldMs / 1000
	if held != st.heldSeconds {
		st.heldSeconds = held
		m.seq++
	}
	if m.deps.Scheduler.OnLongPress(held) != alarm.Silence {
		return
	}
	if m.opts.Celebrate && m.deps.Player != nil {
		m.deps.Player.PlaySequence(tone.Celebrate)
	}
	m.enter(&mainState{greeting: true})
}

func (m *Machine) onMainTap(target ui.Target) {
	switch target {
	case ui.TargetTime:
		m.enter(&timeSetState{work: m.now})
	case ui.TargetDate:
		m.enter(&screensaverState{})
	case ui.TargetAlarm:
		m.enter(&alarmSetState{work: m.deps.Scheduler.Config()})
	}
}

func (m *Machine) onAlarmSetTap(st *alarmSetState, target ui.Target) {
	switch target {
	case ui.TargetHourUp:
		st.work.StepHour(1)
	case ui.TargetHourDown:
		st.work.StepHour(-1)
	case ui.TargetMinuteUp:
		st.work.StepMinute(1)
	case ui.TargetMinuteDown:
		st.work.StepMinute(-1)
	case ui.TargetMeridiem:
		st.work.IsAM = !st.work.IsAM
	case ui.TargetAlarmOnOff:
		st.work.Enabled = !st.work.Enabled
	case ui.TargetLabel:
		kb := keyboard.New(alarm.MaxLabelLen)
		kb.Seed(st.work.Label)
		m.enter(&keyboardState{work: st.work, dirty: st.dirty, kb: kb})
		return
	case ui.TargetSet:
		m.commitAlarm(st.work)
		m.endEdit()
		return
	case ui.TargetCancel:
		m.endEdit()
		return
	default:
		return
	}
	st.dirty = true
}

func (m *Machine) onKey(st *keyboardState, k keyboard.Key) {
	switch st.kb.Press(k) {
	case keyboard.Done:
		dirty := st.edited()
		st.work.Label = st.kb.Text()
		m.enter(&alarmSetState{work: st.work, dirty: dirty})
	case keyboard.Cancelled:
		m.enter(&alarmSetState{work: st.work, dirty: st.dirty})
	default:
		m.classifier.SetKeyboardLayout(st.kb.Layout())
	}
}

func (m *Machine) onTimeSetTap(st *timeSetState, target ui.Target) {
	switch target {
	case ui.TargetHourUp, ui.TargetHourDown:
		delta := 1
		if target == ui.TargetHourDown {
			delta = -1
		}
		h := (st.work.Hour24() + delta + 24) % 24
		st.work.Hour, st.work.IsAM = clocktime.From24(h)
	case ui.TargetMinuteUp:
		st.work.Minute = (st.work.Minute + 1) % 60
	case ui.TargetMinuteDown:
		st.work.Minute = (st.work.Minute + 59) % 60
	case ui.TargetMeridiem:
		st.work.IsAM = !st.work.IsAM
	case ui.TargetSet:
		m.commitTime(st.work)
		m.endEdit()
		return
	case ui.TargetCancel:
		m.endEdit()
		return
	default:
		return
	}
	st.dirty = true
}

func (m *Machine) commitAlarm(c alarm.Config) {
	if err := m.deps.Scheduler.SetConfig(c); err != nil {
		m.logf("page: commit alarm: %v", err)
		return
	}
	m.logf("page: alarm set to %s", c)
	if m.deps.Store == nil {
		return
	}
	if err := m.deps.Store.Save(c); err != nil {
		m.logf("page: save alarm: %v", err)
	}
}

func (m *Machine) commitTime(t clocktime.Time) {
	if m.deps.Clock == nil {
		return
	}
	t.Second = 0
	if err := m.deps.Clock.Set(t.Date(time.Local)); err != nil {
		m.logf("page: set time: %v", err)
		return
	}
	m.now = m.deps.Clock.Now()
	m.logf("page: time set to %s", m.now)
}

// endEdit leaves an edit page, releasing a queued alarm if it still sounds.
func (m *Machine) endEdit() {
	if m.queued {
		m.queued = false
		if m.deps.Scheduler.Active() {
			m.enter(&alarmTriggeredState{})
			return
		}
		m.recheckLight()
	}
	m.enter(&mainState{})
}

func (m *Machine) enter(s pageState) {
	prev := m.state
	m.state = s
	m.seq++

	if prev != nil && prev.page() == ui.PageAlarmTriggered {
		m.recheckLight()
	}

	switch st := s.(type) {
	case *mainState:
		m.lastInput = m.nowMs
		st.since = m.nowMs
	case *screensaverState:
		m.deps.Saver.Reset()
		m.frame = m.deps.Saver.Step()
		st.lastFrame = m.nowMs
	case *keyboardState:
		m.classifier.SetKeyboardLayout(st.kb.Layout())
	case *alarmTriggeredState:
		m.queued = false
		m.tracker.Reset()
		if m.deps.Backlight != nil {
			m.deps.Backlight.Full()
		}
	}

	if prev != nil && prev.page() != s.page() {
		m.logf("page: %s -> %s", prev.page(), s.page())
	}
}

func (m *Machine) recheckLight() {
	if m.deps.Backlight != nil {
		m.deps.Backlight.Recheck(m.now.Hour24())
	}
}

func (m *Machine) logf(format string, args ...any) {
	if m.deps.Log == nil {
		return
	}
	m.deps.Log.WriteLineString(fmt.Sprintf(format, args...))
}
