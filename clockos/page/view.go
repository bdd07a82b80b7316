package page

import (
	"alarmclock/clockos/alarm"
	"alarmclock/clockos/clocktime"
	"alarmclock/clockos/keyboard"
	"alarmclock/clockos/screensaver"
	"alarmclock/clockos/ui"
)

// View is what the renderer needs to draw the active page. Seq changes
// whenever anything visible does.
type View struct {
	Seq  uint32
	Page ui.Page
	Now  clocktime.Time

	Alarm        alarm.Config
	MinutesUntil int
	AlarmQueued  bool
	// GoodMorning replaces the main face with the greeting.
	GoodMorning bool

	// Edit pages.
	WorkAlarm alarm.Config
	WorkTime  clocktime.Time
	Unsaved   bool

	// Keyboard page.
	Text   string
	Layout keyboard.Layout

	// Alarm-triggered page.
	HeldSeconds      uint32
	LongPressSeconds uint32
	RingingSeconds   uint32

	// Screensaver page.
	Frame screensaver.Frame
	Edge  bool
}

// View snapshots the machine for drawing.
func (m *Machine) View() View {
	cfg := m.deps.Scheduler.Config()
	v := View{
		Seq:              m.seq,
		Page:             m.Page(),
		Now:              m.now,
		Alarm:            cfg,
		MinutesUntil:     cfg.MinutesUntil(m.now),
		AlarmQueued:      m.queued,
		Unsaved:          unsaved(m.state),
		LongPressSeconds: m.deps.Scheduler.Options().LongPressSeconds,
	}
	switch st := m.state.(type) {
	case *mainState:
		v.GoodMorning = st.greeting
	case *alarmSetState:
		v.WorkAlarm = st.work
	case *keyboardState:
		v.WorkAlarm = st.work
		v.Text = st.kb.Text()
		v.Layout = st.kb.Layout()
	case *timeSetState:
		v.WorkTime = st.work
	case *alarmTriggeredState:
		v.HeldSeconds = st.heldSeconds
		v.RingingSeconds = m.deps.Scheduler.Elapsed(m.nowMs) / 1000
	case *screensaverState:
		v.Frame = m.frame
		v.Edge = m.deps.Backlight != nil && m.deps.Backlight.Edge()
	}
	return v
}
