package page

import (
	"alarmclock/clockos/alarm"
	"alarmclock/clockos/clocktime"
	"alarmclock/clockos/keyboard"
	"alarmclock/clockos/ui"
)

// pageState is the active page and the data only that page owns. A new value
// is built on every entry.
type pageState interface {
	page() ui.Page
}

// mainState shows the clock face, or the good-morning greeting after a
// dismissal until a tap or the timeout.
type mainState struct {
	greeting bool
	since    uint32
}

func (*mainState) page() ui.Page { return ui.PageMain }

type screensaverState struct {
	lastFrame uint32
}

func (*screensaverState) page() ui.Page { return ui.PageScreensaver }

type alarmSetState struct {
	work  alarm.Config
	dirty bool
}

func (*alarmSetState) page() ui.Page { return ui.PageAlarmSet }

// keyboardState edits the label of an alarm-set working copy it carries.
type keyboardState struct {
	work  alarm.Config
	dirty bool
	kb    *keyboard.Composer
}

func (*keyboardState) page() ui.Page { return ui.PageKeyboard }

func (s *keyboardState) edited() bool {
	return s.dirty || s.kb.Text() != s.work.Label
}

type alarmTriggeredState struct {
	heldSeconds uint32
}

func (*alarmTriggeredState) page() ui.Page { return ui.PageAlarmTriggered }

type timeSetState struct {
	work  clocktime.Time
	dirty bool
}

func (*timeSetState) page() ui.Page { return ui.PageTimeSet }

// unsaved reports whether leaving s now would discard user input.
func unsaved(s pageState) bool {
	switch st := s.(type) {
	case *alarmSetState:
		return st.dirty
	case *timeSetState:
		return st.dirty
	case *keyboardState:
		return st.edited()
	default:
		return false
	}
}
