// Package ui holds the screen geometry shared by hit-testing and drawing.
package ui

// Page is the screen currently shown. Exactly one is active.
type Page uint8

const (
	PageMain Page = iota
	PageScreensaver
	PageAlarmSet
	PageAlarmTriggered
	PageTimeSet
	PageKeyboard
)

func (p Page) String() string {
	switch p {
	case PageMain:
		return "main"
	case PageScreensaver:
		return "screensaver"
	case PageAlarmSet:
		return "alarm-set"
	case PageAlarmTriggered:
		return "alarm-triggered"
	case PageTimeSet:
		return "time-set"
	case PageKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}
