package ui

import "alarmclock/clockos/keyboard"

// Screen size in landscape.
const (
	ScreenW int16 = 320
	ScreenH int16 = 240
)

// Main page rows, by text baseline.
const (
	TimeRowY0  int16 = 80
	DateRowY0  int16 = 140
	AlarmRowY0 int16 = 210

	CancelButtonSize int16 = 40
)

// Keyboard geometry. Keys fill the area under the text box.
const (
	TextAreaH int16 = 100
	KeyW      int16 = ScreenW / 10
	KeyH      int16 = (ScreenH - TextAreaH) / 4
)

// Target identifies what a touch region does.
type Target uint8

const (
	TargetNone Target = iota
	TargetTime
	TargetDate
	TargetAlarm
	TargetWake
	TargetDismiss
	TargetHourUp
	TargetHourDown
	TargetMinuteUp
	TargetMinuteDown
	TargetMeridiem
	TargetAlarmOnOff
	TargetLabel
	TargetSet
	TargetCancel
	TargetKey
)

var targetNames = [...]string{
	TargetNone:       "none",
	TargetTime:       "time",
	TargetDate:       "date",
	TargetAlarm:      "alarm",
	TargetWake:       "wake",
	TargetDismiss:    "dismiss",
	TargetHourUp:     "hour-up",
	TargetHourDown:   "hour-down",
	TargetMinuteUp:   "minute-up",
	TargetMinuteDown: "minute-down",
	TargetMeridiem:   "am-pm",
	TargetAlarmOnOff: "on-off",
	TargetLabel:      "label",
	TargetSet:        "set",
	TargetCancel:     "cancel",
	TargetKey:        "key",
}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "unknown"
}

// Region is one touchable rectangle. Key is set when Target is TargetKey.
type Region struct {
	Rect   Rect
	Target Target
	Key    keyboard.Key
}

var cancelRect = Rect{
	X: ScreenW - CancelButtonSize,
	Y: ScreenH - CancelButtonSize,
	W: CancelButtonSize,
	H: CancelButtonSize,
}

// Edit page controls. The digits sit between the up and down arrows.
var (
	hourUpRect     = Rect{X: 30, Y: 10, W: 80, H: 50}
	minuteUpRect   = Rect{X: 130, Y: 10, W: 80, H: 50}
	hourDownRect   = Rect{X: 30, Y: 120, W: 80, H: 50}
	minuteDownRect = Rect{X: 130, Y: 120, W: 80, H: 50}
	meridiemRect   = Rect{X: 230, Y: 60, W: 80, H: 50}
	onOffRect      = Rect{X: 230, Y: 120, W: 80, H: 50}
	labelRect      = Rect{X: 0, Y: 185, W: 100, H: 50}
	setRect        = Rect{X: 110, Y: 185, W: 100, H: 50}

	// DigitsRect is where the edit pages draw the hour and minute.
	DigitsRect = Rect{X: 30, Y: 60, W: 180, H: 60}
)

var (
	mainRegions = []Region{
		{Rect: Rect{X: 0, Y: 0, W: ScreenW, H: TimeRowY0 + 30}, Target: TargetTime},
		{Rect: Rect{X: 0, Y: TimeRowY0 + 30, W: ScreenW, H: DateRowY0 - TimeRowY0 + 10}, Target: TargetDate},
		{Rect: Rect{X: 0, Y: DateRowY0 + 40, W: ScreenW, H: ScreenH - DateRowY0 - 40}, Target: TargetAlarm},
	}
	screensaverRegions = []Region{
		{Rect: Rect{W: ScreenW, H: ScreenH}, Target: TargetWake},
	}
	alarmSetRegions = []Region{
		{Rect: hourUpRect, Target: TargetHourUp},
		{Rect: minuteUpRect, Target: TargetMinuteUp},
		{Rect: hourDownRect, Target: TargetHourDown},
		{Rect: minuteDownRect, Target: TargetMinuteDown},
		{Rect: meridiemRect, Target: TargetMeridiem},
		{Rect: onOffRect, Target: TargetAlarmOnOff},
		{Rect: labelRect, Target: TargetLabel},
		{Rect: setRect, Target: TargetSet},
		{Rect: cancelRect, Target: TargetCancel},
	}
	timeSetRegions = []Region{
		{Rect: hourUpRect, Target: TargetHourUp},
		{Rect: minuteUpRect, Target: TargetMinuteUp},
		{Rect: hourDownRect, Target: TargetHourDown},
		{Rect: minuteDownRect, Target: TargetMinuteDown},
		{Rect: meridiemRect, Target: TargetMeridiem},
		{Rect: setRect, Target: TargetSet},
		{Rect: cancelRect, Target: TargetCancel},
	}
	alarmTriggeredRegions = []Region{
		{Rect: Rect{W: ScreenW, H: ScreenH}, Target: TargetDismiss},
	}
)

// Regions returns the fixed region table for p. The keyboard page has no
// fixed table; use KeyboardRegions.
func Regions(p Page) []Region {
	switch p {
	case PageMain:
		return mainRegions
	case PageScreensaver:
		return screensaverRegions
	case PageAlarmSet:
		return alarmSetRegions
	case PageTimeSet:
		return timeSetRegions
	case PageAlarmTriggered:
		return alarmTriggeredRegions
	default:
		return nil
	}
}

// KeyboardRegions builds the key table for one layout: three literal rows,
// then the control row. Shift and backspace flank the third row.
func KeyboardRegions(l keyboard.Layout) []Region {
	var out []Region
	rows := keyboard.Rows(l)
	for i, row := range rows {
		y := TextAreaH + int16(i)*KeyH
		x := int16(row.Indent) * KeyW / 2
		for _, r := range row.Keys {
			out = append(out, Region{
				Rect:   Rect{X: x, Y: y, W: KeyW, H: KeyH},
				Target: TargetKey,
				Key:    keyboard.Key{Kind: keyboard.Literal, Rune: r},
			})
			x += KeyW
		}
	}

	third := TextAreaH + 2*KeyH
	side := KeyW * 3 / 2
	bottom := TextAreaH + 3*KeyH
	controls := []struct {
		rect Rect
		kind keyboard.KeyKind
	}{
		{Rect{X: 0, Y: third, W: side, H: KeyH}, keyboard.Shift},
		{Rect{X: ScreenW - side, Y: third, W: side, H: KeyH}, keyboard.Backspace},
		{Rect{X: 0, Y: bottom, W: 2 * KeyW, H: KeyH}, keyboard.Mode},
		{Rect{X: 2 * KeyW, Y: bottom, W: 5 * KeyW, H: KeyH}, keyboard.Space},
		{Rect{X: 7 * KeyW, Y: bottom, W: 2 * KeyW, H: KeyH}, keyboard.Enter},
		{Rect{X: 9 * KeyW, Y: bottom, W: KeyW, H: KeyH}, keyboard.Cancel},
	}
	for _, c := range controls {
		out = append(out, Region{Rect: c.rect, Target: TargetKey, Key: keyboard.Key{Kind: c.kind}})
	}
	return out
}
