// Package render draws page views onto the framebuffer.
package render

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"alarmclock/clockos/alarm"
	"alarmclock/clockos/clocktime"
	"alarmclock/clockos/keyboard"
	"alarmclock/clockos/page"
	"alarmclock/clockos/screensaver"
	"alarmclock/clockos/ui"
	"alarmclock/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorFG     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorDim    = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorAccent = color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	colorOn     = color.RGBA{R: 0x00, G: 0xC0, B: 0x40, A: 0xFF}
	colorAlert  = color.RGBA{R: 0xFF, G: 0x20, B: 0x20, A: 0xFF}
	colorKey    = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
)

const (
	timeRowX0 = 10
	edgeW     = 4
)

// sunRays are the ray directions around the good-morning sun, in hundredths.
var sunRays = [...][2]int16{
	{100, 0}, {71, 71}, {0, 100}, {-71, 71},
	{-100, 0}, {-71, -71}, {0, -100}, {71, -71},
}

// Renderer redraws the screen when the view changes.
type Renderer struct {
	d     *fbDisplay
	big   tinyfont.Fonter
	mid   tinyfont.Fonter
	small tinyfont.Fonter
	tiny  tinyfont.Fonter

	drawn    bool
	lastSeq  uint32
	lastPage ui.Page

	edgeOn    bool
	edgeColor uint16
}

// New returns a renderer for fb. A nil fb makes Draw a no-op.
func New(fb hal.Framebuffer) *Renderer {
	return &Renderer{
		d:     &fbDisplay{fb: fb},
		big:   &freemono.Bold24pt7b,
		mid:   &freemono.Bold12pt7b,
		small: &freemono.Regular9pt7b,
		tiny:  &proggy.TinySZ8pt7b,
	}
}

// Draw renders v if it changed since the last call.
func (r *Renderer) Draw(v page.View) error {
	if r.d.fb == nil {
		return nil
	}
	if r.drawn && v.Seq == r.lastSeq && v.Page == r.lastPage {
		return nil
	}
	pageChanged := !r.drawn || v.Page != r.lastPage
	r.drawn, r.lastSeq, r.lastPage = true, v.Seq, v.Page

	if v.Page == ui.PageScreensaver {
		return r.drawScreensaver(v, pageChanged)
	}

	r.d.FillRect(ui.Rect{W: ui.ScreenW, H: ui.ScreenH}, colorBG)
	switch v.Page {
	case ui.PageMain:
		if v.GoodMorning {
			r.drawGoodMorning(v)
		} else {
			r.drawMain(v)
		}
	case ui.PageAlarmSet:
		r.drawAlarmSet(v)
	case ui.PageTimeSet:
		r.drawTimeSet(v)
	case ui.PageAlarmTriggered:
		r.drawAlarmTriggered(v)
	case ui.PageKeyboard:
		r.drawKeyboard(v)
	}
	return r.d.fb.Present()
}

func (r *Renderer) text(f tinyfont.Fonter, x, y int16, c color.RGBA, s string) {
	tinyfont.WriteLine(r.d, f, x, y, s, c)
}

func (r *Renderer) textWidth(f tinyfont.Fonter, s string) int16 {
	_, w := tinyfont.LineWidth(f, s)
	return int16(w)
}

// centered writes s centered horizontally in rect with its baseline at
// baseline.
func (r *Renderer) centered(f tinyfont.Fonter, rect ui.Rect, baseline int16, c color.RGBA, s string) {
	x := rect.X + (rect.W-r.textWidth(f, s))/2
	r.text(f, x, baseline, c, s)
}

func (r *Renderer) button(rect ui.Rect, label string, fill color.RGBA) {
	r.d.FillRect(rect, fill)
	r.d.StrokeRect(rect, colorDim)
	r.centered(r.mid, rect, rect.Y+rect.H/2+8, colorFG, label)
}

// arrow draws a filled triangle inside rect pointing up or down.
func (r *Renderer) arrow(rect ui.Rect, up bool) {
	r.d.StrokeRect(rect, colorDim)
	h := rect.H - 16
	cx := rect.X + rect.W/2
	for i := int16(0); i < h; i++ {
		half := i * rect.W / (2 * (h + 8))
		y := rect.Y + 8 + i
		if !up {
			y = rect.Y + rect.H - 8 - i - 1
		}
		r.d.FillRect(ui.Rect{X: cx - half, Y: y, W: 2*half + 1, H: 1}, colorAccent)
	}
}

func (r *Renderer) drawMain(v page.View) {
	now := v.Now
	r.text(r.big, timeRowX0, ui.TimeRowY0, colorFG, now.HourMinute())
	x := timeRowX0 + r.textWidth(r.big, now.HourMinute()) + 6
	r.text(r.mid, x, ui.TimeRowY0-30, colorAccent, now.Meridiem())
	r.text(r.mid, x, ui.TimeRowY0, colorDim, fmt.Sprintf(":%02d", now.Second))

	r.text(r.mid, timeRowX0, ui.DateRowY0, colorFG, now.DateString())

	if !v.Alarm.Enabled {
		r.text(r.mid, timeRowX0, ui.AlarmRowY0, colorDim, "Alarm off")
		return
	}
	line := "Alarm " + v.Alarm.String()
	r.text(r.mid, timeRowX0, ui.AlarmRowY0, colorOn, line)
	until := fmt.Sprintf("in %dh%02dm", v.MinutesUntil/60, v.MinutesUntil%60)
	r.text(r.small, timeRowX0, ui.AlarmRowY0+18, colorDim, until)
	if v.Alarm.Label != "" {
		r.text(r.small, ui.ScreenW/2, ui.AlarmRowY0+18, colorDim, v.Alarm.Label)
	}
}

// drawScreensaver clears where the face was and draws it at its new spot. A
// new page, a full frame or an edge change repaints and presents everything.
func (r *Renderer) drawScreensaver(v page.View, pageChanged bool) error {
	f := v.Frame
	full := f.Full || pageChanged || v.Edge != r.edgeOn || (v.Edge && f.Color != r.edgeColor)
	r.edgeOn, r.edgeColor = v.Edge, f.Color
	if full {
		r.d.FillRect(ui.Rect{W: ui.ScreenW, H: ui.ScreenH}, colorBG)
	} else {
		r.d.FillRect(f.Prev, colorBG)
	}
	if v.Edge {
		// Repainting restores edge pixels the cleared box covered; the rest
		// already hold this color.
		r.drawEdge(rgbaFrom565(f.Color))
	}
	r.drawSaverFace(f, v)
	if full {
		return r.d.fb.Present()
	}
	return r.d.present(f.Dirty)
}

func (r *Renderer) drawEdge(c color.RGBA) {
	r.d.FillRect(ui.Rect{W: ui.ScreenW, H: edgeW}, c)
	r.d.FillRect(ui.Rect{Y: ui.ScreenH - edgeW, W: ui.ScreenW, H: edgeW}, c)
	r.d.FillRect(ui.Rect{W: edgeW, H: ui.ScreenH}, c)
	r.d.FillRect(ui.Rect{X: ui.ScreenW - edgeW, W: edgeW, H: ui.ScreenH}, c)
}

func (r *Renderer) drawSaverFace(f screensaver.Frame, v page.View) {
	box := f.Next
	c := rgbaFrom565(f.Color)
	r.centered(r.big, box, box.Y+box.H-20, c, v.Now.HourMinute())
	r.centered(r.tiny, box, box.Y+box.H-4, c, v.Now.DateString())
}

func (r *Renderer) drawDigits(hour, minute uint8) {
	rect := ui.DigitsRect
	r.text(r.big, rect.X+10, rect.Y+rect.H-14, colorFG, fmt.Sprintf("%2d:%02d", hour, minute))
}

func (r *Renderer) drawEditArrows() {
	for _, reg := range ui.Regions(ui.PageAlarmSet) {
		switch reg.Target {
		case ui.TargetHourUp, ui.TargetMinuteUp:
			r.arrow(reg.Rect, true)
		case ui.TargetHourDown, ui.TargetMinuteDown:
			r.arrow(reg.Rect, false)
		}
	}
}

func (r *Renderer) drawAlarmSet(v page.View) {
	w := v.WorkAlarm
	r.drawEditArrows()
	r.drawDigits(w.Hour, w.Minute)
	for _, reg := range ui.Regions(ui.PageAlarmSet) {
		switch reg.Target {
		case ui.TargetMeridiem:
			r.button(reg.Rect, clocktime.Meridiem(w.IsAM), colorKey)
		case ui.TargetAlarmOnOff:
			if w.Enabled {
				r.button(reg.Rect, "ON", colorOn)
			} else {
				r.button(reg.Rect, "OFF", colorKey)
			}
		case ui.TargetLabel:
			r.button(reg.Rect, "LABEL", colorKey)
		case ui.TargetSet:
			r.button(reg.Rect, "SET", colorKey)
		case ui.TargetCancel:
			r.button(reg.Rect, "X", colorAlert)
		}
	}
	if w.Label != "" {
		r.text(r.small, ui.DigitsRect.X, ui.DigitsRect.Y+ui.DigitsRect.H+2, colorDim, w.Label)
	}
	if v.AlarmQueued {
		r.text(r.tiny, 230, 20, colorAlert, "ALARM!")
	}
}

func (r *Renderer) drawTimeSet(v page.View) {
	w := v.WorkTime
	r.drawEditArrows()
	r.drawDigits(w.Hour, w.Minute)
	for _, reg := range ui.Regions(ui.PageTimeSet) {
		switch reg.Target {
		case ui.TargetMeridiem:
			r.button(reg.Rect, clocktime.Meridiem(w.IsAM), colorKey)
		case ui.TargetSet:
			r.button(reg.Rect, "SET", colorKey)
		case ui.TargetCancel:
			r.button(reg.Rect, "X", colorAlert)
		}
	}
	if v.AlarmQueued {
		r.text(r.tiny, 230, 20, colorAlert, "ALARM!")
	}
}

func (r *Renderer) drawAlarmTriggered(v page.View) {
	screen := ui.Rect{W: ui.ScreenW, H: ui.ScreenH}
	r.centered(r.big, screen, 70, colorAlert, "WAKE UP")
	r.centered(r.mid, screen, 110, colorFG, v.Now.HourMinute()+" "+v.Now.Meridiem())
	if v.Alarm.Label != "" {
		r.centered(r.mid, screen, 140, colorAccent, v.Alarm.Label)
	}

	need := v.LongPressSeconds
	r.centered(r.small, screen, 180, colorDim, fmt.Sprintf("Hold %d s to stop", need))
	bar := ui.Rect{X: 20, Y: 195, W: ui.ScreenW - 40, H: 20}
	r.d.StrokeRect(bar, colorDim)
	if need > 0 && v.HeldSeconds > 0 {
		held := min(v.HeldSeconds, need)
		fill := int16(uint32(bar.W-4) * held / need)
		r.d.FillRect(ui.Rect{X: bar.X + 2, Y: bar.Y + 2, W: fill, H: bar.H - 4}, colorOn)
	}
	rs := v.RingingSeconds
	r.centered(r.tiny, screen, 232, colorDim, fmt.Sprintf("ringing %d:%02d", rs/60, rs%60))
}

func (r *Renderer) drawGoodMorning(v page.View) {
	screen := ui.Rect{W: ui.ScreenW, H: ui.ScreenH}
	r.sun(ui.ScreenW/2, 60, 24, colorAccent)
	r.centered(r.mid, screen, 130, colorFG, "Good morning!")
	r.centered(r.mid, screen, 165, colorFG, v.Now.HourMinute()+" "+v.Now.Meridiem())
	r.centered(r.small, screen, 195, colorDim, v.Now.DateString())
	if v.Alarm.Label != "" {
		r.centered(r.small, screen, 222, colorAccent, v.Alarm.Label)
	}
}

// sun draws a filled disk of radius at (cx, cy) with short rays around it.
func (r *Renderer) sun(cx, cy, radius int16, c color.RGBA) {
	rr := int(radius) * int(radius)
	for dy := -radius; dy <= radius; dy++ {
		half := int16(isqrt(rr - int(dy)*int(dy)))
		r.d.FillRect(ui.Rect{X: cx - half, Y: cy + dy, W: 2*half + 1, H: 1}, c)
	}
	for _, dir := range sunRays {
		for i := radius + 6; i < radius+16; i++ {
			x := cx + int16(int32(dir[0])*int32(i)/100)
			y := cy + int16(int32(dir[1])*int32(i)/100)
			r.d.FillRect(ui.Rect{X: x - 1, Y: y - 1, W: 3, H: 3}, c)
		}
	}
}

func isqrt(v int) int {
	n := 0
	for (n+1)*(n+1) <= v {
		n++
	}
	return n
}

func (r *Renderer) drawKeyboard(v page.View) {
	r.text(r.small, 8, 20, colorDim, "Alarm label")
	r.d.StrokeRect(ui.Rect{X: 4, Y: 36, W: ui.ScreenW - 8, H: 40}, colorDim)
	r.text(r.mid, 10, 64, colorFG, v.Text+"_")
	r.text(r.tiny, ui.ScreenW-60, 92, colorDim, fmt.Sprintf("%d/%d", utf8.RuneCountInString(v.Text), alarm.MaxLabelLen))

	for _, reg := range ui.KeyboardRegions(v.Layout) {
		rect := ui.Rect{X: reg.Rect.X + 1, Y: reg.Rect.Y + 1, W: reg.Rect.W - 2, H: reg.Rect.H - 2}
		r.d.FillRect(rect, colorKey)
		r.centered(r.small, rect, rect.Y+rect.H/2+5, colorFG, keyLabel(reg.Key, v.Layout))
	}
}

func keyLabel(k keyboard.Key, l keyboard.Layout) string {
	switch k.Kind {
	case keyboard.Literal:
		return string(k.Rune)
	case keyboard.Shift:
		if l.Letters() {
			return "^"
		}
		return "#+="
	case keyboard.Mode:
		if l.Letters() {
			return "123"
		}
		return "ABC"
	case keyboard.Backspace:
		return "<-"
	case keyboard.Enter:
		return "OK"
	case keyboard.Cancel:
		return "X"
	case keyboard.Space:
		return "space"
	}
	return ""
}
