package app

import (
	"alarmclock/clockos/render"
	"alarmclock/hal"
)

// faultScreen shows lines on the panel at full backlight. Missing display
// hardware only leaves the log.
func faultScreen(h hal.HAL, lines []string) {
	if h == nil {
		return
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	disp.SetBrightness(255)
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	if err := render.DrawFault(fb, lines); err != nil {
		logTo(h.Logger(), "clock: fault screen: "+err.Error())
	}
}
