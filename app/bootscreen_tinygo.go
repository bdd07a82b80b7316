//go:build tinygo && bootdebug

package app

import (
	"image/color"

	"alarmclock/hal"
	"alarmclock/internal/buildinfo"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// bootScreen shows the boot stage on the panel so a hang can be located
// without a serial console.
func bootScreen(h hal.HAL, stage string) {
	bootDiagSetStep(stage)
	if h == nil {
		return
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(0, 0, 0)
	d := bootDisplay{fb: fb}
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 4, 12, "alarmclock "+buildinfo.Short(), fg)
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 4, 28, "boot: "+stage, fg)
	_ = fb.Present()
}

var _ drivers.Displayer = bootDisplay{}

type bootDisplay struct {
	fb hal.Framebuffer
}

func (d bootDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d bootDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	pixel := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d bootDisplay) Display() error { return nil }
