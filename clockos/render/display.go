package render

import (
	"image/color"

	"alarmclock/clockos/ui"
	"alarmclock/hal"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*fbDisplay)(nil)

// fbDisplay draws into an RGB565 framebuffer through the drivers.Displayer
// interface tinyfont writes to.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

// FillRect paints r, clipped to the screen.
func (d *fbDisplay) FillRect(r ui.Rect, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	w, h := d.Size()
	r = r.Clip(w, h)
	if r.Empty() {
		return
	}
	buf := d.fb.Buffer()
	pixel := rgb565From888(c.R, c.G, c.B)
	lo, hi := byte(pixel), byte(pixel>>8)
	stride := d.fb.StrideBytes()
	for y := int(r.Y); y < int(r.Y+r.H); y++ {
		row := y * stride
		for x := int(r.X); x < int(r.X+r.W); x++ {
			off := row + x*2
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// StrokeRect draws a one-pixel outline of r.
func (d *fbDisplay) StrokeRect(r ui.Rect, c color.RGBA) {
	d.FillRect(ui.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	d.FillRect(ui.Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, c)
	d.FillRect(ui.Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	d.FillRect(ui.Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, c)
}

// present pushes r if the framebuffer supports partial updates, otherwise the
// whole frame.
func (d *fbDisplay) present(r ui.Rect) error {
	if d.fb == nil {
		return nil
	}
	if rp, ok := d.fb.(hal.RectPresenter); ok && !r.Empty() {
		return rp.PresentRect(int(r.X), int(r.Y), int(r.W), int(r.H))
	}
	return d.fb.Present()
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgbaFrom565(c uint16) color.RGBA {
	r := uint8(c>>11) & 0x1F
	g := uint8(c>>5) & 0x3F
	b := uint8(c) & 0x1F
	return color.RGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xFF}
}
