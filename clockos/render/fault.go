package render

import (
	"strings"
	"unicode/utf8"

	"alarmclock/clockos/ui"
	"alarmclock/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var colorFault = colorAlert

// DrawFault paints lines on a red-bordered black screen, wrapping each line to
// the panel width, and presents the whole frame. Lines past the bottom edge
// are dropped.
func DrawFault(fb hal.Framebuffer, lines []string) error {
	if fb == nil {
		return hal.ErrNotImplemented
	}
	d := &fbDisplay{fb: fb}
	font := &freemono.Regular9pt7b
	lineH := int16(font.YAdvance)
	ascent := lineH * 3 / 4
	_, cw := tinyfont.LineWidth(font, "0")
	charW := int16(cw)
	w, h := d.Size()
	if charW <= 0 || lineH <= 0 || w <= 8 {
		return fb.Present()
	}

	fb.ClearRGB(0, 0, 0)
	d.StrokeRect(ui.Rect{W: w, H: h}, colorFault)

	cols := (w - 8) / charW
	y := int16(4)
	for _, line := range lines {
		for {
			if y+lineH > h-4 {
				return fb.Present()
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 4, y+ascent, chunk, colorFG)
			y += lineH
			line = strings.TrimLeft(rest, " ")
			if line == "" {
				break
			}
		}
	}
	return fb.Present()
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i := 0
	for count := int16(0); i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
