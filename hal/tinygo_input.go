//go:build tinygo && baremetal

package hal

import (
	"tinygo.org/x/drivers/xpt2046"
)

// Raw XPT2046 extents for the 2.8" module, measured at the panel corners.
const (
	touchRawXMin = 0x0F00
	touchRawXMax = 0xF000
	touchRawYMin = 0x1400
	touchRawYMax = 0xEC00
)

type xpt2046Touch struct {
	dev  xpt2046.Device
	w, h int32
}

func newXPT2046Touch() *xpt2046Touch {
	dev := xpt2046.New(pinTouchCLK, pinTouchCS, pinTouchDIN, pinTouchDO, pinTouchIRQ)
	dev.Configure(&xpt2046.Config{Precision: 10})
	return &xpt2046Touch{dev: dev, w: 320, h: 240}
}

func (t *xpt2046Touch) Sample() (Point, bool) {
	if !t.dev.Touched() {
		return Point{}, false
	}
	p := t.dev.ReadTouchPoint()
	if p.Z == 0 {
		return Point{}, false
	}
	x := scaleTouch(int32(p.Y), touchRawYMin, touchRawYMax, t.w)
	y := scaleTouch(int32(p.X), touchRawXMin, touchRawXMax, t.h)
	return Point{X: int16(x), Y: int16(y)}, true
}

func scaleTouch(raw, lo, hi, span int32) int32 {
	v := (raw - lo) * span / (hi - lo)
	if v < 0 {
		v = 0
	}
	if v >= span {
		v = span - 1
	}
	return v
}
