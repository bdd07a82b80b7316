//go:build !tinygo && rpi

package hal

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// GT1151 register map (Waveshare 2.13" touch HAT).
const (
	gt1151Addr       = 0x14
	gt1151RegStatus  = 0x814E
	gt1151RegPoint   = 0x814F
	gt1151PanelWidth = 122
	gt1151PanelHigh  = 250
)

// hostTouch reads a GT1151 capacitive controller over I²C on a Raspberry Pi
// and maps its portrait panel onto the landscape framebuffer.
type hostTouch struct {
	mu   sync.Mutex
	w, h int
	bus  i2c.BusCloser
	dev  *i2c.Dev

	last Point
	down bool
}

func newHostTouch(w, h int) (*hostTouch, error) {
	t := &hostTouch{w: w, h: h}
	if _, err := host.Init(); err != nil {
		return t, fmt.Errorf("gt1151: periph init: %w", err)
	}
	bus, err := i2creg.Open("1")
	if err != nil {
		return t, fmt.Errorf("gt1151: open i2c: %w", err)
	}
	t.bus = bus
	t.dev = &i2c.Dev{Bus: bus, Addr: gt1151Addr}
	return t, nil
}

func (t *hostTouch) poll() {}

func (t *hostTouch) Sample() (Point, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dev == nil {
		return Point{}, false
	}

	status, err := t.read(gt1151RegStatus, 1)
	if err != nil {
		return Point{}, false
	}
	if status[0]&0x80 == 0 {
		// No fresh report: the controller only flags new data, so hold the
		// last contact until it reports zero points.
		return t.last, t.down
	}
	count := int(status[0] & 0x0F)
	if count < 1 || count > 5 {
		_ = t.write(gt1151RegStatus, 0)
		t.down = false
		return Point{}, false
	}
	data, err := t.read(gt1151RegPoint, count*8)
	_ = t.write(gt1151RegStatus, 0)
	if err != nil {
		return Point{}, false
	}

	px := int(data[1]) | int(data[2])<<8
	py := int(data[3]) | int(data[4])<<8
	if px >= gt1151PanelWidth || py >= gt1151PanelHigh {
		return Point{}, false
	}
	t.last = Point{
		X: int16(py * t.w / gt1151PanelHigh),
		Y: int16((gt1151PanelWidth - 1 - px) * t.h / gt1151PanelWidth),
	}
	t.down = true
	return t.last, true
}

func (t *hostTouch) read(reg uint16, n int) ([]byte, error) {
	w := []byte{byte(reg >> 8), byte(reg)}
	r := make([]byte, n)
	if err := t.dev.Tx(w, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (t *hostTouch) write(reg uint16, b byte) error {
	return t.dev.Tx([]byte{byte(reg >> 8), byte(reg), b}, nil)
}
