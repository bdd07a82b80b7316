//go:build !tinygo

package hal

import (
	"os"
	"strconv"
	"sync/atomic"
)

// hostLightMaxRaw mirrors the 12-bit ADC on the device.
const hostLightMaxRaw = 4095

// hostLight is a simulated photodiode. CLOCK_LIGHT_RAW seeds the reading and
// the window's arrow keys move it.
type hostLight struct {
	raw atomic.Uint32
}

func newHostLight() *hostLight {
	l := &hostLight{}
	l.raw.Store(hostLightMaxRaw / 2)
	if s := os.Getenv("CLOCK_LIGHT_RAW"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 16); err == nil {
			l.set(int(v))
		}
	}
	return l
}

func (l *hostLight) ReadRaw() (uint16, error) { return uint16(l.raw.Load()), nil }
func (l *hostLight) MaxRaw() uint16           { return hostLightMaxRaw }

func (l *hostLight) set(v int) {
	if v < 0 {
		v = 0
	}
	if v > hostLightMaxRaw {
		v = hostLightMaxRaw
	}
	l.raw.Store(uint32(v))
}

func (l *hostLight) adjust(delta int) {
	l.set(int(l.raw.Load()) + delta)
}
