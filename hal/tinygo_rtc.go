//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ds3231"
)

const (
	ds3231Addr       = 0x68
	ds3231RegControl = 0x0E
)

// ds3231RTC reads wall time over I²C and counts SQW falling edges.
type ds3231RTC struct {
	bus *machine.I2C
	dev ds3231.Device
	ch  chan uint64
	seq uint64
}

func newDS3231RTC() (*ds3231RTC, error) {
	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{SDA: pinRTCSDA, SCL: pinRTCSCL}); err != nil {
		return nil, err
	}
	r := &ds3231RTC{bus: bus, dev: ds3231.New(bus), ch: make(chan uint64, 4)}
	r.dev.Configure()

	// INTCN=0, RS=00: 1 Hz square wave on SQW.
	if err := bus.Tx(ds3231Addr, []byte{ds3231RegControl, 0x00}, nil); err != nil {
		return r, err
	}

	pinRTCSQW.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	err := pinRTCSQW.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		r.seq++
		select {
		case r.ch <- r.seq:
		default:
		}
	})
	return r, err
}

func (r *ds3231RTC) Now() (time.Time, error) { return r.dev.ReadTime() }
func (r *ds3231RTC) Set(t time.Time) error   { return r.dev.SetTime(t) }
func (r *ds3231RTC) Seconds() <-chan uint64  { return r.ch }
