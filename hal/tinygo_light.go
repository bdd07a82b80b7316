//go:build tinygo && baremetal

package hal

import "machine"

type adcLight struct {
	adc machine.ADC
}

func newADCLight(pin machine.Pin) *adcLight {
	machine.InitADC()
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &adcLight{adc: adc}
}

// ReadRaw returns the 16-bit scaled conversion.
func (l *adcLight) ReadRaw() (uint16, error) { return l.adc.Get(), nil }
func (l *adcLight) MaxRaw() uint16           { return 0xFFFF }
