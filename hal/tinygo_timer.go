//go:build tinygo && baremetal

package hal

import (
	"device/arm"
	"errors"
	"machine"
)

var errTimerRange = errors.New("systick: rate out of range")

// sysTickFn is the current buzzer callback. It is only swapped while SysTick
// is disabled.
var sysTickFn func()

//export SysTick_Handler
func sysTickHandler() {
	if fn := sysTickFn; fn != nil {
		fn()
	}
}

// sysTickTimer drives the buzzer from the Cortex-M SysTick, which the RP2040
// runtime leaves free.
type sysTickTimer struct{}

func (sysTickTimer) Start(hz uint32, fn func()) error {
	if hz == 0 || fn == nil {
		return errTimerRange
	}
	cycles := machine.CPUFrequency() / hz
	if cycles == 0 || cycles > 0xFFFFFF {
		return errTimerRange
	}
	sysTickTimer{}.Stop()
	sysTickFn = fn
	return arm.SetupSystemTimer(cycles)
}

func (sysTickTimer) Stop() {
	// CSR.ENABLE and TICKINT off, then drop any tick that is already pending.
	arm.SYST.SYST_CSR.ClearBits(0x3)
	arm.SCB.ICSR.Set(1 << 25)
	sysTickFn = nil
}
