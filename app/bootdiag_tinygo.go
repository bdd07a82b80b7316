//go:build tinygo && bootdebug

package app

import (
	"machine"
	"sync"
	"time"

	"alarmclock/hal"
)

var (
	bootMu    sync.Mutex
	bootStage string
)

func bootDiagSetStep(stage string) {
	bootMu.Lock()
	bootStage = stage
	bootMu.Unlock()
}

// bootDiagStart repeats the current boot stage on the log and USB CDC every
// 250 ms until the clock reports ready.
func bootDiagStart(h hal.HAL) {
	if h == nil {
		return
	}
	l := h.Logger()

	go func() {
		for {
			bootMu.Lock()
			stage := bootStage
			bootMu.Unlock()

			if stage == "" {
				stage = "<none>"
			}
			line := "boot: stage " + stage
			if l != nil {
				l.WriteLineString(line)
			}
			// Mirror to USB CDC so early boot is visible without a UART adapter.
			if usb := machine.USBCDC; usb != nil {
				_, _ = usb.Write([]byte(line + "\r\n"))
			}
			if stage == "ready" {
				return
			}
			time.Sleep(250 * time.Millisecond)
		}
	}()
}
