//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb        Framebuffer
	backlight *pwmBacklight
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

func (d tinyGoDisplay) SetBrightness(level uint8) {
	if d.backlight != nil {
		d.backlight.Set(level)
	}
}

type tinyGoInput struct {
	touch Touch
}

func (in tinyGoInput) Touch() Touch { return in.touch }

type tinyGoTime struct {
	start time.Time
}

func newTinyGoTime() *tinyGoTime {
	return &tinyGoTime{start: time.Now()}
}

func (t *tinyGoTime) Millis() uint32 {
	return uint32(time.Since(t.start).Milliseconds())
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

type tinyGoBuzzer struct {
	pin   *pinLED
	timer Timer
}

func (b *tinyGoBuzzer) Pin() LED     { return b.pin }
func (b *tinyGoBuzzer) Timer() Timer { return b.timer }
