//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// Host display geometry matches the 2.8" ILI9341 panel in landscape.
const (
	hostDisplayWidth  = 320
	hostDisplayHeight = 240
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	disp   *hostDisplay
	touch  *hostTouch
	t      *hostTime
	rtc    *hostRTC
	buzzer *hostBuzzer
	light  *hostLight
	flash  *FileFlash
}

// New returns a host HAL implementation.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	fb := newHostFramebuffer(hostDisplayWidth, hostDisplayHeight)
	h := &hostHAL{
		logger: logger,
		fb:     fb,
		disp:   &hostDisplay{fb: fb},
		t:      newHostTime(),
		rtc:    newHostRTC(),
		buzzer: newHostBuzzer(),
		light:  newHostLight(),
		flash:  newHostFlash(),
	}
	h.disp.level.Store(255)

	touch, err := newHostTouch(fb.width, fb.height)
	if err != nil {
		logger.WriteLineString(fmt.Sprintf("hal: touch unavailable: %v", err))
	}
	h.touch = touch
	return h
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Display() Display   { return h.disp }
func (h *hostHAL) Input() Input       { return hostInput{touch: h.touch} }
func (h *hostHAL) Flash() Flash       { return h.flash }
func (h *hostHAL) Time() Time         { return h.t }
func (h *hostHAL) RTC() RTC           { return h.rtc }
func (h *hostHAL) Buzzer() Buzzer     { return h.buzzer }
func (h *hostHAL) Light() LightSensor { return h.light }

type hostDisplay struct {
	fb    *hostFramebuffer
	level atomic.Uint32
}

func (d *hostDisplay) Framebuffer() Framebuffer { return d.fb }

func (d *hostDisplay) SetBrightness(level uint8) { d.level.Store(uint32(level)) }

func (d *hostDisplay) brightness() uint8 { return uint8(d.level.Load()) }

type hostInput struct {
	touch *hostTouch
}

func (in hostInput) Touch() Touch {
	if in.touch == nil {
		return nil
	}
	return in.touch
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
