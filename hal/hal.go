package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
//
// The buzzer line is driven through it as well.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// RectPresenter is implemented by framebuffers that can push a sub-rectangle
// instead of the whole frame.
type RectPresenter interface {
	PresentRect(x, y, w, h int) error
}

// Display provides access to the framebuffer and the backlight.
type Display interface {
	Framebuffer() Framebuffer

	// SetBrightness sets the backlight level. 0 is off, 255 is full.
	SetBrightness(level uint8)
}

// Point is a touch coordinate in display pixels.
type Point struct {
	X, Y int16
}

// Touch is a polled touch panel.
type Touch interface {
	// Sample returns the current contact point, or ok=false when nothing touches the panel.
	Sample() (p Point, ok bool)
}

// Input provides access to input devices (if available).
type Input interface {
	Touch() Touch
}

// Flash provides raw access to non-volatile memory.
//
// It is intentionally low-level: addresses and erase blocks only.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

// Time is the monotonic millisecond counter. It wraps after ~49.7 days.
type Time interface {
	Millis() uint32
}

// RTC is the battery-backed wall clock.
type RTC interface {
	Now() (time.Time, error)
	Set(t time.Time) error

	// Seconds delivers one value per square-wave edge (1 Hz).
	Seconds() <-chan uint64
}

// Timer is a periodic interrupt source.
//
// Start arms the timer so fn runs hz times per second. fn runs in
// interrupt context: it must not block or allocate.
// Stop disarms the timer. When Stop returns, fn is not running and will not run again.
type Timer interface {
	Start(hz uint32, fn func()) error
	Stop()
}

// Buzzer is the alarm sounder: a bare output line plus the timer that toggles it.
type Buzzer interface {
	Pin() LED
	Timer() Timer
}

// LightSensor reads the ambient light photodiode.
type LightSensor interface {
	ReadRaw() (uint16, error)
	MaxRaw() uint16
}

// HAL provides the only contact point between the clock and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Flash() Flash
	Time() Time
	RTC() RTC
	Buzzer() Buzzer
	Light() LightSensor
}
