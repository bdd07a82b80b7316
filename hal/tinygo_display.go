//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ili9341"
)

// ili9341Framebuffer keeps a full RGB565 frame in RAM and pushes it (or a
// window of it) to the panel on Present.
type ili9341Framebuffer struct {
	dev    *ili9341.Device
	w, h   int
	stride int
	buf    []byte
	row    []byte
}

func newILI9341Framebuffer() (*ili9341Framebuffer, error) {
	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		SCK:       pinTFTSCK,
		SDO:       pinTFTSDO,
		SDI:       pinTFTSDI,
		Frequency: 40_000_000,
	}); err != nil {
		return nil, err
	}

	dev := ili9341.NewSPI(spi, pinTFTDC, pinTFTCS, pinTFTRST)
	dev.Configure(ili9341.Config{})
	if err := dev.SetRotation(drivers.Rotation90); err != nil {
		return nil, err
	}
	w, h := dev.Size()

	f := &ili9341Framebuffer{
		dev:    dev,
		w:      int(w),
		h:      int(h),
		stride: int(w) * 2,
	}
	f.buf = make([]byte, f.stride*f.h)
	f.row = make([]byte, f.stride)
	return f, nil
}

func (f *ili9341Framebuffer) Width() int          { return f.w }
func (f *ili9341Framebuffer) Height() int         { return f.h }
func (f *ili9341Framebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *ili9341Framebuffer) StrideBytes() int    { return f.stride }
func (f *ili9341Framebuffer) Buffer() []byte      { return f.buf }

func (f *ili9341Framebuffer) ClearRGB(r, g, b uint8) {
	fill565(f.buf, r, g, b)
}

func (f *ili9341Framebuffer) Present() error {
	return f.PresentRect(0, 0, f.w, f.h)
}

// PresentRect pushes one window of the frame. The panel wants big-endian
// pixels, so each row is byte-swapped on the way out.
func (f *ili9341Framebuffer) PresentRect(x, y, w, h int) error {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > f.w {
		w = f.w - x
	}
	if y+h > f.h {
		h = f.h - y
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	for yy := y; yy < y+h; yy++ {
		src := f.buf[yy*f.stride+x*2 : yy*f.stride+(x+w)*2]
		dst := f.row[:len(src)]
		for i := 0; i+1 < len(src); i += 2 {
			dst[i] = src[i+1]
			dst[i+1] = src[i]
		}
		if err := f.dev.DrawRGBBitmap8(int16(x), int16(yy), dst, int16(w), 1); err != nil {
			return err
		}
	}
	return nil
}

// pwmBacklight dims the TFT LED pin.
type pwmBacklight struct {
	pwm pwmDevice
	ch  uint8
}

type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

func newPWMBacklight(pin machine.Pin) *pwmBacklight {
	pwm := pwmForPin(pin)
	if pwm == nil {
		return nil
	}
	if err := pwm.Configure(machine.PWMConfig{Period: 1e9 / 20000}); err != nil {
		return nil
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil
	}
	b := &pwmBacklight{pwm: pwm, ch: ch}
	b.Set(255)
	return b
}

func (b *pwmBacklight) Set(level uint8) {
	b.pwm.Set(b.ch, b.pwm.Top()*uint32(level)/255)
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}
