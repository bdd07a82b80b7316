//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
)

// Board wiring (Raspberry Pi Pico + 2.8" ILI9341/XPT2046 module).
var (
	pinTFTSCK = machine.GP18
	pinTFTSDO = machine.GP19
	pinTFTSDI = machine.GP16
	pinTFTCS  = machine.GP17
	pinTFTDC  = machine.GP20
	pinTFTRST = machine.GP21
	pinTFTLED = machine.GP22

	pinTouchCLK = machine.GP10
	pinTouchCS  = machine.GP11
	pinTouchDIN = machine.GP12
	pinTouchDO  = machine.GP13
	pinTouchIRQ = machine.GP14

	pinRTCSDA = machine.GP4
	pinRTCSCL = machine.GP5
	pinRTCSQW = machine.GP6

	pinBuzzer = machine.GP15
	pinLight  = machine.ADC0
)

type tinyGoHAL struct {
	logger *uartLogger
	disp   tinyGoDisplay
	touch  Touch
	t      *tinyGoTime
	rtc    RTC
	buzzer *tinyGoBuzzer
	light  LightSensor
	flash  Flash
}

// New returns a Pico (RP2040) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	buzzerPin := pinBuzzer
	buzzerPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	buzzerPin.Low()

	h := &tinyGoHAL{
		logger: logger,
		t:      newTinyGoTime(),
		buzzer: &tinyGoBuzzer{pin: &pinLED{pin: buzzerPin}, timer: sysTickTimer{}},
		flash:  newBoardFlash(),
		light:  newADCLight(pinLight),
		touch:  newXPT2046Touch(),
	}

	h.disp = tinyGoDisplay{backlight: newPWMBacklight(pinTFTLED)}
	if fb, err := newILI9341Framebuffer(); err != nil {
		logger.WriteLineString(fmt.Sprintf("hal: display: %v", err))
	} else {
		h.disp.fb = fb
	}

	rtc, err := newDS3231RTC()
	if err != nil {
		logger.WriteLineString(fmt.Sprintf("hal: rtc: %v", err))
	}
	if rtc != nil {
		h.rtc = rtc
	}
	return h
}

func (h *tinyGoHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHAL) Display() Display   { return h.disp }
func (h *tinyGoHAL) Input() Input       { return tinyGoInput{touch: h.touch} }
func (h *tinyGoHAL) Flash() Flash       { return h.flash }
func (h *tinyGoHAL) Time() Time         { return h.t }
func (h *tinyGoHAL) RTC() RTC           { return h.rtc }
func (h *tinyGoHAL) Buzzer() Buzzer     { return h.buzzer }
func (h *tinyGoHAL) Light() LightSensor { return h.light }
