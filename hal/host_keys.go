//go:build !tinygo && cgo

package hal

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollKeys maps desk-testing shortcuts onto the simulated hardware:
// arrows move the light sensor, PageUp/PageDown move the wall clock a minute.
func (h *hostHAL) pollKeys() {
	const lightStep = hostLightMaxRaw / 16

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		h.light.adjust(lightStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		h.light.adjust(-lightStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		h.rtc.Shift(time.Minute)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		h.rtc.Shift(-time.Minute)
	}
}
