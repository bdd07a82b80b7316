//go:build !tinygo && cgo && !rpi

package hal

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// hostTouch turns the left mouse button, or the first finger on a touch
// screen, into panel contact.
type hostTouch struct {
	mu     sync.Mutex
	w, h   int
	p      Point
	down   bool
	touchs []ebiten.TouchID
}

func newHostTouch(w, h int) (*hostTouch, error) {
	return &hostTouch{w: w, h: h}, nil
}

// poll must run on the Ebiten update goroutine.
func (t *hostTouch) poll() {
	var x, y int
	down := false

	t.touchs = ebiten.AppendTouchIDs(t.touchs[:0])
	if len(t.touchs) > 0 {
		x, y = ebiten.TouchPosition(t.touchs[0])
		down = true
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		down = true
	}
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		down = false
	}

	t.mu.Lock()
	t.p = Point{X: int16(x), Y: int16(y)}
	t.down = down
	t.mu.Unlock()
}

func (t *hostTouch) Sample() (Point, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p, t.down
}
