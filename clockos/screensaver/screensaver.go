// Package screensaver bounces the clock face around the screen.
package screensaver

import "alarmclock/clockos/ui"

// Config sizes the screen, the moving box and the per-step delta.
type Config struct {
	ScreenW, ScreenH int16
	BoxW, BoxH       int16
	Step             int16
}

// DefaultConfig fits the big time digits on a 320×240 panel.
func DefaultConfig() Config {
	return Config{ScreenW: ui.ScreenW, ScreenH: ui.ScreenH, BoxW: 150, BoxH: 60, Step: 1}
}

// State is the box position, its travel direction and its color.
type State struct {
	X, Y  int16
	Right bool
	Down  bool
	Color int
}

// Frame is one animation step. Dirty covers Prev and Next; Full asks for a
// whole-screen clear instead.
type Frame struct {
	State State
	Prev  ui.Rect
	Next  ui.Rect
	Dirty ui.Rect
	Full  bool
	Color uint16
}

// Animator computes successive frames.
type Animator struct {
	cfg   Config
	src   Source
	st    State
	fresh bool
}

// New returns an animator positioned for its first frame. A nil src uses a
// fixed-seed XorShift.
func New(cfg Config, src Source) *Animator {
	if cfg.Step <= 0 {
		cfg.Step = 1
	}
	if cfg.BoxW > cfg.ScreenW {
		cfg.BoxW = cfg.ScreenW
	}
	if cfg.BoxH > cfg.ScreenH {
		cfg.BoxH = cfg.ScreenH
	}
	if src == nil {
		src = NewXorShift(1)
	}
	a := &Animator{cfg: cfg, src: src}
	a.Reset()
	return a
}

// Reset returns to the start position and forces the next frame to be full.
func (a *Animator) Reset() {
	a.st = State{X: 0, Y: 20, Right: true, Down: true}
	a.st.Y = min(a.st.Y, a.cfg.ScreenH-a.cfg.BoxH)
	a.st.Color = a.pick()
	a.fresh = true
}

// State returns the current position without stepping.
func (a *Animator) State() State { return a.st }

// Step moves the box one delta. A box that would cross an edge is clamped to
// it, its direction on that axis flips and a new color is drawn.
func (a *Animator) Step() Frame {
	if a.fresh {
		a.fresh = false
		r := a.rect()
		return Frame{State: a.st, Prev: r, Next: r, Dirty: ui.Rect{W: a.cfg.ScreenW, H: a.cfg.ScreenH}, Full: true, Color: Palette[a.st.Color]}
	}

	prev := a.rect()
	maxX := a.cfg.ScreenW - a.cfg.BoxW
	maxY := a.cfg.ScreenH - a.cfg.BoxH
	bounced := false

	x, right := advance(a.st.X, a.st.Right, a.cfg.Step, maxX)
	if right != a.st.Right {
		bounced = true
	}
	y, down := advance(a.st.Y, a.st.Down, a.cfg.Step, maxY)
	if down != a.st.Down {
		bounced = true
	}
	a.st.X, a.st.Right = x, right
	a.st.Y, a.st.Down = y, down
	if bounced {
		a.st.Color = a.pick()
	}

	next := a.rect()
	return Frame{State: a.st, Prev: prev, Next: next, Dirty: prev.Union(next), Color: Palette[a.st.Color]}
}

func advance(pos int16, forward bool, step, limit int16) (int16, bool) {
	if limit <= 0 {
		return 0, forward
	}
	if forward {
		pos += step
		if pos >= limit {
			return limit, false
		}
		return pos, true
	}
	pos -= step
	if pos <= 0 {
		return 0, true
	}
	return pos, false
}

func (a *Animator) rect() ui.Rect {
	return ui.Rect{X: a.st.X, Y: a.st.Y, W: a.cfg.BoxW, H: a.cfg.BoxH}
}

func (a *Animator) pick() int {
	return int(a.src.Uint32() % uint32(len(Palette)))
}
