// Package touch turns raw touch samples into UI actions.
package touch

import (
	"alarmclock/clockos/keyboard"
	"alarmclock/clockos/ui"
	"alarmclock/hal"
)

// Kind is how a press is progressing.
type Kind uint8

const (
	None Kind = iota
	// Tap is the first sample of a press.
	Tap
	// Hold is every later sample of the same press.
	Hold
)

func (k Kind) String() string {
	switch k {
	case Tap:
		return "tap"
	case Hold:
		return "hold"
	default:
		return "none"
	}
}

// Action is a classified touch.
type Action struct {
	Kind   Kind
	Target ui.Target
	Key    keyboard.Key
	Point  hal.Point
	HeldMs uint32
}

// Classifier hit-tests points against the active page's region table.
type Classifier struct {
	tables   map[ui.Page][]ui.Region
	layout   keyboard.Layout
	keyboard []ui.Region
}

// NewClassifier builds the fixed tables once and the capitals key table.
func NewClassifier() *Classifier {
	c := &Classifier{tables: make(map[ui.Page][]ui.Region)}
	for _, p := range []ui.Page{ui.PageMain, ui.PageScreensaver, ui.PageAlarmSet, ui.PageAlarmTriggered, ui.PageTimeSet} {
		c.tables[p] = ui.Regions(p)
	}
	c.keyboard = ui.KeyboardRegions(c.layout)
	return c
}

// SetKeyboardLayout regenerates the key table when the layout changes.
func (c *Classifier) SetKeyboardLayout(l keyboard.Layout) {
	if l == c.layout && c.keyboard != nil {
		return
	}
	c.layout = l
	c.keyboard = ui.KeyboardRegions(l)
}

// Classify returns the first region of page containing p. A point outside
// every region yields an action of kind None.
func (c *Classifier) Classify(p hal.Point, page ui.Page) Action {
	table := c.tables[page]
	if page == ui.PageKeyboard {
		table = c.keyboard
	}
	for _, r := range table {
		if r.Rect.Contains(p) {
			return Action{Kind: Tap, Target: r.Target, Key: r.Key, Point: p}
		}
	}
	return Action{Point: p}
}
