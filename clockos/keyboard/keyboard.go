// Package keyboard composes short text from on-screen key presses.
package keyboard

// Layout selects which characters the literal keys carry.
type Layout uint8

const (
	Capitals Layout = iota
	Lowercase
	Numeric
	Symbol
)

func (l Layout) String() string {
	switch l {
	case Capitals:
		return "ABC"
	case Lowercase:
		return "abc"
	case Numeric:
		return "123"
	case Symbol:
		return "#+="
	default:
		return "?"
	}
}

// Letters reports whether l is one of the alphabetic layouts.
func (l Layout) Letters() bool { return l == Capitals || l == Lowercase }

// KeyKind is what a key does when pressed.
type KeyKind uint8

const (
	Literal KeyKind = iota
	Shift
	Mode
	Backspace
	Enter
	Cancel
	Space
)

// Key is one key on the keyboard. Rune is only meaningful for Literal.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Result tells the caller whether text entry is over.
type Result uint8

const (
	Continue Result = iota
	Done
	Cancelled
)

func (r Result) String() string {
	switch r {
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	default:
		return "continue"
	}
}

// Composer holds one text-entry interaction.
type Composer struct {
	layout Layout
	buf    []rune
	max    int
}

// New returns a composer that accepts at most max runes.
func New(max int) *Composer {
	if max < 0 {
		max = 0
	}
	return &Composer{max: max, buf: make([]rune, 0, max)}
}

// Reset empties the buffer and returns to capitals.
func (c *Composer) Reset() {
	c.buf = c.buf[:0]
	c.layout = Capitals
}

// Seed replaces the buffer with s, truncated to the maximum length.
func (c *Composer) Seed(s string) {
	c.buf = c.buf[:0]
	for _, r := range s {
		if len(c.buf) == c.max {
			break
		}
		c.buf = append(c.buf, r)
	}
}

// Press applies k. Literal and space presses past the maximum length and
// backspace on an empty buffer do nothing.
func (c *Composer) Press(k Key) Result {
	switch k.Kind {
	case Literal:
		if k.Rune != 0 {
			c.add(k.Rune)
		}
	case Space:
		c.add(' ')
	case Backspace:
		if n := len(c.buf); n > 0 {
			c.buf = c.buf[:n-1]
		}
	case Shift:
		switch c.layout {
		case Capitals:
			c.layout = Lowercase
		case Lowercase:
			c.layout = Capitals
		case Numeric:
			c.layout = Symbol
		case Symbol:
			c.layout = Numeric
		}
	case Mode:
		if c.layout.Letters() {
			c.layout = Numeric
		} else {
			c.layout = Capitals
		}
	case Enter:
		return Done
	case Cancel:
		return Cancelled
	}
	return Continue
}

func (c *Composer) add(r rune) {
	if len(c.buf) >= c.max {
		return
	}
	c.buf = append(c.buf, r)
}

// Text returns the composed text.
func (c *Composer) Text() string { return string(c.buf) }

// Len returns the composed length in runes.
func (c *Composer) Len() int { return len(c.buf) }

// Max returns the length limit.
func (c *Composer) Max() int { return c.max }

// Layout returns the active layout.
func (c *Composer) Layout() Layout { return c.layout }
