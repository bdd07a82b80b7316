package screensaver

// Palette holds the RGB565 colors the bouncing face cycles through.
var Palette = [...]uint16{
	0x6D9D, // argentinian blue
	0x867E, // light sky blue
	0x897B, // blue violet
	0x065F, // vivid sky blue
	0xF7BB,
	0xDD0D,
	0xF52C, // sandy brown
	0x07FF, // cyan
	0x46F9,
	0xCC53,
	0x67E0,
	0x0653,
	0x07E0, // green
	0xAFE6,
	0xF81F, // magenta
	0xF897,
	0xFE76,
	0xFCCC,
	0xFC60,
	0xFBE0,
	0xFA69,
	0xFAF9,
	0xFBBF,
	0xB81F,
	0x991D,
	0xF840, // candy apple red
	0xF800, // red
	0xFB09,
	0xFFFD,
	0x7FE0,
	0xFEE0,
	0xFFE0, // yellow
	0xBFE0,
}

// Source is a pseudo-random draw for palette picks.
type Source interface {
	Uint32() uint32
}

// XorShift is a 32-bit xorshift generator. The same seed replays the same
// sequence.
type XorShift struct {
	s uint32
}

// NewXorShift seeds a generator. A zero seed is replaced, since xorshift
// never leaves zero.
func NewXorShift(seed uint32) *XorShift {
	if seed == 0 {
		seed = 0x9E3779B9
	}
	return &XorShift{s: seed}
}

func (x *XorShift) Uint32() uint32 {
	s := x.s
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.s = s
	return s
}
