package keyboard

// Row is one row of literal keys. Indent is the left inset in half-key
// widths.
type Row struct {
	Indent int
	Keys   string
}

var (
	capitalRows = []Row{
		{0, "QWERTYUIOP"},
		{1, "ASDFGHJKL"},
		{3, "ZXCVBNM"},
	}
	lowercaseRows = []Row{
		{0, "qwertyuiop"},
		{1, "asdfghjkl"},
		{3, "zxcvbnm"},
	}
	numericRows = []Row{
		{0, "1234567890"},
		{0, `-/:;()$&@"`},
		{5, ".,?!'"},
	}
	symbolRows = []Row{
		{0, "[]{}#%^*+="},
		{4, `_\|~<>`},
		{5, ".,?!'"},
	}
)

// Rows returns the literal rows for l, top to bottom.
func Rows(l Layout) []Row {
	switch l {
	case Lowercase:
		return lowercaseRows
	case Numeric:
		return numericRows
	case Symbol:
		return symbolRows
	default:
		return capitalRows
	}
}
