//go:build !tinygo && !cgo && !rpi

package hal

// hostTouch never reports contact without the window backend.
type hostTouch struct{}

func newHostTouch(_, _ int) (*hostTouch, error) { return &hostTouch{}, nil }

func (t *hostTouch) poll() {}

func (t *hostTouch) Sample() (Point, bool) { return Point{}, false }
