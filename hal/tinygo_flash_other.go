//go:build tinygo && baremetal && !(rp2040 || rp2350)

package hal

func newBoardFlash() Flash { return noFlash{} }
