//go:build !tinygo && !cgo

package hal

import "errors"

// ErrNoWindow is returned by RunWindow in builds without cgo.
var ErrNoWindow = errors.New("window mode needs cgo (CGO_ENABLED=1); run with -headless instead")

func RunWindow(func(HAL) func() error) error { return ErrNoWindow }
