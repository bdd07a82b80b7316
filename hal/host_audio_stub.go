//go:build !tinygo && !cgo

package hal

// hostBuzzerAudio is a stub when CGO/window backends are unavailable.
type hostBuzzerAudio struct{}

func newHostBuzzerAudio(_ *hostBuzzerPin) *hostBuzzerAudio { return &hostBuzzerAudio{} }

func (a *hostBuzzerAudio) Start() error { return ErrNotImplemented }
func (a *hostBuzzerAudio) Stop() error  { return nil }
