//go:build !tinygo

package hal

import "sync/atomic"

type hostBuzzer struct {
	pin   *hostBuzzerPin
	timer *hostTimer
	audio *hostBuzzerAudio
}

func newHostBuzzer() *hostBuzzer {
	pin := &hostBuzzerPin{}
	return &hostBuzzer{
		pin:   pin,
		timer: &hostTimer{},
		audio: newHostBuzzerAudio(pin),
	}
}

func (b *hostBuzzer) Pin() LED     { return b.pin }
func (b *hostBuzzer) Timer() Timer { return b.timer }

// hostBuzzerPin records the line level and counts edges so the audio sink can
// recover the oscillation frequency.
type hostBuzzerPin struct {
	level atomic.Bool
	edges atomic.Uint32
}

func (p *hostBuzzerPin) High() {
	if !p.level.Swap(true) {
		p.edges.Add(1)
	}
}

func (p *hostBuzzerPin) Low() {
	if p.level.Swap(false) {
		p.edges.Add(1)
	}
}

func (p *hostBuzzerPin) Level() bool { return p.level.Load() }
