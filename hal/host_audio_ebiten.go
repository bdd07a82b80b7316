//go:build !tinygo && cgo

package hal

import (
	"errors"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	hostAudioSampleRate = 48000
	hostAudioAmplitude  = 6000
)

// hostBuzzerAudio plays the buzzer line through Ebiten's audio package.
//
// The reader cannot sample the pin at audio rate (Ebiten pulls ~100ms at a
// time), so it measures the edge rate between reads and synthesizes a square
// wave at that frequency.
type hostBuzzerAudio struct {
	pin *hostBuzzerPin

	mu     sync.Mutex
	ctx    *audio.Context
	player *audio.Player
}

func newHostBuzzerAudio(pin *hostBuzzerPin) *hostBuzzerAudio {
	return &hostBuzzerAudio{pin: pin}
}

func (a *hostBuzzerAudio) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.player != nil {
		return nil
	}
	if a.pin == nil {
		return errors.New("host audio: no buzzer pin")
	}
	if a.ctx == nil {
		a.ctx = audio.NewContext(hostAudioSampleRate)
	}

	p, err := a.ctx.NewPlayer(&hostBuzzerReader{pin: a.pin, last: time.Now()})
	if err != nil {
		return err
	}
	p.SetBufferSize(100 * time.Millisecond)
	p.Play()
	a.player = p
	return nil
}

func (a *hostBuzzerAudio) Stop() error {
	a.mu.Lock()
	p := a.player
	a.player = nil
	a.mu.Unlock()

	if p != nil {
		return p.Close()
	}
	return nil
}

type hostBuzzerReader struct {
	pin       *hostBuzzerPin
	last      time.Time
	lastEdges uint32
	phase     float64
}

func (r *hostBuzzerReader) Read(p []byte) (int, error) {
	now := time.Now()
	edges := r.pin.edges.Load()
	dt := now.Sub(r.last).Seconds()
	n := edges - r.lastEdges
	r.last, r.lastEdges = now, edges

	var freq float64
	if dt > 0 && n > 0 {
		freq = float64(n) / 2 / dt
	}

	// Ebiten audio expects 16-bit little-endian stereo.
	for i := 0; i+3 < len(p); i += 4 {
		var s int16
		if freq > 0 {
			r.phase += freq / hostAudioSampleRate
			if r.phase >= 1 {
				r.phase -= float64(int(r.phase))
			}
			if r.phase < 0.5 {
				s = hostAudioAmplitude
			} else {
				s = -hostAudioAmplitude
			}
		}
		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	return len(p) - len(p)%4, nil
}
