// Package tone drives the piezo buzzer as a timer-toggled square wave.
package tone

import (
	"fmt"

	"alarmclock/hal"
	"alarmclock/kernel"
)

const (
	// DefaultFrequency is the piezo's resonant frequency.
	DefaultFrequency = 2048
	// DefaultBeepPeriodMs is the on/off cadence of the alarm pattern.
	DefaultBeepPeriodMs = 800
)

// Clock is the monotonic millisecond source.
type Clock interface {
	Millis() uint32
}

// Generator owns the buzzer pin and its timer.
//
// All methods are main-loop only; isr is the only code that runs from the
// timer interrupt.
type Generator struct {
	pin   hal.LED
	timer hal.Timer
	clock Clock
	log   hal.Logger

	freq     uint32
	armedHz  uint32
	degraded bool
	rt       State

	// Envelope and melody playback, polled by Advance.
	playing bool
	cur     Request
	changed uint32
	seq     []Request
	seqIdx  int
}

// New returns a silent generator. log may be nil.
func New(pin hal.LED, timer hal.Timer, clock Clock, log hal.Logger) *Generator {
	g := &Generator{
		pin:   pin,
		timer: timer,
		clock: clock,
		log:   log,
		freq:  DefaultFrequency,
	}
	g.rt.periodMs.Store(DefaultBeepPeriodMs)
	if pin != nil {
		pin.Low()
	}
	return g
}

// Configure sets the frequency of Enable, EnablePattern and Beep. A running
// continuous or patterned tone is re-armed at the new rate; a melody note
// keeps its own pitch.
func (g *Generator) Configure(freqHz uint32) {
	if freqHz == 0 || freqHz == g.freq {
		return
	}
	g.freq = freqHz
	if g.rt.enabled.Load() && !g.playing {
		g.arm(g.freq, g.rt.pattern.Load())
	}
}

// Frequency returns the configured square-wave frequency.
func (g *Generator) Frequency() uint32 { return g.freq }

// Enable starts a continuous tone at the configured frequency. It ends any
// beep or melody in progress.
func (g *Generator) Enable() {
	g.endPlayback()
	g.arm(g.freq, false)
}

// EnablePattern starts the repeating beep…pause alarm pattern. The cadence is
// kept by the interrupt itself, so the main loop does not need to poll faster
// than periodMs.
func (g *Generator) EnablePattern(periodMs uint32) {
	if periodMs == 0 {
		periodMs = DefaultBeepPeriodMs
	}
	g.endPlayback()
	g.rt.periodMs.Store(periodMs)
	g.arm(g.freq, true)
}

// Disable stops the timer and drives the line low before returning.
// It also ends any beep or melody in progress.
func (g *Generator) Disable() {
	g.silence()
	g.endPlayback()
}

// Beep sounds the configured frequency for durationMs. Advance ends it.
func (g *Generator) Beep(durationMs uint32) {
	g.seq = nil
	g.seqIdx = 0
	g.start(Request{Frequency: g.freq, DurationMs: durationMs}, g.now())
}

// Play sounds a single request. Advance ends it unless it is held.
func (g *Generator) Play(r Request) {
	g.seq = nil
	g.seqIdx = 0
	g.start(r, g.now())
}

// PlaySequence starts a melody. Advance walks it note by note.
func (g *Generator) PlaySequence(notes []Request) {
	if len(notes) == 0 {
		g.Disable()
		return
	}
	g.seq = append(g.seq[:0], notes...)
	g.seqIdx = 0
	g.start(g.seq[0], g.now())
}

// Advance moves beep and melody playback forward. It never blocks; call it once
// per main-loop iteration. It reports whether playback is still running.
func (g *Generator) Advance(now uint32) bool {
	if !g.playing {
		return false
	}
	if !kernel.Expired(now, g.changed, g.cur.DurationMs) {
		return true
	}
	if g.seq != nil && g.seqIdx+1 < len(g.seq) {
		g.seqIdx++
		g.start(g.seq[g.seqIdx], now)
		return true
	}

	g.endPlayback()
	if !g.cur.Hold {
		g.silence()
	}
	return false
}

// Enabled reports whether the oscillator is armed.
func (g *Generator) Enabled() bool { return g.rt.enabled.Load() }

// Playing reports whether a beep or melody is still being advanced.
func (g *Generator) Playing() bool { return g.playing }

// Degraded reports that the last attempt to arm the timer failed, so the
// clock is running without sound.
func (g *Generator) Degraded() bool { return g.degraded }

// Runtime returns a copy of the interrupt-shared state.
func (g *Generator) Runtime() Snapshot { return g.rt.snapshot() }

func (g *Generator) start(r Request, now uint32) {
	g.cur = r
	g.changed = now
	g.playing = true
	if r.Frequency == 0 {
		g.silence()
		return
	}
	g.arm(r.Frequency, false)
}

// endPlayback drops the beep or melody state so Advance leaves the line alone.
func (g *Generator) endPlayback() {
	g.playing = false
	g.seq = nil
	g.seqIdx = 0
}

// arm starts the square wave for freqHz. The configured frequency is not
// touched, so a melody never changes the alarm pitch.
func (g *Generator) arm(freqHz uint32, pattern bool) {
	if g.timer == nil || g.pin == nil {
		g.markDegraded(hal.ErrNotImplemented)
		return
	}
	hz := 2 * freqHz
	if g.rt.enabled.Load() && g.armedHz == hz && g.rt.pattern.Load() == pattern {
		return
	}

	g.silence()
	g.rt.pattern.Store(pattern)
	g.rt.beepOn.Store(true)
	g.rt.beepStart.Store(g.now())
	g.rt.enabled.Store(true)

	if err := g.timer.Start(hz, g.isr); err != nil {
		g.rt.enabled.Store(false)
		g.markDegraded(err)
		return
	}
	g.armedHz = hz
	if g.degraded {
		g.degraded = false
		g.logf("tone: timer recovered at %d Hz", hz)
	}
}

func (g *Generator) silence() {
	g.rt.enabled.Store(false)
	if g.timer != nil {
		g.timer.Stop()
	}
	g.armedHz = 0
	if g.pin != nil {
		g.pin.Low()
	}
	g.rt.phase.Store(false)
	g.rt.beepOn.Store(false)
}

func (g *Generator) markDegraded(err error) {
	if !g.degraded {
		g.logf("tone: timer unavailable, running silent: %v", err)
	}
	g.degraded = true
	g.armedHz = 0
}

// isr runs at 2×frequency from the timer interrupt.
func (g *Generator) isr() {
	if !g.rt.enabled.Load() {
		return
	}
	if g.rt.pattern.Load() {
		now := g.now()
		if kernel.Expired(now, g.rt.beepStart.Load(), g.rt.periodMs.Load()) {
			g.rt.beepOn.Store(!g.rt.beepOn.Load())
			g.rt.beepStart.Store(now)
		}
		if !g.rt.beepOn.Load() {
			if g.rt.phase.Load() {
				g.rt.phase.Store(false)
				g.pin.Low()
			}
			return
		}
	}
	if g.rt.phase.Load() {
		g.rt.phase.Store(false)
		g.pin.Low()
	} else {
		g.rt.phase.Store(true)
		g.pin.High()
	}
}

func (g *Generator) now() uint32 {
	if g.clock == nil {
		return 0
	}
	return g.clock.Millis()
}

func (g *Generator) logf(format string, args ...any) {
	if g.log == nil {
		return
	}
	g.log.WriteLineString(fmt.Sprintf(format, args...))
}
