// Package app wires the HAL to the clock and runs the main loop.
package app

import (
	"fmt"
	"time"

	"alarmclock/clockos/alarm"
	"alarmclock/clockos/brightness"
	"alarmclock/clockos/clocktime"
	"alarmclock/clockos/page"
	"alarmclock/clockos/render"
	"alarmclock/clockos/screensaver"
	"alarmclock/clockos/store"
	"alarmclock/clockos/tone"
	"alarmclock/clockos/ui"
	"alarmclock/hal"
	"alarmclock/internal/buildinfo"
	"alarmclock/internal/config"
	"alarmclock/kernel"
)

type system struct {
	h   hal.HAL
	log hal.Logger
	k   *kernel.System

	clock    hal.Time
	keeper   *clocktime.Keeper
	tone     *tone.Generator
	sched    *alarm.Scheduler
	machine  *page.Machine
	renderer *render.Renderer
	touch    hal.Touch

	dropped   uint32
	drawFails uint32
	faulted   error
}

// New starts the clock with the default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, config.Default())
}

// Run starts the clock and loops forever (TinyGo/native entrypoint). A fault
// leaves the fault screen up with the buzzer silent.
func Run(h hal.HAL) {
	RunWithConfig(h, config.Default())
}

// NewWithConfig starts the clock with cfg and returns its step function. The
// host runners call it once per frame.
func NewWithConfig(h hal.HAL, cfg *config.Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

func RunWithConfig(h hal.HAL, cfg *config.Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			select {}
		}
		time.Sleep(time.Millisecond)
	}
}

func newSystem(h hal.HAL, cfg *config.Config) *system {
	if cfg == nil {
		cfg = config.Default()
	}
	bootDiagStart(h)

	s := &system{h: h, log: h.Logger(), clock: h.Time()}
	s.logf("clock: %s", buildinfo.String())
	if err := cfg.Validate(); err != nil {
		s.logf("clock: %v; using defaults", err)
		cfg = config.Default()
	}

	bootScreen(h, "kernel")
	s.k = kernel.NewSystem(s.clock)
	if rtc := h.RTC(); rtc != nil {
		s.k.Attach(kernel.EventSecond, rtc.Seconds())
		s.keeper = clocktime.NewKeeper(rtc, s.log)
	} else {
		s.logf("clock: no rtc")
		s.keeper = clocktime.NewKeeper(nil, s.log)
	}

	bootScreen(h, "buzzer")
	var pin hal.LED
	var timer hal.Timer
	if bz := h.Buzzer(); bz != nil {
		pin, timer = bz.Pin(), bz.Timer()
	}
	s.tone = tone.New(pin, timer, s.clock, s.log)
	s.tone.Configure(cfg.Tone.FrequencyHz)

	bootScreen(h, "store")
	st := openStore(h, cfg, s.log)
	committed := store.LoadOrDefault(st, s.log)
	s.sched = alarm.NewScheduler(committed, s.tone, cfg.AlarmOptions(), s.log)

	var light *brightness.Controller
	if disp := h.Display(); disp != nil {
		light = brightness.NewController(h.Light(), disp, cfg.Display.BrightnessCeiling, s.log)
		if fb := disp.Framebuffer(); fb != nil {
			s.renderer = render.New(fb)
		}
	}
	if in := h.Input(); in != nil {
		s.touch = in.Touch()
	}

	saverCfg := screensaver.DefaultConfig()
	saverCfg.Step = cfg.Display.SaverStep

	deps := page.Deps{
		Scheduler: s.sched,
		Clock:     s.keeper,
		Store:     st,
		Player:    s.tone,
		Saver:     screensaver.New(saverCfg, screensaver.NewXorShift(cfg.Display.SaverSeed)),
		Log:       s.log,
	}
	// A nil *Controller must not become a non-nil Backlight.
	if light != nil {
		deps.Backlight = light
	}
	s.machine = page.New(deps, cfg.PageOptions(), s.now())

	bootScreen(h, "ready")
	s.logf("clock: %s, alarm %s", s.keeper.Now(), committed)
	return s
}

func openStore(h hal.HAL, cfg *config.Config, log hal.Logger) store.Store {
	if cfg.Store.Backend == config.BackendYAML {
		if st := newYAMLStore(cfg.Store.Path); st != nil {
			return st
		}
		logTo(log, "store: yaml backend unavailable on this target; using flash")
	}
	f := h.Flash()
	if f == nil {
		logTo(log, "store: no flash; alarm changes will not persist")
		return nil
	}
	return store.NewFlashStore(f, cfg.Store.FlashOffset)
}

// step runs one main-loop iteration: drain RTC edges, sample touch, run the
// time-based work and redraw what changed.
func (s *system) step() (err error) {
	if s.faulted != nil {
		return s.faulted
	}
	defer func() {
		if r := recover(); r != nil {
			s.faulted = fmt.Errorf("clock: fault: %v", r)
			s.fault(r)
			err = s.faulted
		}
	}()

	now := s.now()
	for {
		ev, ok := s.k.Poll()
		if !ok {
			break
		}
		if ev.Kind == kernel.EventSecond {
			t, _ := s.keeper.Tick()
			s.machine.OnSecond(t, now)
		}
	}
	if d := s.k.Dropped(); d != s.dropped {
		s.logf("clock: %d rtc edges dropped", d-s.dropped)
		s.dropped = d
	}

	if s.touch != nil {
		p, down := s.touch.Sample()
		s.machine.OnTouch(p, down, now)
	}
	s.machine.Poll(now)

	if s.renderer != nil {
		if err := s.renderer.Draw(s.machine.View()); err != nil {
			if s.drawFails == 0 {
				s.logf("clock: draw %s: %v", s.machine.Page(), err)
			}
			s.drawFails++
		} else {
			s.drawFails = 0
		}
	}
	return nil
}

// fault silences the buzzer first, then reports r on the log and the screen.
func (s *system) fault(r any) {
	if s.tone != nil {
		s.tone.Disable()
	}
	s.logf("%v", s.faulted)
	pg := ui.PageMain
	if s.machine != nil {
		pg = s.machine.Page()
	}
	faultScreen(s.h, []string{
		"Clock fault",
		fmt.Sprintf("page: %s", pg),
		fmt.Sprintf("panic: %v", r),
		"build: " + buildinfo.Short(),
	})
}

func (s *system) now() uint32 {
	if s.clock == nil {
		return 0
	}
	return s.clock.Millis()
}

func (s *system) logf(format string, args ...any) {
	logTo(s.log, fmt.Sprintf(format, args...))
}

func logTo(l hal.Logger, line string) {
	if l == nil {
		return
	}
	l.WriteLineString(line)
}
