package page

import (
	"testing"
	"time"

	"alarmclock/clockos/alarm"
	"alarmclock/clockos/clocktime"
	"alarmclock/clockos/keyboard"
	"alarmclock/clockos/tone"
	"alarmclock/clockos/ui"
	"alarmclock/hal"
)

type fakeSounder struct {
	on       bool
	enables  int
	disables int
}

func (s *fakeSounder) EnablePattern(uint32) { s.on = true; s.enables++ }
func (s *fakeSounder) Disable()             { s.on = false; s.disables++ }

type fakeClock struct {
	cur  clocktime.Time
	sets []time.Time
}

func (c *fakeClock) Now() clocktime.Time { return c.cur }
func (c *fakeClock) Set(t time.Time) error {
	c.sets = append(c.sets, t)
	c.cur = clocktime.FromTime(t)
	return nil
}

type fakeStore struct {
	saved []alarm.Config
}

func (s *fakeStore) Load() (alarm.Config, bool, error) { return alarm.Config{}, false, nil }
func (s *fakeStore) Save(c alarm.Config) error {
	s.saved = append(s.saved, c)
	return nil
}

type fakePlayer struct {
	played [][]tone.Request
}

func (p *fakePlayer) PlaySequence(notes []tone.Request) { p.played = append(p.played, notes) }
func (p *fakePlayer) Advance(uint32) bool               { return false }

type fakeBacklight struct {
	rechecks int
	fulls    int
	hours    []int
	edge     bool
}

func (b *fakeBacklight) Recheck(hour24 int) {
	b.rechecks++
	b.hours = append(b.hours, hour24)
}
func (b *fakeBacklight) Full()      { b.fulls++ }
func (b *fakeBacklight) Edge() bool { return b.edge }

type harness struct {
	t      *testing.T
	m      *Machine
	sched  *alarm.Scheduler
	snd    *fakeSounder
	clock  *fakeClock
	store  *fakeStore
	player *fakePlayer
	light  *fakeBacklight
	now    uint32
}

func newHarness(t *testing.T, cfg alarm.Config, opts Options) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		snd:    &fakeSounder{},
		clock:  &fakeClock{cur: clocktime.Time{Hour: 7, Minute: 0, IsAM: true, Year: 2024, Month: time.March, Day: 4}},
		store:  &fakeStore{},
		player: &fakePlayer{},
		light:  &fakeBacklight{},
	}
	h.sched = alarm.NewScheduler(cfg, h.snd, alarm.DefaultOptions(), nil)
	h.m = New(Deps{
		Scheduler: h.sched,
		Clock:     h.clock,
		Store:     h.store,
		Player:    h.player,
		Backlight: h.light,
	}, opts, h.now)
	return h
}

func (h *harness) second(hour, minute, sec uint8, am bool) {
	h.now += 1000
	t := clocktime.Time{Hour: hour, Minute: minute, Second: sec, IsAM: am, Year: 2024, Month: time.March, Day: 4}
	h.clock.cur = t
	h.m.OnSecond(t, h.now)
}

func (h *harness) press(p hal.Point) {
	h.now++
	h.m.OnTouch(p, true, h.now)
	h.now += 10
	h.m.OnTouch(p, false, h.now)
	h.now += 100
	h.m.OnTouch(p, false, h.now)
}

func center(r ui.Rect) hal.Point {
	return hal.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (h *harness) tap(target ui.Target) {
	h.t.Helper()
	for _, r := range ui.Regions(h.m.Page()) {
		if r.Target == target {
			h.press(center(r.Rect))
			return
		}
	}
	h.t.Fatalf("page %v has no %v region", h.m.Page(), target)
}

func (h *harness) key(k keyboard.Key) {
	h.t.Helper()
	for _, r := range ui.KeyboardRegions(h.m.View().Layout) {
		if r.Key == k {
			h.press(center(r.Rect))
			return
		}
	}
	h.t.Fatalf("layout %v has no key %+v", h.m.View().Layout, k)
}

func (h *harness) wantPage(p ui.Page) {
	h.t.Helper()
	if got := h.m.Page(); got != p {
		h.t.Fatalf("Page() = %v, want %v", got, p)
	}
}

var sevenThirty = alarm.Config{Hour: 7, Minute: 30, IsAM: true, Enabled: true}

func TestAlarmTriggersOnceAtSevenThirty(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})

	h.second(7, 29, 59, true)
	h.wantPage(ui.PageMain)
	if h.snd.on {
		t.Fatalf("tone enabled before alarm minute")
	}

	h.second(7, 30, 0, true)
	h.wantPage(ui.PageAlarmTriggered)
	if !h.snd.on {
		t.Fatalf("tone not enabled on trigger")
	}

	for sec := uint8(1); sec < 60; sec++ {
		h.second(7, 30, sec, true)
	}
	if h.snd.enables != 1 {
		t.Fatalf("tone enabled %d times in the alarm minute, want 1", h.snd.enables)
	}
}

func (h *harness) trigger() {
	h.t.Helper()
	h.second(7, 29, 59, true)
	h.second(7, 30, 0, true)
	h.wantPage(ui.PageAlarmTriggered)
}

func TestLongPressThreshold(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{Celebrate: true})
	h.trigger()

	p := hal.Point{X: 160, Y: 120}
	start := h.now
	h.m.OnTouch(p, true, start)
	for s := uint32(1); s < alarm.DefaultLongPressSeconds; s++ {
		h.m.OnTouch(p, true, start+s*1000)
		h.wantPage(ui.PageAlarmTriggered)
		if v := h.m.View(); v.HeldSeconds != s {
			t.Fatalf("HeldSeconds = %d, want %d", v.HeldSeconds, s)
		}
	}
	if !h.snd.on {
		t.Fatalf("tone stopped before the threshold")
	}

	h.m.OnTouch(p, true, start+alarm.DefaultLongPressSeconds*1000)
	h.wantGreeting(true)
	if h.snd.on {
		t.Fatalf("tone still on after long press")
	}
	if len(h.player.played) != 1 || len(h.player.played[0]) != len(tone.Celebrate) {
		t.Fatalf("played %d melodies, want the celebration once", len(h.player.played))
	}
}

func TestShortTapsNeverSilence(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})
	h.trigger()

	p := hal.Point{X: 10, Y: 10}
	for i := 0; i < 40; i++ {
		h.m.OnTouch(p, true, h.now)
		h.now += 500
		h.m.OnTouch(p, true, h.now)
		h.now += 10
		h.m.OnTouch(p, false, h.now)
		h.now += 100
		h.m.OnTouch(p, false, h.now)
	}
	h.wantPage(ui.PageAlarmTriggered)
	if !h.snd.on {
		t.Fatalf("short taps silenced the alarm")
	}
}

func TestCeilingReturnsToMain(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})
	h.trigger()
	start := h.now

	h.m.Poll(start + alarm.DefaultCeilingMs - 1)
	h.wantPage(ui.PageAlarmTriggered)
	h.m.Poll(start + alarm.DefaultCeilingMs)
	h.wantPage(ui.PageMain)
	if h.snd.on {
		t.Fatalf("tone on after ceiling")
	}
	if len(h.player.played) != 0 {
		t.Fatalf("celebration played on timeout")
	}
}

func TestInactivityAndScreensaver(t *testing.T) {
	h := newHarness(t, alarm.DefaultConfig(), Options{})

	h.m.Poll(DefaultInactivityMs - 1)
	h.wantPage(ui.PageMain)
	h.m.Poll(DefaultInactivityMs)
	h.wantPage(ui.PageScreensaver)
	if f := h.m.View().Frame; !f.Full {
		t.Fatalf("first screensaver frame not full")
	}

	h.m.Poll(DefaultInactivityMs + DefaultSaverFrameMs)
	if f := h.m.View().Frame; f.Full || f.Dirty.Empty() {
		t.Fatalf("second frame = %+v, want partial with dirty rect", f)
	}

	h.now = DefaultInactivityMs + 100
	h.press(hal.Point{X: 3, Y: 3})
	h.wantPage(ui.PageMain)

	// Entering main restarts the idle timer.
	h.m.Poll(h.now + DefaultInactivityMs - 200)
	h.wantPage(ui.PageMain)
}

func TestDateTapStartsScreensaver(t *testing.T) {
	h := newHarness(t, alarm.DefaultConfig(), Options{})
	h.tap(ui.TargetDate)
	h.wantPage(ui.PageScreensaver)
}

func TestAlarmSetCommitAndCancel(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})

	h.tap(ui.TargetAlarm)
	h.wantPage(ui.PageAlarmSet)
	h.tap(ui.TargetHourUp)
	h.tap(ui.TargetMinuteDown)
	h.tap(ui.TargetCancel)
	h.wantPage(ui.PageMain)
	if h.sched.Config() != sevenThirty || len(h.store.saved) != 0 {
		t.Fatalf("cancel changed the alarm: %+v saved %d", h.sched.Config(), len(h.store.saved))
	}

	h.tap(ui.TargetAlarm)
	if v := h.m.View(); v.WorkAlarm != sevenThirty || v.Unsaved {
		t.Fatalf("working copy not reseeded: %+v unsaved=%v", v.WorkAlarm, v.Unsaved)
	}
	h.tap(ui.TargetHourUp)
	h.tap(ui.TargetMinuteDown)
	h.tap(ui.TargetMeridiem)
	h.tap(ui.TargetSet)
	h.wantPage(ui.PageMain)

	want := alarm.Config{Hour: 8, Minute: 29, IsAM: false, Enabled: true}
	if got := h.sched.Config(); got != want {
		t.Fatalf("committed %+v, want %+v", got, want)
	}
	if len(h.store.saved) != 1 || h.store.saved[0] != want {
		t.Fatalf("saved %+v, want [%+v]", h.store.saved, want)
	}
}

func TestAlarmQueuedBehindUnsavedEdit(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})
	h.second(7, 29, 58, true)

	h.tap(ui.TargetAlarm)
	h.tap(ui.TargetMinuteUp)
	h.second(7, 29, 59, true)
	h.second(7, 30, 0, true)

	h.wantPage(ui.PageAlarmSet)
	if !h.snd.on || !h.m.Queued() {
		t.Fatalf("sounding=%v queued=%v, want true true", h.snd.on, h.m.Queued())
	}
	if v := h.m.View(); v.WorkAlarm.Minute != 31 {
		t.Fatalf("edit lost: working minute %d, want 31", v.WorkAlarm.Minute)
	}

	h.tap(ui.TargetCancel)
	h.wantPage(ui.PageAlarmTriggered)
	if h.m.Queued() {
		t.Fatalf("Queued() after release = true")
	}
}

func TestQueuedAlarmThatTimedOutReturnsToMain(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})
	h.second(7, 29, 58, true)
	h.tap(ui.TargetTime)
	h.tap(ui.TargetMinuteUp)
	h.second(7, 29, 59, true)
	h.second(7, 30, 0, true)
	h.wantPage(ui.PageTimeSet)

	h.m.Poll(h.now + alarm.DefaultCeilingMs)
	h.wantPage(ui.PageTimeSet)
	h.tap(ui.TargetCancel)
	h.wantPage(ui.PageMain)
}

func TestCleanEditIsPreempted(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})
	h.second(7, 29, 59, true)
	h.tap(ui.TargetAlarm)
	h.second(7, 30, 0, true)
	h.wantPage(ui.PageAlarmTriggered)
}

func TestKeyboardEditsLabel(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})

	h.tap(ui.TargetAlarm)
	h.tap(ui.TargetLabel)
	h.wantPage(ui.PageKeyboard)

	h.key(keyboard.Key{Kind: keyboard.Literal, Rune: 'G'})
	h.key(keyboard.Key{Kind: keyboard.Shift})
	h.key(keyboard.Key{Kind: keyboard.Literal, Rune: 'o'})
	h.key(keyboard.Key{Kind: keyboard.Mode})
	h.key(keyboard.Key{Kind: keyboard.Literal, Rune: '!'})
	if v := h.m.View(); v.Text != "Go!" || !v.Unsaved {
		t.Fatalf("keyboard text=%q unsaved=%v, want %q true", v.Text, v.Unsaved, "Go!")
	}

	h.key(keyboard.Key{Kind: keyboard.Enter})
	h.wantPage(ui.PageAlarmSet)
	if v := h.m.View(); v.WorkAlarm.Label != "Go!" || !v.Unsaved {
		t.Fatalf("working label=%q unsaved=%v", v.WorkAlarm.Label, v.Unsaved)
	}
	if h.sched.Config().Label != "" {
		t.Fatalf("label committed before SET")
	}

	h.tap(ui.TargetLabel)
	h.key(keyboard.Key{Kind: keyboard.Backspace})
	h.key(keyboard.Key{Kind: keyboard.Cancel})
	if v := h.m.View(); v.WorkAlarm.Label != "Go!" {
		t.Fatalf("cancelled keyboard changed label to %q", v.WorkAlarm.Label)
	}

	h.tap(ui.TargetSet)
	if got := h.sched.Config().Label; got != "Go!" {
		t.Fatalf("committed label %q, want %q", got, "Go!")
	}
}

func TestTimeSet(t *testing.T) {
	h := newHarness(t, alarm.DefaultConfig(), Options{})
	h.second(11, 59, 30, true)

	h.tap(ui.TargetTime)
	h.wantPage(ui.PageTimeSet)
	h.tap(ui.TargetHourUp)
	h.tap(ui.TargetMinuteUp)
	h.tap(ui.TargetSet)
	h.wantPage(ui.PageMain)

	if len(h.clock.sets) != 1 {
		t.Fatalf("clock set %d times, want 1", len(h.clock.sets))
	}
	got := h.clock.sets[0]
	if got.Hour() != 12 || got.Minute() != 0 || got.Second() != 0 || got.Day() != 4 {
		t.Fatalf("clock set to %v, want 12:00:00 on the 4th", got)
	}
	if v := h.m.View(); v.Now.Hour != 12 || v.Now.IsAM {
		t.Fatalf("view time %v after set, want 12 PM", v.Now)
	}
}

func TestBrightnessRecheckSkipsAlarmPage(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{BrightnessSeconds: 5})
	if h.light.rechecks != 1 {
		t.Fatalf("rechecks at boot = %d, want 1", h.light.rechecks)
	}
	for sec := uint8(55); sec < 60; sec++ {
		h.second(7, 29, sec, true)
	}
	if h.light.rechecks != 2 {
		t.Fatalf("rechecks after 5 s = %d, want 2", h.light.rechecks)
	}

	for sec := uint8(0); sec < 20; sec++ {
		h.second(7, 30, sec, true)
	}
	if h.light.rechecks != 2 || h.light.fulls == 0 {
		t.Fatalf("during alarm rechecks=%d fulls=%d, want 2 and >0", h.light.rechecks, h.light.fulls)
	}

	h.m.Poll(h.now + alarm.DefaultCeilingMs)
	h.wantPage(ui.PageMain)
	if h.light.rechecks != 3 {
		t.Fatalf("rechecks after alarm = %d, want 3", h.light.rechecks)
	}
}

func (h *harness) dismiss() {
	h.t.Helper()
	p := hal.Point{X: 160, Y: 120}
	start := h.now
	h.m.OnTouch(p, true, start)
	h.now = start + alarm.DefaultLongPressSeconds*1000
	h.m.OnTouch(p, true, h.now)
	h.wantGreeting(true)
}

func (h *harness) wantGreeting(on bool) {
	h.t.Helper()
	h.wantPage(ui.PageMain)
	if got := h.m.View().GoodMorning; got != on {
		h.t.Fatalf("GoodMorning = %v, want %v", got, on)
	}
}

func TestGoodMorningTimesOut(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{GoodMorningMs: 3000})
	h.trigger()
	h.dismiss()

	// The finger that dismissed the alarm is still down.
	h.m.OnTouch(hal.Point{X: 160, Y: 120}, true, h.now+500)
	h.wantGreeting(true)

	h.m.Poll(h.now + 2999)
	h.wantGreeting(true)
	seq := h.m.View().Seq
	h.m.Poll(h.now + 3000)
	h.wantGreeting(false)
	if h.m.View().Seq == seq {
		t.Fatalf("greeting ended without a redraw")
	}
}

func TestGoodMorningTapOnlyClearsGreeting(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})
	h.trigger()
	h.dismiss()

	h.now += 10
	h.m.OnTouch(hal.Point{}, false, h.now)
	h.now += 100
	h.m.OnTouch(hal.Point{}, false, h.now)
	h.wantGreeting(true)

	h.tap(ui.TargetAlarm)
	h.wantGreeting(false)

	h.tap(ui.TargetAlarm)
	h.wantPage(ui.PageAlarmSet)
}

func TestTimeoutSkipsGoodMorning(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})
	h.trigger()
	h.m.Poll(h.now + alarm.DefaultCeilingMs)
	h.wantGreeting(false)
}

func TestTriggeredViewCountsRingingSeconds(t *testing.T) {
	h := newHarness(t, sevenThirty, Options{})
	h.trigger()
	if v := h.m.View(); v.RingingSeconds != 0 {
		t.Fatalf("RingingSeconds at trigger = %d, want 0", v.RingingSeconds)
	}
	for sec := uint8(1); sec <= 5; sec++ {
		h.second(7, 30, sec, true)
	}
	if v := h.m.View(); v.RingingSeconds != 5 {
		t.Fatalf("RingingSeconds = %d, want 5", v.RingingSeconds)
	}
}

func TestScreensaverEdgeFollowsBacklight(t *testing.T) {
	h := newHarness(t, alarm.DefaultConfig(), Options{})
	h.tap(ui.TargetDate)
	h.wantPage(ui.PageScreensaver)
	if h.m.View().Edge {
		t.Fatalf("Edge = true with a dim backlight")
	}
	h.light.edge = true
	if !h.m.View().Edge {
		t.Fatalf("Edge = false with a bright backlight")
	}
}

func TestRecheckPassesHourOfDay(t *testing.T) {
	h := newHarness(t, alarm.DefaultConfig(), Options{BrightnessSeconds: 1})
	h.second(9, 15, 0, false)
	if got := h.light.hours[len(h.light.hours)-1]; got != 21 {
		t.Fatalf("Recheck hour = %d, want 21", got)
	}
}
