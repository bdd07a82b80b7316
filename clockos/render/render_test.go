package render

import (
	"testing"

	"alarmclock/clockos/alarm"
	"alarmclock/clockos/clocktime"
	"alarmclock/clockos/page"
	"alarmclock/clockos/screensaver"
	"alarmclock/clockos/ui"
	"alarmclock/hal"
)

type memFB struct {
	w, h     int
	buf      []byte
	presents int
	rects    []ui.Rect
}

func newMemFB() *memFB {
	w, h := int(ui.ScreenW), int(ui.ScreenH)
	return &memFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int        { return f.w * 2 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) ClearRGB(r, g, b uint8)  {}
func (f *memFB) Present() error {
	f.presents++
	return nil
}
func (f *memFB) PresentRect(x, y, w, h int) error {
	f.rects = append(f.rects, ui.Rect{X: int16(x), Y: int16(y), W: int16(w), H: int16(h)})
	return nil
}

func (f *memFB) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func (f *memFB) countColor(r ui.Rect, c uint16) int {
	n := 0
	for y := int(r.Y); y < int(r.Y+r.H); y++ {
		for x := int(r.X); x < int(r.X+r.W); x++ {
			if f.pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

func mainView(seq uint32) page.View {
	return page.View{
		Seq:   seq,
		Page:  ui.PageMain,
		Now:   clocktime.Time{Hour: 7, Minute: 5, Second: 9, IsAM: true, Month: 3, Day: 4},
		Alarm: alarm.DefaultConfig(),
	}
}

func TestDrawSkipsUnchangedView(t *testing.T) {
	fb := newMemFB()
	r := New(fb)

	if err := r.Draw(mainView(1)); err != nil {
		t.Fatalf("Draw() err = %v", err)
	}
	if err := r.Draw(mainView(1)); err != nil {
		t.Fatalf("Draw() err = %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", fb.presents)
	}
	if fb.countColor(ui.Rect{W: ui.ScreenW, H: ui.TimeRowY0}, 0xFFFF) == 0 {
		t.Fatalf("no white pixels in the time row")
	}

	r.Draw(mainView(2))
	if fb.presents != 2 {
		t.Fatalf("presents after change = %d, want 2", fb.presents)
	}
}

func TestScreensaverPresentsDirtyRect(t *testing.T) {
	fb := newMemFB()
	r := New(fb)
	anim := screensaver.New(screensaver.DefaultConfig(), screensaver.NewXorShift(3))

	v := mainView(1)
	v.Page = ui.PageScreensaver
	v.Frame = anim.Step()
	r.Draw(v)
	if fb.presents != 1 || len(fb.rects) != 0 {
		t.Fatalf("first frame presents=%d rects=%d, want full present", fb.presents, len(fb.rects))
	}

	for i := 0; i < 5; i++ {
		v.Seq++
		v.Frame = anim.Step()
		r.Draw(v)
	}
	if len(fb.rects) != 5 {
		t.Fatalf("partial presents = %d, want 5", len(fb.rects))
	}
	if got := fb.rects[4]; got != v.Frame.Dirty {
		t.Fatalf("last PresentRect = %+v, want %+v", got, v.Frame.Dirty)
	}
	if fb.countColor(v.Frame.Next, v.Frame.Color) == 0 && v.Frame.Color != 0 {
		t.Fatalf("face not drawn in %#04x inside %+v", v.Frame.Color, v.Frame.Next)
	}
}

func TestPaletteSurvivesConversion(t *testing.T) {
	for _, c := range screensaver.Palette {
		rgba := rgbaFrom565(c)
		if got := rgb565From888(rgba.R, rgba.G, rgba.B); got != c {
			t.Fatalf("rgb565From888(rgbaFrom565(%#04x)) = %#04x", c, got)
		}
	}
}

func TestDrawEveryPage(t *testing.T) {
	for _, p := range []ui.Page{ui.PageMain, ui.PageAlarmSet, ui.PageTimeSet, ui.PageAlarmTriggered, ui.PageKeyboard} {
		fb := newMemFB()
		v := mainView(1)
		v.Page = p
		v.WorkAlarm = alarm.Config{Hour: 6, Minute: 15, IsAM: true, Enabled: true, Label: "gym"}
		v.WorkTime = v.Now
		v.Text = "gym"
		v.HeldSeconds = 10
		v.LongPressSeconds = alarm.DefaultLongPressSeconds
		if err := New(fb).Draw(v); err != nil {
			t.Fatalf("Draw(%v) err = %v", p, err)
		}
		if fb.countColor(ui.Rect{W: ui.ScreenW, H: ui.ScreenH}, 0) == int(ui.ScreenW)*int(ui.ScreenH) {
			t.Fatalf("Draw(%v) left the screen blank", p)
		}
	}
}

func TestGoodMorningDrawsSun(t *testing.T) {
	fb := newMemFB()
	v := mainView(1)
	v.GoodMorning = true
	if err := New(fb).Draw(v); err != nil {
		t.Fatalf("Draw() err = %v", err)
	}
	orange := rgb565From888(colorAccent.R, colorAccent.G, colorAccent.B)
	if fb.pixel(int(ui.ScreenW/2), 60) != orange {
		t.Fatalf("sun center not filled")
	}
	white := rgb565From888(0xFF, 0xFF, 0xFF)
	if fb.countColor(ui.Rect{Y: 105, W: ui.ScreenW, H: 30}, white) == 0 {
		t.Fatalf("greeting not drawn")
	}
}

func TestTriggeredShowsRingingTime(t *testing.T) {
	row := ui.Rect{Y: 220, W: ui.ScreenW, H: 20}
	dim := rgb565From888(colorDim.R, colorDim.G, colorDim.B)
	draw := func(sec uint32) *memFB {
		fb := newMemFB()
		v := mainView(1)
		v.Page = ui.PageAlarmTriggered
		v.LongPressSeconds = alarm.DefaultLongPressSeconds
		v.RingingSeconds = sec
		New(fb).Draw(v)
		return fb
	}
	a, b := draw(5), draw(71)
	if a.countColor(row, dim) == 0 {
		t.Fatalf("ringing time not drawn")
	}
	same := true
	for y := int(row.Y); y < int(row.Y+row.H) && same; y++ {
		for x := 0; x < a.w; x++ {
			if a.pixel(x, y) != b.pixel(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatalf("ringing row identical for 0:05 and 1:11")
	}
}

func TestScreensaverEdge(t *testing.T) {
	fb := newMemFB()
	r := New(fb)
	anim := screensaver.New(screensaver.DefaultConfig(), screensaver.NewXorShift(3))

	v := mainView(1)
	v.Page = ui.PageScreensaver
	v.Frame = anim.Step()
	r.Draw(v)
	if fb.pixel(int(ui.ScreenW)-1, int(ui.ScreenH)-1) != 0 {
		t.Fatalf("edge drawn with a dim backlight")
	}

	v.Seq++
	v.Edge = true
	v.Frame = anim.Step()
	presents := fb.presents
	r.Draw(v)
	if fb.presents != presents+1 {
		t.Fatalf("edge switch-on did not present the whole frame")
	}
	if got := fb.pixel(int(ui.ScreenW)-1, int(ui.ScreenH)-1); got != v.Frame.Color {
		t.Fatalf("edge corner = %#04x, want %#04x", got, v.Frame.Color)
	}

	// The box starts against the left edge and moves right, so the next
	// frame keeps its color.
	want := v.Frame.Color
	v.Seq++
	v.Frame = anim.Step()
	rects := len(fb.rects)
	r.Draw(v)
	if v.Frame.Color != want {
		t.Fatalf("frame color changed without a bounce")
	}
	if len(fb.rects) != rects+1 {
		t.Fatalf("steady edge frame did not present partially")
	}
	// The cleared box overlapped the left edge; it must be repainted.
	if got := fb.pixel(int(v.Frame.Prev.X)+1, int(v.Frame.Prev.Y)+1); got != want {
		t.Fatalf("left edge under the old box = %#04x, want %#04x", got, want)
	}
}

func TestDrawFaultWrapsAndPresents(t *testing.T) {
	fb := newMemFB()
	long := "panic: runtime error: index out of range [7] with length 3 while drawing the keyboard"
	if err := DrawFault(fb, []string{"Clock fault", long}); err != nil {
		t.Fatalf("DrawFault() error = %v", err)
	}
	if fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", fb.presents)
	}
	red := rgb565From888(colorFault.R, colorFault.G, colorFault.B)
	if fb.pixel(0, 0) != red || fb.pixel(fb.w-1, fb.h-1) != red {
		t.Fatalf("border corners not drawn")
	}
	white := rgb565From888(0xFF, 0xFF, 0xFF)
	// The wrapped tail of the long line lands below the second text line.
	if fb.countColor(ui.Rect{X: 4, Y: 40, W: ui.ScreenW - 8, H: 20}, white) == 0 {
		t.Fatalf("no text in the wrapped third line")
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int16
		head, tail string
	}{
		{"abcdef", 4, "abcd", "ef"},
		{"abc", 4, "abc", ""},
		{"äöüß", 2, "äö", "üß"},
		{"abc", 0, "", "abc"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.s, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q, want %q, %q", tt.s, tt.n, head, tail, tt.head, tt.tail)
		}
	}
}
