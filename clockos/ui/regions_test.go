package ui

import (
	"testing"

	"alarmclock/clockos/keyboard"
	"alarmclock/hal"
)

func checkTable(t *testing.T, name string, regions []Region) {
	t.Helper()
	screen := Rect{W: ScreenW, H: ScreenH}
	for i, a := range regions {
		if a.Rect.Empty() {
			t.Fatalf("%s[%d] (%v) is empty", name, i, a.Target)
		}
		if a.Rect.Clip(ScreenW, ScreenH) != a.Rect {
			t.Fatalf("%s[%d] %+v leaves the %+v screen", name, i, a.Rect, screen)
		}
		for j := i + 1; j < len(regions); j++ {
			if a.Rect.Overlaps(regions[j].Rect) {
				t.Fatalf("%s[%d] %+v overlaps [%d] %+v", name, i, a.Rect, j, regions[j].Rect)
			}
		}
	}
}

func TestRegionTablesDoNotOverlap(t *testing.T) {
	for _, p := range []Page{PageMain, PageScreensaver, PageAlarmSet, PageAlarmTriggered, PageTimeSet} {
		regions := Regions(p)
		if len(regions) == 0 {
			t.Fatalf("Regions(%v) is empty", p)
		}
		checkTable(t, p.String(), regions)
	}
	for _, l := range []keyboard.Layout{keyboard.Capitals, keyboard.Lowercase, keyboard.Numeric, keyboard.Symbol} {
		checkTable(t, "keyboard "+l.String(), KeyboardRegions(l))
	}
}

func TestKeyboardRegionsCarryEveryKey(t *testing.T) {
	regions := KeyboardRegions(keyboard.Numeric)

	kinds := map[keyboard.KeyKind]int{}
	literals := map[rune]bool{}
	for _, r := range regions {
		if r.Target != TargetKey {
			t.Fatalf("keyboard region %+v has target %v, want key", r.Rect, r.Target)
		}
		kinds[r.Key.Kind]++
		if r.Key.Kind == keyboard.Literal {
			literals[r.Key.Rune] = true
		}
	}
	for _, k := range []keyboard.KeyKind{keyboard.Shift, keyboard.Mode, keyboard.Backspace, keyboard.Enter, keyboard.Cancel, keyboard.Space} {
		if kinds[k] != 1 {
			t.Fatalf("control key %d appears %d times, want 1", k, kinds[k])
		}
	}
	for _, r := range "1234567890-/:;()$&@\".,?!'" {
		if !literals[r] {
			t.Fatalf("numeric layout missing %q", r)
		}
	}
}

func TestMainRowsCoverScreenHeight(t *testing.T) {
	var covered int16
	for _, r := range Regions(PageMain) {
		covered += r.Rect.H
	}
	if covered != ScreenH {
		t.Fatalf("main rows cover %d px, want %d", covered, ScreenH)
	}
}

func TestRectGeometry(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	if !r.Contains(hal.Point{X: 10, Y: 10}) || r.Contains(hal.Point{X: 30, Y: 10}) || r.Contains(hal.Point{X: 10, Y: 20}) {
		t.Fatalf("Contains() edges wrong for %+v", r)
	}

	u := r.Union(Rect{X: 25, Y: 0, W: 10, H: 5})
	if want := (Rect{X: 10, Y: 0, W: 25, H: 20}); u != want {
		t.Fatalf("Union() = %+v, want %+v", u, want)
	}
	if got := r.Union(Rect{}); got != r {
		t.Fatalf("Union(empty) = %+v, want %+v", got, r)
	}

	if got := (Rect{X: -5, Y: 230, W: 20, H: 20}).Clip(ScreenW, ScreenH); got != (Rect{X: 0, Y: 230, W: 15, H: 10}) {
		t.Fatalf("Clip() = %+v", got)
	}
}
