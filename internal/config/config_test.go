package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	opts := cfg.AlarmOptions()
	if opts.CeilingMs != 120000 || opts.LongPressSeconds != 25 || opts.BeepPeriodMs != 800 {
		t.Fatalf("AlarmOptions() = %+v, want 120000/25/800", opts)
	}
	po := cfg.PageOptions()
	if po.InactivityMs != 120000 || po.BrightnessSeconds != 60 || po.DebounceMs != 60 || !po.Celebrate || po.GoodMorningMs != 10000 {
		t.Fatalf("PageOptions() = %+v", po)
	}
}

func TestLoadReaderOverridesDefaults(t *testing.T) {
	const doc = `
[tone]
frequency_hz = 3000
beep_period = "500ms"

[alarm]
ceiling = "90s"
long_press = "10s"
celebrate = false
good_morning = "4s"

[display]
brightness_ceiling = 200

[store]
backend = "yaml"
path = "/tmp/clock/alarm.yaml"
`
	cfg, err := LoadReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if cfg.Tone.FrequencyHz != 3000 || cfg.Tone.BeepPeriod.Duration != 500*time.Millisecond {
		t.Fatalf("tone = %+v", cfg.Tone)
	}
	if cfg.Alarm.Ceiling.Millis() != 90000 || cfg.Alarm.LongPress.WholeSeconds() != 10 || cfg.Alarm.Celebrate {
		t.Fatalf("alarm = %+v", cfg.Alarm)
	}
	if cfg.PageOptions().GoodMorningMs != 4000 {
		t.Fatalf("good_morning = %s, want 4s", cfg.Alarm.GoodMorning)
	}
	if cfg.Display.BrightnessCeiling != 200 {
		t.Fatalf("brightness_ceiling = %d, want 200", cfg.Display.BrightnessCeiling)
	}
	// Untouched sections keep their defaults.
	if cfg.Display.SaverStep != 1 || cfg.Touch.Debounce.Millis() != 60 {
		t.Fatalf("defaults lost: display=%+v touch=%+v", cfg.Display, cfg.Touch)
	}
	if cfg.Store.Backend != BackendYAML || cfg.Store.Path != "/tmp/clock/alarm.yaml" {
		t.Fatalf("store = %+v", cfg.Store)
	}
}

func TestLoadReaderRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "[alarm]\nsnooze = \"5m\"\n"},
		{"bad duration", "[alarm]\nceiling = \"soon\"\n"},
		{"negative duration", "[alarm]\nceiling = \"-1s\"\n"},
		{"press longer than ceiling", "[alarm]\nceiling = \"20s\"\nlong_press = \"25s\"\n"},
		{"frequency", "[tone]\nfrequency_hz = 50\n"},
		{"backend", "[store]\nbackend = \"sd\"\n"},
		{"brightness overflow", "[display]\nbrightness_ceiling = 300\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadReader(strings.NewReader(tt.doc)); err == nil {
				t.Fatalf("LoadReader(%q) error = nil, want error", tt.doc)
			}
		})
	}
}

func TestLoadReaderUnknownKeyIsInvalid(t *testing.T) {
	_, err := LoadReader(strings.NewReader("[display]\ncolour = 3\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("LoadReader() error = %v, want ErrInvalid", err)
	}
	if !strings.Contains(err.Error(), "display.colour") {
		t.Fatalf("error %q does not name the key", err)
	}
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	t.Setenv(StoreBackendEnv, "")
	t.Setenv(StorePathEnv, "")
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Tone.FrequencyHz != Default().Tone.FrequencyHz {
		t.Fatalf("FrequencyHz = %d, want default", cfg.Tone.FrequencyHz)
	}
}

func TestLoadFileEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock.toml")
	if err := os.WriteFile(path, []byte("[store]\nbackend = \"flash\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(StoreBackendEnv, BackendYAML)
	t.Setenv(StorePathEnv, "/var/lib/clock/alarm.yaml")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Store.Backend != BackendYAML || cfg.Store.Path != "/var/lib/clock/alarm.yaml" {
		t.Fatalf("store = %+v, want env overrides", cfg.Store)
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("")); err != nil || d.Duration != 0 {
		t.Fatalf("UnmarshalText(\"\") = %v, %v", d, err)
	}
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if d.Millis() != 90000 || d.WholeSeconds() != 90 {
		t.Fatalf("Millis()=%d WholeSeconds()=%d, want 90000 90", d.Millis(), d.WholeSeconds())
	}
	b, _ := d.MarshalText()
	if string(b) != "1m30s" {
		t.Fatalf("MarshalText() = %q, want 1m30s", b)
	}
	big := Duration{2000 * time.Hour}
	if big.Millis() != ^uint32(0) {
		t.Fatalf("Millis() of 2000h = %d, want saturated", big.Millis())
	}
}
