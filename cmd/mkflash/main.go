//go:build !tinygo

// Command mkflash writes an alarm record into a flash image, either the host
// flash file or a dump to program onto the device.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"alarmclock/clockos/alarm"
	"alarmclock/clockos/store"
	"alarmclock/hal"
)

const (
	defaultFlashPath = "alarmclock.flash"
	defaultFlashSize = 64 * 1024
)

func main() {
	var outPath, at, label, from string
	var flashSize, offset uint
	var disabled, dump bool
	flag.StringVar(&outPath, "out", defaultFlashPath, "Flash image path.")
	flag.UintVar(&flashSize, "size", defaultFlashSize, "Flash image size for a new file (bytes).")
	flag.UintVar(&offset, "offset", 0, "Record offset inside the image (bytes, erase-block aligned).")
	flag.StringVar(&at, "alarm", "7:00AM", "Alarm time, e.g. 6:45AM or 10:30PM.")
	flag.StringVar(&label, "label", "", "Alarm label.")
	flag.BoolVar(&disabled, "disabled", false, "Write the alarm switched off.")
	flag.StringVar(&from, "from", "", "Copy the alarm from a YAML store file instead of -alarm/-label.")
	flag.BoolVar(&dump, "dump", false, "Print the record in -out and exit.")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	var err error
	if dump {
		err = runDump(outPath, uint32(flashSize), uint32(offset))
	} else {
		err = run(outPath, uint32(flashSize), uint32(offset), at, label, from, !disabled)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(outPath string, size, offset uint32, at, label, from string, enabled bool) error {
	var cfg alarm.Config
	if from != "" {
		c, ok, err := store.NewYAMLStore(from).Load()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: %w", from, os.ErrNotExist)
		}
		cfg = c
	} else {
		c, err := parseAlarm(at)
		if err != nil {
			return err
		}
		c.Label = label
		c.Enabled = enabled
		cfg = c
	}

	ff := hal.OpenFileFlash(outPath, size)
	defer func() { _ = ff.Close() }()

	fs := store.NewFlashStore(ff, offset)
	if err := fs.Save(cfg); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	got, ok, err := fs.Load()
	if err != nil || !ok || got != cfg {
		return fmt.Errorf("verify %s: read back %v (ok=%v, err=%v)", outPath, got, ok, err)
	}
	fmt.Printf("%s: wrote alarm %s enabled=%v label=%q at offset %d\n", outPath, cfg, cfg.Enabled, cfg.Label, offset)
	return nil
}

func runDump(path string, size, offset uint32) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	ff := hal.OpenFileFlash(path, size)
	defer func() { _ = ff.Close() }()

	cfg, ok, err := store.NewFlashStore(ff, offset).Load()
	switch {
	case errors.Is(err, store.ErrCorrupt):
		fmt.Printf("%s: corrupt record at offset %d: %v\n", path, offset, err)
		return nil
	case err != nil:
		return err
	case !ok:
		fmt.Printf("%s: no record at offset %d\n", path, offset)
		return nil
	}
	fmt.Printf("%s: alarm %s enabled=%v label=%q\n", path, cfg, cfg.Enabled, cfg.Label)
	return nil
}

// parseAlarm reads "H:MM" followed by AM or PM.
func parseAlarm(s string) (alarm.Config, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	var c alarm.Config
	switch {
	case strings.HasSuffix(s, "AM"):
		c.IsAM = true
	case strings.HasSuffix(s, "PM"):
	default:
		return c, fmt.Errorf("alarm %q: missing AM/PM: %w", s, alarm.ErrInvalidConfig)
	}
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s[:len(s)-2]), "%d:%d", &h, &m); err != nil {
		return c, fmt.Errorf("alarm %q: %w", s, alarm.ErrInvalidConfig)
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return c, fmt.Errorf("alarm %q: %w", s, alarm.ErrInvalidConfig)
	}
	c.Hour, c.Minute = uint8(h), uint8(m)
	return c, nil
}
