//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"alarmclock/app"
	"alarmclock/hal"
	"alarmclock/internal/config"
)

func main() {
	var hcfg hal.HeadlessConfig
	var cfgPath, storePath string
	flag.StringVar(&cfgPath, "config", "alarmclock.toml", "TOML config file (missing file = defaults).")
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 0, "Loop rate in headless mode (0 = config value).")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N loop iterations in headless mode (0 = config value, forever if unset).")
	flag.StringVar(&storePath, "store", "", "Keep the alarm in this YAML file instead of flash.")
	flag.Parse()

	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if storePath != "" {
		cfg.Store.Backend = config.BackendYAML
		cfg.Store.Path = storePath
	}
	if hcfg.Hz == 0 {
		hcfg.Hz = cfg.Headless.Hz
	}
	if hcfg.Ticks == 0 {
		hcfg.Ticks = cfg.Headless.Ticks
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
