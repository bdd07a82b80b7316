//go:build tinygo

package app

import "alarmclock/clockos/store"

// The device has no file system; the alarm lives in flash.
func newYAMLStore(string) store.Store { return nil }
