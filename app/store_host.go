//go:build !tinygo

package app

import "alarmclock/clockos/store"

func newYAMLStore(path string) store.Store {
	return store.NewYAMLStore(path)
}
