//go:build !(tinygo && bootdebug)

package app

import "alarmclock/hal"

func bootScreen(hal.HAL, string) {}

func bootDiagStart(hal.HAL) {}
