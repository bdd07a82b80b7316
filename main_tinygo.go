//go:build tinygo

package main

import (
	"alarmclock/app"
	"alarmclock/hal"
)

func main() {
	app.Run(hal.New())
}
