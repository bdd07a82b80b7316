// Package brightness maps ambient light to a backlight level.
package brightness

import (
	"fmt"

	"alarmclock/hal"
)

// Backlight levels.
const (
	Night   uint8 = 1
	Evening uint8 = 100
	Day     uint8 = 150
	Max     uint8 = 255
)

// EdgeMin is the lowest level at which the screensaver draws its colored
// border.
const EdgeMin uint8 = 60

// ForHour is the level for a given hour of the day when there is no light
// reading: Night from 22:00 to 05:59, Evening from 18:00, Day otherwise. It
// never exceeds ceiling.
func ForHour(hour24 int, ceiling uint8) uint8 {
	if ceiling == 0 {
		ceiling = Night
	}
	level := Day
	switch {
	case hour24 >= 22 || hour24 < 6:
		level = Night
	case hour24 >= 18:
		level = Evening
	}
	return min(level, ceiling)
}

// Map scales raw linearly onto 0..ceiling, rounds down to a multiple of 10
// and never returns less than 1 or more than ceiling.
func Map(raw, rawMax uint16, ceiling uint8) uint8 {
	if ceiling == 0 {
		ceiling = Night
	}
	if rawMax == 0 {
		return ceiling
	}
	if raw > rawMax {
		raw = rawMax
	}
	v := uint32(raw) * uint32(ceiling) / uint32(rawMax)
	v = v / 10 * 10
	if v < uint32(Night) {
		v = uint32(Night)
	}
	if v > uint32(ceiling) {
		v = uint32(ceiling)
	}
	return uint8(v)
}

// Controller pushes mapped sensor readings to the display.
type Controller struct {
	sensor  hal.LightSensor
	display hal.Display
	log     hal.Logger
	ceiling uint8
	level   uint8
	failing bool
}

// NewController returns a controller that has not set a level yet.
func NewController(sensor hal.LightSensor, display hal.Display, ceiling uint8, log hal.Logger) *Controller {
	if ceiling == 0 {
		ceiling = Day
	}
	return &Controller{sensor: sensor, display: display, ceiling: ceiling, log: log}
}

// Level returns the last level sent to the display, 0 before the first.
func (c *Controller) Level() uint8 { return c.level }

// Recheck reads the sensor and updates the backlight if the level moved.
// Without a sensor, or when the read fails, the level follows hour24.
func (c *Controller) Recheck(hour24 int) {
	if c.sensor == nil {
		c.Set(ForHour(hour24, c.ceiling))
		return
	}
	raw, err := c.sensor.ReadRaw()
	if err != nil {
		if !c.failing {
			c.logf("brightness: read light sensor: %v; following the clock", err)
		}
		c.failing = true
		c.Set(ForHour(hour24, c.ceiling))
		return
	}
	if c.failing {
		c.logf("brightness: light sensor back")
		c.failing = false
	}
	c.Set(Map(raw, c.sensor.MaxRaw(), c.ceiling))
}

// Edge reports whether the backlight is bright enough for the screensaver's
// colored border.
func (c *Controller) Edge() bool { return c.level >= EdgeMin }

// Set forces level.
func (c *Controller) Set(level uint8) {
	if level == c.level {
		return
	}
	c.level = level
	if c.display != nil {
		c.display.SetBrightness(level)
	}
	c.logf("brightness: set to %d", level)
}

// Full sets the hardware maximum, used while the alarm sounds.
func (c *Controller) Full() { c.Set(Max) }

func (c *Controller) logf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.WriteLineString(fmt.Sprintf(format, args...))
}
