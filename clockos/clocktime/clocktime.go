// Package clocktime holds the 12-hour wall-clock value shown on the face and
// keeps it ticking between RTC reads.
package clocktime

import (
	"fmt"
	"time"
)

// Time is a wall-clock reading in 12-hour form.
type Time struct {
	Hour    uint8 // 1–12
	Minute  uint8
	Second  uint8
	IsAM    bool
	Weekday time.Weekday
	Year    int
	Month   time.Month
	Day     uint8
}

// FromTime converts a time.Time to its 12-hour form.
func FromTime(t time.Time) Time {
	h, am := From24(t.Hour())
	return Time{
		Hour:    h,
		Minute:  uint8(t.Minute()),
		Second:  uint8(t.Second()),
		IsAM:    am,
		Weekday: t.Weekday(),
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     uint8(t.Day()),
	}
}

// From24 splits a 0–23 hour into 1–12 and AM/PM.
func From24(h int) (hour uint8, am bool) {
	h %= 24
	if h < 0 {
		h += 24
	}
	am = h < 12
	h %= 12
	if h == 0 {
		h = 12
	}
	return uint8(h), am
}

// To24 joins a 1–12 hour and AM/PM into 0–23.
func To24(hour uint8, am bool) int {
	h := int(hour) % 12
	if !am {
		h += 12
	}
	return h
}

// Hour24 returns the hour on a 0–23 scale.
func (t Time) Hour24() int { return To24(t.Hour, t.IsAM) }

// MinuteKey returns minutes since midnight. It identifies one minute of the day.
func (t Time) MinuteKey() int { return t.Hour24()*60 + int(t.Minute) }

// Date returns t as a time.Time in loc, keeping its calendar date.
func (t Time) Date(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(t.Year, t.Month, int(t.Day), t.Hour24(), int(t.Minute), int(t.Second), 0, loc)
}

// Meridiem returns "AM" or "PM".
func (t Time) Meridiem() string { return Meridiem(t.IsAM) }

// Meridiem returns "AM" or "PM".
func Meridiem(am bool) string {
	if am {
		return "AM"
	}
	return "PM"
}

// HourMinute formats the face digits, e.g. " 7:05".
func (t Time) HourMinute() string {
	return fmt.Sprintf("%2d:%02d", t.Hour, t.Minute)
}

// DateString formats the date row, e.g. "Mon Mar 04".
func (t Time) DateString() string {
	return fmt.Sprintf("%.3s %.3s %02d", t.Weekday, t.Month, t.Day)
}

func (t Time) String() string {
	return fmt.Sprintf("%d:%02d:%02d %s", t.Hour, t.Minute, t.Second, t.Meridiem())
}
