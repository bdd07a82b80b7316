package tone

// Request asks for one tone. Frequency 0 is a rest. A held request keeps
// sounding after its duration until the next request or Disable.
type Request struct {
	Frequency  uint32
	DurationMs uint32
	Hold       bool
}

// Celebrate is the short fanfare played after the user dismisses an alarm.
var Celebrate = []Request{
	{Frequency: 1047, DurationMs: 150},
	{Frequency: 0, DurationMs: 40},
	{Frequency: 1319, DurationMs: 150},
	{Frequency: 0, DurationMs: 40},
	{Frequency: 1568, DurationMs: 150},
	{Frequency: 0, DurationMs: 40},
	{Frequency: 2093, DurationMs: 400},
}
