package kernel

// Elapsed returns now-since on the wrapping millisecond counter. Unsigned
// subtraction stays correct across the 2^32 rollover as long as the real gap
// is under ~49.7 days.
func Elapsed(now, since uint32) uint32 {
	return now - since
}

// Expired reports whether at least d milliseconds have passed since start.
func Expired(now, start, d uint32) bool {
	return Elapsed(now, start) >= d
}
