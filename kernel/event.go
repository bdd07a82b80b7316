package kernel

// EventKind identifies what an interrupt-side producer observed.
type EventKind uint8

const (
	EventNone EventKind = iota
	// EventSecond is one RTC square-wave edge.
	EventSecond
)

// Event is a fixed-size record handed from interrupt context to the main loop.
type Event struct {
	Kind EventKind
	// Seq is the producer's running count, so the consumer can spot gaps.
	Seq uint64
	// At is the monotonic millisecond timestamp of the edge.
	At uint32
}
