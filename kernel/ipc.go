package kernel

import (
	"runtime"
	"sync/atomic"
)

const mailboxSlots = 8

type mailboxSlot struct {
	// seq is pos+1 once the slot for ring position pos has been published.
	seq atomic.Uint32
	ev  Event
}

// Mailbox is a fixed-size multi-producer, single-consumer queue.
// It is designed for bare-metal use: no allocations, no locks, and producers
// never block, so it is safe to post from an interrupt handler.
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [mailboxSlots]mailboxSlot
}

// TrySend attempts to enqueue an event, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(ev Event) bool {
	for {
		head := mb.head.Load()
		tail := mb.tail.Load()
		if head-tail >= mailboxSlots {
			return false
		}

		// Reserve a slot.
		if !mb.head.CompareAndSwap(head, head+1) {
			continue
		}

		slot := &mb.slots[head%mailboxSlots]
		slot.ev = ev
		slot.seq.Store(head + 1)
		return true
	}
}

// Send enqueues an event, yielding until it succeeds. Never call it from
// interrupt context.
func (mb *Mailbox) Send(ev Event) {
	for !mb.TrySend(ev) {
		runtime.Gosched()
	}
}

// TryRecv attempts to dequeue one event, returning false if empty or if the
// oldest reserved slot is still being written.
func (mb *Mailbox) TryRecv() (Event, bool) {
	tail := mb.tail.Load()
	slot := &mb.slots[tail%mailboxSlots]
	if slot.seq.Load() != tail+1 {
		return Event{}, false
	}

	ev := slot.ev
	mb.tail.Store(tail + 1)
	return ev, true
}

// Recv blocks until one event is available.
func (mb *Mailbox) Recv() Event {
	for {
		ev, ok := mb.TryRecv()
		if ok {
			return ev
		}
		runtime.Gosched()
	}
}

// Len reports how many events are queued.
func (mb *Mailbox) Len() int {
	return int(mb.head.Load() - mb.tail.Load())
}
