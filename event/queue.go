package event

import (
	"slices"
	"sync"

	"github.com/lixenwraith/stress-bomb/parameter"
)

// EventQueue buffers input and due timed events between two dispatches
//
// Producers: input goroutines and the frame loop (scheduler releases)
// Consumer: the frame loop, once per tick
//
// Pointer motion and resizes are state updates: a new one replaces a pending
// one at the tail, and when the queue is full the oldest of them is evicted first.
// Triggers, weapon switches and spawn requests are dropped only when nothing
// stale is left to evict.
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{pending: make([]GameEvent, 0, parameter.EventQueueSize)}
}

// stale reports whether only the latest event of type t matters
func stale(t EventType) bool {
	return t == EventPointerMove || t == EventResize
}

// Push queues ev, coalescing repeated state updates
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if n := len(eq.pending); n > 0 && stale(ev.Type) && eq.pending[n-1].Type == ev.Type {
		eq.pending[n-1] = ev
		return
	}
	if len(eq.pending) >= parameter.EventQueueSize {
		eq.evict()
	}
	eq.pending = append(eq.pending, ev)
}

// evict removes the oldest stale event, or the oldest event when none is stale
func (eq *EventQueue) evict() {
	victim := slices.IndexFunc(eq.pending, func(ev GameEvent) bool { return stale(ev.Type) })
	if victim < 0 {
		victim = 0
	}
	eq.pending = slices.Delete(eq.pending, victim, victim+1)
	eq.dropped++
}

// Consume returns all pending events in FIFO order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.pending) == 0 {
		return nil
	}
	out := slices.Clone(eq.pending)
	eq.pending = eq.pending[:0]
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.pending)
}

// Dropped returns how many events were evicted by overflow
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
