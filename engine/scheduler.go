package engine

import (
	"container/heap"

	"github.com/lixenwraith/stress-bomb/event"
)

// Scheduler holds one-shot events keyed by simulated time
// Owned by the frame loop; due events are drained at the start of each tick
type Scheduler struct {
	entries entryHeap
	live    map[uint64]*scheduled
	nextID  uint64
}

type scheduled struct {
	id    uint64
	at    float64
	seq   uint64
	ev    event.GameEvent
	index int
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		live: make(map[uint64]*scheduled),
	}
}

// Schedule queues ev to fire once the simulated clock reaches at
// Returns an id for Cancel
func (s *Scheduler) Schedule(at float64, ev event.GameEvent) uint64 {
	s.nextID++
	entry := &scheduled{id: s.nextID, at: at, seq: s.nextID, ev: ev}
	heap.Push(&s.entries, entry)
	s.live[entry.id] = entry
	return entry.id
}

// Cancel drops a pending event, reporting whether it was still pending
func (s *Scheduler) Cancel(id uint64) bool {
	entry, ok := s.live[id]
	if !ok {
		return false
	}
	heap.Remove(&s.entries, entry.index)
	delete(s.live, id)
	return true
}

// CancelAll drops every pending event, returning how many were dropped
func (s *Scheduler) CancelAll() int {
	n := len(s.entries)
	s.entries = s.entries[:0]
	clear(s.live)
	return n
}

// PopDue removes and returns events whose time is <= now, earliest first
// Events sharing a time keep scheduling order
func (s *Scheduler) PopDue(now float64) []event.GameEvent {
	var due []event.GameEvent
	for len(s.entries) > 0 && s.entries[0].at <= now {
		entry := heap.Pop(&s.entries).(*scheduled)
		delete(s.live, entry.id)
		due = append(due, entry.ev)
	}
	return due
}

// Pending returns the number of scheduled events
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

// NextAt returns the earliest scheduled time
func (s *Scheduler) NextAt() (float64, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	return s.entries[0].at, true
}

type entryHeap []*scheduled

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	entry := x.(*scheduled)
	entry.index = len(*h)
	*h = append(*h, entry)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*h = old[:n-1]
	return entry
}
