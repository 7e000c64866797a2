package engine

import "github.com/lixenwraith/stress-bomb/event"

// System is one per-tick stage of the simulation
type System interface {
	// Name returns a short identifier used in logs
	Name() string

	// Priority orders systems; lower runs first
	Priority() int

	// Update advances the system by one fixed step
	Update()
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before World.Update()
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
