package engine

import (
	"sort"
	"sync/atomic"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/event"
)

// World holds all entities in per-category stores plus singleton resources
// All mutation happens on the frame loop; only the event queue is shared with input goroutines
type World struct {
	nextEntityID core.Entity

	Projectiles *Store[component.Projectile]
	Targets     *Store[component.Target]
	Monoliths   *Store[component.Monolith]
	Fragments   *Store[component.Fragment]
	Particles   *Store[component.Particle]
	IdleWeapons *Store[component.IdleWeapon]

	// Visuals maps an entity to its renderer node
	Visuals *Store[Handle]

	Resources Resource
	Scheduler *Scheduler

	queue   *event.EventQueue
	router  *EventRouter
	systems []System

	// frame mirrors Clock.Tick for event stamping from input goroutines
	frame atomic.Int64
}

// NewWorld creates an empty world wired to the given collaborators
// Nil collaborators are replaced with no-op implementations
func NewWorld(renderer Renderer, audio AudioPlayer) *World {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	if audio == nil {
		audio = NopAudio{}
	}

	q := event.NewEventQueue()
	w := &World{
		nextEntityID: 1,
		Projectiles:  NewStore[component.Projectile](),
		Targets:      NewStore[component.Target](),
		Monoliths:    NewStore[component.Monolith](),
		Fragments:    NewStore[component.Fragment](),
		Particles:    NewStore[component.Particle](),
		IdleWeapons:  NewStore[component.IdleWeapon](),
		Visuals:      NewStore[Handle](),
		Scheduler:    NewScheduler(),
		queue:        q,
		router:       NewEventRouter(q),
	}
	w.Resources.Clock = &ClockResource{}
	w.Resources.Renderer = renderer
	w.Resources.Audio = audio
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Attach spawns a renderer node for e
func (w *World) Attach(e core.Entity, v Visual) Handle {
	h := w.Resources.Renderer.Spawn(v)
	if h != nil {
		w.Visuals.Set(e, h)
	}
	return h
}

// Visual returns the renderer node of e, if any
func (w *World) Visual(e core.Entity) (Handle, bool) {
	h, ok := w.Visuals.Get(e)
	if !ok {
		return nil, false
	}
	return *h, true
}

// DestroyEntity removes e from every store and its node from the scene
func (w *World) DestroyEntity(e core.Entity) {
	if h, ok := w.Visual(e); ok {
		h.Remove()
		w.Visuals.Remove(e)
	}
	w.Projectiles.Remove(e)
	w.Targets.Remove(e)
	w.Monoliths.Remove(e)
	w.Fragments.Remove(e)
	w.Particles.Remove(e)
	w.IdleWeapons.Remove(e)
}

// Clear destroys every entity that still has a visual and empties all stores
func (w *World) Clear() {
	for i := w.Visuals.Len() - 1; i >= 0; i-- {
		_, h := w.Visuals.At(i)
		(*h).Remove()
	}
	w.Visuals.Clear()
	w.Projectiles.Clear()
	w.Targets.Clear()
	w.Monoliths.Clear()
	w.Fragments.Clear()
	w.Particles.Clear()
	w.IdleWeapons.Clear()
}

// AddSystem registers a system, keeps the list sorted by priority and
// routes events to it if it implements EventHandler
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	if h, ok := s.(EventHandler); ok {
		w.router.Register(h)
	}
}

// PushEvent queues an event for the next dispatch; safe from any goroutine
func (w *World) PushEvent(t event.EventType, payload any) {
	w.queue.Push(event.GameEvent{Type: t, Payload: payload, Tick: w.frame.Load()})
}

// InputDropped returns how many queued events were lost to overflow
func (w *World) InputDropped() uint64 {
	return w.queue.Dropped()
}

// Step advances the simulated clock one fixed step and queues scheduled events now due
func (w *World) Step(step float64) {
	clock := w.Resources.Clock
	clock.Advance(step)
	w.frame.Store(clock.Tick)
	for _, ev := range w.Scheduler.PopDue(clock.Now) {
		ev.Tick = clock.Tick
		w.queue.Push(ev)
	}
}

// Dispatch routes every queued event to its handlers
func (w *World) Dispatch() int {
	return w.router.DispatchAll()
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update()
	}
}

// Play forwards a cue to the audio collaborator
func (w *World) Play(sound core.SoundType) {
	w.Resources.Audio.Play(sound)
}
