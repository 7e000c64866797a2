package game

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/event"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/status"
	"github.com/lixenwraith/stress-bomb/system"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// Options configures a new Simulation
type Options struct {
	// Seed drives every random draw; zero picks a time-based seed
	Seed uint64
	// Aspect is the initial viewport width/height ratio
	Aspect float64
	// Weapon is the starting weapon kind
	Weapon component.WeaponKind
	// Status receives counters; nil allocates a private registry
	Status *status.Registry
}

// Simulation is the per-frame core: one Tick per rendered frame
// Input methods only queue events and are safe to call from any goroutine;
// Tick, HUD and Close belong to the frame loop
type Simulation struct {
	world   *engine.World
	charge  *system.ChargeSystem
	targets *system.TargetSystem

	seed        uint64
	statTicks   *atomic.Int64
	statDropped *atomic.Int64
	closed      atomic.Bool
}

// New builds the world: boundary markers, the initial target pool and the idle weapon
func New(opts Options, renderer engine.Renderer, audio engine.AudioPlayer) *Simulation {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	w := engine.NewWorld(renderer, audio)
	w.Resources.Camera = engine.NewCameraResource(opts.Aspect)
	w.Resources.Charge = &component.ChargeState{Kind: opts.Weapon}
	w.Resources.Score = &engine.ScoreResource{}
	w.Resources.Rand = vmath.NewFastRand(seed)
	w.Resources.Status = reg

	s := &Simulation{
		world:       w,
		seed:        seed,
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statDropped: reg.Ints.Get(status.KeyDropped),
	}

	s.targets = system.NewTargetSystem(w)
	s.charge = system.NewChargeSystem(w)
	w.AddSystem(s.targets)
	w.AddSystem(s.charge)
	w.AddSystem(system.NewCameraSystem(w))
	w.AddSystem(system.NewProjectileSystem(w))
	w.AddSystem(system.NewFragmentSystem(w))
	w.AddSystem(system.NewParticleSystem(w))

	s.buildBoundary()
	for i := 0; i < parameter.TargetCount; i++ {
		s.targets.SpawnTarget()
	}
	s.charge.SpawnIdle()

	log.Printf("simulation: seed=%d targets=%d monoliths=%d", seed, w.Targets.Len(), w.Monoliths.Len())
	return s
}

// buildBoundary lines both sides of the range with sandstone monoliths
func (s *Simulation) buildBoundary() {
	rng := s.world.Resources.Rand
	for i := 0; i < parameter.MonolithRows; i++ {
		z := parameter.MonolithStartZ - float64(i)*parameter.MonolithSpacingZ
		for _, side := range [2]float64{-1, 1} {
			x := side * (parameter.MonolithInnerX + rng.Float64()*parameter.MonolithSpreadX)
			color := core.HSL(parameter.MonolithHue, parameter.MonolithSat,
				parameter.MonolithLightMin+rng.Float64()*parameter.MonolithLightSpan)
			system.SpawnMonolith(s.world, vmath.Vec3F{X: x, Z: z}, color)
		}
	}
}

func (s *Simulation) push(t event.EventType, payload any) {
	if s.closed.Load() {
		return
	}
	s.world.PushEvent(t, payload)
}

// PointerDown starts charging at an NDC position
func (s *Simulation) PointerDown(x, y float64) {
	s.push(event.EventTriggerDown, &event.PointerPayload{X: x, Y: y})
}

// PointerUp releases the charge
func (s *Simulation) PointerUp() {
	s.push(event.EventTriggerUp, nil)
}

// PointerMove updates the aim position
func (s *Simulation) PointerMove(x, y float64) {
	s.push(event.EventPointerMove, &event.PointerPayload{X: x, Y: y})
}

// SwitchWeapon requests a weapon kind change; honored only while idle
func (s *Simulation) SwitchWeapon(kind component.WeaponKind) {
	s.push(event.EventWeaponSwitch, &event.WeaponSwitchPayload{Kind: kind})
}

// Resize updates the viewport aspect ratio
func (s *Simulation) Resize(aspect float64) {
	s.push(event.EventResize, &event.ResizePayload{Aspect: aspect})
}

// Tick advances the simulation one fixed step
// Order: clock and due timed events, input dispatch, then systems by priority
func (s *Simulation) Tick() {
	if s.closed.Load() {
		return
	}
	s.world.Step(parameter.TickStep)
	s.world.Dispatch()
	s.world.Update()
	s.statTicks.Add(1)
	s.statDropped.Store(int64(s.world.InputDropped()))
}

// HUD returns the snapshot read by the UI each frame
func (s *Simulation) HUD() engine.HUD {
	cs := s.world.Resources.Charge
	hud := engine.HUD{
		Score:       s.world.Resources.Score.Points,
		Holding:     cs.Holding,
		Reloading:   cs.Reloading,
		ChargeRatio: cs.Ratio(),
		Weapon:      cs.Kind,
	}
	if cs.Holding {
		hud.Overcharge = system.OverchargeIntensity(cs.Power)
	}
	return hud
}

// Camera exposes the camera for projection by the renderer
func (s *Simulation) Camera() *engine.CameraResource {
	return s.world.Resources.Camera
}

// World exposes the underlying world
func (s *Simulation) World() *engine.World {
	return s.world
}

// Seed returns the seed in use
func (s *Simulation) Seed() uint64 {
	return s.seed
}

// Close cancels pending respawns and removes every node from the scene
// Further input and ticks are ignored
func (s *Simulation) Close() {
	if s.closed.Swap(true) {
		return
	}
	dropped := s.world.Scheduler.CancelAll()
	s.world.Clear()
	log.Printf("simulation: closed tick=%d score=%d hits=%d cancelled=%d",
		s.world.Resources.Clock.Tick, s.world.Resources.Score.Points, s.world.Resources.Score.Hits, dropped)
}
