package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/event"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/status"
	"github.com/lixenwraith/stress-bomb/vmath"
)

var shapeGeometry = [component.ShapeCount]engine.Geometry{
	component.ShapeBox:         engine.GeometryBox,
	component.ShapeSphere:      engine.GeometrySphere,
	component.ShapeCone:        engine.GeometryCone,
	component.ShapeTorus:       engine.GeometryTorus,
	component.ShapeOctahedron:  engine.GeometryOctahedron,
	component.ShapeIcosahedron: engine.GeometryIcosahedron,
}

// TargetSystem owns the live target pool: float motion, spin and respawn
type TargetSystem struct {
	world *engine.World
	rng   *vmath.FastRand

	statLive    *atomic.Int64
	statPending *atomic.Int64
}

func NewTargetSystem(world *engine.World) *TargetSystem {
	return &TargetSystem{
		world:       world,
		rng:         world.Resources.Rand,
		statLive:    world.Resources.Status.Ints.Get(status.KeyTargets),
		statPending: world.Resources.Status.Ints.Get(status.KeyPending),
	}
}

func (s *TargetSystem) Name() string {
	return "target"
}

func (s *TargetSystem) Priority() int {
	return parameter.PriorityTarget
}

func (s *TargetSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventTargetSpawnRequest}
}

// HandleEvent appends one target; the pool's ordering at this point is irrelevant
func (s *TargetSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventTargetSpawnRequest {
		s.SpawnTarget()
	}
}

// SpawnTarget adds one freshly randomized target
func (s *TargetSystem) SpawnTarget() core.Entity {
	r := s.rng
	shape := component.TargetShape(r.Intn(int(component.ShapeCount)))

	t := component.Target{
		Shape: shape,
		Tier:  component.TierNormal,
		Color: parameter.TargetPalette[r.Intn(len(parameter.TargetPalette))],
		Base: vmath.Vec3F{
			X: r.Centered(parameter.TargetSpawnSpanX),
			Y: r.RangeF(parameter.TargetSpawnMinY, parameter.TargetSpawnMinY+parameter.TargetSpawnSpanY),
			Z: r.Centered(parameter.TargetSpawnSpanZ) + parameter.TargetSpawnOffsetZ,
		},
		Spin: vmath.Vec3F{
			X: r.Centered(parameter.TargetSpinSpan),
			Y: r.Centered(parameter.TargetSpinSpan),
			Z: r.Centered(parameter.TargetSpinSpan),
		},
		FloatSpeed: (parameter.TargetFloatSpeedMin + r.Float64()*parameter.TargetFloatSpeedSpan) * parameter.TargetFloatSpeedScale,
		FloatAmp:   parameter.TargetFloatAmpMin + r.Float64()*parameter.TargetFloatAmpSpan,
		FloatPhase: r.Float64() * parameter.TargetFloatPhaseSpan,
	}
	switch shape {
	case component.ShapeCone:
		t.Tier = component.TierSilver
		t.Color = parameter.ColorSilver
	case component.ShapeTorus:
		t.Tier = component.TierGold
		t.Color = parameter.ColorGold
	}
	t.Position = s.floatPosition(&t)

	return PlaceTarget(s.world, t)
}

// PlaceTarget inserts a fully specified target
func PlaceTarget(w *engine.World, t component.Target) core.Entity {
	e := w.CreateEntity()
	w.Targets.Set(e, t)
	w.Attach(e, engine.Visual{
		Geometry: shapeGeometry[t.Shape%component.ShapeCount],
		Color:    t.Color,
		Size:     parameter.TargetSize,
		Opacity:  1,
		Scale:    1,
		Position: t.Position,
		Rotation: t.Rotation,
	})
	return e
}

func (s *TargetSystem) floatPosition(t *component.Target) vmath.Vec3F {
	ms := s.world.Resources.Clock.Millis()
	p := t.Base
	p.Y += math.Sin(ms*t.FloatSpeed+t.FloatPhase) * t.FloatAmp
	return p
}

func (s *TargetSystem) Update() {
	store := s.world.Targets
	for i := store.Len() - 1; i >= 0; i-- {
		e, t := store.At(i)
		t.Position = s.floatPosition(t)
		t.Rotation = vmath.V3FAdd(t.Rotation, t.Spin)

		if h, ok := s.world.Visual(e); ok {
			h.SetPosition(t.Position)
			h.SetRotation(t.Rotation)
		}
	}

	s.statLive.Store(int64(store.Len()))
	s.statPending.Store(int64(s.world.Scheduler.Pending()))
}
