package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/event"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/physics"
	"github.com/lixenwraith/stress-bomb/status"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// Collision is the surface class a projectile hit this tick
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionBoundary
	CollisionGround
	CollisionTarget
)

// ProjectileSystem integrates projectiles and resolves collisions
// Tests run boundary, ground, targets; the first match wins
type ProjectileSystem struct {
	world *engine.World

	statLive  *atomic.Int64
	statHits  *atomic.Int64
	statScore *atomic.Int64
}

func NewProjectileSystem(world *engine.World) *ProjectileSystem {
	reg := world.Resources.Status
	return &ProjectileSystem{
		world:     world,
		statLive:  reg.Ints.Get(status.KeyProjectiles),
		statHits:  reg.Ints.Get(status.KeyHits),
		statScore: reg.Ints.Get(status.KeyScore),
	}
}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

func (s *ProjectileSystem) Update() {
	store := s.world.Projectiles
	for i := store.Len() - 1; i >= 0; i-- {
		e, p := store.At(i)

		if p.Stuck {
			s.ageStuck(e, p)
			continue
		}

		integrate(p)
		if h, ok := s.world.Visual(e); ok {
			h.SetPosition(p.Position)
			h.SetRotation(p.Rotation)
			if p.ChargeLevel > parameter.OverchargeThreshold {
				h.SetEmissive(OverchargeIntensity(p.ChargeLevel))
			}
		}

		s.collide(e, p)
	}
	s.statLive.Store(int64(store.Len()))
}

// integrate applies damping then gravity, then advances by the fixed step
func integrate(p *component.Projectile) {
	physics.Integrate(&p.Position, &p.Velocity, physics.ProjectileProfile, parameter.TickStep)

	if p.Kind == component.WeaponImpact {
		p.Rotation.X += parameter.ImpactSpinRate
		p.Rotation.Y += parameter.ImpactSpinRate
	} else {
		p.Rotation = vmath.LookRotation(p.Velocity)
	}
}

// ageStuck fades and eventually removes an embedded projectile; position is never touched
func (s *ProjectileSystem) ageStuck(e core.Entity, p *component.Projectile) {
	p.StuckLife += parameter.TickStep
	if p.StuckLife > parameter.StuckFadeAfter {
		p.Opacity = math.Max(0, p.Opacity-parameter.StuckFadeStep)
		if h, ok := s.world.Visual(e); ok {
			h.SetOpacity(p.Opacity)
		}
	}
	if p.StuckLife > parameter.StuckRemoveAfter {
		s.world.DestroyEntity(e)
	}
}

// Detect returns the first collision class for a projectile position
// For CollisionTarget the hit target entity is returned
func Detect(w *engine.World, pos vmath.Vec3F) (Collision, core.Entity) {
	for i := 0; i < w.Monoliths.Len(); i++ {
		_, m := w.Monoliths.At(i)
		if (physics.Sphere{Center: m.Position, Radius: parameter.BoundaryRadius}).Contains(pos) {
			return CollisionBoundary, 0
		}
	}

	if physics.BelowPlane(pos, parameter.FloorY) {
		return CollisionGround, 0
	}

	for i := 0; i < w.Targets.Len(); i++ {
		te, t := w.Targets.At(i)
		if (physics.Sphere{Center: t.Position, Radius: parameter.TargetHitRadius}).Contains(pos) {
			return CollisionTarget, te
		}
	}
	return CollisionNone, 0
}

func (s *ProjectileSystem) collide(e core.Entity, p *component.Projectile) {
	hit, target := Detect(s.world, p.Position)
	switch hit {
	case CollisionBoundary:
		s.embedOrDetonate(e, p)
	case CollisionGround:
		if p.Kind == component.WeaponPiercing {
			physics.ClampToPlane(&p.Position, parameter.FloorY)
			if h, ok := s.world.Visual(e); ok {
				h.SetPosition(p.Position)
			}
		}
		s.embedOrDetonate(e, p)
	case CollisionTarget:
		s.hitTarget(e, p, target)
	}
}

// embedOrDetonate resolves a static-surface hit per weapon kind
func (s *ProjectileSystem) embedOrDetonate(e core.Entity, p *component.Projectile) {
	cam := s.world.Resources.Camera
	if p.Kind == component.WeaponImpact {
		spawnDetonation(s.world, p.Position)
		s.world.Play(core.SoundExplode)
		cam.AddShake(parameter.ShakeImpactDetonation)
		s.world.DestroyEntity(e)
		return
	}

	p.Stuck = true
	physics.Halt(&p.Velocity)
	s.world.Play(core.SoundThunk)
	cam.AddShake(parameter.ShakePiercing)
}

// hitTarget applies score, debris and respawn, then consumes the projectile
func (s *ProjectileSystem) hitTarget(e core.Entity, p *component.Projectile, target core.Entity) {
	w := s.world
	t, ok := w.Targets.Get(target)
	if !ok {
		return
	}
	cam := w.Resources.Camera

	points := ScorePoints(t.Position.Z-cam.Position.Z, t.Tier)
	w.Resources.Score.Add(points)
	s.statHits.Add(1)
	s.statScore.Store(int64(w.Resources.Score.Points))

	color := t.Color
	if h, ok := w.Visual(target); ok {
		color = h.Color()
	}
	origin := t.Position
	spawnFragments(w, origin, color, p.Kind, p.ChargeLevel)

	w.DestroyEntity(target)
	w.Scheduler.Schedule(w.Resources.Clock.Now+parameter.TargetRespawnDelay, event.GameEvent{
		Type: event.EventTargetSpawnRequest,
	})

	if p.Kind == component.WeaponImpact {
		spawnDetonation(w, origin)
		w.Play(core.SoundExplode)
		cam.AddShake(parameter.ShakeImpactTargetHit)
	} else {
		w.Play(core.SoundThunk)
		cam.AddShake(parameter.ShakePiercing)
	}
	w.DestroyEntity(e)
}
