package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/physics"
	"github.com/lixenwraith/stress-bomb/status"
)

// ParticleSystem ages detonation flashes and sparks back-to-front
type ParticleSystem struct {
	world    *engine.World
	statLive *atomic.Int64
}

func NewParticleSystem(world *engine.World) *ParticleSystem {
	return &ParticleSystem{
		world:    world,
		statLive: world.Resources.Status.Ints.Get(status.KeyParticles),
	}
}

func (s *ParticleSystem) Name() string {
	return "particle"
}

func (s *ParticleSystem) Priority() int {
	return parameter.PriorityParticle
}

func (s *ParticleSystem) Update() {
	store := s.world.Particles
	for i := store.Len() - 1; i >= 0; i-- {
		e, p := store.At(i)

		var alive bool
		if p.Kind == component.ParticleFlash {
			alive = ageFlash(p)
		} else {
			alive = ageSpark(p)
		}
		if !alive {
			s.world.DestroyEntity(e)
			continue
		}

		if h, ok := s.world.Visual(e); ok {
			h.SetPosition(p.Position)
			h.SetScale(p.Scale)
			h.SetOpacity(p.Opacity)
		}
	}
	s.statLive.Store(int64(store.Len()))
}

// ageFlash expands the flash while its opacity decays
func ageFlash(p *component.Particle) bool {
	p.Scale += parameter.FlashScaleStep
	p.Opacity -= parameter.FlashOpacityDecay
	p.Life -= parameter.TickStep
	return p.Opacity > parameter.OpacityEpsilon && p.Life > 0
}

// ageSpark falls under gravity with opacity tracking remaining life
func ageSpark(p *component.Particle) bool {
	physics.Integrate(&p.Position, &p.Velocity, physics.SparkProfile, parameter.TickStep)
	p.Life -= parameter.TickStep
	p.Opacity = max(p.Life, 0)
	return p.Life > 0
}
