package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/physics"
	"github.com/lixenwraith/stress-bomb/status"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// FragmentSystem ages debris back-to-front so removal never skips an entry
type FragmentSystem struct {
	world    *engine.World
	statLive *atomic.Int64
}

func NewFragmentSystem(world *engine.World) *FragmentSystem {
	return &FragmentSystem{
		world:    world,
		statLive: world.Resources.Status.Ints.Get(status.KeyFragments),
	}
}

func (s *FragmentSystem) Name() string {
	return "fragment"
}

func (s *FragmentSystem) Priority() int {
	return parameter.PriorityFragment
}

func (s *FragmentSystem) Update() {
	store := s.world.Fragments
	for i := store.Len() - 1; i >= 0; i-- {
		e, f := store.At(i)

		physics.Integrate(&f.Position, &f.Velocity, physics.FragmentProfile, parameter.TickStep)
		f.Rotation = vmath.V3FAdd(f.Rotation, f.Spin)
		f.Life -= parameter.TickStep
		if f.Life < parameter.FragmentFadeBelow {
			f.Opacity = max(f.Life, 0)
		}

		if f.Life <= 0 || f.Position.Y < parameter.FragmentFloorY {
			s.world.DestroyEntity(e)
			continue
		}

		if h, ok := s.world.Visual(e); ok {
			h.SetPosition(f.Position)
			h.SetRotation(f.Rotation)
			h.SetOpacity(f.Opacity)
		}
	}
	s.statLive.Store(int64(store.Len()))
}
