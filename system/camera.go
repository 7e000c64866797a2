package system

import (
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/event"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/status"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// CameraSystem eases the dolly toward the charge pose and applies shake
type CameraSystem struct {
	world  *engine.World
	camera *engine.CameraResource
	rng    *vmath.FastRand

	statShake *status.AtomicFloat
}

func NewCameraSystem(world *engine.World) *CameraSystem {
	return &CameraSystem{
		world:     world,
		camera:    world.Resources.Camera,
		rng:       world.Resources.Rand,
		statShake: world.Resources.Status.Floats.Get(status.KeyShake),
	}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventResize}
}

func (s *CameraSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.ResizePayload); ok && p.Aspect > 0 {
		s.camera.Aspect = p.Aspect
	}
}

func (s *CameraSystem) Update() {
	c := s.camera

	targetZ := parameter.CameraRestZ
	if s.world.Resources.Charge.Holding {
		targetZ = parameter.CameraHoldZ
	}
	c.Position.Z = vmath.Lerp(c.Position.Z, targetZ, parameter.CameraEase)

	if c.Shake > 0 {
		c.Position.X = c.Base.X + s.rng.Centered(c.Shake)
		c.Position.Y = c.Base.Y + s.rng.Centered(c.Shake)
		s.statShake.Peak(c.Shake)
		c.DecayShake()
	} else {
		c.Position.X = vmath.Lerp(c.Position.X, c.Base.X, parameter.CameraEase)
		c.Position.Y = vmath.Lerp(c.Position.Y, c.Base.Y, parameter.CameraEase)
	}
}
