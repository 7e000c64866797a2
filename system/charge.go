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

// OverchargeIntensity maps power to emissive intensity
// Zero at or below the threshold, linear up to OverchargeIntensityMax at PowerMax
func OverchargeIntensity(power float64) float64 {
	if power <= parameter.OverchargeThreshold {
		return 0
	}
	excess := (power - parameter.OverchargeThreshold) / (parameter.PowerMax - parameter.OverchargeThreshold)
	return math.Min(excess, 1) * parameter.OverchargeIntensityMax
}

// LaunchSpeed is base + ratio^2 * range, scaled per weapon kind
func LaunchSpeed(power float64, kind component.WeaponKind) float64 {
	ratio := power / parameter.PowerMax
	speed := parameter.LaunchSpeedBase + ratio*ratio*parameter.LaunchSpeedRange
	if kind == component.WeaponPiercing {
		return speed * parameter.SpeedMultiplierPiercing
	}
	return speed * parameter.SpeedMultiplierImpact
}

// ChargeSystem runs the idle / charging / reloading state machine and fires projectiles
type ChargeSystem struct {
	world  *engine.World
	charge *component.ChargeState
	camera *engine.CameraResource
	rng    *vmath.FastRand

	statShots *atomic.Int64
}

func NewChargeSystem(world *engine.World) *ChargeSystem {
	return &ChargeSystem{
		world:     world,
		charge:    world.Resources.Charge,
		camera:    world.Resources.Camera,
		rng:       world.Resources.Rand,
		statShots: world.Resources.Status.Ints.Get(status.KeyShots),
	}
}

func (s *ChargeSystem) Name() string {
	return "charge"
}

func (s *ChargeSystem) Priority() int {
	return parameter.PriorityCharge
}

func (s *ChargeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTriggerDown,
		event.EventTriggerUp,
		event.EventPointerMove,
		event.EventWeaponSwitch,
	}
}

func (s *ChargeSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventTriggerDown:
		if p, ok := ev.Payload.(*event.PointerPayload); ok {
			s.setPointer(p)
		}
		s.beginCharge()
	case event.EventTriggerUp:
		s.release()
	case event.EventPointerMove:
		if p, ok := ev.Payload.(*event.PointerPayload); ok {
			s.setPointer(p)
		}
	case event.EventWeaponSwitch:
		if p, ok := ev.Payload.(*event.WeaponSwitchPayload); ok {
			s.switchWeapon(p.Kind)
		}
	}
}

func (s *ChargeSystem) setPointer(p *event.PointerPayload) {
	s.charge.Pointer = vmath.Vec3F{X: p.X, Y: p.Y}
}

// beginCharge enters Charging from Idle; ignored while reloading or without a weapon
func (s *ChargeSystem) beginCharge() {
	cs := s.charge
	if cs.Holding || !cs.CanCharge() {
		return
	}
	cs.Holding = true
	cs.Power = 0
}

// release fires the held weapon; a release without an active charge is a no-op
func (s *ChargeSystem) release() {
	cs := s.charge
	if !cs.Holding {
		return
	}
	cs.Holding = false
	s.fire()
}

// switchWeapon is honored only while idle; it drops the preview and forces the shorter reload
func (s *ChargeSystem) switchWeapon(kind component.WeaponKind) bool {
	cs := s.charge
	if kind == cs.Kind || cs.Holding || cs.Reloading {
		return false
	}
	cs.Kind = kind
	s.dropIdle()
	s.startReload(parameter.SwitchReloadDuration)
	return true
}

func (s *ChargeSystem) fire() {
	cs := s.charge

	origin := s.camera.ChargeAnchor()
	aim := s.camera.AimPoint(cs.Pointer.X, cs.Pointer.Y)
	velocity := physics.Launch(origin, aim, LaunchSpeed(cs.Power, cs.Kind))

	SpawnProjectile(s.world, cs.Kind, origin, velocity, cs.Power)

	s.dropIdle()
	cs.Power = 0
	s.startReload(parameter.ReloadDuration)
	s.statShots.Add(1)

	s.world.Play(core.SoundLaunch)
	s.world.Play(core.SoundThrow)
}

func (s *ChargeSystem) startReload(threshold float64) {
	s.charge.Reloading = true
	s.charge.ReloadTimer = 0
	s.charge.ReloadThreshold = threshold
}

func (s *ChargeSystem) dropIdle() {
	if s.charge.Idle != 0 {
		s.world.DestroyEntity(s.charge.Idle)
		s.charge.Idle = 0
	}
}

// SpawnIdle materializes the preview weapon at scale 0 for the intro animation
// No-op if one already exists
func (s *ChargeSystem) SpawnIdle() core.Entity {
	cs := s.charge
	if cs.Idle != 0 {
		return cs.Idle
	}

	anchor := s.camera.ChargeAnchor()
	e := s.world.CreateEntity()
	s.world.IdleWeapons.Set(e, component.IdleWeapon{
		Kind:     cs.Kind,
		Position: anchor,
	})
	s.world.Attach(e, weaponVisual(cs.Kind, anchor, 0))
	cs.Idle = e
	return e
}

func (s *ChargeSystem) Update() {
	cs := s.charge

	if cs.Reloading {
		cs.ReloadTimer += parameter.TickStep
		if cs.ReloadTimer > cs.ReloadThreshold {
			cs.Reloading = false
			cs.ReloadTimer = 0
			s.SpawnIdle()
			s.world.Play(core.SoundReload)
		}
	}

	if cs.Holding && !cs.Reloading {
		cs.Power = math.Min(cs.Power+parameter.PowerStep, parameter.PowerMax)
	}

	s.animateIdle()
}

func (s *ChargeSystem) animateIdle() {
	cs := s.charge
	if cs.Idle == 0 {
		return
	}
	iw, ok := s.world.IdleWeapons.Get(cs.Idle)
	if !ok {
		return
	}

	if iw.Scale < 1 {
		iw.Scale = math.Min(1, iw.Scale+parameter.IdleScaleStep)
		iw.Rotation.Z += parameter.IdleIntroSpin * (1 - iw.Scale)
	}

	anchor := s.camera.ChargeAnchor()
	if cs.Holding {
		jitter := cs.Ratio() * parameter.ChargeJitter
		iw.Position = vmath.Vec3F{
			X: anchor.X + s.rng.Centered(jitter),
			Y: anchor.Y + s.rng.Centered(jitter),
			Z: anchor.Z,
		}
	} else {
		iw.Bob += math.Sin(s.world.Resources.Clock.Millis()*parameter.IdleBobRate) * parameter.IdleBobAmplitude
		iw.Position = vmath.Vec3F{X: anchor.X, Y: anchor.Y + iw.Bob, Z: anchor.Z}
	}

	if iw.Kind == component.WeaponPiercing {
		facing := vmath.LookAt(iw.Position, s.camera.AimPoint(cs.Pointer.X, cs.Pointer.Y))
		iw.Rotation.X, iw.Rotation.Y = facing.X, facing.Y
	}

	h, ok := s.world.Visual(cs.Idle)
	if !ok {
		return
	}
	h.SetPosition(iw.Position)
	h.SetRotation(iw.Rotation)
	h.SetScale(iw.Scale)
	if cs.Holding {
		h.SetEmissive(OverchargeIntensity(cs.Power))
	} else {
		h.SetEmissive(0)
	}
}
