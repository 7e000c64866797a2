package system

import (
	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/vmath"
)

func weaponVisual(kind component.WeaponKind, pos vmath.Vec3F, scale float64) engine.Visual {
	v := engine.Visual{
		Geometry: engine.GeometryBomb,
		Color:    parameter.ColorBomb,
		Size:     0.5,
		Opacity:  1,
		Scale:    scale,
		Position: pos,
	}
	if kind == component.WeaponPiercing {
		v.Geometry = engine.GeometryDart
		v.Color = parameter.ColorDart
		v.Size = 0.8
	}
	return v
}

// SpawnProjectile creates a live projectile at origin
func SpawnProjectile(w *engine.World, kind component.WeaponKind, origin, velocity vmath.Vec3F, chargeLevel float64) core.Entity {
	p := component.Projectile{
		Kind:        kind,
		Position:    origin,
		Velocity:    velocity,
		ChargeLevel: chargeLevel,
		Opacity:     1,
	}
	if kind == component.WeaponPiercing {
		p.Rotation = vmath.LookRotation(velocity)
	}

	e := w.CreateEntity()
	w.Projectiles.Set(e, p)
	v := weaponVisual(kind, origin, 1)
	v.Rotation = p.Rotation
	if h := w.Attach(e, v); h != nil {
		h.SetEmissive(OverchargeIntensity(chargeLevel))
	}
	return e
}

// SpawnMonolith places one static boundary marker
func SpawnMonolith(w *engine.World, pos vmath.Vec3F, color core.RGB) core.Entity {
	e := w.CreateEntity()
	w.Monoliths.Set(e, component.Monolith{Position: pos, Color: color})
	w.Attach(e, engine.Visual{
		Geometry: engine.GeometryMonolith,
		Color:    color,
		Size:     parameter.BoundaryRadius,
		Opacity:  1,
		Scale:    1,
		Position: pos,
	})
	return e
}

// spawnFragments bursts debris from a destroyed target, more energetic at higher charge
func spawnFragments(w *engine.World, origin vmath.Vec3F, color core.RGB, kind component.WeaponKind, chargeLevel float64) {
	count := parameter.FragmentCountImpact
	life := parameter.FragmentLifeImpact
	force := parameter.FragmentForceImpact
	if kind == component.WeaponPiercing {
		count = parameter.FragmentCountPiercing
		life = parameter.FragmentLifePiercing
		force = parameter.FragmentForcePiercing
	}
	force *= 1 + chargeLevel/parameter.PowerMax

	rng := w.Resources.Rand
	for i := 0; i < count; i++ {
		speed := rng.Float64()*force + parameter.FragmentSpeedFloor
		f := component.Fragment{
			Position: origin,
			Velocity: vmath.V3FScale(rng.UnitVec3(), speed),
			Spin: vmath.Vec3F{
				X: rng.Float64() * parameter.FragmentSpinScale,
				Y: rng.Float64() * parameter.FragmentSpinScale,
				Z: rng.Float64() * parameter.FragmentSpinScale,
			},
			Life:    life,
			MaxLife: life,
			Opacity: 1,
			Color:   color,
		}

		e := w.CreateEntity()
		w.Fragments.Set(e, f)
		w.Attach(e, engine.Visual{
			Geometry: engine.GeometryFragment,
			Color:    color,
			Size:     rng.Float64()*parameter.FragmentSizeSpan + parameter.FragmentSizeMin,
			Opacity:  1,
			Scale:    1,
			Position: origin,
		})
	}
}

// spawnDetonation emits one flash and a ring of sparks
func spawnDetonation(w *engine.World, origin vmath.Vec3F) {
	flash := w.CreateEntity()
	w.Particles.Set(flash, component.Particle{
		Kind:     component.ParticleFlash,
		Position: origin,
		Scale:    1,
		Life:     parameter.FlashLife,
		Opacity:  parameter.FlashOpacity,
	})
	w.Attach(flash, engine.Visual{
		Geometry: engine.GeometryFlash,
		Color:    parameter.ColorFlash,
		Size:     parameter.FlashRadius,
		Opacity:  parameter.FlashOpacity,
		Scale:    1,
		Position: origin,
	})

	rng := w.Resources.Rand
	for i := 0; i < parameter.SparkCount; i++ {
		spark := component.Particle{
			Kind:     component.ParticleSpark,
			Position: origin,
			Velocity: vmath.Vec3F{
				X: rng.Centered(parameter.SparkSpeed),
				Y: rng.Float64() * parameter.SparkSpeed,
				Z: rng.Centered(parameter.SparkSpeed),
			},
			Scale:   1,
			Life:    parameter.SparkLife,
			Opacity: parameter.SparkLife,
		}

		e := w.CreateEntity()
		w.Particles.Set(e, spark)
		w.Attach(e, engine.Visual{
			Geometry: engine.GeometrySpark,
			Color:    parameter.ColorSpark,
			Size:     rng.Float64()*parameter.SparkSizeSpan + parameter.SparkSizeMin,
			Opacity:  spark.Opacity,
			Scale:    1,
			Position: origin,
		})
	}
}
