package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/vmath"
)

func TestFragmentBurstEnergyScalesWithCharge(t *testing.T) {
	maxSpeed := func(charge float64) float64 {
		w := newTestWorld(nil, nil)
		spawnFragments(w, vmath.Vec3F{}, core.RGBWhite, component.WeaponImpact, charge)
		var top float64
		for i := 0; i < w.Fragments.Len(); i++ {
			_, f := w.Fragments.At(i)
			top = math.Max(top, vmath.V3FMag(f.Velocity))
		}
		return top
	}

	// Same seed, same unit samples: doubling the force can only raise every speed
	low, high := maxSpeed(0), maxSpeed(parameter.PowerMax)
	if high <= low {
		t.Errorf("full-charge debris %v not faster than zero-charge %v", high, low)
	}
	if low > parameter.FragmentForceImpact+parameter.FragmentSpeedFloor {
		t.Errorf("zero-charge speed %v above bound", low)
	}
}

func TestFragmentLifecycle(t *testing.T) {
	w := newTestWorld(nil, nil)
	w.AddSystem(NewFragmentSystem(w))

	// Held aloft so only the life timer removes it
	e := w.CreateEntity()
	w.Fragments.Set(e, component.Fragment{
		Position: vmath.Vec3F{Y: 1000},
		Velocity: vmath.Vec3F{Y: 200},
		Life:     parameter.FragmentLifeImpact,
		MaxLife:  parameter.FragmentLifeImpact,
		Opacity:  1,
	})

	// 30 ticks leave 1.02s
	for i := 0; i < 30; i++ {
		tick(w)
	}
	f, ok := w.Fragments.Get(e)
	if !ok {
		t.Fatal("fragment removed early")
	}
	if f.Opacity != 1 {
		t.Errorf("opacity before fade window = %v", f.Opacity)
	}

	for i := 0; i < 20; i++ {
		tick(w)
	}
	f, _ = w.Fragments.Get(e)
	if math.Abs(f.Opacity-f.Life) > 1e-12 {
		t.Errorf("opacity %v should track life %v under 1s", f.Opacity, f.Life)
	}

	for i := 0; i < 60 && w.Fragments.Has(e); i++ {
		tick(w)
	}
	if w.Fragments.Has(e) {
		t.Error("fragment survived its lifetime")
	}
}

func TestFragmentFloorRemoval(t *testing.T) {
	w := newTestWorld(nil, nil)
	w.AddSystem(NewFragmentSystem(w))

	e := w.CreateEntity()
	w.Fragments.Set(e, component.Fragment{
		Position: vmath.Vec3F{Y: -4.99},
		Velocity: vmath.Vec3F{Y: -10},
		Life:     3,
		Opacity:  1,
	})
	tick(w)
	if w.Fragments.Has(e) {
		t.Error("fragment below the floor threshold should be removed")
	}
}

func TestDetonationParticleLifecycle(t *testing.T) {
	w := newTestWorld(nil, nil)
	w.AddSystem(NewParticleSystem(w))
	spawnDetonation(w, vmath.Vec3F{Y: 3})

	flashes := func() int {
		n := 0
		for i := 0; i < w.Particles.Len(); i++ {
			if _, p := w.Particles.At(i); p.Kind == component.ParticleFlash {
				n++
			}
		}
		return n
	}

	if flashes() != 1 || w.Particles.Len() != 1+parameter.SparkCount {
		t.Fatalf("detonation spawned %d particles (%d flash)", w.Particles.Len(), flashes())
	}

	// Flash opacity 0.8 reaches zero after 8 decrements
	for i := 0; i < 8; i++ {
		tick(w)
	}
	if flashes() != 0 {
		t.Error("flash should be gone once opacity reaches zero")
	}
	if w.Particles.Len() != parameter.SparkCount {
		t.Errorf("sparks = %d, want %d", w.Particles.Len(), parameter.SparkCount)
	}

	// Sparks live 0.8s = 50 ticks
	for i := 0; i < 40; i++ {
		tick(w)
	}
	if w.Particles.Len() == 0 {
		t.Fatal("sparks removed before their lifetime")
	}
	for i := 0; i < 5; i++ {
		tick(w)
	}
	if w.Particles.Len() != 0 {
		t.Errorf("%d sparks outlived their lifetime", w.Particles.Len())
	}
}

func TestSparkOpacityTracksLife(t *testing.T) {
	p := component.Particle{Kind: component.ParticleSpark, Life: parameter.SparkLife, Opacity: parameter.SparkLife, Velocity: vmath.Vec3F{Y: 5}}
	for i := 0; i < 10; i++ {
		if !ageSpark(&p) {
			t.Fatal("spark died early")
		}
	}
	if p.Opacity != p.Life {
		t.Errorf("opacity %v != life %v", p.Opacity, p.Life)
	}
	if math.Abs(p.Velocity.Y-(5-10*parameter.SparkGravity)) > 1e-9 {
		t.Errorf("vy = %v", p.Velocity.Y)
	}
}
