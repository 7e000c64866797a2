package system

import (
	"math"
	"testing"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/engine/mocks"
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/vmath"
)

func newProjectileWorld(audio engine.AudioPlayer) (*engine.World, *ProjectileSystem) {
	w := newTestWorld(nil, audio)
	ps := NewProjectileSystem(w)
	w.AddSystem(ps)
	return w, ps
}

func TestIntegrateDampingBeforeGravity(t *testing.T) {
	p := component.Projectile{
		Kind:     component.WeaponImpact,
		Velocity: vmath.Vec3F{X: 10, Y: 10},
	}
	integrate(&p)

	// (10*0.99, 10*0.99-0.5); gravity-then-damping would give 9.405
	if math.Abs(p.Velocity.X-9.9) > 1e-12 || math.Abs(p.Velocity.Y-9.4) > 1e-12 {
		t.Fatalf("velocity = %+v, want (9.9, 9.4, 0)", p.Velocity)
	}
	if math.Abs(p.Position.X-9.9*0.016) > 1e-12 || math.Abs(p.Position.Y-9.4*0.016) > 1e-12 {
		t.Errorf("position = %+v", p.Position)
	}
	if p.Rotation.X != parameter.ImpactSpinRate || p.Rotation.Y != parameter.ImpactSpinRate {
		t.Errorf("impact spin = %+v", p.Rotation)
	}
}

func TestDartGroundEmbedAndDecay(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioPlayer(ctrl)
	audio.EXPECT().Play(core.SoundThunk).Times(1)

	w, _ := newProjectileWorld(audio)
	e := SpawnProjectile(w, component.WeaponPiercing, vmath.Vec3F{X: 1, Y: 0, Z: -3}, vmath.Vec3F{Y: -60}, 0)

	var p *component.Projectile
	for i := 0; i < 10; i++ {
		tick(w)
		p, _ = w.Projectiles.Get(e)
		if p.Stuck {
			break
		}
	}
	if !p.Stuck {
		t.Fatal("dart never embedded in the ground")
	}
	if p.Position.Y != parameter.FloorY {
		t.Errorf("y = %v, want clamp to %v", p.Position.Y, parameter.FloorY)
	}
	if p.Position.X != 1 || p.Position.Z != -3 {
		t.Errorf("straight-down dart drifted: %+v", p.Position)
	}

	// Stuck-life passes 3.5s on the 219th aging tick (218*0.016 = 3.488)
	for i := 0; i < 218; i++ {
		tick(w)
	}
	if !w.Projectiles.Has(e) {
		t.Fatal("dart removed before stuck-life exceeded 3.5s")
	}
	p, _ = w.Projectiles.Get(e)
	if p.Opacity >= 1 {
		t.Error("dart should be fading past 2.0s")
	}

	tick(w)
	if w.Projectiles.Has(e) {
		t.Fatal("dart should be removed once stuck-life exceeds 3.5s")
	}
}

func TestBombGroundDetonation(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioPlayer(ctrl)
	audio.EXPECT().Play(core.SoundExplode).Times(1)

	w, _ := newProjectileWorld(audio)
	SpawnProjectile(w, component.WeaponImpact, vmath.Vec3F{Y: -1.99, Z: -3}, vmath.Vec3F{Y: -10}, 0)
	tick(w)

	if w.Projectiles.Len() != 0 {
		t.Fatal("bomb should be consumed by the ground")
	}
	if w.Particles.Len() != 1+parameter.SparkCount {
		t.Errorf("particles = %d, want flash + %d sparks", w.Particles.Len(), parameter.SparkCount)
	}
	if w.Fragments.Len() != 0 {
		t.Error("ground detonation should not spawn target debris")
	}
	if got := w.Resources.Camera.Shake; got != parameter.ShakeImpactDetonation {
		t.Errorf("shake = %v, want %v", got, parameter.ShakeImpactDetonation)
	}
}

func TestBoundaryTakesPriorityOverTarget(t *testing.T) {
	w, _ := newProjectileWorld(nil)
	pos := vmath.Vec3F{X: 30, Y: 2, Z: -20}

	SpawnMonolith(w, vmath.Vec3F{X: 32, Y: 2, Z: -20}, core.Hex(0xAA8855))
	target := PlaceTarget(w, component.Target{Tier: component.TierGold, Position: pos, Base: pos})

	hit, _ := Detect(w, pos)
	if hit != CollisionBoundary {
		t.Fatalf("Detect = %v, want boundary", hit)
	}

	e := SpawnProjectile(w, component.WeaponPiercing, pos, vmath.Vec3F{}, 0)
	p, _ := w.Projectiles.Get(e)
	p.Velocity = vmath.Vec3F{Y: 0.5 / 0.99} // cancels gravity for one step
	tick(w)

	if !w.Targets.Has(target) {
		t.Fatal("target destroyed despite boundary hit")
	}
	if w.Resources.Score.Points != 0 {
		t.Errorf("score = %d, want 0", w.Resources.Score.Points)
	}
	p, ok := w.Projectiles.Get(e)
	if !ok || !p.Stuck {
		t.Fatal("dart should embed in the boundary marker")
	}
}

func TestGoldTargetHitScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioPlayer(ctrl)
	audio.EXPECT().Play(core.SoundExplode).Times(1)

	w, _ := newProjectileWorld(audio)
	cam := w.Resources.Camera
	pos := vmath.Vec3F{X: 0, Y: 4, Z: cam.Position.Z - 40}
	target := PlaceTarget(w, component.Target{
		Shape:    component.ShapeTorus,
		Tier:     component.TierGold,
		Color:    parameter.ColorGold,
		Position: pos,
		Base:     pos,
	})

	// Start just in front of the target; one step lands inside the 1.2 radius
	start := vmath.Vec3F{X: pos.X, Y: pos.Y + 0.5*0.016, Z: pos.Z + 0.5}
	SpawnProjectile(w, component.WeaponImpact, start, vmath.Vec3F{Z: -10 / 0.99}, parameter.PowerMax)
	tick(w)

	if w.Resources.Score.Points != 32 {
		t.Fatalf("score = %d, want 32", w.Resources.Score.Points)
	}
	if w.Targets.Has(target) {
		t.Error("target should be removed on hit")
	}
	if w.Projectiles.Len() != 0 {
		t.Error("bomb should be consumed by the target")
	}
	if w.Fragments.Len() != parameter.FragmentCountImpact {
		t.Errorf("fragments = %d, want %d", w.Fragments.Len(), parameter.FragmentCountImpact)
	}
	_, f := w.Fragments.At(0)
	if f.Color != parameter.ColorGold || f.MaxLife != parameter.FragmentLifeImpact {
		t.Errorf("fragment = %+v", f)
	}
	if w.Scheduler.Pending() != 1 {
		t.Fatalf("pending respawns = %d, want 1", w.Scheduler.Pending())
	}
	at, _ := w.Scheduler.NextAt()
	if math.Abs(at-(w.Resources.Clock.Now+parameter.TargetRespawnDelay)) > 1e-9 {
		t.Errorf("respawn at %v, want now+%v", at, parameter.TargetRespawnDelay)
	}
	if cam.Shake != parameter.ShakeImpactTargetHit {
		t.Errorf("shake = %v, want %v", cam.Shake, parameter.ShakeImpactTargetHit)
	}
}

func TestBombTargetHitDetonatesAtTarget(t *testing.T) {
	w, _ := newProjectileWorld(nil)
	pos := vmath.Vec3F{Y: 4, Z: -5}
	PlaceTarget(w, component.Target{Position: pos, Base: pos})

	// Lands 1 unit right of the target centre, inside the hit radius
	SpawnProjectile(w, component.WeaponImpact, vmath.Vec3F{X: 1, Y: pos.Y + 0.008, Z: pos.Z}, vmath.Vec3F{}, 0)
	tick(w)

	if w.Targets.Len() != 0 {
		t.Fatal("target should be destroyed")
	}
	if w.Particles.Len() != 1+parameter.SparkCount {
		t.Fatalf("particles = %d, want flash + %d sparks", w.Particles.Len(), parameter.SparkCount)
	}
	for i := 0; i < w.Particles.Len(); i++ {
		_, pt := w.Particles.At(i)
		if pt.Kind != component.ParticleFlash {
			continue
		}
		if math.Abs(pt.Position.X-pos.X) > 1e-9 || math.Abs(pt.Position.Z-pos.Z) > 1e-9 {
			t.Errorf("flash at %+v, want target position %+v", pt.Position, pos)
		}
		return
	}
	t.Fatal("no flash spawned")
}

func TestInFlightOverchargeGlow(t *testing.T) {
	tests := []struct {
		name   string
		charge float64
		calls  int // SetEmissive calls over spawn plus one tick
		want   float64
	}{
		{"full charge glows", parameter.PowerMax, 2, 2.5},
		{"threshold stays dark", parameter.OverchargeThreshold, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			renderer := mocks.NewMockRenderer(ctrl)
			h := mocks.NewMockHandle(ctrl)

			renderer.EXPECT().Spawn(gomock.Any()).Return(h)
			h.EXPECT().SetPosition(gomock.Any()).AnyTimes()
			h.EXPECT().SetRotation(gomock.Any()).AnyTimes()
			h.EXPECT().SetEmissive(tt.want).Times(tt.calls)

			w := newTestWorld(renderer, nil)
			w.AddSystem(NewProjectileSystem(w))
			SpawnProjectile(w, component.WeaponImpact, vmath.Vec3F{Y: 5, Z: 5}, vmath.Vec3F{Z: -10}, tt.charge)
			tick(w)

			if w.Projectiles.Len() != 1 {
				t.Fatalf("projectiles = %d, want 1 still in flight", w.Projectiles.Len())
			}
		})
	}
}

func TestDartTargetHitFragments(t *testing.T) {
	w, _ := newProjectileWorld(nil)
	pos := vmath.Vec3F{Y: 4, Z: -5}
	PlaceTarget(w, component.Target{Shape: component.ShapeCone, Tier: component.TierSilver, Position: pos, Base: pos})

	SpawnProjectile(w, component.WeaponPiercing, vmath.Vec3F{Y: pos.Y + 0.008, Z: pos.Z + 0.1}, vmath.Vec3F{}, 0)
	tick(w)

	if w.Fragments.Len() != parameter.FragmentCountPiercing {
		t.Errorf("fragments = %d, want %d", w.Fragments.Len(), parameter.FragmentCountPiercing)
	}
	if w.Particles.Len() != 0 {
		t.Error("dart hits must not detonate")
	}
	if w.Projectiles.Len() != 0 {
		t.Error("dart should be consumed by the target")
	}
	// |(-5) - 15| = 20 -> 4 points, silver 1.5 -> 6
	if w.Resources.Score.Points != 6 {
		t.Errorf("score = %d, want 6", w.Resources.Score.Points)
	}
}

func TestFragmentTintReadsRendererColor(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	targetHandle := mocks.NewMockHandle(ctrl)
	other := mocks.NewMockHandle(ctrl)

	tint := core.Hex(0x123456)
	pos := vmath.Vec3F{Y: 4, Z: -5}

	gomock.InOrder(
		renderer.EXPECT().Spawn(gomock.Any()).Return(targetHandle),
		renderer.EXPECT().Spawn(gomock.Any()).Return(other).AnyTimes(),
	)
	targetHandle.EXPECT().Color().Return(tint)
	targetHandle.EXPECT().Remove()
	other.EXPECT().SetPosition(gomock.Any()).AnyTimes()
	other.EXPECT().SetRotation(gomock.Any()).AnyTimes()
	other.EXPECT().SetEmissive(gomock.Any()).AnyTimes()
	other.EXPECT().Remove().AnyTimes()

	w := newTestWorld(renderer, nil)
	w.AddSystem(NewProjectileSystem(w))
	PlaceTarget(w, component.Target{Position: pos, Base: pos, Color: core.Hex(0xFF0000)})
	SpawnProjectile(w, component.WeaponPiercing, vmath.Vec3F{Y: pos.Y + 0.008, Z: pos.Z + 0.1}, vmath.Vec3F{}, 0)
	tick(w)

	for i := 0; i < w.Fragments.Len(); i++ {
		if _, f := w.Fragments.At(i); f.Color != tint {
			t.Fatalf("fragment color %v, want renderer color %v", f.Color, tint)
		}
	}
}

func TestStuckProjectileNeverMoves(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w, _ := newProjectileWorld(nil)
		vel := vmath.Vec3F{
			X: rapid.Float64Range(-20, 20).Draw(rt, "vx"),
			Y: rapid.Float64Range(-60, 5).Draw(rt, "vy"),
			Z: rapid.Float64Range(-40, 0).Draw(rt, "vz"),
		}
		e := SpawnProjectile(w, component.WeaponPiercing, vmath.Vec3F{Y: 2, Z: 5}, vel, 0)

		var stuckAt *vmath.Vec3F
		for i := 0; i < 600; i++ {
			tick(w)
			p, ok := w.Projectiles.Get(e)
			if !ok {
				break
			}
			if p.Stuck {
				if stuckAt == nil {
					pos := p.Position
					stuckAt = &pos
					continue
				}
				if p.Position != *stuckAt {
					rt.Fatalf("stuck dart moved from %+v to %+v", *stuckAt, p.Position)
				}
				if p.Velocity != (vmath.Vec3F{}) {
					rt.Fatalf("stuck dart has velocity %+v", p.Velocity)
				}
			}
		}
		if stuckAt == nil {
			rt.Fatalf("dart with velocity %+v never landed", vel)
		}
		if w.Projectiles.Has(e) {
			rt.Fatal("stuck dart never removed")
		}
	})
}
