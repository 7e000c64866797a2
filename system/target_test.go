package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/event"
	"github.com/lixenwraith/stress-bomb/parameter"
)

func TestSpawnTargetRanges(t *testing.T) {
	w := newTestWorld(nil, nil)
	ts := NewTargetSystem(w)

	seen := make(map[component.TargetShape]bool)
	for i := 0; i < 300; i++ {
		e := ts.SpawnTarget()
		tg, ok := w.Targets.Get(e)
		if !ok {
			t.Fatal("spawned target missing from store")
		}
		seen[tg.Shape] = true

		b := tg.Base
		if math.Abs(b.X) > parameter.TargetSpawnSpanX/2 {
			t.Errorf("x %v outside spawn span", b.X)
		}
		if b.Y < parameter.TargetSpawnMinY || b.Y >= parameter.TargetSpawnMinY+parameter.TargetSpawnSpanY {
			t.Errorf("y %v outside spawn span", b.Y)
		}
		if b.Z < -20 || b.Z > 0 {
			t.Errorf("z %v outside spawn span", b.Z)
		}

		switch tg.Shape {
		case component.ShapeCone:
			if tg.Tier != component.TierSilver || tg.Color != parameter.ColorSilver {
				t.Errorf("cone should be silver: %+v", tg)
			}
		case component.ShapeTorus:
			if tg.Tier != component.TierGold || tg.Color != parameter.ColorGold {
				t.Errorf("torus should be gold: %+v", tg)
			}
		default:
			if tg.Tier != component.TierNormal {
				t.Errorf("shape %v should be normal tier", tg.Shape)
			}
		}
	}
	if len(seen) != int(component.ShapeCount) {
		t.Errorf("saw %d shapes, want %d", len(seen), component.ShapeCount)
	}
}

func TestTargetFloatMotion(t *testing.T) {
	w := newTestWorld(nil, nil)
	ts := NewTargetSystem(w)
	w.AddSystem(ts)
	e := ts.SpawnTarget()

	for i := 0; i < 200; i++ {
		tick(w)
		tg, _ := w.Targets.Get(e)
		if tg.Position.X != tg.Base.X || tg.Position.Z != tg.Base.Z {
			t.Fatal("float motion must only move vertically")
		}
		if math.Abs(tg.Position.Y-tg.Base.Y) > tg.FloatAmp+1e-9 {
			t.Fatalf("offset %v exceeds amplitude %v", tg.Position.Y-tg.Base.Y, tg.FloatAmp)
		}
	}
}

func TestSpawnRequestAppendsTarget(t *testing.T) {
	w := newTestWorld(nil, nil)
	ts := NewTargetSystem(w)
	w.AddSystem(ts)

	for i := 0; i < 3; i++ {
		ts.SpawnTarget()
	}
	// Reorder the pool before the request lands
	w.DestroyEntity(w.Targets.Entities()[0])

	w.Scheduler.Schedule(w.Resources.Clock.Now+parameter.TargetRespawnDelay, event.GameEvent{Type: event.EventTargetSpawnRequest})
	for i := 0; i < 49; i++ {
		tick(w)
	}
	if w.Targets.Len() != 2 {
		t.Fatalf("respawn fired before delay, %d targets", w.Targets.Len())
	}
	for i := 0; i < 2; i++ {
		tick(w)
	}
	if w.Targets.Len() != 3 {
		t.Errorf("targets = %d, want 3 after respawn", w.Targets.Len())
	}
}
