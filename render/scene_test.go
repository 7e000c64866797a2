package render

import (
	"testing"

	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/vmath"
)

func TestSceneSpawnAndUpdate(t *testing.T) {
	s := NewScene()
	red := core.Hex(0xFF0000)
	h := s.Spawn(engine.Visual{
		Geometry: engine.GeometrySphere,
		Color:    red,
		Size:     1,
		Opacity:  1,
		Scale:    1,
	})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if h.Color() != red {
		t.Errorf("Color() = %v, want %v", h.Color(), red)
	}

	h.SetPosition(vmath.Vec3F{X: 1, Y: 2, Z: 3})
	h.SetRotation(vmath.Vec3F{Z: 0.5})
	h.SetScale(0.25)
	h.SetOpacity(0.5)
	h.SetEmissive(1.5)

	id := h.(*handle).ID()
	n, ok := s.Node(id)
	if !ok {
		t.Fatal("Node not found")
	}
	if n.Position != (vmath.Vec3F{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Position = %v", n.Position)
	}
	if n.Rotation.Z != 0.5 || n.Scale != 0.25 || n.Opacity != 0.5 || n.Emissive != 1.5 {
		t.Errorf("Node = %+v", n)
	}
}

func TestSceneRemove(t *testing.T) {
	s := NewScene()
	a := s.Spawn(engine.Visual{Geometry: engine.GeometryBox})
	b := s.Spawn(engine.Visual{Geometry: engine.GeometryCone})

	a.Remove()
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	// Writes after removal are dropped without resurrecting the node
	a.SetPosition(vmath.Vec3F{X: 9})
	a.Remove()
	if s.Len() != 1 {
		t.Errorf("Len() after stale writes = %d, want 1", s.Len())
	}

	nodes := s.Nodes()
	if len(nodes) != 1 || nodes[0].Geometry != engine.GeometryCone {
		t.Errorf("Nodes() = %+v", nodes)
	}
	b.Remove()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestSceneNodesOrdered(t *testing.T) {
	s := NewScene()
	for i := 0; i < 5; i++ {
		s.Spawn(engine.Visual{Geometry: engine.GeometrySpark})
	}
	nodes := s.Nodes()
	for i := 1; i < len(nodes); i++ {
		if nodes[i].ID <= nodes[i-1].ID {
			t.Fatalf("Nodes() not ordered by id: %d after %d", nodes[i].ID, nodes[i-1].ID)
		}
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24}
	if vp.Top() != 1 || vp.Rows() != 22 {
		t.Fatalf("Top/Rows = %d/%d", vp.Top(), vp.Rows())
	}
	want := 80.0 / (22.0 * 2.0)
	if vp.Aspect() != want {
		t.Errorf("Aspect() = %f, want %f", vp.Aspect(), want)
	}

	x, y := vp.ToNDC(40, 12)
	col, row := vp.FromNDC(x, y)
	if col != 40.5 || row != 12.5 {
		t.Errorf("round trip = (%f, %f), want cell center (40.5, 12.5)", col, row)
	}

	x, y = vp.ToNDC(0, vp.Top())
	if x >= -0.9 || y <= 0.9 {
		t.Errorf("top-left NDC = (%f, %f)", x, y)
	}
	if (Viewport{}).Aspect() != 1 {
		t.Error("empty viewport aspect should be 1")
	}
}
