package render

import (
	"sort"
	"sync"

	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/engine"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// Node is a snapshot of one scene node
type Node struct {
	ID       uint64
	Geometry engine.Geometry
	Color    core.RGB
	Size     float64
	Opacity  float64
	Scale    float64
	Emissive float64
	Position vmath.Vec3F
	Rotation vmath.Vec3F
}

// Scene is the retained node graph behind engine.Renderer
// Handles write through to the scene under its lock; Nodes copies out for drawing
type Scene struct {
	mu     sync.Mutex
	nodes  map[uint64]*Node
	nextID uint64
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{nodes: make(map[uint64]*Node)}
}

// Spawn implements engine.Renderer
func (s *Scene) Spawn(v engine.Visual) engine.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	n := &Node{
		ID:       s.nextID,
		Geometry: v.Geometry,
		Color:    v.Color,
		Size:     v.Size,
		Opacity:  v.Opacity,
		Scale:    v.Scale,
		Position: v.Position,
		Rotation: v.Rotation,
	}
	s.nodes[n.ID] = n
	return &handle{scene: s, id: n.ID, color: v.Color}
}

// Len returns the live node count
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.nodes)
}

// Nodes returns a copy of every live node ordered by id
func (s *Scene) Nodes() []Node {
	s.mu.Lock()
	out := make([]Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, *n)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Node returns one node by id
func (s *Scene) Node(id uint64) (Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

func (s *Scene) update(id uint64, fn func(n *Node)) {
	s.mu.Lock()
	if n, ok := s.nodes[id]; ok {
		fn(n)
	}
	s.mu.Unlock()
}

func (s *Scene) remove(id uint64) {
	s.mu.Lock()
	delete(s.nodes, id)
	s.mu.Unlock()
}

// handle is a scene node reference; writes after Remove are dropped
type handle struct {
	scene *Scene
	id    uint64
	color core.RGB
}

func (h *handle) SetPosition(pos vmath.Vec3F) {
	h.scene.update(h.id, func(n *Node) { n.Position = pos })
}

func (h *handle) SetRotation(rot vmath.Vec3F) {
	h.scene.update(h.id, func(n *Node) { n.Rotation = rot })
}

func (h *handle) SetScale(scale float64) {
	h.scene.update(h.id, func(n *Node) { n.Scale = scale })
}

func (h *handle) SetOpacity(opacity float64) {
	h.scene.update(h.id, func(n *Node) { n.Opacity = opacity })
}

func (h *handle) SetEmissive(intensity float64) {
	h.scene.update(h.id, func(n *Node) { n.Emissive = intensity })
}

func (h *handle) Color() core.RGB { return h.color }

func (h *handle) Remove() { h.scene.remove(h.id) }

// ID returns the scene node id
func (h *handle) ID() uint64 { return h.id }
