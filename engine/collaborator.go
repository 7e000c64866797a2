package engine

//go:generate go tool mockgen -destination=mocks/mock_collaborator.go -package=mocks . Renderer,Handle,AudioPlayer

import (
	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// Geometry is the shape class requested from the renderer
type Geometry uint8

const (
	GeometryBomb Geometry = iota
	GeometryDart
	GeometryBox
	GeometrySphere
	GeometryCone
	GeometryTorus
	GeometryOctahedron
	GeometryIcosahedron
	GeometryMonolith
	GeometryFragment
	GeometryFlash
	GeometrySpark
	GeometryCount
)

var geometryNames = [GeometryCount]string{
	"bomb", "dart", "box", "sphere", "cone", "torus",
	"octahedron", "icosahedron", "monolith", "fragment", "flash", "spark",
}

func (g Geometry) String() string {
	if g < GeometryCount {
		return geometryNames[g]
	}
	return "unknown"
}

// Visual is an entity creation request: geometry, material and initial transform
type Visual struct {
	Geometry Geometry
	Color    core.RGB
	Size     float64
	Opacity  float64
	Scale    float64
	Position vmath.Vec3F
	Rotation vmath.Vec3F
}

// Handle is the opaque renderer-side node of one entity
type Handle interface {
	SetPosition(pos vmath.Vec3F)
	SetRotation(rot vmath.Vec3F)
	SetScale(scale float64)
	SetOpacity(opacity float64)
	// SetEmissive sets overcharge glow intensity, 0 disables
	SetEmissive(intensity float64)
	// Color returns the material color, read back for fragment tint
	Color() core.RGB
	Remove()
}

// Renderer creates visible nodes
type Renderer interface {
	Spawn(v Visual) Handle
}

// AudioPlayer plays a named cue; fire-and-forget
type AudioPlayer interface {
	Play(sound core.SoundType)
}

// HUD is the per-tick snapshot read by the UI collaborator
type HUD struct {
	Score       int
	Holding     bool
	Reloading   bool
	ChargeRatio float64
	Weapon      component.WeaponKind
	// Overcharge is the current emissive intensity of the held weapon
	Overcharge float64
}

// NopRenderer discards visuals; handles keep their color for read-back
type NopRenderer struct{}

func (NopRenderer) Spawn(v Visual) Handle {
	return nopHandle{color: v.Color}
}

type nopHandle struct {
	color core.RGB
}

func (nopHandle) SetPosition(vmath.Vec3F) {}
func (nopHandle) SetRotation(vmath.Vec3F) {}
func (nopHandle) SetScale(float64)        {}
func (nopHandle) SetOpacity(float64)      {}
func (nopHandle) SetEmissive(float64)     {}
func (h nopHandle) Color() core.RGB       { return h.color }
func (nopHandle) Remove()                 {}

// NopAudio drops every cue
type NopAudio struct{}

func (NopAudio) Play(core.SoundType) {}
