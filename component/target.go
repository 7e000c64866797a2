package component

import (
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// Tier classifies target rarity for the score multiplier
type Tier uint8

const (
	TierNormal Tier = iota
	TierSilver
	TierGold
)

func (t Tier) String() string {
	switch t {
	case TierSilver:
		return "silver"
	case TierGold:
		return "gold"
	default:
		return "normal"
	}
}

// TargetShape selects target geometry; cone and torus carry the silver and gold tiers
type TargetShape uint8

const (
	ShapeBox TargetShape = iota
	ShapeSphere
	ShapeCone
	ShapeTorus
	ShapeOctahedron
	ShapeIcosahedron
	ShapeCount
)

// Target is a floating destructible shape
// Position is derived every tick from Base plus the float offset; it is never physically simulated
type Target struct {
	Shape TargetShape
	Tier  Tier
	Color core.RGB

	Base     vmath.Vec3F
	Position vmath.Vec3F
	Rotation vmath.Vec3F
	Spin     vmath.Vec3F

	// Float motion, speed and phase in simulated milliseconds
	FloatSpeed float64
	FloatAmp   float64
	FloatPhase float64
}

// Monolith is a static boundary marker; collision uses a sphere around Position
type Monolith struct {
	Position vmath.Vec3F
	Color    core.RGB
}
