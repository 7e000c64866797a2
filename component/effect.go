package component

import (
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// Fragment is decorative debris from a destroyed target
type Fragment struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Rotation vmath.Vec3F
	Spin     vmath.Vec3F

	Life    float64
	MaxLife float64
	Opacity float64
	Color   core.RGB
}

// ParticleKind discriminates detonation particles
type ParticleKind uint8

const (
	ParticleFlash ParticleKind = iota
	ParticleSpark
)

// Particle is a flash or spark spawned by an impact-type detonation
// Flash uses Scale and Opacity; spark uses Position, Velocity and Life
type Particle struct {
	Kind ParticleKind

	Position vmath.Vec3F
	Velocity vmath.Vec3F

	Scale   float64
	Life    float64
	Opacity float64
}
