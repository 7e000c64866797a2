package component

import "github.com/lixenwraith/stress-bomb/vmath"

// Projectile is a launched bomb or dart owned by the projectile system
// Velocity integration stops once Stuck is set
type Projectile struct {
	Kind WeaponKind

	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Rotation vmath.Vec3F

	// ChargeLevel is captured at release and never changes
	ChargeLevel float64

	Stuck bool
	// StuckLife is seconds since embedding, only advanced while Stuck
	StuckLife float64
	Opacity   float64
}
