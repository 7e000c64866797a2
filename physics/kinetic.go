// Package physics holds the fixed-step ballistic integrator shared by every moving body
package physics

import (
	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// Profile defines per-tick motion parameters
// Profiles are pre-defined as package variables for zero allocation
type Profile struct {
	Damping float64 // velocity multiplier per tick, 1 = none
	Gravity float64 // subtracted from velocity Y per tick
}

var (
	// ProjectileProfile damps before gravity so gravity is never attenuated on its own tick
	ProjectileProfile = &Profile{Damping: parameter.ProjectileDamping, Gravity: parameter.ProjectileGravity}
	FragmentProfile   = &Profile{Damping: 1, Gravity: parameter.FragmentGravity}
	SparkProfile      = &Profile{Damping: 1, Gravity: parameter.SparkGravity}
)

// Integrate performs one tick: v = v*damping; v.y -= gravity; p = p + v*dt
func Integrate(pos, vel *vmath.Vec3F, profile *Profile, dt float64) {
	if profile.Damping != 1 {
		*vel = vmath.V3FScale(*vel, profile.Damping)
	}
	vel.Y -= profile.Gravity
	*pos = vmath.V3FAdd(*pos, vmath.V3FScale(*vel, dt))
}

// Halt zeroes velocity
func Halt(vel *vmath.Vec3F) {
	*vel = vmath.Vec3F{}
}

// Launch returns the velocity that carries a body from origin toward aim at speed
func Launch(origin, aim vmath.Vec3F, speed float64) vmath.Vec3F {
	return vmath.V3FScale(vmath.V3FNormalize(vmath.V3FSub(aim, origin)), speed)
}
