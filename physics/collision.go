package physics

import "github.com/lixenwraith/stress-bomb/vmath"

// Sphere is a spherical collision volume
type Sphere struct {
	Center vmath.Vec3F
	Radius float64
}

// Contains reports strict containment: points on the surface are outside
func (s Sphere) Contains(p vmath.Vec3F) bool {
	return vmath.V3FWithin(p, s.Center, s.Radius)
}

// BelowPlane reports whether p is at or below a horizontal plane
func BelowPlane(p vmath.Vec3F, y float64) bool {
	return p.Y <= y
}

// ClampToPlane lifts p onto a horizontal plane if it sank below it
func ClampToPlane(p *vmath.Vec3F, y float64) {
	if p.Y < y {
		p.Y = y
	}
}
