package vmath

import "math"

// LookRotation returns Euler angles (pitch X, yaw Y, roll Z) that turn a -Z facing model toward dir
// Zero direction yields zero rotation
func LookRotation(dir Vec3F) Vec3F {
	if V3FMagSq(dir) == 0 {
		return Vec3F{}
	}
	d := V3FNormalize(dir)
	yaw := math.Atan2(-d.X, -d.Z)
	pitch := math.Asin(clamp(d.Y, -1, 1))
	return Vec3F{X: pitch, Y: yaw}
}

// LookAt returns the rotation that faces from toward target
func LookAt(from, target Vec3F) Vec3F {
	return LookRotation(V3FSub(target, from))
}

// Lerp moves a toward b by factor t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
