package engine

import (
	"math"

	"github.com/lixenwraith/stress-bomb/parameter"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// CameraResource is a perspective camera looking down -Z with no rotation
// Shake jitters the x/y position around Base
type CameraResource struct {
	Position vmath.Vec3F
	Base     vmath.Vec3F
	FOV      float64 // vertical, degrees
	Aspect   float64 // viewport width / height
	Shake    float64
}

// NewCameraResource places the camera at its rest pose
func NewCameraResource(aspect float64) *CameraResource {
	base := vmath.Vec3F{X: parameter.CameraBaseX, Y: parameter.CameraBaseY, Z: parameter.CameraRestZ}
	if aspect <= 0 {
		aspect = 1
	}
	return &CameraResource{
		Position: base,
		Base:     base,
		FOV:      parameter.CameraFOV,
		Aspect:   aspect,
	}
}

// viewForward is the fixed look direction; the camera never rotates
var viewForward = vmath.Vec3F{Z: -1}

// FocalScale is 1/tan(fov/2), the projection scale at unit depth
func (c *CameraResource) FocalScale() float64 {
	return 1 / math.Tan(c.FOV*math.Pi/360)
}

// Ray returns the unit direction from the camera through an NDC point
func (c *CameraResource) Ray(ndcX, ndcY float64) vmath.Vec3F {
	f := c.FocalScale()
	return vmath.V3FNormalize(vmath.Vec3F{
		X: ndcX * c.Aspect / f,
		Y: ndcY / f,
		Z: -1,
	})
}

// AimPoint is the point AimDepth along the pointer ray
func (c *CameraResource) AimPoint(ndcX, ndcY float64) vmath.Vec3F {
	return vmath.V3FAdd(c.Position, vmath.V3FScale(c.Ray(ndcX, ndcY), parameter.AimDepth))
}

// ChargeAnchor is the camera-relative point where the weapon is held and launched
func (c *CameraResource) ChargeAnchor() vmath.Vec3F {
	return vmath.V3FAdd(c.Position, vmath.Vec3F{
		X: parameter.AnchorOffsetX,
		Y: parameter.AnchorOffsetY,
		Z: parameter.AnchorOffsetZ,
	})
}

// AddShake adds an impulse, capped at ShakeMax
func (c *CameraResource) AddShake(impulse float64) {
	c.Shake = math.Min(c.Shake+impulse, parameter.ShakeMax)
}

// DecayShake applies one tick of multiplicative-then-subtractive decay
func (c *CameraResource) DecayShake() {
	c.Shake = math.Max(0, c.Shake*parameter.ShakeDecay-parameter.ShakeDrain)
}

// Project maps a world point to NDC and view depth; ok is false behind the near plane
func (c *CameraResource) Project(p vmath.Vec3F) (ndcX, ndcY, depth float64, ok bool) {
	rel := vmath.V3FSub(p, c.Position)
	depth = vmath.V3FDot(rel, viewForward)
	if depth <= parameter.CameraNear {
		return 0, 0, depth, false
	}
	f := c.FocalScale()
	return rel.X * f / (depth * c.Aspect), rel.Y * f / depth, depth, true
}
