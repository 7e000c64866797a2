package parameter

// Projectile kinematics
const (
	// ProjectileDamping multiplies velocity every tick, applied before gravity
	ProjectileDamping = 0.99

	// ProjectileGravity is subtracted from vertical velocity every tick
	ProjectileGravity = 0.5

	// ImpactSpinRate is the per-tick x/y spin of impact-type projectiles
	ImpactSpinRate = 0.1
)

// Collision
const (
	// BoundaryRadius is the sphere approximation around each boundary marker
	BoundaryRadius = 3.5

	// FloorY is the ground plane height
	FloorY = -2.0

	// TargetHitRadius is deliberately tighter than the target's visual size
	TargetHitRadius = 1.2
)

// Stuck projectile decay
const (
	// StuckFadeAfter starts the fade
	StuckFadeAfter = 2.0

	// StuckRemoveAfter removes the projectile
	StuckRemoveAfter = 3.5

	// StuckFadeStep is subtracted from opacity each tick while fading
	StuckFadeStep = 0.02
)

// Camera shake
const (
	ShakeMax   = 2.0
	ShakeDecay = 0.9
	ShakeDrain = 0.05

	ShakeImpactDetonation = 0.8
	ShakeImpactTargetHit  = 0.6
	ShakePiercing         = 0.2
)
