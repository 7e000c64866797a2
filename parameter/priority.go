package parameter

// System Execution Priorities (lower runs first)
// Order matches the per-frame dispatch: targets, charge, camera, projectiles, fragments, particles
const (
	PriorityTarget     = 10
	PriorityCharge     = 20
	PriorityCamera     = 30
	PriorityProjectile = 40
	PriorityFragment   = 50
	PriorityParticle   = 60
)
