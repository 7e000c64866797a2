package status

// Metric keys shared by the simulation and the debug overlay
const (
	KeySession     = "session"
	KeyTicks       = "sim.ticks"
	KeyShots       = "weapon.shots"
	KeyHits        = "target.hits"
	KeyScore       = "score"
	KeyProjectiles = "projectile.live"
	KeyFragments   = "fragment.live"
	KeyParticles   = "particle.live"
	KeyTargets     = "target.live"
	KeyPending     = "respawn.pending"
	KeyShake       = "camera.shake"
	KeyDropped     = "input.dropped"
)
