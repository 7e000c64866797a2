package parameter

import "time"

// Simulation timing
const (
	// TickStep is the fixed nominal step in seconds applied every tick regardless of real frame time
	TickStep = 0.016

	// FrameInterval is the host frame cadence (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// TickMillis converts elapsed simulated seconds into the millisecond clock used by float motion
	TickMillis = 1000.0
)

// Event plumbing
const (
	// EventQueueSize caps events pending between two dispatches
	EventQueueSize = 256
)

// OpacityEpsilon treats residual float opacity as fully faded
const OpacityEpsilon = 1e-9
