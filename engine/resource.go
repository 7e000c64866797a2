package engine

import (
	"github.com/lixenwraith/stress-bomb/component"
	"github.com/lixenwraith/stress-bomb/status"
	"github.com/lixenwraith/stress-bomb/vmath"
)

// Resource holds singleton simulation state, accessed via World.Resources
type Resource struct {
	Clock  *ClockResource
	Camera *CameraResource
	Charge *component.ChargeState
	Score  *ScoreResource
	Rand   *vmath.FastRand

	// Collaborators
	Renderer Renderer
	Audio    AudioPlayer

	// Telemetry
	Status *status.Registry
}

// ClockResource is the simulated clock, advanced by a fixed step per tick
type ClockResource struct {
	Now  float64 // seconds
	Tick int64
}

// Advance moves the clock one step forward
func (c *ClockResource) Advance(step float64) {
	c.Now += step
	c.Tick++
}

// Millis returns simulated time in milliseconds, the unit of float motion
func (c *ClockResource) Millis() float64 {
	return c.Now * 1000
}

// ScoreResource is mutated only by target destruction
type ScoreResource struct {
	Points int
	Hits   int
}

// Add records a hit; negative deltas are ignored
func (s *ScoreResource) Add(points int) {
	if points < 0 {
		return
	}
	s.Points += points
	s.Hits++
}
