package audio

import (
	"time"

	"github.com/lixenwraith/stress-bomb/core"
)

// Config holds audio output settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	// Volumes scales each cue; missing entries play at unity
	Volumes map[core.SoundType]float64
	// MinSoundGap drops repeats of the same cue closer than this
	MinSoundGap time.Duration
}

// DefaultConfig returns the stock mix
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		Volumes: map[core.SoundType]float64{
			core.SoundLaunch:  0.6,
			core.SoundThrow:   0.5,
			core.SoundExplode: 1.0,
			core.SoundThunk:   0.8,
			core.SoundReload:  0.4,
		},
		MinSoundGap: 20 * time.Millisecond,
	}
}

// Gain returns the effective linear gain of a cue
func (c *Config) Gain(sound core.SoundType) float64 {
	v, ok := c.Volumes[sound]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
