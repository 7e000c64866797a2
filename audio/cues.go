package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/stress-bomb/core"
)

// CueDuration returns the longest layer of a cue
func CueDuration(sound core.SoundType) time.Duration {
	switch sound {
	case core.SoundLaunch:
		return 100 * time.Millisecond
	case core.SoundThrow:
		return 200 * time.Millisecond
	case core.SoundExplode:
		return 800 * time.Millisecond
	case core.SoundThunk:
		return 150 * time.Millisecond
	case core.SoundReload:
		return 200 * time.Millisecond
	default:
		return 0
	}
}

// CreateCue synthesizes one cue scaled by its configured gain
// Returns nil for unknown cue types
func CreateCue(sound core.SoundType, cfg *Config) beep.Streamer {
	sr := beep.SampleRate(cfg.SampleRate)
	var s beep.Streamer

	switch sound {
	case core.SoundLaunch:
		// Sine chirp falling fast
		s = NewSweep(WaveSine, 600, 100, RampExponential, 0.3, rampFloor, 100*time.Millisecond, sr)

	case core.SoundThrow:
		// Low sine whoosh
		s = NewSweep(WaveSine, 200, 50, RampExponential, 0.3, rampFloor, 200*time.Millisecond, sr)

	case core.SoundExplode:
		// Triangle rumble bottoming out at 0.5s and ringing on, under a short saw crack
		rumble := NewGlide(WaveTriangle, 80, 10, RampExponential, 500*time.Millisecond, 1.0, rampFloor, 800*time.Millisecond, sr)
		crack := NewSweep(WaveSaw, 100, 0, RampLinear, 0.5, rampFloor, 100*time.Millisecond, sr)
		s = beep.Mix(rumble, crack)

	case core.SoundThunk:
		// Bright click over a short body
		click := NewSweep(WaveTriangle, 800, 100, RampExponential, 0.4, rampFloor, 50*time.Millisecond, sr)
		body := NewSweep(WaveSine, 150, 100, RampExponential, 0.8, rampFloor, 150*time.Millisecond, sr)
		s = beep.Mix(click, body)

	case core.SoundReload:
		// Rising sine swelling in and out
		dur := 200 * time.Millisecond
		tone := NewSweep(WaveSine, 300, 600, RampLinear, 0.1, 0.1, dur, sr)
		s = NewEnvelope(tone, dur, 100*time.Millisecond, 100*time.Millisecond, sr)

	default:
		return nil
	}

	// Mixed layers are cut at the longest layer
	return newVolume(beep.Take(sr.N(CueDuration(sound)), s), cfg.Gain(sound))
}

// cueCache holds pre-rendered cues so playback never synthesizes on the caller's goroutine
type cueCache struct {
	buffers [core.SoundTypeCount]*beep.Buffer
}

func newCueCache(cfg *Config) *cueCache {
	c := &cueCache{}
	format := beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		streamer := CreateCue(s, cfg)
		if streamer == nil {
			continue
		}
		buf := beep.NewBuffer(format)
		buf.Append(streamer)
		c.buffers[s] = buf
	}
	return c
}

// streamer returns a fresh reader over a cached cue, nil if absent
func (c *cueCache) streamer(sound core.SoundType) beep.StreamSeeker {
	if sound < 0 || sound >= core.SoundTypeCount {
		return nil
	}
	buf := c.buffers[sound]
	if buf == nil || buf.Len() == 0 {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}
