package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// RampType defines how a sweep moves between its endpoints
type RampType int

const (
	RampLinear RampType = iota
	RampExponential
)

// rampFloor keeps exponential ramps away from zero, where they are undefined
const rampFloor = 0.01

// sweep is a frequency or gain curve over a fixed number of samples
type sweep struct {
	from, to float64
	ramp     RampType
}

// at returns the curve value at progress t in [0,1]
func (s sweep) at(t float64) float64 {
	if s.ramp == RampExponential {
		from, to := math.Max(s.from, rampFloor), math.Max(s.to, rampFloor)
		return from * math.Pow(to/from, t)
	}
	return s.from + (s.to-s.from)*t
}

// oscillator generates a wave whose frequency follows a sweep
// The frequency settles after glide samples and holds while the gain keeps decaying
type oscillator struct {
	freq     sweep
	gain     sweep
	wave     WaveType
	phase    float64
	position int
	glide    int
	duration int
	rate     beep.SampleRate
}

// NewSweep creates an oscillator gliding from one frequency to another while its
// gain moves from gainFrom to gainTo over duration
func NewSweep(wave WaveType, freqFrom, freqTo float64, ramp RampType, gainFrom, gainTo float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewGlide(wave, freqFrom, freqTo, ramp, duration, gainFrom, gainTo, duration, rate)
}

// NewGlide is NewSweep with the frequency reaching freqTo after glide instead of duration
func NewGlide(wave WaveType, freqFrom, freqTo float64, ramp RampType, glide time.Duration, gainFrom, gainTo float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     sweep{from: freqFrom, to: freqTo, ramp: ramp},
		gain:     sweep{from: gainFrom, to: gainTo, ramp: RampExponential},
		wave:     wave,
		glide:    min(rate.N(glide), rate.N(duration)),
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		t := float64(o.position) / float64(o.duration)

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}
		val *= o.gain.at(t)

		samples[i][0] = val
		samples[i][1] = val

		ft := 1.0
		if o.position < o.glide {
			ft = float64(o.position) / float64(o.glide)
		}
		o.phase += o.freq.at(ft) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain through effects.Volume
// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
