package vmath

// FastRand is a xorshift64 generator
// Not safe for concurrent use; each owner keeps its own instance
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0,1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RangeF returns a value in [lo,hi)
func (r *FastRand) RangeF(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Centered returns a value in [-0.5,0.5) scaled by span
func (r *FastRand) Centered(span float64) float64 {
	return (r.Float64() - 0.5) * span
}

// UnitVec3 returns a random direction, normalized from a centered cube sample
// Falls back to +Y on the (practically unreachable) zero sample
func (r *FastRand) UnitVec3() Vec3F {
	v := Vec3F{r.Float64() - 0.5, r.Float64() - 0.5, r.Float64() - 0.5}
	if V3FMagSq(v) == 0 {
		return Vec3F{Y: 1}
	}
	return V3FNormalize(v)
}
