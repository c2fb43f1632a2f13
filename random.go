package bluenoise

import (
	"math"
	"math/rand"
	"time"
)

// RandomSource supplies all of the randomness a Field needs.
// A Field makes one UniformIndex call per round & one UnitVector plus one
// UniformFloat call per candidate.
type RandomSource interface {
	// an integer in [0, n)
	UniformIndex(n int) int

	// a float in [lo, hi)
	UniformFloat(lo, hi float64) float64

	// a point on the unit circle, with a uniformly chosen angle
	UnitVector() Point
}

// rngSource is a RandomSource backed by math/rand
type rngSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource using the given seed. A seed of 0
// uses the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &rngSource{rng: rand.New(rand.NewSource(seed))}
}

// UniformIndex returns a value in [0, n)
func (r *rngSource) UniformIndex(n int) int {
	return r.rng.Intn(n)
}

// UniformFloat returns a value in [lo, hi)
func (r *rngSource) UniformFloat(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

// UnitVector returns a random direction
func (r *rngSource) UnitVector() Point {
	angle := r.rng.Float64() * 2 * math.Pi
	return Point{X: math.Cos(angle), Y: math.Sin(angle)}
}
