package sim

// RNG is the random source used by obstacle generation. All randomness in
// the simulation flows through this interface so runs are reproducible:
// the same seed and input sequence always produces the same run.
type RNG interface {
	// Float64 returns a random float64 in [0, 1).
	Float64() float64

	// Uniform returns a random float64 in [min, max).
	Uniform(min, max float64) float64
}

// LCG is a deterministic pseudo-random number generator backed by a
// linear congruential generator. It is small, allocation-free, and
// identical across platforms.
type LCG struct {
	state uint64
}

// NewLCG creates a new generator with the given seed.
func NewLCG(seed int64) *LCG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &LCG{state: s}
}

// next advances the generator and returns the raw state.
func (r *LCG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *LCG) Float64() float64 {
	return float64(r.next()>>11) / float64(1<<53)
}

// Uniform returns a random float64 in [min, max).
func (r *LCG) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}
