package common

import "time"

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// The same seed always yields the same sequence, which keeps invader fire
// decisions and starfield layout reproducible in tests.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// TimeSeed derives a seed from the wall clock for interactive sessions.
func TimeSeed() uint32 {
	n := uint64(time.Now().UnixNano())
	return uint32(n ^ (n >> 32))
}

// Seed returns the seed the generator was created with.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Float64 returns the next value in [0, 1).
func (r *SeededRNG) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns a value in [min, max).
func (r *SeededRNG) Range(min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// Fixed always returns the same value. Tests use it to force or suppress
// probability-driven events.
type Fixed float64

// Float64 returns f.
func (f Fixed) Float64() float64 {
	return float64(f)
}

// Range maps f into [min, max) the same way SeededRNG does.
func (f Fixed) Range(min, max float64) float64 {
	return float64(f)*(max-min) + min
}
