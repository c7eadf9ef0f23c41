// Package rng - deterministic PRNG core shared by all randomization steps.
//
// This file centralizes seedable random generation for fieldgen.
//
// Goals:
//   - Determinism: same seed ⇒ identical float stream across platforms.
//   - Stability: pure 32-bit integer mixing; no math/rand, no FPU-order hazards.
//   - Safety: no panics, no logging, no hidden entropy sources.
//   - Performance: O(1) draws with zero allocations.
package rng

// additiveConstant is the fixed 32-bit increment applied before each draw.
// It is the mulberry32 additive constant; the exact value is arbitrary but
// stable, chosen for good avalanche behavior under the mixing below.
const additiveConstant uint32 = 0x6D2B79F5

// float64Denominator converts a full 32-bit word into [0,1): 2^32 as float64.
const float64Denominator = 4294967296.0

// Source is a deterministic pseudo-random stream of float64 values in [0,1).
// The next value is a pure function of the seed and the number of prior
// draws. Period far exceeds the draw count of any single design (~2^32).
//
// A Source is NOT goroutine-safe; each owner keeps its own instance.
type Source struct {
	state uint32 // advances by additiveConstant on every draw
}

// New returns a Source seeded with seed. Distinct seeds produce
// decorrelated streams; identical seeds reproduce identical streams.
//
// Complexity: O(1).
func New(seed int32) *Source {
	return &Source{state: uint32(seed)}
}

// Float64 draws the next value in [0,1).
//
// The step is a mulberry32 round: fixed additive increment, multiplicative
// mixing keyed by the state itself, then an XOR-shift finisher. The final
// 32-bit word is scaled by 2^-32, so the result is always < 1.
//
// Complexity: O(1), no allocations.
func (s *Source) Float64() float64 {
	s.state += additiveConstant
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14

	return float64(z) / float64Denominator
}

// Intn draws a uniform integer in [0,n) via floor(Float64()*n).
// n must be positive; n <= 0 returns 0 (callers validate sizes upstream).
//
// Complexity: O(1).
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	return int(s.Float64() * float64(n))
}

// DeriveSeed returns the seed of the independent stream for the given
// zero-based location index. The derivation is an explicit seed+location
// offset: reproducible per location, differing across locations.
//
// Complexity: O(1).
func DeriveSeed(seed int32, location int) int32 {
	return seed + int32(location)
}
