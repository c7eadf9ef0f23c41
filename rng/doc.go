// Package rng provides deterministic pseudo-random number generation for
// field-trial randomization.
//
// 🚀 What is rng?
//
//	A tiny, seedable, platform-stable PRNG plus the shuffle primitives every
//	randomization step in fieldgen is built on:
//	  • Source — a 32-bit mulberry-style generator emitting float64 in [0,1)
//	  • Shuffle — in-place backward Fisher–Yates permutation
//	  • Perm / Seq — permutation and range helpers for treatment id lists
//	  • DeriveSeed — explicit per-location seed derivation
//
// ✨ Key guarantees:
//   - Determinism: same seed and same draw count ⇒ identical next value,
//     on every platform (pure 32-bit integer mixing, no math/rand state).
//   - Uniformity: Fisher–Yates yields a uniform permutation distribution
//     given a uniform stream.
//   - Encapsulation: no time-based sources, no globals, no hidden draws.
//
// Concurrency:
//   - A *Source is NOT goroutine-safe. Do not share one across goroutines;
//     derive independent streams per worker/location via DeriveSeed instead.
//
// ⚙️ Usage:
//
//	src := rng.New(42)
//	ids := rng.Seq(1, 24)   // [1..24]
//	rng.Shuffle(ids, src)   // uniform permutation, reproducible from seed 42
//
// Performance:
//
//   - Float64: O(1), zero allocations
//   - Shuffle: O(n) time, O(1) extra space
package rng
