// Package ibd constructs randomized resolvable incomplete block designs and
// estimates their statistical efficiency.
//
// 🚀 What is a resolvable IBD?
//
//	A block design whose blocks group into replicates such that each
//	replicate contains every treatment exactly once, with each block
//	smaller than the full treatment set (k < t). Widely used in:
//	  • Variety trials with many entries and small field blocks
//	  • Multi-location agricultural experiments
//	  • Any setting where full randomized complete blocks are too large
//
// ✨ Key features:
//   - Construct — reproducible location → replicate → block layouts plus a
//     flat field book (one row per plot)
//   - Rerandomize — fresh treatment relabeling on an existing field book,
//     block structure untouched
//   - Concurrence / Information — Λ and C matrices of the realized design
//   - EfficiencyFrom — A- and D-efficiency from the C-matrix spectrum
//   - Generate — the one-call pipeline from parameters to field book and
//     efficiency report
//
// ⚙️ Usage:
//
//	res, err := ibd.Generate(ibd.Params{
//	    Treatments: 6, BlockSize: 2, Replicates: 3,
//	    Locations: 1, Seed: 42, StartPlot: 101,
//	})
//	if err != nil {
//	    // ErrIndivisible and friends: fix parameters, no retry helps
//	}
//	fmt.Println(res.BlocksPerReplicate, res.AEfficiency, res.DEfficiency)
//
// Invariants (checked by the test suite):
//   - every (location, replicate) contains each treatment exactly once
//   - Λ[i][i] == r for all treatments i
//   - every row of C sums to zero within floating-point tolerance
//
// The randomization is a naive resolvable-block shuffle: block membership
// is unconstrained beyond the random partition, so the layout is not
// guaranteed alpha-lattice-optimal. The efficiency report quantifies what
// the draw actually achieved.
//
// Performance:
//
//   - Construct: O(t·r·L) time and memory
//   - Generate: + O(t²) matrices and O(maxSweeps·t⁴) Jacobi work
//
// Concurrency: all operations are synchronous and run on the calling
// goroutine; no package-level state exists. Give each concurrent caller
// its own parameters and results.
package ibd
