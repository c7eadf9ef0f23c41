// Package fieldgen generates randomized resolvable incomplete block designs
// (IBD) for agricultural field trials and estimates their statistical
// efficiency — from deterministic randomization primitives to a from-scratch
// Jacobi eigenvalue solver.
//
// 🚀 What is fieldgen?
//
//	A small, reproducible library that brings together:
//		• Deterministic PRNG: seedable, platform-stable float streams
//		• Fisher–Yates shuffle & permutation helpers
//		• Resolvable IBD constructor: location → replicate → block layouts
//		• Re-randomization: fresh treatment relabeling, same block structure
//		• Concurrence & information (C) matrix builders
//		• Jacobi eigenvalue decomposition for symmetric matrices
//		• A-efficiency & D-efficiency estimation
//
// ✨ Why choose fieldgen?
//
//   - Reproducible – same seed ⇒ byte-identical field books, on every platform
//   - Pure computation – no I/O, no globals, no presentation-layer coupling
//   - Honest numerics – explicit tolerances, convergence reporting
//   - Minimal API – one Generate call from parameters to efficiency report
//
// Everything is organized under three subpackages:
//
//	rng/    — deterministic seedable PRNG, shuffle & seed derivation
//	matrix/ — dense symmetric matrix primitives + Jacobi eigensolver
//	ibd/    — design constructor, concurrence/information matrices,
//	          efficiency report and the Generate/Rerandomize entry points
//
// Quick example:
//
//	res, err := ibd.Generate(ibd.Params{
//	    Treatments: 24, BlockSize: 4, Replicates: 3,
//	    Locations: 1, Seed: 42, StartPlot: 101,
//	})
//	if err != nil { ... }
//	fmt.Println(len(res.FieldBook), res.AEfficiency, res.DEfficiency)
//
// See each subpackage's doc.go for contracts, invariants and complexity.
package fieldgen
