// Package ibd - the one-call generation pipeline.
package ibd

import "github.com/katalvlaran/fieldgen/matrix"

// Result is the outcome of Generate: the field book plus the efficiency
// report of the reference location's structure.
type Result struct {
	// FieldBook is the flat plot list across all locations.
	FieldBook []Row

	// BlocksPerReplicate is s = t/k.
	BlocksPerReplicate int

	// Report carries AEfficiency, DEfficiency and the Degenerate flag.
	Report

	// Converged reports whether the Jacobi solver met its tolerance within
	// the sweep cap; false means the efficiency values derive from an
	// approximate spectrum.
	Converged bool

	// Design retains the constructed layout for callers that want the
	// nested structure alongside the flat book.
	Design *Design
}

// Generate runs the full pipeline: construct the randomized design, build
// Λ and C for the reference location, decompose C, and report A- and
// D-efficiency.
//
// Fails only on parameter validation (see Params.Validate); every
// downstream stage operates on structures the constructor guarantees.
// Re-running with identical parameters reproduces the identical result.
//
// Complexity: O(t·r·L) construction + O(maxSweeps·t⁴) decomposition.
func Generate(p Params) (*Result, error) {
	d, err := Construct(p)
	if err != nil {
		return nil, err
	}

	lambda, err := Concurrence(d.Layout, p.Treatments)
	if err != nil {
		return nil, err
	}

	c, err := Information(lambda, p.Replicates, p.BlockSize)
	if err != nil {
		return nil, err
	}

	eig, err := matrix.Jacobi(c, 0, 0)
	if err != nil {
		return nil, err
	}

	rep, err := EfficiencyFrom(eig.Values, p.Treatments, p.Replicates)
	if err != nil {
		return nil, err
	}

	return &Result{
		FieldBook:          d.FieldBook,
		BlocksPerReplicate: d.BlocksPerReplicate(),
		Report:             rep,
		Converged:          eig.Converged,
		Design:             d,
	}, nil
}
