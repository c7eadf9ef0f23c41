// Package ibd - concurrence matrix builder.
package ibd

import "github.com/katalvlaran/fieldgen/matrix"

// Concurrence computes the t×t concurrence matrix Λ of the reference
// (first) location of st: Λ[i][j] counts the blocks, across all replicates,
// containing both treatment i+1 and treatment j+1. The diagonal Λ[i][i]
// equals r exactly — every treatment sits in one block per replicate.
//
// Only the first location is read: replicated locations share the same
// combinatorial design by construction, differing only in plot offsets.
//
// Stage 1 (Validate): non-empty structure, t >= 2, ids within [1..t].
// Stage 2 (Execute): count every ordered within-block pair, i=j included.
//
// Returns ErrEmptyStructure, ErrTooFewTreatments, or ErrEntryRange.
// Complexity: O(r·s·k²) time, O(t²) memory.
func Concurrence(st Structure, t int) (*matrix.Dense, error) {
	// Stage 1: Validate
	if len(st) == 0 || len(st[0]) == 0 {
		return nil, ErrEmptyStructure
	}
	if t < 2 {
		return nil, ErrTooFewTreatments
	}

	lambda, err := matrix.NewSquare(t)
	if err != nil {
		return nil, err
	}

	// Stage 2: Execute pair counting over the reference location
	var x, y int
	for _, replicate := range st[0] {
		for _, block := range replicate {
			for x = 0; x < len(block); x++ {
				if block[x] < 1 || block[x] > t {
					return nil, ErrEntryRange
				}
			}
			for x = 0; x < len(block); x++ {
				for y = 0; y < len(block); y++ {
					// ordered pairs, diagonal included: symmetric by construction
					_ = lambda.Add(block[x]-1, block[y]-1, 1)
				}
			}
		}
	}

	return lambda, nil
}
