// Package ibd - information (C) matrix builder.
package ibd

import "github.com/katalvlaran/fieldgen/matrix"

// Information derives the treatment information matrix C from the
// concurrence matrix lambda and the design constants r (replicates) and
// k (block size):
//
//	C[i][i] = r·(k−1)/k
//	C[i][j] = −Λ[i][j]/k   (i ≠ j)
//
// For a valid resolvable design with constant r and k, every row of C sums
// to zero; matrix.Dense.RowSum exposes that as a correctness check.
//
// Returns matrix.ErrNonSquare for a rectangular lambda, ErrBadReplicates or
// ErrBadBlockSize for non-positive constants.
// Complexity: O(t²) time and memory.
func Information(lambda *matrix.Dense, r, k int) (*matrix.Dense, error) {
	// Stage 1: Validate
	if lambda == nil {
		return nil, matrix.ErrNilMatrix
	}
	if lambda.Rows() != lambda.Cols() {
		return nil, matrix.ErrNonSquare
	}
	if r < 1 {
		return nil, ErrBadReplicates
	}
	if k < 1 {
		return nil, ErrBadBlockSize
	}

	var t = lambda.Rows()
	c, err := matrix.NewSquare(t)
	if err != nil {
		return nil, err
	}

	// Stage 2: Execute
	var (
		diag = float64(r) * float64(k-1) / float64(k)
		i, j int
		lij  float64
	)
	for i = 0; i < t; i++ {
		_ = c.Set(i, i, diag)
		for j = 0; j < t; j++ {
			if i == j {
				continue
			}
			lij, _ = lambda.At(i, j)
			_ = c.Set(i, j, -lij/float64(k))
		}
	}

	return c, nil
}
