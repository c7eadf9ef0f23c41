// SPDX-License-Identifier: MIT

// Package matrix - Jacobi eigenvalue decomposition for real symmetric matrices.
//
// Purpose:
//   - Compute all eigenvalues of a symmetric matrix via greedy Jacobi plane
//     rotations (largest off-diagonal pivot each iteration).
//   - Bound worst-case runtime with a hard sweep cap; report convergence
//     explicitly instead of failing, since approximate spectra are an accepted
//     output for efficiency estimation.
//
// Complexity quicksheet:
//   - One rotation: O(n) updates after an O(n²) pivot scan.
//   - One sweep: n·(n−1)/2 rotations, one per off-diagonal pair.
//   - Full run: O(maxSweeps·n⁴) time, O(n²) memory for the working copy.
package matrix

import (
	"math"
	"sort"
)

// DefaultJacobiTol is the convergence threshold on the largest
// off-diagonal magnitude.
const DefaultJacobiTol = 1e-9

// DefaultJacobiMaxSweeps caps the number of sweeps, where one sweep is a
// budget of n·(n−1)/2 rotations (one per off-diagonal pair). Exceeding the
// cap is not an error: the diagonal at that point is the best available
// approximation, and EigenResult.Converged reports the shortfall.
const DefaultJacobiMaxSweeps = 100

// EigenResult holds the outcome of a Jacobi decomposition.
type EigenResult struct {
	// Values are the eigenvalues in solver order (final diagonal entries,
	// unsorted). Use SortedDesc for a ranked view.
	Values []float64

	// Iterations is the number of rotations actually applied.
	Iterations int

	// Converged reports whether the largest off-diagonal magnitude fell
	// below the tolerance before the rotation budget was exhausted.
	Converged bool
}

// Jacobi computes all eigenvalues of the symmetric matrix m.
//
// tol is the off-diagonal convergence threshold (<=0 selects
// DefaultJacobiTol); maxSweeps caps sweeps of n·(n−1)/2 rotations each
// (<=0 selects DefaultJacobiMaxSweeps). Non-convergence within the cap is
// NOT an error — the result carries Converged=false and approximate values.
//
// Stage 1 (Validate): non-nil, square, symmetric within tol.
// Stage 2 (Prepare): clone m into a working copy A.
// Stage 3 (Execute): rotate away the largest off-diagonal element until
// tol or the rotation budget maxSweeps·n·(n−1)/2.
// Stage 4 (Finalize): read eigenvalues off the diagonal.
//
// Returns ErrNilMatrix, ErrNonSquare, or ErrAsymmetry.
// Complexity: O(maxSweeps·n⁴) time, O(n²) memory.
func Jacobi(m *Dense, tol float64, maxSweeps int) (EigenResult, error) {
	var res EigenResult

	// Stage 1: Validate input
	if m == nil {
		return res, ErrNilMatrix
	}
	if tol <= 0 {
		tol = DefaultJacobiTol
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultJacobiMaxSweeps
	}

	var n = m.Rows()
	if n != m.Cols() { // must be square
		return res, ErrNonSquare
	}
	// check symmetry m[i][j] == m[j][i]
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return res, ErrAsymmetry // fail-fast on asymmetry
			}
		}
	}

	// Stage 2: Prepare working copy
	var a = m.Clone().data // flat n×n buffer, mutated in place

	// Stage 3: Execute Jacobi rotations. One sweep covers every off-diagonal
	// pair once, so the rotation budget is maxSweeps·n·(n−1)/2.
	var (
		budget        = maxSweeps * n * (n - 1) / 2
		iter          int     // rotation counter
		p, q          int     // pivot indices
		maxOff        float64 // largest off-diagonal magnitude
		theta, tRot   float64 // rotation parameters
		c, s          float64 // cosine and sine
		app, aqq, apq float64 // pivot-row/column entries before rotation
		aip, aiq      float64 // temporaries for row/column updates
		converged     bool
	)
	for iter = 0; iter < budget; iter++ {
		// find largest off-diagonal |A[p][q]|
		maxOff = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if math.Abs(a[i*n+j]) > maxOff {
					maxOff = math.Abs(a[i*n+j])
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			converged = true

			break
		}

		// compute rotation zeroing A[p][q]
		app = a[p*n+p]
		aqq = a[q*n+q]
		apq = a[p*n+q]
		theta = (aqq - app) / (2 * apq)
		tRot = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(tRot*tRot+1) // cosine
		s = tRot * c                     // sine

		// apply rotation to rows/columns p and q
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = a[i*n+p]
			aiq = a[i*n+q]
			a[i*n+p] = c*aip - s*aiq
			a[p*n+i] = a[i*n+p]
			a[i*n+q] = s*aip + c*aiq
			a[q*n+i] = a[i*n+q]
		}
		// update pivot diagonal entries and annihilate the pivot
		a[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p*n+q] = 0.0
		a[q*n+p] = 0.0
	}

	// Stage 4: Finalize eigenvalues
	if !converged {
		// last chance: the cap may have landed exactly on convergence
		maxOff = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if math.Abs(a[i*n+j]) > maxOff {
					maxOff = math.Abs(a[i*n+j])
				}
			}
		}
		converged = maxOff < tol
	}

	res.Values = make([]float64, n)
	for i = 0; i < n; i++ {
		res.Values[i] = a[i*n+i] // diagonal elements are eigenvalues
	}
	res.Iterations = iter
	res.Converged = converged

	return res, nil
}

// SortedDesc returns a new slice with the eigenvalues sorted in descending
// order; the input is left untouched.
// Complexity: O(n log n) time, O(n) space.
func SortedDesc(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))

	return out
}
