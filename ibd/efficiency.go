// Package ibd - efficiency calculator.
//
// The spectrum of C carries one structural zero (the all-ones null vector);
// the remaining t−1 eigenvalues, scaled by r, are the canonical efficiency
// factors. A-efficiency is their harmonic mean, D-efficiency their
// geometric mean.
package ibd

import (
	"math"

	"github.com/katalvlaran/fieldgen/matrix"
)

// Report summarizes the statistical quality of a realized design.
type Report struct {
	// AEfficiency is (t−1)/Σ(1/e_h) over the t−1 canonical efficiency
	// factors e_h = λ_h/r. Nominally in (0,1].
	AEfficiency float64

	// DEfficiency is exp(Σ ln(e_h)/(t−1)). Nominally in (0,1].
	DEfficiency float64

	// Degenerate reports that at least one value was masked to 0 (a
	// non-finite intermediate: near-zero or non-positive efficiency
	// factor, typically a disconnected design). The masking mirrors the
	// historical contract — downstream display code sees a plain 0, not
	// an error.
	Degenerate bool
}

// EfficiencyFrom converts the eigenvalue set of a t-treatment information
// matrix into the efficiency report.
//
// Stage 1 (Validate): t >= 2, r >= 1, exactly t eigenvalues.
// Stage 2 (Execute): drop the smallest eigenvalue (the structural zero),
// scale the t−1 largest by r, take harmonic and geometric means.
// Stage 3 (Finalize): mask non-finite results to 0 and flag Degenerate.
//
// Slightly out-of-range values from eigenvalue noise are reported as-is;
// only non-finite results are masked.
//
// Returns ErrTooFewTreatments, ErrBadReplicates, or ErrBadSpectrum.
// Complexity: O(t log t) time (sorting), O(t) space.
func EfficiencyFrom(eigs []float64, t, r int) (Report, error) {
	// Stage 1: Validate
	if t < 2 {
		return Report{}, ErrTooFewTreatments
	}
	if r < 1 {
		return Report{}, ErrBadReplicates
	}
	if len(eigs) != t {
		return Report{}, ErrBadSpectrum
	}

	// Stage 2: Execute over the t−1 largest eigenvalues
	var (
		sorted = matrix.SortedDesc(eigs)
		sumInv float64
		sumLog float64
		e      float64
		h      int
	)
	for h = 0; h < t-1; h++ {
		e = sorted[h] / float64(r) // canonical efficiency factor
		sumInv += 1 / e
		sumLog += math.Log(e)
	}

	var rep Report
	rep.AEfficiency = float64(t-1) / sumInv
	rep.DEfficiency = math.Exp(sumLog / float64(t-1))

	// Stage 3: Finalize — mask numerical blowups, keep the report usable
	if !isFinite(rep.AEfficiency) {
		rep.AEfficiency = 0
		rep.Degenerate = true
	}
	if !isFinite(rep.DEfficiency) {
		rep.DEfficiency = 0
		rep.Degenerate = true
	}
	if rep.AEfficiency <= 0 || rep.DEfficiency <= 0 {
		rep.Degenerate = true
	}

	return rep, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
