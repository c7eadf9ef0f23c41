package ibd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldgen/ibd"
)

// TestEfficiencyFrom_Validation walks the calculator's sentinels.
func TestEfficiencyFrom_Validation(t *testing.T) {
	_, err := ibd.EfficiencyFrom([]float64{1}, 1, 1)
	assert.ErrorIs(t, err, ibd.ErrTooFewTreatments)

	_, err = ibd.EfficiencyFrom([]float64{1, 2}, 2, 0)
	assert.ErrorIs(t, err, ibd.ErrBadReplicates)

	_, err = ibd.EfficiencyFrom([]float64{1, 2, 3}, 2, 1)
	assert.ErrorIs(t, err, ibd.ErrBadSpectrum)
}

// TestEfficiencyFrom_PerfectDesign verifies that a spectrum with all
// efficiency factors equal to 1 (eigenvalues r, plus the structural zero)
// reports A = D = 1.
func TestEfficiencyFrom_PerfectDesign(t *testing.T) {
	rep, err := ibd.EfficiencyFrom([]float64{3, 3, 3, 0}, 4, 3)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, rep.AEfficiency, 1e-12)
	assert.InDelta(t, 1.0, rep.DEfficiency, 1e-12)
	assert.False(t, rep.Degenerate)
}

// TestEfficiencyFrom_KnownSpectrum checks the harmonic/geometric formulas
// on hand-computed factors e = {1, 0.5}: A = 2/(1+2) = 2/3, D = √0.5.
func TestEfficiencyFrom_KnownSpectrum(t *testing.T) {
	rep, err := ibd.EfficiencyFrom([]float64{2, 1, 0}, 3, 2)
	require.NoError(t, err)

	assert.InDelta(t, 2.0/3.0, rep.AEfficiency, 1e-12)
	assert.InDelta(t, 0.70710678118654752, rep.DEfficiency, 1e-12)
	assert.False(t, rep.Degenerate)
}

// TestEfficiencyFrom_DropsSmallest verifies the structural zero is the one
// excluded: order of the input must not matter.
func TestEfficiencyFrom_DropsSmallest(t *testing.T) {
	a, err := ibd.EfficiencyFrom([]float64{0, 3, 3, 3}, 4, 3)
	require.NoError(t, err)
	b, err := ibd.EfficiencyFrom([]float64{3, 3, 0, 3}, 4, 3)
	require.NoError(t, err)

	assert.Equal(t, a, b, "input order must not change the report")
}

// TestEfficiencyFrom_DegenerateMasking verifies the no-throw contract on a
// disconnected spectrum: a second zero eigenvalue drives e_h to 0, the
// non-finite results are masked to 0 and flagged.
func TestEfficiencyFrom_DegenerateMasking(t *testing.T) {
	rep, err := ibd.EfficiencyFrom([]float64{2, 0, 0}, 3, 2)
	require.NoError(t, err, "degenerate spectra are masked, never errors")

	assert.Zero(t, rep.AEfficiency)
	assert.Zero(t, rep.DEfficiency)
	assert.True(t, rep.Degenerate)
}

// TestEfficiencyFrom_NegativeFactor verifies masking of log-of-negative
// noise: D goes non-finite (NaN) and must be masked to 0.
func TestEfficiencyFrom_NegativeFactor(t *testing.T) {
	rep, err := ibd.EfficiencyFrom([]float64{2, -0.5, -1}, 3, 2)
	require.NoError(t, err)

	assert.Zero(t, rep.DEfficiency)
	assert.True(t, rep.Degenerate)
}
