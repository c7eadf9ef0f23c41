package ibd_test

import "github.com/katalvlaran/fieldgen/matrix"

// eigenvaluesOf runs the Jacobi solver with library defaults and returns
// the raw spectrum; shared by the analysis-chain tests.
func eigenvaluesOf(c *matrix.Dense) ([]float64, error) {
	res, err := matrix.Jacobi(c, 0, 0)
	if err != nil {
		return nil, err
	}

	return res.Values, nil
}
