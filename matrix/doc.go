// Package matrix provides the dense linear-algebra primitives behind
// fieldgen's design-efficiency analysis.
//
// The matrix package provides:
//
//   - Dense — a row-major float64 matrix with safe, error-returning
//     accessors (At/Set never panic on user input).
//   - Jacobi — eigenvalue decomposition of real symmetric matrices via
//     greedy Jacobi plane rotations, with explicit tolerance, sweep
//     cap and convergence reporting.
//   - SortedDesc — descending-order eigenvalue view for callers that rank
//     canonical efficiency factors.
//
// Dense storage is best for the small symmetric matrices this library
// works with (t×t treatment information matrices, t rarely above a few
// hundred), where O(t²) memory is trivially acceptable.
//
// See the examples in this package and ibd for usage patterns.
package matrix
