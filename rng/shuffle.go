// Package rng - shuffle and permutation helpers built on Source.
package rng

// Shuffle performs an in-place backward Fisher–Yates shuffle of a using src:
// for i from len(a)-1 down to 1, j = floor(Float64()*(i+1)), swap a[i], a[j].
// Empty and singleton slices are no-ops. A uniform src stream yields a
// uniform permutation distribution.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, src *Source) {
	var n = len(a)
	if n <= 1 {
		return
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = src.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Seq returns the slice [first, first+1, ..., first+n-1].
// For n <= 0 it returns an empty, non-nil slice.
// Allocation is required by contract (the returned slice).
//
// Complexity: O(n) time and space.
func Seq(first, n int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = first + i
	}

	return out
}

// Perm returns a permutation of [1..n] drawn deterministically from src.
// For n <= 0 it returns an empty, non-nil slice.
//
// Complexity: O(n) time and space.
func Perm(n int, src *Source) []int {
	p := Seq(1, n)
	Shuffle(p, src)

	return p
}
