// Package ibd - re-randomization (treatment relabeling).
//
// Rerandomize draws a fresh bijection of [1..t] and rewrites every row's
// Entry/Treatment through it. Plot, replicate and block assignments are
// untouched, so the concurrence structure — and with it both efficiency
// values — is provably unchanged; that is why no recomputation happens here.
package ibd

import (
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/fieldgen/rng"
)

// Rerandomize returns a relabeled copy of book: a fresh random permutation
// of [1..t], seeded by seed, maps each old treatment id to its new one.
// The input slice is never mutated (value semantics; callers may keep the
// original for comparison).
//
// Treatment labels keep the prefix found in the existing book, falling back
// to DefaultLabelPrefix when none is recognizable.
//
// Returns ErrEmptyFieldBook, ErrTooFewTreatments, or ErrEntryRange when a
// row's Entry falls outside [1..t].
// Complexity: O(len(book) + t) time, O(len(book)) space.
func Rerandomize(book []Row, t int, seed int32) ([]Row, error) {
	// Stage 1: Validate
	if len(book) == 0 {
		return nil, ErrEmptyFieldBook
	}
	if t < 2 {
		return nil, ErrTooFewTreatments
	}
	for i := range book {
		if book[i].Entry < 1 || book[i].Entry > t {
			return nil, ErrEntryRange
		}
	}

	// Stage 2: Draw the old→new bijection
	perm := rng.Perm(t, rng.New(seed)) // perm[old-1] == new
	prefix := labelPrefixOf(book)

	// Stage 3: Rewrite rows into a fresh slice
	out := lo.Map(book, func(row Row, _ int) Row {
		row.Entry = perm[row.Entry-1]
		row.Treatment = labelFor(prefix, row.Entry)

		return row
	})

	return out, nil
}

// labelPrefixOf recovers the label prefix from the first row's Treatment
// ("G-12" → "G"). Falls back to DefaultLabelPrefix when the label does not
// carry a "-" separator.
func labelPrefixOf(book []Row) string {
	idx := strings.LastIndexByte(book[0].Treatment, '-')
	if idx <= 0 {
		return DefaultLabelPrefix
	}

	return book[0].Treatment[:idx]
}
