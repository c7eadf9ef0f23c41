// Package ibd: sentinel error set.
// All public routines return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ...)); tests and callers match via errors.Is.
// Parameter errors are fatal and never retried: identical inputs reproduce
// identical failures.

package ibd

import "errors"

var (
	// ErrTooFewTreatments is returned when fewer than two treatments are
	// requested; a design needs at least one estimable contrast.
	ErrTooFewTreatments = errors.New("ibd: at least two treatments required")

	// ErrBadBlockSize is returned for a non-positive block size.
	ErrBadBlockSize = errors.New("ibd: block size must be at least 1")

	// ErrBadReplicates is returned for a non-positive replication count.
	ErrBadReplicates = errors.New("ibd: replication count must be at least 1")

	// ErrBadLocations is returned for a non-positive location count.
	ErrBadLocations = errors.New("ibd: location count must be at least 1")

	// ErrIndivisible is returned when the block size does not divide the
	// treatment count evenly; resolvable blocks cannot be formed.
	ErrIndivisible = errors.New("ibd: block size does not divide treatment count")

	// ErrEmptyFieldBook is returned when an operation requires at least one
	// field-book row.
	ErrEmptyFieldBook = errors.New("ibd: empty field book")

	// ErrEmptyStructure is returned when a design structure holds no
	// locations or replicates to analyze.
	ErrEmptyStructure = errors.New("ibd: empty design structure")

	// ErrEntryRange is returned when a treatment id falls outside [1..t].
	ErrEntryRange = errors.New("ibd: treatment id outside [1..t]")

	// ErrBadSpectrum is returned when the eigenvalue count does not match
	// the treatment count.
	ErrBadSpectrum = errors.New("ibd: eigenvalue count does not match treatment count")

	// ErrNilWriter is returned when a nil writer is passed to WriteCSV.
	ErrNilWriter = errors.New("ibd: nil writer")

	// ErrBadRawParams is returned when a raw parameter map cannot be decoded
	// into Params.
	ErrBadRawParams = errors.New("ibd: cannot decode raw parameters")
)
