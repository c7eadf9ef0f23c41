// Package ibd - core value types: parameters, field-book rows and the
// nested design structure.
package ibd

import "fmt"

// DefaultLabelPrefix is the treatment label prefix used when Params leaves
// LabelPrefix empty: treatment 7 becomes "G-7".
const DefaultLabelPrefix = "G"

// LocationStride is the plot-number offset between consecutive locations.
// Location loc (1-based) numbers its plots from StartPlot+(loc-1)*1000,
// reserving 999 plots of numeric headroom per location. The convention caps
// usable design sizes at 999 plots per location; this is documented, not
// enforced.
const LocationStride = 1000

// Params holds the structural inputs of a resolvable incomplete block
// design. Zero values are invalid except Seed and StartPlot.
type Params struct {
	// Treatments is t, the number of distinct treatments (>= 2).
	Treatments int
	// BlockSize is k, the number of plots per incomplete block (>= 1,
	// must divide Treatments evenly).
	BlockSize int
	// Replicates is r, the number of complete replicates per location (>= 1).
	Replicates int
	// Locations is L, the number of independently randomized locations (>= 1).
	Locations int
	// Seed is the reproducibility key; location loc draws from the derived
	// stream seeded with Seed+(loc-1).
	Seed int32
	// StartPlot is the first plot number of the first location.
	StartPlot int
	// LabelPrefix overrides DefaultLabelPrefix for treatment labels.
	LabelPrefix string
}

// Validate checks the structural invariants of p.
// Returns ErrTooFewTreatments, ErrBadBlockSize, ErrBadReplicates,
// ErrBadLocations, or ErrIndivisible; nil when p can be constructed.
// Complexity: O(1).
func (p Params) Validate() error {
	if p.Treatments < 2 {
		return ErrTooFewTreatments
	}
	if p.BlockSize < 1 {
		return ErrBadBlockSize
	}
	if p.Replicates < 1 {
		return ErrBadReplicates
	}
	if p.Locations < 1 {
		return ErrBadLocations
	}
	if p.Treatments%p.BlockSize != 0 {
		return ErrIndivisible
	}

	return nil
}

// BlocksPerReplicate returns s = t/k, the number of incomplete blocks per
// replicate. Only meaningful after Validate passes.
// Complexity: O(1).
func (p Params) BlocksPerReplicate() int {
	return p.Treatments / p.BlockSize
}

// prefix returns the effective treatment label prefix.
func (p Params) prefix() string {
	if p.LabelPrefix == "" {
		return DefaultLabelPrefix
	}

	return p.LabelPrefix
}

// labelFor renders the display label of a treatment id under prefix.
func labelFor(prefix string, id int) string {
	return fmt.Sprintf("%s-%d", prefix, id)
}

// Row is one field-book entry: a single plot of the realized design.
type Row struct {
	// ID is the global 1-based sequential row id across the whole book.
	ID int
	// Location is the 1-based location index.
	Location int
	// Plot is the plot number, unique within its location and monotonically
	// increasing from the location's start offset.
	Plot int
	// Rep is the 1-based replicate index within the location.
	Rep int
	// Block is the 1-based incomplete-block index within its replicate.
	Block int
	// Entry is the treatment id in [1..t].
	Entry int
	// Treatment is the display label of Entry (possibly relabeled).
	Treatment string
}

// Block-level and nested layout types. Ownership: a Structure is built once
// by Construct and consumed read-only by the analysis chain.
type (
	// TreatmentBlock is one incomplete block: k treatment ids.
	TreatmentBlock []int
	// Replicate is the ordered list of s blocks forming one complete
	// replicate.
	Replicate []TreatmentBlock
	// LocationLayout is the ordered list of r replicates of one location.
	LocationLayout []Replicate
	// Structure is the full nested design:
	// location → replicate → block → treatment ids.
	Structure []LocationLayout
)

// Design couples the flat field book with the nested structure it was
// emitted from.
type Design struct {
	// Params are the inputs the design was constructed from.
	Params Params
	// FieldBook is the flat plot list, one Row per plot, in emission order.
	FieldBook []Row
	// Layout is the nested block structure backing FieldBook.
	Layout Structure
}

// BlocksPerReplicate returns s = t/k for the constructed design.
// Complexity: O(1).
func (d *Design) BlocksPerReplicate() int {
	return d.Params.BlocksPerReplicate()
}
