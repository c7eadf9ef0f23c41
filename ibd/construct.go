// Package ibd - design constructor.
//
// Construct realizes the randomization: per location, per replicate, the
// full treatment list is shuffled and partitioned into s contiguous blocks
// of k. Locations draw from independent streams derived off the base seed,
// so each location is reproducible on its own and differs from its peers.
package ibd

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/fieldgen/rng"
)

// Construct builds a resolvable incomplete block design from p.
//
// Stage 1 (Validate): Params.Validate; fatal on failure, no rows produced.
// Stage 2 (Execute): per location, shuffle+chunk each replicate and emit
// one Row per plot with sequential plot numbers.
// Stage 3 (Finalize): return the Design owning both representations.
//
// Postconditions: len(FieldBook) == t*r*L; every (location, replicate)
// contains each treatment id exactly once. Block membership is whatever
// the shuffle produced — no pairwise-balance enforcement.
//
// Complexity: O(t·r·L) time and memory.
func Construct(p Params) (*Design, error) {
	// Stage 1: Validate
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var (
		t      = p.Treatments
		k      = p.BlockSize
		prefix = p.prefix()
		book   = make([]Row, 0, t*p.Replicates*p.Locations)
		layout = make(Structure, 0, p.Locations)
		gid    = 1 // global row id, sequential across locations
	)

	// Stage 2: Execute per-location randomization
	var loc, rep, b, plot int
	for loc = 1; loc <= p.Locations; loc++ {
		// independent, reproducible stream per location
		src := rng.New(rng.DeriveSeed(p.Seed, loc-1))
		plot = p.StartPlot + (loc-1)*LocationStride

		locLayout := make(LocationLayout, 0, p.Replicates)
		for rep = 1; rep <= p.Replicates; rep++ {
			// fresh [1..t], shuffled, then cut into s chunks of k
			ids := rng.Seq(1, t)
			rng.Shuffle(ids, src)
			chunks := lo.Chunk(ids, k)

			replicate := make(Replicate, 0, len(chunks))
			for b = 0; b < len(chunks); b++ {
				replicate = append(replicate, TreatmentBlock(chunks[b]))
				for _, id := range chunks[b] {
					book = append(book, Row{
						ID:        gid,
						Location:  loc,
						Plot:      plot,
						Rep:       rep,
						Block:     b + 1,
						Entry:     id,
						Treatment: labelFor(prefix, id),
					})
					gid++
					plot++
				}
			}
			locLayout = append(locLayout, replicate)
		}
		layout = append(layout, locLayout)
	}

	// Stage 3: Finalize
	return &Design{Params: p, FieldBook: book, Layout: layout}, nil
}
