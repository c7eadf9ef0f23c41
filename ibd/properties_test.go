package ibd_test

import (
	"fmt"
	"testing"

	"github.com/onsi/gomega"

	"github.com/katalvlaran/fieldgen/ibd"
)

// TestDesignProperties sweeps a grid of valid parameter sets and checks the
// structural invariants that must hold for every draw, connected or not:
// per-replicate completeness, Λ diagonal == r, and zero C row sums.
func TestDesignProperties(t *testing.T) {
	grids := []ibd.Params{
		{Treatments: 4, BlockSize: 2, Replicates: 2, Locations: 1},
		{Treatments: 6, BlockSize: 2, Replicates: 3, Locations: 2},
		{Treatments: 6, BlockSize: 3, Replicates: 2, Locations: 1},
		{Treatments: 10, BlockSize: 5, Replicates: 4, Locations: 3},
		{Treatments: 12, BlockSize: 3, Replicates: 2, Locations: 1},
		{Treatments: 16, BlockSize: 4, Replicates: 3, Locations: 2},
	}

	for _, p := range grids {
		for seed := int32(1); seed <= 5; seed++ {
			p := p
			p.Seed = seed
			p.StartPlot = 1

			t.Run(fmt.Sprintf("t%d_k%d_r%d_L%d_seed%d", p.Treatments, p.BlockSize, p.Replicates, p.Locations, seed), func(t *testing.T) {
				g := gomega.NewWithT(t)

				d, err := ibd.Construct(p)
				g.Expect(err).NotTo(gomega.HaveOccurred())
				g.Expect(d.FieldBook).To(gomega.HaveLen(p.Treatments * p.Replicates * p.Locations))

				// completeness: each (location, replicate) covers {1..t} once
				counts := map[[2]int]map[int]int{}
				for _, row := range d.FieldBook {
					key := [2]int{row.Location, row.Rep}
					if counts[key] == nil {
						counts[key] = map[int]int{}
					}
					counts[key][row.Entry]++
				}
				for key, byID := range counts {
					g.Expect(byID).To(gomega.HaveLen(p.Treatments), "location %d rep %d", key[0], key[1])
					for id, n := range byID {
						g.Expect(n).To(gomega.Equal(1), "treatment %d in location %d rep %d", id, key[0], key[1])
					}
				}

				// concurrence diagonal invariant
				lambda, err := ibd.Concurrence(d.Layout, p.Treatments)
				g.Expect(err).NotTo(gomega.HaveOccurred())
				for i := 0; i < p.Treatments; i++ {
					v, aerr := lambda.At(i, i)
					g.Expect(aerr).NotTo(gomega.HaveOccurred())
					g.Expect(v).To(gomega.Equal(float64(p.Replicates)))
				}

				// information row-sum invariant
				c, err := ibd.Information(lambda, p.Replicates, p.BlockSize)
				g.Expect(err).NotTo(gomega.HaveOccurred())
				for i := 0; i < p.Treatments; i++ {
					sum, serr := c.RowSum(i)
					g.Expect(serr).NotTo(gomega.HaveOccurred())
					g.Expect(sum).To(gomega.BeNumerically("~", 0.0, 1e-6))
				}
			})
		}
	}
}
