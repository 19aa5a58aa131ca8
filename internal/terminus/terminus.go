// internal/terminus/terminus.go
package terminus

import (
	"gonum.org/v1/gonum/spatial/r3"

	"bindprep/internal/design"
)

// DefaultRadius is the neighbor-counting radius in Å.
const DefaultRadius = 10.0

// Analyzer scores how exposed each terminal residue sits. The result is an
// advisory tag-placement recommendation; confirmation happens outside the
// pipeline.
type Analyzer struct {
	Radius float64
}

// Score computes exposure for the first and last residues and recommends
// the more exposed terminus for tagging. Ties fall to the C-terminus, the
// conventional default.
func (a Analyzer) Score(d *design.Design) design.TerminusScore {
	n := a.exposure(d.Structure, 0)
	c := a.exposure(d.Structure, len(d.Structure)-1)
	rec := design.TerminusC
	if n > c {
		rec = design.TerminusN
	}
	return design.TerminusScore{N: n, C: c, Recommended: rec}
}

// exposure is 1/(1+n) where n counts other Cα atoms within Radius of
// residue i: fewer neighbors means more exposed. Only pairwise distances
// enter, so the score is invariant under rigid rotation and translation and
// swaps with the termini on a mirrored chain.
func (a Analyzer) exposure(res []design.Residue, i int) float64 {
	n := 0
	for j := range res {
		if j == i {
			continue
		}
		if r3.Norm(res[j].CA.Sub(res[i].CA)) <= a.Radius {
			n++
		}
	}
	return 1.0 / float64(1+n)
}
