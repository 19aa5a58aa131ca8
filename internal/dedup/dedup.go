// internal/dedup/dedup.go
package dedup

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"bindprep/internal/design"
)

// DefaultTolerance is the Cα RMSD (Å) under which two same-seed structures
// count as the same base fold.
const DefaultTolerance = 2.0

// Deduplicator collapses near-identical designs that share a generation
// seed. Seed partitions are cheap; the RMSD refinement only compares within
// a partition, so cost stays bounded.
type Deduplicator struct {
	Tolerance float64
}

// Group records one similarity cluster: the retained representative and the
// members discarded in its favor.
type Group struct {
	Seed    int
	Kept    *design.Design
	Dropped []*design.Design
}

// Apply partitions ranked designs by seed, refines each partition into
// similarity clusters and keeps the best-ranked member of every cluster.
// Clustering visits members in (rank, id) order and compares against cluster
// representatives, so the retained member is unique and deterministic; on
// identical ranks the lexicographically smaller id wins.
func (dd Deduplicator) Apply(ds []*design.Design) (kept, dropped []*design.Design, groups []Group) {
	bySeed := make(map[int][]*design.Design)
	seeds := make([]int, 0)
	for _, d := range ds {
		if _, ok := bySeed[d.Seed]; !ok {
			seeds = append(seeds, d.Seed)
		}
		bySeed[d.Seed] = append(bySeed[d.Seed], d)
	}
	sort.Ints(seeds)

	for _, seed := range seeds {
		members := bySeed[seed]
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].Rank != members[j].Rank {
				return members[i].Rank < members[j].Rank
			}
			return members[i].ID < members[j].ID
		})

		var clusters []*Group
		for _, m := range members {
			placed := false
			for _, g := range clusters {
				if dd.similar(m, g.Kept) {
					g.Dropped = append(g.Dropped, m)
					placed = true
					break
				}
			}
			if !placed {
				clusters = append(clusters, &Group{Seed: seed, Kept: m})
			}
		}
		for _, g := range clusters {
			groups = append(groups, *g)
			kept = append(kept, g.Kept)
			dropped = append(dropped, g.Dropped...)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Rank < kept[j].Rank })
	sort.SliceStable(dropped, func(i, j int) bool { return dropped[i].Rank < dropped[j].Rank })
	return kept, dropped, groups
}

// similar reports whether two structures are the same base fold: equal
// residue counts and Cα RMSD within tolerance. Different lengths never
// merge.
func (dd Deduplicator) similar(a, b *design.Design) bool {
	if len(a.Structure) != len(b.Structure) {
		return false
	}
	return RMSD(a.Structure, b.Structure) <= dd.Tolerance
}

// RMSD is the root-mean-square Cα deviation between two equal-length
// structures. No superposition is applied: upstream alignment already put
// every structure in the same reference frame, so absolute coordinates are
// compared directly.
func RMSD(a, b []design.Residue) float64 {
	if len(a) == 0 {
		return 0
	}
	var ss float64
	for i := range a {
		ss += r3.Norm2(a[i].CA.Sub(b[i].CA))
	}
	return math.Sqrt(ss / float64(len(a)))
}
