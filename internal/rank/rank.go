// internal/rank/rank.go
package rank

import (
	"sort"

	"bindprep/internal/design"
)

// Ranker orders designs by a prioritized list of metric keys, descending on
// each; the next key is consulted only on an exact tie on the previous one.
// Lexicographic ID is the final tie-break so the order is total and
// deterministic regardless of input order.
type Ranker struct {
	Keys []string
}

func New(keys ...string) Ranker { return Ranker{Keys: keys} }

// Rank validates that every design carries all required keys, sorts the
// complete ones and annotates 1-based ranks. Designs missing a key are
// returned as failures carrying *design.MissingMetricError; ranking never
// discards beyond that.
func (r Ranker) Rank(ds []*design.Design) (ranked []*design.Design, failed []design.Failure) {
	ranked = make([]*design.Design, 0, len(ds))
	for _, d := range ds {
		if key, ok := r.missing(d); !ok {
			failed = append(failed, design.Failure{
				Design: d,
				Err:    &design.MissingMetricError{ID: d.ID, Metric: key},
			})
			continue
		}
		ranked = append(ranked, d)
	}

	sort.SliceStable(ranked, func(i, j int) bool { return r.less(ranked[i], ranked[j]) })
	for i, d := range ranked {
		d.Rank = i + 1
		d.Status = design.StatusRanked
	}
	return ranked, failed
}

func (r Ranker) missing(d *design.Design) (string, bool) {
	for _, k := range r.Keys {
		if _, ok := d.Metrics[k]; !ok {
			return k, false
		}
	}
	return "", true
}

func (r Ranker) less(a, b *design.Design) bool {
	for _, k := range r.Keys {
		av, bv := a.Metrics[k], b.Metrics[k]
		if av != bv {
			return av > bv
		}
	}
	return a.ID < b.ID
}
