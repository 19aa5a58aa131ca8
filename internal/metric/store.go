// internal/metric/store.go
package metric

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Store accumulates named metric samples per design and collapses them to
// means on read. Upstream stats may carry one pre-averaged value per key or
// several per-model samples; both end up as a single higher-is-better score.
type Store struct {
	samples map[string]map[string][]float64
}

func NewStore() *Store {
	return &Store{samples: make(map[string]map[string][]float64)}
}

// Add records one sample of key for the given design id.
func (s *Store) Add(id, key string, v float64) {
	m, ok := s.samples[id]
	if !ok {
		m = make(map[string][]float64)
		s.samples[id] = m
	}
	m[key] = append(m[key], v)
}

// Has reports whether any sample exists for id.
func (s *Store) Has(id string) bool {
	return len(s.samples[id]) > 0
}

// Value returns the mean of all samples of key for id.
func (s *Store) Value(id, key string) (float64, bool) {
	xs := s.samples[id][key]
	if len(xs) == 0 {
		return 0, false
	}
	return stat.Mean(xs, nil), true
}

// Metrics returns the collapsed metric map for id, nil if the id is unknown.
func (s *Store) Metrics(id string) map[string]float64 {
	m, ok := s.samples[id]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, xs := range m {
		out[k] = stat.Mean(xs, nil)
	}
	return out
}

// IDs returns all known design ids in lexicographic order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.samples))
	for id := range s.samples {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
