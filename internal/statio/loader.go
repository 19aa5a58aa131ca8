// internal/statio/loader.go
package statio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bindprep/internal/design"
	"bindprep/internal/metric"
	"bindprep/internal/pdbio"
)

// Column names produced by the upstream stats consolidation.
const (
	colDesign = "Design"
	colIPTM   = "Average_i_pTM"
	colIPAE   = "Average_i_pAE"
)

// Metric keys as stored in the core. iPAE is negated on load so that every
// metric entering the ranker is higher-is-better.
const (
	KeyIPTM = "iptm"
	KeyIPAE = "ipae"
)

// DefaultRankKeys is the ranking priority: interface confidence first,
// structural confidence to break ties.
var DefaultRankKeys = []string{KeyIPTM, KeyIPAE}

// Load reads a consolidated stats CSV into a metric store keyed by the
// "s<seed>_mpnn<n>" design identifier.
func Load(path string) (*metric.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("stats %s: header: %w", path, err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range []string{colDesign, colIPTM, colIPAE} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("stats %s: missing column %q", path, col)
		}
	}

	store := metric.NewStore()
	row := 1
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stats %s: row %d: %w", path, row, err)
		}
		row++
		name := strings.TrimSpace(rec[idx[colDesign]])
		if name == "" {
			continue
		}
		id := pdbio.Ident(strings.TrimSuffix(name, filepath.Ext(name)))
		iptm, err := strconv.ParseFloat(strings.TrimSpace(rec[idx[colIPTM]]), 64)
		if err != nil {
			return nil, fmt.Errorf("stats %s: row %d: %s: %w", path, row, colIPTM, err)
		}
		ipae, err := strconv.ParseFloat(strings.TrimSpace(rec[idx[colIPAE]]), 64)
		if err != nil {
			return nil, fmt.Errorf("stats %s: row %d: %s: %w", path, row, colIPAE, err)
		}
		store.Add(id, KeyIPTM, iptm)
		store.Add(id, KeyIPAE, -ipae) // lower pAE is better; store negated
	}
	return store, nil
}

// Attach copies collapsed metrics onto designs, matching by identifier.
// Designs without a stats row keep a nil map; the ranker rejects them with
// a MissingMetric error, surfacing the gap instead of sorting them last.
func Attach(store *metric.Store, designs []*design.Design) {
	for _, d := range designs {
		if m := store.Metrics(pdbio.Ident(d.ID)); m != nil {
			d.Metrics = m
		}
	}
}
