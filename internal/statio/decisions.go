// internal/statio/decisions.go
package statio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"bindprep/internal/design"
)

// LoadDecisions reads the externally confirmed tag placements: a two-column
// CSV of design id and terminus (N or C), with an optional header row. This
// is the human sign-off on the analyzer's recommendations.
func LoadDecisions(path string) (map[string]design.Terminus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = 2

	out := make(map[string]design.Terminus)
	row := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decisions %s: row %d: %w", path, row+1, err)
		}
		row++
		id := strings.TrimSpace(rec[0])
		raw := strings.TrimSpace(rec[1])
		if row == 1 && strings.EqualFold(id, "id") {
			continue
		}
		term, ok := design.ParseTerminus(raw)
		if !ok {
			return nil, fmt.Errorf("decisions %s: row %d: terminus %q is not N or C", path, row, raw)
		}
		out[id] = term
	}
	return out, nil
}
