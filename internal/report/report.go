// internal/report/report.go
package report

import (
	"sort"

	"github.com/google/uuid"

	"bindprep/pkg/api"
)

// Report is the per-batch discard audit trail: one entry for every design
// that left the pipeline, with the stage and reason that removed it.
type Report struct {
	Batch   string
	entries []api.DiscardV1
}

func New() *Report {
	return &Report{Batch: uuid.NewString()}
}

// Add records why a design was discarded or failed at a stage.
func (r *Report) Add(id, stage, reason, detail string) {
	r.entries = append(r.entries, api.DiscardV1{ID: id, Stage: stage, Reason: reason, Detail: detail})
}

// Len returns the number of recorded discards.
func (r *Report) Len() int { return len(r.entries) }

// Entries returns the discards ordered by id then stage, independent of
// recording order.
func (r *Report) Entries() []api.DiscardV1 {
	out := make([]api.DiscardV1, len(r.entries))
	copy(out, r.entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Stage < out[j].Stage
	})
	return out
}
