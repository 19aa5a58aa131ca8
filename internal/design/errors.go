// internal/design/errors.go
package design

import "fmt"

// Routine discard verdicts. Recorded in the report, never raised as errors.
const (
	ReasonClash     = "clash"
	ReasonRedundant = "redundant"
)

// MissingMetricError marks a design that entered ranking without one of the
// required metric keys.
type MissingMetricError struct {
	ID     string
	Metric string
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("design %s: missing metric %q", e.ID, e.Metric)
}

// UnknownResidueError marks a residue name outside the canonical 20-letter
// alphabet.
type UnknownResidueError struct {
	ID   string
	Name string
	Pos  int
}

func (e *UnknownResidueError) Error() string {
	return fmt.Sprintf("design %s: unknown residue %q at position %d", e.ID, e.Name, e.Pos)
}

// LabelCollisionError marks two designs in one batch resolving to the same
// tube label.
type LabelCollisionError struct {
	Label   string
	ID      string
	OtherID string
}

func (e *LabelCollisionError) Error() string {
	return fmt.Sprintf("label %q for design %s already claimed by %s", e.Label, e.ID, e.OtherID)
}
