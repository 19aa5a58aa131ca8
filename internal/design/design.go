// internal/design/design.go
package design

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Status tracks a design's progress through the pipeline.
type Status int

const (
	StatusCandidate Status = iota
	StatusRanked
	StatusClashRejected
	StatusTagAnalyzed
	StatusDeduplicated
	StatusEngineered
	StatusDiscarded
)

func (s Status) String() string {
	switch s {
	case StatusCandidate:
		return "candidate"
	case StatusRanked:
		return "ranked"
	case StatusClashRejected:
		return "clash-rejected"
	case StatusTagAnalyzed:
		return "tag-analyzed"
	case StatusDeduplicated:
		return "deduplicated"
	case StatusEngineered:
		return "engineered"
	case StatusDiscarded:
		return "discarded"
	}
	return "unknown"
}

// Terminus identifies one end of a binder chain.
type Terminus byte

const (
	TerminusN Terminus = 'N'
	TerminusC Terminus = 'C'
)

func (t Terminus) String() string { return string(t) }

// ParseTerminus accepts "N"/"C" in any case.
func ParseTerminus(s string) (Terminus, bool) {
	switch s {
	case "N", "n":
		return TerminusN, true
	case "C", "c":
		return TerminusC, true
	}
	return 0, false
}

// Residue is one chain position: the PDB residue name plus the Cα position
// in the common reference frame produced by upstream alignment.
type Residue struct {
	Name string
	CA   r3.Vec
}

// Design is one candidate binder flowing through the pipeline. Structure is
// ordered N→C and non-empty; Metrics values are higher-is-better.
type Design struct {
	ID          string
	Seed        int
	Structure   []Residue
	Metrics     map[string]float64
	Orientation string

	Status  Status
	Rank    int // 1 = best; set by the ranking stage
	Verdict *ClashVerdict
	Termini *TerminusScore
}

// ClashVerdict records the outcome of the marker proximity check.
type ClashVerdict struct {
	Clash   bool
	MinDist float64
	Radius  float64
	Marker  r3.Vec
}

// TerminusScore carries the exposure of both terminal residues and the
// advisory tag placement derived from them.
type TerminusScore struct {
	N, C        float64
	Recommended Terminus
}

// Failure pairs a design with the hard error that removed it from a stage.
type Failure struct {
	Design *Design
	Err    error
}
