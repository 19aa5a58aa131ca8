// pkg/api/records_v1.go
package api

// SequenceRecordV1 is the stable JSON schema for an engineered construct.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SequenceRecordV1 struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Rank        int    `json:"rank"`
	TagTerminus string `json:"tag_terminus"` // "N" | "C"
	Protein     string `json:"protein"`
	Tagged      string `json:"tagged"`
	DNA         string `json:"dna"`
	LengthBP    int    `json:"length_bp"`
	Padded      bool   `json:"padded"`
}

// TagCallV1 is the stable schema for an advisory terminus recommendation,
// surfaced for external confirmation before sequence engineering.
type TagCallV1 struct {
	ID          string  `json:"id"`
	Rank        int     `json:"rank"`
	NExposure   float64 `json:"n_exposure"`
	CExposure   float64 `json:"c_exposure"`
	Recommended string  `json:"recommended_terminus"` // "N" | "C"
}

// DiscardV1 is the stable schema for one discard-report entry.
type DiscardV1 struct {
	ID     string `json:"id"`
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}
