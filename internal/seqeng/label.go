// internal/seqeng/label.go
package seqeng

import (
	"regexp"

	"bindprep/internal/design"
)

var (
	rankPrefixRe    = regexp.MustCompile(`^\d+_\d+_`)
	modelSuffixRe   = regexp.MustCompile(`_model\d+.*$`)
	alignedSuffixRe = regexp.MustCompile(`_aligned.*$`)
)

// CleanID strips podium rank prefixes and model/alignment suffixes from a
// design id, leaving the stable core (e.g. "binder_s42_mpnn3") suitable for
// a tube label.
func CleanID(id string) string {
	id = rankPrefixRe.ReplaceAllString(id, "")
	id = modelSuffixRe.ReplaceAllString(id, "")
	id = alignedSuffixRe.ReplaceAllString(id, "")
	return id
}

// Label derives the standardized tube name: cleaned id plus the tag terminus
// suffix.
func Label(id string, term design.Terminus) string {
	return CleanID(id) + "_" + term.String()
}

// LabelSet is the batch-wide label namespace, the single shared resource of
// the engineering stage. Claims are read-before-write.
type LabelSet struct {
	byLabel map[string]string // label -> claiming design id
}

func NewLabelSet() *LabelSet {
	return &LabelSet{byLabel: make(map[string]string)}
}

// Claim reserves label for id, or fails with LabelCollisionError if another
// design already holds it.
func (s *LabelSet) Claim(label, id string) error {
	if other, ok := s.byLabel[label]; ok {
		return &design.LabelCollisionError{Label: label, ID: id, OtherID: other}
	}
	s.byLabel[label] = id
	return nil
}
