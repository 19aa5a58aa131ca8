// internal/seqeng/engineer.go
package seqeng

import (
	"fmt"
	"strings"

	"bindprep/internal/design"
	"bindprep/pkg/api"
)

// Config holds the vendor and vector constraints for sequence engineering.
type Config struct {
	Tag         string // purification tag residues
	Linker      string // linker preceding a C-terminal tag
	StopCodon   string
	MinLenBP    int    // vendor minimum synthesis length
	PadUnit     string // neutral codons appended to reach MinLenBP
	RequireStop bool   // demand explicit termination even without a C-tag
}

// DefaultConfig matches the previous order batch: 6xHis tag behind a GS
// linker, TGA termination, 300 bp vendor minimum.
func DefaultConfig() Config {
	return Config{
		Tag:         "HHHHHH",
		Linker:      "GS",
		StopCodon:   "TGA",
		MinLenBP:    300,
		PadUnit:     "GGTTCTGCT",
		RequireStop: true,
	}
}

// Validate checks the padding and termination configuration. The pad unit
// must hold whole codons, none of which may read as a start or stop.
func (cfg Config) Validate() error {
	if cfg.Tag == "" {
		return fmt.Errorf("empty tag sequence")
	}
	if !IsStopCodon(cfg.StopCodon) {
		return fmt.Errorf("stop codon %q is not TAA/TAG/TGA", cfg.StopCodon)
	}
	if cfg.PadUnit == "" || len(cfg.PadUnit)%3 != 0 {
		return fmt.Errorf("pad unit %q is not whole codons", cfg.PadUnit)
	}
	for i := 0; i+3 <= len(cfg.PadUnit); i += 3 {
		codon := cfg.PadUnit[i : i+3]
		if codon == "ATG" || IsStopCodon(codon) {
			return fmt.Errorf("pad unit codon %q would read as start/stop", codon)
		}
	}
	return nil
}

// Engineer turns surviving designs into synthesis-ready records. Each step
// consumes the previous step's output; a failure aborts only the offending
// design, never the batch.
type Engineer struct {
	cfg    Config
	labels *LabelSet
}

func New(cfg Config) *Engineer {
	return &Engineer{cfg: cfg, labels: NewLabelSet()}
}

// Build runs the ordered transformations for one design with a confirmed
// tag terminus: translate, label, tag insertion, start-codon cleanup, stop
// handling, reverse-translation and padding.
func (e *Engineer) Build(d *design.Design, term design.Terminus) (api.SequenceRecordV1, error) {
	protein, err := TranslateStructure(d)
	if err != nil {
		return api.SequenceRecordV1{}, err
	}

	label := Label(d.ID, term)
	if err := e.labels.Claim(label, d.ID); err != nil {
		return api.SequenceRecordV1{}, err
	}

	tagged := insertTag(protein, term, e.cfg)
	tagged = trimRedundantStart(tagged, term, e.cfg)

	dna, err := ToDNA(tagged)
	if err != nil {
		return api.SequenceRecordV1{}, err
	}
	if e.cfg.needsStop(term) {
		dna = appendStop(dna, e.cfg.StopCodon)
	}
	final, padded := pad(dna, e.cfg.MinLenBP, e.cfg.PadUnit)

	return api.SequenceRecordV1{
		ID:          d.ID,
		Label:       label,
		Rank:        d.Rank,
		TagTerminus: term.String(),
		Protein:     protein,
		Tagged:      tagged,
		DNA:         final,
		LengthBP:    len(final),
		Padded:      padded,
	}, nil
}

// insertTag places the purification tag at the confirmed terminus. An
// N-terminal cassette carries its own start methionine; a C-terminal tag
// sits behind the linker.
func insertTag(protein string, term design.Terminus, cfg Config) string {
	if term == design.TerminusN {
		return "M" + cfg.Tag + protein
	}
	return protein + cfg.Linker + cfg.Tag
}

// trimRedundantStart drops the design's own start methionine when the
// N-terminal cassette already provides one. Exactly one residue is removed,
// never more.
func trimRedundantStart(tagged string, term design.Terminus, cfg Config) string {
	if term != design.TerminusN {
		return tagged
	}
	head := 1 + len(cfg.Tag)
	if len(tagged) > head && tagged[head] == 'M' {
		return tagged[:head] + tagged[head+1:]
	}
	return tagged
}

// needsStop: C-terminal tags always terminate explicitly; otherwise the
// configuration decides (vectors without their own terminator demand one).
func (cfg Config) needsStop(term design.Terminus) bool {
	return term == design.TerminusC || cfg.RequireStop
}

// appendStop terminates dna unless a stop codon is already in place. Never
// duplicates.
func appendStop(dna, stop string) string {
	if len(dna) >= 3 && IsStopCodon(dna[len(dna)-3:]) {
		return dna
	}
	return dna + stop
}

// pad appends whole neutral codons until dna reaches min bp. The coding
// prefix is never touched, the frame never shifts, and the appended region
// carries no in-frame start or stop (guaranteed by Config.Validate).
func pad(dna string, min int, unit string) (string, bool) {
	if len(dna) >= min {
		return dna, false
	}
	need := min - len(dna)
	if rem := need % 3; rem != 0 {
		need += 3 - rem
	}
	reps := need/len(unit) + 1
	return dna + strings.Repeat(unit, reps)[:need], true
}
