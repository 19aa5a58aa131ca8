// internal/output/output.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"bindprep/internal/report"
	"bindprep/pkg/api"
)

// TSVHeader is the canonical header row for text output. Keep this as the
// single source of truth; all text writers use it.
const TSVHeader = "label\tid\trank\ttag_terminus\tlength_bp\tpadded\tdna"

// WriteTSV writes records as a tab-delimited table.
func WriteTSV(w io.Writer, recs []api.SequenceRecordV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%t\t%s\n",
			r.Label, r.ID, r.Rank, r.TagTerminus, r.LengthBP, r.Padded, r.DNA,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA writes the final DNA sequences as FASTA records, labelled with
// the tube name.
func WriteFASTA(w io.Writer, recs []api.SequenceRecordV1) error {
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, ">%s rank=%d terminus=%s len=%d\n%s\n",
			r.Label, r.Rank, r.TagTerminus, r.LengthBP, r.DNA,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteOrderCSV writes the vendor order form: one construct per row with
// the fields the synthesis order sheet expects.
func WriteOrderCSV(w io.Writer, recs []api.SequenceRecordV1) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Tag_Terminus", "Length_bp", "Padded", "Sequence"}); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write([]string{
			r.Label, r.TagTerminus, strconv.Itoa(r.LengthBP), strconv.FormatBool(r.Padded), r.DNA,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Envelope is the JSON output document: records, advisory tag calls and the
// discard report in one artifact.
type Envelope struct {
	Batch    string                 `json:"batch"`
	Records  []api.SequenceRecordV1 `json:"records"`
	TagCalls []api.TagCallV1        `json:"tag_calls"`
	Discards []api.DiscardV1        `json:"discards"`
}

// NewEnvelope assembles the JSON document from a pipeline result.
func NewEnvelope(recs []api.SequenceRecordV1, calls []api.TagCallV1, rep *report.Report) Envelope {
	return Envelope{
		Batch:    rep.Batch,
		Records:  recs,
		TagCalls: calls,
		Discards: rep.Entries(),
	}
}
