// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindprep/internal/report"
	"bindprep/pkg/api"
)

func sampleRecords() []api.SequenceRecordV1 {
	return []api.SequenceRecordV1{
		{ID: "binder_s1_mpnn1", Label: "binder_s1_mpnn1_C", Rank: 1,
			TagTerminus: "C", DNA: "ATGAAATGA", LengthBP: 9, Padded: false},
		{ID: "binder_s2_mpnn1", Label: "binder_s2_mpnn1_N", Rank: 2,
			TagTerminus: "N", DNA: "ATGGTGTGA", LengthBP: 9, Padded: true},
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, sampleRecords(), true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TSVHeader, lines[0])
	assert.Equal(t, "binder_s1_mpnn1_C\tbinder_s1_mpnn1\t1\tC\t9\tfalse\tATGAAATGA", lines[1])
	assert.Equal(t, "binder_s2_mpnn1_N\tbinder_s2_mpnn1\t2\tN\t9\ttrue\tATGGTGTGA", lines[2])
}

func TestWriteTSVNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, sampleRecords(), false))
	assert.False(t, strings.HasPrefix(buf.String(), "label"))
}

func TestWriteFASTA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, sampleRecords()[:1]))
	assert.Equal(t, ">binder_s1_mpnn1_C rank=1 terminus=C len=9\nATGAAATGA\n", buf.String())
}

func TestWriteOrderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOrderCSV(&buf, sampleRecords()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Tag_Terminus,Length_bp,Padded,Sequence", lines[0])
	assert.Equal(t, "binder_s1_mpnn1_C,C,9,false,ATGAAATGA", lines[1])
}

func TestEnvelopeJSON(t *testing.T) {
	rep := report.New()
	rep.Add("binder_s9_mpnn1", "clash", "clash", "min distance 2.00 Å inside 5.00 Å exclusion radius")

	env := NewEnvelope(sampleRecords(), []api.TagCallV1{
		{ID: "binder_s1_mpnn1", Rank: 1, NExposure: 0.2, CExposure: 0.5, Recommended: "C"},
	}, rep)
	assert.Equal(t, rep.Batch, env.Batch)

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "batch")
	assert.Contains(t, decoded, "records")
	assert.Contains(t, decoded, "tag_calls")
	assert.Contains(t, decoded, "discards")

	recs := decoded["records"].([]any)
	first := recs[0].(map[string]any)
	assert.Equal(t, "binder_s1_mpnn1_C", first["label"])
	assert.Equal(t, "C", first["tag_terminus"])
}
