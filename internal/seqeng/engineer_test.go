// internal/seqeng/engineer_test.go
package seqeng

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindprep/internal/design"
)

func designOf(id string, rank int, names ...string) *design.Design {
	d := structOf(names...)
	d.ID = id
	d.Rank = rank
	return d
}

func TestBuildNTagRemovesStartOnce(t *testing.T) {
	e := New(DefaultConfig())
	rec, err := e.Build(designOf("binder_s1_mpnn1", 1, "MET", "LYS", "VAL"), design.TerminusN)
	require.NoError(t, err)

	assert.Equal(t, "MKV", rec.Protein)
	assert.Equal(t, "MHHHHHHKV", rec.Tagged)
	assert.Equal(t, "binder_s1_mpnn1_N", rec.Label)
	assert.Equal(t, "N", rec.TagTerminus)
	assert.Equal(t, 1, rec.Rank)
}

// A double methionine start loses exactly one residue to the cassette.
func TestBuildNTagDoubleMethionine(t *testing.T) {
	e := New(DefaultConfig())
	rec, err := e.Build(designOf("binder_s1_mpnn2", 2, "MET", "MET", "LYS"), design.TerminusN)
	require.NoError(t, err)
	assert.Equal(t, "MHHHHHHMK", rec.Tagged)
}

func TestBuildNTagNoStartToTrim(t *testing.T) {
	e := New(DefaultConfig())
	rec, err := e.Build(designOf("binder_s1_mpnn3", 3, "LYS", "VAL"), design.TerminusN)
	require.NoError(t, err)
	assert.Equal(t, "MHHHHHHKV", rec.Tagged)
}

func TestBuildCTag(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinLenBP = 0
	e := New(cfg)

	rec, err := e.Build(designOf("binder_s2_mpnn1", 1, "MET", "LYS"), design.TerminusC)
	require.NoError(t, err)

	assert.Equal(t, "MKGSHHHHHH", rec.Tagged)
	assert.True(t, strings.HasSuffix(rec.DNA, "TGA"))
	assert.False(t, rec.Padded)
	assert.Equal(t, len(rec.DNA), rec.LengthBP)

	// The cassette survives the DNA round trip.
	back, err := FromDNA(rec.DNA)
	require.NoError(t, err)
	assert.Equal(t, "MKGSHHHHHH", back)
}

func TestAppendStopNeverDuplicates(t *testing.T) {
	assert.Equal(t, "ATGTGA", appendStop("ATGTGA", "TGA"))
	assert.Equal(t, "ATGTGA", appendStop("ATG", "TGA"))
	assert.Equal(t, "ATGTAA", appendStop("ATGTAA", "TGA"))
}

func TestBuildPadsToVendorMinimum(t *testing.T) {
	e := New(DefaultConfig())
	rec, err := e.Build(designOf("binder_s3_mpnn1", 1, "MET", "LYS", "VAL"), design.TerminusC)
	require.NoError(t, err)

	require.True(t, rec.Padded)
	assert.Equal(t, 300, rec.LengthBP)
	assert.Len(t, rec.DNA, 300)

	// The coding prefix is intact and terminated before the padding starts.
	coding, err := ToDNA(rec.Tagged)
	require.NoError(t, err)
	coding += "TGA"
	assert.Equal(t, coding, rec.DNA[:len(coding)])

	// Appended codons never read as start or stop in frame.
	tail := rec.DNA[len(coding):]
	require.Zero(t, len(tail)%3)
	for i := 0; i+3 <= len(tail); i += 3 {
		codon := tail[i : i+3]
		assert.NotEqual(t, "ATG", codon)
		assert.False(t, IsStopCodon(codon), codon)
	}
}

func TestPadRoundsUpToWholeCodons(t *testing.T) {
	dna := strings.Repeat("GCC", 10) // 30 bp
	out, padded := pad(dna, 100, "GGTTCTGCT")
	require.True(t, padded)
	assert.Len(t, out, 102) // 70 bp short rounds up to 72
	assert.Equal(t, dna, out[:30])

	same, padded := pad(dna, 30, "GGTTCTGCT")
	assert.False(t, padded)
	assert.Equal(t, dna, same)
}

func TestBuildLabelCollision(t *testing.T) {
	e := New(DefaultConfig())
	_, err := e.Build(designOf("1_1_binder_s4_mpnn1_model1", 1, "MET", "LYS"), design.TerminusC)
	require.NoError(t, err)

	// A second design collapsing to the same cleaned id and terminus collides.
	_, err = e.Build(designOf("2_2_binder_s4_mpnn1_model2", 2, "MET", "VAL"), design.TerminusC)
	var lc *design.LabelCollisionError
	require.True(t, errors.As(err, &lc))
	assert.Equal(t, "binder_s4_mpnn1_C", lc.Label)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty tag", func(c *Config) { c.Tag = "" }, false},
		{"bad stop codon", func(c *Config) { c.StopCodon = "TGG" }, false},
		{"ragged pad unit", func(c *Config) { c.PadUnit = "GGTT" }, false},
		{"empty pad unit", func(c *Config) { c.PadUnit = "" }, false},
		{"start in pad unit", func(c *Config) { c.PadUnit = "GCTATG" }, false},
		{"stop in pad unit", func(c *Config) { c.PadUnit = "GCTTGA" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
