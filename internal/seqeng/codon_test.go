// internal/seqeng/codon_test.go
package seqeng

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindprep/internal/design"
)

func structOf(names ...string) *design.Design {
	d := &design.Design{ID: "d"}
	for _, n := range names {
		d.Structure = append(d.Structure, design.Residue{Name: n})
	}
	return d
}

func TestTranslateStructure(t *testing.T) {
	p, err := TranslateStructure(structOf("ALA", "GLY", "HIS"))
	require.NoError(t, err)
	assert.Equal(t, "AGH", p)
}

func TestTranslateStructureCaseAndPadding(t *testing.T) {
	p, err := TranslateStructure(structOf("ala", " met", "TRP "))
	require.NoError(t, err)
	assert.Equal(t, "AMW", p)
}

func TestTranslateStructureUnknownResidue(t *testing.T) {
	_, err := TranslateStructure(structOf("ALA", "XYZ"))
	var ur *design.UnknownResidueError
	require.True(t, errors.As(err, &ur))
	assert.Equal(t, "XYZ", ur.Name)
	assert.Equal(t, 1, ur.Pos)
}

func TestRoundTrip(t *testing.T) {
	const protein = "MAGHKLWFYVDESTNQCRIP"
	dna, err := ToDNA(protein)
	require.NoError(t, err)
	require.Len(t, dna, 3*len(protein))

	back, err := FromDNA(dna)
	require.NoError(t, err)
	assert.Equal(t, protein, back)
}

func TestToDNAUnknownResidue(t *testing.T) {
	_, err := ToDNA("MAX")
	assert.Error(t, err)
}

func TestFromDNAStopsAtFirstStop(t *testing.T) {
	dna, err := ToDNA("MK")
	require.NoError(t, err)
	p, err := FromDNA(dna + "TGA" + "AAA")
	require.NoError(t, err)
	assert.Equal(t, "MK", p)
}

func TestFromDNAOutsideTable(t *testing.T) {
	_, err := FromDNA("NNN")
	assert.Error(t, err)
}

func TestIsStopCodon(t *testing.T) {
	for _, c := range []string{"TAA", "TAG", "TGA"} {
		assert.True(t, IsStopCodon(c), c)
	}
	assert.False(t, IsStopCodon("ATG"))
	assert.False(t, IsStopCodon("TG"))
}
