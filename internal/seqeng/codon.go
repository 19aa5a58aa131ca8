// internal/seqeng/codon.go
package seqeng

import (
	"fmt"
	"strings"

	"bindprep/internal/design"
)

// threeToOne maps PDB residue names to 1-letter codes. Canonical 20 only;
// anything else is an UnknownResidue hard error, never an 'X' placeholder.
var threeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLN": 'Q', "GLU": 'E', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
}

// codonByAA assigns one fixed codon per residue (common high-usage E. coli
// codons; His/Gly/Ser match the tag cassette used on previous orders). A
// deterministic table keeps protein→DNA→protein exactly idempotent, which a
// frequency-sampled optimizer cannot.
var codonByAA = map[byte]string{
	'A': "GCC", 'R': "CGT", 'N': "AAC", 'D': "GAT", 'C': "TGC",
	'Q': "CAG", 'E': "GAA", 'G': "GGC", 'H': "CAC", 'I': "ATT",
	'L': "CTG", 'K': "AAA", 'M': "ATG", 'F': "TTT", 'P': "CCG",
	'S': "TCC", 'T': "ACC", 'W': "TGG", 'Y': "TAT", 'V': "GTG",
}

var aaByCodon = func() map[string]byte {
	m := make(map[string]byte, len(codonByAA))
	for aa, c := range codonByAA {
		m[c] = aa
	}
	return m
}()

var stopCodons = map[string]struct{}{
	"TAA": {}, "TAG": {}, "TGA": {},
}

// TranslateStructure maps the ordered residue names of a design to 1-letter
// codes.
func TranslateStructure(d *design.Design) (string, error) {
	buf := make([]byte, len(d.Structure))
	for i, r := range d.Structure {
		aa, ok := threeToOne[strings.ToUpper(strings.TrimSpace(r.Name))]
		if !ok {
			return "", &design.UnknownResidueError{ID: d.ID, Name: r.Name, Pos: i}
		}
		buf[i] = aa
	}
	return string(buf), nil
}

// ToDNA reverse-translates 1-letter codes with the fixed codon table.
func ToDNA(protein string) (string, error) {
	var sb strings.Builder
	sb.Grow(3 * len(protein))
	for i := 0; i < len(protein); i++ {
		c, ok := codonByAA[protein[i]]
		if !ok {
			return "", fmt.Errorf("no codon for residue %q at position %d", protein[i], i)
		}
		sb.WriteString(c)
	}
	return sb.String(), nil
}

// FromDNA translates a coding region back to 1-letter codes, stopping at the
// first in-frame stop codon.
func FromDNA(dna string) (string, error) {
	var sb strings.Builder
	for i := 0; i+3 <= len(dna); i += 3 {
		codon := dna[i : i+3]
		if _, stop := stopCodons[codon]; stop {
			break
		}
		aa, ok := aaByCodon[codon]
		if !ok {
			return "", fmt.Errorf("codon %q at %d outside the coding table", codon, i)
		}
		sb.WriteByte(aa)
	}
	return sb.String(), nil
}

// IsStopCodon reports whether the three bases form a stop codon.
func IsStopCodon(codon string) bool {
	_, ok := stopCodons[codon]
	return ok
}
