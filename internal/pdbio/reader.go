// internal/pdbio/reader.go
package pdbio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"bindprep/internal/design"
)

// Naming conventions of the upstream design runs: files carry the
// generation seed and sequence-design variant as "..._s<seed>_mpnn<n>...".
var (
	seedRe  = regexp.MustCompile(`_s(\d+)_`)
	identRe = regexp.MustCompile(`s\d+_mpnn\d+`)
)

// Ident extracts the stable "s<seed>_mpnn<n>" core used to match stats rows
// to structure files. Falls back to the full id when the pattern is absent.
func Ident(id string) string {
	if m := identRe.FindString(id); m != "" {
		return m
	}
	return id
}

// Seed parses the generation seed out of an id.
func Seed(id string) (int, bool) {
	m := seedRe.FindStringSubmatch(id)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ReadDesign parses one aligned PDB file into a Design, keeping the Cα atom
// of every residue on the requested chain. Only the fixed ATOM columns
// needed here are read; anything else in the file is ignored.
func ReadDesign(path string, chain byte) (*design.Design, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	d := &design.Design{ID: id, Orientation: "aligned", Status: design.StatusCandidate}
	if seed, ok := Seed(id); ok {
		d.Seed = seed
	}

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if len(line) < 54 || strings.TrimSpace(line[0:6]) != "ATOM" {
			continue
		}
		if strings.TrimSpace(line[12:16]) != "CA" {
			continue
		}
		// Skip alternate locations beyond the first.
		if alt := line[16]; alt != ' ' && alt != 'A' {
			continue
		}
		if line[21] != chain {
			continue
		}
		x, err := parseCoord(line[30:38])
		if err != nil {
			return nil, fmt.Errorf("pdb %s: line %d: %w", path, lineNo, err)
		}
		y, err := parseCoord(line[38:46])
		if err != nil {
			return nil, fmt.Errorf("pdb %s: line %d: %w", path, lineNo, err)
		}
		z, err := parseCoord(line[46:54])
		if err != nil {
			return nil, fmt.Errorf("pdb %s: line %d: %w", path, lineNo, err)
		}
		d.Structure = append(d.Structure, design.Residue{
			Name: strings.TrimSpace(line[17:20]),
			CA:   r3.Vec{X: x, Y: y, Z: z},
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pdb %s: scan: %w", path, err)
	}
	if len(d.Structure) == 0 {
		return nil, fmt.Errorf("pdb %s: no chain %c Cα atoms", path, chain)
	}
	return d, nil
}

// ReadDir loads every *.pdb under dir, sorted by file name for a
// deterministic batch order.
func ReadDir(dir string, chain byte) ([]*design.Design, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdb"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no PDB files in %s", dir)
	}
	sort.Strings(paths)

	designs := make([]*design.Design, 0, len(paths))
	for _, p := range paths {
		d, err := ReadDesign(p, chain)
		if err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}
	return designs, nil
}

func parseCoord(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q: %w", strings.TrimSpace(field), err)
	}
	return v, nil
}
