// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"bindprep/internal/version"
)

// Output formats.
const (
	OutputText  = "text"
	OutputCSV   = "csv"
	OutputFASTA = "fasta"
	OutputJSON  = "json"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	PDBPaths  []string // files or directories of aligned models
	StatsFile string
	Chain     string

	// Clash filter
	Marker r3.Vec
	Radius float64

	// Terminus analysis
	NeighborRadius float64

	// Deduplication
	DedupRMSD float64

	// Sequence engineering
	Tag         string
	Linker      string
	MinLength   int
	RequireStop bool
	Decisions   string // CSV of confirmed tag placements

	// Ranking
	RankKeys []string

	// Output
	Output string
	Header bool // true unless --no-header

	// Performance
	Threads int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: binder post-prediction pipeline (rank, clash-filter, tag, dedup, engineer)

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var marker string
	var rankKeys string

	// Inputs
	var pdb stringSlice
	fs.Var(&pdb, "pdb", "aligned PDB file or directory (repeatable) [*]")
	fs.StringVar(&opt.StatsFile, "stats", "", "consolidated stats CSV (Design, Average_i_pTM, Average_i_pAE) [*]")
	fs.StringVar(&opt.Chain, "chain", "B", "binder chain id [B]")

	// Clash filter
	fs.StringVar(&marker, "marker", "", "glycosylation-site proxy coordinate as x,y,z [*]")
	fs.Float64Var(&opt.Radius, "radius", 5.0, "marker exclusion radius in Å [5.0]")

	// Terminus analysis
	fs.Float64Var(&opt.NeighborRadius, "neighbor-radius", 10.0, "Cα neighbor radius for exposure scoring in Å [10.0]")

	// Deduplication
	fs.Float64Var(&opt.DedupRMSD, "dedup-rmsd", 2.0, "max Cα RMSD in Å for same-seed designs to count as duplicates [2.0]")

	// Sequence engineering
	fs.StringVar(&opt.Tag, "tag", "HHHHHH", "purification tag residues [HHHHHH]")
	fs.StringVar(&opt.Linker, "linker", "GS", "linker before a C-terminal tag [GS]")
	fs.IntVar(&opt.MinLength, "min-length", 300, "vendor minimum synthesis length in bp [300]")
	requireStop := true
	fs.BoolVar(&requireStop, "require-stop", true, "append a stop codon even for N-terminal tags [true]")
	fs.StringVar(&opt.Decisions, "decisions", "", "CSV of confirmed tag placements (id,terminus); overrides recommendations")

	// Ranking
	fs.StringVar(&rankKeys, "rank-keys", "iptm,ipae", "comma-separated metric priority, descending on each [iptm,ipae]")

	// Output
	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | csv | fasta | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads for per-design stages (0 = all CPUs) [0]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings and the run summary [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.PDBPaths = pdb
	opt.Header = !noHeader
	opt.RequireStop = requireStop

	// Validation
	if len(opt.PDBPaths) == 0 {
		return opt, errors.New("at least one --pdb file or directory is required")
	}
	if opt.StatsFile == "" {
		return opt, errors.New("--stats is required")
	}
	if len(opt.Chain) != 1 {
		return opt, fmt.Errorf("--chain must be a single character, got %q", opt.Chain)
	}
	if marker == "" {
		return opt, errors.New("--marker x,y,z is required")
	}
	v, err := parseMarker(marker)
	if err != nil {
		return opt, err
	}
	opt.Marker = v
	if opt.Radius < 0 {
		return opt, fmt.Errorf("--radius must be >= 0, got %g", opt.Radius)
	}
	if opt.NeighborRadius <= 0 {
		return opt, fmt.Errorf("--neighbor-radius must be > 0, got %g", opt.NeighborRadius)
	}
	if opt.DedupRMSD < 0 {
		return opt, fmt.Errorf("--dedup-rmsd must be >= 0, got %g", opt.DedupRMSD)
	}
	if opt.MinLength < 0 {
		return opt, fmt.Errorf("--min-length must be >= 0, got %d", opt.MinLength)
	}
	for _, k := range strings.Split(rankKeys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			opt.RankKeys = append(opt.RankKeys, k)
		}
	}
	if len(opt.RankKeys) == 0 {
		return opt, errors.New("--rank-keys must name at least one metric")
	}
	switch opt.Output {
	case OutputText, OutputCSV, OutputFASTA, OutputJSON:
	default:
		return opt, fmt.Errorf("--output must be text, csv, fasta or json, got %q", opt.Output)
	}
	return opt, nil
}

func parseMarker(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("--marker must be x,y,z, got %q", s)
	}
	var xyz [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("--marker component %d: %w", i+1, err)
		}
		xyz[i] = v
	}
	return r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// stringSlice implements flag.Value for repeatable flags.
type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}
