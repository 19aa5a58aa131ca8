// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"bindprep/internal/cli"
	"bindprep/internal/cmdutil"
	"bindprep/internal/design"
	"bindprep/internal/jsonutil"
	"bindprep/internal/output"
	"bindprep/internal/pdbio"
	"bindprep/internal/pipeline"
	"bindprep/internal/seqeng"
	"bindprep/internal/statio"
	"bindprep/internal/version"
)

// RunContext wires CLI options through input loading, the pipeline and the
// chosen writer. Exit codes: 0 ok, 1 nothing survived, 2 usage/config,
// 3 runtime.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("bindprep")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "bindprep version %s\n", version.Version)
		return 0
	}

	designs, err := loadDesigns(opts.PDBPaths, opts.Chain[0])
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	store, err := statio.Load(opts.StatsFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	statio.Attach(store, designs)

	var decisions map[string]design.Terminus
	if opts.Decisions != "" {
		decisions, err = statio.LoadDecisions(opts.Decisions)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	engCfg := seqeng.DefaultConfig()
	engCfg.Tag = opts.Tag
	engCfg.Linker = opts.Linker
	engCfg.MinLenBP = opts.MinLength
	engCfg.RequireStop = opts.RequireStop
	if err := engCfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	res, err := pipeline.Run(parent, pipeline.Config{
		RankKeys:       opts.RankKeys,
		Marker:         opts.Marker,
		Radius:         opts.Radius,
		NeighborRadius: opts.NeighborRadius,
		DedupRMSD:      opts.DedupRMSD,
		Engineer:       engCfg,
		Decisions:      decisions,
		Threads:        opts.Threads,
	}, designs)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	for _, e := range res.Report.Entries() {
		cmdutil.Warnf(stderr, opts.Quiet, "%s: discarded at %s: %s (%s)", e.ID, e.Stage, e.Reason, e.Detail)
	}
	cmdutil.Infof(stderr, opts.Quiet, "%d designs in, %d records out, %d discarded (batch %s)",
		len(designs), len(res.Records), res.Report.Len(), res.Report.Batch)

	switch opts.Output {
	case cli.OutputText:
		err = output.WriteTSV(outw, res.Records, opts.Header)
	case cli.OutputCSV:
		err = output.WriteOrderCSV(outw, res.Records)
	case cli.OutputFASTA:
		err = output.WriteFASTA(outw, res.Records)
	case cli.OutputJSON:
		err = jsonutil.EncodePretty(outw, output.NewEnvelope(res.Records, res.Calls, res.Report))
	}
	if output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); output.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if len(res.Records) == 0 {
		return 1
	}
	return 0
}

// Run uses a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func loadDesigns(paths []string, chain byte) ([]*design.Design, error) {
	var designs []*design.Design
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if fi.IsDir() {
			ds, err := pdbio.ReadDir(p, chain)
			if err != nil {
				return nil, err
			}
			designs = append(designs, ds...)
			continue
		}
		d, err := pdbio.ReadDesign(p, chain)
		if err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}
	return designs, nil
}
