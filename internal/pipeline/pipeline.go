// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"bindprep/internal/clash"
	"bindprep/internal/dedup"
	"bindprep/internal/design"
	"bindprep/internal/rank"
	"bindprep/internal/report"
	"bindprep/internal/seqeng"
	"bindprep/internal/terminus"
	"bindprep/pkg/api"
)

// Stage names used in the discard report.
const (
	StageRank     = "rank"
	StageClash    = "clash"
	StageDedup    = "dedup"
	StageEngineer = "engineer"
)

// Config controls one batch run.
type Config struct {
	RankKeys       []string
	Marker         r3.Vec
	Radius         float64
	NeighborRadius float64
	DedupRMSD      float64
	Engineer       seqeng.Config

	// Decisions maps design id to the externally confirmed tag terminus.
	// Designs without an entry follow the analyzer's recommendation.
	Decisions map[string]design.Terminus

	Threads int // worker goroutines for per-design stages (0 = all CPUs)
}

// Result is the downstream hand-off: engineered records in rank order, the
// advisory tag calls, and the discard report.
type Result struct {
	Records []api.SequenceRecordV1
	Calls   []api.TagCallV1
	Report  *report.Report
}

// Run executes all stages over the batch. Hard per-design errors land in
// the report and never abort the batch; only context cancellation does.
func Run(ctx context.Context, cfg Config, designs []*design.Design) (Result, error) {
	res := Result{Report: report.New()}

	ranked, failed := rank.New(cfg.RankKeys...).Rank(designs)
	for _, f := range failed {
		f.Design.Status = design.StatusDiscarded
		res.Report.Add(f.Design.ID, StageRank, "error", f.Err.Error())
	}

	filter := clash.Filter{Marker: cfg.Marker, Radius: cfg.Radius}
	if err := forEach(ctx, cfg.Threads, ranked, func(d *design.Design) {
		v := filter.Check(d)
		d.Verdict = &v
	}); err != nil {
		return res, err
	}
	feasible := ranked[:0:0]
	for _, d := range ranked {
		if d.Verdict.Clash {
			d.Status = design.StatusClashRejected
			res.Report.Add(d.ID, StageClash, design.ReasonClash,
				fmt.Sprintf("min distance %.2f Å inside %.2f Å exclusion radius", d.Verdict.MinDist, d.Verdict.Radius))
			continue
		}
		feasible = append(feasible, d)
	}

	analyzer := terminus.Analyzer{Radius: cfg.NeighborRadius}
	if err := forEach(ctx, cfg.Threads, feasible, func(d *design.Design) {
		ts := analyzer.Score(d)
		d.Termini = &ts
		d.Status = design.StatusTagAnalyzed
	}); err != nil {
		return res, err
	}
	for _, d := range feasible {
		res.Calls = append(res.Calls, api.TagCallV1{
			ID:          d.ID,
			Rank:        d.Rank,
			NExposure:   d.Termini.N,
			CExposure:   d.Termini.C,
			Recommended: d.Termini.Recommended.String(),
		})
	}

	dd := dedup.Deduplicator{Tolerance: cfg.DedupRMSD}
	kept, _, groups := dd.Apply(feasible)
	for _, g := range groups {
		for _, d := range g.Dropped {
			d.Status = design.StatusDiscarded
			res.Report.Add(d.ID, StageDedup, design.ReasonRedundant,
				fmt.Sprintf("same base fold as %s (seed %d)", g.Kept.ID, g.Seed))
		}
	}
	for _, d := range kept {
		d.Status = design.StatusDeduplicated
	}

	// Engineering is serial: the label namespace is shared across the
	// batch and collision outcomes must not depend on scheduling.
	eng := seqeng.New(cfg.Engineer)
	for _, d := range kept {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		term := d.Termini.Recommended
		if t, ok := cfg.Decisions[d.ID]; ok {
			term = t
		}
		rec, err := eng.Build(d, term)
		if err != nil {
			d.Status = design.StatusDiscarded
			res.Report.Add(d.ID, StageEngineer, "error", err.Error())
			continue
		}
		d.Status = design.StatusEngineered
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// forEach applies fn to every design over bounded workers. fn mutates only
// its own design, so no synchronization beyond the group is needed.
func forEach(ctx context.Context, threads int, ds []*design.Design, fn func(*design.Design)) error {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for _, d := range ds {
		d := d
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(d)
			return nil
		})
	}
	return g.Wait()
}
