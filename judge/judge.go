package judge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/stickloop/dbg"
	"github.com/katalvlaran/stickloop/decision"
	"github.com/katalvlaran/stickloop/dfs"
	"github.com/katalvlaran/stickloop/geom"
	"github.com/katalvlaran/stickloop/resolve"
	"github.com/katalvlaran/stickloop/subdivide"
)

// Run takes sticks through every stage and returns the verdict.
//
// Implementation:
//   - Stage 1: Resolve pairwise crossings (optionally on several workers).
//   - Stage 2: Split sticks into segments and build the planar graph.
//   - Stage 3: Search for the first cycle; none ends the run with
//     NoStructure.
//   - Stage 4: Measure the cycle, account stick usage, compute the
//     reference area and decide.
//
// Errors:
//   - ctx.Err() if ctx is done before or during the cycle search.
//   - wrapped resolve, subdivide, dfs and decision errors.
//
// "No cycle" is a verdict, not an error.
func Run(ctx context.Context, sticks []geom.Stick, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := o.logger
	t0 := time.Now()
	res := &Result{Stage: StageInput}
	log.Debug(res.Stage.String(), "sticks", len(sticks), "workers", o.workers)

	inc, err := resolve.Resolve(sticks, resolve.WithKernel(o.kernel), resolve.WithWorkers(o.workers))
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	res.Crossings = inc.Crossings
	res.advance(log, StageIntersections, t0, "crossings", len(inc.Crossings))

	res.Segments = subdivide.Split(inc)
	res.advance(log, StageSubdivided, t0, "segments", len(res.Segments))

	g, err := subdivide.BuildGraph(res.Segments, o.kernel)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	res.Graph = g
	res.advance(log, StageGraphBuilt, t0, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	res.advance(log, StageSearching, t0)
	dopts := []dfs.Option{dfs.WithContext(ctx)}
	if o.debugNames {
		dopts = append(dopts, dfs.WithOnVisit(func(k geom.Key) error {
			log.Debug("visit", "vertex", dbg.Name(k), "key", k.String())
			return nil
		}))
	}
	found, keys, err := dfs.FindCycle(g, dopts...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if !found {
		res.Verdict = decision.NoStructure
		res.advance(log, StageExhausted, t0)
		log.Info("verdict", "verdict", res.Verdict.String())

		return res, nil
	}

	res.Found = true
	res.CycleKeys = keys
	if res.Cycle, err = g.Points(keys); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	canon := dfs.Canonical(keys)
	attrs := []any{"length", len(keys), "cycle", fmt.Sprint(canon)}
	if o.debugNames {
		attrs = append(attrs, "names", dbg.Names(canon))
	}
	res.advance(log, StageFound, t0, attrs...)

	if res.Ledger, err = decision.Account(g, keys, inc.Sticks); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	res.CycleArea = decision.PolygonArea(res.Cycle)
	res.ReferenceArea = decision.ReferenceArea(res.Ledger.Remaining, o.kernel.Epsilon())
	res.Verdict = decision.Decide(true, res.CycleArea, res.ReferenceArea)
	res.advance(log, StageDecided, t0,
		"perimeter", res.Ledger.Perimeter,
		"remaining", res.Ledger.Remaining)
	log.Info("verdict",
		"verdict", res.Verdict.String(),
		"cycle_area", res.CycleArea,
		"reference_area", res.ReferenceArea)

	return res, nil
}

// advance moves r to s and logs the transition.
func (r *Result) advance(log *slog.Logger, s Stage, t0 time.Time, attrs ...any) {
	r.Stage = s
	log.Debug(s.String(), append(attrs, "elapsed", time.Since(t0))...)
}
