package judge

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/stickloop/core"
	"github.com/katalvlaran/stickloop/decision"
	"github.com/katalvlaran/stickloop/geom"
	"github.com/katalvlaran/stickloop/resolve"
	"github.com/katalvlaran/stickloop/subdivide"
)

// Stage is a step of the pipeline.
type Stage int

const (
	StageInput Stage = iota
	StageIntersections
	StageSubdivided
	StageGraphBuilt
	StageSearching
	StageFound
	StageExhausted
	StageDecided
)

var stageNames = [...]string{
	StageInput:         "input",
	StageIntersections: "intersections computed",
	StageSubdivided:    "subdivided",
	StageGraphBuilt:    "graph built",
	StageSearching:     "searching",
	StageFound:         "found",
	StageExhausted:     "exhausted",
	StageDecided:       "decision computed",
}

// String returns the stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}

	return stageNames[s]
}

// Result is everything a run produced.
type Result struct {
	Verdict decision.Verdict
	Found   bool

	// Cycle and CycleKeys are the found loop, in traversal order, without
	// repeating the first vertex. Both are nil when nothing was found.
	Cycle     []geom.Point
	CycleKeys []geom.Key

	CycleArea     float64
	ReferenceArea float64

	// Ledger is nil when nothing was found.
	Ledger *decision.Ledger

	Crossings []resolve.Crossing
	Segments  []subdivide.Segment
	Graph     *core.Graph

	// Stage is the terminal stage: StageDecided or StageExhausted.
	Stage Stage
}

// Label returns the word for r.Verdict.
func (r *Result) Label(l decision.Labels) string {
	return l.For(r.Verdict)
}

// Option configures Run.
type Option func(*options)

type options struct {
	kernel     geom.Kernel
	workers    int
	logger     *slog.Logger
	debugNames bool
}

func defaultOptions() options {
	return options{
		kernel:  geom.NewKernel(),
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithKernel sets the geometry kernel. It should match the kernel the
// sticks were built with.
func WithKernel(k geom.Kernel) Option {
	return func(o *options) { o.kernel = k }
}

// WithWorkers sets the number of goroutines for the intersection pass.
// A value below 1 selects runtime.NumCPU().
func WithWorkers(n int) Option {
	if n < 1 {
		n = runtime.NumCPU()
	}
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger for stage transitions. A nil logger has no
// effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDebugNames logs every vertex entered by the cycle search, under a
// readable name, at debug level.
func WithDebugNames() Option {
	return func(o *options) { o.debugNames = true }
}
