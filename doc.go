// Package stickloop decides whether a set of straight sticks lying on a
// plane encloses a loop, and whether that loop beats the circle that could
// be bent from the wood left over.
//
// The decision runs as a pipeline of small packages:
//
//	geom/      — points, sticks and the tolerance kernel (rounding, Intersect)
//	resolve/   — every pairwise crossing, optionally on a worker pool
//	subdivide/ — sticks cut at their crossings into graph edges
//	core/      — the planar graph keyed by rounded coordinates
//	dfs/       — the first simple cycle, in a deterministic order
//	decision/  — shoelace area, leftover ledger and the verdict
//	judge/     — the pipeline itself, with stage logging
//
// Around it sit input/ (text and SVG readers), config/ (TOML settings),
// render/ (PNG pictures), builder/ (stick fixtures), dbg/ (readable vertex
// names) and the stickloop command.
//
// Quick example:
//
//	    ┌───┐
//	    │   │      four sticks, one loop of area 16,
//	    └───┘      nothing left over: the loop wins
//
//	k := geom.NewKernel()
//	sticks, _ := builder.BuildSticks(k, nil, builder.Square(4))
//	res, _ := judge.Run(ctx, sticks, judge.WithKernel(k))
//	fmt.Println(res.Label(decision.DefaultLabels())) // Kalyan
//
//	go install github.com/katalvlaran/stickloop/cmd/stickloop@latest
package stickloop
