package subdivide

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stickloop/core"
	"github.com/katalvlaran/stickloop/geom"
	"github.com/katalvlaran/stickloop/resolve"
)

// Segment is the piece of a stick between two consecutive points on it.
type Segment struct {
	From, To geom.Point
	Stick    int
	Length   float64
}

// Split returns the deduplicated sub-segments of every stick in inc.
//
// Implementation:
//   - Stage 1: For each stick, drop associated points that fail OnSegment.
//   - Stage 2: Stable-sort the rest by distance from A.
//   - Stage 3: Emit adjacent pairs longer than Epsilon, skipping any whose
//     undirected key was already emitted.
func Split(inc *resolve.Incidence) []Segment {
	k := inc.Kernel()
	eps := k.Epsilon()
	seen := make(map[geom.PairKey]bool)
	var out []Segment

	for _, s := range inc.Sticks {
		pts, err := inc.PointsOn(s.ID)
		if err != nil {
			// Sticks always come from the incidence itself.
			continue
		}
		pts = onStick(k, s, pts)
		sort.SliceStable(pts, func(i, j int) bool {
			return geom.Distance(pts[i], s.A) < geom.Distance(pts[j], s.A)
		})

		for i := 0; i+1 < len(pts); i++ {
			u, v := pts[i], pts[i+1]
			d := geom.Distance(u, v)
			if d <= eps {
				continue
			}
			pk := geom.PairOf(k.Key(u), k.Key(v))
			if seen[pk] {
				continue
			}
			seen[pk] = true
			out = append(out, Segment{From: u, To: v, Stick: s.ID, Length: d})
		}
	}

	return out
}

// onStick filters pts in place down to those lying on s.
func onStick(k geom.Kernel, s geom.Stick, pts []geom.Point) []geom.Point {
	kept := pts[:0]
	for _, p := range pts {
		if k.OnSegment(p, s.A, s.B) {
			kept = append(kept, p)
		}
	}

	return kept
}

// BuildGraph inserts segs, in order, into a new graph using kernel k.
// A duplicate or degenerate segment surfaces the core sentinel error.
func BuildGraph(segs []Segment, k geom.Kernel) (*core.Graph, error) {
	g := core.NewGraph(core.WithKernel(k))
	for i, s := range segs {
		if _, err := g.AddEdge(s.From, s.To, s.Stick, s.Length); err != nil {
			return nil, fmt.Errorf("BuildGraph: segment %d of stick %d: %w", i, s.Stick, err)
		}
	}

	return g, nil
}
