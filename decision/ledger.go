package decision

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stickloop/core"
	"github.com/katalvlaran/stickloop/geom"
)

var (
	// ErrEdgeMissing indicates two consecutive cycle vertices with no edge
	// between them.
	ErrEdgeMissing = errors.New("decision: cycle edge not in graph")

	// ErrUnknownStick indicates a cycle edge cut from a stick that is not
	// in the stick list.
	ErrUnknownStick = errors.New("decision: edge from unknown stick")
)

// Usage is the account of one stick.
type Usage struct {
	Stick    int
	Length   float64 // full stick length
	Used     float64 // length of the stick's edges on the cycle
	Leftover float64 // Length - Used, never negative
}

// Ledger is the length accounting of a cycle against the input sticks.
type Ledger struct {
	// Sticks holds one Usage per input stick, in input order.
	Sticks []Usage

	// Edges lists the IDs of the graph edges on the cycle, each once,
	// in cycle order.
	Edges []string

	// Perimeter is the summed length of Edges.
	Perimeter float64

	// Total is the summed length of every stick.
	Total float64

	// Remaining is the summed Leftover, the length not consumed by the cycle.
	Remaining float64
}

// Account charges the edges of cycle to the sticks they were cut from.
//
// Implementation:
//   - Stage 1: Index sticks by ID.
//   - Stage 2: For every consecutive pair of cycle (wrapping around), take
//     the first edge between them; skip edges already charged; add the
//     edge length to its stick's Used.
//   - Stage 3: Leftover = Length - Used per stick, clamped at 0 to absorb
//     rounding; Remaining is their sum.
//
// Errors:
//   - ErrEdgeMissing: a consecutive pair is not joined by an edge.
//   - ErrUnknownStick: an edge names a stick absent from sticks.
//
// Complexity: O(L + n) for a cycle of L vertices and n sticks.
func Account(g *core.Graph, cycle []geom.Key, sticks []geom.Stick) (*Ledger, error) {
	l := &Ledger{Sticks: make([]Usage, len(sticks))}
	pos := make(map[int]int, len(sticks))
	for i, s := range sticks {
		pos[s.ID] = i
		l.Sticks[i] = Usage{Stick: s.ID, Length: s.Length}
		l.Total += s.Length
	}

	charged := make(map[string]bool, len(cycle))
	for i, a := range cycle {
		b := cycle[(i+1)%len(cycle)]
		e, err := g.EdgeBetween(a, b)
		if err != nil {
			return nil, fmt.Errorf("Account: %s-%s: %w", a, b, ErrEdgeMissing)
		}
		if charged[e.ID] {
			continue
		}
		p, ok := pos[e.Stick]
		if !ok {
			return nil, fmt.Errorf("Account: edge %s stick %d: %w", e.ID, e.Stick, ErrUnknownStick)
		}
		charged[e.ID] = true
		l.Edges = append(l.Edges, e.ID)
		l.Sticks[p].Used += e.Length
		l.Perimeter += e.Length
	}

	for i := range l.Sticks {
		u := &l.Sticks[i]
		u.Leftover = u.Length - u.Used
		if u.Leftover < 0 {
			u.Leftover = 0
		}
		l.Remaining += u.Leftover
	}

	return l, nil
}
