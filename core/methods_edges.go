// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/EdgeBetween/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock; read queries under mu read lock.

package core

import (
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/stickloop/geom"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge inserts the undirected sub-segment from–to cut from stick.
//
// Steps:
//  1. Canonicalize both points and derive keys; reject from==to unless loops
//     are allowed.
//  2. Lock mu, ensure both vertices exist.
//  3. Unless multi-edges are allowed, reject a pair that already has an edge,
//     in either direction.
//  4. Generate eid atomically, store the Edge, append it to the adjacency
//     list of both endpoints (once for a loop).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to geom.Point, stick int, length float64) (string, error) {
	from, to = g.kernel.Canonical(from), g.kernel.Canonical(to)
	fromKey, toKey := g.kernel.Key(from), g.kernel.Key(to)
	if fromKey == toKey && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	pair := geom.PairOf(fromKey, toKey)
	if !g.allowMulti && len(g.pairs[pair]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(fromKey, from)
	g.addVertexLocked(toKey, to)

	e := &Edge{ID: nextEdgeID(g), From: fromKey, To: toKey, Stick: stick, Length: length}
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e)
	g.pairs[pair] = append(g.pairs[pair], e)
	g.adjacency[fromKey] = append(g.adjacency[fromKey], e)
	if fromKey != toKey {
		g.adjacency[toKey] = append(g.adjacency[toKey], e)
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge joins a and b (either direction).
// Complexity: O(1).
func (g *Graph) HasEdge(a, b geom.Key) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.pairs[geom.PairOf(a, b)]) > 0
}

// EdgeBetween returns the first edge inserted between a and b, regardless
// of direction, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeBetween(a, b geom.Key) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	es := g.pairs[geom.PairOf(a, b)]
	if len(es) == 0 {
		return nil, ErrEdgeNotFound
	}

	return es[0], nil
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// TotalLength sums the lengths of all edges.
// Complexity: O(E).
func (g *Graph) TotalLength() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var sum float64
	for _, e := range g.edgeOrder {
		sum += e.Length
	}

	return sum
}

// nextEdgeID returns "e<N>" where N is the next atomic counter value.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
