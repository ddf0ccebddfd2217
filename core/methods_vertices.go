// File: methods_vertices.go
// Role: Vertex insertion & queries.
//
// Determinism:
//   - Vertices() returns keys in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import "github.com/katalvlaran/stickloop/geom"

// AddVertex inserts the canonical form of p if missing (idempotent) and
// returns its key.
//
// Implementation:
//   - Stage 1: Canonicalize p and derive its key with the graph's kernel.
//   - Stage 2: Under mu write lock, register Vertex{key, point} unless present
//     and append the key to the insertion order.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(p geom.Point) geom.Key {
	c := g.kernel.Canonical(p)
	k := g.kernel.Key(c)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(k, c)

	return k
}

// addVertexLocked registers a vertex; caller holds mu for writing.
func (g *Graph) addVertexLocked(k geom.Key, c geom.Point) {
	if _, ok := g.vertices[k]; ok {
		return
	}
	g.vertices[k] = &Vertex{Key: k, Point: c}
	g.order = append(g.order, k)
}

// HasVertex reports whether k is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(k geom.Key) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[k]

	return ok
}

// Vertex returns the vertex identified by k, or ErrVertexNotFound.
// The returned *Vertex is read-only by convention.
// Complexity: O(1).
func (g *Graph) Vertex(k geom.Key) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[k]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex keys in insertion order.
// The slice is a copy; modifying it does not affect g.
// Complexity: O(V).
func (g *Graph) Vertices() []geom.Key {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]geom.Key, len(g.order))
	copy(out, g.order)

	return out
}

// Points maps keys to their canonical points, preserving order.
// Unknown keys yield ErrVertexNotFound.
// Complexity: O(len(keys)).
func (g *Graph) Points(keys []geom.Key) ([]geom.Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]geom.Point, 0, len(keys))
	for _, k := range keys {
		v, ok := g.vertices[k]
		if !ok {
			return nil, ErrVertexNotFound
		}
		out = append(out, v.Point)
	}

	return out, nil
}

// Degree returns the number of edges incident to k.
// A self-loop (WithLoops) counts once.
// Complexity: O(1).
func (g *Graph) Degree(k geom.Key) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[k]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[k]), nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
