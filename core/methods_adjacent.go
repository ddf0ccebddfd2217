// File: methods_adjacent.go
// Role: Neighborhood API (Neighbors, NeighborKeys).
// Determinism:
//   - Neighbors() returns incident edges in the order they were added.
//   - NeighborKeys() returns unique adjacent keys in first-seen order.

package core

import "github.com/katalvlaran/stickloop/geom"

// Neighbors returns all edges incident to k in insertion order.
//
// The cycle finder depends on this order: it is what makes the same input
// produce the same cycle on every run.
//
// Errors:
//   - ErrVertexNotFound: if k is not a vertex.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of k.
func (g *Graph) Neighbors(k geom.Key) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[k]; !ok {
		return nil, ErrVertexNotFound
	}
	adj := g.adjacency[k]
	out := make([]*Edge, len(adj))
	copy(out, adj)

	return out, nil
}

// NeighborKeys returns the unique keys adjacent to k, in first-seen order.
// Complexity: O(d).
func (g *Graph) NeighborKeys(k geom.Key) ([]geom.Key, error) {
	edges, err := g.Neighbors(k)
	if err != nil {
		return nil, err
	}
	seen := make(map[geom.Key]struct{}, len(edges))
	out := make([]geom.Key, 0, len(edges))
	for _, e := range edges {
		n := e.Other(k)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out, nil
}
