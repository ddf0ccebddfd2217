package dfs

import (
	"fmt"

	"github.com/katalvlaran/stickloop/core"
	"github.com/katalvlaran/stickloop/geom"
)

// frame is one vertex of the current path together with its pending edges.
type frame struct {
	v      geom.Key
	parent geom.Key
	root   bool
	edges  []*core.Edge
	next   int
}

// cycleWalker encapsulates state during a cycle search.
type cycleWalker struct {
	graph   *core.Graph
	opts    Options
	stack   []frame
	visited map[geom.Key]bool
}

// FindCycle returns the first simple cycle of g as an ordered list of
// vertex keys, without repeating the first key at the end.
//
// Implementation:
//   - Stage 1: Validate g and apply options; resolve the start candidates.
//   - Stage 2: For each start, run the path search until it closes a cycle
//     or exhausts every branch.
//   - Stage 3: Return the first closed path, or (false, nil, nil).
//
// Determinism:
//   - Start vertices in insertion order, neighbors in insertion order.
func FindCycle(g *core.Graph, opts ...Option) (bool, []geom.Key, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	starts := g.Vertices()
	if o.HasStart {
		if !g.HasVertex(o.Start) {
			return false, nil, fmt.Errorf("FindCycle: %s: %w", o.Start, ErrStartVertexNotFound)
		}
		starts = []geom.Key{o.Start}
	}

	w := &cycleWalker{
		graph:   g,
		opts:    o,
		stack:   make([]frame, 0, len(starts)),
		visited: make(map[geom.Key]bool, len(starts)),
	}
	for _, s := range starts {
		cycle, err := w.search(s)
		if err != nil {
			return false, nil, err
		}
		if cycle != nil {
			return true, cycle, nil
		}
	}

	return false, nil, nil
}

// search walks every simple path from start and returns the first one whose
// last vertex is adjacent to start, or nil when none exists.
func (w *cycleWalker) search(start geom.Key) ([]geom.Key, error) {
	w.stack = w.stack[:0]
	if err := w.push(start, start, true); err != nil {
		return nil, err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.edges) {
			if err := w.pop(); err != nil {
				return nil, err
			}
			continue
		}
		e := top.edges[top.next]
		top.next++

		n := e.Other(top.v)
		if n == start && len(w.stack) > 2 {
			return w.path(), nil
		}
		if (!top.root && n == top.parent) || w.visited[n] {
			continue
		}
		if err := w.push(n, top.v, false); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// push enters v from parent.
func (w *cycleWalker) push(v, parent geom.Key, root bool) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[v] = true
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %s: %w", v, err)
		}
	}

	edges, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%s): %w", v, err)
	}
	w.stack = append(w.stack, frame{v: v, parent: parent, root: root, edges: edges})

	return nil
}

// pop leaves the exhausted top vertex and frees it for other branches.
func (w *cycleWalker) pop() error {
	v := w.stack[len(w.stack)-1].v
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %s: %w", v, err)
		}
	}
	delete(w.visited, v)
	w.stack = w.stack[:len(w.stack)-1]

	return nil
}

// path copies the vertices of the current stack.
func (w *cycleWalker) path() []geom.Key {
	out := make([]geom.Key, len(w.stack))
	for i, f := range w.stack {
		out[i] = f.v
	}

	return out
}
