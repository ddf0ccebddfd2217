// Package dfs finds one simple cycle in a core.Graph with a fixed,
// deterministic depth-first search.
//
// What:
//
//   - FindCycle tries every vertex as the start, in g.Vertices() order. From
//     a start it walks neighbors in the order g.Neighbors returns them,
//     keeping the current path, a visited set and the predecessor of each
//     vertex on the path.
//   - A neighbor equal to the start closes a cycle once the path holds more
//     than two vertices; the path is returned as the cycle. Otherwise the
//     walk descends into neighbors that are neither the predecessor nor on
//     the path. Leaving a vertex removes it from the visited set, so later
//     branches may pass through it again.
//   - The first cycle found wins. It is not the largest, the smallest or the
//     only one; the same graph always yields the same cycle.
//   - The stack is explicit, so very long paths cannot exhaust the
//     goroutine stack.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked each time a vertex is entered.
//   - WithOnVisit(fn)    pre-order hook; an error aborts the search.
//   - WithOnExit(fn)     hook run when a vertex is left; an error aborts.
//   - WithStart(k)       try only k as the start vertex.
//
// Complexity:
//
//   - Time: exponential in the worst case (the visited set is per path), in
//     practice bounded by the first closed path found.
//   - Memory: O(V + E) for the path stack and its edge lists.
//
// Errors:
//
//   - ErrGraphNil             g is nil.
//   - ErrStartVertexNotFound  WithStart names a missing vertex.
//   - ctx.Err()               the context was cancelled.
//   - hook errors             wrapped, from OnVisit or OnExit.
//
// No cycle is not an error: FindCycle returns (false, nil, nil).
package dfs
