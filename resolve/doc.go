// Package resolve computes every pairwise crossing among a set of sticks and
// records, per stick, the canonical points known to lie on it.
//
// What:
//
//   - Resolve(sticks, opts...) checks each unordered pair (i, j), i < j, with
//     geom.Kernel.Intersect. A hit becomes a Crossing associated with both
//     sticks. Each stick's own endpoints are always associated with it.
//   - Incidence is the result: the sticks, the crossings in (i, j) order and,
//     per stick, the deduplicated points lying on it.
//
// Why O(n²):
//
//   - Inputs are small puzzles; no spatial index is used.
//
// Concurrency:
//
//   - WithWorkers(n) fans the pair checks out to n goroutines by row. Each
//     row writes into its own slot and rows are merged in order afterwards,
//     so the Incidence is identical to the sequential one.
//
// Errors:
//
//   - ErrDuplicateStickID: two sticks share an ID.
package resolve
