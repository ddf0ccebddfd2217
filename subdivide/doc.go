// Package subdivide cuts every stick at the points lying on it and turns
// the pieces into the edges of the planar graph.
//
// What:
//
//   - Split walks the sticks in input order. For each stick it keeps the
//     associated points that really are on the stick, sorts them by distance
//     from endpoint A and emits one Segment per adjacent pair that is longer
//     than Epsilon. Zero-length gaps (coincident crossings) are skipped.
//   - Segments equal as undirected point pairs are coalesced; the first one
//     emitted wins.
//   - BuildGraph inserts segments into a fresh core.Graph in emission order,
//     which fixes the vertex and neighbor order seen by the cycle finder.
//
// Complexity:
//
//   - Split: O(Σ m log m) where m is the number of points on a stick.
//   - BuildGraph: O(S) for S segments.
package subdivide
