// Package geom is the geometry kernel behind stickloop: tolerance-aware
// points, canonical vertex identities, sticks, on-segment tests and
// line–line intersection.
//
// What:
//
//   - Point: a raw pair of float64 coordinates.
//   - Key: the canonical identity of a point, its coordinates scaled by
//     10^Precision and rounded. Every graph vertex and every crossing is
//     looked up by Key, never by raw float equality.
//   - PairKey: undirected identity of a segment between two Keys.
//   - Stick: an immutable input segment with a stable ID and a length.
//   - Kernel: Epsilon and Precision, plus the operations that depend on them
//     (Canonical, Key, Equal, OnSegment, Intersect, NewStick).
//
// Determinism:
//
//   - Canonical is idempotent: Canonical(Canonical(p)) == Canonical(p).
//   - Key(Canonical(p)) == Key(p), so the same crossing produced by two
//     different stick pairs always maps to a single vertex.
//   - Intersect canonicalizes before re-checking OnSegment for both sticks,
//     so a near miss that only passes tolerance before rounding is rejected.
//
// Complexity:
//
//   - Every operation is O(1).
//
// Errors:
//
//   - ErrDegenerateStick: both canonical endpoints of a stick coincide.
package geom
