// Package decision turns a found cycle into a verdict.
//
// What:
//
//   - PolygonArea is the shoelace area of the cycle treated as closed.
//   - Account matches every consecutive pair of the cycle to its graph edge,
//     charges each edge once to the stick it was cut from, and reports how
//     much of every stick is left over.
//   - ReferenceArea is the area of a circle whose circumference equals the
//     leftover length: rem²/(4π).
//   - Decide compares the two areas. The cycle wins only when its area is
//     strictly greater; ties go to the reference. No cycle at all yields
//     NoStructure.
//
// Labels maps verdicts to the words printed for them, by default
// "Kalyan", "Computer" and "Abandoned".
package decision
