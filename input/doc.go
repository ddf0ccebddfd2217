// Package input reads stick sets.
//
// Two formats are understood:
//
//   - FormatText: an integer count n followed by n records of four reals
//     "x1 y1 x2 y2", separated by any whitespace. Stick IDs are record
//     indexes. Tokens after the last record are ignored.
//   - FormatSVG: every <line x1 y1 x2 y2> element of an SVG document, in
//     document order.
//
// Endpoints are canonicalized by the kernel passed in; a record whose
// endpoints collapse to one point fails with geom.ErrDegenerateStick.
package input
