// Package judge runs the whole stick-loop pipeline on a set of sticks and
// reports the verdict together with everything computed on the way.
//
// Stages (strictly forward):
//
//	Input → Intersections → Subdivided → GraphBuilt → Searching
//	      → Found → Decided
//	      → Exhausted (no structure)
//
// Each transition is logged at debug level on the injected *slog.Logger;
// the verdict is logged at info level. Nothing is logged by default.
package judge
