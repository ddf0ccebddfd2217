// Package builder provides deterministic stick-set fixtures composed with
// functional options, for tests, benchmarks and the demo command.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildSticks(k, bopts, cons...): resolves options, runs constructors
//     in order and returns canonical sticks with IDs 0..n-1.
//   - Constructors (each returns a Constructor closure):
//     – Square(side):            four sides of an axis-aligned square.
//     – Triangle(leg):           right triangle with legs on the axes.
//     – RegularPolygon(n, r):    closed n-gon inscribed in radius r.
//     – Cross(size):             two diagonals crossing in an X.
//     – Grid(rows, cols, step):  rows+1 horizontal and cols+1 vertical sticks.
//     – RandomSticks(n, span):   integer endpoints drawn from cfg.rng.
//   - Options:
//     – WithOvershoot(d):  extend sticks past their corners (Square, Triangle, Grid).
//     – WithOrigin(p):     translate the fixture.
//     – WithSeed / WithRand: RNG for RandomSticks.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical sticks.
//   - Fast-fail on meaningless option values via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
//   - Corners and crossings of the axis-aligned fixtures lie on the kernel's
//     rounding grid whenever sizes, overshoot and origin do.
package builder
