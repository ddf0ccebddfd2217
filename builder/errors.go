// SPDX-License-Identifier: MIT
// Package: stickloop/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (sides, rows, cols,
// count) is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a non-positive length (side, radius, step, span).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not produce a valid
// stick (nil constructor, or a stick that collapses under the kernel).
var ErrConstructFailed = errors.New("builder: construction failed")
