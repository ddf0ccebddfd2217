// SPDX-License-Identifier: MIT
// Package: stickloop/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil          (pure/deterministic unless seeded)
//   • overshoot = 0            (sticks end exactly at their corners)
//   • origin    = (0, 0)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/stickloop/geom"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	overshoot float64    // >= 0
	origin    geom.Point // translation applied to every endpoint
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at translates (x, y) by the configured origin.
func (c builderConfig) at(x, y float64) geom.Point {
	return geom.Point{X: c.origin.X + x, Y: c.origin.Y + y}
}
