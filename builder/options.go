// SPDX-License-Identifier: MIT
// Package: stickloop/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/stickloop/geom"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOvershoot extends every stick of Square, Triangle and Grid by d past
// each corner it takes part in. Panics if d is negative or not finite.
func WithOvershoot(d float64) BuilderOption {
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		panic(fmt.Sprintf("builder: WithOvershoot(%v)", d))
	}
	return func(c *builderConfig) {
		c.overshoot = d
	}
}

// WithOrigin translates every fixture so that its reference corner (or
// center, for RegularPolygon) sits at p.
func WithOrigin(p geom.Point) BuilderOption {
	return func(c *builderConfig) {
		c.origin = p
	}
}
