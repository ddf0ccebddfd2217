// SPDX-License-Identifier: MIT
// Package: stickloop/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildSticks(k, bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical sticks.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stickloop/geom"
)

// Set accumulates the sticks emitted by constructors.
type Set struct {
	k      geom.Kernel
	sticks []geom.Stick
}

// Add appends the stick a–b with the next sequential ID.
func (s *Set) Add(a, b geom.Point) error {
	st, err := s.k.NewStick(len(s.sticks), a, b)
	if err != nil {
		return fmt.Errorf("Add: %w: %w", err, ErrConstructFailed)
	}
	s.sticks = append(s.sticks, st)

	return nil
}

// Len returns the number of sticks added so far.
func (s *Set) Len() int { return len(s.sticks) }

// Constructor appends sticks to a Set using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit sticks in a stable, documented order.
type Constructor func(s *Set, cfg builderConfig) error

// BuildSticks resolves the builder configuration from bopts and applies
// all constructors in order, returning their sticks canonicalized by k.
// Any constructor error is wrapped with "BuildSticks: %w".
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildSticks(k geom.Kernel, bopts []BuilderOption, cons ...Constructor) ([]geom.Stick, error) {
	cfg := newBuilderConfig(bopts...)
	s := &Set{k: k}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildSticks: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildSticks: %w", err)
		}
	}

	return s.sticks, nil
}
