// SPDX-License-Identifier: MIT
// Package: stickloop/builder
//
// impl_lattice.go — open and lattice fixtures: Cross, Grid.
//
// Contract:
//   • Cross(size): size > 0 (else ErrBadSize). Two sticks, no closed loop.
//   • Grid(rows, cols, step): rows, cols ≥ 1 (else ErrTooFewVertices),
//     step > 0 (else ErrBadSize). Emits rows+1 horizontal sticks bottom to
//     top, then cols+1 vertical sticks left to right; honors cfg.overshoot.
//
// Complexity:
//   • Cross: O(1). Grid: O(rows + cols) sticks, O(rows·cols) crossings.

package builder

import "fmt"

const (
	methodCross = "Cross"
	methodGrid  = "Grid"
	minGridDim  = 1
)

// Cross returns a Constructor for the two diagonals of [0, size]², which
// meet once at the center.
func Cross(size float64) Constructor {
	return func(s *Set, cfg builderConfig) error {
		if !(size > 0) {
			return fmt.Errorf("%s: size=%v: %w", methodCross, size, ErrBadSize)
		}
		if err := s.Add(cfg.at(0, 0), cfg.at(size, size)); err != nil {
			return fmt.Errorf("%s: %w", methodCross, err)
		}
		if err := s.Add(cfg.at(0, size), cfg.at(size, 0)); err != nil {
			return fmt.Errorf("%s: %w", methodCross, err)
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols lattice of cells of size step.
func Grid(rows, cols int, step float64) Constructor {
	return func(s *Set, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if !(step > 0) {
			return fmt.Errorf("%s: step=%v: %w", methodGrid, step, ErrBadSize)
		}
		d := cfg.overshoot
		w, h := float64(cols)*step, float64(rows)*step

		for r := 0; r <= rows; r++ {
			y := float64(r) * step
			if err := s.Add(cfg.at(-d, y), cfg.at(w+d, y)); err != nil {
				return fmt.Errorf("%s: row %d: %w", methodGrid, r, err)
			}
		}
		for c := 0; c <= cols; c++ {
			x := float64(c) * step
			if err := s.Add(cfg.at(x, -d), cfg.at(x, h+d)); err != nil {
				return fmt.Errorf("%s: col %d: %w", methodGrid, c, err)
			}
		}

		return nil
	}
}
