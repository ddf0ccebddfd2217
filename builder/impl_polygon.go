// SPDX-License-Identifier: MIT
// Package: stickloop/builder
//
// impl_polygon.go — closed polygon fixtures: Square, Triangle, RegularPolygon.
//
// Contract:
//   • Sizes must be positive (else ErrBadSize); RegularPolygon needs n ≥ 3
//     (else ErrTooFewVertices).
//   • Square and Triangle honor cfg.overshoot; RegularPolygon does not, since
//     its extended sides would cross off the rounding grid.
//   • Sticks are emitted counter-clockwise starting at the origin corner.
//
// Complexity:
//   • Time: O(sides). Space: O(1) extra.

package builder

import (
	"fmt"
	"math"
)

const (
	methodSquare         = "Square"
	methodTriangle       = "Triangle"
	methodRegularPolygon = "RegularPolygon"
	minPolygonSides      = 3
)

// Square returns a Constructor for the four sides of the axis-aligned square
// [0, side]² (bottom, right, top, left).
func Square(side float64) Constructor {
	return func(s *Set, cfg builderConfig) error {
		if !(side > 0) {
			return fmt.Errorf("%s: side=%v: %w", methodSquare, side, ErrBadSize)
		}
		d := cfg.overshoot
		sides := [4][4]float64{
			{-d, 0, side + d, 0},
			{side, -d, side, side + d},
			{side + d, side, -d, side},
			{0, side + d, 0, -d},
		}
		for _, r := range sides {
			if err := s.Add(cfg.at(r[0], r[1]), cfg.at(r[2], r[3])); err != nil {
				return fmt.Errorf("%s: %w", methodSquare, err)
			}
		}

		return nil
	}
}

// Triangle returns a Constructor for the right triangle (0,0) (leg,0)
// (0,leg): the two legs on the axes, then the hypotenuse. Overshoot d
// extends the legs by d and the hypotenuse by (d, -d) at each end, which
// keeps every endpoint on the grid.
func Triangle(leg float64) Constructor {
	return func(s *Set, cfg builderConfig) error {
		if !(leg > 0) {
			return fmt.Errorf("%s: leg=%v: %w", methodTriangle, leg, ErrBadSize)
		}
		d := cfg.overshoot
		sides := [3][4]float64{
			{-d, 0, leg + d, 0},
			{0, -d, 0, leg + d},
			{leg + d, -d, -d, leg + d},
		}
		for _, r := range sides {
			if err := s.Add(cfg.at(r[0], r[1]), cfg.at(r[2], r[3])); err != nil {
				return fmt.Errorf("%s: %w", methodTriangle, err)
			}
		}

		return nil
	}
}

// RegularPolygon returns a Constructor for the n sides of a regular n-gon
// centered on the origin with circumradius r, first vertex at angle 0.
// Vertices are canonicalized once and shared by adjacent sides, so every
// corner is an exact shared endpoint.
func RegularPolygon(n int, r float64) Constructor {
	return func(s *Set, cfg builderConfig) error {
		if n < minPolygonSides {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRegularPolygon, n, minPolygonSides, ErrTooFewVertices)
		}
		if !(r > 0) {
			return fmt.Errorf("%s: r=%v: %w", methodRegularPolygon, r, ErrBadSize)
		}
		step := 2 * math.Pi / float64(n)
		for i := 0; i < n; i++ {
			a0, a1 := step*float64(i), step*float64((i+1)%n)
			p := s.k.Canonical(cfg.at(r*math.Cos(a0), r*math.Sin(a0)))
			q := s.k.Canonical(cfg.at(r*math.Cos(a1), r*math.Sin(a1)))
			if err := s.Add(p, q); err != nil {
				return fmt.Errorf("%s: side %d: %w", methodRegularPolygon, i, err)
			}
		}

		return nil
	}
}
