// SPDX-License-Identifier: MIT
// Package: stickloop/builder
//
// impl_random.go — implementation of RandomSticks(n, span).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); span ≥ 1 (else ErrBadSize).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Endpoints are integers in [0, span]², drawn x1 y1 x2 y2 per stick;
//     a draw with coincident endpoints is redrawn.
//
// Determinism:
//   • Fixed draw order ⇒ identical sticks for a fixed seed.

package builder

import "fmt"

const (
	methodRandomSticks = "RandomSticks"
	minRandomSticks    = 1
	minRandomSpan      = 1
)

// RandomSticks returns a Constructor for n sticks with random integer
// endpoints in [0, span]².
func RandomSticks(n, span int) Constructor {
	return func(s *Set, cfg builderConfig) error {
		if n < minRandomSticks {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSticks, n, minRandomSticks, ErrTooFewVertices)
		}
		if span < minRandomSpan {
			return fmt.Errorf("%s: span=%d: %w", methodRandomSticks, span, ErrBadSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSticks, ErrNeedRandSource)
		}

		coord := func() float64 { return float64(cfg.rng.Intn(span + 1)) }
		for i := 0; i < n; i++ {
			x1, y1 := coord(), coord()
			x2, y2 := coord(), coord()
			for x1 == x2 && y1 == y2 {
				x2, y2 = coord(), coord()
			}
			if err := s.Add(cfg.at(x1, y1), cfg.at(x2, y2)); err != nil {
				return fmt.Errorf("%s: stick %d: %w", methodRandomSticks, i, err)
			}
		}

		return nil
	}
}
