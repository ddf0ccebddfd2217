package decision

import (
	"math"

	"github.com/katalvlaran/stickloop/geom"
)

// PolygonArea returns the absolute shoelace area of pts, closing the
// polygon from the last point back to the first. Fewer than three points
// have no area.
//
// The result does not depend on which point comes first or on the
// direction of travel.
//
// Complexity: O(n).
func PolygonArea(pts []geom.Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}

	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].X * pts[j].Y
		area -= pts[j].X * pts[i].Y
	}

	return math.Abs(area) / 2
}

// ReferenceArea returns rem²/(4π), the area enclosed by a circle of
// circumference rem. Leftovers below eps, negative ones included, give
// exactly 0; pass the run's kernel epsilon.
func ReferenceArea(rem, eps float64) float64 {
	if rem < eps {
		return 0
	}

	return rem * rem / (4 * math.Pi)
}
