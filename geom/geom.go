package geom

import "math"

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Cross returns the z component of (b-a)×(p-a). It is zero when p lies on
// the infinite line through a and b.
func Cross(a, b, p Point) float64 {
	return (p.Y-a.Y)*(b.X-a.X) - (p.X-a.X)*(b.Y-a.Y)
}

// bounded reports whether v lies in [min(lo,hi)-eps, max(lo,hi)+eps].
func bounded(v, lo, hi, eps float64) bool {
	return v >= math.Min(lo, hi)-eps && v <= math.Max(lo, hi)+eps
}
