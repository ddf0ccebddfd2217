package geom

import (
	"fmt"
	"math"
)

// Kernel defaults.
const (
	// DefaultEpsilon is the tolerance for collinearity, bounding boxes,
	// parallel lines and point equality.
	DefaultEpsilon = 1e-9

	// DefaultPrecision is the number of decimal places kept by Canonical.
	DefaultPrecision = 2

	// MaxPrecision keeps scaled coordinates well inside int64.
	MaxPrecision = 9
)

// Kernel bundles the tolerance settings and the operations that depend on
// them. Build one with NewKernel; the zero value has no tolerance at all.
type Kernel struct {
	epsilon   float64
	precision int
}

// KernelOption configures a Kernel.
type KernelOption func(*Kernel)

// WithEpsilon sets the comparison tolerance. Panics if eps is not positive.
func WithEpsilon(eps float64) KernelOption {
	if !(eps > 0) || math.IsInf(eps, 1) {
		panic(fmt.Sprintf("geom: WithEpsilon(%v)", eps))
	}
	return func(k *Kernel) { k.epsilon = eps }
}

// WithPrecision sets the number of decimals kept by Canonical.
// Panics outside [0, MaxPrecision].
func WithPrecision(decimals int) KernelOption {
	if decimals < 0 || decimals > MaxPrecision {
		panic(fmt.Sprintf("geom: WithPrecision(%d)", decimals))
	}
	return func(k *Kernel) { k.precision = decimals }
}

// NewKernel returns a Kernel with DefaultEpsilon and DefaultPrecision,
// overridden by opts in order.
func NewKernel(opts ...KernelOption) Kernel {
	k := Kernel{epsilon: DefaultEpsilon, precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&k)
	}

	return k
}

// Epsilon returns the comparison tolerance.
func (k Kernel) Epsilon() float64 { return k.epsilon }

// Precision returns the number of decimals kept by Canonical.
func (k Kernel) Precision() int { return k.precision }

func (k Kernel) scale() float64 { return math.Pow10(k.precision) }

// Canonical rounds both coordinates of p to Precision decimals.
func (k Kernel) Canonical(p Point) Point {
	s := k.scale()

	return Point{X: round(p.X, s), Y: round(p.Y, s)}
}

// round keeps v to 1/s and folds negative zero into zero.
func round(v, s float64) float64 {
	r := math.Round(v*s) / s
	if r == 0 {
		return 0
	}

	return r
}

// Key returns the canonical identity of p.
func (k Kernel) Key(p Point) Key {
	s := k.scale()

	return Key{X: int64(math.Round(p.X * s)), Y: int64(math.Round(p.Y * s))}
}

// Point returns the canonical point identified by key.
func (k Kernel) Point(key Key) Point {
	s := k.scale()

	return Point{X: float64(key.X) / s, Y: float64(key.Y) / s}
}

// Format renders p canonically, e.g. "1.50,0.25".
func (k Kernel) Format(p Point) string {
	c := k.Canonical(p)

	return fmt.Sprintf("%.*f,%.*f", k.precision, c.X, k.precision, c.Y)
}

// Equal reports whether p and q coincide within Epsilon after
// canonicalization.
func (k Kernel) Equal(p, q Point) bool {
	p, q = k.Canonical(p), k.Canonical(q)

	return math.Abs(p.X-q.X) < k.epsilon && math.Abs(p.Y-q.Y) < k.epsilon
}

// OnSegment reports whether p is collinear with a–b and lies inside the
// segment's bounding box inflated by Epsilon on every side.
func (k Kernel) OnSegment(p, a, b Point) bool {
	if math.Abs(Cross(a, b, p)) > k.epsilon {
		return false
	}

	return bounded(p.X, a.X, b.X, k.epsilon) && bounded(p.Y, a.Y, b.Y, k.epsilon)
}

// Intersect returns the canonical crossing point of s1 and s2.
//
// The infinite lines through both sticks are solved in determinant form.
// A determinant below Epsilon (parallel or collinear sticks) yields no
// point. Otherwise the solution is canonicalized first and then accepted
// only if it lies on both sticks.
//
// Complexity: O(1).
func (k Kernel) Intersect(s1, s2 Stick) (Point, bool) {
	x1, y1, x2, y2 := s1.A.X, s1.A.Y, s1.B.X, s1.B.Y
	x3, y3, x4, y4 := s2.A.X, s2.A.Y, s2.B.X, s2.B.Y

	d := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(d) < k.epsilon {
		return Point{}, false
	}

	c1 := x1*y2 - y1*x2
	c2 := x3*y4 - y3*x4
	p := k.Canonical(Point{
		X: (c1*(x3-x4) - (x1-x2)*c2) / d,
		Y: (c1*(y3-y4) - (y1-y2)*c2) / d,
	})
	if !k.OnSegment(p, s1.A, s1.B) || !k.OnSegment(p, s2.A, s2.B) {
		return Point{}, false
	}

	return p, true
}

// NewStick builds a stick with canonical endpoints a and b. Length is
// measured between the endpoints as given, before rounding.
// Returns ErrDegenerateStick when they share a Key.
func (k Kernel) NewStick(id int, a, b Point) (Stick, error) {
	length := Distance(a, b)
	a, b = k.Canonical(a), k.Canonical(b)
	if k.Key(a) == k.Key(b) {
		return Stick{}, fmt.Errorf("NewStick(%d): %s: %w", id, k.Format(a), ErrDegenerateStick)
	}

	return Stick{ID: id, A: a, B: b, Length: length}, nil
}
