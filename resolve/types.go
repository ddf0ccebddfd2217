package resolve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stickloop/geom"
)

// ErrDuplicateStickID indicates two input sticks share an ID.
var ErrDuplicateStickID = errors.New("resolve: duplicate stick id")

// Crossing is a canonical intersection point produced by two sticks.
type Crossing struct {
	// Point is the canonical crossing location.
	Point geom.Point

	// Key is the identity of Point.
	Key geom.Key

	// First and Second are the IDs of the producing sticks, in input order.
	First, Second int
}

// Incidence associates every stick with the canonical points lying on it.
type Incidence struct {
	// Sticks are the input sticks, in input order.
	Sticks []geom.Stick

	// Crossings lists every accepted crossing in (i, j) pair order.
	Crossings []Crossing

	kernel geom.Kernel
	index  map[int]int         // stick ID → position in Sticks
	points [][]geom.Point      // per position, first-seen order
	seen   []map[geom.Key]bool // per position, keys already in points
}

// Kernel returns the kernel the incidence was computed with.
func (inc *Incidence) Kernel() geom.Kernel { return inc.kernel }

// PointsOn returns the points associated with the stick with the given ID:
// its endpoints A and B first, then crossings in pair order, deduplicated by
// key. The returned slice is a copy.
func (inc *Incidence) PointsOn(stickID int) ([]geom.Point, error) {
	pos, ok := inc.index[stickID]
	if !ok {
		return nil, fmt.Errorf("PointsOn(%d): unknown stick", stickID)
	}
	out := make([]geom.Point, len(inc.points[pos]))
	copy(out, inc.points[pos])

	return out, nil
}

// associate records p on the stick at position pos unless already present.
func (inc *Incidence) associate(pos int, p geom.Point) {
	k := inc.kernel.Key(p)
	if inc.seen[pos][k] {
		return
	}
	inc.seen[pos][k] = true
	inc.points[pos] = append(inc.points[pos], p)
}

// Option configures Resolve.
type Option func(*options)

type options struct {
	kernel  geom.Kernel
	workers int
}

// WithKernel sets the geometry kernel. Default geom.NewKernel().
func WithKernel(k geom.Kernel) Option {
	return func(o *options) { o.kernel = k }
}

// WithWorkers sets the number of goroutines used for the pair checks.
// Panics if n < 1. Default 1 (sequential).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("resolve: WithWorkers(%d)", n))
	}
	return func(o *options) { o.workers = n }
}
