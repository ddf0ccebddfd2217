package geom

import (
	"errors"
	"strconv"
)

// ErrDegenerateStick indicates a stick whose canonical endpoints coincide.
var ErrDegenerateStick = errors.New("geom: stick has zero length")

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Key is the canonical identity of a Point: each coordinate multiplied by
// 10^Precision and rounded half away from zero. Keys are comparable and are
// the only thing used for vertex lookup and edge deduplication.
type Key struct {
	X, Y int64
}

// String renders the scaled integer coordinates as "X:Y".
func (k Key) String() string {
	return strconv.FormatInt(k.X, 10) + ":" + strconv.FormatInt(k.Y, 10)
}

// Less orders keys by X, then by Y.
func (k Key) Less(o Key) bool {
	if k.X != o.X {
		return k.X < o.X
	}

	return k.Y < o.Y
}

// PairKey is the undirected identity of a segment between two keys.
// A is never greater than B, so PairOf(a, b) == PairOf(b, a).
type PairKey struct {
	A, B Key
}

// PairOf returns the undirected pair identity of a and b.
func PairOf(a, b Key) PairKey {
	if b.Less(a) {
		return PairKey{A: b, B: a}
	}

	return PairKey{A: a, B: b}
}

// Stick is an input segment. It is immutable once built by Kernel.NewStick.
type Stick struct {
	// ID is the stable identifier of the stick, usually its input index.
	ID int

	// A and B are the canonical endpoints.
	A, B Point

	// Length is Distance(A, B).
	Length float64
}
