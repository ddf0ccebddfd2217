package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stickloop/geom"
)

// mustStick builds a stick or fails the test.
func mustStick(t *testing.T, k geom.Kernel, id int, x1, y1, x2, y2 float64) geom.Stick {
	t.Helper()
	s, err := k.NewStick(id, geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2})
	require.NoError(t, err)

	return s
}

func TestNewKernel_Defaults(t *testing.T) {
	k := geom.NewKernel()
	assert.Equal(t, geom.DefaultEpsilon, k.Epsilon())
	assert.Equal(t, geom.DefaultPrecision, k.Precision())

	k = geom.NewKernel(geom.WithEpsilon(1e-6), geom.WithPrecision(3))
	assert.Equal(t, 1e-6, k.Epsilon())
	assert.Equal(t, 3, k.Precision())
}

func TestKernelOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { geom.WithEpsilon(0) })
	assert.Panics(t, func() { geom.WithEpsilon(-1) })
	assert.Panics(t, func() { geom.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { geom.WithPrecision(-1) })
	assert.Panics(t, func() { geom.WithPrecision(geom.MaxPrecision + 1) })
}

// TestCanonical_Idempotent verifies that canonicalizing twice changes nothing
// and that Key agrees on raw and canonical forms.
func TestCanonical_Idempotent(t *testing.T) {
	k := geom.NewKernel()
	pts := []geom.Point{
		{X: 0, Y: 0},
		{X: 1.5, Y: 0.5},
		{X: 0.125, Y: -0.125},
		{X: 1.0 / 3, Y: 2.0 / 3},
		{X: -7.004999, Y: 12.3456},
		{X: 100000.999, Y: -0.0001},
	}
	for _, p := range pts {
		c := k.Canonical(p)
		assert.Equal(t, c, k.Canonical(c), "Canonical(%v)", p)
		assert.Equal(t, k.Key(p), k.Key(c), "Key(%v)", p)
		assert.Equal(t, k.Key(p), k.Key(k.Point(k.Key(p))), "Point(Key(%v))", p)
	}
}

func TestFormat_NegativeZero(t *testing.T) {
	k := geom.NewKernel()
	assert.Equal(t, "0.00,0.00", k.Format(geom.Point{X: math.Copysign(0, -1), Y: -0.001}))
	assert.False(t, math.Signbit(k.Canonical(geom.Point{Y: -0.004}).Y))
}

func TestKey_SameCrossingOneIdentity(t *testing.T) {
	k := geom.NewKernel()
	// Two numerically different renditions of the same crossing.
	a := geom.Point{X: 1.4999999999, Y: 0.5000000001}
	b := geom.Point{X: 1.5000000002, Y: 0.4999999998}
	assert.Equal(t, k.Key(a), k.Key(b))
	assert.True(t, k.Equal(a, b))
	assert.False(t, k.Equal(a, geom.Point{X: 1.51, Y: 0.5}))
}

func TestPairOf_Undirected(t *testing.T) {
	a := geom.Key{X: 100, Y: 0}
	b := geom.Key{X: 0, Y: 100}
	assert.Equal(t, geom.PairOf(a, b), geom.PairOf(b, a))
	assert.Equal(t, b, geom.PairOf(a, b).A)
	assert.Equal(t, "100:0", a.String())
}

func TestOnSegment(t *testing.T) {
	k := geom.NewKernel()
	a, b := geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 2}
	cases := []struct {
		name string
		p    geom.Point
		want bool
	}{
		{"Midpoint", geom.Point{X: 2, Y: 1}, true},
		{"EndpointA", a, true},
		{"EndpointB", b, true},
		{"BeyondB", geom.Point{X: 6, Y: 3}, false},
		{"BeforeA", geom.Point{X: -2, Y: -1}, false},
		{"OffLine", geom.Point{X: 2, Y: 1.01}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, k.OnSegment(tc.p, a, b))
		})
	}
}

func TestIntersect(t *testing.T) {
	k := geom.NewKernel()
	cases := []struct {
		name   string
		s1, s2 [4]float64
		want   geom.Point
		hit    bool
	}{
		{"Cross", [4]float64{0, 0, 3, 1}, [4]float64{0, 1, 3, 0}, geom.Point{X: 1.5, Y: 0.5}, true},
		{"TJunction", [4]float64{0, 0, 4, 0}, [4]float64{2, 0, 2, 5}, geom.Point{X: 2, Y: 0}, true},
		{"Parallel", [4]float64{0, 0, 4, 0}, [4]float64{0, 1, 4, 1}, geom.Point{}, false},
		{"Collinear", [4]float64{0, 0, 4, 0}, [4]float64{2, 0, 6, 0}, geom.Point{}, false},
		{"LinesMeetOutside", [4]float64{0, 0, 1, 0}, [4]float64{3, -1, 3, 1}, geom.Point{}, false},
		// The crossing (1, 1/3) rounds to (1, 0.33), which is off the first stick.
		{"NearMissAfterRounding", [4]float64{0, 0, 3, 1}, [4]float64{1, 0, 1, 3}, geom.Point{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s1 := mustStick(t, k, 0, tc.s1[0], tc.s1[1], tc.s1[2], tc.s1[3])
			s2 := mustStick(t, k, 1, tc.s2[0], tc.s2[1], tc.s2[2], tc.s2[3])
			p, ok := k.Intersect(s1, s2)
			assert.Equal(t, tc.hit, ok)
			assert.Equal(t, tc.want, p)

			// Symmetric in its arguments.
			q, ok2 := k.Intersect(s2, s1)
			assert.Equal(t, ok, ok2)
			assert.Equal(t, k.Key(p), k.Key(q))
		})
	}
}

// TestIntersect_SharedEndpoint checks that the general formula and plain
// endpoint equality agree on a corner shared by two sticks.
func TestIntersect_SharedEndpoint(t *testing.T) {
	k := geom.NewKernel()
	corners := [][2]geom.Stick{
		{mustStick(t, k, 0, 0, 0, 1, 0), mustStick(t, k, 1, 1, 0, 1, 1)},
		{mustStick(t, k, 0, 2.5, 3.25, -1, 7), mustStick(t, k, 1, -4.75, 0.5, 2.5, 3.25)},
		{mustStick(t, k, 0, 0.1, 0.2, 0.7, 0.9), mustStick(t, k, 1, 0.7, 0.9, 1.3, 0.1)},
	}
	for _, pair := range corners {
		p, ok := k.Intersect(pair[0], pair[1])
		require.True(t, ok)

		var shared geom.Point
		switch {
		case k.Equal(pair[0].A, pair[1].A), k.Equal(pair[0].A, pair[1].B):
			shared = pair[0].A
		default:
			shared = pair[0].B
		}
		assert.Equal(t, k.Key(shared), k.Key(p))
		assert.True(t, k.Equal(shared, p))
	}
}

func TestNewStick(t *testing.T) {
	k := geom.NewKernel()
	s := mustStick(t, k, 7, 0, 0, 3, 4)
	assert.Equal(t, 7, s.ID)
	assert.InDelta(t, 5.0, s.Length, 1e-12)

	s = mustStick(t, k, 1, 0.004, 1.006, 2, 1)
	assert.Equal(t, geom.Point{X: 0, Y: 1.01}, s.A)
	assert.InDelta(t, math.Hypot(1.996, 0.006), s.Length, 1e-12)
	assert.NotEqual(t, geom.Distance(s.A, s.B), s.Length)

	_, err := k.NewStick(2, geom.Point{X: 1, Y: 1}, geom.Point{X: 1.001, Y: 0.999})
	assert.ErrorIs(t, err, geom.ErrDegenerateStick)
}

func TestFormat(t *testing.T) {
	k := geom.NewKernel()
	assert.Equal(t, "1.50,-0.25", k.Format(geom.Point{X: 1.5, Y: -0.25}))
	k3 := geom.NewKernel(geom.WithPrecision(3))
	assert.Equal(t, "0.333,1.000", k3.Format(geom.Point{X: 1.0 / 3, Y: 1}))
}

func TestDistanceAndCross(t *testing.T) {
	assert.InDelta(t, 5.0, geom.Distance(geom.Point{X: 1, Y: 1}, geom.Point{X: 4, Y: 5}), 1e-12)
	a, b := geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}
	assert.Greater(t, geom.Cross(a, b, geom.Point{X: 0, Y: 1}), 0.0)
	assert.Less(t, geom.Cross(a, b, geom.Point{X: 0, Y: -1}), 0.0)
	assert.Zero(t, geom.Cross(a, b, geom.Point{X: 5, Y: 0}))
}
