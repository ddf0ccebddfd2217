package decision_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stickloop/core"
	"github.com/katalvlaran/stickloop/decision"
	"github.com/katalvlaran/stickloop/geom"
)

func pts(xy ...float64) []geom.Point {
	out := make([]geom.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geom.Point{X: xy[i], Y: xy[i+1]})
	}

	return out
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name string
		in   []geom.Point
		want float64
	}{
		{"Empty", nil, 0},
		{"TwoPoints", pts(0, 0, 5, 5), 0},
		{"UnitSquare", pts(0, 0, 1, 0, 1, 1, 0, 1), 1},
		{"Triangle", pts(0, 0, 4, 0, 0, 4), 8},
		{"Clockwise", pts(0, 0, 0, 3, 2, 0), 3},
		{"Concave", pts(0, 0, 4, 0, 4, 4, 2, 2, 0, 4), 12},
		{"Collinear", pts(0, 0, 1, 1, 2, 2), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, decision.PolygonArea(tc.in), 1e-12)
		})
	}
}

func TestPolygonArea_RotationAndReversal(t *testing.T) {
	poly := pts(0, 0, 5, 1, 6, 4, 2, 6, -1, 3)
	want := decision.PolygonArea(poly)
	for r := 0; r < len(poly); r++ {
		rot := append(append([]geom.Point(nil), poly[r:]...), poly[:r]...)
		assert.InDelta(t, want, decision.PolygonArea(rot), 1e-9)

		rev := make([]geom.Point, len(rot))
		for i := range rot {
			rev[i] = rot[len(rot)-1-i]
		}
		assert.InDelta(t, want, decision.PolygonArea(rev), 1e-9)
	}
}

func TestReferenceArea(t *testing.T) {
	eps := geom.DefaultEpsilon
	assert.Equal(t, 0.0, decision.ReferenceArea(0, eps))
	assert.Equal(t, 0.0, decision.ReferenceArea(-3, eps))
	assert.Equal(t, 0.0, decision.ReferenceArea(1e-12, eps))
	assert.InDelta(t, 1/math.Pi, decision.ReferenceArea(2, eps), 1e-12)
	assert.InDelta(t, 100/(4*math.Pi), decision.ReferenceArea(10, eps), 1e-12)

	// The threshold follows the caller's tolerance.
	assert.Greater(t, decision.ReferenceArea(1e-4, eps), 0.0)
	assert.Equal(t, 0.0, decision.ReferenceArea(1e-4, 1e-3))
}

func TestDecide(t *testing.T) {
	assert.Equal(t, decision.NoStructure, decision.Decide(false, 10, 1))
	assert.Equal(t, decision.CycleWins, decision.Decide(true, 1, 0))
	assert.Equal(t, decision.ReferenceWins, decision.Decide(true, 1, 2))
	assert.Equal(t, decision.ReferenceWins, decision.Decide(true, 2, 2))
	assert.Equal(t, decision.ReferenceWins, decision.Decide(true, 0, 0))
}

func TestLabels(t *testing.T) {
	l := decision.DefaultLabels()
	assert.Equal(t, "Kalyan", l.For(decision.CycleWins))
	assert.Equal(t, "Computer", l.For(decision.ReferenceWins))
	assert.Equal(t, "Abandoned", l.For(decision.NoStructure))
	assert.Equal(t, "Abandoned", l.For(decision.Verdict(42)))

	custom := decision.Labels{Cycle: "loop", Reference: "circle", None: "none"}
	assert.Equal(t, "circle", custom.For(decision.ReferenceWins))

	assert.Equal(t, "CycleWins", decision.CycleWins.String())
	assert.Equal(t, "Verdict(?)", decision.Verdict(-1).String())
}

// triangle returns three sticks overshooting the triangle (0,0) (4,0) (0,4)
// by one unit past each corner, the graph of their pieces and its cycle.
func triangle(t *testing.T) ([]geom.Stick, *core.Graph, []geom.Key) {
	t.Helper()
	k := geom.NewKernel()
	mk := func(id int, x1, y1, x2, y2 float64) geom.Stick {
		s, err := k.NewStick(id, geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2})
		require.NoError(t, err)
		return s
	}
	sticks := []geom.Stick{mk(0, -1, 0, 5, 0), mk(1, 0, -1, 0, 5), mk(2, 5, -1, -1, 5)}

	g := core.NewGraph()
	add := func(stick int, x1, y1, x2, y2 float64) {
		a, b := geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2}
		_, err := g.AddEdge(a, b, stick, geom.Distance(a, b))
		require.NoError(t, err)
	}
	add(0, -1, 0, 0, 0)
	add(0, 0, 0, 4, 0)
	add(0, 4, 0, 5, 0)
	add(1, 0, -1, 0, 0)
	add(1, 0, 0, 0, 4)
	add(1, 0, 4, 0, 5)
	add(2, 5, -1, 4, 0)
	add(2, 4, 0, 0, 4)
	add(2, 0, 4, -1, 5)

	cycle := []geom.Key{
		k.Key(geom.Point{X: 0, Y: 0}),
		k.Key(geom.Point{X: 4, Y: 0}),
		k.Key(geom.Point{X: 0, Y: 4}),
	}

	return sticks, g, cycle
}

func TestAccount_Triangle(t *testing.T) {
	sticks, g, cycle := triangle(t)

	l, err := decision.Account(g, cycle, sticks)
	require.NoError(t, err)
	assert.Equal(t, []string{"e2", "e8", "e5"}, l.Edges)
	assert.InDelta(t, 8+4*math.Sqrt2, l.Perimeter, 1e-9)
	assert.InDelta(t, 12+6*math.Sqrt2, l.Total, 1e-9)
	assert.InDelta(t, 4+2*math.Sqrt2, l.Remaining, 1e-9)
	require.Len(t, l.Sticks, 3)
	assert.InDelta(t, 4.0, l.Sticks[0].Used, 1e-9)
	assert.InDelta(t, 2.0, l.Sticks[1].Leftover, 1e-9)
	assert.InDelta(t, 2*math.Sqrt2, l.Sticks[2].Leftover, 1e-9)
	assert.LessOrEqual(t, l.Remaining, l.Total)
}

func TestAccount_EdgeCountedOnce(t *testing.T) {
	sticks, g, cycle := triangle(t)
	// Walking the loop twice must not charge any side twice.
	l, err := decision.Account(g, append(cycle, cycle...), sticks)
	require.NoError(t, err)
	assert.Len(t, l.Edges, 3)
	assert.InDelta(t, 8+4*math.Sqrt2, l.Perimeter, 1e-9)
}

func TestAccount_LeftoverClamped(t *testing.T) {
	_, g, cycle := triangle(t)
	k := geom.NewKernel()
	short := func(id int) geom.Stick {
		s, err := k.NewStick(id, geom.Point{}, geom.Point{X: 1})
		require.NoError(t, err)
		return s
	}
	l, err := decision.Account(g, cycle, []geom.Stick{short(0), short(1), short(2)})
	require.NoError(t, err)
	for _, u := range l.Sticks {
		assert.Equal(t, 0.0, u.Leftover)
	}
	assert.Equal(t, 0.0, l.Remaining)
}

func TestAccount_Errors(t *testing.T) {
	sticks, g, cycle := triangle(t)
	k := geom.NewKernel()

	far := k.Key(geom.Point{X: 5, Y: 0})
	_, err := decision.Account(g, []geom.Key{cycle[0], far, cycle[2]}, sticks)
	assert.ErrorIs(t, err, decision.ErrEdgeMissing)

	_, err = decision.Account(g, cycle, sticks[:2])
	assert.ErrorIs(t, err, decision.ErrUnknownStick)
}
