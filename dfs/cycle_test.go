package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stickloop/core"
	"github.com/katalvlaran/stickloop/dfs"
	"github.com/katalvlaran/stickloop/geom"
)

// graphOf builds a graph from x1,y1,x2,y2 rows inserted in order.
func graphOf(t testing.TB, opts []core.GraphOption, rows ...[4]float64) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i, r := range rows {
		a, b := geom.Point{X: r[0], Y: r[1]}, geom.Point{X: r[2], Y: r[3]}
		_, err := g.AddEdge(a, b, i, geom.Distance(a, b))
		require.NoError(t, err)
	}

	return g
}

// key is the default-precision key of (x, y).
func key(x, y float64) geom.Key {
	return geom.NewKernel().Key(geom.Point{X: x, Y: y})
}

func unitSquare(t testing.TB) *core.Graph {
	return graphOf(t, nil,
		[4]float64{0, 0, 1, 0},
		[4]float64{1, 0, 1, 1},
		[4]float64{1, 1, 0, 1},
		[4]float64{0, 1, 0, 0},
	)
}

// overshootTriangle is the graph of three sticks forming the triangle
// (0,0) (4,0) (0,4), each running one unit past both corners.
func overshootTriangle(t testing.TB) *core.Graph {
	return graphOf(t, nil,
		[4]float64{-1, 0, 0, 0},
		[4]float64{0, 0, 4, 0},
		[4]float64{4, 0, 5, 0},
		[4]float64{0, -1, 0, 0},
		[4]float64{0, 0, 0, 4},
		[4]float64{0, 4, 0, 5},
		[4]float64{5, -1, 4, 0},
		[4]float64{4, 0, 0, 4},
		[4]float64{0, 4, -1, 5},
	)
}

func TestFindCycle_NilGraph(t *testing.T) {
	found, cycle, err := dfs.FindCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	assert.False(t, found)
	assert.Nil(t, cycle)
}

func TestFindCycle_Empty(t *testing.T) {
	found, cycle, err := dfs.FindCycle(core.NewGraph())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cycle)
}

func TestFindCycle_Square(t *testing.T) {
	found, cycle, err := dfs.FindCycle(unitSquare(t))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []geom.Key{key(0, 0), key(1, 0), key(1, 1), key(0, 1)}, cycle)
}

func TestFindCycle_Cross(t *testing.T) {
	g := graphOf(t, nil,
		[4]float64{0, 0, 2, 2},
		[4]float64{2, 2, 4, 4},
		[4]float64{0, 4, 2, 2},
		[4]float64{2, 2, 4, 0},
	)
	found, cycle, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cycle)
}

// TestFindCycle_DanglingStartsAreSkipped checks that starts sitting on an
// overshoot are exhausted before the first corner of the triangle closes it.
func TestFindCycle_DanglingStartsAreSkipped(t *testing.T) {
	var starts []geom.Key
	depth := 0
	found, cycle, err := dfs.FindCycle(overshootTriangle(t),
		dfs.WithOnVisit(func(k geom.Key) error {
			if depth == 0 {
				starts = append(starts, k)
			}
			depth++
			return nil
		}),
		dfs.WithOnExit(func(geom.Key) error {
			depth--
			return nil
		}),
	)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []geom.Key{key(0, 0), key(4, 0), key(0, 4)}, cycle)
	assert.Equal(t, []geom.Key{key(-1, 0), key(0, 0)}, starts)
}

func TestFindCycle_ParallelEdgesAreNotACycle(t *testing.T) {
	g := graphOf(t, []core.GraphOption{core.WithMultiEdges()},
		[4]float64{0, 0, 3, 0},
		[4]float64{3, 0, 0, 0},
	)
	found, _, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindCycle_SelfLoopIsNotACycle(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	p := geom.Point{X: 1, Y: 1}
	_, err := g.AddEdge(p, p, 0, 0)
	require.NoError(t, err)

	found, _, err := dfs.FindCycle(g)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindCycle_Deterministic(t *testing.T) {
	first, firstCycle, err := dfs.FindCycle(overshootTriangle(t))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		found, cycle, err := dfs.FindCycle(overshootTriangle(t))
		require.NoError(t, err)
		assert.Equal(t, first, found)
		assert.Equal(t, firstCycle, cycle)
	}
}

func TestFindCycle_WithStart(t *testing.T) {
	g := unitSquare(t)

	found, cycle, err := dfs.FindCycle(g, dfs.WithStart(key(1, 1)))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []geom.Key{key(1, 1), key(1, 0), key(0, 0), key(0, 1)}, cycle)

	_, _, err = dfs.FindCycle(g, dfs.WithStart(key(7, 7)))
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	// A dangling start finds nothing even though the graph has a cycle.
	found, _, err = dfs.FindCycle(overshootTriangle(t), dfs.WithStart(key(5, 0)))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindCycle_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	found, cycle, err := dfs.FindCycle(unitSquare(t), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, found)
	assert.Nil(t, cycle)
}

func TestFindCycle_HookErrors(t *testing.T) {
	boom := errors.New("boom")

	_, _, err := dfs.FindCycle(unitSquare(t), dfs.WithOnVisit(func(k geom.Key) error {
		if k == key(1, 1) {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	_, _, err = dfs.FindCycle(overshootTriangle(t), dfs.WithOnExit(func(geom.Key) error {
		return boom
	}))
	assert.ErrorIs(t, err, boom)
}

func TestCanonical(t *testing.T) {
	a, b, c, d := key(0, 0), key(1, 0), key(1, 1), key(0, 1)
	want := []geom.Key{a, b, c, d}

	for _, in := range [][]geom.Key{
		{a, b, c, d},
		{c, d, a, b},
		{d, c, b, a},
		{b, a, d, c},
	} {
		assert.Equal(t, want, dfs.Canonical(in))
	}
	assert.Nil(t, dfs.Canonical(nil))
	assert.Equal(t, 2, dfs.IndexOf(want, c))
	assert.Equal(t, -1, dfs.IndexOf(want, key(9, 9)))
	assert.Equal(t, []geom.Key{d, c, b, a}, dfs.Reverse(want))
}
