package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LockDragonBorn/parcoords"
	"github.com/LockDragonBorn/parcoords/axis"
)

func testModel(t *testing.T) *axis.Model {
	t.Helper()
	schema := parcoords.Schema{Columns: []parcoords.Column{
		{Index: 0, Name: "A", Kind: parcoords.Numeric},
		{Index: 1, Name: "B", Kind: parcoords.Numeric},
	}}
	recs := []*parcoords.Record{
		{ID: "r1", Values: map[int]interface{}{0: 0.0, 1: 0.0}},
		{ID: "r2", Values: map[int]interface{}{0: 5.0, 1: 50.0}},
		{ID: "r3", Values: map[int]interface{}{0: 10.0, 1: 100.0}},
	}
	m, err := axis.New(schema, parcoords.Options{ColorBy: -1}, recs, 400, 200)
	require.NoError(t, err)
	return m
}

func TestControlPointsScenario(t *testing.T) {
	// A in [0,10], B in [0,100], 200px axes: r2's vertices land at 50%
	// of the axis height on both axes because both ranges are fully
	// spanned.
	m := testModel(t)
	pts, ok := ControlPoints(m.Records()[1], m.Axes())
	require.True(t, ok)
	require.Len(t, pts, 2)
	assert.Equal(t, Point{X: 0, Y: 100}, pts[0])
	assert.Equal(t, Point{X: 400, Y: 100}, pts[1])
}

func TestControlPointsFollowOrder(t *testing.T) {
	m := testModel(t)
	require.NoError(t, m.SetOrder([]int{1, 0}))

	for _, r := range m.Records() {
		pts, ok := ControlPoints(r, m.Axes())
		require.True(t, ok)
		for i, a := range m.Axes() {
			assert.Equal(t, a.X(), pts[i].X,
				"vertex %d of %s must sit on axis %d", i, r.ID, a.Col.Index)
		}
	}
}

func TestControlPointsMissingValue(t *testing.T) {
	m := testModel(t)
	_, ok := ControlPoints(&parcoords.Record{
		ID: "partial", Values: map[int]interface{}{0: 1.0},
	}, m.Axes())
	assert.False(t, ok)
}

func TestClosestOnSegment(t *testing.T) {
	m := testModel(t)
	paths := Paths(m.Records(), m.Axes())
	require.Len(t, paths, 3)

	// A point exactly on r2's segment (midway: (200, 100)).
	hit := Closest(paths, Point{X: 200, Y: 100}, 10)
	require.NotNil(t, hit)
	assert.Equal(t, "r2", hit.Record.ID)

	// r3 runs from (0,200) to (400,200): on the line, off the others.
	hit = Closest(paths, Point{X: 123, Y: 200}, 10)
	require.NotNil(t, hit)
	assert.Equal(t, "r3", hit.Record.ID)
}

func TestClosestThreshold(t *testing.T) {
	m := testModel(t)
	paths := Paths(m.Records(), m.Axes())

	// (200, 60) is 40px from r2's segment and farther from the rest.
	assert.Nil(t, Closest(paths, Point{X: 200, Y: 60}, 30),
		"farther than the threshold from every path")

	hit := Closest(paths, Point{X: 200, Y: 60}, 50)
	require.NotNil(t, hit)
	assert.Equal(t, "r2", hit.Record.ID)
}

func TestClosestUsesBracketingSegment(t *testing.T) {
	// Three axes so paths bend: the query near the right segment must
	// measure against that segment, not the left one.
	schema := parcoords.Schema{Columns: []parcoords.Column{
		{Index: 0, Name: "A", Kind: parcoords.Numeric},
		{Index: 1, Name: "B", Kind: parcoords.Numeric},
		{Index: 2, Name: "C", Kind: parcoords.Numeric},
	}}
	recs := []*parcoords.Record{
		{ID: "v", Values: map[int]interface{}{0: 0.0, 1: 1.0, 2: 0.0}},
		{ID: "flat", Values: map[int]interface{}{0: 1.0, 1: 0.0, 2: 1.0}},
	}
	m, err := axis.New(schema, parcoords.Options{ColorBy: -1}, recs, 400, 100)
	require.NoError(t, err)
	paths := Paths(m.Records(), m.Axes())

	// Between axes 1 (x=200) and 2 (x=400), "v" descends from 100 to 0
	// while "flat" rises from 0 to 100. At x=360 "v" passes y=20 and
	// "flat" y=80, so a query at (360, 15) is near only "v".
	hit := Closest(paths, Point{X: 360, Y: 15}, 20)
	require.NotNil(t, hit)
	assert.Equal(t, "v", hit.Record.ID)
}

func TestPointToSegmentEndpoints(t *testing.T) {
	d := pointToSegment(Point{X: -3, Y: 4}, Point{X: 0, Y: 0}, Point{X: 10, Y: 0})
	assert.InDelta(t, 5.0, d, 1e-9, "projection clamps to the segment start")

	d = pointToSegment(Point{X: 5, Y: 7}, Point{X: 3, Y: 3}, Point{X: 3, Y: 3})
	assert.InDelta(t, 4.47213595, d, 1e-6, "zero-length segment degrades to point distance")
}
