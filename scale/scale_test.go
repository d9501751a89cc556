package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Kind
	}{
		{"", Linear},
		{"linear", Linear},
		{"quantile", Quantile},
		{"point", Point},
	} {
		k, err := ParseKind(tc.in)
		require.NoError(t, err, "ParseKind(%q)", tc.in)
		assert.Equal(t, tc.want, k, "ParseKind(%q)", tc.in)
	}
	_, err := ParseKind("radial")
	assert.Error(t, err)
}

func TestEmptyDomain(t *testing.T) {
	for _, kind := range []Kind{Linear, Quantile, Point} {
		_, err := New(kind, nil, 100)
		assert.ErrorIs(t, err, ErrEmptyDomain, "kind %v", kind)
	}
	// Values of the wrong type do not count toward the domain.
	_, err := New(Linear, []interface{}{"a", "b"}, 100)
	assert.ErrorIs(t, err, ErrEmptyDomain)
	_, err = New(Point, []interface{}{1.0, 2.0}, 100)
	assert.ErrorIs(t, err, ErrEmptyDomain)
}

func TestLinearMap(t *testing.T) {
	s, err := New(Linear, []interface{}{0.0, 10.0, 5.0}, 200)
	require.NoError(t, err)

	for _, tc := range []struct {
		v    float64
		want float64
	}{
		{0, 0},
		{5, 100},
		{10, 200},
	} {
		px, ok := s.Map(tc.v)
		require.True(t, ok)
		assert.InDelta(t, tc.want, px, 1e-9, "Map(%v)", tc.v)
	}

	_, ok := s.Map("nope")
	assert.False(t, ok)
}

func TestLinearDegenerateDomain(t *testing.T) {
	s, err := New(Linear, []interface{}{3.0, 3.0, 3.0}, 100)
	require.NoError(t, err)

	px, ok := s.Map(3.0)
	require.True(t, ok)
	assert.Equal(t, 50.0, px, "single value maps to the midpoint")

	assert.True(t, s.Invert(40, 60).Contains(3.0))
	assert.True(t, s.Invert(0, 10).IsEmpty())
}

func TestLinearInvertClosed(t *testing.T) {
	s, err := New(Linear, []interface{}{0.0, 10.0}, 100)
	require.NoError(t, err)

	// Pixel range [40, 60] is the value interval [4, 6], closed: values
	// exactly on a boundary are included.
	ext := s.Invert(40, 60)
	assert.True(t, ext.Contains(4.0))
	assert.True(t, ext.Contains(5.0))
	assert.True(t, ext.Contains(6.0))
	assert.False(t, ext.Contains(3.999))
	assert.False(t, ext.Contains(6.001))

	// Order of the pixel arguments does not matter.
	assert.True(t, s.Invert(60, 40).Contains(5.0))
}

func TestLinearTicks(t *testing.T) {
	s, err := New(Linear, []interface{}{0.0, 10.0}, 100)
	require.NoError(t, err)

	ticks := s.Ticks(11)
	require.Len(t, ticks, 11)
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, 0.0, ticks[0].Pixel)
	assert.Equal(t, "10", ticks[10].Label)
	assert.Equal(t, 100.0, ticks[10].Pixel)

	// Fewer allowed ticks forces a coarser step.
	coarse := s.Ticks(3)
	assert.True(t, len(coarse) <= 3)
}

func TestQuantileHalfOpen(t *testing.T) {
	domain := []interface{}{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0}
	s, err := New(Quantile, domain, 80)
	require.NoError(t, err)

	// The full pixel range inverts to [min, max): the domain minimum is
	// included, the maximum excluded.
	ext := s.Invert(0, 80)
	assert.True(t, ext.Contains(1.0))
	assert.True(t, ext.Contains(7.9))
	assert.False(t, ext.Contains(8.0))

	// The first pixel band selects only the first bucket.
	first := s.Invert(0, 10).(Interval)
	assert.True(t, first.HalfOpen)
	assert.Equal(t, 1.0, first.Lo)
	assert.True(t, first.Hi > 1.0 && first.Hi <= 2.0)
	assert.True(t, first.Contains(1.0))
	assert.False(t, first.Contains(first.Hi))
}

func TestQuantileMapMonotone(t *testing.T) {
	domain := []interface{}{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0}
	s, err := New(Quantile, domain, 80)
	require.NoError(t, err)

	prev := -1.0
	for _, v := range []float64{1, 2, 3, 4, 5, 6, 7, 8} {
		px, ok := s.Map(v)
		require.True(t, ok)
		assert.True(t, px > prev, "Map(%v)=%v not increasing", v, px)
		assert.True(t, px >= 0 && px <= 80)
		prev = px
	}
}

func TestQuantileCollapsedTicks(t *testing.T) {
	// Many records, two distinct values: two buckets, and boundary
	// labels never repeat.
	domain := []interface{}{1.0, 1.0, 1.0, 1.0, 9.0, 9.0, 9.0, 9.0}
	s, err := New(Quantile, domain, 100)
	require.NoError(t, err)

	ticks := s.Ticks(10)
	seen := make(map[string]bool)
	for _, tk := range ticks {
		assert.False(t, seen[tk.Label], "duplicate tick label %q", tk.Label)
		seen[tk.Label] = true
	}
}

func TestPointScale(t *testing.T) {
	s, err := New(Point, []interface{}{"y", "x", "z", "y"}, 100)
	require.NoError(t, err)

	// Distinct values, sorted: x at 0, y at 50, z at 100.
	for _, tc := range []struct {
		v    string
		want float64
	}{
		{"x", 0},
		{"y", 50},
		{"z", 100},
	} {
		px, ok := s.Map(tc.v)
		require.True(t, ok)
		assert.Equal(t, tc.want, px, "Map(%q)", tc.v)
	}

	_, ok := s.Map("w")
	assert.False(t, ok, "value outside the domain")
}

func TestPointInvertSet(t *testing.T) {
	s, err := New(Point, []interface{}{"x", "y", "z"}, 100)
	require.NoError(t, err)

	// A range covering only y's tick selects exactly {y}.
	ext := s.Invert(30, 70)
	assert.True(t, ext.Contains("y"))
	assert.False(t, ext.Contains("x"))
	assert.False(t, ext.Contains("z"))

	// Boundaries are inclusive: a range ending exactly on a tick
	// selects it.
	assert.True(t, s.Invert(0, 50).Contains("y"))
	assert.True(t, s.Invert(50, 100).Contains("y"))

	assert.True(t, s.Invert(10, 40).IsEmpty())
}

func TestPointSingleValue(t *testing.T) {
	s, err := New(Point, []interface{}{"only"}, 100)
	require.NoError(t, err)
	px, ok := s.Map("only")
	require.True(t, ok)
	assert.Equal(t, 50.0, px)
}
