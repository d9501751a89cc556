package axis

import "github.com/LockDragonBorn/parcoords"

// SetBrush records a brush selection on the axis as the pixel range
// [lo, hi] and recomputes the axis's extent through its scale. Called on
// every brush-drag tick and on brush end.
func (m *Model) SetBrush(a *State, lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	a.brushLo, a.brushHi = lo, hi
	a.brushed = true
	a.Extent = a.Scale.Invert(lo, hi)
}

// ClearBrush removes the axis's brush selection; the axis then imposes no
// filtering constraint.
func (m *Model) ClearBrush(a *State) {
	a.brushed = false
	a.Extent = nil
}

// Passes reports whether the record satisfies every active brush: for each
// brushed axis, the record's value at that axis's column must be contained
// in the axis's extent. Axes without a brush are neutral, so with no
// brushes every record passes.
//
// Adding or narrowing a brush can only shrink the passing set; removing
// one can only grow it.
func (m *Model) Passes(r *parcoords.Record) bool {
	for _, a := range m.axes {
		if a.Extent == nil {
			continue
		}
		v, ok := r.Value(a.Col.Index)
		if !ok || !a.Extent.Contains(v) {
			return false
		}
	}
	return true
}

// Passing returns the records that satisfy every active brush, in record
// order.
func (m *Model) Passing() []*parcoords.Record {
	out := make([]*parcoords.Record, 0, len(m.records))
	for _, r := range m.records {
		if m.Passes(r) {
			out = append(out, r)
		}
	}
	return out
}
