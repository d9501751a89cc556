// Package axis owns the per-axis state of a parallel-coordinates plot: the
// ordered sequence of axes, their pixel positions, their scales, and their
// brush selections. It also evaluates the brush filter, the conjunction of
// every active axis constraint.
package axis

import (
	"fmt"

	"github.com/LockDragonBorn/parcoords"
	"github.com/LockDragonBorn/parcoords/scale"
)

// State is the mutable state of one displayed axis. Exactly one State
// exists per schema column; the Model's order of States defines the
// left-to-right draw order.
type State struct {
	Col   parcoords.Column
	Scale scale.Scale

	// Extent is the value-space image of the current brush selection,
	// or nil when the axis is not brushed. An axis without an extent
	// imposes no filtering constraint.
	Extent scale.Extent

	x        float64 // settled position from even spacing
	dragX    float64 // live position while dragged
	dragging bool

	brushLo, brushHi float64
	brushed          bool
}

// X returns the axis's effective pixel position: the live pointer position
// while the axis is dragged, its settled position otherwise.
func (s *State) X() float64 {
	if s.dragging {
		return s.dragX
	}
	return s.x
}

// SettledX returns the position the axis occupies when no drag is active.
func (s *State) SettledX() float64 { return s.x }

// Dragging reports whether the axis is currently being dragged.
func (s *State) Dragging() bool { return s.dragging }

// Brushed reports whether the axis has an active brush selection.
func (s *State) Brushed() bool { return s.brushed }

// BrushPixels returns the active brush selection in pixels. ok is false
// when the axis is not brushed.
func (s *State) BrushPixels() (lo, hi float64, ok bool) {
	return s.brushLo, s.brushHi, s.brushed
}

// Model holds the axes of one plot in draw order, plus the valid records
// their scale domains were built from.
type Model struct {
	Width, Height float64

	schema  parcoords.Schema
	opts    parcoords.Options
	axes    []*State
	records []*parcoords.Record
}

// New builds a Model for the schema in identity column order. Records
// missing any column value are excluded from the scale domains and from
// Records. Each column's scale kind comes from opts; categorical columns
// always get a point scale.
//
// New fails with scale.ErrEmptyDomain wrapped per column when a column has
// no valid value across all records, which includes the case of zero valid
// records.
func New(schema parcoords.Schema, opts parcoords.Options, recs []*parcoords.Record, width, height float64) (*Model, error) {
	m := &Model{
		Width:  width,
		Height: height,
		schema: schema,
		opts:   opts,
	}
	m.axes = make([]*State, len(schema.Columns))
	for i, col := range schema.Columns {
		m.axes[i] = &State{Col: col}
	}
	m.settle()
	if err := m.SetRecords(recs); err != nil {
		return nil, err
	}
	return m, nil
}

// Axes returns the axes in current left-to-right draw order. The slice is
// owned by the Model.
func (m *Model) Axes() []*State { return m.axes }

// Records returns the valid records the current scales were built from.
func (m *Model) Records() []*parcoords.Record { return m.records }

// Axis returns the state for the given column index.
func (m *Model) Axis(col int) *State {
	for _, a := range m.axes {
		if a.Col.Index == col {
			return a
		}
	}
	return nil
}

// SetRecords replaces the record set, rebuilding every axis scale over the
// new valid records and recomputing brush extents from the surviving pixel
// selections.
func (m *Model) SetRecords(recs []*parcoords.Record) error {
	valid := parcoords.ValidRecords(m.schema, recs)
	scales := make([]scale.Scale, len(m.axes))
	for i, a := range m.axes {
		kind, err := m.columnKind(a.Col)
		if err != nil {
			return err
		}
		domain := make([]interface{}, 0, len(valid))
		for _, r := range valid {
			if v, ok := r.Value(a.Col.Index); ok {
				domain = append(domain, v)
			}
		}
		s, err := scale.New(kind, domain, m.Height)
		if err != nil {
			return fmt.Errorf("column %q: %w", a.Col.Name, err)
		}
		scales[i] = s
	}
	// Commit only once every column succeeded, so a failure leaves the
	// previous configuration intact.
	for i, a := range m.axes {
		a.Scale = scales[i]
	}
	m.records = valid
	m.refreshExtents()
	return nil
}

// SetOptions replaces the display options and rebuilds the scales.
func (m *Model) SetOptions(opts parcoords.Options) error {
	m.opts = opts
	return m.SetRecords(m.records)
}

// Options returns the current display options.
func (m *Model) Options() parcoords.Options { return m.opts }

func (m *Model) columnKind(col parcoords.Column) (scale.Kind, error) {
	if col.Kind == parcoords.Categorical {
		return scale.Point, nil
	}
	return scale.ParseKind(m.opts.ColumnScale(col.Index))
}

// settle spaces the axes evenly over [0, Width] in their current order.
func (m *Model) settle() {
	n := len(m.axes)
	for i, a := range m.axes {
		if n == 1 {
			a.x = m.Width / 2
		} else {
			a.x = m.Width * float64(i) / float64(n-1)
		}
	}
}

// refreshExtents recomputes every brushed axis's extent from its stored
// pixel selection. Called whenever a scale may have changed under an
// active brush.
func (m *Model) refreshExtents() {
	for _, a := range m.axes {
		if a.brushed {
			a.Extent = a.Scale.Invert(a.brushLo, a.brushHi)
		} else {
			a.Extent = nil
		}
	}
}
