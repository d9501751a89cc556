// Package parcoords defines the data model shared by the packages of an
// interactive parallel-coordinates plot engine: columns, records, and the
// display options that drive axis construction.
//
// A plot has one vertical axis per column and one polyline per record. The
// subpackages divide the engine along its data flow: scale builds the
// value-to-pixel mapping for a single axis, axis owns axis ordering and
// brush filtering, geom turns records into polylines and answers
// nearest-path queries, interact holds the transient pointer/drag/brush
// state, and render draws the whole thing as SVG.
package parcoords

import "image/color"

// ValueKind classifies a column's values.
type ValueKind int

const (
	// Numeric columns hold float64 values.
	Numeric ValueKind = iota
	// Categorical columns hold string values.
	Categorical
)

func (k ValueKind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	}
	return "unknown"
}

// A Column describes one dimension of the plot. Columns are immutable for
// the lifetime of a schema.
type Column struct {
	Index int
	Name  string
	Kind  ValueKind
}

// A Schema is the ordered set of columns to display. Column i of
// Schema.Columns must have Index i.
type Schema struct {
	Columns []Column
}

// A Record is one plotted entity (for example one hyperparameter session
// group). Values maps column index to the record's value for that column:
// float64 for Numeric columns, string for Categorical ones. A missing key
// means the record has no value for that column.
type Record struct {
	// ID identifies the record across record-set updates. Selection and
	// hover state survive a record-set change by re-resolving this ID.
	ID string

	Values map[int]interface{}
}

// Value returns the record's value for the given column index.
func (r *Record) Value(col int) (interface{}, bool) {
	v, ok := r.Values[col]
	return v, ok
}

// Valid reports whether the record has a value for every column in the
// schema. Only valid records participate in scale domains and rendering.
func (r *Record) Valid(s Schema) bool {
	for _, c := range s.Columns {
		if _, ok := r.Values[c.Index]; !ok {
			return false
		}
	}
	return true
}

// ValidRecords returns the records that have a value for every column,
// preserving order. Invalid records are dropped silently.
func ValidRecords(s Schema, recs []*Record) []*Record {
	valid := make([]*Record, 0, len(recs))
	for _, r := range recs {
		if r.Valid(s) {
			valid = append(valid, r)
		}
	}
	return valid
}

// ColumnOptions selects how one column's axis is scaled.
type ColumnOptions struct {
	// Scale names the scale kind: "linear" (the default), "quantile", or
	// "point". Numeric columns may use any of the three; categorical
	// columns always use a point scale regardless of this setting.
	Scale string
}

// Options configures the plot-wide display settings.
//
// The zero value is usable: every numeric column gets a linear scale, every
// categorical column a point scale, and no line coloring is applied.
type Options struct {
	// Columns holds per-column settings, parallel to Schema.Columns.
	// It may be nil or shorter than the schema; missing entries take
	// the defaults.
	Columns []ColumnOptions

	// ColorBy is the index of a numeric column used to color lines, or
	// -1 (and any other out-of-range value) for uniform coloring.
	ColorBy int

	// MinColor and MaxColor are the gradient endpoints for ColorBy.
	// Both zero means the renderer's default gradient.
	MinColor, MaxColor color.RGBA
}

// ColumnScale returns the configured scale name for column i, or "" when
// unset.
func (o Options) ColumnScale(i int) string {
	if i < len(o.Columns) {
		return o.Columns[i].Scale
	}
	return ""
}
