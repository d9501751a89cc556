// Package scale builds the one-dimensional value-to-pixel scales behind the
// axes of a parallel-coordinates plot.
//
// A Scale maps a column's values onto a pixel extent [0, Size] and answers
// the inverse question posed by brushing: which values does a pixel range
// select? The answer is an Extent whose membership rule depends on the
// scale kind: a closed interval for Linear, a half-open interval for
// Quantile, and a set of categories for Point.
package scale

import (
	"errors"
	"fmt"
	"sort"
)

// Kind selects how a scale positions values along the axis.
type Kind int

const (
	// Linear maps [min, max] linearly onto the pixel extent.
	Linear Kind = iota
	// Quantile positions a value by its quantile rank among the domain
	// values rather than by magnitude.
	Quantile
	// Point gives each distinct value an evenly spaced tick.
	Point
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Quantile:
		return "quantile"
	case Point:
		return "point"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps an option string to a Kind. The empty string defaults to
// Linear.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "linear":
		return Linear, nil
	case "quantile":
		return Quantile, nil
	case "point":
		return Point, nil
	}
	return 0, fmt.Errorf("scale: unknown kind %q", s)
}

// ErrEmptyDomain is returned when a scale is requested for a domain with no
// usable values. Callers must not build an axis for such a column.
var ErrEmptyDomain = errors.New("scale: empty domain")

// A Tick is a labeled position on an axis, in pixels.
type Tick struct {
	Pixel float64
	Label string
}

// A Scale maps values to pixel positions on [0, Size] and pixel ranges back
// to value extents.
type Scale interface {
	Kind() Kind

	// Size returns the pixel extent the scale maps onto.
	Size() float64

	// Map returns the pixel position of v. It reports false if v is not
	// of the scale's value type.
	Map(v interface{}) (float64, bool)

	// Invert returns the extent of values selected by the pixel range
	// [lo, hi]. lo and hi may be given in either order.
	Invert(lo, hi float64) Extent

	// Ticks returns at most max labeled positions for drawing the axis.
	Ticks(max int) []Tick
}

// New builds a scale of the given kind over the domain values. Domain
// entries that are not of the kind's value type (float64 or a numeric type
// for Linear and Quantile, string for Point) are ignored; if nothing
// usable remains, New returns ErrEmptyDomain.
func New(kind Kind, domain []interface{}, size float64) (Scale, error) {
	switch kind {
	case Linear, Quantile:
		var xs []float64
		for _, v := range domain {
			if x, ok := numeric(v); ok {
				xs = append(xs, x)
			}
		}
		if len(xs) == 0 {
			return nil, ErrEmptyDomain
		}
		sort.Float64s(xs)
		if kind == Linear {
			return newLinear(xs, size), nil
		}
		return newQuantile(xs, size), nil

	case Point:
		seen := make(map[string]bool)
		var vals []string
		for _, v := range domain {
			s, ok := v.(string)
			if !ok || seen[s] {
				continue
			}
			seen[s] = true
			vals = append(vals, s)
		}
		if len(vals) == 0 {
			return nil, ErrEmptyDomain
		}
		sort.Strings(vals)
		return newPoint(vals, size), nil
	}
	return nil, fmt.Errorf("scale: unknown kind %v", kind)
}

// numeric coerces the numeric types a record value may hold. JSON decoding
// produces float64; hand-built records often use int.
func numeric(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
