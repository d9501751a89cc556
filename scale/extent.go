package scale

// An Extent is the value-space image of a pixel-range brush selection: the
// set or interval of values the brush selects. A record passes an axis's
// brush iff its value at that column is contained in the extent.
type Extent interface {
	// Contains reports whether v is selected.
	Contains(v interface{}) bool

	// IsEmpty reports whether no value can be selected.
	IsEmpty() bool
}

// Interval is a numeric extent. HalfOpen selects [Lo, Hi) instead of the
// default closed [Lo, Hi].
type Interval struct {
	Lo, Hi   float64
	HalfOpen bool
}

func (iv Interval) Contains(v interface{}) bool {
	x, ok := numeric(v)
	if !ok {
		return false
	}
	if x < iv.Lo {
		return false
	}
	if iv.HalfOpen {
		return x < iv.Hi
	}
	return x <= iv.Hi
}

func (iv Interval) IsEmpty() bool {
	if iv.HalfOpen {
		return iv.Lo >= iv.Hi
	}
	return iv.Lo > iv.Hi
}

// Categories is the extent of a point scale: the set of selected values.
type Categories map[string]bool

func (c Categories) Contains(v interface{}) bool {
	s, ok := v.(string)
	return ok && c[s]
}

func (c Categories) IsEmpty() bool { return len(c) == 0 }
