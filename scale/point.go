package scale

// point gives each distinct category an evenly spaced tick, endpoints
// included, in sorted order.
type point struct {
	values []string
	index  map[string]int
	size   float64
}

func newPoint(sorted []string, size float64) *point {
	idx := make(map[string]int, len(sorted))
	for i, v := range sorted {
		idx[v] = i
	}
	return &point{values: sorted, index: idx, size: size}
}

func (s *point) Kind() Kind    { return Point }
func (s *point) Size() float64 { return s.size }

func (s *point) Map(v interface{}) (float64, bool) {
	str, ok := v.(string)
	if !ok {
		return 0, false
	}
	i, ok := s.index[str]
	if !ok {
		return 0, false
	}
	return s.pixel(i), true
}

func (s *point) pixel(i int) float64 {
	if len(s.values) == 1 {
		return s.size / 2
	}
	return s.size * float64(i) / float64(len(s.values)-1)
}

// Invert returns exactly the categories whose tick falls inside the pixel
// range, boundaries included.
func (s *point) Invert(lo, hi float64) Extent {
	if lo > hi {
		lo, hi = hi, lo
	}
	sel := make(Categories)
	for i, v := range s.values {
		if px := s.pixel(i); lo <= px && px <= hi {
			sel[v] = true
		}
	}
	return sel
}

func (s *point) Ticks(max int) []Tick {
	stride := 1
	if max > 0 && len(s.values) > max {
		stride = (len(s.values) + max - 1) / max
	}
	var ticks []Tick
	for i := 0; i < len(s.values); i += stride {
		ticks = append(ticks, Tick{Pixel: s.pixel(i), Label: s.values[i]})
	}
	return ticks
}
