package scale

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// maxBuckets caps the number of quantile buckets so that axes with many
// distinct values still get readable tick labels.
const maxBuckets = 20

// quantile positions a value by the quantile bucket its rank falls in.
// Bucket i covers the half-open value range [bounds[i], bounds[i+1]) and
// occupies the pixel band [size*i/nb, size*(i+1)/nb); a value is drawn at
// its bucket's center.
type quantile struct {
	bounds []float64 // len nb+1; bounds[0] = min, bounds[nb] = max
	nb     int
	size   float64
}

func newQuantile(sorted []float64, size float64) *quantile {
	nb := distinctCount(sorted)
	if nb > maxBuckets {
		nb = maxBuckets
	}
	sample := stats.Sample{Xs: sorted, Sorted: true}
	bounds := make([]float64, nb+1)
	for i := 0; i <= nb; i++ {
		bounds[i] = sample.Quantile(float64(i) / float64(nb))
	}
	return &quantile{bounds: bounds, nb: nb, size: size}
}

func distinctCount(sorted []float64) int {
	n := 0
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			n++
		}
	}
	return n
}

func (s *quantile) Kind() Kind    { return Quantile }
func (s *quantile) Size() float64 { return s.size }

func (s *quantile) Map(v interface{}) (float64, bool) {
	x, ok := numeric(v)
	if !ok {
		return 0, false
	}
	i := s.bucket(x)
	return s.size * (float64(i) + 0.5) / float64(s.nb), true
}

// bucket returns the index of the bucket holding x: the largest i with
// bounds[i] <= x, capped at the last bucket so the domain maximum belongs
// to it.
func (s *quantile) bucket(x float64) int {
	for i := s.nb - 1; i > 0; i-- {
		if x >= s.bounds[i] {
			return i
		}
	}
	return 0
}

// Invert returns the half-open value interval [lo, hi) covering every
// bucket whose pixel band intersects the selection. A record whose value
// equals the lower bound is selected; one equal to the upper bound is not.
func (s *quantile) Invert(lo, hi float64) Extent {
	if lo > hi {
		lo, hi = hi, lo
	}
	nb := float64(s.nb)
	first := int(math.Floor(lo / s.size * nb))
	last := int(math.Ceil(hi/s.size*nb)) - 1
	if first < 0 {
		first = 0
	}
	if last > s.nb-1 {
		last = s.nb - 1
	}
	if last < first {
		return Interval{Lo: 1, Hi: 0, HalfOpen: true}
	}
	return Interval{Lo: s.bounds[first], Hi: s.bounds[last+1], HalfOpen: true}
}

// Ticks labels the quantile boundaries. Boundaries that collapse to the
// same value (many records sharing few values) produce a single tick, so
// labels never overlap.
func (s *quantile) Ticks(max int) []Tick {
	stride := 1
	if max > 0 && s.nb+1 > max {
		stride = (s.nb + max) / max
	}
	var ticks []Tick
	lastLabel := ""
	for i := 0; i <= s.nb; i += stride {
		label := formatTick(s.bounds[i])
		if label == lastLabel {
			continue
		}
		lastLabel = label
		ticks = append(ticks, Tick{Pixel: s.size * float64(i) / float64(s.nb), Label: label})
	}
	return ticks
}
