package scale

import (
	"math"
	"strconv"

	mmscale "github.com/aclements/go-moremath/scale"
)

// linear maps [min, max] onto [0, size]. A degenerate domain (min == max)
// maps its single value to the midpoint.
type linear struct {
	min, max float64
	size     float64
}

func newLinear(sorted []float64, size float64) *linear {
	return &linear{min: sorted[0], max: sorted[len(sorted)-1], size: size}
}

func (s *linear) Kind() Kind    { return Linear }
func (s *linear) Size() float64 { return s.size }

func (s *linear) Map(v interface{}) (float64, bool) {
	x, ok := numeric(v)
	if !ok {
		return 0, false
	}
	return s.pixel(x), true
}

func (s *linear) pixel(x float64) float64 {
	if s.max == s.min {
		return s.size / 2
	}
	return (x - s.min) / (s.max - s.min) * s.size
}

func (s *linear) unmap(px float64) float64 {
	if s.max == s.min {
		return s.min
	}
	return s.min + px/s.size*(s.max-s.min)
}

// Invert returns the closed value interval selected by the pixel range. A
// value exactly on a selection boundary is included.
func (s *linear) Invert(lo, hi float64) Extent {
	if lo > hi {
		lo, hi = hi, lo
	}
	if s.max == s.min {
		if lo <= s.size/2 && s.size/2 <= hi {
			return Interval{Lo: s.min, Hi: s.min}
		}
		return Interval{Lo: 1, Hi: 0}
	}
	return Interval{Lo: s.unmap(lo), Hi: s.unmap(hi)}
}

func (s *linear) Ticks(max int) []Tick {
	if s.max == s.min {
		return []Tick{{Pixel: s.size / 2, Label: formatTick(s.min)}}
	}
	vals := linearTicks(s.min, s.max, max)
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{Pixel: s.pixel(v), Label: formatTick(v)}
	}
	return ticks
}

// linearTicks picks round tick values in [min, max]. Levels encode steps
// 1-2-5 within each decade, searched with scale.TickOptions.
func linearTicks(min, max float64, maxTicks int) []float64 {
	if maxTicks < 2 {
		maxTicks = 2
	}
	step := func(l int) float64 {
		mant := [3]float64{1, 2, 5}[((l%3)+3)%3]
		exp := l / 3
		if l < 0 && l%3 != 0 {
			exp--
		}
		return mant * math.Pow(10, float64(exp))
	}
	count := func(l int) int {
		st := step(l)
		lo, hi := math.Ceil(min/st), math.Floor(max/st)
		if hi < lo {
			return 0
		}
		return int(hi-lo) + 1
	}
	ticksAt := func(l int) []float64 {
		st := step(l)
		var ts []float64
		for v := math.Ceil(min/st) * st; v <= max+st/1e9; v += st {
			ts = append(ts, v)
		}
		return ts
	}
	opts := &mmscale.TickOptions{Max: maxTicks}
	guess := int(math.Round(3 * math.Log10(max-min)))
	level, ok := opts.FindLevel(funcTicker{count, ticksAt}, guess)
	if !ok {
		return []float64{min, max}
	}
	return ticksAt(level)
}

// funcTicker adapts the count/ticksAt closures to mmscale.Ticker.
type funcTicker struct {
	count   func(l int) int
	ticksAt func(l int) []float64
}

func (t funcTicker) CountTicks(level int) int           { return t.count(level) }
func (t funcTicker) TicksAtLevel(level int) interface{} { return t.ticksAt(level) }

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
