// Package render draws a parallel-coordinates plot as SVG: axes with tick
// labels, brush rectangles, and one polyline per record, colored by the
// configured column for records passing every brush and dimmed otherwise.
package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/aclements/go-gg/palette"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/colornames"

	"github.com/LockDragonBorn/parcoords"
	"github.com/LockDragonBorn/parcoords/axis"
	"github.com/LockDragonBorn/parcoords/geom"
	"github.com/LockDragonBorn/parcoords/interact"
)

// Options control the rendered output. The zero value is usable.
type Options struct {
	// Margin is the whitespace around the plot area in pixels.
	// Defaults to 40.
	Margin int

	// TickCount caps the ticks per axis. Defaults to 8.
	TickCount int
}

func (o Options) withDefaults() Options {
	if o.Margin == 0 {
		o.Margin = 40
	}
	if o.TickCount == 0 {
		o.TickCount = 8
	}
	return o
}

var (
	defaultMinColor = colornames.Lightskyblue
	defaultMaxColor = colornames.Darkblue
	lineColor       = colornames.Steelblue
	dimColor        = colornames.Lightgray
	selectColor     = colornames.Crimson
	axisColor       = colornames.Dimgray
	brushFill       = colornames.Gainsboro
)

// SVG writes the controller's current visual state. A controller whose
// configuration failed (for example an axis with no values) renders an
// empty canvas rather than failing the caller.
func SVG(w io.Writer, c *interact.Controller, opts Options) {
	opts = opts.withDefaults()
	m := c.Model()

	p := plotArea{m: m, margin: opts.Margin}
	canvas := svg.New(w)
	if m == nil || c.Err() != nil {
		canvas.Start(2*opts.Margin, 2*opts.Margin)
		canvas.End()
		return
	}
	canvas.Start(int(m.Width)+2*opts.Margin, int(m.Height)+2*opts.Margin)

	grad := gradient(m.Options())
	sel := c.Selection()

	// Suppressed lines first so passing lines draw over them.
	for _, path := range c.Paths() {
		if !m.Passes(path.Record) {
			p.polyline(canvas, path, dimColor, 1)
		}
	}
	for _, path := range c.VisiblePaths() {
		p.polyline(canvas, path, p.lineColor(path.Record, grad), 1)
	}
	for _, path := range c.Paths() {
		switch path.Record {
		case sel.Hovered:
			p.polyline(canvas, path, p.lineColor(path.Record, grad), 3)
		case sel.Selected:
			p.polyline(canvas, path, selectColor, 3)
		}
	}

	for _, a := range m.Axes() {
		p.drawAxis(canvas, a, opts.TickCount)
	}
	canvas.End()
}

// plotArea converts scale coordinates (y up, origin at the axis bottom) to
// screen coordinates (y down, margin offset).
type plotArea struct {
	m      *axis.Model
	margin int
}

func (p plotArea) sx(x float64) int { return p.margin + int(x+0.5) }
func (p plotArea) sy(y float64) int { return p.margin + int(p.m.Height-y+0.5) }

func (p plotArea) polyline(canvas *svg.SVG, path geom.Path, col color.RGBA, width int) {
	xs := make([]int, len(path.Points))
	ys := make([]int, len(path.Points))
	for i, pt := range path.Points {
		xs[i] = p.sx(pt.X)
		ys[i] = p.sy(pt.Y)
	}
	canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", hex(col), width))
}

func (p plotArea) drawAxis(canvas *svg.SVG, a *axis.State, tickCount int) {
	x := p.sx(a.X())
	top, bottom := p.sy(p.m.Height), p.sy(0)

	if lo, hi, ok := a.BrushPixels(); ok {
		canvas.Rect(x-6, p.sy(hi), 12, int(hi-lo+0.5),
			fmt.Sprintf("fill:%s;fill-opacity:0.6", hex(brushFill)))
	}

	canvas.Line(x, top, x, bottom, fmt.Sprintf("stroke:%s;stroke-width:1", hex(axisColor)))
	canvas.Text(x, top-8, a.Col.Name,
		fmt.Sprintf("text-anchor:middle;font-size:11px;fill:%s", hex(axisColor)))

	for _, tick := range a.Scale.Ticks(tickCount) {
		y := p.sy(tick.Pixel)
		canvas.Line(x-3, y, x+3, y, fmt.Sprintf("stroke:%s;stroke-width:1", hex(axisColor)))
		canvas.Text(x+6, y+3, tick.Label,
			fmt.Sprintf("font-size:9px;fill:%s", hex(axisColor)))
	}
}

// lineColor maps the record's color-by value through the gradient, or the
// uniform default when coloring is off.
func (p plotArea) lineColor(r *parcoords.Record, grad palette.Continuous) color.RGBA {
	opts := p.m.Options()
	a := p.m.Axis(opts.ColorBy)
	if grad == nil || a == nil {
		return lineColor
	}
	v, ok := r.Value(a.Col.Index)
	if !ok {
		return lineColor
	}
	px, ok := a.Scale.Map(v)
	if !ok || a.Scale.Size() == 0 {
		return lineColor
	}
	return toRGBA(grad.Map(px / a.Scale.Size()))
}

func gradient(opts parcoords.Options) palette.Continuous {
	if opts.ColorBy < 0 {
		return nil
	}
	min, max := opts.MinColor, opts.MaxColor
	if min == (color.RGBA{}) && max == (color.RGBA{}) {
		min, max = defaultMinColor, defaultMaxColor
	}
	// RGBGradient.Map holds the first color across the whole first
	// segment, so a bare two-color gradient would step; sample the
	// endpoints into a ramp instead.
	const steps = 16
	colors := make([]color.RGBA, steps+1)
	for i := range colors {
		colors[i] = lerpRGBA(min, max, float64(i)/steps)
	}
	return palette.RGBGradient{Colors: colors}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x)*(1-t) + float64(y)*t + 0.5) }
	return color.RGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
