// Package geom converts records into polyline geometry under the current
// axis configuration and answers nearest-path queries for hover and
// selection hit-testing.
package geom

import (
	"math"

	"github.com/LockDragonBorn/parcoords"
	"github.com/LockDragonBorn/parcoords/axis"
)

// A Point is a position in plot pixel space. Y grows with the axis scale,
// from 0 at a scale's low end to the axis height at its high end; the
// renderer flips it for screen coordinates.
type Point struct {
	X, Y float64
}

// A Path is one record's polyline: one vertex per axis, in draw order.
type Path struct {
	Record *parcoords.Record
	Points []Point
}

// ControlPoints returns the record's vertex per axis in current
// left-to-right order. The i-th point's x coordinate is the effective
// (live-or-settled) position of the i-th axis; its y coordinate is the
// axis's scale applied to the record's value at that column. ok is false
// when any axis value is missing or unmappable, which cannot happen for a
// valid record.
func ControlPoints(r *parcoords.Record, axes []*axis.State) ([]Point, bool) {
	pts := make([]Point, len(axes))
	for i, a := range axes {
		v, ok := r.Value(a.Col.Index)
		if !ok {
			return nil, false
		}
		y, ok := a.Scale.Map(v)
		if !ok {
			return nil, false
		}
		pts[i] = Point{X: a.X(), Y: y}
	}
	return pts, true
}

// Paths builds the polyline for every record, skipping any that fails
// ControlPoints.
func Paths(recs []*parcoords.Record, axes []*axis.State) []Path {
	paths := make([]Path, 0, len(recs))
	for _, r := range recs {
		if pts, ok := ControlPoints(r, axes); ok {
			paths = append(paths, Path{Record: r, Points: pts})
		}
	}
	return paths
}

// Closest returns the path nearest to q, or nil if none comes within
// threshold. Only the segment between the two axes bracketing q's x
// coordinate is considered for each path, which keeps a pointer-move query
// linear in the number of paths. Ties go to the first path encountered.
func Closest(paths []Path, q Point, threshold float64) *Path {
	var best *Path
	bestDist := math.Inf(1)
	for i := range paths {
		p := &paths[i]
		if len(p.Points) == 0 {
			continue
		}
		d := segmentDistance(p.Points, q)
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	if best == nil || bestDist > threshold {
		return nil
	}
	return best
}

// segmentDistance returns the distance from q to the polyline segment
// bracketing q.X. Queries left of the first axis or right of the last use
// the nearest end segment. Vertices are in increasing x order.
func segmentDistance(pts []Point, q Point) float64 {
	if len(pts) == 1 {
		return math.Hypot(q.X-pts[0].X, q.Y-pts[0].Y)
	}
	i := 0
	for i < len(pts)-2 && pts[i+1].X < q.X {
		i++
	}
	return pointToSegment(q, pts[i], pts[i+1])
}

// pointToSegment returns the Euclidean distance from q to the segment ab.
func pointToSegment(q, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return math.Hypot(q.X-a.X, q.Y-a.Y)
	}
	t := ((q.X-a.X)*dx + (q.Y-a.Y)*dy) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(q.X-(a.X+t*dx), q.Y-(a.Y+t*dy))
}
