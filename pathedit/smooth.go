package pathedit

import (
	"math"

	"github.com/gogpu/ink"
)

const (
	// smoothFactor scales the neighbour chord into the control offset.
	smoothFactor = 0.15

	// Line-to-curve control placement along the incoming and outgoing
	// edges.
	convertLead  = 0.67
	convertTrail = 0.33
)

// Smooth rebuilds every subpath of p through its vertices with cubic
// segments. At an interior vertex p[i] the tangent offset is
// (p[i+1]-p[i-1])*smoothness*0.15; the segment leaving p[i] uses p[i]+d as
// its first control point and the segment arriving at p[i] uses p[i]-d as
// its second. End points of open subpaths have no offset, closed subpaths
// wrap around. Curve control points of the input are discarded.
//
// Subpaths with fewer than three vertices are copied unchanged. A
// non-finite smoothness is treated as zero.
func Smooth(p ink.Path, smoothness float64) ink.Path {
	if math.IsNaN(smoothness) || math.IsInf(smoothness, 0) {
		smoothness = 0
	}
	out := ink.NewPath(p.Len())
	out.FillRule = p.FillRule
	for _, sub := range p.SplitSubpaths() {
		lines := sub.VertexSubpaths()
		if len(lines) != 1 || len(lines[0].Points) < 3 {
			out.Append(sub)
			continue
		}
		smoothPolyline(&out, lines[0], smoothness)
	}
	return out
}

func smoothPolyline(out *ink.Path, line ink.Polyline, smoothness float64) {
	pts := line.Points
	n := len(pts)
	d := make([]ink.Point, n)
	for i := range pts {
		if !line.Closed && (i == 0 || i == n-1) {
			continue
		}
		prev, next := pts[(i+n-1)%n], pts[(i+1)%n]
		d[i] = next.Sub(prev).Mul(smoothness * smoothFactor)
	}

	segs := n - 1
	if line.Closed {
		segs = n
	}
	out.MoveTo(pts[0])
	for i := 0; i < segs; i++ {
		j := (i + 1) % n
		out.CubicTo(pts[i].Add(d[i]), pts[j].Sub(d[j]), pts[j])
	}
	if line.Closed {
		out.Close()
	}
}

// ConvertToCurve replaces every straight segment of p with a cubic through
// the same end points. For a line prev->curr followed by a segment ending
// at next, the controls are prev+(curr-prev)*0.67 and curr-(next-curr)*0.33;
// when nothing follows, next is curr. Existing curves, moves and closes are
// kept as they are.
func ConvertToCurve(p ink.Path) ink.Path {
	out := ink.NewPath(p.Len())
	out.FillRule = p.FillRule

	var current, start ink.Point
	for i, s := range p.Segments {
		switch e := s.(type) {
		case ink.MoveTo:
			out.Segments = append(out.Segments, e)
			current, start = e.Point, e.Point
		case ink.LineTo:
			next := e.Point
			if i+1 < len(p.Segments) {
				switch f := p.Segments[i+1].(type) {
				case ink.LineTo:
					next = f.Point
				case ink.CubicTo:
					next = f.Point
				case ink.Close:
					next = start
				}
			}
			curr := e.Point
			out.Segments = append(out.Segments, ink.CubicTo{
				Control1: current.Add(curr.Sub(current).Mul(convertLead)),
				Control2: curr.Sub(next.Sub(curr).Mul(convertTrail)),
				Point:    curr,
			})
			current = curr
		case ink.CubicTo:
			out.Segments = append(out.Segments, e)
			current = e.Point
		case ink.Close:
			out.Segments = append(out.Segments, e)
			current = start
		}
	}
	return out
}
