// Package stroke expands a centerline path into the filled outline of a
// stroke with round joins and round caps.
//
// The outline of an open subpath is a single closed contour: the left
// offset runs forward, a half-circle cap turns around the end point, the
// right offset runs backward and a second cap closes the loop at the start.
// A closed subpath produces two contours of opposite orientation. Outlines
// are meant to be filled with the non-zero rule.
//
// At every vertex the outer side gets a circular arc and the inner side is
// routed through the vertex itself.
package stroke

import (
	"math"

	"github.com/gogpu/ink"
)

// Expander converts stroked paths to fill paths.
type Expander struct {
	halfWidth float64
	tolerance float64
}

// NewExpander creates an expander for the given stroke width.
func NewExpander(width float64) *Expander {
	return &Expander{
		halfWidth: math.Abs(width) / 2,
		tolerance: 0.25,
	}
}

// SetTolerance sets the curve flattening tolerance. Non-positive values
// are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the outline of every subpath of p. A zero width yields an
// empty path.
func (e *Expander) Expand(p ink.Path) ink.Path {
	out := ink.Path{FillRule: ink.NonZero}
	if e.halfWidth == 0 {
		return out
	}
	for _, line := range p.Subpaths(e.tolerance) {
		pts := dedupe(line.Points)
		switch {
		case len(pts) == 0:
		case len(pts) == 1:
			e.dot(&out, pts[0])
		case line.Closed && len(pts) > 2:
			e.closed(&out, pts)
		default:
			e.open(&out, pts)
		}
	}
	return out
}

// dot emits a full circle for a zero-length subpath, as a round cap would.
func (e *Expander) dot(out *ink.Path, c ink.Point) {
	out.MoveTo(ink.Polar(c, e.halfWidth, 0))
	arc(out, c, e.halfWidth, 0, 2*math.Pi)
	out.Close()
}

// open strokes an open polyline with round caps at both ends.
func (e *Expander) open(out *ink.Path, pts []ink.Point) {
	norms := e.normals(pts, false)
	last := len(pts) - 1

	left := e.side(pts, norms, 1, false)
	right := e.side(pts, norms, -1, false)

	out.MoveTo(left.start)
	out.Segments = append(out.Segments, left.segs...)
	// End cap: sweep from +n to -n around the end point.
	arc(out, pts[last], e.halfWidth, norms[last-1].Angle(), -math.Pi)
	appendReversed(out, right)
	// Start cap: sweep from -n back to +n around the start point.
	arc(out, pts[0], e.halfWidth, norms[0].Neg().Angle(), -math.Pi)
	out.Close()
}

// closed strokes a closed polygon as two opposite rings.
func (e *Expander) closed(out *ink.Path, pts []ink.Point) {
	norms := e.normals(pts, true)

	left := e.side(pts, norms, 1, true)
	out.MoveTo(left.start)
	out.Segments = append(out.Segments, left.segs...)
	out.Close()

	right := e.side(pts, norms, -1, true)
	appendReversed(out, right)
	out.Close()
}

// normals returns the offset vector (perpendicular, length halfWidth) of
// every segment. Closed polylines include the segment back to the start.
func (e *Expander) normals(pts []ink.Point, closed bool) []ink.Point {
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	norms := make([]ink.Point, n)
	for i := range norms {
		t := pts[(i+1)%len(pts)].Sub(pts[i]).Normalize()
		norms[i] = t.Perp().Mul(e.halfWidth)
	}
	return norms
}

// offsetSide is one offset curve: a start point and the segments after it.
type offsetSide struct {
	start ink.Point
	segs  []ink.Segment
}

// side builds the offset curve at sign*normal. Joins where this side is
// on the outside of the turn get an arc; inside joins pass through the
// vertex.
func (e *Expander) side(pts []ink.Point, norms []ink.Point, sign float64, closed bool) offsetSide {
	var tmp ink.Path
	tmp.MoveTo(pts[0].Add(norms[0].Mul(sign)))

	segs := len(norms)
	for i := 0; i < segs; i++ {
		end := pts[(i+1)%len(pts)]
		n0 := norms[i].Mul(sign)
		tmp.LineTo(end.Add(n0))

		if i == segs-1 && !closed {
			break
		}
		n1 := norms[(i+1)%segs].Mul(sign)
		turn := math.Atan2(norms[i].Cross(norms[(i+1)%segs]), norms[i].Dot(norms[(i+1)%segs]))
		switch {
		case math.Abs(turn) < 1e-9:
			tmp.LineTo(end.Add(n1))
		case turn*sign < 0:
			// This side is outside the turn.
			arc(&tmp, end, e.halfWidth, n0.Angle(), turn)
		default:
			tmp.LineTo(end)
			tmp.LineTo(end.Add(n1))
		}
	}
	// On a closed ring the final join lands back on the start point.
	m := tmp.Segments[0].(ink.MoveTo)
	return offsetSide{start: m.Point, segs: tmp.Segments[1:]}
}

// appendReversed appends side traversed from its end back to its start,
// starting a new subpath when out is empty or closed.
func appendReversed(out *ink.Path, side offsetSide) {
	ends := make([]ink.Point, len(side.segs)+1)
	ends[0] = side.start
	for i, s := range side.segs {
		ends[i+1] = endPoint(s)
	}

	first := ends[len(ends)-1]
	switch {
	case out.Len() == 0 || out.IsClosed():
		out.MoveTo(first)
	case !out.CurrentPoint().Approx(first, 1e-9):
		out.LineTo(first)
	}
	for i := len(side.segs) - 1; i >= 0; i-- {
		switch s := side.segs[i].(type) {
		case ink.CubicTo:
			out.CubicTo(s.Control2, s.Control1, ends[i])
		default:
			out.LineTo(ends[i])
		}
	}
}

func endPoint(s ink.Segment) ink.Point {
	switch e := s.(type) {
	case ink.MoveTo:
		return e.Point
	case ink.LineTo:
		return e.Point
	case ink.CubicTo:
		return e.Point
	}
	return ink.Point{}
}

// arc appends a circular arc of the given sweep starting at angle a0,
// split into cubic pieces of at most 90 degrees. The path's current point
// is expected to be on the circle at a0; if it is not, a line joins them.
func arc(out *ink.Path, c ink.Point, r, a0, sweep float64) {
	start := ink.Polar(c, r, a0)
	if !out.CurrentPoint().Approx(start, 1e-9) {
		out.LineTo(start)
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	// Control distance for a circular arc of angle step.
	k := 4.0 / 3.0 * math.Tan(step/4) * r
	for i := 0; i < n; i++ {
		a := a0 + float64(i)*step
		b := a + step
		p0 := ink.Polar(c, r, a)
		p3 := ink.Polar(c, r, b)
		c1 := p0.Add(ink.Pt(-math.Sin(a), math.Cos(a)).Mul(k))
		c2 := p3.Sub(ink.Pt(-math.Sin(b), math.Cos(b)).Mul(k))
		out.CubicTo(c1, c2, p3)
	}
}

// dedupe drops consecutive duplicate points.
func dedupe(pts []ink.Point) []ink.Point {
	out := make([]ink.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Approx(p, 1e-12) {
			continue
		}
		out = append(out, p)
	}
	// A closed ring may repeat its first point at the end.
	if len(out) > 2 && out[0].Approx(out[len(out)-1], 1e-12) {
		out = out[:len(out)-1]
	}
	return out
}
