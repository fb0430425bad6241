package ink

import (
	"math"
	"strconv"
	"strings"
)

// DefaultTolerance is the flattening tolerance, in pixels, used when a
// caller passes a non-positive tolerance.
const DefaultTolerance = 0.1

// Polyline is the polygon point list form of one subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Area returns the signed shoelace area of a closed polyline.
// Open polylines have zero area.
func (l Polyline) Area() float64 {
	if !l.Closed || len(l.Points) < 3 {
		return 0
	}
	var a float64
	for i, p := range l.Points {
		q := l.Points[(i+1)%len(l.Points)]
		a += p.Cross(q)
	}
	return a / 2
}

// Subpaths flattens the path into one polyline per subpath. Curves are
// subdivided until every chord is within tolerance of the curve. A closed
// subpath does not repeat its first point at the end.
func (p Path) Subpaths(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	tolSq16 := 16 * tolerance * tolerance

	var out []Polyline
	var cur Polyline
	var current Point
	flush := func() {
		if len(cur.Points) > 0 {
			out = append(out, cur)
		}
		cur = Polyline{}
	}

	for _, s := range p.Segments {
		switch e := s.(type) {
		case MoveTo:
			flush()
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case LineTo:
			if len(cur.Points) == 0 {
				cur.Points = append(cur.Points, current)
			}
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case CubicTo:
			if len(cur.Points) == 0 {
				cur.Points = append(cur.Points, current)
			}
			c := CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}
			cur.Points = flattenCubic(c, tolSq16, cur.Points, 0)
			current = e.Point
		case Close:
			if n := len(cur.Points); n > 1 && cur.Points[n-1] == cur.Points[0] {
				cur.Points = cur.Points[:n-1]
			}
			cur.Closed = true
			if len(cur.Points) > 0 {
				current = cur.Points[0]
			}
			flush()
		}
	}
	flush()
	return out
}

// maxFlattenDepth bounds subdivision at 2^16 chords per curve.
const maxFlattenDepth = 16

func flattenCubic(c CubicBez, tolSq16 float64, out []Point, depth int) []Point {
	if depth >= maxFlattenDepth || c.Flatness() <= tolSq16 {
		return append(out, c.P3)
	}
	a, b := c.Subdivide()
	out = flattenCubic(a, tolSq16, out, depth+1)
	return flattenCubic(b, tolSq16, out, depth+1)
}

// Flatten returns the flattened points of all subpaths concatenated.
func (p Path) Flatten(tolerance float64) []Point {
	var out []Point
	for _, l := range p.Subpaths(tolerance) {
		out = append(out, l.Points...)
	}
	return out
}

// FromPolylines builds a path of straight segments from polylines. Closed
// polylines end with Close. Empty polylines are skipped.
func FromPolylines(lines []Polyline, rule FillRule) Path {
	n := 0
	for _, l := range lines {
		n += len(l.Points) + 1
	}
	out := NewPath(n)
	out.FillRule = rule
	for _, l := range lines {
		if len(l.Points) == 0 {
			continue
		}
		out.MoveTo(l.Points[0])
		for _, pt := range l.Points[1:] {
			out.LineTo(pt)
		}
		if l.Closed {
			out.Close()
		}
	}
	return out
}

// FromPoints builds a single polyline path.
func FromPoints(points []Point, closed bool) Path {
	return FromPolylines([]Polyline{{Points: points, Closed: closed}}, EvenOdd)
}

// Bounds returns the tight axis-aligned bounding box of the path.
// An empty path returns the zero Rect.
func (p Path) Bounds() Rect {
	var bbox Rect
	var current Point
	started := false
	add := func(r Rect) {
		if !started {
			bbox, started = r, true
			return
		}
		bbox = bbox.Union(r)
	}

	for i, s := range p.Segments {
		switch e := s.(type) {
		case MoveTo:
			add(Rect{Min: e.Point, Max: e.Point})
			current = e.Point
		case LineTo:
			add(Rect{Min: e.Point, Max: e.Point})
			current = e.Point
		case CubicTo:
			add(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}.BoundingBox())
			current = e.Point
		case Close:
			current = p.subpathStart(i)
		}
	}
	return bbox
}

// Area returns the signed area enclosed by the path's closed subpaths,
// integrating curves exactly (Green's theorem). Open subpaths are ignored.
func (p Path) Area() float64 {
	var area, sub float64
	var current, start Point

	for _, s := range p.Segments {
		switch e := s.(type) {
		case MoveTo:
			sub = 0
			start, current = e.Point, e.Point
		case LineTo:
			sub += lineArea(current, e.Point)
			current = e.Point
		case CubicTo:
			sub += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			sub += lineArea(current, start)
			area += sub
			sub = 0
			current = start
		}
	}
	return area
}

func lineArea(p0, p1 Point) float64 {
	return 0.5 * p0.Cross(p1)
}

func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// Contains reports whether pt is inside the path under its fill rule.
// Every subpath is treated as implicitly closed.
func (p Path) Contains(pt Point) bool {
	winding, crossings := 0, 0
	for _, l := range p.Subpaths(DefaultTolerance) {
		n := len(l.Points)
		for i := 0; i < n; i++ {
			a, b := l.Points[i], l.Points[(i+1)%n]
			switch {
			case a.Y <= pt.Y && b.Y > pt.Y:
				if isLeft(a, b, pt) > 0 {
					winding++
					crossings++
				}
			case a.Y > pt.Y && b.Y <= pt.Y:
				if isLeft(a, b, pt) < 0 {
					winding--
					crossings++
				}
			}
		}
	}
	if p.FillRule == NonZero {
		return winding != 0
	}
	return crossings%2 == 1
}

// isLeft is positive when pt lies left of the directed line a->b.
func isLeft(a, b, pt Point) float64 {
	return (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y)
}

// String renders the path in compact SVG path-data notation for debugging.
func (p Path) String() string {
	var sb strings.Builder
	num := func(v float64) {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(round4(v), 'f', -1, 64))
	}
	pt := func(v Point) {
		num(v.X)
		num(v.Y)
	}
	for i, s := range p.Segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := s.(type) {
		case MoveTo:
			sb.WriteByte('M')
			pt(e.Point)
		case LineTo:
			sb.WriteByte('L')
			pt(e.Point)
		case CubicTo:
			sb.WriteByte('C')
			pt(e.Control1)
			pt(e.Control2)
			pt(e.Point)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// round4 rounds to four decimals for display.
func round4(v float64) float64 {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		return 0 // avoid "-0"
	}
	return r
}

// VertexSubpaths returns one polyline per subpath holding only segment end
// points; curves contribute their end point without flattening.
func (p Path) VertexSubpaths() []Polyline {
	var out []Polyline
	var cur Polyline
	var current Point
	flush := func() {
		if len(cur.Points) > 0 {
			out = append(out, cur)
		}
		cur = Polyline{}
	}
	appendPt := func(pt Point) {
		if len(cur.Points) == 0 {
			cur.Points = append(cur.Points, current)
		}
		cur.Points = append(cur.Points, pt)
		current = pt
	}

	for _, s := range p.Segments {
		switch e := s.(type) {
		case MoveTo:
			flush()
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case LineTo:
			appendPt(e.Point)
		case CubicTo:
			appendPt(e.Point)
		case Close:
			if n := len(cur.Points); n > 1 && cur.Points[n-1] == cur.Points[0] {
				cur.Points = cur.Points[:n-1]
			}
			cur.Closed = true
			if len(cur.Points) > 0 {
				current = cur.Points[0]
			}
			flush()
		}
	}
	flush()
	return out
}

// Translate returns a copy of p moved by d.
func (p Path) Translate(d Point) Path {
	out := p.Clone()
	for i, seg := range out.Segments {
		switch seg := seg.(type) {
		case MoveTo:
			out.Segments[i] = MoveTo{Point: seg.Point.Add(d)}
		case LineTo:
			out.Segments[i] = LineTo{Point: seg.Point.Add(d)}
		case CubicTo:
			out.Segments[i] = CubicTo{
				Control1: seg.Control1.Add(d),
				Control2: seg.Control2.Add(d),
				Point:    seg.Point.Add(d),
			}
		}
	}
	return out
}
