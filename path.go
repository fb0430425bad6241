package ink

// Segment is one element of a Path: MoveTo, LineTo, CubicTo or Close.
type Segment interface {
	isSegment()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// CubicTo draws a cubic Bezier curve to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isSegment() {}

// Close closes the current subpath back to its MoveTo point.
type Close struct{}

func (Close) isSegment() {}

// FillRule selects how a closed path decides which points are inside.
type FillRule uint8

const (
	// EvenOdd counts edge crossings; an odd count is inside. It is the zero
	// value.
	EvenOdd FillRule = iota
	// NonZero sums signed crossings; a non-zero winding is inside.
	NonZero
)

// String returns the SVG name of the fill rule.
func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	default:
		return "evenodd"
	}
}

// Path is an ordered sequence of segments plus a fill rule.
//
// Paths are values: every operation in this module returns a new Path and
// never mutates its input. The builder methods (MoveTo, LineTo, ...) take a
// pointer receiver and append in place, so build a path before sharing it.
type Path struct {
	Segments []Segment
	FillRule FillRule
}

// NewPath returns an empty even-odd path with room for n segments.
func NewPath(n int) Path {
	return Path{Segments: make([]Segment, 0, n)}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt Point) {
	p.Segments = append(p.Segments, MoveTo{Point: pt})
}

// LineTo appends a straight segment. On an empty path it starts a subpath.
func (p *Path) LineTo(pt Point) {
	if len(p.Segments) == 0 {
		p.MoveTo(pt)
		return
	}
	p.Segments = append(p.Segments, LineTo{Point: pt})
}

// CubicTo appends a cubic Bezier segment.
func (p *Path) CubicTo(c1, c2, pt Point) {
	if len(p.Segments) == 0 {
		p.MoveTo(c1)
	}
	p.Segments = append(p.Segments, CubicTo{Control1: c1, Control2: c2, Point: pt})
}

// QuadTo appends a quadratic Bezier segment, stored as its exact cubic.
func (p *Path) QuadTo(ctrl, pt Point) {
	if len(p.Segments) == 0 {
		p.MoveTo(ctrl)
	}
	c := QuadBez{P0: p.CurrentPoint(), P1: ctrl, P2: pt}.Raise()
	p.Segments = append(p.Segments, CubicTo{Control1: c.P1, Control2: c.P2, Point: c.P3})
}

// Close closes the current subpath. Closing an empty or already closed
// subpath is a no-op.
func (p *Path) Close() {
	if n := len(p.Segments); n == 0 {
		return
	} else if _, ok := p.Segments[n-1].(Close); ok {
		return
	}
	p.Segments = append(p.Segments, Close{})
}

// Append adds all segments of q to p.
func (p *Path) Append(q Path) {
	p.Segments = append(p.Segments, q.Segments...)
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.Segments)
}

// IsEmpty reports whether the path draws nothing: it has no segments
// besides MoveTo and Close.
func (p Path) IsEmpty() bool {
	for _, s := range p.Segments {
		switch s.(type) {
		case LineTo, CubicTo:
			return false
		}
	}
	return true
}

// IsClosed reports whether the last subpath ends with Close.
func (p Path) IsClosed() bool {
	if n := len(p.Segments); n > 0 {
		_, ok := p.Segments[n-1].(Close)
		return ok
	}
	return false
}

// CurrentPoint returns the point the next segment would start from.
func (p Path) CurrentPoint() Point {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		switch s := p.Segments[i].(type) {
		case MoveTo:
			return s.Point
		case LineTo:
			return s.Point
		case CubicTo:
			return s.Point
		case Close:
			return p.subpathStart(i)
		}
	}
	return Point{}
}

// subpathStart returns the MoveTo point of the subpath containing index i.
func (p Path) subpathStart(i int) Point {
	for ; i >= 0; i-- {
		if m, ok := p.Segments[i].(MoveTo); ok {
			return m.Point
		}
	}
	return Point{}
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	segs := make([]Segment, len(p.Segments))
	copy(segs, p.Segments)
	return Path{Segments: segs, FillRule: p.FillRule}
}

// WithFillRule returns a copy of the path using rule.
func (p Path) WithFillRule(rule FillRule) Path {
	q := p.Clone()
	q.FillRule = rule
	return q
}

// Vertices returns the end point of every MoveTo, LineTo and CubicTo in order.
func (p Path) Vertices() []Point {
	out := make([]Point, 0, len(p.Segments))
	for _, s := range p.Segments {
		switch e := s.(type) {
		case MoveTo:
			out = append(out, e.Point)
		case LineTo:
			out = append(out, e.Point)
		case CubicTo:
			out = append(out, e.Point)
		}
	}
	return out
}

// SplitSubpaths cuts the path into one path per subpath, each starting with
// a MoveTo and keeping the fill rule. A segment drawn right after a Close
// starts a new subpath at the closed subpath's start point.
func (p Path) SplitSubpaths() []Path {
	var out []Path
	var cur Path
	var start Point
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur)
		}
		cur = Path{FillRule: p.FillRule}
	}
	for _, s := range p.Segments {
		switch e := s.(type) {
		case MoveTo:
			flush()
			start = e.Point
		case Close:
			if cur.Len() == 0 {
				continue
			}
			cur.Segments = append(cur.Segments, e)
			flush()
			continue
		default:
			if cur.Len() == 0 {
				cur.MoveTo(start)
			}
		}
		cur.Segments = append(cur.Segments, s)
	}
	flush()
	return out
}
