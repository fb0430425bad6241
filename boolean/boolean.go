// Package boolean combines closed path regions: union, intersection,
// subtraction and exclusive or.
//
// Both operands are flattened to polygons and read under the even-odd rule
// before they are combined, and every result uses the even-odd rule. An
// operand whose subpaths enclose no area counts as empty:
//
//	Union(A, empty)        == A
//	Intersection(A, empty) == empty
//	Subtraction(A, empty)  == A
//	Subtraction(empty, B)  == empty
//	Xor(A, empty)          == A
//
// Operands returned because the other side is empty are returned as given,
// fill rule included.
package boolean

import (
	"cmp"
	"math"
	"slices"

	"github.com/ctessum/geom"

	"github.com/gogpu/ink"
)

// Op is a boolean operation on two regions.
type Op int

const (
	OpUnion Op = iota
	OpIntersection
	OpSubtraction
	OpXor
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpSubtraction:
		return "subtraction"
	case OpXor:
		return "xor"
	default:
		return "unknown"
	}
}

// ParseOp returns the operation with the given name.
func ParseOp(name string) (Op, bool) {
	for o := OpUnion; o <= OpXor; o++ {
		if o.String() == name {
			return o, true
		}
	}
	return 0, false
}

// minArea is the area below which a contour counts as degenerate.
const minArea = 1e-9

// Union returns the region covered by a or b.
func Union(a, b ink.Path, opts ...Option) ink.Path {
	return Apply(OpUnion, a, b, opts...)
}

// Intersection returns the region covered by both a and b.
func Intersection(a, b ink.Path, opts ...Option) ink.Path {
	return Apply(OpIntersection, a, b, opts...)
}

// Subtraction returns the region of a not covered by b.
func Subtraction(a, b ink.Path, opts ...Option) ink.Path {
	return Apply(OpSubtraction, a, b, opts...)
}

// Xor returns the region covered by exactly one of a and b, computed as
// Union(a, b) minus Intersection(a, b).
func Xor(a, b ink.Path, opts ...Option) ink.Path {
	return Apply(OpXor, a, b, opts...)
}

// Apply runs op on a and b.
func Apply(op Op, a, b ink.Path, opts ...Option) ink.Path {
	o := applyOptions(opts)
	pa, pb := toPolygon(a, o.tolerance), toPolygon(b, o.tolerance)

	ink.Logger().Debug("boolean: combining", "op", op, "a", len(pa), "b", len(pb))

	switch {
	case len(pa) == 0 && len(pb) == 0:
		return empty()
	case len(pb) == 0:
		if op == OpIntersection {
			return empty()
		}
		return a.Clone()
	case len(pa) == 0:
		if op == OpUnion || op == OpXor {
			return b.Clone()
		}
		return empty()
	}

	var r geom.Polygon
	switch op {
	case OpUnion:
		r = polygon(pa.Union(pb))
	case OpIntersection:
		r = polygon(pa.Intersection(pb))
	case OpSubtraction:
		r = polygon(pa.Difference(pb))
	case OpXor:
		u := polygon(pa.Union(pb))
		if i := polygon(pa.Intersection(pb)); len(i) > 0 {
			u = polygon(u.Difference(i))
		}
		r = u
	default:
		return empty()
	}
	return fromPolygon(r)
}

// polygon collects the rings of a clipper result into one polygon.
func polygon(g geom.Polygonal) geom.Polygon {
	switch g := g.(type) {
	case nil:
		return nil
	case geom.Polygon:
		return g
	default:
		var out geom.Polygon
		for _, p := range g.Polygons() {
			out = append(out, p...)
		}
		return out
	}
}

func empty() ink.Path {
	return ink.Path{FillRule: ink.EvenOdd}
}

// toPolygon flattens p into polygon rings. Every subpath is treated as
// closed; rings that enclose no area are dropped. Non-zero paths are
// resolved into an even-odd region first.
func toPolygon(p ink.Path, tolerance float64) geom.Polygon {
	var rings []ink.Polyline
	for _, l := range p.Subpaths(tolerance) {
		l.Closed = true
		if len(l.Points) < 3 || math.Abs(l.Area()) < minArea {
			continue
		}
		rings = append(rings, l)
	}
	if p.FillRule == ink.NonZero && len(rings) > 1 {
		return resolveNonZero(rings)
	}
	poly := make(geom.Polygon, 0, len(rings))
	for _, l := range rings {
		poly = append(poly, ring(l))
	}
	return poly
}

// resolveNonZero folds non-zero rings into one even-odd polygon, largest
// first: rings wound like the largest one add to the region and rings
// wound the other way cut holes. Overlaps within a single ring are still
// read with the even-odd rule.
func resolveNonZero(rings []ink.Polyline) geom.Polygon {
	slices.SortStableFunc(rings, func(a, b ink.Polyline) int {
		return cmp.Compare(math.Abs(b.Area()), math.Abs(a.Area()))
	})
	outer := math.Signbit(rings[0].Area())

	acc := geom.Polygon{ring(rings[0])}
	for _, l := range rings[1:] {
		next := geom.Polygon{ring(l)}
		if math.Signbit(l.Area()) == outer {
			acc = polygon(acc.Union(next))
		} else {
			acc = polygon(acc.Difference(next))
		}
	}
	return acc
}

func ring(l ink.Polyline) []geom.Point {
	r := make([]geom.Point, len(l.Points))
	for i, pt := range l.Points {
		r[i] = geom.Point{X: pt.X, Y: pt.Y}
	}
	return r
}

// fromPolygon converts clipper output back into an even-odd path of
// closed polygons, skipping slivers. Rings nested an even number of times
// get a positive signed area and holes a negative one.
func fromPolygon(poly geom.Polygon) ink.Path {
	lines := make([]ink.Polyline, 0, len(poly))
	for _, r := range poly {
		l := ink.Polyline{Points: make([]ink.Point, 0, len(r)), Closed: true}
		for _, pt := range r {
			l.Points = append(l.Points, ink.Pt(pt.X, pt.Y))
		}
		// Clippers may repeat the first vertex at the end.
		if n := len(l.Points); n > 1 && l.Points[0] == l.Points[n-1] {
			l.Points = l.Points[:n-1]
		}
		if len(l.Points) < 3 || math.Abs(l.Area()) < minArea {
			continue
		}
		lines = append(lines, l)
	}

	for i, l := range lines {
		depth := 0
		for j, outer := range lines {
			if i != j && ringInside(l.Points, outer.Points) {
				depth++
			}
		}
		if hole := depth%2 == 1; hole != (l.Area() < 0) {
			slices.Reverse(l.Points)
		}
	}
	return ink.FromPolylines(lines, ink.EvenOdd)
}

// ringInside reports whether inner lies inside outer, judged by the first
// vertex of inner that is not on the boundary of outer.
func ringInside(inner, outer []ink.Point) bool {
	for _, pt := range inner {
		if onRing(pt, outer) {
			continue
		}
		return crossings(pt, outer)%2 == 1
	}
	return false
}

func onRing(pt ink.Point, r []ink.Point) bool {
	for i := range r {
		if ink.DistanceToSegment(pt, r[i], r[(i+1)%len(r)]) < 1e-9 {
			return true
		}
	}
	return false
}

// crossings counts the edges of r crossed by the ray from pt towards +X.
func crossings(pt ink.Point, r []ink.Point) int {
	n := 0
	for i := range r {
		a, b := r[i], r[(i+1)%len(r)]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		if x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y); x > pt.X {
			n++
		}
	}
	return n
}
