package ink

import (
	"math"
	"sort"
)

// Curve math shared by the synthesizer, the simplifier and the path editors.

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner, Max the bottom-right corner.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points, normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Extend returns the rectangle grown to include pt.
func (r Rect) Extend(pt Point) Rect {
	return r.Union(Rect{Min: pt, Max: pt})
}

// Contains reports whether the point is inside the rectangle (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// -------------------------------------------------------------------
// QuadBez
// -------------------------------------------------------------------

// QuadBez is a quadratic Bezier curve: start P0, control P1, end P2.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Raise returns the exact cubic representation of the quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// CubicBez
// -------------------------------------------------------------------

// CubicBez is a cubic Bezier curve: start P0, controls P1 and P2, end P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	return CubicPoint(c.P0, c.P1, c.P2, c.P3, t)
}

// Subdivide splits the curve at t=0.5 using de Casteljau's construction.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Extrema returns the parameters in (0, 1) where dx/dt or dy/dt vanish.
func (c CubicBez) Extrema() []float64 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	out := make([]float64, 0, 4)
	out = appendUnitRoots(out, d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)
	out = appendUnitRoots(out, d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)
	sort.Float64s(out)
	return out
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		bbox = bbox.Extend(c.Eval(t))
	}
	return bbox
}

// Flatness returns the squared flatness metric of the control polygon.
// A value of 16*tol*tol or less means the chord stays within tol of the curve.
func (c CubicBez) Flatness() float64 {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - c.P0.X - 2*c.P3.X
	vy := 3*c.P2.Y - c.P0.Y - 2*c.P3.Y
	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// CubicPoint evaluates B(t) = (1-t)^3 p0 + 3(1-t)^2 t p1 + 3(1-t) t^2 p2 + t^3 p3.
func CubicPoint(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// ClosestOnSegment returns the point of segment ab nearest to p and its
// projection parameter clamped to [0, 1].
func ClosestOnSegment(p, a, b Point) (Point, float64) {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 == 0 {
		return a, 0
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return a.Add(ab.Mul(t)), t
}

// DistanceToSegment returns the distance from p to segment ab.
// Degenerate segments measure the distance to a.
func DistanceToSegment(p, a, b Point) float64 {
	q, _ := ClosestOnSegment(p, a, b)
	return p.Distance(q)
}

// appendUnitRoots appends the roots of a*t^2 + b*t + c in the open interval (0, 1).
func appendUnitRoots(out []float64, a, b, c float64) []float64 {
	const eps = 1e-12
	keep := func(t float64) {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	if math.Abs(a) < eps {
		if math.Abs(b) > eps {
			keep(-c / b)
		}
		return out
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return out
	}
	sq := math.Sqrt(disc)
	// Stable form avoids cancellation when b dominates.
	q := -0.5 * (b + math.Copysign(sq, b))
	if q != 0 {
		keep(c / q)
	}
	keep(q / a)
	return out
}
