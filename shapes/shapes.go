// Package shapes generates closed outlines of common figures (stars,
// gears, regular polygons) and arrows as ink paths.
//
// Angles follow the ink coordinate system: x to the right, y down, so a
// start angle of -90 degrees points up on screen.
//
// A Generator can roughen its vertices with a seeded random source to give
// shapes a hand-drawn look. The package-level functions use a Generator
// without roughness and are deterministic.
package shapes

import (
	"math"

	"github.com/gogpu/ink"
)

const (
	// starInnerRatio is the inner radius of a star relative to its outer
	// radius.
	starInnerRatio = 0.4
	// gearToothHeight is how far teeth stand out, relative to the radius.
	gearToothHeight = 0.2
	// gearToothWidth is the fraction of each tooth's pitch taken by the
	// tooth itself.
	gearToothWidth = 0.4
	// arrowHeadSpread is the half-width of an arrow head relative to its
	// length.
	arrowHeadSpread = 0.5
)

// Generator builds shape paths.
type Generator struct {
	rng       ink.Rand
	roughness float64
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Generator{rng: o.rng, roughness: o.roughness}
	if g.roughness > 0 && g.rng == nil {
		g.rng = ink.NewRandomRand()
	}
	return g
}

var plain = &Generator{}

// Star returns a closed star centered at center: 2*points vertices
// alternating between radius and 0.4*radius, starting at -90 degrees and
// spaced pi/points apart. It returns an empty path for points < 1.
func Star(center ink.Point, radius float64, points int) ink.Path {
	return plain.Star(center, radius, points)
}

// Gear returns a closed gear outline with the given number of teeth.
// It returns an empty path for teeth < 1.
func Gear(center ink.Point, radius float64, teeth int) ink.Path {
	return plain.Gear(center, radius, teeth)
}

// Arrow returns an open path with the shaft from start to end and a two
// stroke head at end.
func Arrow(start, end ink.Point, headLength float64) ink.Path {
	return plain.Arrow(start, end, headLength)
}

// RegularPolygon returns a closed regular polygon with its first vertex at
// -90 degrees. It returns an empty path for sides < 3.
func RegularPolygon(center ink.Point, radius float64, sides int) ink.Path {
	return plain.RegularPolygon(center, radius, sides)
}

// Star is the Generator form of the package-level Star.
func (g *Generator) Star(center ink.Point, radius float64, points int) ink.Path {
	if points < 1 || !finite(center, radius) {
		return ink.Path{}
	}
	n := 2 * points
	step := math.Pi / float64(points)
	pts := make([]ink.Point, n)
	for i := range pts {
		r := radius
		if i%2 == 1 {
			r = radius * starInnerRatio
		}
		pts[i] = g.rough(ink.Polar(center, r, -math.Pi/2+float64(i)*step))
	}
	return ink.FromPoints(pts, true)
}

// Gear is the Generator form of the package-level Gear. Each tooth has four
// vertices: two on the base circle and two at radius*1.2, spanning 40% of
// the tooth pitch. The first tooth starts at angle 0.
func (g *Generator) Gear(center ink.Point, radius float64, teeth int) ink.Path {
	if teeth < 1 || !finite(center, radius) {
		return ink.Path{}
	}
	pitch := 2 * math.Pi / float64(teeth)
	width := gearToothWidth * pitch
	tip := radius * (1 + gearToothHeight)

	pts := make([]ink.Point, 0, 4*teeth)
	for i := 0; i < teeth; i++ {
		a := float64(i) * pitch
		pts = append(pts,
			g.rough(ink.Polar(center, radius, a)),
			g.rough(ink.Polar(center, tip, a)),
			g.rough(ink.Polar(center, tip, a+width)),
			g.rough(ink.Polar(center, radius, a+width)),
		)
	}
	return ink.FromPoints(pts, true)
}

// Arrow is the Generator form of the package-level Arrow. The head points
// sit headLength back from end along the shaft and headLength/2 to either
// side. A zero-length shaft or a non-positive headLength yields only the
// shaft.
func (g *Generator) Arrow(start, end ink.Point, headLength float64) ink.Path {
	if !start.IsFinite() || !end.IsFinite() {
		return ink.Path{}
	}
	p := ink.NewPath(5)
	p.MoveTo(g.rough(start))
	p.LineTo(end)

	dir := end.Sub(start).Normalize()
	if dir == (ink.Point{}) || !(headLength > 0) {
		return p
	}
	back := end.Sub(dir.Mul(headLength))
	side := dir.Perp().Mul(headLength * arrowHeadSpread)
	p.MoveTo(g.rough(back.Add(side)))
	p.LineTo(end)
	p.LineTo(g.rough(back.Sub(side)))
	return p
}

// RegularPolygon is the Generator form of the package-level RegularPolygon.
func (g *Generator) RegularPolygon(center ink.Point, radius float64, sides int) ink.Path {
	if sides < 3 || !finite(center, radius) {
		return ink.Path{}
	}
	step := 2 * math.Pi / float64(sides)
	pts := make([]ink.Point, sides)
	for i := range pts {
		pts[i] = g.rough(ink.Polar(center, radius, -math.Pi/2+float64(i)*step))
	}
	return ink.FromPoints(pts, true)
}

// rough displaces pt by up to roughness along each axis.
func (g *Generator) rough(pt ink.Point) ink.Point {
	if g.roughness <= 0 || g.rng == nil {
		return pt
	}
	return pt.Add(ink.Pt(ink.Symmetric(g.rng, g.roughness), ink.Symmetric(g.rng, g.roughness)))
}

func finite(center ink.Point, radius float64) bool {
	return center.IsFinite() && !math.IsNaN(radius) && !math.IsInf(radius, 0)
}
