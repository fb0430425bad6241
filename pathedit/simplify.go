package pathedit

import (
	"math"
	"slices"

	"github.com/gogpu/ink"
)

const (
	// denseThreshold is the point count above which epsilon is tightened.
	denseThreshold = 50
	// minEpsilonScale bounds how much a dense input can tighten epsilon.
	minEpsilonScale = 0.25
	// retainRatio is the fraction of input points a simplification keeps
	// at minimum.
	retainRatio = 0.1
	// blendRatio is how far along each edge the quadratic corner blends
	// start and end.
	blendRatio = 0.25
)

// span is a pending index range [start, end] of the work stack.
type span struct {
	start, end int
}

// DouglasPeucker simplifies a polyline. Points farther than epsilon from
// the chord of their range are kept and the range is split at the farthest
// one; ranges whose points are all within epsilon collapse to their end
// points. The first and last points are always kept, and inputs of two or
// fewer points are returned as a copy.
//
// The ranges are processed from an explicit stack, so very long strokes do
// not grow the goroutine stack.
func DouglasPeucker(points []ink.Point, epsilon float64) []ink.Point {
	n := len(points)
	if n <= 2 {
		return slices.Clone(points)
	}
	if !(epsilon >= 0) {
		epsilon = 0
	}

	keep := make([]bool, n)
	keep[0], keep[n-1] = true, true
	stack := []span{{0, n - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.end-s.start < 2 {
			continue
		}

		a, b := points[s.start], points[s.end]
		idx, dmax := -1, 0.0
		for i := s.start + 1; i < s.end; i++ {
			if d := ink.DistanceToSegment(points[i], a, b); d > dmax {
				idx, dmax = i, d
			}
		}
		if idx < 0 || dmax <= epsilon {
			continue
		}
		keep[idx] = true
		stack = append(stack, span{idx, s.end}, span{s.start, idx})
	}

	out := make([]ink.Point, 0, n)
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// AdaptiveEpsilon tightens epsilon for dense inputs. Up to 50 points the
// value is returned as is; beyond that it shrinks with the square root of
// the density, to no less than a quarter of the original.
func AdaptiveEpsilon(epsilon float64, n int) float64 {
	if n <= denseThreshold {
		return epsilon
	}
	return epsilon * math.Max(minEpsilonScale, math.Sqrt(denseThreshold/float64(n)))
}

// SimplifyPoints runs DouglasPeucker with the adaptive epsilon and then
// enforces the minimum retention: if fewer than max(3, 10%) of the input
// points survive, the input is resampled uniformly instead. First and last
// points are preserved in both cases.
func SimplifyPoints(points []ink.Point, epsilon float64) []ink.Point {
	n := len(points)
	if n <= 2 {
		return slices.Clone(points)
	}
	out := DouglasPeucker(points, AdaptiveEpsilon(epsilon, n))
	if k := minRetained(n); len(out) < k {
		out = resample(points, k)
	}
	return out
}

// minRetained returns the smallest point count a simplification of n >= 3
// points may produce.
func minRetained(n int) int {
	k := int(math.Ceil(retainRatio * float64(n)))
	return min(n, max(3, k))
}

// resample picks k points spread evenly over the index range of points.
func resample(points []ink.Point, k int) []ink.Point {
	n := len(points)
	out := make([]ink.Point, k)
	for i := range out {
		idx := int(math.Round(float64(i) * float64(n-1) / float64(k-1)))
		out[i] = points[idx]
	}
	return out
}

// simplifyRing simplifies a closed ring given without a repeated start.
// Douglas-Peucker runs on the ring closed back to its start; if fewer than
// minRetained distinct vertices survive, the ring is resampled uniformly.
func simplifyRing(points []ink.Point, epsilon float64) []ink.Point {
	n := len(points)
	ring := append(slices.Clone(points), points[0])
	out := DouglasPeucker(ring, AdaptiveEpsilon(epsilon, n))
	out = out[:len(out)-1]
	if k := minRetained(n); len(out) < k {
		out = make([]ink.Point, k)
		for i := range out {
			out[i] = points[int(math.Round(float64(i)*float64(n)/float64(k)))%n]
		}
	}
	return out
}

// Simplify reduces the number of vertices of every subpath of p and
// rebuilds it with short quadratic blends at the retained corners, so
// freehand strokes do not look faceted. Curves are flattened first with the
// configured tolerance. The fill rule is preserved; an empty path is
// returned unchanged.
func Simplify(p ink.Path, epsilon float64, opts ...Option) ink.Path {
	if p.IsEmpty() {
		return p.Clone()
	}
	o := applyOptions(opts)

	out := ink.NewPath(p.Len())
	out.FillRule = p.FillRule
	before, after := 0, 0
	for _, line := range p.Subpaths(o.tolerance) {
		pts := line.Points
		before += len(pts)
		if line.Closed && len(pts) >= 3 {
			pts = simplifyRing(pts, epsilon)
		} else {
			pts = SimplifyPoints(pts, epsilon)
		}
		after += len(pts)

		if line.Closed {
			blendClosed(&out, pts)
		} else {
			blendOpen(&out, pts)
		}
	}
	ink.Logger().Debug("pathedit: simplified", "points", before, "kept", after, "epsilon", epsilon)
	return out
}

// blendOpen appends an open polyline rebuilt with quadratic corners.
func blendOpen(out *ink.Path, q []ink.Point) {
	if len(q) == 0 {
		return
	}
	out.MoveTo(q[0])
	last := len(q) - 1
	for i := 1; i < last; i++ {
		in, outPt := cornerBlend(q[i-1], q[i], q[i+1])
		out.LineTo(in)
		out.QuadTo(q[i], outPt)
	}
	if last > 0 {
		out.LineTo(q[last])
	}
}

// blendClosed appends a closed polygon rebuilt with quadratic corners at
// every vertex. Rings of fewer than three points are emitted as lines.
func blendClosed(out *ink.Path, q []ink.Point) {
	n := len(q)
	if n < 3 {
		blendOpen(out, q)
		if n > 0 {
			out.Close()
		}
		return
	}
	_, start := cornerBlend(q[n-1], q[0], q[1])
	out.MoveTo(start)
	for i := 1; i <= n; i++ {
		prev, cur, next := q[(i-1)%n], q[i%n], q[(i+1)%n]
		in, outPt := cornerBlend(prev, cur, next)
		out.LineTo(in)
		out.QuadTo(cur, outPt)
	}
	out.Close()
}

// cornerBlend returns where the blend around cur enters from prev and
// leaves towards next.
func cornerBlend(prev, cur, next ink.Point) (in, out ink.Point) {
	in = cur.Sub(cur.Sub(prev).Mul(blendRatio))
	out = cur.Add(next.Sub(cur).Mul(blendRatio))
	return in, out
}
