package synth

import "github.com/gogpu/ink"

// SegmentAttr carries the rendering attributes of one stroke segment.
type SegmentAttr struct {
	Width float64
	Color ink.RGBA
}

// controlRatio places the cubic control points at 30% and 70% of each chord.
const controlRatio = 0.3

// strokeSegment returns the cubic from a to b with
// cp1 = a + (b-a)*0.3 and cp2 = b - (b-a)*0.3.
func strokeSegment(a, b ink.Point) ink.CubicTo {
	d := b.Sub(a)
	return ink.CubicTo{
		Control1: a.Add(d.Mul(controlRatio)),
		Control2: b.Sub(d.Mul(controlRatio)),
		Point:    b,
	}
}

// GenerateStrokePath builds the piecewise cubic stroke path through points
// and returns one attribute record per segment. pointAttrs holds the
// attributes computed at each point; segment i (points i to i+1) takes the
// attributes of its end point. Fewer than two points produce no segments.
func GenerateStrokePath(points []ink.Point, pointAttrs []SegmentAttr) (ink.Path, []SegmentAttr) {
	if len(points) == 0 {
		return ink.Path{}, nil
	}
	path := ink.NewPath(len(points))
	path.MoveTo(points[0])
	if len(points) < 2 {
		return path, nil
	}
	attrs := make([]SegmentAttr, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		path.Segments = append(path.Segments, strokeSegment(points[i-1], points[i]))
		if i < len(pointAttrs) {
			attrs = append(attrs, pointAttrs[i])
		}
	}
	return path, attrs
}
