package ink

import (
	"math"
	"testing"
)

func square(x0, y0, size float64) Path {
	return FromPoints([]Point{Pt(x0, y0), Pt(x0+size, y0), Pt(x0+size, y0+size), Pt(x0, y0+size)}, true)
}

func circle(c Point, r float64) Path {
	k := 0.5522847498 * r
	var p Path
	p.MoveTo(c.Add(Pt(r, 0)))
	p.CubicTo(c.Add(Pt(r, k)), c.Add(Pt(k, r)), c.Add(Pt(0, r)))
	p.CubicTo(c.Add(Pt(-k, r)), c.Add(Pt(-r, k)), c.Add(Pt(-r, 0)))
	p.CubicTo(c.Add(Pt(-r, -k)), c.Add(Pt(-k, -r)), c.Add(Pt(0, -r)))
	p.CubicTo(c.Add(Pt(k, -r)), c.Add(Pt(r, -k)), c.Add(Pt(r, 0)))
	p.Close()
	return p
}

func TestPath_Subpaths(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(4, 0))
	p.LineTo(Pt(4, 4))
	p.LineTo(Pt(0, 0))
	p.Close()
	p.LineTo(Pt(-4, 0)) // continues from the closed subpath's start
	p.MoveTo(Pt(10, 10))
	p.CubicTo(Pt(10, 20), Pt(20, 20), Pt(20, 10))

	subs := p.Subpaths(0.1)
	if len(subs) != 3 {
		t.Fatalf("got %d subpaths, want 3", len(subs))
	}
	if !subs[0].Closed || len(subs[0].Points) != 3 {
		t.Errorf("closed triangle = %+v, want 3 points without the repeated start", subs[0])
	}
	if subs[1].Closed || len(subs[1].Points) != 2 || subs[1].Points[0] != Pt(0, 0) {
		t.Errorf("subpath after close = %+v", subs[1])
	}
	curve := subs[2].Points
	if len(curve) < 4 {
		t.Errorf("curve flattened to %d points", len(curve))
	}
	if curve[0] != Pt(10, 10) || curve[len(curve)-1] != Pt(20, 10) {
		t.Error("flattened curve lost its end points")
	}
	c := CubicBez{Pt(10, 10), Pt(10, 20), Pt(20, 20), Pt(20, 10)}
	for _, pt := range curve {
		best := math.Inf(1)
		for i := 0; i <= 200; i++ {
			best = math.Min(best, pt.Distance(c.Eval(float64(i)/200)))
		}
		if best > 0.1 {
			t.Errorf("flattened point %v is %v off the curve", pt, best)
		}
	}
}

func TestPath_FlattenTolerance(t *testing.T) {
	p := circle(Pt(0, 0), 50)
	coarse := len(p.Flatten(2))
	fine := len(p.Flatten(0.01))
	if fine <= coarse {
		t.Errorf("finer tolerance produced %d points, coarse %d", fine, coarse)
	}
	if def := len(p.Flatten(0)); def != len(p.Flatten(DefaultTolerance)) {
		t.Error("non-positive tolerance does not use DefaultTolerance")
	}
}

func TestPath_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		p        Path
		min, max Point
	}{
		{"empty", Path{}, Point{}, Point{}},
		{"square", square(2, 3, 5), Pt(2, 3), Pt(7, 8)},
		{"circle", circle(Pt(10, 10), 5), Pt(5, 5), Pt(15, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.p.Bounds()
			if !pointsEqual(b.Min, tt.min, 1e-9) || !pointsEqual(b.Max, tt.max, 1e-9) {
				t.Errorf("Bounds() = %+v, want %v-%v", b, tt.min, tt.max)
			}
		})
	}

	var arch Path
	arch.MoveTo(Pt(0, 0))
	arch.CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
	if b := arch.Bounds(); math.Abs(b.Max.Y-7.5) > 1e-9 {
		t.Errorf("curve bounds use control points: %+v", b)
	}
}

func TestPath_Area(t *testing.T) {
	if got := square(0, 0, 10).Area(); got != 100 {
		t.Errorf("square area = %v, want 100", got)
	}
	reversed := FromPoints([]Point{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}, true)
	if got := reversed.Area(); got != -100 {
		t.Errorf("reversed square area = %v, want -100", got)
	}
	if got := circle(Pt(0, 0), 10).Area(); math.Abs(got-math.Pi*100) > 0.2 {
		t.Errorf("circle area = %v, want ~%v", got, math.Pi*100)
	}
	open := FromPoints([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, false)
	if got := open.Area(); got != 0 {
		t.Errorf("open path area = %v, want 0", got)
	}
}

func TestPolyline_Area(t *testing.T) {
	l := Polyline{Points: []Point{Pt(0, 0), Pt(4, 0), Pt(4, 3)}, Closed: true}
	if got := l.Area(); got != 6 {
		t.Errorf("Area() = %v, want 6", got)
	}
	l.Closed = false
	if got := l.Area(); got != 0 {
		t.Errorf("open Area() = %v, want 0", got)
	}
}

func TestPath_Contains(t *testing.T) {
	// Outer square with an inner square wound the same way.
	p := square(0, 0, 10)
	p.Append(square(3, 3, 4))

	tests := []struct {
		name string
		rule FillRule
		pt   Point
		want bool
	}{
		{"evenodd ring", EvenOdd, Pt(1, 1), true},
		{"evenodd hole", EvenOdd, Pt(5, 5), false},
		{"nonzero ring", NonZero, Pt(1, 1), true},
		{"nonzero inner", NonZero, Pt(5, 5), true},
		{"outside", NonZero, Pt(11, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.WithFillRule(tt.rule).Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestPath_ContainsImplicitClose(t *testing.T) {
	tri := FromPoints([]Point{Pt(0, 0), Pt(10, 0), Pt(0, 10)}, false)
	if !tri.Contains(Pt(2, 2)) {
		t.Error("open subpath is not implicitly closed for containment")
	}
}

func TestFromPolylines(t *testing.T) {
	p := FromPolylines([]Polyline{
		{Points: []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}, Closed: true},
		{},
		{Points: []Point{Pt(5, 5), Pt(6, 6)}},
	}, NonZero)
	if got, want := p.String(), "M 0 0 L 1 0 L 1 1 Z M 5 5 L 6 6"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if p.FillRule != NonZero {
		t.Error("fill rule not applied")
	}
}

func TestPath_String(t *testing.T) {
	var p Path
	p.MoveTo(Pt(-0.00001, 1.23456789))
	p.CubicTo(Pt(1.5, 2), Pt(3, 4), Pt(5, 6))
	p.Close()
	if got, want := p.String(), "M 0 1.2346 C 1.5 2 3 4 5 6 Z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPath_VertexSubpaths(t *testing.T) {
	var p Path
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
	p.LineTo(Pt(0, 0))
	p.Close()
	subs := p.VertexSubpaths()
	if len(subs) != 1 || !subs[0].Closed {
		t.Fatalf("VertexSubpaths() = %+v", subs)
	}
	if len(subs[0].Points) != 2 {
		t.Errorf("points = %v, want curve end points only", subs[0].Points)
	}
}

func TestPath_Translate(t *testing.T) {
	p := square(0, 0, 2)
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(1, 1), Pt(2, 1), Pt(3, 0))
	p.FillRule = NonZero

	got := p.Translate(Pt(10, -1))
	want := "M 10 -1 L 12 -1 L 12 1 L 10 1 Z M 10 -1 C 11 0 12 0 13 -1"
	if got.String() != want {
		t.Errorf("Translate() = %q, want %q", got.String(), want)
	}
	if got.FillRule != NonZero {
		t.Errorf("FillRule = %v, want nonzero", got.FillRule)
	}
	if p.String() == got.String() {
		t.Error("Translate modified its receiver")
	}
}

func BenchmarkPath_Flatten(b *testing.B) {
	p := circle(Pt(0, 0), 100)
	for b.Loop() {
		_ = p.Flatten(0.1)
	}
}
