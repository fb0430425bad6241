package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/ink"
)

// pathFile is the TOML layout of a path.
type pathFile struct {
	FillRule string        `toml:"fill_rule"`
	Subpath  []subpathFile `toml:"subpath"`
}

type subpathFile struct {
	Closed bool        `toml:"closed"`
	Points [][]float64 `toml:"points"`
}

// sampleFile is the TOML layout of a recorded stroke.
type sampleFile struct {
	Profile string       `toml:"profile"`
	Color   string       `toml:"color"`
	Sample  []sampleLine `toml:"sample"`
}

type sampleLine struct {
	X        float64  `toml:"x"`
	Y        float64  `toml:"y"`
	Pressure *float64 `toml:"pressure"` // default 1
	TiltX    float64  `toml:"tilt_x"`
	TiltY    float64  `toml:"tilt_y"`
	Rotation float64  `toml:"rotation"`
	Time     float64  `toml:"t"` // milliseconds
}

func (s sampleLine) pressure() float64 {
	if s.Pressure == nil {
		return 1
	}
	return *s.Pressure
}

var errEmptyPath = errors.New("path file has no subpaths")

func parseFillRule(s string) (ink.FillRule, error) {
	switch s {
	case "", "evenodd":
		return ink.EvenOdd, nil
	case "nonzero":
		return ink.NonZero, nil
	}
	return 0, fmt.Errorf("unknown fill rule %q (want evenodd or nonzero)", s)
}

// decodePath reads a path in the pathFile layout.
func decodePath(r io.Reader) (ink.Path, error) {
	var f pathFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return ink.Path{}, fmt.Errorf("decode path: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return ink.Path{}, fmt.Errorf("decode path: unknown key %s", undecoded[0])
	}
	rule, err := parseFillRule(f.FillRule)
	if err != nil {
		return ink.Path{}, err
	}
	if len(f.Subpath) == 0 {
		return ink.Path{}, errEmptyPath
	}

	lines := make([]ink.Polyline, 0, len(f.Subpath))
	for i, sp := range f.Subpath {
		l := ink.Polyline{Closed: sp.Closed, Points: make([]ink.Point, 0, len(sp.Points))}
		for j, xy := range sp.Points {
			if len(xy) != 2 {
				return ink.Path{}, fmt.Errorf("subpath %d point %d: want [x, y], got %d values", i, j, len(xy))
			}
			l.Points = append(l.Points, ink.Pt(xy[0], xy[1]))
		}
		lines = append(lines, l)
	}
	return ink.FromPolylines(lines, rule), nil
}

// readPathFile reads a path from the named TOML file.
func readPathFile(name string) (ink.Path, error) {
	f, err := os.Open(name)
	if err != nil {
		return ink.Path{}, err
	}
	defer f.Close()
	p, err := decodePath(f)
	if err != nil {
		return ink.Path{}, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// encodePath writes p in the pathFile layout. Curves are flattened with
// tolerance.
func encodePath(w io.Writer, p ink.Path, tolerance float64) error {
	f := pathFile{FillRule: p.FillRule.String()}
	for _, l := range p.Subpaths(tolerance) {
		sp := subpathFile{Closed: l.Closed, Points: make([][]float64, len(l.Points))}
		for i, pt := range l.Points {
			sp.Points[i] = []float64{pt.X, pt.Y}
		}
		f.Subpath = append(f.Subpath, sp)
	}
	return toml.NewEncoder(w).Encode(f)
}

// readSampleFile reads a recorded stroke.
func readSampleFile(name string) (sampleFile, error) {
	var f sampleFile
	md, err := toml.DecodeFile(name, &f)
	if err != nil {
		return f, fmt.Errorf("decode samples: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return f, fmt.Errorf("%s: unknown key %s", name, undecoded[0])
	}
	if len(f.Sample) == 0 {
		return f, fmt.Errorf("%s: no samples", name)
	}
	return f, nil
}
