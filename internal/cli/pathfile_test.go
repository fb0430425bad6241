package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ink"
)

const squareTOML = `
fill_rule = "nonzero"

[[subpath]]
closed = true
points = [[0.0, 0.0], [10.0, 0.0], [10.0, 10.0], [0.0, 10.0]]

[[subpath]]
points = [[20.0, 0.0], [30.0, 5.0]]
`

func TestDecodePath(t *testing.T) {
	p, err := decodePath(strings.NewReader(squareTOML))
	if err != nil {
		t.Fatalf("decodePath() error = %v", err)
	}
	if p.FillRule != ink.NonZero {
		t.Errorf("FillRule = %v, want nonzero", p.FillRule)
	}
	want := "M 0 0 L 10 0 L 10 10 L 0 10 Z M 20 0 L 30 5"
	if p.String() != want {
		t.Errorf("path = %q, want %q", p.String(), want)
	}
}

func TestDecodePath_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"syntax", `fill_rule = `, "decode path"},
		{"fill rule", "fill_rule = \"winding\"\n[[subpath]]\npoints = [[0.0, 0.0]]", "unknown fill rule"},
		{"point arity", "[[subpath]]\npoints = [[0.0, 0.0, 1.0]]", "want [x, y]"},
		{"unknown key", "[[subpath]]\npoint = [[0, 0]]", "unknown key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodePath(strings.NewReader(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("decodePath() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}

	if _, err := decodePath(strings.NewReader(`fill_rule = "evenodd"`)); !errors.Is(err, errEmptyPath) {
		t.Errorf("decodePath(no subpaths) error = %v, want errEmptyPath", err)
	}
}

func TestEncodePath_RoundTrip(t *testing.T) {
	orig, err := decodePath(strings.NewReader(squareTOML))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := encodePath(&buf, orig, ink.DefaultTolerance); err != nil {
		t.Fatalf("encodePath() error = %v", err)
	}
	got, err := decodePath(&buf)
	if err != nil {
		t.Fatalf("decodePath(encoded) error = %v\n%s", err, buf.String())
	}
	if got.String() != orig.String() || got.FillRule != orig.FillRule {
		t.Errorf("round trip = %q (%v), want %q (%v)", got, got.FillRule, orig, orig.FillRule)
	}
}

func TestReadPathFile_Missing(t *testing.T) {
	_, err := readPathFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readPathFile() error = %v, want os.ErrNotExist", err)
	}
}

func TestReadSampleFile(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, dir, "stroke.toml", `
profile = "brush"
color = "#ff0000"

[[sample]]
x = 1.0
y = 2.0

[[sample]]
x = 3.0
y = 4.0
pressure = 0.5
tilt_x = 10.0
t = 16.0
`)
	f, err := readSampleFile(name)
	if err != nil {
		t.Fatalf("readSampleFile() error = %v", err)
	}
	if f.Profile != "brush" || f.Color != "#ff0000" || len(f.Sample) != 2 {
		t.Fatalf("file = %+v", f)
	}
	if got := f.Sample[0].pressure(); got != 1 {
		t.Errorf("default pressure = %g, want 1", got)
	}
	if s := f.Sample[1]; s.pressure() != 0.5 || s.TiltX != 10 || s.Time != 16 {
		t.Errorf("sample = %+v", s)
	}

	empty := writeFile(t, dir, "empty.toml", `profile = "pen"`)
	if _, err := readSampleFile(empty); err == nil {
		t.Error("readSampleFile(no samples) should fail")
	}
	typo := writeFile(t, dir, "typo.toml", "[[sample]]\nx = 1.0\ny = 1.0\npresure = 1.0\n")
	if _, err := readSampleFile(typo); err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("readSampleFile(typo) error = %v, want unknown key", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
