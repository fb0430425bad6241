package cli

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/gogpu/ink"
)

// execute runs the root command with args and returns stdout and the log
// output.
func execute(t *testing.T, level log.Level, args ...string) (string, string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, level)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	t.Cleanup(func() { ink.SetLogger(nil) })
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

const lineTOML = `
[[subpath]]
points = [[0.0, 0.0], [10.0, 0.0], [20.0, 10.0]]
`

func TestShapeCommand(t *testing.T) {
	out, _, err := execute(t, LogInfo, "shape", "star", "--radius", "10", "--count", "5")
	if err != nil {
		t.Fatalf("shape star: %v", err)
	}
	out = strings.TrimSpace(out)
	if !strings.HasPrefix(out, "M 0 -10 L ") || !strings.HasSuffix(out, " Z") {
		t.Errorf("star = %q", out)
	}
	if got := strings.Count(out, "L "); got != 9 {
		t.Errorf("star has %d LineTo, want 9", got)
	}

	out, _, err = execute(t, LogInfo, "shape", "arrow", "--end-x", "10", "--head", "4")
	if err != nil {
		t.Fatalf("shape arrow: %v", err)
	}
	if got, want := strings.TrimSpace(out), "M 0 0 L 10 0 M 6 2 L 10 0 L 6 -2"; got != want {
		t.Errorf("arrow = %q, want %q", got, want)
	}
}

func TestShapeCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown kind", []string{"shape", "blob"}},
		{"no kind", []string{"shape"}},
		{"empty star", []string{"shape", "star", "--count", "0"}},
		{"bad format", []string{"shape", "gear", "--format", "svg"}},
		{"bad color", []string{"shape", "gear", "--fill", "blue-ish"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, LogInfo, tt.args...); err == nil {
				t.Errorf("%v should fail", tt.args)
			}
		})
	}
}

func TestShapeCommand_RoughnessSeed(t *testing.T) {
	args := []string{"shape", "polygon", "--count", "6", "--roughness", "2", "--seed", "9"}
	a, _, err := execute(t, LogInfo, args...)
	if err != nil {
		t.Fatal(err)
	}
	b, _, _ := execute(t, LogInfo, args...)
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
	exact, _, _ := execute(t, LogInfo, "shape", "polygon", "--count", "6")
	if a == exact {
		t.Error("roughness did not change the polygon")
	}
}

func TestEditCommands(t *testing.T) {
	file := writeFile(t, t.TempDir(), "line.toml", lineTOML)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"smooth", file}, "M 0 0 C 0 0 7 -1.5 10 0 C 13 1.5 20 10 20 10"},
		{[]string{"smooth", file, "--smoothness", "0"}, "M 0 0 C 0 0 10 0 10 0 C 10 0 20 10 20 10"},
		{[]string{"curve", file}, "M 0 0 C 6.7 0 6.7 -3.3 10 0 C 16.7 6.7 20 10 20 10"},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			out, _, err := execute(t, LogInfo, tt.args...)
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestSimplifyCommand(t *testing.T) {
	file := writeFile(t, t.TempDir(), "flat.toml", `
[[subpath]]
points = [[0.0, 0.0], [1.0, 0.0], [2.0, 0.0], [3.0, 0.0], [4.0, 0.0]]
`)
	out, logs, err := execute(t, LogDebug, "simplify", file, "--epsilon", "0.5")
	if err != nil {
		t.Fatalf("simplify: %v", err)
	}
	out = strings.TrimSpace(out)
	if !strings.HasPrefix(out, "M 0 0") || !strings.HasSuffix(out, "L 4 0") {
		t.Errorf("simplify = %q", out)
	}
	if !strings.Contains(logs, "Simplified 5 vertices") {
		t.Errorf("logs = %q, want progress message", logs)
	}
	// The library logger is routed to the CLI logger.
	if !strings.Contains(logs, "pathedit: simplified") {
		t.Errorf("logs = %q, want library debug output", logs)
	}

	if _, _, err := execute(t, LogInfo, "simplify", file, "--epsilon", "-1"); err == nil {
		t.Error("negative epsilon should fail")
	}
	if _, _, err := execute(t, LogInfo, "simplify", filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestOutlineCommand_TOML(t *testing.T) {
	file := writeFile(t, t.TempDir(), "seg.toml", "[[subpath]]\npoints = [[0.0, 0.0], [10.0, 0.0]]\n")
	out, _, err := execute(t, LogInfo, "outline", file, "--stroke-width", "2", "--format", "toml", "--tolerance", "0.01")
	if err != nil {
		t.Fatalf("outline: %v", err)
	}
	p, err := decodePath(strings.NewReader(out))
	if err != nil {
		t.Fatalf("decode outline: %v\n%s", err, out)
	}
	b := p.Bounds()
	want := ink.Rect{Min: ink.Pt(-1, -1), Max: ink.Pt(11, 1)}
	if !b.Min.Approx(want.Min, 0.05) || !b.Max.Approx(want.Max, 0.05) {
		t.Errorf("outline bounds = %v, want %v", b, want)
	}

	if _, _, err := execute(t, LogInfo, "outline", file, "--stroke-width", "0"); err == nil {
		t.Error("zero width should fail")
	}
}

func TestBooleanCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.toml", "[[subpath]]\nclosed = true\npoints = [[0.0, 0.0], [10.0, 0.0], [10.0, 10.0], [0.0, 10.0]]\n")
	b := writeFile(t, dir, "b.toml", "[[subpath]]\nclosed = true\npoints = [[5.0, 5.0], [15.0, 5.0], [15.0, 15.0], [5.0, 15.0]]\n")

	tests := []struct {
		op   string
		area float64
	}{
		{"union", 175},
		{"intersection", 25},
		{"subtraction", 75},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			out, _, err := execute(t, LogInfo, "boolean", tt.op, a, b, "--format", "toml")
			if err != nil {
				t.Fatalf("boolean %s: %v", tt.op, err)
			}
			p, err := decodePath(strings.NewReader(out))
			if err != nil {
				t.Fatalf("decode: %v\n%s", err, out)
			}
			if got := math.Abs(p.Area()); math.Abs(got-tt.area) > 1e-6 {
				t.Errorf("area = %g, want %g", got, tt.area)
			}
		})
	}

	if _, _, err := execute(t, LogInfo, "boolean", "merge", a, b); err == nil {
		t.Error("unknown operation should fail")
	}
}

const strokeTOML = `
profile = "pen"

[[sample]]
x = 0.0
y = 0.0
pressure = 0.5

[[sample]]
x = 10.0
y = 2.0
t = 16.0

[[sample]]
x = 20.0
y = 0.0
t = 32.0

[[sample]]
x = 30.0
y = 4.0
t = 48.0
`

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "stroke.toml", strokeTOML)
	preview := filepath.Join(dir, "stroke.png")

	out, _, err := execute(t, LogInfo, "replay", file, "--seed", "4", "--png", preview, "--width", "64", "--height", "32")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	header, path, _ := strings.Cut(out, "\n")
	if !strings.HasPrefix(header, "# stroke ") || !strings.Contains(header, "profile=pen samples=4") {
		t.Errorf("header = %q", header)
	}
	if !strings.HasPrefix(path, "M ") || !strings.Contains(path, " C ") {
		t.Errorf("path = %q", path)
	}

	f, err := os.Open(preview)
	if err != nil {
		t.Fatalf("preview not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("preview size = %v, want 64x32", b)
	}

	again, _, _ := execute(t, LogInfo, "replay", file, "--seed", "4")
	_, againPath, _ := strings.Cut(again, "\n")
	if againPath != path {
		t.Errorf("same seed replayed differently:\n%s\n%s", path, againPath)
	}
}

func TestReplayCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "stroke.toml", strokeTOML)

	_, logs, err := execute(t, LogInfo, "replay", file, "--min-size", "1000")
	if !errors.Is(err, errStrokeTooSmall) {
		t.Errorf("min-size error = %v, want errStrokeTooSmall", err)
	}
	if !strings.Contains(logs, "Discarding stroke") {
		t.Errorf("logs = %q, want discard warning", logs)
	}

	if _, _, err := execute(t, LogInfo, "replay", file, "--profile", "crayon"); err == nil {
		t.Error("unknown profile should fail")
	}
	if _, _, err := execute(t, LogInfo, "replay", file, "--color", "#zzzzzz"); err == nil {
		t.Error("bad color should fail")
	}
}

func TestReplayCommand_ProfileFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "stroke.toml", strokeTOML)
	profiles := writeFile(t, dir, "profiles.toml", `
[[profile]]
name = "thick"
extends = "marker"
base_width = 9.0
`)
	out, _, err := execute(t, LogInfo, "replay", file, "--profile", "thick", "--profiles", profiles)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(out, "profile=thick") {
		t.Errorf("output = %q, want profile=thick", out)
	}
}

func TestProfilesCommand(t *testing.T) {
	out, _, err := execute(t, LogInfo, "profiles")
	if err != nil {
		t.Fatalf("profiles: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(ink.PresetNames()) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(ink.PresetNames()), out)
	}
	if !strings.Contains(out, "Calligraphy") {
		t.Errorf("output = %q, want title-cased names", out)
	}
}

func TestDemoCommand(t *testing.T) {
	name := filepath.Join(t.TempDir(), "demo.png")
	if _, _, err := execute(t, LogInfo, "demo", "-o", name, "--width", "160", "--height", "120"); err != nil {
		t.Fatalf("demo: %v", err)
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode demo: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Errorf("demo size = %v, want 160x120", b)
	}
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	out, _, err := execute(t, LogInfo, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "inkctl v1.2.3") || !strings.Contains(out, "commit: abc123") {
		t.Errorf("version output = %q", out)
	}
}
