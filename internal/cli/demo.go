package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/boolean"
	"github.com/gogpu/ink/internal/raster"
	"github.com/gogpu/ink/pathedit"
	"github.com/gogpu/ink/shapes"
)

func (c *CLI) demoCommand() *cobra.Command {
	var (
		width, height int
		output        string
		seed          uint64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a sheet exercising every geometry operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("invalid size %dx%d", width, height)
			}
			out := outputFlags{png: output, width: width, height: height, tolerance: ink.DefaultTolerance}
			layers := demoLayers(seed)
			loggerFromContext(cmd.Context()).Debug("Built demo sheet", "layers", len(layers))
			return out.writePreview(cmd, layers)
		},
	}
	cmd.Flags().IntVar(&width, "width", 800, "image width")
	cmd.Flags().IntVar(&height, "height", 600, "image height")
	cmd.Flags().StringVarP(&output, "output", "o", "demo.png", "output file")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for rough shapes and strokes")
	return cmd
}

// demoLayers lays the sheet out on an 800x600 canvas.
func demoLayers(seed uint64) []raster.Layer {
	var layers []raster.Layer
	add := func(p ink.Path, c ink.RGBA) {
		layers = append(layers, raster.Layer{Path: p, Color: c})
	}

	// Frame, so the preview keeps the canvas proportions.
	var frame ink.Path
	frame.MoveTo(ink.Pt(0, 0))
	frame.LineTo(ink.Pt(800, 0))
	frame.LineTo(ink.Pt(800, 600))
	frame.LineTo(ink.Pt(0, 600))
	frame.Close()
	add(frame, ink.RGB(0.96, 0.96, 0.94))

	// Generated shapes, the last row roughened.
	add(shapes.Star(ink.Pt(100, 100), 60, 5), ink.Hex("#f2c12e"))
	add(shapes.Gear(ink.Pt(250, 100), 50, 12), ink.Hex("#7a869a"))
	add(shapes.RegularPolygon(ink.Pt(400, 100), 55, 6), ink.Hex("#2e9e6a"))
	rough := shapes.New(shapes.WithRand(ink.NewRand(seed)), shapes.WithRoughness(3))
	add(rough.Star(ink.Pt(550, 100), 60, 7), ink.Hex("#e07a5f"))
	add(pathedit.Outline(rough.Arrow(ink.Pt(640, 140), ink.Pt(760, 60), 20), 4), ink.Hex("#3d405b"))

	// Boolean operations on two overlapping discs.
	a := shapes.RegularPolygon(ink.Pt(110, 300), 60, 48)
	b := shapes.RegularPolygon(ink.Pt(160, 300), 60, 48)
	colors := []ink.RGBA{ink.Hex("#1f6feb"), ink.Hex("#8250df"), ink.Hex("#cf222e"), ink.Hex("#1a7f37")}
	for i, op := range []boolean.Op{boolean.OpUnion, boolean.OpIntersection, boolean.OpSubtraction, boolean.OpXor} {
		dx := ink.Pt(float64(i)*190, 0)
		add(boolean.Apply(op, a, b).Translate(dx), colors[i])
	}

	// A wave: the raw polyline, simplified, then smoothed.
	var wave []ink.Point
	for i := range 121 {
		x := float64(i) * 2
		wave = append(wave, ink.Pt(40+x, 480+40*math.Sin(x/20)))
	}
	raw := ink.FromPoints(wave, false)
	simplified := pathedit.Simplify(raw, 2)
	add(pathedit.Outline(raw, 1), ink.Hex("#999999"))
	add(pathedit.Outline(simplified.Translate(ink.Pt(260, 0)), 3), ink.Hex("#d1495b"))
	add(pathedit.Outline(pathedit.Smooth(raw, 1).Translate(ink.Pt(520, 0)), 3), ink.Hex("#00798c"))

	// A synthesized pressure stroke along the bottom.
	stroke, ok := replay(mustPreset("brush"), ink.Hex("#30638e"), seed, demoSamples())
	if ok {
		layers = append(layers, segmentLayers(stroke, ink.DefaultTolerance)...)
	}
	return layers
}

func demoSamples() []sampleLine {
	samples := make([]sampleLine, 0, 60)
	for i := range 60 {
		t := float64(i) / 59
		pressure := math.Sin(t * math.Pi)
		samples = append(samples, sampleLine{
			X:        60 + t*680,
			Y:        570 + 10*math.Sin(t*4*math.Pi),
			Pressure: &pressure,
			Time:     float64(i) * 16,
		})
	}
	return samples
}

func mustPreset(name string) ink.StrokeProfile {
	p, ok := ink.Preset(name)
	if !ok {
		panic("cli: missing preset " + name)
	}
	return p
}
