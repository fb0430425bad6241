package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/raster"
	"github.com/gogpu/ink/pathedit"
	"github.com/gogpu/ink/synth"
)

const defaultReplayProfile = "pen"

var errStrokeTooSmall = errors.New("stroke is smaller than --min-size")

type replayFlags struct {
	profile  string
	profiles string
	color    string
	seed     uint64
	minSize  float64
	out      outputFlags
}

func (c *CLI) replayCommand() *cobra.Command {
	var opts replayFlags

	cmd := &cobra.Command{
		Use:   "replay SAMPLES",
		Short: "Feed recorded pointer samples through the stroke synthesizer",
		Long: `Replay a recorded stroke.

The samples file holds one [[sample]] table per pointer event with keys x, y,
pressure (default 1), tilt_x, tilt_y, rotation and t (milliseconds). The
top-level keys profile and color pick the stroke profile and base color;
the --profile and --color flags override them.

The stroke id, the bounds and the centreline path are printed. With --png
each segment is rendered at its synthesized width and color.`,
		Example: `  inkctl replay stroke.toml --profile brush --seed 3 --png stroke.png`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.out.validate(); err != nil {
				return err
			}
			return opts.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "stroke profile name (default from file, then pen)")
	cmd.Flags().StringVar(&opts.profiles, "profiles", "", "TOML file with extra profiles")
	cmd.Flags().StringVar(&opts.color, "color", "", "base stroke color (default from file, then black)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "random seed for jitter and variation")
	cmd.Flags().Float64Var(&opts.minSize, "min-size", 0, "discard strokes whose bounds are smaller on both axes")
	opts.out.register(cmd)

	return cmd
}

func (o *replayFlags) run(cmd *cobra.Command, name string) error {
	logger := loggerFromContext(cmd.Context())

	f, err := readSampleFile(name)
	if err != nil {
		return err
	}
	profile, err := o.resolveProfile(f.Profile)
	if err != nil {
		return err
	}
	base := ink.Black
	if s := firstNonEmpty(o.color, f.Color); s != "" {
		if base, err = parseColor(s); err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	stroke, ok := replay(profile, base, o.seed, f.Sample)
	if !ok {
		return fmt.Errorf("%s: first sample does not start a stroke", name)
	}
	prog.done(fmt.Sprintf("Replayed %d samples with %s", len(stroke.Samples), profile.Name))

	b := stroke.Bounds()
	if b.Width() < o.minSize && b.Height() < o.minSize {
		logger.Warn("Discarding stroke", "id", stroke.ID, "width", b.Width(), "height", b.Height())
		return errStrokeTooSmall
	}

	w := cmd.OutOrStdout()
	if err := writeStrokeHeader(w, stroke); err != nil {
		return err
	}
	var layers []raster.Layer
	if o.out.png != "" {
		layers = segmentLayers(stroke, o.out.tolerance)
	}
	return o.out.emit(cmd, stroke.Path, layers)
}

func (o *replayFlags) resolveProfile(fromFile string) (ink.StrokeProfile, error) {
	want := firstNonEmpty(o.profile, fromFile, defaultReplayProfile)
	var extra []ink.StrokeProfile
	if o.profiles != "" {
		var err error
		if extra, err = ink.LoadProfileFile(o.profiles); err != nil {
			return ink.StrokeProfile{}, err
		}
	}
	p, ok := ink.FindProfile(extra, want)
	if !ok {
		return ink.StrokeProfile{}, fmt.Errorf("unknown profile %q", want)
	}
	return p, nil
}

// replay runs samples through a fresh synthesizer. The first sample starts
// the stroke.
func replay(profile ink.StrokeProfile, base ink.RGBA, seed uint64, samples []sampleLine) (synth.Stroke, bool) {
	s := synth.New(profile,
		synth.WithRand(ink.NewRand(seed)),
		synth.WithColor(base),
	)
	first := samples[0]
	s.BeginStrokeAt(ink.Pt(first.X, first.Y), first.pressure(), first.Time)
	for _, smp := range samples[1:] {
		s.AddPointAt(ink.Pt(smp.X, smp.Y), smp.pressure(), smp.TiltX, smp.TiltY, smp.Rotation, smp.Time)
	}
	return s.EndStroke()
}

func writeStrokeHeader(w io.Writer, s synth.Stroke) error {
	b := s.Bounds()
	_, err := fmt.Fprintf(w, "# stroke %s profile=%s samples=%d segments=%d bounds=%g,%g,%g,%g\n",
		s.ID, s.Profile, len(s.Samples), len(s.Attrs), b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	return err
}

// segmentLayers outlines each stroke segment at its own width and color.
func segmentLayers(s synth.Stroke, tolerance float64) []raster.Layer {
	layers := make([]raster.Layer, 0, len(s.Attrs))
	var current ink.Point
	i := 0
	for _, seg := range s.Path.Segments {
		switch seg := seg.(type) {
		case ink.MoveTo:
			current = seg.Point
		case ink.CubicTo:
			if i >= len(s.Attrs) {
				return layers
			}
			var p ink.Path
			p.MoveTo(current)
			p.CubicTo(seg.Control1, seg.Control2, seg.Point)
			attr := s.Attrs[i]
			layers = append(layers, raster.Layer{
				Path:  pathedit.Outline(p, attr.Width, pathedit.WithTolerance(tolerance)),
				Color: attr.Color,
			})
			current = seg.Point
			i++
		}
	}
	return layers
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
