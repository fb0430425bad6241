package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/raster"
	"github.com/gogpu/ink/pathedit"
)

// pathCommand builds a command that reads one path file, transforms it and
// emits the result.
func pathCommand(use, short string, out *outputFlags, transform func(cmd *cobra.Command, p ink.Path) (ink.Path, []raster.Layer, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			p, err := readPathFile(args[0])
			if err != nil {
				return err
			}
			res, layers, err := transform(cmd, p)
			if err != nil {
				return err
			}
			return out.emit(cmd, res, layers)
		},
	}
	out.register(cmd)
	return cmd
}

func (c *CLI) simplifyCommand() *cobra.Command {
	var (
		out     outputFlags
		epsilon float64
	)
	cmd := pathCommand("simplify FILE", "Reduce a path with Douglas-Peucker and blend its corners", &out,
		func(cmd *cobra.Command, p ink.Path) (ink.Path, []raster.Layer, error) {
			if epsilon < 0 || math.IsNaN(epsilon) {
				return ink.Path{}, nil, fmt.Errorf("epsilon must be non-negative, got %g", epsilon)
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			before := len(p.Vertices())
			res := pathedit.Simplify(p, epsilon, pathedit.WithTolerance(out.tolerance))
			prog.done(fmt.Sprintf("Simplified %d vertices to %d", before, len(res.Vertices())))
			return res, nil, nil
		})
	cmd.Flags().Float64VarP(&epsilon, "epsilon", "e", 1, "maximum deviation before adaptive scaling")
	return cmd
}

func (c *CLI) smoothCommand() *cobra.Command {
	var (
		out        outputFlags
		smoothness float64
	)
	cmd := pathCommand("smooth FILE", "Replace each polyline with a Catmull-Rom style cubic spline", &out,
		func(cmd *cobra.Command, p ink.Path) (ink.Path, []raster.Layer, error) {
			return pathedit.Smooth(p, smoothness), nil, nil
		})
	cmd.Flags().Float64VarP(&smoothness, "smoothness", "s", 1, "tangent scale, 0 keeps straight segments")
	return cmd
}

func (c *CLI) curveCommand() *cobra.Command {
	var out outputFlags
	return pathCommand("curve FILE", "Convert every line segment to a cubic", &out,
		func(cmd *cobra.Command, p ink.Path) (ink.Path, []raster.Layer, error) {
			return pathedit.ConvertToCurve(p), nil, nil
		})
}

func (c *CLI) outlineCommand() *cobra.Command {
	var (
		out   outputFlags
		width float64
	)
	cmd := pathCommand("outline FILE", "Expand a path into the filled outline of its stroke", &out,
		func(cmd *cobra.Command, p ink.Path) (ink.Path, []raster.Layer, error) {
			if !(width > 0) || math.IsInf(width, 0) {
				return ink.Path{}, nil, fmt.Errorf("width must be positive, got %g", width)
			}
			res := pathedit.Outline(p, width, pathedit.WithTolerance(out.tolerance))
			if res.IsEmpty() {
				loggerFromContext(cmd.Context()).Warn("Outline is empty", "file", cmd.Flags().Arg(0))
			}
			return res, nil, nil
		})
	cmd.Flags().Float64VarP(&width, "stroke-width", "w", 2, "stroke width")
	return cmd
}
