package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/boolean"
	"github.com/gogpu/ink/internal/raster"
)

func (c *CLI) booleanCommand() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "boolean union|intersection|subtraction|xor A B",
		Short: "Combine two closed paths",
		Long: `Combine the regions of two path files.

Every subpath is treated as closed. Subtraction removes B from A. The
result uses the even-odd fill rule.`,
		Example: `  inkctl boolean union a.toml b.toml --png union.png`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}
			op, ok := boolean.ParseOp(args[0])
			if !ok {
				return fmt.Errorf("unknown operation %q (want union, intersection, subtraction or xor)", args[0])
			}
			a, err := readPathFile(args[1])
			if err != nil {
				return err
			}
			b, err := readPathFile(args[2])
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			res := boolean.Apply(op, a, b, boolean.WithTolerance(out.tolerance))
			prog.done(fmt.Sprintf("Computed %s (%d subpaths)", op, len(res.Subpaths(out.tolerance))))

			var layers []raster.Layer
			if out.png != "" {
				layers = operandLayers(a, b, res, out.fill)
			}
			return out.emit(cmd, res, layers)
		},
	}
	out.register(cmd)
	return cmd
}

var operandTint = ink.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.25}

// operandLayers draws both operands faintly under the result.
func operandLayers(a, b, res ink.Path, fill string) []raster.Layer {
	c, _ := parseColor(fill)
	return []raster.Layer{
		{Path: a, Color: operandTint},
		{Path: b, Color: operandTint},
		{Path: res, Color: c},
	}
}
