package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/parallel"
	"github.com/gogpu/ink/internal/raster"
)

// Output formats.
const (
	formatText = "text"
	formatTOML = "toml"
)

const previewMargin = 8

// outputFlags are shared by every command that produces a path.
type outputFlags struct {
	format    string
	png       string
	width     int
	height    int
	tolerance float64
	fill      string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", formatText, "output format: text or toml")
	cmd.Flags().StringVar(&o.png, "png", "", "also render a preview to this PNG file")
	cmd.Flags().IntVar(&o.width, "width", 512, "preview width in pixels")
	cmd.Flags().IntVar(&o.height, "height", 512, "preview height in pixels")
	cmd.Flags().Float64Var(&o.tolerance, "tolerance", ink.DefaultTolerance, "curve flattening tolerance")
	cmd.Flags().StringVar(&o.fill, "fill", "#1f6feb", "preview fill color")
}

func (o *outputFlags) validate() error {
	switch o.format {
	case formatText, formatTOML:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", o.format, formatText, formatTOML)
	}
	if o.png != "" && (o.width <= 0 || o.height <= 0) {
		return fmt.Errorf("invalid preview size %dx%d", o.width, o.height)
	}
	if o.tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", o.tolerance)
	}
	if _, err := parseColor(o.fill); err != nil {
		return err
	}
	return nil
}

// parseColor parses a "#rrggbb" color.
func parseColor(s string) (ink.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return ink.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return ink.RGB(c.R, c.G, c.B), nil
}

// writePath prints p to w in the selected format.
func (o *outputFlags) writePath(w io.Writer, p ink.Path) error {
	if o.format == formatTOML {
		return encodePath(w, p, o.tolerance)
	}
	_, err := fmt.Fprintln(w, p.String())
	return err
}

// emit prints p and, when requested, renders layers into the preview. A nil
// layers slice previews p itself.
func (o *outputFlags) emit(cmd *cobra.Command, p ink.Path, layers []raster.Layer) error {
	if err := o.writePath(cmd.OutOrStdout(), p); err != nil {
		return err
	}
	if o.png == "" {
		return nil
	}
	if layers == nil {
		fill, _ := parseColor(o.fill)
		layers = []raster.Layer{{Path: p, Color: fill}}
	}
	return o.writePreview(cmd, layers)
}

func (o *outputFlags) writePreview(cmd *cobra.Command, layers []raster.Layer) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	var bounds ink.Rect
	for i, l := range layers {
		if i == 0 {
			bounds = l.Path.Bounds()
			continue
		}
		bounds = bounds.Union(l.Path.Bounds())
	}
	tr := raster.Fit(bounds, o.width, o.height, previewMargin)
	pool := parallel.NewPool(0)
	defer pool.Close()
	img := raster.RenderParallel(pool, layers, o.width, o.height, tr, ink.White)

	f, err := os.Create(o.png)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	if err := raster.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close preview: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %s", o.png))
	return nil
}
