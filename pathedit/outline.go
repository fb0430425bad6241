package pathedit

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/stroke"
)

// Outline returns the filled outline of p stroked at width, with round
// joins and round caps. The result uses the non-zero fill rule. Curves are
// flattened with the configured tolerance before offsetting.
func Outline(p ink.Path, width float64, opts ...Option) ink.Path {
	o := applyOptions(opts)
	e := stroke.NewExpander(width)
	e.SetTolerance(o.tolerance)
	out := e.Expand(p)
	ink.Logger().Debug("pathedit: outlined", "segments", p.Len(), "width", width, "result", out.Len())
	return out
}
