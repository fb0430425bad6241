// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders ink paths into anti-aliased coverage masks and
// preview images with golang.org/x/image/vector.
//
// The vector rasterizer accumulates signed area, which matches the
// non-zero rule. Even-odd paths are rasterized one subpath at a time and
// the coverages are combined exclusively.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/parallel"
)

// Transform maps path coordinates to pixels: pixel = point*Scale + Offset.
type Transform struct {
	Scale  float64
	Offset ink.Point
}

// Identity maps path units one to one onto pixels.
var Identity = Transform{Scale: 1}

// Apply maps pt to pixel space.
func (t Transform) Apply(pt ink.Point) ink.Point {
	return pt.Mul(t.Scale).Add(t.Offset)
}

func (t Transform) f32(pt ink.Point) (float32, float32) {
	q := t.Apply(pt)
	return float32(q.X), float32(q.Y)
}

// Fit returns the uniform transform that centers bounds in a w x h image,
// leaving margin pixels on every side. Degenerate bounds keep scale 1.
func Fit(bounds ink.Rect, w, h int, margin float64) Transform {
	aw, ah := float64(w)-2*margin, float64(h)-2*margin
	if aw <= 0 || ah <= 0 {
		aw, ah = float64(w), float64(h)
	}
	scale := math.Inf(1)
	if bw := bounds.Width(); bw > 0 {
		scale = aw / bw
	}
	if bh := bounds.Height(); bh > 0 {
		scale = math.Min(scale, ah/bh)
	}
	if math.IsInf(scale, 1) || !(scale > 0) {
		scale = 1
	}
	center := bounds.Min.Lerp(bounds.Max, 0.5)
	return Transform{
		Scale:  scale,
		Offset: ink.Pt(float64(w)/2, float64(h)/2).Sub(center.Mul(scale)),
	}
}

// Coverage rasterizes p into a w x h alpha mask under the path's fill rule.
func Coverage(p ink.Path, w, h int, tr Transform) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if w <= 0 || h <= 0 || p.IsEmpty() {
		return dst
	}

	r := vector.NewRasterizer(w, h)
	if p.FillRule == ink.NonZero {
		addPath(r, p, tr)
		r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
		return dst
	}

	layer := image.NewAlpha(dst.Rect)
	for _, sub := range p.SplitSubpaths() {
		r.Reset(w, h)
		clear(layer.Pix)
		addPath(r, sub, tr)
		r.Draw(layer, layer.Bounds(), image.Opaque, image.Point{})
		for i, b := range layer.Pix {
			a := int(dst.Pix[i])
			dst.Pix[i] = uint8(a + int(b) - 2*a*int(b)/255)
		}
	}
	return dst
}

// addPath feeds p to the rasterizer. Every subpath is closed, open or not.
func addPath(r *vector.Rasterizer, p ink.Path, tr Transform) {
	open := false
	for _, s := range p.Segments {
		switch e := s.(type) {
		case ink.MoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(tr.f32(e.Point))
			open = true
		case ink.LineTo:
			r.LineTo(tr.f32(e.Point))
			open = true
		case ink.CubicTo:
			ax, ay := tr.f32(e.Control1)
			bx, by := tr.f32(e.Control2)
			cx, cy := tr.f32(e.Point)
			r.CubeTo(ax, ay, bx, by, cx, cy)
			open = true
		case ink.Close:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
}

// Area returns the covered area of a mask in square pixels.
func Area(mask *image.Alpha) float64 {
	var sum int
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[mask.PixOffset(b.Min.X, y):mask.PixOffset(b.Max.X, y)]
		for _, v := range row {
			sum += int(v)
		}
	}
	return float64(sum) / 255
}

// Layer is one filled path of a preview.
type Layer struct {
	Path  ink.Path
	Color ink.RGBA
}

// Render composites layers in order over a background.
func Render(layers []Layer, w, h int, tr Transform, background ink.RGBA) *image.RGBA {
	return RenderParallel(nil, layers, w, h, tr, background)
}

// RenderParallel is Render with the layer masks rasterized on pool. The
// masks are composited in layer order once all of them are ready.
func RenderParallel(pool *parallel.Pool, layers []Layer, w, h int, tr Transform, background ink.RGBA) *image.RGBA {
	masks := make([]*image.Alpha, len(layers))
	pool.Run(len(layers), func(i int) {
		masks[i] = Coverage(layers[i].Path, w, h, tr)
	})

	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background.Color()), image.Point{}, draw.Src)
	for i, l := range layers {
		draw.DrawMask(dst, dst.Bounds(), image.NewUniform(l.Color.Color()), image.Point{}, masks[i], image.Point{}, draw.Over)
	}
	return dst
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
