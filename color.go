package ink

import (
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a non-premultiplied color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	digit := func(i, w int) float64 {
		v, err := strconv.ParseUint(hex[i:i+w], 16, 8)
		if err != nil {
			return 0
		}
		if w == 1 {
			v *= 17
		}
		return float64(v) / 255
	}
	switch len(hex) {
	case 3, 4:
		c := RGBA{R: digit(0, 1), G: digit(1, 1), B: digit(2, 1), A: 1}
		if len(hex) == 4 {
			c.A = digit(3, 1)
		}
		return c
	case 6, 8:
		c := RGBA{R: digit(0, 2), G: digit(2, 2), B: digit(4, 2), A: 1}
		if len(hex) == 8 {
			c.A = digit(6, 2)
		}
		return c
	}
	return RGB(0, 0, 0)
}

// Color converts to the standard library color model.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(math.Round(Clamp01(c.R) * 255)),
		G: uint8(math.Round(Clamp01(c.G) * 255)),
		B: uint8(math.Round(Clamp01(c.B) * 255)),
		A: uint8(math.Round(Clamp01(c.A) * 255)),
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = Clamp01(a)
	return c
}

// HSV returns hue, saturation and brightness, all in [0, 1].
func (c RGBA) HSV() (h, s, v float64) {
	h, s, v = colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	return WrapUnit(h / 360), s, v
}

// HSVA builds a color from hue, saturation, brightness and alpha. Hue wraps
// modulo 1; the other components are clamped to [0, 1].
func HSVA(h, s, v, a float64) RGBA {
	c := colorful.Hsv(WrapUnit(h)*360, Clamp01(s), Clamp01(v)).Clamped()
	return RGBA{R: c.R, G: c.G, B: c.B, A: Clamp01(a)}
}

// Clamp01 restricts x to [0, 1]. NaN maps to 0.
func Clamp01(x float64) float64 {
	switch {
	case !(x > 0):
		return 0
	case x > 1:
		return 1
	}
	return x
}

// WrapUnit maps x into [0, 1) modulo 1.
func WrapUnit(x float64) float64 {
	if !isFinite(x) {
		return 0
	}
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	if x >= 1 {
		x = 0
	}
	return x
}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)
