package synth

import (
	"math"

	"github.com/gogpu/ink"
)

// minEffect floors every response curve so width never reaches zero.
const minEffect = 0.1

// PressureEffect is max(0.1, 1 - (1 - pressure^curve) * sensitivity).
func PressureEffect(pressure, curve, sensitivity float64) float64 {
	return math.Max(minEffect, 1-(1-math.Pow(ink.Clamp01(pressure), curve))*sensitivity)
}

// VelocityEffect is max(0.1, 1 - velocity*sensitivity*0.01)^curve.
// Velocity is in pixels per second.
func VelocityEffect(velocity, curve, sensitivity float64) float64 {
	return math.Pow(math.Max(minEffect, 1-velocity*sensitivity*0.01), curve)
}

// TiltEffect is max(0.1, (1 + |tilt|*sensitivity*0.01)^curve), where |tilt|
// is the magnitude of the (tiltX, tiltY) vector.
func TiltEffect(tiltX, tiltY, curve, sensitivity float64) float64 {
	tilt := math.Hypot(tiltX, tiltY)
	return math.Max(minEffect, math.Pow(1+tilt*sensitivity*0.01, curve))
}

// Width computes the instantaneous stroke width for a sample. Every enabled
// dynamic multiplies the base width; randomization applies a symmetric
// factor in [1-r, 1+r]. The result is always clamped to
// [MinWidth, MaxWidth]. rng may be nil when the profile has no
// randomization.
func Width(p ink.StrokeProfile, s ink.StrokeSample, rng ink.Rand) float64 {
	w := p.BaseWidth
	if p.PressureEnabled {
		w *= PressureEffect(s.Pressure, p.PressureCurve, p.PressureSensitivity)
	}
	if p.VelocityEnabled {
		w *= VelocityEffect(s.Velocity, p.VelocityCurve, p.VelocitySensitivity)
	}
	if p.TiltEnabled {
		w *= TiltEffect(s.TiltX, s.TiltY, p.TiltCurve, p.TiltSensitivity)
	}
	if p.Randomization > 0 && rng != nil {
		w *= 1 + ink.Symmetric(rng, p.Randomization)
	}
	return ink.ClampWidth(w, p.MinWidth, p.MaxWidth)
}

// VaryColor perturbs hue, saturation and brightness by independent
// symmetric deltas scaled by the profile's variation ranges. Hue wraps,
// saturation and brightness clamp, alpha is preserved. The color is
// returned unchanged when variation is disabled.
func VaryColor(p ink.StrokeProfile, c ink.RGBA, rng ink.Rand) ink.RGBA {
	if !p.ColorVariation || rng == nil {
		return c
	}
	h, s, v := c.HSV()
	h += ink.Symmetric(rng, p.HueVariation)
	s += ink.Symmetric(rng, p.SaturationVariation)
	v += ink.Symmetric(rng, p.BrightnessVariation)
	return ink.HSVA(h, s, v, c.A)
}

// Color returns the segment color for a point: the base color with
// variation applied and the profile opacity as alpha.
func Color(p ink.StrokeProfile, base ink.RGBA, rng ink.Rand) ink.RGBA {
	return VaryColor(p, base, rng).WithAlpha(p.Opacity)
}

// gaussianSmooth returns the Gaussian-weighted average of the window.
// Index i (oldest 0) of n entries weighs exp(-0.5*((n-1-i)/(smoothing*3))^2).
// With smoothing <= 0 or fewer than two entries the newest entry is
// returned unchanged.
func gaussianSmooth(window *ring[ink.Point], smoothing float64) ink.Point {
	n := window.len()
	if n == 0 {
		return ink.Point{}
	}
	if smoothing <= 0 || n < 2 {
		return window.at(n - 1)
	}
	sigma := smoothing * 3
	var sum ink.Point
	var total float64
	for i := 0; i < n; i++ {
		d := float64(n-1-i) / sigma
		w := math.Exp(-0.5 * d * d)
		sum = sum.Add(window.at(i).Mul(w))
		total += w
	}
	return sum.Mul(1 / total)
}
