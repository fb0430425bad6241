package ink

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile is wrapped by every error returned from
// StrokeProfile.Validate.
var ErrInvalidProfile = errors.New("ink: invalid stroke profile")

// StrokeProfile configures how stroke samples turn into width and color.
// A profile is immutable configuration: the synthesizer reads it but never
// writes to it.
type StrokeProfile struct {
	Name string `toml:"name"`

	BaseWidth float64 `toml:"base_width"`
	MinWidth  float64 `toml:"min_width"`
	MaxWidth  float64 `toml:"max_width"`

	PressureEnabled     bool    `toml:"pressure_enabled"`
	PressureCurve       float64 `toml:"pressure_curve"`
	PressureSensitivity float64 `toml:"pressure_sensitivity"`

	VelocityEnabled     bool    `toml:"velocity_enabled"`
	VelocityCurve       float64 `toml:"velocity_curve"`
	VelocitySensitivity float64 `toml:"velocity_sensitivity"`

	TiltEnabled     bool    `toml:"tilt_enabled"`
	TiltCurve       float64 `toml:"tilt_curve"`
	TiltSensitivity float64 `toml:"tilt_sensitivity"`

	// Smoothing scales the Gaussian window over recent positions.
	// Zero disables positional smoothing.
	Smoothing float64 `toml:"smoothing"`
	// Jitter is the maximum per-axis random offset in pixels.
	Jitter float64 `toml:"jitter"`
	// Randomization is the half-width of the random width factor.
	Randomization float64 `toml:"randomization"`
	// Opacity becomes the alpha of every segment color.
	Opacity float64 `toml:"opacity"`

	ColorVariation      bool    `toml:"color_variation"`
	HueVariation        float64 `toml:"hue_variation"`
	SaturationVariation float64 `toml:"saturation_variation"`
	BrightnessVariation float64 `toml:"brightness_variation"`
}

// DefaultProfile returns a plain pressure-sensitive pen.
func DefaultProfile() StrokeProfile {
	return StrokeProfile{
		Name:                "default",
		BaseWidth:           2,
		MinWidth:            0.5,
		MaxWidth:            8,
		PressureEnabled:     true,
		PressureCurve:       1,
		PressureSensitivity: 0.8,
		VelocityCurve:       1,
		TiltCurve:           1,
		Smoothing:           0.5,
		Opacity:             1,
	}
}

// Validate reports every violated invariant:
// MinWidth <= BaseWidth <= MaxWidth, curve exponents > 0, and opacity,
// sensitivities and variation ranges within [0, 1].
func (p StrokeProfile) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidProfile, fmt.Sprintf(format, args...)))
	}

	if p.MinWidth < 0 {
		add("min_width %g is negative", p.MinWidth)
	}
	if p.MinWidth > p.BaseWidth || p.BaseWidth > p.MaxWidth {
		add("widths must satisfy min <= base <= max, got %g <= %g <= %g", p.MinWidth, p.BaseWidth, p.MaxWidth)
	}
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"pressure_curve", p.PressureCurve},
		{"velocity_curve", p.VelocityCurve},
		{"tilt_curve", p.TiltCurve},
	} {
		if !(c.value > 0) {
			add("%s must be > 0, got %g", c.name, c.value)
		}
	}
	for _, r := range []struct {
		name  string
		value float64
	}{
		{"pressure_sensitivity", p.PressureSensitivity},
		{"opacity", p.Opacity},
		{"randomization", p.Randomization},
		{"hue_variation", p.HueVariation},
		{"saturation_variation", p.SaturationVariation},
		{"brightness_variation", p.BrightnessVariation},
	} {
		if r.value < 0 || r.value > 1 {
			add("%s must be in [0, 1], got %g", r.name, r.value)
		}
	}
	if p.Smoothing < 0 {
		add("smoothing %g is negative", p.Smoothing)
	}
	if p.Jitter < 0 {
		add("jitter %g is negative", p.Jitter)
	}
	return errors.Join(errs...)
}

// Normalized returns a copy that satisfies the invariants checked by
// Validate. Non-positive curve exponents become 1, out-of-range factors are
// clamped, and BaseWidth is clamped into [MinWidth, MaxWidth]. A profile
// with MinWidth > MaxWidth keeps both values; width clamping then resolves
// to MaxWidth.
func (p StrokeProfile) Normalized() StrokeProfile {
	fixCurve := func(v float64) float64 {
		if !(v > 0) || !isFinite(v) {
			return 1
		}
		return v
	}
	p.PressureCurve = fixCurve(p.PressureCurve)
	p.VelocityCurve = fixCurve(p.VelocityCurve)
	p.TiltCurve = fixCurve(p.TiltCurve)

	p.PressureSensitivity = Clamp01(p.PressureSensitivity)
	p.Opacity = Clamp01(p.Opacity)
	p.Randomization = Clamp01(p.Randomization)
	p.HueVariation = Clamp01(p.HueVariation)
	p.SaturationVariation = Clamp01(p.SaturationVariation)
	p.BrightnessVariation = Clamp01(p.BrightnessVariation)
	p.VelocitySensitivity = max(0, p.VelocitySensitivity)
	p.TiltSensitivity = max(0, p.TiltSensitivity)
	p.Smoothing = max(0, p.Smoothing)
	p.Jitter = max(0, p.Jitter)

	p.MinWidth = max(0, p.MinWidth)
	p.BaseWidth = ClampWidth(p.BaseWidth, p.MinWidth, p.MaxWidth)
	return p
}

// ClampWidth clamps w into [lo, hi]. When lo > hi the result is hi, so a
// misconfigured profile collapses to its maximum width instead of failing.
// NaN maps to the lower bound.
func ClampWidth(w, lo, hi float64) float64 {
	lo = min(lo, hi)
	switch {
	case !(w >= lo):
		return lo
	case w > hi:
		return hi
	}
	return w
}
