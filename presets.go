package ink

import "sort"

// presets holds the built-in profiles, keyed by name.
var presets = map[string]StrokeProfile{
	"pen": {
		Name: "pen", BaseWidth: 2, MinWidth: 0.5, MaxWidth: 6,
		PressureEnabled: true, PressureCurve: 1.5, PressureSensitivity: 0.8,
		VelocityCurve: 1, TiltCurve: 1,
		Smoothing: 0.5, Opacity: 1,
	},
	"pencil": {
		Name: "pencil", BaseWidth: 1.5, MinWidth: 0.5, MaxWidth: 3,
		PressureEnabled: true, PressureCurve: 1, PressureSensitivity: 0.6,
		VelocityCurve: 1,
		TiltEnabled: true, TiltCurve: 1, TiltSensitivity: 1.5,
		Smoothing: 0.3, Jitter: 0.3, Randomization: 0.1, Opacity: 0.85,
	},
	"marker": {
		Name: "marker", BaseWidth: 8, MinWidth: 6, MaxWidth: 10,
		PressureCurve: 1, VelocityCurve: 1, TiltCurve: 1,
		Smoothing: 0.8, Opacity: 0.6,
	},
	"brush": {
		Name: "brush", BaseWidth: 10, MinWidth: 1, MaxWidth: 24,
		PressureEnabled: true, PressureCurve: 2, PressureSensitivity: 1,
		VelocityEnabled: true, VelocityCurve: 1.2, VelocitySensitivity: 0.05,
		TiltCurve: 1,
		Smoothing: 1, Opacity: 0.9,
		ColorVariation: true, HueVariation: 0.02, SaturationVariation: 0.05, BrightnessVariation: 0.05,
	},
	"calligraphy": {
		Name: "calligraphy", BaseWidth: 6, MinWidth: 1, MaxWidth: 14,
		PressureEnabled: true, PressureCurve: 1.2, PressureSensitivity: 0.7,
		VelocityCurve: 1,
		TiltEnabled: true, TiltCurve: 1.5, TiltSensitivity: 2,
		Smoothing: 0.6, Opacity: 1,
	},
	"airbrush": {
		Name: "airbrush", BaseWidth: 20, MinWidth: 4, MaxWidth: 40,
		PressureEnabled: true, PressureCurve: 0.8, PressureSensitivity: 0.9,
		VelocityCurve: 1, TiltCurve: 1,
		Smoothing: 1.2, Jitter: 1.5, Randomization: 0.2, Opacity: 0.25,
		ColorVariation: true, HueVariation: 0.01, BrightnessVariation: 0.1,
	},
}

// Preset returns the built-in profile with the given name.
func Preset(name string) (StrokeProfile, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns the names of all built-in profiles, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
