// Package ink is the geometry core of a vector drawing surface.
//
// # Overview
//
// ink turns pointer samples (position, pressure, tilt, timestamp) into
// stroke geometry and transforms 2D paths. The root package holds the
// shared model:
//   - Point, Rect, QuadBez, CubicBez and the curve math helpers
//   - Path, a value type holding MoveTo, LineTo, CubicTo and Close segments
//     plus a FillRule
//   - StrokeProfile and StrokeSample, with built-in presets and TOML loading
//   - RGBA colors with HSV conversion
//
// Sub-packages build on it:
//   - synth: the stroke synthesizer state machine
//   - pathedit: Douglas-Peucker simplification, smoothing, curve conversion, outlines
//   - boolean: union, intersection, subtraction and xor of closed regions
//   - shapes: star, gear, arrow and polygon generators
//
// The inkctl command (cmd/inkctl) runs every operation from the shell and
// renders PNG previews.
//
// # Coordinate System
//
// Origin at top-left, X grows right, Y grows down, angles in radians.
//
// # Concurrency
//
// Nothing in ink blocks or spawns goroutines. A synthesizer is owned by the
// goroutine handling one stroke; path operations are pure functions and
// may run concurrently on distinct inputs.
package ink
