// Package pathedit implements geometric edits on ink paths: Douglas-Peucker
// simplification, Catmull-style smoothing, line-to-curve conversion and
// stroke outlining.
//
// Every function returns a new path and leaves its input untouched. Empty
// or degenerate input is returned unchanged rather than reported as an
// error.
package pathedit
