// Package synth converts raw pointer samples into stroke geometry.
//
// A Synthesizer is a two-state machine. BeginStroke moves it from idle to
// drawing, every AddPoint extends the stroke, and EndStroke freezes the
// result and returns to idle. AddPoint and EndStroke are no-ops while idle.
//
// Each point passes through a Gaussian smoothing window, optional jitter,
// and the profile's pressure, velocity and tilt response curves. The stroke
// is kept as a piecewise cubic ink.Path with one SegmentAttr (width and
// color) per segment.
//
// A Synthesizer is not safe for concurrent use. Give each concurrently
// drawn stroke its own instance; each instance owns its own generator.
package synth

import (
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/ink"
)

// State is a read-only snapshot of the in-progress stroke.
type State struct {
	Profile ink.StrokeProfile
	// Positions and Pressures hold the smoothing windows, oldest first.
	Positions    []ink.Point
	Pressures    []float64
	LastPosition ink.Point
	LastTime     float64
	LastPressure float64
	Drawing      bool
}

// Stroke is a finished stroke as returned by EndStroke.
type Stroke struct {
	ID      uuid.UUID
	Profile string
	// Samples are the raw observations, one per input event.
	Samples []ink.StrokeSample
	// Points are the smoothed (and jittered) positions the path runs through.
	Points []ink.Point
	Path   ink.Path
	// Attrs has one entry per CubicTo segment of Path.
	Attrs []SegmentAttr
}

// Bounds returns the bounding box of the stroke path. Hosts compare it with
// their minimum size to discard accidental taps.
func (s Stroke) Bounds() ink.Rect {
	return s.Path.Bounds()
}

// Synthesizer turns a sequence of samples into a stroke.
type Synthesizer struct {
	profile ink.StrokeProfile
	next    *ink.StrokeProfile // applied at the next BeginStroke
	opts    options
	rng     ink.Rand

	drawing bool
	id      uuid.UUID
	epoch   time.Time

	positions *ring[ink.Point]
	pressures *ring[float64]

	samples    []ink.StrokeSample
	points     []ink.Point
	pointAttrs []SegmentAttr
	path       ink.Path
	attrs      []SegmentAttr

	lastPos      ink.Point
	lastTime     float64
	lastPressure float64
}

// New creates an idle synthesizer. An invalid profile is logged and
// normalized rather than rejected.
func New(profile ink.StrokeProfile, opts ...Option) *Synthesizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Synthesizer{
		opts:      o,
		rng:       o.rng,
		positions: newRing[ink.Point](o.bufferSize),
		pressures: newRing[float64](o.bufferSize),
	}
	if s.rng == nil {
		s.rng = ink.NewRandomRand()
	}
	s.SetProfile(profile)
	return s
}

// SetProfile replaces the profile. A stroke in progress keeps the profile
// it started with; the new one applies from the next BeginStroke.
func (s *Synthesizer) SetProfile(p ink.StrokeProfile) {
	if err := p.Validate(); err != nil {
		ink.Logger().Warn("synth: normalizing invalid profile", "profile", p.Name, "err", err)
	}
	s.pendingProfile(p.Normalized())
}

func (s *Synthesizer) pendingProfile(p ink.StrokeProfile) {
	if s.drawing {
		s.next = &p
		return
	}
	s.profile = p
}

// SetColor sets the base color for subsequent points.
func (s *Synthesizer) SetColor(c ink.RGBA) {
	s.opts.color = c
}

// Profile returns the active profile.
func (s *Synthesizer) Profile() ink.StrokeProfile {
	return s.profile
}

// IsDrawing reports whether a stroke is in progress.
func (s *Synthesizer) IsDrawing() bool {
	return s.drawing
}

// BeginStroke starts a stroke timestamped by the configured clock.
func (s *Synthesizer) BeginStroke(pos ink.Point, pressure float64) {
	s.epoch = s.opts.clock()
	s.begin(pos, pressure, 0)
}

// BeginStrokeAt starts a stroke with an explicit timestamp in milliseconds.
// Use either the At variants or the clock variants for a whole stroke.
func (s *Synthesizer) BeginStrokeAt(pos ink.Point, pressure, timestamp float64) {
	s.begin(pos, pressure, timestamp)
}

func (s *Synthesizer) begin(pos ink.Point, pressure, timestamp float64) {
	if !pos.IsFinite() {
		ink.Logger().Warn("synth: dropping non-finite stroke start", "pos", pos)
		return
	}
	if s.drawing {
		ink.Logger().Debug("synth: abandoning unfinished stroke", "id", s.id, "points", len(s.points))
		s.drawing = false
	}
	if s.next != nil {
		s.profile, s.next = *s.next, nil
	}

	s.id = uuid.New()
	s.positions.reset()
	s.pressures.reset()
	s.samples = nil
	s.points = nil
	s.pointAttrs = nil
	s.attrs = nil
	s.path = ink.NewPath(64)

	sample := ink.NewSample(pos, pressure, 0, 0, 0, 0, timestamp)
	s.positions.push(pos)
	s.pressures.push(sample.Pressure)
	s.record(sample, pos)
	s.path.MoveTo(pos)

	s.lastPos = pos
	s.lastTime = timestamp
	s.lastPressure = sample.Pressure
	s.drawing = true

	ink.Logger().Debug("synth: stroke begin", "id", s.id, "profile", s.profile.Name, "pos", pos, "pressure", sample.Pressure)
}

// AddPoint extends the stroke, timestamped by the configured clock.
// It is a no-op while idle.
func (s *Synthesizer) AddPoint(pos ink.Point, pressure, tiltX, tiltY, rotation float64) {
	if !s.drawing {
		return
	}
	t := float64(s.opts.clock().Sub(s.epoch)) / float64(time.Millisecond)
	s.AddPointAt(pos, pressure, tiltX, tiltY, rotation, t)
}

// AddPointAt extends the stroke with an explicit timestamp in milliseconds.
// It is a no-op while idle.
func (s *Synthesizer) AddPointAt(pos ink.Point, pressure, tiltX, tiltY, rotation, timestamp float64) {
	if !s.drawing {
		return
	}
	if !pos.IsFinite() {
		ink.Logger().Warn("synth: dropping non-finite sample", "id", s.id, "pos", pos)
		return
	}

	velocity := 0.0
	if dt := timestamp - s.lastTime; dt > 0 {
		velocity = s.lastPos.Distance(pos) / (dt / 1000)
	}
	sample := ink.NewSample(pos, pressure, tiltX, tiltY, rotation, velocity, timestamp)

	s.positions.push(pos)
	s.pressures.push(sample.Pressure)

	pt := gaussianSmooth(s.positions, s.profile.Smoothing)
	if j := s.profile.Jitter; j > 0 {
		pt.X += ink.Symmetric(s.rng, j)
		pt.Y += ink.Symmetric(s.rng, j)
	}

	prev := s.points[len(s.points)-1]
	s.record(sample, pt)
	s.path.Segments = append(s.path.Segments, strokeSegment(prev, pt))
	s.attrs = append(s.attrs, s.pointAttrs[len(s.pointAttrs)-1])

	s.lastPos = pos
	if timestamp > s.lastTime {
		s.lastTime = timestamp
	}
	s.lastPressure = sample.Pressure
}

// record stores a sample with its path point and computes its attributes.
func (s *Synthesizer) record(sample ink.StrokeSample, pt ink.Point) {
	s.samples = append(s.samples, sample)
	s.points = append(s.points, pt)
	s.pointAttrs = append(s.pointAttrs, SegmentAttr{
		Width: Width(s.profile, sample, s.rng),
		Color: Color(s.profile, s.opts.color, s.rng),
	})
}

// EndStroke finalizes the stroke and returns to idle. The second result is
// false when no stroke was in progress.
func (s *Synthesizer) EndStroke() (Stroke, bool) {
	if !s.drawing {
		return Stroke{}, false
	}
	s.drawing = false

	st := Stroke{
		ID:      s.id,
		Profile: s.profile.Name,
		Samples: s.samples,
		Points:  s.points,
		Path:    s.path,
		Attrs:   s.attrs,
	}
	ink.Logger().Debug("synth: stroke end",
		"id", s.id,
		"samples", len(st.Samples),
		"segments", len(st.Attrs),
		"duration_ms", s.lastTime-st.Samples[0].Timestamp,
	)

	// The returned stroke owns these slices now.
	s.samples, s.points, s.pointAttrs, s.attrs = nil, nil, nil, nil
	s.path = ink.Path{}
	return st, true
}

// Path returns a copy of the stroke path built so far.
func (s *Synthesizer) Path() ink.Path {
	return s.path.Clone()
}

// Attrs returns a copy of the per-segment attributes built so far.
func (s *Synthesizer) Attrs() []SegmentAttr {
	return append([]SegmentAttr(nil), s.attrs...)
}

// Points returns a copy of the smoothed points built so far.
func (s *Synthesizer) Points() []ink.Point {
	return append([]ink.Point(nil), s.points...)
}

// CurrentWidth returns the width computed for the most recent point, or
// the profile base width when no stroke is in progress.
func (s *Synthesizer) CurrentWidth() float64 {
	if len(s.pointAttrs) == 0 {
		return s.profile.BaseWidth
	}
	return s.pointAttrs[len(s.pointAttrs)-1].Width
}

// State returns a snapshot of the stroke state.
func (s *Synthesizer) State() State {
	return State{
		Profile:      s.profile,
		Positions:    s.positions.snapshot(),
		Pressures:    s.pressures.snapshot(),
		LastPosition: s.lastPos,
		LastTime:     s.lastTime,
		LastPressure: s.lastPressure,
		Drawing:      s.drawing,
	}
}
