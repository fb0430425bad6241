package ink

// StrokeSample is one pointer observation during a stroke. Samples are
// created once per input event and never modified afterwards.
type StrokeSample struct {
	Position Point
	// Pressure is normalized to [0, 1].
	Pressure float64
	// TiltX and TiltY are the pen tilt angles in degrees reported by the tablet.
	TiltX, TiltY float64
	// Rotation is the barrel rotation in degrees.
	Rotation float64
	// Velocity is derived from the previous sample, in pixels per second.
	Velocity float64
	// Timestamp is monotonic milliseconds.
	Timestamp float64
}

// NewSample builds a sample with pressure clamped to [0, 1] and any
// non-finite tilt or rotation replaced by zero.
func NewSample(pos Point, pressure, tiltX, tiltY, rotation, velocity, timestamp float64) StrokeSample {
	finite := func(v float64) float64 {
		if !isFinite(v) {
			return 0
		}
		return v
	}
	return StrokeSample{
		Position:  pos,
		Pressure:  Clamp01(pressure),
		TiltX:     finite(tiltX),
		TiltY:     finite(tiltY),
		Rotation:  finite(rotation),
		Velocity:  max(0, finite(velocity)),
		Timestamp: finite(timestamp),
	}
}
