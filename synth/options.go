package synth

import (
	"time"

	"github.com/gogpu/ink"
)

// DefaultBufferSize is the capacity of the position and pressure windows.
const DefaultBufferSize = 5

// Option configures a Synthesizer during creation.
//
// Example:
//
//	s := synth.New(profile,
//	    synth.WithRand(ink.NewRand(42)),
//	    synth.WithColor(ink.Hex("#1e3a8a")),
//	)
type Option func(*options)

type options struct {
	rng        ink.Rand
	color      ink.RGBA
	bufferSize int
	clock      func() time.Time
}

func defaultOptions() options {
	return options{
		color:      ink.Black,
		bufferSize: DefaultBufferSize,
		clock:      time.Now,
	}
}

// WithRand injects the randomness source used for jitter, width
// randomization and color variation. Seed it for deterministic output.
// By default each Synthesizer gets its own independently seeded generator.
func WithRand(r ink.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithColor sets the base stroke color. Default: opaque black.
func WithColor(c ink.RGBA) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithBufferSize sets the capacity of the smoothing windows.
// Values below 1 are ignored.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.bufferSize = n
		}
	}
}

// WithClock sets the time source used by BeginStroke and AddPoint.
// BeginStrokeAt and AddPointAt ignore it.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}
