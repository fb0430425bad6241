package pathedit

import "github.com/gogpu/ink"

// Option configures a path edit.
type Option func(*options)

type options struct {
	tolerance float64
}

func defaultOptions() options {
	return options{tolerance: ink.DefaultTolerance}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTolerance sets the flattening tolerance used when curves have to be
// turned into polylines. Non-positive values are ignored.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}
