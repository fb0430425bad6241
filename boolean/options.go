package boolean

import "github.com/gogpu/ink"

// Option configures a boolean operation.
type Option func(*options)

type options struct {
	tolerance float64
}

func applyOptions(opts []Option) options {
	o := options{tolerance: ink.DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTolerance sets the tolerance used to flatten curved operands.
// Non-positive values are ignored.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}
