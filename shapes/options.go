package shapes

import (
	"math"

	"github.com/gogpu/ink"
)

// Option configures a Generator.
type Option func(*options)

type options struct {
	rng       ink.Rand
	roughness float64
}

func defaultOptions() options {
	return options{}
}

// WithRand sets the random source used for roughness. Seed it for
// reproducible shapes.
func WithRand(r ink.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithRoughness displaces every generated vertex by a uniform offset in
// [-amount, amount] on each axis. Arrow tips are never displaced.
// Non-positive or non-finite amounts disable roughness.
func WithRoughness(amount float64) Option {
	return func(o *options) {
		o.roughness = 0
		if amount > 0 && !math.IsInf(amount, 1) {
			o.roughness = amount
		}
	}
}
