package ink

import "math/rand/v2"

// Rand is the randomness source for jitter, width randomization, color
// variation and shape roughness. *rand.Rand from math/rand/v2 satisfies it.
// Implementations need not be safe for concurrent use; each synthesizer or
// generator owns its own.
type Rand interface {
	Float64() float64
}

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomRand returns an independently seeded generator.
func NewRandomRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Symmetric returns a uniform value in [-amount, amount].
func Symmetric(r Rand, amount float64) float64 {
	return (r.Float64()*2 - 1) * amount
}
