// Package rng holds the only source of randomness in a battle: the per-round
// attack and defense multipliers.
package rng

import (
	"math"
	"math/rand"
	"time"
)

const (
	factorMean  = 1.0
	factorSigma = 0.1
	factorMin   = 0.8
	factorMax   = 1.2
)

// New returns a source seeded with seed, or with the clock when seed is 0.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Factor draws a Gaussian(1.0, 0.1) multiplier clamped to [0.8, 1.2]. A nil
// source means randomness is off and the factor is always 1.
func Factor(r *rand.Rand) float64 {
	if r == nil {
		return 1
	}
	v := r.NormFloat64()*factorSigma + factorMean
	return math.Max(factorMin, math.Min(factorMax, v))
}

// Percentile returns the value that the given share of sorted samples meet or
// beat, the way 68th/95th percentile damage is read off a simulation run.
// samples must be sorted ascending.
func Percentile(samples []float64, share float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	idx := int((1 - share) * float64(len(samples)))
	if idx >= len(samples) {
		idx = len(samples) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return samples[idx]
}
