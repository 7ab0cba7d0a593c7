// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// ParameterFn maps a constructor's nominal edge parameter to the value
// stored on the edge, optionally drawing from rng (which may be nil).
// It must be deterministic for a given RNG state.
type ParameterFn func(rng *rand.Rand, nominal float64) float64

// DefaultParameterFn returns nominal unchanged.
func DefaultParameterFn(_ *rand.Rand, nominal float64) float64 {
	return nominal
}

// ScaledParameterFn multiplies nominal by a factor drawn uniformly from
// [lo, hi), modelling manufacturing spread in contact resistances. With a
// nil rng it returns nominal. Panics unless 0 < lo ≤ hi.
func ScaledParameterFn(lo, hi float64) ParameterFn {
	if !(lo > 0) || hi < lo {
		panic(fmt.Sprintf("ScaledParameterFn: require 0 < lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand, nominal float64) float64 {
		if rng == nil {
			return nominal
		}
		if lo == hi {
			return nominal * lo
		}
		return nominal * (lo + rng.Float64()*(hi-lo))
	}
}
