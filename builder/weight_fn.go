// Street-length distributions. Every WeightFn returns meters and, when it
// needs randomness but gets a nil RNG, falls back to DefaultEdgeWeight so
// that unseeded builds stay deterministic.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the street length used when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// minStreetLength is the floor applied to sampled lengths.
const minStreetLength = 1.0

// WeightFn draws one street length from rng.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns meters. Panics if meters < 0.
func ConstantWeightFn(meters float64) WeightFn {
	if meters < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: meters must be ≥ 0, got %g", meters))
	}

	return func(_ *rand.Rand) float64 { return meters }
}

// UniformWeightFn samples uniformly in [min, max). Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn samples N(mean, stddev) rounded to the meter, never below
// one meter. Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(minStreetLength, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// ExponentialWeightFn samples lengths with mean 1/rate meters, rounded and
// never below one meter: many short blocks, a few long roads.
// Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(minStreetLength, math.Round(rng.ExpFloat64()/rate))
	}
}

// WithConstantWeight sets every street to meters.
func WithConstantWeight(meters float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(meters))
}

// WithUniformWeight draws street lengths from U[min, max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight draws street lengths from N(mean, stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight draws street lengths from Exp(rate).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
