package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcroute/builder"
)

func TestWeightFnPanics(t *testing.T) {
	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"constant_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"uniform_min_negative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"uniform_max_below_min", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"normal_stddev_negative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"exponential_zero_rate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, func() { tc.constructor() })
		})
	}
}

func TestWeightFnNilRNGFallsBack(t *testing.T) {
	for name, fn := range map[string]builder.WeightFn{
		"default":     builder.DefaultWeightFn,
		"uniform":     builder.UniformWeightFn(50, 150),
		"normal":      builder.NormalWeightFn(100, 10),
		"exponential": builder.ExponentialWeightFn(0.01),
	} {
		assert.Equal(t, builder.DefaultEdgeWeight, fn(nil), name)
	}
	assert.Equal(t, 7.0, builder.ConstantWeightFn(7)(nil))
}

func TestWeightFnRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	uniform := builder.UniformWeightFn(50, 150)
	normal := builder.NormalWeightFn(5, 20)
	exponential := builder.ExponentialWeightFn(0.01)

	for i := 0; i < 500; i++ {
		w := uniform(rng)
		assert.GreaterOrEqual(t, w, 50.0)
		assert.Less(t, w, 150.0)

		assert.GreaterOrEqual(t, normal(rng), 1.0, "normal lengths are floored at one meter")
		assert.GreaterOrEqual(t, exponential(rng), 1.0)
	}
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))
}
