//go:build unit

package recycling_test

import (
	"testing"

	"ecotrack/internal/domain/recycling"
	"ecotrack/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RecyclingLogBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewRecyclingLogBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
			} else {
				require.NoError(t, err)
				require.NotNil(t, actual)
			}
		})
	}
}

func TestLog(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRecyclingLogBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, recycling.MaterialPlastic, actual.Material())
		// 4 items * 5 + 1.5 kg * 10
		assert.Equal(t, 35, actual.PointsAwarded())
	})

	t.Run("material validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "plastic",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithMaterial("Plastic") },
			},
			{
				name:   "aluminum",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithMaterial("Aluminum") },
			},
			{
				name:   "glass",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithMaterial("Glass") },
			},
			{
				name:   "paper",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithMaterial("Paper") },
			},
			{
				name:   "other",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithMaterial("Other") },
			},
			{
				name:   "unknown material",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithMaterial("Cardboard") },
				errIs:  recycling.ErrInvalidMaterial,
			},
			{
				name:   "lowercase is rejected",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithMaterial("plastic") },
				errIs:  recycling.ErrInvalidMaterial,
			},
		})
	})

	t.Run("quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero quantity",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithQuantity(0) },
				errIs:  recycling.ErrInvalidQuantity,
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithQuantity(-2) },
				errIs:  recycling.ErrInvalidQuantity,
			},
			{
				name:   "minimum valid quantity",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithQuantity(1) },
			},
		})
	})

	t.Run("weight validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative weight",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithWeightKg(-0.5) },
				errIs:  recycling.ErrNegativeWeight,
			},
			{
				name:   "zero weight is allowed",
				mutate: func(b *builder.RecyclingLogBuilder) { b.WithWeightKg(0) },
			},
		})
	})
}

func TestPointsFor(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		weightKg float64
		expected int
	}{
		{name: "items only", quantity: 3, weightKg: 0, expected: 15},
		{name: "weight only", quantity: 1, weightKg: 2, expected: 25},
		{name: "items and weight", quantity: 4, weightKg: 1.5, expected: 35},
		{name: "fractional weight truncates", quantity: 1, weightKg: 0.19, expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, recycling.PointsFor(tt.quantity, tt.weightKg))
		})
	}
}
