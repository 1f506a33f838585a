//go:build unit

package voucher_test

import (
	"testing"
	"time"

	"ecotrack/internal/domain/voucher"
	"ecotrack/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.VoucherBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewVoucherBuilder()
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

func TestVoucher(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewVoucherBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Free Coffee", actual.Title())
		assert.Equal(t, 50, actual.PointsRequired())
		assert.Equal(t, 10, actual.Stock())
		assert.Nil(t, actual.ExpiresAt())
	})

	t.Run("title validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.VoucherBuilder) { b.WithTitle("") },
				errIs:  voucher.ErrEmptyTitle,
			},
			{
				name:   "whitespace-only title",
				mutate: func(b *builder.VoucherBuilder) { b.WithTitle("   ") },
				errIs:  voucher.ErrEmptyTitle,
			},
			{
				name:   "valid title",
				mutate: func(b *builder.VoucherBuilder) { b.WithTitle("Tote Bag") },
			},
		})
	})

	t.Run("points required validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero points",
				mutate: func(b *builder.VoucherBuilder) { b.WithPointsRequired(0) },
				errIs:  voucher.ErrInvalidPointsRequired,
			},
			{
				name:   "negative points",
				mutate: func(b *builder.VoucherBuilder) { b.WithPointsRequired(-5) },
				errIs:  voucher.ErrInvalidPointsRequired,
			},
			{
				name:   "minimum valid points",
				mutate: func(b *builder.VoucherBuilder) { b.WithPointsRequired(1) },
			},
		})
	})

	t.Run("stock validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative stock",
				mutate: func(b *builder.VoucherBuilder) { b.WithStock(-1) },
				errIs:  voucher.ErrNegativeStock,
			},
			{
				name:   "zero stock is allowed at creation",
				mutate: func(b *builder.VoucherBuilder) { b.WithStock(0) },
			},
		})
	})
}

func TestVoucherValidateRedemption(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		stock     int
		expiresAt *time.Time
		errIs     error
	}{
		{
			name:      "redeemable",
			stock:     3,
			expiresAt: &future,
		},
		{
			name:  "no expiry set",
			stock: 3,
		},
		{
			name:      "out of stock",
			stock:     0,
			expiresAt: &future,
			errIs:     voucher.ErrOutOfStock,
		},
		{
			name:      "expired",
			stock:     3,
			expiresAt: &past,
			errIs:     voucher.ErrExpired,
		},
		{
			name:      "expiry boundary counts as expired",
			stock:     3,
			expiresAt: &now,
			errIs:     voucher.ErrExpired,
		},
		{
			name:      "depleted and expired reports out of stock",
			stock:     0,
			expiresAt: &past,
			errIs:     voucher.ErrOutOfStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := voucher.Reconstruct(uuid.New(), "Free Coffee", "", "", 50, tt.stock, tt.expiresAt)
			err := v.ValidateRedemption(now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
