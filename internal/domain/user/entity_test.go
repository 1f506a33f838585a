//go:build unit

package user_test

import (
	"testing"

	"ecotrack/internal/domain/user"
	"ecotrack/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
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

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		expected, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, user.RoleMember, actual.Role())
		assert.Equal(t, 100, actual.Points())
		assert.True(t, actual.MarketingOptIn())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "whitespace-only name",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "valid name",
				mutate: func(b *builder.UserBuilder) { b.WithName("Budi") },
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "invalid format",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("email is normalized", func(t *testing.T) {
		email, err := user.NewEmail("  Upper@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "upper@example.com", email.Value())
	})

	t.Run("registration without password is allowed", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithoutPassword().BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.PasswordHash())
	})
}

func TestUserPoints(t *testing.T) {
	t.Run("spend within balance", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithPoints(100).BuildDomain()
		require.NoError(t, err)

		require.True(t, u.CanAfford(100))
		require.NoError(t, u.SpendPoints(60))
		assert.Equal(t, 40, u.Points())
	})

	t.Run("spend beyond balance fails and keeps balance", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithPoints(30).BuildDomain()
		require.NoError(t, err)

		require.False(t, u.CanAfford(31))
		require.ErrorIs(t, u.SpendPoints(31), user.ErrInsufficientPoints)
		assert.Equal(t, 30, u.Points())
	})

	t.Run("earn ignores non-positive amounts", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithPoints(10).BuildDomain()
		require.NoError(t, err)

		u.EarnPoints(0)
		u.EarnPoints(-5)
		assert.Equal(t, 10, u.Points())

		u.EarnPoints(25)
		assert.Equal(t, 35, u.Points())
	})
}
