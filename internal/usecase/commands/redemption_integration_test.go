//go:build integration

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ecotrack/internal/infra"
	"ecotrack/internal/infra/mailer"
	"ecotrack/internal/infra/uow"
	"ecotrack/internal/pkg/clock"
	"ecotrack/internal/pkg/config"
	"ecotrack/internal/usecase/commands"
	"ecotrack/internal/usecase/notify"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	setupOnce sync.Once
	testPool  *pgxpool.Pool
	setupErr  error
)

func setupDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	setupOnce.Do(func() {
		ctx := context.Background()

		container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
			tcpostgres.WithDatabase("ecotrack_test"),
			tcpostgres.WithUsername("test"),
			tcpostgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			setupErr = err
			return
		}

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			setupErr = err
			return
		}

		if err := infra.RunMigrations(dsn); err != nil {
			setupErr = err
			return
		}

		testPool, setupErr = pgxpool.New(ctx, dsn)
	})

	require.NoError(t, setupErr, "test database setup failed")
	return testPool
}

func newRedemptionCommands(pool *pgxpool.Pool, singleUse bool) (commands.RedemptionCommands, *notify.Notifier) {
	notifier := notify.NewNotifier(mailer.NewNoopMailer())
	notifier.Start()

	cmd := commands.NewRedemptionCommands(
		uow.NewPostgresUoW(pool),
		notifier,
		clock.NewRealClock(),
		config.RedeemConfig{SingleUse: singleUse},
	)
	return cmd, notifier
}

func seedUser(t *testing.T, pool *pgxpool.Pool, points int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (name, email, points) VALUES ($1, $2, $3) RETURNING id`,
		"Test User", uuid.NewString()+"@example.com", points,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedVoucher(t *testing.T, pool *pgxpool.Pool, pointsRequired, stock int, expiresAt *time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO vouchers (title, points_required, stock, expires_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		"Free Coffee", pointsRequired, stock, expiresAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func userPoints(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) int {
	t.Helper()

	var points int
	err := pool.QueryRow(context.Background(),
		`SELECT points FROM users WHERE id = $1`, userID).Scan(&points)
	require.NoError(t, err)
	return points
}

func voucherStock(t *testing.T, pool *pgxpool.Pool, voucherID uuid.UUID) int {
	t.Helper()

	var stock int
	err := pool.QueryRow(context.Background(),
		`SELECT stock FROM vouchers WHERE id = $1`, voucherID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func redemptionCount(t *testing.T, pool *pgxpool.Pool, voucherID uuid.UUID) int {
	t.Helper()

	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM redemptions WHERE voucher_id = $1`, voucherID).Scan(&count)
	require.NoError(t, err)
	return count
}

func TestRedeem(t *testing.T) {
	pool := setupDatabase(t)
	ctx := context.Background()

	cmd, notifier := newRedemptionCommands(pool, false)
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = notifier.Stop(stopCtx)
	})

	t.Run("deducts points, takes stock and appends a redemption", func(t *testing.T) {
		userID := seedUser(t, pool, 100)
		voucherID := seedVoucher(t, pool, 50, 3, nil)

		receipt, err := cmd.Redeem(ctx, userID, voucherID)
		require.NoError(t, err)
		require.NotNil(t, receipt)

		assert.Equal(t, 50, receipt.UpdatedPoints)
		assert.Equal(t, voucherID, receipt.VoucherID)
		assert.Equal(t, 50, userPoints(t, pool, userID))
		assert.Equal(t, 2, voucherStock(t, pool, voucherID))
		assert.Equal(t, 1, redemptionCount(t, pool, voucherID))
	})

	t.Run("unknown voucher", func(t *testing.T) {
		userID := seedUser(t, pool, 100)

		_, err := cmd.Redeem(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrRedeemVoucherNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		voucherID := seedVoucher(t, pool, 50, 3, nil)

		_, err := cmd.Redeem(ctx, uuid.New(), voucherID)
		assert.ErrorIs(t, err, commands.ErrRedeemUserNotFound)
	})

	t.Run("depleted voucher", func(t *testing.T) {
		userID := seedUser(t, pool, 100)
		voucherID := seedVoucher(t, pool, 50, 0, nil)

		_, err := cmd.Redeem(ctx, userID, voucherID)
		assert.ErrorIs(t, err, commands.ErrVoucherOutOfStock)
	})

	t.Run("expired voucher", func(t *testing.T) {
		userID := seedUser(t, pool, 100)
		past := time.Now().Add(-time.Hour)
		voucherID := seedVoucher(t, pool, 50, 3, &past)

		_, err := cmd.Redeem(ctx, userID, voucherID)
		assert.ErrorIs(t, err, commands.ErrVoucherExpired)
	})

	t.Run("depleted and expired reports out of stock", func(t *testing.T) {
		userID := seedUser(t, pool, 100)
		past := time.Now().Add(-time.Hour)
		voucherID := seedVoucher(t, pool, 50, 0, &past)

		_, err := cmd.Redeem(ctx, userID, voucherID)
		assert.ErrorIs(t, err, commands.ErrVoucherOutOfStock)
	})

	t.Run("insufficient points", func(t *testing.T) {
		userID := seedUser(t, pool, 49)
		voucherID := seedVoucher(t, pool, 50, 3, nil)

		_, err := cmd.Redeem(ctx, userID, voucherID)
		assert.ErrorIs(t, err, commands.ErrInsufficientPoints)
		assert.Equal(t, 49, userPoints(t, pool, userID))
		assert.Equal(t, 3, voucherStock(t, pool, voucherID))
	})

	t.Run("balance supports only whole redemptions", func(t *testing.T) {
		userID := seedUser(t, pool, 120)
		voucherID := seedVoucher(t, pool, 50, 10, nil)

		_, err := cmd.Redeem(ctx, userID, voucherID)
		require.NoError(t, err)
		_, err = cmd.Redeem(ctx, userID, voucherID)
		require.NoError(t, err)

		_, err = cmd.Redeem(ctx, userID, voucherID)
		assert.ErrorIs(t, err, commands.ErrInsufficientPoints)
		assert.Equal(t, 20, userPoints(t, pool, userID))
		assert.Equal(t, 2, redemptionCount(t, pool, voucherID))
	})
}

func TestRedeemConcurrent(t *testing.T) {
	pool := setupDatabase(t)
	ctx := context.Background()

	cmd, notifier := newRedemptionCommands(pool, false)
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = notifier.Stop(stopCtx)
	})

	t.Run("last unit goes to exactly one of two users", func(t *testing.T) {
		userA := seedUser(t, pool, 100)
		userB := seedUser(t, pool, 100)
		voucherID := seedVoucher(t, pool, 50, 1, nil)

		errs := make(chan error, 2)
		var wg sync.WaitGroup
		for _, id := range []uuid.UUID{userA, userB} {
			wg.Add(1)
			go func(userID uuid.UUID) {
				defer wg.Done()
				_, err := cmd.Redeem(ctx, userID, voucherID)
				errs <- err
			}(id)
		}
		wg.Wait()
		close(errs)

		var succeeded, outOfStock int
		for err := range errs {
			if err == nil {
				succeeded++
			} else {
				require.ErrorIs(t, err, commands.ErrVoucherOutOfStock)
				outOfStock++
			}
		}

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, outOfStock)
		assert.Equal(t, 0, voucherStock(t, pool, voucherID))
		assert.Equal(t, 1, redemptionCount(t, pool, voucherID))

		// Only the winner paid.
		total := userPoints(t, pool, userA) + userPoints(t, pool, userB)
		assert.Equal(t, 150, total)
	})

	t.Run("same user racing own balance never overspends", func(t *testing.T) {
		userID := seedUser(t, pool, 50)
		voucherID := seedVoucher(t, pool, 50, 10, nil)

		const attempts = 4
		errs := make(chan error, attempts)
		var wg sync.WaitGroup
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := cmd.Redeem(ctx, userID, voucherID)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		var succeeded int
		for err := range errs {
			if err == nil {
				succeeded++
			} else {
				require.ErrorIs(t, err, commands.ErrInsufficientPoints)
			}
		}

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 0, userPoints(t, pool, userID))
		assert.Equal(t, 1, redemptionCount(t, pool, voucherID))
	})
}

// unreachableMailer fails every send, standing in for a dead SMTP host.
type unreachableMailer struct{}

func (unreachableMailer) Send(context.Context, string, string, string) error {
	return errors.New("smtp unavailable")
}

func TestRedeemMailFailure(t *testing.T) {
	pool := setupDatabase(t)
	ctx := context.Background()

	notifier := notify.NewNotifier(unreachableMailer{})
	notifier.Start()

	cmd := commands.NewRedemptionCommands(
		uow.NewPostgresUoW(pool),
		notifier,
		clock.NewRealClock(),
		config.RedeemConfig{},
	)

	t.Run("receipt and committed state survive a dead mailer", func(t *testing.T) {
		userID := seedUser(t, pool, 100)
		voucherID := seedVoucher(t, pool, 50, 1, nil)

		receipt, err := cmd.Redeem(ctx, userID, voucherID)
		require.NoError(t, err)
		require.NotNil(t, receipt)
		assert.Equal(t, 50, receipt.UpdatedPoints)

		// Drain the queue so the failing send has actually run before
		// the state assertions.
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, notifier.Stop(stopCtx))

		assert.Equal(t, 50, userPoints(t, pool, userID))
		assert.Equal(t, 0, voucherStock(t, pool, voucherID))
		assert.Equal(t, 1, redemptionCount(t, pool, voucherID))
	})
}

func TestRedeemSingleUse(t *testing.T) {
	pool := setupDatabase(t)
	ctx := context.Background()

	cmd, notifier := newRedemptionCommands(pool, true)
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = notifier.Stop(stopCtx)
	})

	t.Run("second redemption of the same voucher is rejected", func(t *testing.T) {
		userID := seedUser(t, pool, 200)
		voucherID := seedVoucher(t, pool, 50, 10, nil)

		_, err := cmd.Redeem(ctx, userID, voucherID)
		require.NoError(t, err)

		_, err = cmd.Redeem(ctx, userID, voucherID)
		assert.ErrorIs(t, err, commands.ErrAlreadyRedeemed)
		assert.Equal(t, 150, userPoints(t, pool, userID))
	})
}
