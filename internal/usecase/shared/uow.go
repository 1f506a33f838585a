package shared

import (
	"context"
	"time"

	"ecotrack/internal/domain/recycling"
	"ecotrack/internal/domain/user"
	"ecotrack/internal/domain/voucher"
	"ecotrack/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Vouchers() VoucherRepository
	Redemptions() RedemptionRepository
	RecyclingLogs() RecyclingLogRepository
	Locations() LocationRepository
	Tips() TipRepository
	Feedback() FeedbackRepository
	DB() db.DBTX
}

// ProfileUpdate carries a partial profile change; nil fields keep the
// stored value.
type ProfileUpdate struct {
	Name           *string
	Country        *string
	AvatarURL      *string
	MarketingOptIn *bool
}

type UserRepository interface {
	// Upsert inserts the user or, when the email already exists,
	// refreshes name/country/opt-in and returns the existing row's ID.
	Upsert(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	// DeductPoints decrements conditionally and returns the updated
	// balance; KindConflict when the balance would go negative.
	DeductPoints(ctx context.Context, id uuid.UUID, amount int) (int, error)
	AddPoints(ctx context.Context, id uuid.UUID, amount int) (int, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, change ProfileUpdate) error
	SetResetToken(ctx context.Context, email string, token string, expiresAt time.Time) error
	FindByResetToken(ctx context.Context, token string, now time.Time) (*UserSnapshot, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateTipCursor(ctx context.Context, id uuid.UUID, nextIndex int) error
}

type VoucherRepository interface {
	Create(ctx context.Context, v *voucher.Voucher) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*VoucherSnapshot, error)
	// DecrementStock takes one unit conditionally; KindConflict when
	// the stock is already exhausted.
	DecrementStock(ctx context.Context, id uuid.UUID) error
}

type RedemptionRepository interface {
	Append(ctx context.Context, userID, voucherID uuid.UUID, redeemedAt time.Time) (uuid.UUID, error)
	ExistsByUserAndVoucher(ctx context.Context, userID, voucherID uuid.UUID) (bool, error)
}

type RecyclingLogRepository interface {
	Create(ctx context.Context, log *recycling.Log) (uuid.UUID, error)
}

type LocationRepository interface {
	Create(ctx context.Context, loc NewLocation) (uuid.UUID, error)
}

type TipRepository interface {
	Create(ctx context.Context, title, content string) (uuid.UUID, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, name, email, message string) (uuid.UUID, error)
}
