package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInsufficientPoints = errors.New("insufficient points")

// User entity. Points never go below zero; SpendPoints guards the
// invariant before the storage layer re-checks it conditionally.
type User struct {
	id             uuid.UUID
	name           string
	email          Email
	country        string
	passwordHash   *string
	role           Role
	points         int
	marketingOptIn bool
	avatarURL      *string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewUser(name string, email Email, country string, passwordHash *string, marketingOptIn bool) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:             uuid.New(),
		name:           name,
		email:          email,
		country:        country,
		passwordHash:   passwordHash,
		role:           RoleMember,
		points:         0,
		marketingOptIn: marketingOptIn,
	}, nil
}

func (u *User) CanAfford(cost int) bool {
	return u.points >= cost
}

func (u *User) SpendPoints(cost int) error {
	if !u.CanAfford(cost) {
		return ErrInsufficientPoints
	}
	u.points -= cost
	return nil
}

func (u *User) EarnPoints(amount int) {
	if amount > 0 {
		u.points += amount
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) Country() string       { return u.country }
func (u *User) PasswordHash() *string { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) Points() int           { return u.points }
func (u *User) MarketingOptIn() bool  { return u.marketingOptIn }
func (u *User) AvatarURL() *string    { return u.avatarURL }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
