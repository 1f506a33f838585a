//go:build unit || integration

package builder

import (
	"time"

	"ecotrack/internal/domain/user"
	"ecotrack/internal/usecase/queries"
	"ecotrack/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name           string
	Email          string
	Country        string
	PasswordHash   *string
	Role           string
	Points         int
	MarketingOptIn bool
}

func NewUserBuilder() *UserBuilder {
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMye.IjPeGv1cpSq0BydK7DYQ9P8aTuCkMC"
	return &UserBuilder{
		Name:           "Test User",
		Email:          "test@example.com",
		Country:        "Indonesia",
		PasswordHash:   &hash,
		Role:           "member",
		Points:         100,
		MarketingOptIn: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	entity, err := user.NewUser(u.Name, email, u.Country, u.PasswordHash, u.MarketingOptIn)
	if err != nil {
		return nil, err
	}

	entity.EarnPoints(u.Points)
	return entity, nil
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:             uuid.New(),
		Name:           u.Name,
		Email:          u.Email,
		Country:        u.Country,
		Role:           u.Role,
		Points:         u.Points,
		MarketingOptIn: u.MarketingOptIn,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:             uuid.New(),
		Name:           u.Name,
		Email:          u.Email,
		Country:        u.Country,
		Role:           u.Role,
		Points:         u.Points,
		MarketingOptIn: u.MarketingOptIn,
		CreatedAt:      time.Now(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithCountry(country string) *UserBuilder {
	u.Country = country
	return u
}

func (u *UserBuilder) WithPoints(points int) *UserBuilder {
	u.Points = points
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithoutPassword() *UserBuilder {
	u.PasswordHash = nil
	return u
}

func (u *UserBuilder) OptedOut() *UserBuilder {
	u.MarketingOptIn = false
	return u
}
