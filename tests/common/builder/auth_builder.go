//go:build unit || integration

package builder

import (
	reqdto "ecotrack/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

type RegisterBuilder struct {
	Name           string
	Email          string
	Country        string
	Password       *string
	MarketingOptIn bool
}

func NewRegisterBuilder() *RegisterBuilder {
	password := "password123"
	return &RegisterBuilder{
		Name:           "Test User",
		Email:          "test@example.com",
		Country:        "Indonesia",
		Password:       &password,
		MarketingOptIn: true,
	}
}

func (r *RegisterBuilder) BuildDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:           r.Name,
		Email:          r.Email,
		Country:        r.Country,
		Password:       r.Password,
		MarketingOptIn: r.MarketingOptIn,
	}
}
