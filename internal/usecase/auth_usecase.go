// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mealplanner/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// All fields are assumed schema-valid; the delivery layer rejects malformed
// input before it reaches the use case.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	FullName string
	Sex      entity.Sex

	PhoneNumber       string
	AddressLine1      string
	AddressLine2      string
	City              string
	StateProvinceCode string
	CountryCode       string
	PostalCode        string
}

// LoginInput defines the data required for a user to log in.
// Login holds either the email or the username.
type LoginInput struct {
	Login    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user together with a token so
// the client is logged in immediately after registering.
type RegisterOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresIn   int
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   int
	User        *entity.User
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Authenticate(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	Logout(ctx context.Context, userID uint) error
}
