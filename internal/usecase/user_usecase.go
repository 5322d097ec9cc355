// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"chatop/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued access token after a successful
// registration or login.
type AuthOutput struct {
	Token string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and immediately issues an access token for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and issues an access token. Unknown
	// emails and wrong passwords fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Me resolves the account behind a token subject (the email).
	Me(ctx context.Context, subject string) (*entity.User, error)

	// GetUser retrieves a user's public profile by ID.
	GetUser(ctx context.Context, id uint64) (*entity.User, error)
}
