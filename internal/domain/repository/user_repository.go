// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"chatop/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindCredentialByEmail retrieves the authentication-side view of an
	// account. It returns ErrUserNotFound when no account uses that email.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// ExistsByEmail reports whether an account is already registered with the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user entity together with its credential.
	// The generated ID is written back onto the entity.
	Create(ctx context.Context, user *entity.User, passwordHash string) error
}
