package repository

import (
	"context"
	"errors"

	"chatop/internal/domain/entity"
)

// ErrRentalNotFound is a domain-specific error returned when a rental is not found.
var ErrRentalNotFound = errors.New("rental not found")

// RentalRepository defines the standard operations for rental persistence.
type RentalRepository interface {
	// FindByID retrieves a single rental by its unique ID.
	FindByID(ctx context.Context, id uint64) (*entity.Rental, error)

	// FindAll retrieves every rental in the catalogue.
	FindAll(ctx context.Context) ([]*entity.Rental, error)

	// Create persists a new rental entity. The generated ID is written back
	// onto the entity.
	Create(ctx context.Context, rental *entity.Rental) error

	// Update modifies an existing rental entity in the storage.
	Update(ctx context.Context, rental *entity.Rental) error
}
