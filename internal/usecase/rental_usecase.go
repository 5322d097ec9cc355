package usecase

import (
	"context"

	"chatop/internal/domain/entity"
)

// CreateRentalInput defines the data required to create a rental listing.
// Image carries the raw uploaded file bytes and may be empty when no file
// was attached.
type CreateRentalInput struct {
	OwnerID     uint64
	Name        string
	Surface     float64
	Price       float64
	Description string
	Image       []byte
}

// UpdateRentalInput defines the data for a partial rental update. Nil fields
// are left untouched; at least one field or a new image must be present.
type UpdateRentalInput struct {
	RentalID    uint64
	RequesterID uint64
	Name        *string
	Surface     *float64
	Price       *float64
	Description *string
	Image       []byte
}

// RentalUsecase defines the interface for rental-related business operations.
type RentalUsecase interface {
	// List returns every rental in the catalogue.
	List(ctx context.Context) ([]*entity.Rental, error)

	// Get retrieves a single rental by ID.
	Get(ctx context.Context, id uint64) (*entity.Rental, error)

	// Create inserts a new rental and, when an image is attached, ingests it
	// and records its public URL. Insert and ingestion are atomic.
	Create(ctx context.Context, input *CreateRentalInput) (*entity.Rental, error)

	// Update applies a partial update to a rental owned by the requester.
	// Ownership is checked before any field is touched or any image stored.
	Update(ctx context.Context, input *UpdateRentalInput) (*entity.Rental, error)
}
