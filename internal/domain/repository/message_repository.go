package repository

import (
	"context"

	"chatop/internal/domain/entity"
)

// MessageRepository defines the standard operations for message persistence.
type MessageRepository interface {
	// Create persists a new message entity. The generated ID is written back
	// onto the entity.
	Create(ctx context.Context, message *entity.Message) error
}
