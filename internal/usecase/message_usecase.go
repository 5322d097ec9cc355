package usecase

import "context"

// CreateMessageInput defines the data required to leave a message on a rental.
type CreateMessageInput struct {
	UserID   uint64
	RentalID uint64
	Message  string
}

// MessageUsecase defines the interface for message-related business operations.
type MessageUsecase interface {
	// Create records a message an authenticated user leaves about a rental.
	Create(ctx context.Context, input *CreateMessageInput) error
}
