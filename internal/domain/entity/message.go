package entity

import "time"

// Message is a note an authenticated user leaves about a specific rental.
type Message struct {
	ID        uint64
	UserID    uint64
	RentalID  uint64
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
