package entity

import "time"

// Rental represents a rental listing. The owner reference is required and
// immutable after creation; Picture stays empty until image ingestion has
// produced a public URL for the uploaded file.
type Rental struct {
	ID          uint64
	Name        string
	Surface     float64 // Surface area in square meters.
	Price       float64
	Picture     string // Public URL of the stored image, empty until ingested.
	Description string
	OwnerID     uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether the given user is the recorded owner of the rental.
// Mutating operations must consult this before applying any change.
func (r *Rental) OwnedBy(userID uint64) bool {
	return r.OwnerID == userID
}
