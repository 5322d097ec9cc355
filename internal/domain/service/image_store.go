package service

import "context"

// RentalImageStore defines the interface for persisting rental listing images.
// Implementations are expected to validate the payload before writing anything
// and to return the public URL of the stored file.
type RentalImageStore interface {
	// Save validates and stores an uploaded image for the given rental and
	// returns the public URL it can be fetched from. Payloads that are empty,
	// oversized, of an unsupported format, or that fail a full decode are
	// rejected without touching the disk.
	Save(ctx context.Context, data []byte, rentalID uint64) (string, error)
}
