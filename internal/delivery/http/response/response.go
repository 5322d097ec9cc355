// Package response contains the wire representations of the API payloads.
package response

import (
	"time"

	"chatop/internal/domain/entity"
)

// dateLayout renders timestamps the way API consumers expect them.
const dateLayout = "2006/01/02"

// TokenResponse is the payload returned after a successful registration or login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a plain acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// RentalResponse is the list view of a rental. Picture is the plain URL.
type RentalResponse struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Surface     float64 `json:"surface"`
	Price       float64 `json:"price"`
	Picture     string  `json:"picture"`
	Description string  `json:"description"`
	OwnerID     uint64  `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// RentalDetailResponse is the single-rental view. Picture is wrapped in a
// one-element list, empty when no image has been ingested.
type RentalDetailResponse struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Surface     float64  `json:"surface"`
	Price       float64  `json:"price"`
	Picture     []string `json:"picture"`
	Description string   `json:"description"`
	OwnerID     uint64   `json:"owner_id"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// RentalListResponse wraps the rental catalogue.
type RentalListResponse struct {
	Rentals []RentalResponse `json:"rentals"`
}

// FromUser maps a user entity to its public wire form.
func FromUser(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: formatDate(user.CreatedAt),
		UpdatedAt: formatDate(user.UpdatedAt),
	}
}

// FromRental maps a rental entity to its list wire form.
func FromRental(rental *entity.Rental) RentalResponse {
	return RentalResponse{
		ID:          rental.ID,
		Name:        rental.Name,
		Surface:     rental.Surface,
		Price:       rental.Price,
		Picture:     rental.Picture,
		Description: rental.Description,
		OwnerID:     rental.OwnerID,
		CreatedAt:   formatDate(rental.CreatedAt),
		UpdatedAt:   formatDate(rental.UpdatedAt),
	}
}

// FromRentalDetail maps a rental entity to its single-rental wire form.
func FromRentalDetail(rental *entity.Rental) RentalDetailResponse {
	picture := []string{}
	if rental.Picture != "" {
		picture = append(picture, rental.Picture)
	}

	return RentalDetailResponse{
		ID:          rental.ID,
		Name:        rental.Name,
		Surface:     rental.Surface,
		Price:       rental.Price,
		Picture:     picture,
		Description: rental.Description,
		OwnerID:     rental.OwnerID,
		CreatedAt:   formatDate(rental.CreatedAt),
		UpdatedAt:   formatDate(rental.UpdatedAt),
	}
}

// FromRentals maps a slice of rental entities to the catalogue wire form.
func FromRentals(rentals []*entity.Rental) RentalListResponse {
	out := RentalListResponse{Rentals: make([]RentalResponse, 0, len(rentals))}
	for _, rental := range rentals {
		out.Rentals = append(out.Rentals, FromRental(rental))
	}

	return out
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
