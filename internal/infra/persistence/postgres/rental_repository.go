package postgres

import (
	"context"

	"chatop/internal/domain/entity"
	domainerrors "chatop/internal/domain/errors"
	"chatop/internal/domain/repository"
	"chatop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rentalRepository implements the domain.RentalRepository interface using GORM.
type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository is the constructor for rentalRepository.
func NewRentalRepository(db *gorm.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// FindByID retrieves a single rental by its unique ID.
func (repo *rentalRepository) FindByID(ctx context.Context, id uint64) (*entity.Rental, error) {
	var rentalM model.RentalModel
	if err := repo.db.WithContext(ctx).First(&rentalM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRentalNotFound
		}

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	return toRentalDomain(&rentalM), nil
}

// FindAll retrieves every rental in the catalogue, oldest first.
func (repo *rentalRepository) FindAll(ctx context.Context) ([]*entity.Rental, error) {
	var rentalMs []model.RentalModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rentalMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rentals")
	}

	rentals := make([]*entity.Rental, 0, len(rentalMs))
	for i := range rentalMs {
		rentals = append(rentals, toRentalDomain(&rentalMs[i]))
	}

	return rentals, nil
}

// Create persists a new rental entity.
func (repo *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	rentalM := fromRentalDomain(rental)

	if err := repo.db.WithContext(ctx).Create(rentalM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("rental owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required rental information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rental")
	}

	// Update the rental entity with the generated ID and timestamps
	rental.ID = rentalM.ID
	rental.CreatedAt = rentalM.CreatedAt
	rental.UpdatedAt = rentalM.UpdatedAt

	return nil
}

// Update modifies an existing rental entity in the database.
func (repo *rentalRepository) Update(ctx context.Context, rental *entity.Rental) error {
	rentalM := fromRentalDomain(rental)
	rentalM.CreatedAt = rental.CreatedAt

	if err := repo.db.WithContext(ctx).Save(rentalM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required rental information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update rental")
	}

	rental.UpdatedAt = rentalM.UpdatedAt

	return nil
}

// toRentalDomain converts a GORM RentalModel to a domain Rental entity.
func toRentalDomain(data *model.RentalModel) *entity.Rental {
	if data == nil {
		return nil
	}

	return &entity.Rental{
		ID:          data.ID,
		Name:        data.Name,
		Surface:     data.Surface,
		Price:       data.Price,
		Picture:     data.Picture,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRentalDomain converts a domain Rental entity to a GORM RentalModel for persistence.
func fromRentalDomain(data *entity.Rental) *model.RentalModel {
	if data == nil {
		return nil
	}

	return &model.RentalModel{
		ID:          data.ID,
		Name:        data.Name,
		Surface:     data.Surface,
		Price:       data.Price,
		Picture:     data.Picture,
		Description: data.Description,
		OwnerID:     data.OwnerID,
	}
}
