package impl

import (
	"context"
	"log/slog"

	deliverycontext "chatop/internal/delivery/context"
	"chatop/internal/domain/entity"
	domainerrors "chatop/internal/domain/errors"
	"chatop/internal/domain/repository"
	"chatop/internal/domain/service"
	"chatop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// rentalService implements the RentalUsecase interface.
type rentalService struct {
	txManager  repository.TransactionManager
	rentalRepo repository.RentalRepository
	imageStore service.RentalImageStore
	logger     *slog.Logger
}

// RentalServiceParams holds dependencies for rentalService, injected by Fx.
type RentalServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RentalRepo repository.RentalRepository
	ImageStore service.RentalImageStore
	Logger     *slog.Logger
}

// NewRentalService is the constructor for rentalService.
func NewRentalService(params RentalServiceParams) usecase.RentalUsecase {
	return &rentalService{
		txManager:  params.TxManager,
		rentalRepo: params.RentalRepo,
		imageStore: params.ImageStore,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *rentalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every rental in the catalogue.
func (srv *rentalService) List(ctx context.Context) ([]*entity.Rental, error) {
	rentals, err := srv.rentalRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rentals")
	}

	return rentals, nil
}

// Get retrieves a single rental by ID.
func (srv *rentalService) Get(ctx context.Context, id uint64) (*entity.Rental, error) {
	rental, err := srv.rentalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load rental")
	}

	return rental, nil
}

// Create inserts a new rental and, when an image is attached, ingests it and
// records its public URL. The insert, the ingestion and the picture update
// run inside one transaction so a rejected image rolls the listing back.
func (srv *rentalService) Create(ctx context.Context, input *usecase.CreateRentalInput) (*entity.Rental, error) {
	rental := &entity.Rental{
		Name:        input.Name,
		Surface:     input.Surface,
		Price:       input.Price,
		Description: input.Description,
		OwnerID:     input.OwnerID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rentalRepo := repoFactory.RentalRepo()

		// Insert first: the generated rental ID becomes part of the stored
		// image's filename.
		if err := rentalRepo.Create(ctx, rental); err != nil {
			return err
		}

		if len(input.Image) == 0 {
			return nil
		}

		url, err := srv.imageStore.Save(ctx, input.Image, rental.ID)
		if err != nil {
			return err
		}

		rental.Picture = url

		return rentalRepo.Update(ctx, rental)
	})
	if err != nil {
		srv.log(ctx).Warn("Rental creation failed",
			slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Rental created", slog.Any("rentalID", rental.ID))

	return rental, nil
}

// Update applies a partial update to a rental owned by the requester.
// The ownership gate runs before any field is touched and before any image
// reaches the disk.
func (srv *rentalService) Update(ctx context.Context, input *usecase.UpdateRentalInput) (*entity.Rental, error) {
	if input.Name == nil && input.Surface == nil && input.Price == nil &&
		input.Description == nil && len(input.Image) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no fields to update")
	}

	var updated *entity.Rental
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rentalRepo := repoFactory.RentalRepo()

		rental, err := rentalRepo.FindByID(ctx, input.RentalID)
		if err != nil {
			if errors.Is(err, repository.ErrRentalNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to load rental for update")
		}

		if !rental.OwnedBy(input.RequesterID) {
			return domainerrors.ErrForbidden
		}

		if input.Name != nil {
			rental.Name = *input.Name
		}
		if input.Surface != nil {
			rental.Surface = *input.Surface
		}
		if input.Price != nil {
			rental.Price = *input.Price
		}
		if input.Description != nil {
			rental.Description = *input.Description
		}

		if len(input.Image) > 0 {
			url, err := srv.imageStore.Save(ctx, input.Image, rental.ID)
			if err != nil {
				return err
			}
			rental.Picture = url
		}

		if err := rentalRepo.Update(ctx, rental); err != nil {
			return err
		}

		updated = rental

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Rental update failed",
			slog.Any("rentalID", input.RentalID),
			slog.Any("requesterID", input.RequesterID),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Rental updated", slog.Any("rentalID", updated.ID))

	return updated, nil
}
