package impl

import (
	"context"
	"log/slog"

	deliverycontext "chatop/internal/delivery/context"
	"chatop/internal/domain/entity"
	"chatop/internal/domain/repository"
	"chatop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a message an authenticated user leaves about a rental.
func (srv *messageService) Create(ctx context.Context, input *usecase.CreateMessageInput) error {
	message := &entity.Message{
		UserID:   input.UserID,
		RentalID: input.RentalID,
		Message:  input.Message,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		srv.log(ctx).Warn("Message creation failed",
			slog.Any("userID", input.UserID),
			slog.Any("rentalID", input.RentalID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to create message")
	}

	srv.log(ctx).Debug("Message created", slog.Any("messageID", message.ID))

	return nil
}
