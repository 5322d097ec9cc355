package postgres

import (
	"context"

	"chatop/internal/domain/entity"
	domainerrors "chatop/internal/domain/errors"
	"chatop/internal/domain/repository"
	"chatop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// messageRepository implements the domain.MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create persists a new message entity.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("message user or rental does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel for persistence.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:       data.ID,
		UserID:   data.UserID,
		RentalID: data.RentalID,
		Message:  data.Message,
	}
}
