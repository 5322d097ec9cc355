package impl

import (
	"context"
	"testing"

	"chatop/internal/domain/entity"
	domainerrors "chatop/internal/domain/errors"
	mockRepo "chatop/internal/mocks/repository"
	"chatop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Create_Success(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	service := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(_ context.Context, message *entity.Message) {
			assert.Equal(t, uint64(5), message.UserID)
			assert.Equal(t, uint64(9), message.RentalID)
			assert.Equal(t, "Is it still available?", message.Message)
			message.ID = 1
		}).
		Return(nil)

	err := service.Create(ctx, &usecase.CreateMessageInput{
		UserID:   5,
		RentalID: 9,
		Message:  "Is it still available?",
	})

	require.NoError(t, err)
}

func TestMessageService_Create_RepositoryError(t *testing.T) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	service := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(domainerrors.ErrNotFound)

	err := service.Create(ctx, &usecase.CreateMessageInput{
		UserID:   5,
		RentalID: 404,
		Message:  "Hello",
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
