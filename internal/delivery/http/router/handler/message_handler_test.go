package handler

import (
	"net/http"
	"testing"

	domainerrors "chatop/internal/domain/errors"
	mocksusecase "chatop/internal/mocks/usecase"
	"chatop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageHandler_Create(t *testing.T) {
	uc := mocksusecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, discardLogger())

	uc.EXPECT().Create(mock.Anything, &usecase.CreateMessageInput{
		UserID:   7,
		RentalID: 2,
		Message:  "Is it still available?",
	}).Return(nil)

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/messages",
		`{"user_id":7,"rental_id":2,"message":"Is it still available?"}`)
	attachUser(c, 7)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Message send with success"}`, rec.Body.String())
}

func TestMessageHandler_Create_Anonymous(t *testing.T) {
	uc := mocksusecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, discardLogger())

	c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/messages",
		`{"user_id":7,"rental_id":2,"message":"hello"}`)

	err := h.Create(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageHandler_Create_MissingFields(t *testing.T) {
	uc := mocksusecase.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, discardLogger())

	c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/messages",
		`{"rental_id":2}`)
	attachUser(c, 7)

	err := h.Create(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
