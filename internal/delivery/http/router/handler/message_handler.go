package handler

import (
	"log/slog"
	"net/http"

	"chatop/internal/delivery/http/middleware"
	"chatop/internal/delivery/http/response"
	domainerrors "chatop/internal/domain/errors"
	"chatop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createMessageRequest is the JSON payload of the message endpoint.
type createMessageRequest struct {
	RentalID uint64 `json:"rental_id" validate:"required"`
	UserID   uint64 `json:"user_id" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

// MessageHandler holds dependencies for message-related handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create records an inquiry about a rental.
func (h *MessageHandler) Create(c echo.Context) error {
	if middleware.AuthenticatedUser(c) == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Create(c.Request().Context(), &usecase.CreateMessageInput{
		UserID:   req.UserID,
		RentalID: req.RentalID,
		Message:  req.Message,
	}); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.MessageResponse{Message: "Message send with success"})
}
