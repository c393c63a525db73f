package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bnbhub/internal/errors"
	"bnbhub/internal/service"
)

// MessageHandler handles the contact-message inbox.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SubmitMessageRequest represents an inbound contact message.
type SubmitMessageRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Message  string `json:"message" validate:"required"`
	Receiver string `json:"receiver" validate:"required"`
	Sender   string `json:"sender"`
}

// Submit godoc
// @Summary Submit a contact message
// @Tags chat
// @Accept json
// @Produce json
// @Param request body SubmitMessageRequest true "Message payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /chat/ [post]
func (h *MessageHandler) Submit(c echo.Context) error {
	var req SubmitMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var senderID *uuid.UUID
	if req.Sender != "" {
		if parsed, err := uuid.Parse(req.Sender); err == nil {
			senderID = &parsed
		}
	}

	_, err := h.messageService.Submit(c.Request().Context(), req.Name, req.Phone, req.Message, req.Receiver, senderID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"msg":     "Message sent!",
	})
}

// List godoc
// @Summary List all messages, newest first
// @Tags chat
// @Produce json
// @Success 200 {array} model.Message
// @Failure 500 {object} errors.ErrorResponse
// @Router /chat/ [get]
func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.messageService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, messages)
}
