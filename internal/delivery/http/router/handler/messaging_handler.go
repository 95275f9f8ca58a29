package handler

import (
	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessagingHandlerParams holds dependencies for MessagingHandler, injected by Fx.
type MessagingHandlerParams struct {
	fx.In

	MessagingUC usecase.MessagingUsecase
}

// MessagingHandler serves the user directory and direct messages for every role.
type MessagingHandler struct {
	messagingUC usecase.MessagingUsecase
}

// NewMessagingHandler is the constructor for MessagingHandler
func NewMessagingHandler(params MessagingHandlerParams) *MessagingHandler {
	return &MessagingHandler{messagingUC: params.MessagingUC}
}

type directoryRequest struct {
	Role  string `param:"role" validate:"required,oneof=customer vendor delivery admin"`
	Query string `query:"q" validate:"max=100"`
}

// SendMessageRequest represents the request body for sending a message.
// Content bounds are checked by messaging after trimming.
type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content"`
}

// Directory handles GET /api/v1/messages/directory/:role?q=
func (h *MessagingHandler) Directory(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req directoryRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	users, err := h.messagingUC.Directory(c.Request().Context(), session, entity.Role(req.Role), req.Query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, users)
}

// Inbox handles GET /api/v1/messages/inbox
func (h *MessagingHandler) Inbox(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summaries, err := h.messagingUC.Inbox(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, summaries)
}

// Conversation handles GET /api/v1/messages/conversations/:peerId
func (h *MessagingHandler) Conversation(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	messages, err := h.messagingUC.Conversation(c.Request().Context(), session, c.Param("peerId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, messages)
}

// Send handles POST /api/v1/messages
func (h *MessagingHandler) Send(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SendMessageRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	msg, err := h.messagingUC.Send(c.Request().Context(), session, req.ReceiverID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, msg)
}
