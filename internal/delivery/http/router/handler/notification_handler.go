package handler

import (
	"net/http"

	"quickmart/internal/delivery/http/response"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	PushUC         usecase.PushUsecase
}

// NotificationHandler serves in-app notifications and the push delivery history.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	pushUC         usecase.PushUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		pushUC:         params.PushUC,
	}
}

type pushHistoryRequest struct {
	Limit  int `query:"limit" validate:"gte=0,lte=100"`
	Offset int `query:"offset" validate:"gte=0"`
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.notificationUC.List(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, notifications)
}

// MarkRead handles POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), session, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PushHistory handles GET /api/v1/notifications/push-history
func (h *NotificationHandler) PushHistory(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req pushHistoryRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	logs, err := h.pushUC.History(c.Request().Context(), session.UserID, req.Limit, req.Offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, logs)
}
