package handler

import (
	"quickmart/internal/delivery/http/response"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
}

// DeviceHandler manages the push devices of the signed-in user.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{deviceUC: params.DeviceUC}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// deviceID parses the :id path parameter.
func deviceID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}

// RegisterDevice handles POST /api/v1/devices
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.DeviceInfo
	if ok, err := bind(c, &req); !ok {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), session.UserID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, device)
}

// GetUserDevices handles GET /api/v1/devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), session.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, devices)
}

// UpdateFCMToken handles PUT /api/v1/devices/:id/token
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, ok := deviceID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req UpdateFCMTokenRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), session.UserID, id, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, message("FCM token updated successfully"))
}

// DeactivateDevice handles DELETE /api/v1/devices/:id
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, ok := deviceID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), session.UserID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, message("Device deactivated successfully"))
}
