package handler

import (
	"net/http"

	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
}

// DeliveryHandler serves couriers.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{deliveryUC: params.DeliveryUC}
}

// LocationRequest represents a courier position report
type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

// HandoffRequest carries the scanned QR payload
type HandoffRequest struct {
	Code string `json:"code" validate:"required"`
}

// Dashboard handles GET /api/v1/delivery/dashboard?lat=&lng=
func (h *DeliveryHandler) Dashboard(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	origin, err := courierOrigin(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dashboard, err := h.deliveryUC.Dashboard(c.Request().Context(), session, origin)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, dashboard)
}

// courierOrigin reads the optional lat and lng query parameters. Both or neither must be given.
func courierOrigin(c echo.Context) (*entity.GeoPoint, error) {
	latRaw, lngRaw := c.QueryParam("lat"), c.QueryParam("lng")
	if latRaw == "" && lngRaw == "" {
		return nil, nil
	}
	if latRaw == "" || lngRaw == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lng must be given together")
	}

	var point entity.GeoPoint
	if err := echo.QueryParamsBinder(c).
		Float64("lat", &point.Lat).
		Float64("lng", &point.Lng).
		BindError(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lng must be numbers")
	}

	return &point, nil
}

// UpdateStatus handles PUT /api/v1/delivery/orders/:id/status
func (h *DeliveryHandler) UpdateStatus(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	order, err := h.deliveryUC.UpdateStatus(c.Request().Context(), session, c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// ReportLocation handles PUT /api/v1/delivery/orders/:id/location
func (h *DeliveryHandler) ReportLocation(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req LocationRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	point := entity.GeoPoint{Lat: *req.Lat, Lng: *req.Lng}
	if err := h.deliveryUC.ReportLocation(c.Request().Context(), session, c.Param("id"), point); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ScanHandoff handles POST /api/v1/delivery/handoff
func (h *DeliveryHandler) ScanHandoff(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req HandoffRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	order, err := h.deliveryUC.ScanHandoff(c.Request().Context(), session, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}
