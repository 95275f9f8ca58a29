package handler

import (
	"net/http"

	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
}

// VendorHandler serves the vendor back office.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{vendorUC: params.VendorUC}
}

// UpdateStatusRequest represents the request body of order status changes
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Dashboard handles GET /api/v1/vendor/dashboard
func (h *VendorHandler) Dashboard(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dashboard, err := h.vendorUC.Dashboard(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, dashboard)
}

// ListProducts handles GET /api/v1/vendor/products
func (h *VendorHandler) ListProducts(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.vendorUC.ListProducts(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// CreateProduct handles POST /api/v1/vendor/products
func (h *VendorHandler) CreateProduct(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input service.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	product, err := h.vendorUC.CreateProduct(c.Request().Context(), session, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// UpdateProduct handles PUT /api/v1/vendor/products/:id
func (h *VendorHandler) UpdateProduct(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input service.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	product, err := h.vendorUC.UpdateProduct(c.Request().Context(), session, c.Param("id"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// DeleteProduct handles DELETE /api/v1/vendor/products/:id
func (h *VendorHandler) DeleteProduct(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.vendorUC.DeleteProduct(c.Request().Context(), session, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/vendor/orders
func (h *VendorHandler) ListOrders(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.vendorUC.ListOrders(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// UpdateOrderStatus handles PUT /api/v1/vendor/orders/:id/status
func (h *VendorHandler) UpdateOrderStatus(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateStatusRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	order, err := h.vendorUC.UpdateOrderStatus(c.Request().Context(), session, c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// HandoffQR handles GET /api/v1/vendor/orders/:id/handoff-qr and answers with a PNG.
func (h *VendorHandler) HandoffQR(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.vendorUC.HandoffQR(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
