package handler

import (
	"net/http"

	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves the back office.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

type listUsersQuery struct {
	Role string `query:"role" validate:"omitempty,oneof=customer vendor delivery admin"`
}

type listOrdersQuery struct {
	Status string `query:"status"`
}

// ChangeRoleRequest represents the request body for changing a user's role
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer vendor delivery admin"`
}

// Dashboard handles GET /api/v1/admin/dashboard
func (h *AdminHandler) Dashboard(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dashboard, err := h.adminUC.Dashboard(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, dashboard)
}

// ListUsers handles GET /api/v1/admin/users?role=
func (h *AdminHandler) ListUsers(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req listUsersQuery
	if ok, err := bind(c, &req); !ok {
		return err
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), session, entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, users)
}

// ChangeRole handles PUT /api/v1/admin/users/:id/role
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangeRoleRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	user, err := h.adminUC.ChangeRole(c.Request().Context(), session, c.Param("id"), entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// DeleteUser handles DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), session, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/admin/orders?status=
func (h *AdminHandler) ListOrders(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req listOrdersQuery
	if ok, err := bind(c, &req); !ok {
		return err
	}

	orders, err := h.adminUC.ListOrders(c.Request().Context(), session, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}
