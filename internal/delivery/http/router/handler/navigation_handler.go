package handler

import (
	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
}

// NavigationHandler tells the client where a path leads for the current visitor.
type NavigationHandler struct {
	navigationUC usecase.NavigationUsecase
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{navigationUC: params.NavigationUC}
}

type resolveRequest struct {
	Path string `query:"path" validate:"required,startswith=/,max=512"`
}

// Resolve handles GET /nav/resolve?path=
func (h *NavigationHandler) Resolve(c echo.Context) error {
	var req resolveRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	var role entity.Role
	if session, ok := deliverycontext.GetSession(c); ok {
		role = session.Role
	}

	return response.OK(c, h.navigationUC.Resolve(role, req.Path))
}
