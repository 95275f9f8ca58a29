package handler

import (
	"net/http"
	"time"

	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
}

// SessionHandler signs users in and out.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{sessionUC: params.SessionUC}
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role" validate:"omitempty,oneof=customer vendor delivery admin"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
}

// SessionView describes the signed-in user to the browser.
type SessionView struct {
	User      *entity.User `json:"user"`
	Home      string       `json:"home"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Login handles POST /auth/login
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	result, err := h.sessionUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

// Register handles POST /auth/register
func (h *SessionHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	result, err := h.sessionUC.Register(c.Request().Context(), &service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
		Phone:    req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, result)
}

// Logout handles POST /auth/logout
func (h *SessionHandler) Logout(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessionUC.Logout(c.Request().Context(), session.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Current handles GET /auth/session. The session is re-validated upstream, so a
// revoked storefront token signs the user out here too.
func (h *SessionHandler) Current(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	restored, err := h.sessionUC.Restore(c.Request().Context(), session.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &SessionView{
		User:      restored.User(),
		Home:      restored.Role.Home(),
		ExpiresAt: restored.ExpiresAt,
	})
}
