// Package handler holds the echo handlers of the storefront gateway API.
package handler

import (
	"net/http"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requireSession returns the session the auth middleware attached.
func requireSession(c echo.Context) (*entity.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return session, nil
}

// bind decodes the request into req and validates it, writing the error response itself.
// A false result means the response has been written.
func bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Request body or parameters are malformed")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationFailed(c, err)
	}

	return true, nil
}

func message(text string) map[string]string {
	return map[string]string{"message": text}
}
