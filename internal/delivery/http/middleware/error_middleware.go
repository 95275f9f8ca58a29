package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/delivery/http/response"
	"quickmart/internal/delivery/http/validator"
	"quickmart/internal/errors"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if status, info, ok := response.Resolve(err); ok {
		if status >= http.StatusInternalServerError {
			m.log(c, err)
		}
		_ = response.Write(c, status, info)

		return
	}

	if _, ok := errors.AsType[*validator.ValidationError](err); ok {
		_ = response.ValidationFailed(c, err)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.log(c, err)

	info := &response.ErrorInfo{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error, please try again later",
	}
	if stepErr, ok := errors.AsType[*usecase.CheckoutStepError](err); ok {
		info.Step = string(stepErr.Step)
	}

	_ = response.Write(c, http.StatusInternalServerError, info)
}

func (m *ErrorMiddleware) log(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
