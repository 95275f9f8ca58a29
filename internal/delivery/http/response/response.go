// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/delivery/http/validator"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/errors"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
	Step    string `json:"step,omitempty"`    // Checkout step that failed
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// OK returns a 200 response
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created returns a 201 response
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return Write(c, statusCode, &ErrorInfo{Code: errorCode, Message: message, Details: details})
}

// Write renders info, dropping details the client should not see.
func Write(c echo.Context, statusCode int, info *ErrorInfo) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		info.Details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: info,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// ValidationFailed returns a 400 error listing the rejected fields
func ValidationFailed(c echo.Context, err error) error {
	if verr, ok := errors.AsType[*validator.ValidationError](err); ok {
		return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), verr.Fields)
	}

	return HandleAppError(c, err)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Resolve maps err onto a status and error body when it is one the API knows how
// to describe. Checkout failures keep the step they happened in.
func Resolve(err error) (int, *ErrorInfo, bool) {
	var step string
	if stepErr, ok := errors.AsType[*usecase.CheckoutStepError](err); ok {
		step = string(stepErr.Step)
	}

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return 0, nil, false
	}

	info := &ErrorInfo{
		Code:    appErr.ErrorCode(),
		Message: appErr.Message(),
		Step:    step,
	}
	if details := appErr.Details(); details != "" {
		info.Details = details
	}

	return appErr.HTTPCode(), info, true
}

// HandleAppError renders application errors and hands anything else to the
// central error handler.
func HandleAppError(c echo.Context, err error) error {
	if status, info, ok := Resolve(err); ok {
		return Write(c, status, info)
	}

	return errors.WithStack(err)
}
