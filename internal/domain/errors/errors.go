package errors

import (
	"fmt"
	"net/http"

	"quickmart/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Please sign in to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_NOT_FOUND",
		"Session not found",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired session token",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrRoleNotAllowed = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_ALLOWED",
		"This area is not available for your role",
		"",
	)

	// Cart errors
	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Item is not in your cart",
		"",
	)

	ErrCartNotCached = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_CACHED",
		"Cart is not cached",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Your cart is empty",
		"",
	)

	// Order errors
	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Order cannot move to the requested status",
		"",
	)

	ErrPaymentNotCompleted = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_NOT_COMPLETED",
		"Payment was not completed",
		"",
	)

	ErrPaymentUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PAYMENT_UNAVAILABLE",
		"Payments are not available right now",
		"",
	)

	ErrInvalidHandoffCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_HANDOFF_CODE",
		"Handoff code is not valid",
		"",
	)

	// Messaging errors
	ErrInvalidMessage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MESSAGE",
		"Message must be between 1 and 2000 characters",
		"",
	)

	ErrPeerNotAllowed = NewBaseError(
		http.StatusForbidden,
		"PEER_NOT_ALLOWED",
		"You cannot message users of this role",
		"",
	)

	// Device errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Upstream errors
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"The store is unavailable right now, please try again",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// UpstreamError is a non-2xx answer from the storefront API.
type UpstreamError struct {
	Status   int
	Method   string
	Path     string
	Upstream string // message returned by the API, if any
}

// NewUpstreamError creates an UpstreamError
func NewUpstreamError(status int, method, path, message string) *UpstreamError {
	return &UpstreamError{
		Status:   status,
		Method:   method,
		Path:     path,
		Upstream: message,
	}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("storefront api %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Upstream)
}

// HTTPCode maps the upstream status onto the status returned to our callers.
func (e *UpstreamError) HTTPCode() int {
	switch {
	case e.Status == http.StatusUnauthorized:
		return http.StatusUnauthorized
	case e.Status == http.StatusForbidden:
		return http.StatusForbidden
	case e.Status == http.StatusNotFound:
		return http.StatusNotFound
	case e.Status == http.StatusConflict:
		return http.StatusConflict
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return http.StatusBadRequest
	case e.Status >= http.StatusInternalServerError:
		return http.StatusBadGateway
	default:
		return e.Status
	}
}

func (e *UpstreamError) ErrorCode() string {
	switch e.HTTPCode() {
	case http.StatusUnauthorized:
		return ErrSessionExpired.ErrorCode()
	case http.StatusForbidden:
		return ErrForbidden.ErrorCode()
	case http.StatusNotFound:
		return ErrNotFound.ErrorCode()
	case http.StatusConflict:
		return ErrConflict.ErrorCode()
	case http.StatusBadRequest:
		return ErrValidationFailed.ErrorCode()
	case http.StatusBadGateway:
		return ErrUpstreamUnavailable.ErrorCode()
	default:
		return "UPSTREAM_ERROR"
	}
}

// Message prefers the API's own message for client errors, it is usually
// the most useful thing to show ("Product out of stock").
func (e *UpstreamError) Message() string {
	switch e.HTTPCode() {
	case http.StatusUnauthorized:
		return ErrSessionExpired.Message()
	case http.StatusBadGateway:
		return ErrUpstreamUnavailable.Message()
	}

	if e.Upstream != "" {
		return e.Upstream
	}

	return http.StatusText(e.HTTPCode())
}

func (e *UpstreamError) Details() string {
	return e.Upstream
}

// IsUpstreamStatus reports whether err carries an upstream response with the given status.
func IsUpstreamStatus(err error, status int) bool {
	upstream, ok := errors.AsType[*UpstreamError](err)

	return ok && upstream.Status == status
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
