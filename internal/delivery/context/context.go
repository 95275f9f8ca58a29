// Package context carries per-request values (request ID, scoped logger and
// the signed-in session) through echo.Context and context.Context.
package context

import (
	"context"
	"log/slog"

	"quickmart/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = echo.HeaderXRequestID

type key int

const (
	requestIDKey key = iota
	loggerKey
	sessionKey
)

// echo.Context stores values by string name.
var echoKeys = map[key]string{
	requestIDKey: "quickmart.request_id",
	sessionKey:   "quickmart.session",
}

func value[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)

	return v, ok
}

// SetRequestID records the request ID on c and on its request context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeys[requestIDKey], requestID)
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), requestID)))
}

// GetRequestID returns the ID assigned by the request ID middleware, or "" outside a request.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeys[requestIDKey]).(string); ok {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := value[string](ctx, requestIDKey)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := value[*slog.Logger](ctx, loggerKey); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetSession stores the authenticated session on c and on its request context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(echoKeys[sessionKey], session)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), sessionKey, session)))
}

// GetSession returns the session stored by the auth middleware.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(echoKeys[sessionKey]).(*entity.Session)

	return session, ok && session != nil
}
