package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves session tokens and gates routes by role.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, logger: logger}
}

// bearerToken reads the session token from the Authorization header, or from the
// token query parameter browsers must use for websockets.
func bearerToken(c echo.Context) (string, bool) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return "", false
		}

		return strings.TrimSpace(token), true
	}

	if token := c.QueryParam("token"); token != "" {
		return token, true
	}

	return "", false
}

// Authenticate rejects requests without a live session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		session, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		m.attach(c, session)

		return next(c)
	}
}

// Optional attaches the session when a valid token is present and carries on
// anonymously otherwise.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		session, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Ignoring invalid session token",
				slog.Any("error", err),
			)

			return next(c)
		}

		m.attach(c, session)

		return next(c)
	}
}

func (m *AuthMiddleware) attach(c echo.Context, session *entity.Session) {
	deliverycontext.SetSession(c, session)

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(
		slog.String("user_id", session.UserID),
		slog.String("role", session.Role.String()),
	)
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))
}

// RequireRole is a middleware factory that admits only the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
			}

			if !allowed.Contains(session.Role) {
				return response.HandleAppError(c, domainerrors.ErrRoleNotAllowed.WithDetails(
					"requires "+strings.Join(allowed.ToStrings(), " or "),
				))
			}

			return next(c)
		}
	}
}
