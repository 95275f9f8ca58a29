package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"quickmart/config"
	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/repository"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultIdleTimeout = 2 * time.Hour

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth        service.AuthAPI
	store       repository.SessionStore
	tokens      service.TokenService
	carts       repository.CartCache
	messaging   usecase.MessagingUsecase
	idleTimeout time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	cfg *config.Config,
	auth service.AuthAPI,
	store repository.SessionStore,
	tokens service.TokenService,
	carts repository.CartCache,
	messaging usecase.MessagingUsecase,
	logger *slog.Logger,
) usecase.SessionUsecase {
	idle := defaultIdleTimeout
	if cfg.Session != nil && cfg.Session.IdleTimeout > 0 {
		idle = cfg.Session.IdleTimeout
	}

	return &sessionService{
		auth:        auth,
		store:       store,
		tokens:      tokens,
		carts:       carts,
		messaging:   messaging,
		idleTimeout: idle,
		now:         time.Now,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login signs in against the storefront API and opens a session.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*usecase.SessionResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	result, err := srv.auth.Login(ctx, email, password)
	if err != nil {
		if domainerrors.IsUpstreamStatus(err, http.StatusUnauthorized) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "storefront login")
	}

	return srv.open(ctx, result)
}

// Register creates a storefront account and opens a session for it.
func (srv *sessionService) Register(ctx context.Context, req *service.RegisterRequest) (*usecase.SessionResult, error) {
	if req.Role == "" {
		req.Role = entity.RoleCustomer
	}
	// Admin accounts are provisioned by other admins.
	if !req.Role.IsValid() || req.Role == entity.RoleAdmin {
		return nil, domainerrors.ErrRoleNotAllowed.WithDetails("cannot register as " + req.Role.String())
	}

	result, err := srv.auth.Register(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "storefront register")
	}

	return srv.open(ctx, result)
}

func (srv *sessionService) open(ctx context.Context, result *service.AuthResult) (*usecase.SessionResult, error) {
	if result == nil || result.Token == "" {
		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails("sign-in returned no token")
	}

	user := result.User
	if user == nil {
		me, err := srv.auth.Me(service.ContextWithAccessToken(ctx, result.Token))
		if err != nil {
			return nil, errors.Wrap(err, "load signed-in user")
		}
		user = me
	}
	if !user.Role.IsValid() {
		return nil, domainerrors.ErrRoleNotAllowed.WithDetails("unknown role " + user.Role.String())
	}

	now := srv.now()
	session := &entity.Session{
		ID:         uuid.New(),
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Token:      result.Token,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	token, expiresAt, err := srv.tokens.GenerateSessionToken(session.ID, session.Role)
	if err != nil {
		return nil, errors.Wrap(err, "sign session token")
	}
	session.ExpiresAt = expiresAt

	if err := srv.store.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "save session")
	}

	srv.log(ctx).Info("Session opened",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", session.UserID),
		slog.String("role", session.Role.String()),
	)

	return &usecase.SessionResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Session:   session,
		User:      session.User(),
		Home:      session.Role.Home(),
	}, nil
}

// Logout deletes the session and drops its cached cart and polling state.
func (srv *sessionService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.store.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "delete session")
	}
	srv.release(ctx, sessionID)

	srv.log(ctx).Info("Session closed", slog.String("session_id", sessionID.String()))

	return nil
}

// release drops everything held for a deleted session.
func (srv *sessionService) release(ctx context.Context, sessionID uuid.UUID) {
	if err := srv.carts.Delete(ctx, sessionID); err != nil {
		srv.log(ctx).Warn("Failed to drop cached cart",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err),
		)
	}
	srv.messaging.Forget(sessionID)
}

// Authenticate validates a session token, loads the session and marks it used.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := srv.tokens.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	session, err := srv.store.Load(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	if session.Expired(now) || session.IdleSince(now.Add(-srv.idleTimeout)) {
		if err := srv.store.Delete(ctx, session.ID); err != nil {
			srv.log(ctx).Warn("Failed to delete stale session", slog.Any("error", err))
		}
		srv.release(ctx, session.ID)

		return nil, domainerrors.ErrSessionExpired
	}

	if now.Sub(session.LastSeenAt) >= constants.SessionTouchInterval {
		session.LastSeenAt = now
		if err := srv.store.Save(ctx, session); err != nil {
			srv.log(ctx).Warn("Failed to touch session",
				slog.String("session_id", session.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return session, nil
}

// Restore re-validates the session upstream. An upstream 401 deletes it.
func (srv *sessionService) Restore(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := srv.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	user, err := srv.auth.Me(apiCtx)
	if err != nil {
		if domainerrors.IsUpstreamStatus(err, http.StatusUnauthorized) {
			if delErr := srv.store.Delete(ctx, sessionID); delErr != nil {
				srv.log(ctx).Warn("Failed to delete revoked session", slog.Any("error", delErr))
			}
			srv.release(ctx, sessionID)

			return nil, domainerrors.ErrSessionExpired
		}

		return nil, errors.Wrap(err, "restore session")
	}

	if user.Role != session.Role {
		srv.log(ctx).Info("Session role changed upstream",
			slog.String("session_id", session.ID.String()),
			slog.String("from", session.Role.String()),
			slog.String("to", user.Role.String()),
		)
	}
	session.Name = user.Name
	session.Email = user.Email
	session.Role = user.Role
	session.LastSeenAt = srv.now()

	if err := srv.store.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "save restored session")
	}

	return session, nil
}

// ListActive returns every stored session that has not expired.
func (srv *sessionService) ListActive(ctx context.Context) ([]*entity.Session, error) {
	sessions, err := srv.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sessions")
	}

	now := srv.now()
	cutoff := now.Add(-srv.idleTimeout)
	active := make([]*entity.Session, 0, len(sessions))
	for _, session := range sessions {
		if session.Expired(now) || session.IdleSince(cutoff) {
			continue
		}
		active = append(active, session)
	}

	return active, nil
}

// PurgeIdle deletes sessions idle longer than the idle timeout or past expiry.
func (srv *sessionService) PurgeIdle(ctx context.Context) ([]uuid.UUID, error) {
	sessions, err := srv.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sessions")
	}

	now := srv.now()
	cutoff := now.Add(-srv.idleTimeout)
	var purged []uuid.UUID
	for _, session := range sessions {
		if !session.Expired(now) && !session.IdleSince(cutoff) {
			continue
		}
		if err := srv.store.Delete(ctx, session.ID); err != nil {
			srv.log(ctx).Warn("Failed to purge session",
				slog.String("session_id", session.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		srv.release(ctx, session.ID)
		purged = append(purged, session.ID)
	}

	if len(purged) > 0 {
		srv.log(ctx).Info("Purged idle sessions", slog.Int("count", len(purged)))
	}

	return purged, nil
}
