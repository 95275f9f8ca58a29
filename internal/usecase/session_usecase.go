package usecase

import (
	"context"
	"time"

	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/service"

	"github.com/google/uuid"
)

// SessionResult is handed to the browser after sign-in.
type SessionResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Session   *entity.Session `json:"-"`
	User      *entity.User    `json:"user"`
	Home      string          `json:"home"`
}

// SessionUsecase signs users in and out and resolves session tokens.
type SessionUsecase interface {
	// Login signs in against the storefront API and opens a session.
	Login(ctx context.Context, email, password string) (*SessionResult, error)

	// Register creates a storefront account and opens a session for it.
	Register(ctx context.Context, req *service.RegisterRequest) (*SessionResult, error)

	// Logout deletes the session and drops its cached cart.
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// Authenticate validates a session token, loads the session and marks it used.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)

	// Restore re-validates the session upstream. An upstream 401 deletes it.
	Restore(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)

	// ListActive returns every stored session that has not expired.
	ListActive(ctx context.Context) ([]*entity.Session, error)

	// PurgeIdle deletes sessions idle longer than the configured timeout or past expiry
	// and returns their IDs.
	PurgeIdle(ctx context.Context) ([]uuid.UUID, error)
}
