package repository

import (
	"context"

	"quickmart/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionStore persists signed-in sessions between requests and restarts.
type SessionStore interface {
	// Save creates or replaces the session.
	Save(ctx context.Context, session *entity.Session) error

	// Load returns domainerrors.ErrSessionNotFound when the session is missing or unreadable.
	Load(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Delete is a no-op for unknown sessions.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns every readable session.
	List(ctx context.Context) ([]*entity.Session, error)
}
