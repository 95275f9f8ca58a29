package repository

import (
	"context"

	"quickmart/internal/domain/entity"

	"github.com/google/uuid"
)

// CartCache keeps the last known cart per session and fans out changes.
type CartCache interface {
	// Get returns domainerrors.ErrCartNotCached on a miss.
	Get(ctx context.Context, sessionID uuid.UUID) (*entity.Cart, error)

	// Set stores the cart and notifies subscribers of the session.
	Set(ctx context.Context, sessionID uuid.UUID, cart *entity.Cart) error

	Delete(ctx context.Context, sessionID uuid.UUID) error

	// Subscribe streams every cart stored for the session until ctx is done,
	// then closes the channel.
	Subscribe(ctx context.Context, sessionID uuid.UUID) (<-chan *entity.Cart, error)
}
