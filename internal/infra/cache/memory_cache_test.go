package cache

import (
	"context"
	"testing"
	"time"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSetDelete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()
	sessionID := uuid.New()

	_, err := cache.Get(ctx, sessionID)
	assert.True(t, errors.Is(err, domainerrors.ErrCartNotCached))

	cart := &entity.Cart{Items: []entity.CartItem{{ID: "i1", Quantity: 2, Price: 1.5}}}
	require.NoError(t, cache.Set(ctx, sessionID, cart))

	got, err := cache.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), got.TotalCents())

	// stored copies are isolated from callers
	got.Items[0].Quantity = 99
	again, err := cache.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Quantity)

	require.NoError(t, cache.Delete(ctx, sessionID))
	_, err = cache.Get(ctx, sessionID)
	assert.True(t, errors.Is(err, domainerrors.ErrCartNotCached))
}

func TestMemoryCache_SubscribeReceivesLatest(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sessionID := uuid.New()

	updates, err := cache.Subscribe(ctx, sessionID)
	require.NoError(t, err)

	// nobody reads between these, only the last one must survive
	require.NoError(t, cache.Set(ctx, sessionID, &entity.Cart{Items: []entity.CartItem{{ID: "a", Quantity: 1}}}))
	require.NoError(t, cache.Set(ctx, sessionID, &entity.Cart{Items: []entity.CartItem{{ID: "a", Quantity: 5}}}))
	require.NoError(t, cache.Set(ctx, uuid.New(), &entity.Cart{}))

	select {
	case cart := <-updates:
		assert.Equal(t, 5, cart.ItemCount())
	case <-time.After(time.Second):
		t.Fatal("no cart update received")
	}
}

func TestMemoryCache_SubscribeClosesOnCancel(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())

	updates, err := cache.Subscribe(ctx, uuid.New())
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestRedisKeys(t *testing.T) {
	id := uuid.MustParse("6f1c1c1e-7d0a-4c36-9c53-2f4a8f3f0b11")

	assert.Equal(t, "cart:6f1c1c1e-7d0a-4c36-9c53-2f4a8f3f0b11", cartKey(id))
	assert.Equal(t, "cart-updates:6f1c1c1e-7d0a-4c36-9c53-2f4a8f3f0b11", updatesChannel(id))
}
