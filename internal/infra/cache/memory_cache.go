// Package cache holds the cart cache backends.
package cache

import (
	"context"
	"sync"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memoryCache keeps carts in process. Used when Redis is not configured and in tests.
type memoryCache struct {
	mu          sync.RWMutex
	carts       map[uuid.UUID]*entity.Cart
	subscribers map[uuid.UUID]map[chan *entity.Cart]struct{}
}

// NewMemoryCache creates an in-process cart cache.
func NewMemoryCache() repository.CartCache {
	return &memoryCache{
		carts:       make(map[uuid.UUID]*entity.Cart),
		subscribers: make(map[uuid.UUID]map[chan *entity.Cart]struct{}),
	}
}

func (c *memoryCache) Get(_ context.Context, sessionID uuid.UUID) (*entity.Cart, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cart, ok := c.carts[sessionID]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrCartNotCached)
	}

	return cart.Clone(), nil
}

func (c *memoryCache) Set(_ context.Context, sessionID uuid.UUID, cart *entity.Cart) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.carts[sessionID] = cart.Clone()

	for ch := range c.subscribers[sessionID] {
		offer(ch, cart.Clone())
	}

	return nil
}

func (c *memoryCache) Delete(_ context.Context, sessionID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.carts, sessionID)

	return nil
}

func (c *memoryCache) Subscribe(ctx context.Context, sessionID uuid.UUID) (<-chan *entity.Cart, error) {
	ch := make(chan *entity.Cart, 1)

	c.mu.Lock()
	if c.subscribers[sessionID] == nil {
		c.subscribers[sessionID] = make(map[chan *entity.Cart]struct{})
	}
	c.subscribers[sessionID][ch] = struct{}{}
	c.mu.Unlock()

	go func() {
		<-ctx.Done()

		c.mu.Lock()
		delete(c.subscribers[sessionID], ch)
		if len(c.subscribers[sessionID]) == 0 {
			delete(c.subscribers, sessionID)
		}
		close(ch)
		c.mu.Unlock()
	}()

	return ch, nil
}

// offer delivers the latest cart, replacing a pending one a slow reader has not taken yet.
func offer(ch chan *entity.Cart, cart *entity.Cart) {
	for {
		select {
		case ch <- cart:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
