package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/repository"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type cartService struct {
	api    service.CartAPI
	cache  repository.CartCache
	now    func() time.Time
	logger *slog.Logger
}

// NewCartService creates the cart context service.
func NewCartService(api service.CartAPI, cache repository.CartCache, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		api:    api,
		cache:  cache,
		now:    time.Now,
		logger: logger,
	}
}

func (s *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Get returns the cached cart, fetching it on a miss.
func (s *cartService) Get(ctx context.Context, session *entity.Session) (*entity.Cart, error) {
	if err := requireRole(session, entity.RoleCustomer); err != nil {
		return nil, err
	}

	cart, err := s.cache.Get(ctx, session.ID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domainerrors.ErrCartNotCached) {
		s.log(ctx).Warn("Cart cache read failed, fetching from API", slog.Any("error", err))
	}

	return s.Refresh(ctx, session)
}

// Refresh refetches the cart and replaces the cached copy.
func (s *cartService) Refresh(ctx context.Context, session *entity.Session) (*entity.Cart, error) {
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	cart, err := s.api.GetCart(apiCtx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch cart")
	}

	return s.store(ctx, session.ID, cart), nil
}

// store caches the server's cart. The cache is best effort; failures are logged.
func (s *cartService) store(ctx context.Context, sessionID uuid.UUID, cart *entity.Cart) *entity.Cart {
	if cart == nil {
		cart = &entity.Cart{}
	}
	if cart.Items == nil {
		cart.Items = []entity.CartItem{}
	}
	if cart.UpdatedAt.IsZero() {
		cart.UpdatedAt = s.now()
	}

	if err := s.cache.Set(ctx, sessionID, cart); err != nil {
		s.log(ctx).Warn("Failed to cache cart",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err),
		)
	}

	return cart
}

func (s *cartService) AddItem(ctx context.Context, session *entity.Session, productID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}
	if strings.TrimSpace(productID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}
	if err := requireRole(session, entity.RoleCustomer); err != nil {
		return nil, err
	}

	return s.mutate(ctx, session, nil, nil, func(apiCtx context.Context) (*entity.Cart, error) {
		return s.api.AddCartItem(apiCtx, productID, quantity)
	})
}

// UpdateQuantity applies the change to the cache first and rolls it back if the API rejects it.
func (s *cartService) UpdateQuantity(ctx context.Context, session *entity.Session, itemID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	previous, err := s.Get(ctx, session)
	if err != nil {
		return nil, err
	}

	optimistic, found := previous.WithQuantity(itemID, quantity, s.now())
	if !found {
		optimistic = nil
	}

	return s.mutate(ctx, session, previous, optimistic, func(apiCtx context.Context) (*entity.Cart, error) {
		return s.api.UpdateCartItem(apiCtx, itemID, quantity)
	})
}

// RemoveItem is optimistic like UpdateQuantity.
func (s *cartService) RemoveItem(ctx context.Context, session *entity.Session, itemID string) (*entity.Cart, error) {
	previous, err := s.Get(ctx, session)
	if err != nil {
		return nil, err
	}

	optimistic, found := previous.Without(itemID, s.now())
	if !found {
		optimistic = nil
	}

	return s.mutate(ctx, session, previous, optimistic, func(apiCtx context.Context) (*entity.Cart, error) {
		return s.api.RemoveCartItem(apiCtx, itemID)
	})
}

// mutate publishes the optimistic cart when not nil, runs call and then caches the
// server's answer, or restores previous if call fails. A nil answer means the API
// did not echo the cart, so it is refetched.
func (s *cartService) mutate(
	ctx context.Context,
	session *entity.Session,
	previous, optimistic *entity.Cart,
	call func(apiCtx context.Context) (*entity.Cart, error),
) (*entity.Cart, error) {
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	applied := optimistic != nil
	if applied {
		if err := s.cache.Set(ctx, session.ID, optimistic); err != nil {
			s.log(ctx).Warn("Failed to apply optimistic cart", slog.Any("error", err))
			applied = false
		}
	}

	server, err := call(apiCtx)
	if err != nil {
		if applied && previous != nil {
			if rbErr := s.cache.Set(ctx, session.ID, previous); rbErr != nil {
				s.log(ctx).Error("Failed to roll back optimistic cart", slog.Any("error", rbErr))
			}
		}

		return nil, errors.Wrap(err, "update cart")
	}

	if server == nil {
		return s.Refresh(ctx, session)
	}

	return s.store(ctx, session.ID, server), nil
}

func (s *cartService) Clear(ctx context.Context, session *entity.Session) error {
	if err := requireRole(session, entity.RoleCustomer); err != nil {
		return err
	}
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return err
	}

	if err := s.api.ClearCart(apiCtx); err != nil {
		return errors.Wrap(err, "clear cart")
	}
	s.store(ctx, session.ID, &entity.Cart{})

	return nil
}

// Subscribe streams cart changes for the session until ctx is done.
func (s *cartService) Subscribe(ctx context.Context, session *entity.Session) (<-chan *entity.Cart, error) {
	if err := requireRole(session, entity.RoleCustomer); err != nil {
		return nil, err
	}

	updates, err := s.cache.Subscribe(ctx, session.ID)
	if err != nil {
		return nil, errors.Wrap(err, "subscribe to cart")
	}

	return updates, nil
}
