package usecase

import (
	"context"
	"time"

	"quickmart/internal/domain/entity"
)

// CartView is the cart as pages and the live stream render it.
type CartView struct {
	Items     []entity.CartItem `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewCartView summarizes cart. A nil cart renders as empty.
func NewCartView(cart *entity.Cart) *CartView {
	view := &CartView{Items: []entity.CartItem{}}
	if cart == nil {
		return view
	}
	if len(cart.Items) > 0 {
		view.Items = cart.Items
	}
	view.Total = cart.Total()
	view.ItemCount = cart.ItemCount()
	view.UpdatedAt = cart.UpdatedAt

	return view
}

// CartUsecase keeps the cached cart of a session in step with the API.
type CartUsecase interface {
	// Get returns the cached cart, fetching it on a miss.
	Get(ctx context.Context, session *entity.Session) (*entity.Cart, error)

	// Refresh refetches the cart and replaces the cached copy.
	Refresh(ctx context.Context, session *entity.Session) (*entity.Cart, error)

	AddItem(ctx context.Context, session *entity.Session, productID string, quantity int) (*entity.Cart, error)

	// UpdateQuantity applies the change to the cache first and rolls it back if the API
	// rejects it. Quantities below one are refused before any call.
	UpdateQuantity(ctx context.Context, session *entity.Session, itemID string, quantity int) (*entity.Cart, error)

	// RemoveItem is optimistic like UpdateQuantity.
	RemoveItem(ctx context.Context, session *entity.Session, itemID string) (*entity.Cart, error)

	Clear(ctx context.Context, session *entity.Session) error

	// Subscribe streams cart changes for the session until ctx is done.
	Subscribe(ctx context.Context, session *entity.Session) (<-chan *entity.Cart, error)
}
