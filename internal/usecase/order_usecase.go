package usecase

import (
	"context"

	"quickmart/internal/domain/entity"
)

// OrderUsecase covers a customer's own orders.
type OrderUsecase interface {
	// ListOrders returns orders newest first.
	ListOrders(ctx context.Context, session *entity.Session) ([]*entity.Order, error)
	GetOrder(ctx context.Context, session *entity.Session, orderID string) (*entity.Order, error)
	// CancelOrder is allowed while the order is pending.
	CancelOrder(ctx context.Context, session *entity.Session, orderID string) (*entity.Order, error)
}
