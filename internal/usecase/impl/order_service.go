package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/pkg/errors"
)

type orderService struct {
	api       service.OrderAPI
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// NewOrderService creates the customer order service.
func NewOrderService(api service.OrderAPI, publisher service.EventPublisher, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		api:       api,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *orderService) ListOrders(ctx context.Context, session *entity.Session) ([]*entity.Order, error) {
	if err := requireRole(session, entity.RoleCustomer); err != nil {
		return nil, err
	}
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	orders, err := s.api.ListOrders(apiCtx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	return newestFirst(orders), nil
}

func (s *orderService) GetOrder(ctx context.Context, session *entity.Session, orderID string) (*entity.Order, error) {
	if err := requireRole(session, entity.RoleCustomer); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order id is required")
	}
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	order, err := s.api.GetOrder(apiCtx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "get order")
	}

	return order, nil
}

// CancelOrder checks the customer transition table before asking the API.
func (s *orderService) CancelOrder(ctx context.Context, session *entity.Session, orderID string) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, session, orderID)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransition(session.Role, order.Status, entity.OrderStatusCancelled) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails("order is " + string(order.Status))
	}

	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	cancelled, err := s.api.CancelOrder(apiCtx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "cancel order")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Order cancelled by customer", slog.String("order_id", orderID))

	if cancelled.VendorID != "" {
		event := statusChangedEvent(ctx, cancelled, s.now())
		event.UserID = cancelled.VendorID
		publishEvent(ctx, s.publisher, logger, event)
	}

	return cancelled, nil
}
