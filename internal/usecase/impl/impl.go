// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	"quickmart/internal/util"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// apiContext attaches the storefront token of session to ctx.
func apiContext(ctx context.Context, session *entity.Session) (context.Context, error) {
	if session == nil || session.Token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	return service.ContextWithAccessToken(ctx, session.Token), nil
}

// requireRole rejects sessions of any other role.
func requireRole(session *entity.Session, roles ...entity.Role) error {
	if session == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !entity.Roles(roles).Contains(session.Role) {
		return domainerrors.ErrRoleNotAllowed
	}

	return nil
}

func newEvent(ctx context.Context, eventType, userID, title, body string, data map[string]string, now time.Time) *entity.StorefrontEvent {
	return &entity.StorefrontEvent{
		EventID:    uuid.New(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     userID,
		Title:      title,
		Body:       body,
		Data:       data,
		OccurredAt: now,
	}
}

// publishEvent never fails the caller: the change it reports already happened upstream.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *entity.StorefrontEvent) {
	if publisher == nil || event.UserID == "" {
		return
	}
	if err := publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event",
			slog.String("event_type", event.Type),
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)
	}
}

// withoutNil drops null entries an upstream list may carry.
func withoutNil[T any](items []*T) []*T {
	return slices.DeleteFunc(items, func(item *T) bool { return item == nil })
}

// newestFirst sorts orders by creation time, newest first.
func newestFirst(orders []*entity.Order) []*entity.Order {
	orders = withoutNil(orders)
	slices.SortStableFunc(orders, func(a, b *entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return orders
}

// findOrder returns the order with the given id, or ErrNotFound.
func findOrder(orders []*entity.Order, orderID string) (*entity.Order, error) {
	for _, order := range orders {
		if order != nil && order.ID == orderID {
			return order, nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("order " + orderID)
}

// statusChangedEvent tells the customer where their order is.
func statusChangedEvent(ctx context.Context, order *entity.Order, now time.Time) *entity.StorefrontEvent {
	return newEvent(ctx, constants.EventOrderStatusChanged, order.CustomerID,
		"Order update",
		"Order "+util.ShortID(order.ID)+" is now "+strings.ReplaceAll(string(order.Status), "_", " "),
		map[string]string{
			"order_id": order.ID,
			"status":   string(order.Status),
		}, now)
}

// section is one independently fetched part of a dashboard.
type section struct {
	name  string
	fetch func(ctx context.Context) error
}

// loadSections fetches every section concurrently. A failed section becomes a
// warning; an upstream 401 aborts since nothing else will load either.
func loadSections(ctx context.Context, logger *slog.Logger, sections ...section) ([]string, error) {
	failures := make([]error, len(sections))

	var g errgroup.Group
	for i, sec := range sections {
		g.Go(func() error {
			failures[i] = sec.fetch(ctx)

			return nil
		})
	}
	_ = g.Wait()

	var warnings []string
	for i, err := range failures {
		if err == nil {
			continue
		}
		if domainerrors.IsUpstreamStatus(err, http.StatusUnauthorized) {
			return nil, err
		}

		logger.Warn("Dashboard section unavailable",
			slog.String("section", sections[i].name),
			slog.Any("error", err),
		)
		warnings = append(warnings, sections[i].name+" unavailable")
	}

	return warnings, nil
}
