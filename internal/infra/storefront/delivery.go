package storefront

import (
	"context"
	"net/http"

	"quickmart/internal/domain/entity"
)

func (c *Client) ListAssignedDeliveries(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	if err := c.do(ctx, http.MethodGet, "delivery/orders", nil, nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) UpdateDeliveryStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	body := map[string]entity.OrderStatus{"status": status}

	var order entity.Order
	if err := c.do(ctx, http.MethodPut, escape("delivery/orders", id, "status"), nil, body, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) ReportDeliveryLocation(ctx context.Context, id string, point entity.GeoPoint) error {
	return c.do(ctx, http.MethodPut, escape("delivery/orders", id, "location"), nil, point, nil)
}
