package storefront

import (
	"context"
	"net/http"

	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/service"
)

func (c *Client) CreateOrder(ctx context.Context, req *service.CreateOrderRequest) (*entity.Order, error) {
	var order entity.Order
	if err := c.do(ctx, http.MethodPost, "orders", nil, req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// CreatePaymentIntent asks the API to open a payment intent for a pending order.
func (c *Client) CreatePaymentIntent(ctx context.Context, orderID string) (*service.PaymentIntent, error) {
	var intent service.PaymentIntent
	if err := c.do(ctx, http.MethodPost, escape("orders", orderID, "payment-intent"), nil, nil, &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

func (c *Client) ConfirmOrderPayment(ctx context.Context, orderID, paymentIntentID string) (*entity.Order, error) {
	body := map[string]string{"payment_intent_id": paymentIntentID}

	var order entity.Order
	if err := c.do(ctx, http.MethodPost, escape("orders", orderID, "confirm-payment"), nil, body, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	if err := c.do(ctx, http.MethodGet, "orders", nil, nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	if err := c.do(ctx, http.MethodGet, escape("orders", id), nil, nil, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	if err := c.do(ctx, http.MethodPost, escape("orders", id, "cancel"), nil, nil, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
