package storefront

import (
	"context"
	"net/http"

	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/service"
)

func (c *Client) ListVendorProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := c.do(ctx, http.MethodGet, "vendor/products", nil, nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, input *service.ProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := c.do(ctx, http.MethodPost, "vendor/products", nil, input, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, input *service.ProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := c.do(ctx, http.MethodPut, escape("vendor/products", id), nil, input, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, escape("vendor/products", id), nil, nil, nil)
}

func (c *Client) ListVendorOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	if err := c.do(ctx, http.MethodGet, "vendor/orders", nil, nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	body := map[string]entity.OrderStatus{"status": status}

	var order entity.Order
	if err := c.do(ctx, http.MethodPut, escape("vendor/orders", id, "status"), nil, body, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
