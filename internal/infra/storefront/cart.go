package storefront

import (
	"context"
	"net/http"

	"quickmart/internal/domain/entity"
)

// Cart mutations return the updated cart when the API echoes it, nil otherwise.

func (c *Client) GetCart(ctx context.Context) (*entity.Cart, error) {
	cart := &entity.Cart{}
	if err := c.do(ctx, http.MethodGet, "cart", nil, nil, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) (*entity.Cart, error) {
	body := map[string]any{"product_id": productID, "quantity": quantity}

	var cart *entity.Cart
	if err := c.do(ctx, http.MethodPost, "cart/items", nil, body, &cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	body := map[string]any{"quantity": quantity}

	var cart *entity.Cart
	if err := c.do(ctx, http.MethodPut, escape("cart/items", itemID), nil, body, &cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID string) (*entity.Cart, error) {
	var cart *entity.Cart
	if err := c.do(ctx, http.MethodDelete, escape("cart/items", itemID), nil, nil, &cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "cart", nil, nil, nil)
}
