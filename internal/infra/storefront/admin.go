package storefront

import (
	"context"
	"net/http"
	"net/url"

	"quickmart/internal/domain/entity"
)

// ListUsers lists accounts; an empty role lists everyone.
func (c *Client) ListUsers(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	values := url.Values{}
	if role != "" {
		values.Set("role", role.String())
	}

	var users []*entity.User
	if err := c.do(ctx, http.MethodGet, "users", values, nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, id string, role entity.Role) (*entity.User, error) {
	body := map[string]entity.Role{"role": role}

	var user entity.User
	if err := c.do(ctx, http.MethodPut, escape("users", id, "role"), nil, body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, escape("users", id), nil, nil, nil)
}

func (c *Client) GetAnalytics(ctx context.Context) (*entity.Analytics, error) {
	var analytics entity.Analytics
	if err := c.do(ctx, http.MethodGet, "admin/analytics", nil, nil, &analytics); err != nil {
		return nil, err
	}

	return &analytics, nil
}

func (c *Client) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	if err := c.do(ctx, http.MethodGet, "admin/orders", nil, nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
