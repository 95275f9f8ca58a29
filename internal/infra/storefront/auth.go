package storefront

import (
	"context"
	"net/http"

	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/service"
)

func (c *Client) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result service.AuthResult
	if err := c.do(ctx, http.MethodPost, "auth/login", nil, body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) Register(ctx context.Context, req *service.RegisterRequest) (*service.AuthResult, error) {
	var result service.AuthResult
	if err := c.do(ctx, http.MethodPost, "auth/register", nil, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Me returns the account the bearer token belongs to.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, "auth/me", nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
