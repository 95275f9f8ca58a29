package storefront

import (
	"context"
	"net/http"
	"net/url"

	"quickmart/internal/domain/entity"
)

// ListProducts forwards search and category; sorting and price bounds are applied by the caller.
func (c *Client) ListProducts(ctx context.Context, query *entity.ProductQuery) ([]*entity.Product, error) {
	values := url.Values{}
	if query != nil {
		if query.Search != "" {
			values.Set("search", query.Search)
		}
		if query.Category != "" {
			values.Set("category", query.Category)
		}
	}

	var products []*entity.Product
	if err := c.do(ctx, http.MethodGet, "products", values, nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := c.do(ctx, http.MethodGet, escape("products", id), nil, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}
