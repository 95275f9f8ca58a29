package usecase

import (
	"context"

	"quickmart/internal/domain/entity"
)

// CatalogUsecase backs the public shop pages.
type CatalogUsecase interface {
	// Shop lists products matching query. Search, category and price filters and the
	// sort order are applied locally on top of whatever the API returned.
	Shop(ctx context.Context, query *entity.ProductQuery) ([]*entity.Product, error)

	Product(ctx context.Context, id string) (*entity.Product, error)
}
