package impl

import (
	"context"
	"testing"
	"time"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	mockSvc "quickmart/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []*entity.Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	return []*entity.Product{
		{ID: "p1", Name: "Oat Milk", Category: "Dairy", Price: 3.49, CreatedAt: base},
		{ID: "p2", Name: "banana", Category: "Produce", Description: "Ripe yellow", Price: 0.99, CreatedAt: base.Add(48 * time.Hour)},
		{ID: "p3", Name: "Cheddar", Category: "dairy", Price: 7.25, CreatedAt: base.Add(24 * time.Hour)},
		nil,
	}
}

func ids(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}

	return out
}

func TestFilterProducts(t *testing.T) {
	tests := []struct {
		name  string
		query entity.ProductQuery
		want  []string
	}{
		{name: "no filter keeps order", query: entity.ProductQuery{}, want: []string{"p1", "p2", "p3"}},
		{name: "search matches description", query: entity.ProductQuery{Search: "YELLOW"}, want: []string{"p2"}},
		{name: "category is case-insensitive", query: entity.ProductQuery{Category: "DAIRY"}, want: []string{"p1", "p3"}},
		{name: "price range", query: entity.ProductQuery{MinPrice: 1, MaxPrice: 5}, want: []string{"p1"}},
		{name: "newest first", query: entity.ProductQuery{Sort: entity.SortNewest}, want: []string{"p2", "p3", "p1"}},
		{name: "price ascending", query: entity.ProductQuery{Sort: entity.SortPriceAsc}, want: []string{"p2", "p1", "p3"}},
		{name: "price descending", query: entity.ProductQuery{Sort: entity.SortPriceDesc}, want: []string{"p3", "p1", "p2"}},
		{name: "name ignores case", query: entity.ProductQuery{Sort: entity.SortNameAsc}, want: []string{"p2", "p3", "p1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := sampleProducts()

			got := FilterProducts(products, &tt.query)

			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, "p1", products[0].ID, "input must not be reordered")
		})
	}
}

func TestCatalogService_Shop(t *testing.T) {
	api := mockSvc.NewMockCatalogAPI(t)
	svc := NewCatalogService(api, discardLogger())
	ctx := context.Background()
	query := &entity.ProductQuery{Category: "dairy", Sort: entity.SortPriceDesc}

	api.EXPECT().ListProducts(ctx, query).Return(sampleProducts(), nil)

	products, err := svc.Shop(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, []string{"p3", "p1"}, ids(products))
}

func TestCatalogService_Shop_RejectsBadQuery(t *testing.T) {
	svc := NewCatalogService(mockSvc.NewMockCatalogAPI(t), discardLogger())

	_, err := svc.Shop(context.Background(), &entity.ProductQuery{Sort: "random"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.Shop(context.Background(), &entity.ProductQuery{MinPrice: 10, MaxPrice: 5})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_Product(t *testing.T) {
	api := mockSvc.NewMockCatalogAPI(t)
	svc := NewCatalogService(api, discardLogger())
	ctx := context.Background()

	api.EXPECT().GetProduct(ctx, "p1").Return(&entity.Product{ID: "p1"}, nil)

	product, err := svc.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)

	_, err = svc.Product(ctx, "  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
