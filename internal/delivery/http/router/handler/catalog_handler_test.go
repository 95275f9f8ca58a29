package handler

import (
	"net/http"
	"testing"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	mockUsecase "quickmart/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListProducts(t *testing.T) {
	t.Run("maps query string", func(t *testing.T) {
		catalogUC := mockUsecase.NewMockCatalogUsecase(t)
		h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})
		c, rec := newContext(http.MethodGet, "/api/v1/shop/products?search=milk&category=dairy&sort=price_asc&min_price=1.5&max_price=9", "")

		catalogUC.EXPECT().Shop(mock.Anything, &entity.ProductQuery{
			Search:   "milk",
			Category: "dairy",
			Sort:     entity.SortPriceAsc,
			MinPrice: 1.5,
			MaxPrice: 9,
		}).Return([]*entity.Product{{ID: "p-1", Name: "Milk", Price: 2.49}}, nil)

		require.NoError(t, h.ListProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		products := decodeData[[]*entity.Product](t, rec)
		require.Len(t, products, 1)
		assert.Equal(t, "Milk", products[0].Name)
	})

	t.Run("unknown sort", func(t *testing.T) {
		h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: mockUsecase.NewMockCatalogUsecase(t)})
		c, rec := newContext(http.MethodGet, "/api/v1/shop/products?sort=random", "")

		require.NoError(t, h.ListProducts(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("negative price", func(t *testing.T) {
		h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: mockUsecase.NewMockCatalogUsecase(t)})
		c, rec := newContext(http.MethodGet, "/api/v1/shop/products?min_price=-1", "")

		require.NoError(t, h.ListProducts(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})
	c, rec := newContext(http.MethodGet, "/api/v1/shop/products/p-404", "")
	c.SetParamNames("id")
	c.SetParamValues("p-404")

	catalogUC.EXPECT().Product(mock.Anything, "p-404").
		Return(nil, domainerrors.NewUpstreamError(http.StatusNotFound, http.MethodGet, "/products/p-404", "Product not found"))

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "NOT_FOUND", info.Code)
	assert.Equal(t, "Product not found", info.Message)
}
