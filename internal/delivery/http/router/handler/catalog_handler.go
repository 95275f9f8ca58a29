package handler

import (
	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves the public shop.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// ShopQuery represents the query string of the product listing
type ShopQuery struct {
	Search   string  `query:"search" validate:"max=100"`
	Category string  `query:"category" validate:"max=100"`
	Sort     string  `query:"sort" validate:"omitempty,oneof=newest price_asc price_desc name_asc"`
	MinPrice float64 `query:"min_price" validate:"gte=0"`
	MaxPrice float64 `query:"max_price" validate:"gte=0"`
}

// ListProducts handles GET /api/v1/shop/products
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var req ShopQuery
	if ok, err := bind(c, &req); !ok {
		return err
	}

	products, err := h.catalogUC.Shop(c.Request().Context(), &entity.ProductQuery{
		Search:   req.Search,
		Category: req.Category,
		Sort:     entity.ProductSort(req.Sort),
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// GetProduct handles GET /api/v1/shop/products/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.Product(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}
