package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	api    service.CatalogAPI
	logger *slog.Logger
}

// NewCatalogService creates the shop catalog service.
func NewCatalogService(api service.CatalogAPI, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		api:    api,
		logger: logger,
	}
}

// Shop lists products matching query, filtered and sorted locally.
func (s *catalogService) Shop(ctx context.Context, query *entity.ProductQuery) ([]*entity.Product, error) {
	if query == nil {
		query = &entity.ProductQuery{}
	}
	if !query.Sort.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown sort " + string(query.Sort))
	}
	if query.MinPrice < 0 || (query.MaxPrice > 0 && query.MinPrice > query.MaxPrice) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid price range")
	}

	products, err := s.api.ListProducts(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	filtered := FilterProducts(products, query)
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Shop listing",
		slog.Int("fetched", len(products)),
		slog.Int("shown", len(filtered)),
	)

	return filtered, nil
}

func (s *catalogService) Product(ctx context.Context, id string) (*entity.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}

	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}

	return product, nil
}

// FilterProducts applies search, category and price filters and the sort order.
// The input slice is not modified.
func FilterProducts(products []*entity.Product, query *entity.ProductQuery) []*entity.Product {
	search := strings.ToLower(strings.TrimSpace(query.Search))
	category := strings.TrimSpace(query.Category)

	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if p.Price < query.MinPrice {
			continue
		}
		if query.MaxPrice > 0 && p.Price > query.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch query.Sort {
	case entity.SortNewest:
		slices.SortStableFunc(out, func(a, b *entity.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case entity.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b *entity.Product) int {
			return cmp.Compare(entity.ToCents(a.Price), entity.ToCents(b.Price))
		})
	case entity.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b *entity.Product) int {
			return cmp.Compare(entity.ToCents(b.Price), entity.ToCents(a.Price))
		})
	case entity.SortNameAsc:
		slices.SortStableFunc(out, func(a, b *entity.Product) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}

	return out
}

func matchesSearch(p *entity.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}
