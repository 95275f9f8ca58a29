package usecase

import (
	"context"

	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/service"
)

// VendorDashboard is the vendor landing page.
type VendorDashboard struct {
	ProductCount int               `json:"product_count"`
	LowStock     []*entity.Product `json:"low_stock"`
	OpenOrders   []*entity.Order   `json:"open_orders"`
	Revenue      float64           `json:"revenue"` // delivered orders only
	Warnings     []string          `json:"warnings,omitempty"`
}

// VendorUsecase covers a vendor's products and orders.
type VendorUsecase interface {
	// Dashboard degrades failed sections to empty ones listed in Warnings.
	Dashboard(ctx context.Context, session *entity.Session) (*VendorDashboard, error)

	ListProducts(ctx context.Context, session *entity.Session) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, session *entity.Session, input *service.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, session *entity.Session, productID string, input *service.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, session *entity.Session, productID string) error

	ListOrders(ctx context.Context, session *entity.Session) ([]*entity.Order, error)

	// UpdateOrderStatus checks the vendor transition table before calling the API and
	// notifies the customer.
	UpdateOrderStatus(ctx context.Context, session *entity.Session, orderID string, status entity.OrderStatus) (*entity.Order, error)

	// HandoffQR renders the pickup code a courier scans. The order must be shipped.
	HandoffQR(ctx context.Context, session *entity.Session, orderID string) ([]byte, error)
}
