package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type vendorService struct {
	api       service.VendorAPI
	qrcode    service.QRCodeService
	publisher service.EventPublisher
	validate  *validator.Validate
	now       func() time.Time
	logger    *slog.Logger
}

// NewVendorService creates the vendor view service.
func NewVendorService(
	api service.VendorAPI,
	qrcode service.QRCodeService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.VendorUsecase {
	return &vendorService{
		api:       api,
		qrcode:    qrcode,
		publisher: publisher,
		validate:  newValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *vendorService) begin(ctx context.Context, session *entity.Session) (context.Context, error) {
	if err := requireRole(session, entity.RoleVendor); err != nil {
		return nil, err
	}

	return apiContext(ctx, session)
}

// Dashboard loads products and orders side by side.
func (s *vendorService) Dashboard(ctx context.Context, session *entity.Session) (*usecase.VendorDashboard, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}

	var (
		products []*entity.Product
		orders   []*entity.Order
	)
	warnings, err := loadSections(apiCtx, deliverycontext.GetLoggerOrDefault(ctx, s.logger),
		section{name: "products", fetch: func(ctx context.Context) (err error) {
			products, err = s.api.ListVendorProducts(ctx)
			return err
		}},
		section{name: "orders", fetch: func(ctx context.Context) (err error) {
			orders, err = s.api.ListVendorOrders(ctx)
			return err
		}},
	)
	if err != nil {
		return nil, err
	}
	products, orders = withoutNil(products), withoutNil(orders)

	dashboard := &usecase.VendorDashboard{
		ProductCount: len(products),
		LowStock:     []*entity.Product{},
		OpenOrders:   []*entity.Order{},
		Warnings:     warnings,
	}

	for _, p := range products {
		if p.Stock <= constants.LowStockThreshold {
			dashboard.LowStock = append(dashboard.LowStock, p)
		}
	}
	slices.SortStableFunc(dashboard.LowStock, func(a, b *entity.Product) int {
		return cmp.Compare(a.Stock, b.Stock)
	})

	var revenue int64
	for _, o := range orders {
		switch {
		case o.Status == entity.OrderStatusDelivered:
			revenue += o.TotalCents()
		case o.Status.IsOpen():
			dashboard.OpenOrders = append(dashboard.OpenOrders, o)
		}
	}
	dashboard.OpenOrders = newestFirst(dashboard.OpenOrders)
	dashboard.Revenue = entity.FromCents(revenue)

	return dashboard, nil
}

func (s *vendorService) ListProducts(ctx context.Context, session *entity.Session) ([]*entity.Product, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}

	products, err := s.api.ListVendorProducts(apiCtx)
	if err != nil {
		return nil, errors.Wrap(err, "list vendor products")
	}

	return products, nil
}

func (s *vendorService) validateProduct(input *service.ProductInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("product is required")
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if err := s.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(describeValidation(err))
	}

	return nil
}

func (s *vendorService) CreateProduct(ctx context.Context, session *entity.Session, input *service.ProductInput) (*entity.Product, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}
	if err := s.validateProduct(input); err != nil {
		return nil, err
	}

	product, err := s.api.CreateProduct(apiCtx, input)
	if err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Product created",
		slog.String("product_id", product.ID),
		slog.String("vendor_id", session.UserID),
	)

	return product, nil
}

func (s *vendorService) UpdateProduct(ctx context.Context, session *entity.Session, productID string, input *service.ProductInput) (*entity.Product, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(productID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}
	if err := s.validateProduct(input); err != nil {
		return nil, err
	}

	product, err := s.api.UpdateProduct(apiCtx, productID, input)
	if err != nil {
		return nil, errors.Wrap(err, "update product")
	}

	return product, nil
}

func (s *vendorService) DeleteProduct(ctx context.Context, session *entity.Session, productID string) error {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return err
	}
	if strings.TrimSpace(productID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}

	if err := s.api.DeleteProduct(apiCtx, productID); err != nil {
		return errors.Wrap(err, "delete product")
	}

	return nil
}

func (s *vendorService) ListOrders(ctx context.Context, session *entity.Session) ([]*entity.Order, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}

	orders, err := s.api.ListVendorOrders(apiCtx)
	if err != nil {
		return nil, errors.Wrap(err, "list vendor orders")
	}

	return newestFirst(orders), nil
}

func (s *vendorService) findOrder(apiCtx context.Context, orderID string) (*entity.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order id is required")
	}

	orders, err := s.api.ListVendorOrders(apiCtx)
	if err != nil {
		return nil, errors.Wrap(err, "list vendor orders")
	}

	return findOrder(orders, orderID)
}

func (s *vendorService) UpdateOrderStatus(ctx context.Context, session *entity.Session, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(status))
	}

	current, err := s.findOrder(apiCtx, orderID)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransition(entity.RoleVendor, current.Status, status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(string(current.Status) + " to " + string(status))
	}

	updated, err := s.api.UpdateOrderStatus(apiCtx, orderID, status)
	if err != nil {
		return nil, errors.Wrap(err, "update order status")
	}
	if updated.CustomerID == "" {
		updated.CustomerID = current.CustomerID
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Order status updated",
		slog.String("order_id", orderID),
		slog.String("from", string(current.Status)),
		slog.String("to", string(updated.Status)),
	)
	publishEvent(ctx, s.publisher, logger, statusChangedEvent(ctx, updated, s.now()))

	return updated, nil
}

func (s *vendorService) HandoffQR(ctx context.Context, session *entity.Session, orderID string) ([]byte, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}

	order, err := s.findOrder(apiCtx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderStatusShipped {
		return nil, domainerrors.ErrConflict.WithDetails("order must be shipped before handoff, it is " + string(order.Status))
	}

	png, err := s.qrcode.GenerateHandoffQR(order.ID, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "generate handoff code")
	}

	return png, nil
}
