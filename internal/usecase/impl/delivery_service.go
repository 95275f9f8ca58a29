package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"quickmart/config"
	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/pkg/errors"
)

type deliveryService struct {
	api        service.DeliveryAPI
	qrcode     service.QRCodeService
	publisher  service.EventPublisher
	longHaulKm float64
	now        func() time.Time
	logger     *slog.Logger
}

// NewDeliveryService creates the courier view service.
func NewDeliveryService(
	cfg *config.Config,
	api service.DeliveryAPI,
	qrcode service.QRCodeService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	var longHaul float64
	if cfg.Delivery != nil {
		longHaul = cfg.Delivery.LongHaulKm
	}

	return &deliveryService{
		api:        api,
		qrcode:     qrcode,
		publisher:  publisher,
		longHaulKm: longHaul,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *deliveryService) begin(ctx context.Context, session *entity.Session) (context.Context, error) {
	if err := requireRole(session, entity.RoleDelivery); err != nil {
		return nil, err
	}

	return apiContext(ctx, session)
}

func (s *deliveryService) Dashboard(ctx context.Context, session *entity.Session, origin *entity.GeoPoint) (*usecase.DeliveryDashboard, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}
	if origin != nil && !origin.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("origin is out of range")
	}

	var orders []*entity.Order
	warnings, err := loadSections(apiCtx, deliverycontext.GetLoggerOrDefault(ctx, s.logger),
		section{name: "deliveries", fetch: func(ctx context.Context) (err error) {
			orders, err = s.api.ListAssignedDeliveries(ctx)
			return err
		}},
	)
	if err != nil {
		return nil, err
	}

	return &usecase.DeliveryDashboard{
		Deliveries: s.assignments(orders, origin),
		Warnings:   warnings,
	}, nil
}

// assignments keeps open orders, nearest first; orders without a known distance
// follow, oldest first.
func (s *deliveryService) assignments(orders []*entity.Order, origin *entity.GeoPoint) []*entity.DeliveryAssignment {
	out := make([]*entity.DeliveryAssignment, 0, len(orders))
	for _, order := range orders {
		if order == nil || !order.Status.IsOpen() {
			continue
		}

		assignment := &entity.DeliveryAssignment{Order: order}
		from := origin
		if from == nil {
			from = order.CurrentLocation
		}
		to := order.ShippingAddress.Location
		if from != nil && to != nil && from.Valid() && to.Valid() {
			km := entity.DistanceKm(*from, *to)
			assignment.DistanceKm = &km
			assignment.LongHaul = s.longHaulKm > 0 && km > s.longHaulKm
		}
		out = append(out, assignment)
	}

	slices.SortStableFunc(out, func(a, b *entity.DeliveryAssignment) int {
		switch {
		case a.DistanceKm != nil && b.DistanceKm != nil:
			return cmp.Compare(*a.DistanceKm, *b.DistanceKm)
		case a.DistanceKm != nil:
			return -1
		case b.DistanceKm != nil:
			return 1
		default:
			return a.Order.CreatedAt.Compare(b.Order.CreatedAt)
		}
	})

	return out
}

func (s *deliveryService) assigned(apiCtx context.Context, orderID string) (*entity.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order id is required")
	}

	orders, err := s.api.ListAssignedDeliveries(apiCtx)
	if err != nil {
		return nil, errors.Wrap(err, "list assigned deliveries")
	}

	return findOrder(orders, orderID)
}

func (s *deliveryService) UpdateStatus(ctx context.Context, session *entity.Session, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}

	current, err := s.assigned(apiCtx, orderID)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, apiCtx, current, status)
}

func (s *deliveryService) transition(ctx, apiCtx context.Context, current *entity.Order, status entity.OrderStatus) (*entity.Order, error) {
	if !entity.CanTransition(entity.RoleDelivery, current.Status, status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(string(current.Status) + " to " + string(status))
	}

	updated, err := s.api.UpdateDeliveryStatus(apiCtx, current.ID, status)
	if err != nil {
		return nil, errors.Wrap(err, "update delivery status")
	}
	if updated.CustomerID == "" {
		updated.CustomerID = current.CustomerID
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Delivery status updated",
		slog.String("order_id", current.ID),
		slog.String("from", string(current.Status)),
		slog.String("to", string(updated.Status)),
	)
	publishEvent(ctx, s.publisher, logger, statusChangedEvent(ctx, updated, s.now()))

	return updated, nil
}

func (s *deliveryService) ReportLocation(ctx context.Context, session *entity.Session, orderID string, point entity.GeoPoint) error {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return err
	}
	if strings.TrimSpace(orderID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("order id is required")
	}
	if !point.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("location is out of range")
	}

	if err := s.api.ReportDeliveryLocation(apiCtx, orderID, point); err != nil {
		return errors.Wrap(err, "report delivery location")
	}

	return nil
}

// ScanHandoff accepts a code only for an order assigned to the courier and issued by its vendor.
func (s *deliveryService) ScanHandoff(ctx context.Context, session *entity.Session, code string) (*entity.Order, error) {
	apiCtx, err := s.begin(ctx, session)
	if err != nil {
		return nil, err
	}

	payload, err := s.qrcode.ParseHandoffQR(strings.TrimSpace(code))
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Rejected handoff code", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidHandoffCode
	}

	current, err := s.assigned(apiCtx, payload.OrderID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidHandoffCode.WithDetails("order is not assigned to you")
		}

		return nil, err
	}
	if current.VendorID != "" && current.VendorID != payload.VendorID {
		return nil, domainerrors.ErrInvalidHandoffCode.WithDetails("code was not issued by the order's vendor")
	}

	return s.transition(ctx, apiCtx, current, entity.OrderStatusPickedUp)
}
