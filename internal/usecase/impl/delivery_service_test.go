package impl

import (
	"context"
	"testing"
	"time"

	"quickmart/config"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	mockSvc "quickmart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryServiceFixtures struct {
	service   *deliveryService
	api       *mockSvc.MockDeliveryAPI
	qrcode    *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
	session   *entity.Session
}

func createTestDeliveryService(t *testing.T) deliveryServiceFixtures {
	api := mockSvc.NewMockDeliveryAPI(t)
	qr := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := &config.Config{Delivery: &config.DeliveryConfig{LongHaulKm: 15}}

	svc := NewDeliveryService(cfg, api, qr, publisher, discardLogger()).(*deliveryService)
	svc.now = func() time.Time { return testNow }

	return deliveryServiceFixtures{
		service:   svc,
		api:       api,
		qrcode:    qr,
		publisher: publisher,
		session:   &entity.Session{ID: uuid.New(), UserID: "d-1", Role: entity.RoleDelivery, Token: "up"},
	}
}

func orderTo(id string, lat, lng float64) *entity.Order {
	return &entity.Order{
		ID:              id,
		Status:          entity.OrderStatusShipped,
		ShippingAddress: entity.ShippingAddress{Location: &entity.GeoPoint{Lat: lat, Lng: lng}},
	}
}

func TestDeliveryService_Dashboard_SortsByDistance(t *testing.T) {
	fx := createTestDeliveryService(t)
	origin := &entity.GeoPoint{Lat: 51.5074, Lng: -0.1278} // central London

	far := orderTo("far", 51.7520, -1.2577) // Oxford, ~80 km
	near := orderTo("near", 51.5155, -0.0922)
	unknown := &entity.Order{ID: "unknown", Status: entity.OrderStatusPickedUp}
	done := orderTo("done", 51.5, -0.12)
	done.Status = entity.OrderStatusDelivered

	fx.api.EXPECT().ListAssignedDeliveries(mock.Anything).Return([]*entity.Order{far, unknown, near, done}, nil)

	dashboard, err := fx.service.Dashboard(context.Background(), fx.session, origin)

	require.NoError(t, err)
	require.Len(t, dashboard.Deliveries, 3)
	assert.Equal(t, "near", dashboard.Deliveries[0].Order.ID)
	assert.Equal(t, "far", dashboard.Deliveries[1].Order.ID)
	assert.Equal(t, "unknown", dashboard.Deliveries[2].Order.ID)
	assert.Less(t, *dashboard.Deliveries[0].DistanceKm, 5.0)
	assert.False(t, dashboard.Deliveries[0].LongHaul)
	assert.True(t, dashboard.Deliveries[1].LongHaul)
	assert.Nil(t, dashboard.Deliveries[2].DistanceKm)
}

func TestDeliveryService_Dashboard_UsesCurrentLocation(t *testing.T) {
	fx := createTestDeliveryService(t)
	order := orderTo("o1", 0, 1)
	order.CurrentLocation = &entity.GeoPoint{Lat: 0, Lng: 0}

	fx.api.EXPECT().ListAssignedDeliveries(mock.Anything).Return([]*entity.Order{order}, nil)

	dashboard, err := fx.service.Dashboard(context.Background(), fx.session, nil)

	require.NoError(t, err)
	require.NotNil(t, dashboard.Deliveries[0].DistanceKm)
	assert.InDelta(t, 111.2, *dashboard.Deliveries[0].DistanceKm, 0.5)
}

func TestDeliveryService_UpdateStatus(t *testing.T) {
	t.Run("forward step", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		ctx := context.Background()
		current := &entity.Order{ID: "o1", CustomerID: "c-1", Status: entity.OrderStatusPickedUp}

		fx.api.EXPECT().ListAssignedDeliveries(mock.Anything).Return([]*entity.Order{current}, nil)
		fx.api.EXPECT().UpdateDeliveryStatus(mock.Anything, "o1", entity.OrderStatusInTransit).
			Return(&entity.Order{ID: "o1", CustomerID: "c-1", Status: entity.OrderStatusInTransit}, nil)
		fx.publisher.EXPECT().PublishEvent(ctx, mock.Anything).Return(nil)

		order, err := fx.service.UpdateStatus(ctx, fx.session, "o1", entity.OrderStatusInTransit)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusInTransit, order.Status)
	})

	t.Run("cannot jump to delivered", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		fx.api.EXPECT().ListAssignedDeliveries(mock.Anything).
			Return([]*entity.Order{{ID: "o1", Status: entity.OrderStatusShipped}}, nil)

		_, err := fx.service.UpdateStatus(context.Background(), fx.session, "o1", entity.OrderStatusDelivered)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})
}

func TestDeliveryService_ReportLocation(t *testing.T) {
	fx := createTestDeliveryService(t)
	point := entity.GeoPoint{Lat: 25.03, Lng: 121.56}

	fx.api.EXPECT().ReportDeliveryLocation(mock.Anything, "o1", point).Return(nil)

	require.NoError(t, fx.service.ReportLocation(context.Background(), fx.session, "o1", point))

	err := fx.service.ReportLocation(context.Background(), fx.session, "o1", entity.GeoPoint{Lat: 91})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeliveryService_ScanHandoff(t *testing.T) {
	t.Run("valid code marks picked up", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		ctx := context.Background()

		fx.qrcode.EXPECT().ParseHandoffQR("code").Return(&service.HandoffPayload{Type: "handoff", OrderID: "o1", VendorID: "v-1"}, nil)
		fx.api.EXPECT().ListAssignedDeliveries(mock.Anything).
			Return([]*entity.Order{{ID: "o1", VendorID: "v-1", CustomerID: "c-1", Status: entity.OrderStatusShipped}}, nil)
		fx.api.EXPECT().UpdateDeliveryStatus(mock.Anything, "o1", entity.OrderStatusPickedUp).
			Return(&entity.Order{ID: "o1", Status: entity.OrderStatusPickedUp}, nil)
		fx.publisher.EXPECT().PublishEvent(ctx, mock.MatchedBy(func(e *entity.StorefrontEvent) bool {
			return e.UserID == "c-1"
		})).Return(nil)

		order, err := fx.service.ScanHandoff(ctx, fx.session, " code ")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPickedUp, order.Status)
	})

	t.Run("tampered code", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		fx.qrcode.EXPECT().ParseHandoffQR("bad").Return(nil, errors.New("QR code signature mismatch"))

		_, err := fx.service.ScanHandoff(context.Background(), fx.session, "bad")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidHandoffCode)
	})

	t.Run("order of another courier", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		fx.qrcode.EXPECT().ParseHandoffQR("code").Return(&service.HandoffPayload{OrderID: "o2", VendorID: "v-1"}, nil)
		fx.api.EXPECT().ListAssignedDeliveries(mock.Anything).Return([]*entity.Order{{ID: "o1"}}, nil)

		_, err := fx.service.ScanHandoff(context.Background(), fx.session, "code")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidHandoffCode)
	})

	t.Run("code from another vendor", func(t *testing.T) {
		fx := createTestDeliveryService(t)
		fx.qrcode.EXPECT().ParseHandoffQR("code").Return(&service.HandoffPayload{OrderID: "o1", VendorID: "v-2"}, nil)
		fx.api.EXPECT().ListAssignedDeliveries(mock.Anything).
			Return([]*entity.Order{{ID: "o1", VendorID: "v-1", Status: entity.OrderStatusShipped}}, nil)

		_, err := fx.service.ScanHandoff(context.Background(), fx.session, "code")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidHandoffCode)
	})
}
