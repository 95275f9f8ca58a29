package impl

import (
	"context"
	"testing"
	"time"

	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	mockSvc "quickmart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   *orderService
	api       *mockSvc.MockOrderAPI
	publisher *mockSvc.MockEventPublisher
	session   *entity.Session
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	api := mockSvc.NewMockOrderAPI(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewOrderService(api, publisher, discardLogger()).(*orderService)
	svc.now = func() time.Time { return testNow }

	return orderServiceFixtures{
		service:   svc,
		api:       api,
		publisher: publisher,
		session:   &entity.Session{ID: uuid.New(), UserID: "c-1", Role: entity.RoleCustomer, Token: "up"},
	}
}

func TestOrderService_ListOrders_NewestFirst(t *testing.T) {
	fx := createTestOrderService(t)
	old := &entity.Order{ID: "o1", CreatedAt: testNow.Add(-time.Hour)}
	recent := &entity.Order{ID: "o2", CreatedAt: testNow}

	fx.api.EXPECT().ListOrders(mock.Anything).Return([]*entity.Order{old, recent}, nil)

	orders, err := fx.service.ListOrders(context.Background(), fx.session)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Order{recent, old}, orders)
}

func TestOrderService_CancelOrder(t *testing.T) {
	t.Run("pending order is cancelled and vendor told", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		cancelled := &entity.Order{ID: "o1", VendorID: "v-1", CustomerID: "c-1", Status: entity.OrderStatusCancelled}

		fx.api.EXPECT().GetOrder(mock.Anything, "o1").Return(&entity.Order{ID: "o1", Status: entity.OrderStatusPending}, nil)
		fx.api.EXPECT().CancelOrder(mock.Anything, "o1").Return(cancelled, nil)
		fx.publisher.EXPECT().PublishEvent(ctx, mock.MatchedBy(func(e *entity.StorefrontEvent) bool {
			return e.UserID == "v-1" && e.Type == constants.EventOrderStatusChanged && e.Data["status"] == "cancelled"
		})).Return(nil)

		order, err := fx.service.CancelOrder(ctx, fx.session, "o1")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, order.Status)
	})

	t.Run("paid order cannot be cancelled by customer", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.api.EXPECT().GetOrder(mock.Anything, "o1").Return(&entity.Order{ID: "o1", Status: entity.OrderStatusPaid}, nil)

		_, err := fx.service.CancelOrder(context.Background(), fx.session, "o1")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})
}
