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

func TestOrderHandler_List(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	session := customerSession()
	c, rec := newContext(http.MethodGet, "/api/v1/orders", "")
	signedIn(c, session)

	orderUC.EXPECT().ListOrders(mock.Anything, session).Return([]*entity.Order{
		{ID: "o-2", Status: entity.OrderStatusShipped},
		{ID: "o-1", Status: entity.OrderStatusDelivered},
	}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]*entity.Order](t, rec), 2)
}

func TestOrderHandler_Cancel(t *testing.T) {
	t.Run("not cancellable", func(t *testing.T) {
		orderUC := mockUsecase.NewMockOrderUsecase(t)
		h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
		session := customerSession()
		c, rec := newContext(http.MethodPost, "/api/v1/orders/o-1/cancel", "")
		c.SetParamNames("id")
		c.SetParamValues("o-1")
		signedIn(c, session)

		orderUC.EXPECT().CancelOrder(mock.Anything, session, "o-1").Return(nil, domainerrors.ErrInvalidStatusTransition)

		require.NoError(t, h.Cancel(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("cancelled", func(t *testing.T) {
		orderUC := mockUsecase.NewMockOrderUsecase(t)
		h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
		session := customerSession()
		c, rec := newContext(http.MethodPost, "/api/v1/orders/o-1/cancel", "")
		c.SetParamNames("id")
		c.SetParamValues("o-1")
		signedIn(c, session)

		orderUC.EXPECT().CancelOrder(mock.Anything, session, "o-1").
			Return(&entity.Order{ID: "o-1", Status: entity.OrderStatusCancelled}, nil)

		require.NoError(t, h.Cancel(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, entity.OrderStatusCancelled, decodeData[*entity.Order](t, rec).Status)
	})
}

func TestOrderHandler_Get_RequiresSession(t *testing.T) {
	h := NewOrderHandler(OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t)})
	c, rec := newContext(http.MethodGet, "/api/v1/orders/o-1", "")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
