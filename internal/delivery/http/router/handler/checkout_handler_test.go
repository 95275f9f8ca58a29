package handler

import (
	"net/http"
	"testing"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	mockUsecase "quickmart/internal/mocks/usecase"
	"quickmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutHandler_Start(t *testing.T) {
	body := `{"address":{"full_name":"Ann","line1":"1 Main St","city":"Leeds","postal_code":"LS1","country":"UK","phone":"0123456789"}}`

	t.Run("reports the failed step", func(t *testing.T) {
		checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
		h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})
		session := customerSession()
		c, rec := newContext(http.MethodPost, "/api/v1/checkout", body)
		signedIn(c, session)

		checkoutUC.EXPECT().StartCheckout(mock.Anything, session, mock.AnythingOfType("*entity.ShippingAddress")).
			Return(nil, &usecase.CheckoutStepError{Step: usecase.CheckoutStepLoadCart, Err: domainerrors.ErrEmptyCart})

		require.NoError(t, h.Start(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		info := decodeError(t, rec)
		assert.Equal(t, "EMPTY_CART", info.Code)
		assert.Equal(t, "load_cart", info.Step)
	})

	t.Run("passes the address through", func(t *testing.T) {
		checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
		h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})
		session := customerSession()
		c, rec := newContext(http.MethodPost, "/api/v1/checkout", body)
		signedIn(c, session)

		checkoutUC.EXPECT().StartCheckout(mock.Anything, session, mock.MatchedBy(func(a *entity.ShippingAddress) bool {
			return a.City == "Leeds" && a.Phone == "0123456789"
		})).Return(&usecase.CheckoutResult{
			Order:        &entity.Order{ID: "o-1", Status: entity.OrderStatusPending},
			ClientSecret: "pi_1_secret_2",
			Total:        12.5,
		}, nil)

		require.NoError(t, h.Start(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		result := decodeData[usecase.CheckoutResult](t, rec)
		assert.Equal(t, "pi_1_secret_2", result.ClientSecret)
		assert.Equal(t, "o-1", result.Order.ID)
	})
}

func TestCheckoutHandler_Confirm(t *testing.T) {
	t.Run("needs a payment method", func(t *testing.T) {
		h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: mockUsecase.NewMockCheckoutUsecase(t)})
		c, rec := newContext(http.MethodPost, "/api/v1/checkout/o-1/confirm", `{"client_secret":"pi_1_secret_2"}`)
		signedIn(c, customerSession())

		require.NoError(t, h.Confirm(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("confirms", func(t *testing.T) {
		checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
		h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC})
		session := customerSession()
		c, rec := newContext(http.MethodPost, "/api/v1/checkout/o-1/confirm",
			`{"client_secret":"pi_1_secret_2","payment_method_id":"pm_card_visa"}`)
		c.SetParamNames("orderId")
		c.SetParamValues("o-1")
		signedIn(c, session)

		checkoutUC.EXPECT().ConfirmPayment(mock.Anything, session, &usecase.PaymentConfirmation{
			OrderID:         "o-1",
			ClientSecret:    "pi_1_secret_2",
			PaymentMethodID: "pm_card_visa",
		}).Return([]*entity.Order{{ID: "o-1", Status: entity.OrderStatusPaid}}, nil)

		require.NoError(t, h.Confirm(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		orders := decodeData[[]*entity.Order](t, rec)
		require.Len(t, orders, 1)
		assert.Equal(t, entity.OrderStatusPaid, orders[0].Status)
	})
}
