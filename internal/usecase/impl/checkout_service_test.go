package impl

import (
	"context"
	"testing"
	"time"

	"quickmart/config"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	mockSvc "quickmart/internal/mocks/service"
	mockUsecase "quickmart/internal/mocks/usecase"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service   *checkoutService
	orders    *mockSvc.MockOrderAPI
	carts     *mockUsecase.MockCartUsecase
	gateway   *mockSvc.MockPaymentGateway
	publisher *mockSvc.MockEventPublisher
	session   *entity.Session
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	orders := mockSvc.NewMockOrderAPI(t)
	carts := mockUsecase.NewMockCartUsecase(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := &config.Config{Payment: &config.PaymentConfig{Currency: "usd"}}

	svc := NewCheckoutService(cfg, orders, carts, gateway, publisher, discardLogger()).(*checkoutService)
	svc.now = func() time.Time { return testNow }

	return checkoutServiceFixtures{
		service:   svc,
		orders:    orders,
		carts:     carts,
		gateway:   gateway,
		publisher: publisher,
		session:   &entity.Session{ID: uuid.New(), UserID: "c-1", Role: entity.RoleCustomer, Token: "up"},
	}
}

func validAddress() *entity.ShippingAddress {
	return &entity.ShippingAddress{
		FullName:   "Ada Lovelace",
		Line1:      "12 Analytical Row",
		City:       "London",
		PostalCode: "N1 7AA",
		Country:    "GB",
		Phone:      "+44 20 7946 0000",
	}
}

func requireStep(t *testing.T, err error, step usecase.CheckoutStep) {
	t.Helper()

	var stepErr *usecase.CheckoutStepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, step, stepErr.Step)
}

func TestCheckoutService_StartCheckout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	cart := twoLineCart()

	fx.carts.EXPECT().Refresh(ctx, fx.session).Return(cart, nil)
	fx.orders.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(req *service.CreateOrderRequest) bool {
		return len(req.Items) == 2 && req.Items[1].Quantity == 3 && req.ShippingAddress.City == "London"
	})).Return(&entity.Order{ID: "ord_1", Status: entity.OrderStatusPending}, nil)
	fx.orders.EXPECT().CreatePaymentIntent(mock.Anything, "ord_1").
		Return(&service.PaymentIntent{ClientSecret: "pi_123_secret_abc", Amount: 550}, nil)
	fx.gateway.EXPECT().PublishableKey().Return("pk_test")

	address := validAddress()
	address.City = "  London "
	result, err := fx.service.StartCheckout(ctx, fx.session, address)

	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", result.ClientSecret)
	assert.Equal(t, "pk_test", result.PublishableKey)
	assert.InDelta(t, 5.50, result.Total, 0.001)
	assert.Equal(t, "  London ", address.City, "caller's address must not be modified")
}

func TestCheckoutService_StartCheckout_InvalidAddress(t *testing.T) {
	fx := createTestCheckoutService(t)
	address := validAddress()
	address.Line1 = "   "
	address.Phone = "12"

	_, err := fx.service.StartCheckout(context.Background(), fx.session, address)

	requireStep(t, err, usecase.CheckoutStepValidateAddress)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "line1 is required")
	assert.Contains(t, err.Error(), "phone is too short")
}

func TestCheckoutService_StartCheckout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.carts.EXPECT().Refresh(ctx, fx.session).Return(&entity.Cart{}, nil)

	_, err := fx.service.StartCheckout(ctx, fx.session, validAddress())

	requireStep(t, err, usecase.CheckoutStepLoadCart)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_StartCheckout_PaymentIntentFails(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	apiErr := errors.New("stripe not configured upstream")

	fx.carts.EXPECT().Refresh(ctx, fx.session).Return(twoLineCart(), nil)
	fx.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(&entity.Order{ID: "ord_1"}, nil)
	fx.orders.EXPECT().CreatePaymentIntent(mock.Anything, "ord_1").Return(nil, apiErr)

	_, err := fx.service.StartCheckout(ctx, fx.session, validAddress())

	requireStep(t, err, usecase.CheckoutStepPaymentIntent)
	assert.ErrorIs(t, err, apiErr)
}

func TestCheckoutService_StartCheckout_RequiresCustomer(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.session.Role = entity.RoleDelivery

	_, err := fx.service.StartCheckout(context.Background(), fx.session, validAddress())

	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
}

func TestCheckoutService_ConfirmPayment_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	paid := &entity.Order{ID: "ord_1", VendorID: "v-9", Status: entity.OrderStatusPaid, Total: 5.5}
	listed := []*entity.Order{paid}

	fx.gateway.EXPECT().ConfirmPayment(ctx, "pi_123", "pm_card").
		Return(&service.PaymentConfirmation{PaymentIntentID: "pi_123", Status: service.PaymentStatusSucceeded, Amount: 550, Currency: "usd"}, nil)
	fx.orders.EXPECT().ConfirmOrderPayment(mock.Anything, "ord_1", "pi_123").Return(paid, nil)
	fx.carts.EXPECT().Clear(ctx, fx.session).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.MatchedBy(func(e *entity.StorefrontEvent) bool {
		return e.Type == constants.EventOrderPlaced && e.UserID == "c-1" && e.Body == "Order #ord_1 is paid: 5.50 USD"
	})).Return(nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.MatchedBy(func(e *entity.StorefrontEvent) bool {
		return e.UserID == "v-9"
	})).Return(errors.New("topic missing"))
	fx.orders.EXPECT().ListOrders(mock.Anything).Return(listed, nil)

	orders, err := fx.service.ConfirmPayment(ctx, fx.session, &usecase.PaymentConfirmation{
		OrderID:         "ord_1",
		ClientSecret:    "pi_123_secret_abc",
		PaymentMethodID: "pm_card",
	})

	require.NoError(t, err)
	assert.Equal(t, listed, orders)
}

func TestCheckoutService_ConfirmPayment_NotCompleted(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().ConfirmPayment(ctx, "pi_9", "").
		Return(&service.PaymentConfirmation{PaymentIntentID: "pi_9", Status: "requires_action"}, nil)

	_, err := fx.service.ConfirmPayment(ctx, fx.session, &usecase.PaymentConfirmation{OrderID: "ord_1", PaymentIntentID: "pi_9"})

	requireStep(t, err, usecase.CheckoutStepConfirmPayment)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotCompleted)
}

func TestCheckoutService_ConfirmPayment_ConfirmOrderFails(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	apiErr := domainerrors.NewUpstreamError(409, "POST", "/orders/ord_1/confirm-payment", "already paid")

	fx.gateway.EXPECT().ConfirmPayment(ctx, "pi_9", "").
		Return(&service.PaymentConfirmation{Status: service.PaymentStatusProcessing}, nil)
	fx.orders.EXPECT().ConfirmOrderPayment(mock.Anything, "ord_1", "pi_9").Return(nil, apiErr)

	_, err := fx.service.ConfirmPayment(ctx, fx.session, &usecase.PaymentConfirmation{OrderID: "ord_1", PaymentIntentID: "pi_9"})

	requireStep(t, err, usecase.CheckoutStepConfirmOrder)
	assert.ErrorIs(t, err, apiErr)
}

func TestCheckoutService_ConfirmPayment_MissingIntent(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.ConfirmPayment(context.Background(), fx.session, &usecase.PaymentConfirmation{OrderID: "ord_1", ClientSecret: "garbage"})

	requireStep(t, err, usecase.CheckoutStepConfirmPayment)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentIntentIDFromSecret(t *testing.T) {
	assert.Equal(t, "pi_3Mt", PaymentIntentIDFromSecret("pi_3Mt_secret_YrKJ"))
	assert.Empty(t, PaymentIntentIDFromSecret("pi_3Mt"))
	assert.Empty(t, PaymentIntentIDFromSecret("_secret_x"))
	assert.Empty(t, PaymentIntentIDFromSecret(""))
}
