package usecase

import (
	"context"
	"fmt"

	"quickmart/internal/domain/entity"
)

// CheckoutStep names a stage of the checkout sequence.
type CheckoutStep string

// Checkout steps in the order they run.
const (
	CheckoutStepValidateAddress CheckoutStep = "validate_address"
	CheckoutStepLoadCart        CheckoutStep = "load_cart"
	CheckoutStepCreateOrder     CheckoutStep = "create_order"
	CheckoutStepPaymentIntent   CheckoutStep = "create_payment_intent"
	CheckoutStepConfirmPayment  CheckoutStep = "confirm_payment"
	CheckoutStepConfirmOrder    CheckoutStep = "confirm_order"
	CheckoutStepListOrders      CheckoutStep = "list_orders"
)

// CheckoutStepError reports the step a checkout failed in. Earlier steps are not undone.
type CheckoutStepError struct {
	Step CheckoutStep
	Err  error
}

func (e *CheckoutStepError) Error() string {
	return fmt.Sprintf("checkout failed at %s: %v", e.Step, e.Err)
}

func (e *CheckoutStepError) Unwrap() error {
	return e.Err
}

// CheckoutResult is what the payment page needs to collect a payment method.
type CheckoutResult struct {
	Order          *entity.Order `json:"order"`
	ClientSecret   string        `json:"client_secret"`
	PublishableKey string        `json:"publishable_key,omitempty"`
	Total          float64       `json:"total"`
}

// PaymentConfirmation identifies the payment to confirm for a pending order.
type PaymentConfirmation struct {
	OrderID         string
	PaymentIntentID string // derived from ClientSecret when empty
	ClientSecret    string
	PaymentMethodID string
}

// CheckoutUsecase runs the checkout sequence.
type CheckoutUsecase interface {
	// StartCheckout validates the address, places a pending order for the cart and
	// creates its payment intent.
	StartCheckout(ctx context.Context, session *entity.Session, address *entity.ShippingAddress) (*CheckoutResult, error)

	// ConfirmPayment confirms the payment, marks the order paid, clears the cart and
	// returns the customer's orders.
	ConfirmPayment(ctx context.Context, session *entity.Session, confirmation *PaymentConfirmation) ([]*entity.Order, error)
}
