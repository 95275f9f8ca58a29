// Package payment confirms payment intents with Stripe.
package payment

import (
	"context"

	"quickmart/config"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// intentAPI is the slice of the Stripe payment intent API the gateway needs.
type intentAPI interface {
	Confirm(id string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type packageIntents struct{}

func (packageIntents) Confirm(id string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
	return paymentintent.Confirm(id, params)
}

func (packageIntents) Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.Get(id, params)
}

type stripeGateway struct {
	intents        intentAPI
	publishableKey string
	enabled        bool
}

// NewStripeGateway configures the Stripe key. Without a key every confirmation
// fails with ErrPaymentUnavailable, the rest of the storefront keeps working.
func NewStripeGateway(cfg *config.Config) service.PaymentGateway {
	if cfg.Payment.SecretKey != "" {
		stripe.Key = cfg.Payment.SecretKey
	}

	return &stripeGateway{
		intents:        packageIntents{},
		publishableKey: cfg.Payment.PublishableKey,
		enabled:        cfg.Payment.SecretKey != "",
	}
}

func (g *stripeGateway) ConfirmPayment(ctx context.Context, paymentIntentID, paymentMethodID string) (*service.PaymentConfirmation, error) {
	if !g.enabled {
		return nil, errors.WithStack(domainerrors.ErrPaymentUnavailable)
	}
	if paymentIntentID == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("payment intent id is required"))
	}

	var (
		intent *stripe.PaymentIntent
		err    error
	)
	if paymentMethodID != "" {
		params := &stripe.PaymentIntentConfirmParams{
			PaymentMethod: stripe.String(paymentMethodID),
		}
		params.Context = ctx
		intent, err = g.intents.Confirm(paymentIntentID, params)
	} else {
		params := &stripe.PaymentIntentParams{}
		params.Context = ctx
		intent, err = g.intents.Get(paymentIntentID, params)
	}
	if err != nil {
		return nil, mapStripeError(err)
	}

	return &service.PaymentConfirmation{
		PaymentIntentID: intent.ID,
		Status:          string(intent.Status),
		Amount:          intent.Amount,
		Currency:        string(intent.Currency),
	}, nil
}

func (g *stripeGateway) PublishableKey() string {
	return g.publishableKey
}

// mapStripeError turns card declines into a payment error the customer can act on.
func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Type == stripe.ErrorTypeCard {
			return errors.WithStack(domainerrors.ErrPaymentNotCompleted.WithDetails(stripeErr.Msg))
		}

		return errors.WithStack(domainerrors.ErrPaymentUnavailable.WithDetails(stripeErr.Msg))
	}

	return errors.Wrap(err, "stripe confirm payment intent")
}
