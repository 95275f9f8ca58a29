package service

import "context"

// Payment intent statuses that let an order proceed.
const (
	PaymentStatusSucceeded  = "succeeded"
	PaymentStatusProcessing = "processing"
)

// PaymentConfirmation is the processor's answer to a confirmation.
type PaymentConfirmation struct {
	PaymentIntentID string `json:"payment_intent_id"`
	Status          string `json:"status"`
	Amount          int64  `json:"amount"` // minor units
	Currency        string `json:"currency"`
}

// Completed reports whether the payment went through or is settling.
func (p *PaymentConfirmation) Completed() bool {
	return p.Status == PaymentStatusSucceeded || p.Status == PaymentStatusProcessing
}

// PaymentGateway confirms payment intents created by the storefront API.
type PaymentGateway interface {
	// ConfirmPayment confirms the intent with the payment method, or only reads
	// its status when paymentMethodID is empty (the client already confirmed).
	ConfirmPayment(ctx context.Context, paymentIntentID, paymentMethodID string) (*PaymentConfirmation, error)

	// PublishableKey is handed to clients so they can collect card details.
	PublishableKey() string
}
