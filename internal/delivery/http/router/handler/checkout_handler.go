package handler

import (
	"quickmart/internal/delivery/http/response"
	"quickmart/internal/domain/entity"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
}

// CheckoutHandler runs the two halves of checkout: placing the order and paying for it.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: params.CheckoutUC}
}

// StartCheckoutRequest carries the shipping address. The address rules are
// enforced by checkout so failures are attributed to validate_address.
type StartCheckoutRequest struct {
	Address *entity.ShippingAddress `json:"address"`
}

// ConfirmPaymentRequest represents the request body for confirming a payment
type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret" validate:"required_without=PaymentIntentID"`
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

// Start handles POST /api/v1/checkout
func (h *CheckoutHandler) Start(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req StartCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid checkout input")
	}

	result, err := h.checkoutUC.StartCheckout(c.Request().Context(), session, req.Address)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, result)
}

// Confirm handles POST /api/v1/checkout/:orderId/confirm and answers with the
// customer's refreshed order list.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ConfirmPaymentRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	orders, err := h.checkoutUC.ConfirmPayment(c.Request().Context(), session, &usecase.PaymentConfirmation{
		OrderID:         c.Param("orderId"),
		PaymentIntentID: req.PaymentIntentID,
		ClientSecret:    req.ClientSecret,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}
