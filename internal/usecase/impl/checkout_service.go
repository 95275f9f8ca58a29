package impl

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"quickmart/config"
	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"
	"quickmart/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type checkoutService struct {
	orders    service.OrderAPI
	carts     usecase.CartUsecase
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	validate  *validator.Validate
	currency  string
	now       func() time.Time
	logger    *slog.Logger
}

// NewCheckoutService creates the checkout sequence.
func NewCheckoutService(
	cfg *config.Config,
	orders service.OrderAPI,
	carts usecase.CartUsecase,
	gateway service.PaymentGateway,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	currency := "usd"
	if cfg.Payment != nil && cfg.Payment.Currency != "" {
		currency = cfg.Payment.Currency
	}

	return &checkoutService{
		orders:    orders,
		carts:     carts,
		gateway:   gateway,
		publisher: publisher,
		validate:  newValidator(),
		currency:  currency,
		now:       time.Now,
		logger:    logger,
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "min":
			parts = append(parts, fe.Field()+" is too short")
		case "max":
			parts = append(parts, fe.Field()+" is too long")
		default:
			parts = append(parts, fe.Field()+" is invalid")
		}
	}

	return strings.Join(parts, "; ")
}

func stepError(step usecase.CheckoutStep, err error) error {
	return &usecase.CheckoutStepError{Step: step, Err: err}
}

func normalizeAddress(address *entity.ShippingAddress) *entity.ShippingAddress {
	out := *address
	for _, field := range []*string{
		&out.FullName, &out.Line1, &out.Line2, &out.City,
		&out.State, &out.PostalCode, &out.Country, &out.Phone,
	} {
		*field = strings.TrimSpace(*field)
	}

	return &out
}

// StartCheckout places a pending order for the current cart and opens its payment intent.
func (s *checkoutService) StartCheckout(ctx context.Context, session *entity.Session, address *entity.ShippingAddress) (*usecase.CheckoutResult, error) {
	if err := requireRole(session, entity.RoleCustomer); err != nil {
		return nil, err
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if address == nil {
		return nil, stepError(usecase.CheckoutStepValidateAddress, domainerrors.ErrValidationFailed.WithDetails("shipping address is required"))
	}
	address = normalizeAddress(address)
	if err := s.validate.Struct(address); err != nil {
		return nil, stepError(usecase.CheckoutStepValidateAddress, domainerrors.ErrValidationFailed.WithDetails(describeValidation(err)))
	}
	if address.Location != nil && !address.Location.Valid() {
		return nil, stepError(usecase.CheckoutStepValidateAddress, domainerrors.ErrValidationFailed.WithDetails("location is out of range"))
	}

	cart, err := s.carts.Refresh(ctx, session)
	if err != nil {
		return nil, stepError(usecase.CheckoutStepLoadCart, err)
	}
	if cart.IsEmpty() {
		return nil, stepError(usecase.CheckoutStepLoadCart, domainerrors.ErrEmptyCart)
	}

	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order, err := s.orders.CreateOrder(apiCtx, &service.CreateOrderRequest{
		ShippingAddress: *address,
		Items:           items,
	})
	if err != nil {
		return nil, stepError(usecase.CheckoutStepCreateOrder, err)
	}

	intent, err := s.orders.CreatePaymentIntent(apiCtx, order.ID)
	if err != nil {
		return nil, stepError(usecase.CheckoutStepPaymentIntent, err)
	}
	if intent == nil || intent.ClientSecret == "" {
		return nil, stepError(usecase.CheckoutStepPaymentIntent, domainerrors.ErrPaymentUnavailable.WithDetails("no client secret returned"))
	}

	total := order.Total
	if total <= 0 {
		total = cart.Total()
	}

	logger.Info("Checkout started",
		slog.String("order_id", order.ID),
		slog.Int("items", len(items)),
		slog.Float64("total", total),
	)

	return &usecase.CheckoutResult{
		Order:          order,
		ClientSecret:   intent.ClientSecret,
		PublishableKey: s.gateway.PublishableKey(),
		Total:          total,
	}, nil
}

// ConfirmPayment settles the payment of a pending order and returns the customer's orders.
func (s *checkoutService) ConfirmPayment(ctx context.Context, session *entity.Session, confirmation *usecase.PaymentConfirmation) ([]*entity.Order, error) {
	if err := requireRole(session, entity.RoleCustomer); err != nil {
		return nil, err
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if confirmation == nil || strings.TrimSpace(confirmation.OrderID) == "" {
		return nil, stepError(usecase.CheckoutStepConfirmPayment, domainerrors.ErrValidationFailed.WithDetails("order id is required"))
	}
	intentID := confirmation.PaymentIntentID
	if intentID == "" {
		intentID = PaymentIntentIDFromSecret(confirmation.ClientSecret)
	}
	if intentID == "" {
		return nil, stepError(usecase.CheckoutStepConfirmPayment, domainerrors.ErrValidationFailed.WithDetails("payment intent id or client secret is required"))
	}

	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	payment, err := s.gateway.ConfirmPayment(ctx, intentID, confirmation.PaymentMethodID)
	if err != nil {
		return nil, stepError(usecase.CheckoutStepConfirmPayment, err)
	}
	if !payment.Completed() {
		return nil, stepError(usecase.CheckoutStepConfirmPayment, domainerrors.ErrPaymentNotCompleted.WithDetails("payment status "+payment.Status))
	}

	order, err := s.orders.ConfirmOrderPayment(apiCtx, confirmation.OrderID, intentID)
	if err != nil {
		return nil, stepError(usecase.CheckoutStepConfirmOrder, err)
	}

	if err := s.carts.Clear(ctx, session); err != nil {
		logger.Warn("Failed to clear cart after payment",
			slog.String("order_id", confirmation.OrderID),
			slog.Any("error", err),
		)
	}

	s.announce(ctx, session, order, payment)

	orders, err := s.orders.ListOrders(apiCtx)
	if err != nil {
		return nil, stepError(usecase.CheckoutStepListOrders, err)
	}

	logger.Info("Payment confirmed",
		slog.String("order_id", confirmation.OrderID),
		slog.String("payment_intent_id", intentID),
		slog.String("status", payment.Status),
	)

	return orders, nil
}

// announce tells the customer, and the vendor when known, that the order went through.
func (s *checkoutService) announce(ctx context.Context, session *entity.Session, order *entity.Order, payment *service.PaymentConfirmation) {
	if order == nil {
		return
	}

	amount := order.TotalCents()
	currency := s.currency
	if payment.Amount > 0 {
		amount = payment.Amount
	}
	if payment.Currency != "" {
		currency = payment.Currency
	}

	data := map[string]string{
		"order_id": order.ID,
		"status":   string(order.Status),
	}
	now := s.now()
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	publishEvent(ctx, s.publisher, logger, newEvent(ctx, constants.EventOrderPlaced, session.UserID,
		"Order placed",
		"Order "+util.ShortID(order.ID)+" is paid: "+util.FormatMoney(amount, currency),
		data, now))

	if order.VendorID != "" {
		publishEvent(ctx, s.publisher, logger, newEvent(ctx, constants.EventOrderPlaced, order.VendorID,
			"New order",
			"Order "+util.ShortID(order.ID)+" is ready to process",
			data, now))
	}
}

// PaymentIntentIDFromSecret extracts "pi_x" from a client secret "pi_x_secret_y".
func PaymentIntentIDFromSecret(secret string) string {
	id, _, found := strings.Cut(secret, "_secret_")
	if !found || id == "" {
		return ""
	}

	return id
}
