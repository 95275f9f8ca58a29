package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"quickmart/config"
	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/infra/pubsub"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub push deliveries into device notifications.
type PushHandler struct {
	audience string
	validate tokenValidator
	logger   *slog.Logger
	pushUC   usecase.PushUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	PushUC usecase.PushUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. OIDC verification is on
// for the google provider whenever a push audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if ps := params.Config.PubSub; ps != nil && ps.Provider == constants.PubSubProviderGoogle {
		audience = ps.PushAudience
	}

	return &PushHandler{
		audience: audience,
		validate: idtoken.Validate,
		logger:   params.Logger,
		pushUC:   params.PushUC,
	}
}

// HandlePush handles POST /push.
// 200 acknowledges the message, including ones that can never succeed; 503 asks for a retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Dropping undecodable event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.EventID.String()),
		slog.String("event_type", event.Type),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	report, err := h.pushUC.DeliverEvent(ctx, event)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			reqLogger.Warn("[Worker] Dropping invalid event", slog.Any("error", err))

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to deliver event", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Event delivered",
		slog.Int("devices", report.Devices),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("deactivated", report.Deactivated),
		slog.Bool("duplicate", report.Duplicate),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound
// request, and generates one as a last resort.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PubSubPushMessage, event *entity.StorefrontEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyToken checks the OIDC token Pub/Sub attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}

	payload, err := h.validate(req.Context(), strings.TrimPrefix(authHeader, bearerPrefix), h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if !slices.Contains(googleIssuers, payload.Issuer) {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
