package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quickmart/config"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/infra/pubsub"
	mockUsecase "quickmart/internal/mocks/usecase"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, pubsubCfg *config.PubSubConfig) (*PushHandler, *mockUsecase.MockPushUsecase) {
	t.Helper()

	pushUC := mockUsecase.NewMockPushUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{PubSub: pubsubCfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushUC: pushUC,
	})

	return h, pushUC
}

func testEvent() *entity.StorefrontEvent {
	return &entity.StorefrontEvent{
		EventID:   uuid.New(),
		RequestID: "req-123",
		Type:      "order.status_changed",
		UserID:    "c-1",
		Title:     "Order shipped",
		Body:      "Your order is on the way",
	}
}

func pushBody(t *testing.T, event *entity.StorefrontEvent) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "projects/p/subscriptions/notifier")
	require.NoError(t, err)
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func TestHandlePush(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		h, pushUC := createTestPushHandler(t, nil)
		event := testEvent()

		pushUC.EXPECT().DeliverEvent(mock.Anything, mock.MatchedBy(func(got *entity.StorefrontEvent) bool {
			return got.EventID == event.EventID && got.UserID == "c-1"
		})).Return(&usecase.PushReport{Devices: 2, Sent: 2}, nil)

		rec := servePush(h, pushBody(t, event), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("retryable failure asks for redelivery", func(t *testing.T) {
		h, pushUC := createTestPushHandler(t, nil)
		pushUC.EXPECT().DeliverEvent(mock.Anything, mock.Anything).Return(nil, errors.New("fcm unavailable"))

		rec := servePush(h, pushBody(t, testEvent()), nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("invalid event is acknowledged", func(t *testing.T) {
		h, pushUC := createTestPushHandler(t, nil)
		pushUC.EXPECT().DeliverEvent(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("event needs an id and a recipient"))

		rec := servePush(h, pushBody(t, testEvent()), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data is acknowledged", func(t *testing.T) {
		h, _ := createTestPushHandler(t, nil)

		rec := servePush(h, `{"message":{"data":"not base64!","messageId":"1"}}`, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := createTestPushHandler(t, nil)

		rec := servePush(h, `{"message":`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlePush_TokenVerification(t *testing.T) {
	pubsubCfg := &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://notifier.example.com/push",
	}

	t.Run("missing token", func(t *testing.T) {
		h, _ := createTestPushHandler(t, pubsubCfg)

		rec := servePush(h, pushBody(t, testEvent()), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := createTestPushHandler(t, pubsubCfg)
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, pushBody(t, testEvent()), http.Header{"Authorization": {"Bearer tok"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, pushUC := createTestPushHandler(t, pubsubCfg)
		var gotAudience string
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}
		pushUC.EXPECT().DeliverEvent(mock.Anything, mock.Anything).Return(&usecase.PushReport{}, nil)

		rec := servePush(h, pushBody(t, testEvent()), http.Header{"Authorization": {"Bearer tok"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, pubsubCfg.PushAudience, gotAudience)
	})

	t.Run("local provider skips verification", func(t *testing.T) {
		h, _ := createTestPushHandler(t, &config.PubSubConfig{
			Provider:     constants.PubSubProviderLocal,
			PushAudience: "ignored",
		})

		assert.Empty(t, h.audience)
	})
}

func TestExtractRequestID(t *testing.T) {
	event := testEvent()
	msg, err := pubsub.NewPushMessage(event, "sub")
	require.NoError(t, err)

	assert.Equal(t, "req-123", extractRequestID(context.Background(), msg, event))

	msg.Message.Attributes = nil
	event.RequestID = ""
	generated := extractRequestID(context.Background(), msg, event)
	_, err = uuid.Parse(generated)
	assert.NoError(t, err)
}
