package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickmart/config"
	apimiddleware "quickmart/internal/delivery/http/middleware"
	"quickmart/internal/delivery/http/response"
	"quickmart/internal/delivery/http/router"
	"quickmart/internal/delivery/http/router/handler"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	mockUsecase "quickmart/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo     *echo.Echo
	sessions *mockUsecase.MockSessionUsecase
	carts    *mockUsecase.MockCartUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := mockUsecase.NewMockSessionUsecase(t)
	carts := mockUsecase.NewMockCartUsecase(t)

	e := NewEcho(cfg, logger, apimiddleware.NewErrorMiddleware(logger))
	router.NewRouter(router.RouterParams{
		SessionHandler:    handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessions}),
		NavigationHandler: handler.NewNavigationHandler(handler.NavigationHandlerParams{NavigationUC: mockUsecase.NewMockNavigationUsecase(t)}),
		CatalogHandler:    handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: mockUsecase.NewMockCatalogUsecase(t)}),
		CartHandler: handler.NewCartHandler(handler.CartHandlerParams{
			CartUC: carts,
			Config: cfg,
			Logger: logger,
		}),
		CheckoutHandler:  handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: mockUsecase.NewMockCheckoutUsecase(t)}),
		OrderHandler:     handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t)}),
		MessagingHandler: handler.NewMessagingHandler(handler.MessagingHandlerParams{MessagingUC: mockUsecase.NewMockMessagingUsecase(t)}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
			NotificationUC: mockUsecase.NewMockNotificationUsecase(t),
			PushUC:         mockUsecase.NewMockPushUsecase(t),
		}),
		DeviceHandler:   handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t)}),
		VendorHandler:   handler.NewVendorHandler(handler.VendorHandlerParams{VendorUC: mockUsecase.NewMockVendorUsecase(t)}),
		DeliveryHandler: handler.NewDeliveryHandler(handler.DeliveryHandlerParams{DeliveryUC: mockUsecase.NewMockDeliveryUsecase(t)}),
		AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: mockUsecase.NewMockAdminUsecase(t)}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(sessions, logger),
	}).RegisterRoutes(e)

	return &testAPI{echo: e, sessions: sessions, carts: carts}
}

func (api *testAPI) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	require.NotNil(t, body.Error)

	return body
}

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAPI_CustomerRoutes(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/v1/cart", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := errorBody(t, rec)
		assert.Equal(t, "UNAUTHENTICATED", body.Error.Code)
		assert.NotEmpty(t, body.Meta.RequestID)
	})

	t.Run("expired session", func(t *testing.T) {
		api := newTestAPI(t)
		api.sessions.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrSessionExpired)

		rec := api.do(http.MethodGet, "/api/v1/cart", "stale")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "SESSION_EXPIRED", errorBody(t, rec).Error.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		api := newTestAPI(t)
		vendor := &entity.Session{ID: uuid.New(), UserID: "v-1", Role: entity.RoleVendor}
		api.sessions.EXPECT().Authenticate(mock.Anything, "vendor-token").Return(vendor, nil)

		rec := api.do(http.MethodGet, "/api/v1/cart", "vendor-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		body := errorBody(t, rec)
		assert.Equal(t, "ROLE_NOT_ALLOWED", body.Error.Code)
		assert.Empty(t, body.Error.Details)
	})

	t.Run("customer", func(t *testing.T) {
		api := newTestAPI(t)
		customer := &entity.Session{ID: uuid.New(), UserID: "c-1", Role: entity.RoleCustomer}
		api.sessions.EXPECT().Authenticate(mock.Anything, "customer-token").Return(customer, nil)
		api.carts.EXPECT().Get(mock.Anything, customer).Return(&entity.Cart{}, nil)

		rec := api.do(http.MethodGet, "/api/v1/cart", "customer-token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAPI_RoleGroups(t *testing.T) {
	api := newTestAPI(t)
	customer := &entity.Session{ID: uuid.New(), UserID: "c-1", Role: entity.RoleCustomer}
	api.sessions.EXPECT().Authenticate(mock.Anything, "customer-token").Return(customer, nil)

	for _, target := range []string{"/api/v1/vendor/dashboard", "/api/v1/delivery/dashboard", "/api/v1/admin/dashboard"} {
		rec := api.do(http.MethodGet, target, "customer-token")
		assert.Equal(t, http.StatusForbidden, rec.Code, target)
	}
}

func TestAPI_UnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", errorBody(t, rec).Error.Code)
}
