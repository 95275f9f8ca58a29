package handler

import (
	"net/http"
	"testing"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	mockUsecase "quickmart/internal/mocks/usecase"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	t.Run("unknown platform", func(t *testing.T) {
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t)})
		c, rec := newContext(http.MethodPost, "/api/v1/devices", `{"fcm_token":"tok","device_id":"d1","platform":"palm"}`)
		signedIn(c, customerSession())

		require.NoError(t, h.RegisterDevice(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("registers for the session user", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC})
		c, rec := newContext(http.MethodPost, "/api/v1/devices", `{"fcm_token":"tok","device_id":"d1","platform":"web"}`)
		signedIn(c, customerSession())

		deviceUC.EXPECT().RegisterDevice(mock.Anything, "c-1", &usecase.DeviceInfo{
			FCMToken: "tok", DeviceID: "d1", Platform: "web",
		}).Return(&entity.UserDevice{ID: uuid.New(), UserID: "c-1", FCMToken: "tok"}, nil)

		require.NoError(t, h.RegisterDevice(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t)})
		c, rec := newContext(http.MethodDelete, "/api/v1/devices/xyz", "")
		c.SetParamNames("id")
		c.SetParamValues("xyz")
		signedIn(c, customerSession())

		require.NoError(t, h.DeactivateDevice(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	})

	t.Run("someone else's device", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC})
		id := uuid.New()
		c, rec := newContext(http.MethodDelete, "/api/v1/devices/"+id.String(), "")
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		signedIn(c, customerSession())

		deviceUC.EXPECT().DeactivateDevice(mock.Anything, "c-1", id).Return(domainerrors.ErrDeviceNotFound)

		require.NoError(t, h.DeactivateDevice(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestNotificationHandler_PushHistory(t *testing.T) {
	pushUC := mockUsecase.NewMockPushUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		NotificationUC: mockUsecase.NewMockNotificationUsecase(t),
		PushUC:         pushUC,
	})
	c, rec := newContext(http.MethodGet, "/api/v1/notifications/push-history?limit=5&offset=10", "")
	signedIn(c, customerSession())

	pushUC.EXPECT().History(mock.Anything, "c-1", 5, 10).Return([]*entity.NotificationLog{}, nil)

	require.NoError(t, h.PushHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{
		NotificationUC: notificationUC,
		PushUC:         mockUsecase.NewMockPushUsecase(t),
	})
	session := customerSession()
	c, rec := newContext(http.MethodPost, "/api/v1/notifications/n-1/read", "")
	c.SetParamNames("id")
	c.SetParamValues("n-1")
	signedIn(c, session)

	notificationUC.EXPECT().MarkRead(mock.Anything, session, "n-1").Return(nil)

	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
