package impl

import (
	"context"
	"testing"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/repository"
	mockRepo "quickmart/internal/mocks/repository"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, discardLogger())

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, "c-1", "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, "c-1", deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "c-1", device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	existing := &entity.UserDevice{ID: uuid.New(), UserID: "c-1", FCMToken: "old-token", DeviceID: "device-123", IsActive: false}
	updated := &entity.UserDevice{ID: existing.ID, UserID: "c-1", FCMToken: "new-token", DeviceID: "device-123", IsActive: true}

	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, "c-1", "device-123").Return(existing, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new-token").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(updated, nil)

	device, err := fx.service.RegisterDevice(ctx, "c-1", &usecase.DeviceInfo{FCMToken: "new-token", DeviceID: "device-123", Platform: "web"})

	require.NoError(t, err)
	assert.Equal(t, "new-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_LookupError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, "c-1", "d").Return(nil, dbErr)

	_, err := fx.service.RegisterDevice(ctx, "c-1", &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "ios"})

	assert.ErrorIs(t, err, dbErr)
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: "c-1"}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "fresh").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, "c-1", deviceID, "fresh"))
	})

	t.Run("someone else's device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: "c-2"}, nil)

		err := fx.service.UpdateFCMToken(ctx, "c-1", deviceID, "fresh")

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("missing device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, "c-1", deviceID, "fresh")

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: "c-1"}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, "c-1", deviceID))
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: "c-1"}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "c-1").Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, "c-1")

	require.NoError(t, err)
	assert.Equal(t, devices, got)
}
