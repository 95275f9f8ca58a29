package impl

import (
	"context"
	"testing"
	"time"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/repository"
	"quickmart/internal/domain/service"
	mockRepo "quickmart/internal/mocks/repository"
	mockSvc "quickmart/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushServiceFixtures struct {
	service   *pushService
	txManager *mockRepo.MockTransactionManager
	devices   *mockRepo.MockDeviceRepository
	logs      *mockRepo.MockNotificationLogRepository
	notifier  *mockSvc.MockNotificationService
}

func createTestPushService(t *testing.T) pushServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	devices := mockRepo.NewMockDeviceRepository(t)
	logs := mockRepo.NewMockNotificationLogRepository(t)
	notifier := mockSvc.NewMockNotificationService(t)

	svc := NewPushService(txManager, devices, logs, notifier, discardLogger()).(*pushService)
	svc.now = func() time.Time { return testNow }

	return pushServiceFixtures{
		service:   svc,
		txManager: txManager,
		devices:   devices,
		logs:      logs,
		notifier:  notifier,
	}
}

func testEvent() *entity.StorefrontEvent {
	return &entity.StorefrontEvent{
		EventID: uuid.New(),
		Type:    "order.placed",
		UserID:  "c-1",
		Title:   "Order placed",
		Body:    "Order #ord_1 is paid",
		Data:    map[string]string{"order_id": "ord_1"},
	}
}

// expectTransaction runs fn against transactional mocks and returns them for expectations.
func expectTransaction(t *testing.T, fx pushServiceFixtures, setup func(devices *mockRepo.MockDeviceRepository, logs *mockRepo.MockNotificationLogRepository)) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txDevices := mockRepo.NewMockDeviceRepository(t)
			txLogs := mockRepo.NewMockNotificationLogRepository(t)
			factory.EXPECT().NewDeviceRepository().Return(txDevices).Maybe()
			factory.EXPECT().NewNotificationLogRepository().Return(txLogs).Maybe()
			setup(txDevices, txLogs)

			return fn(factory)
		})
}

func TestPushService_DeliverEvent(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	event := testEvent()
	phone := &entity.UserDevice{ID: uuid.New(), UserID: "c-1", FCMToken: "tok-phone"}
	tablet := &entity.UserDevice{ID: uuid.New(), UserID: "c-1", FCMToken: "tok-tablet"}
	stale := &entity.UserDevice{ID: uuid.New(), UserID: "c-1", FCMToken: "tok-stale"}

	fx.logs.EXPECT().CountLogsByEvent(ctx, event.EventID).Return(0, nil)
	fx.devices.EXPECT().FindActiveDevicesByUser(ctx, "c-1").Return([]*entity.UserDevice{phone, tablet, stale}, nil)
	fx.notifier.EXPECT().SendBatchNotification(ctx, []string{"tok-phone", "tok-tablet", "tok-stale"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
		return msg.Title == "Order placed" && msg.Data["event_id"] == event.EventID.String() && msg.Data["order_id"] == "ord_1"
	})).Return(&service.BatchResult{
		SuccessCount:  2,
		FailureCount:  1,
		MessageIDs:    map[string]string{"tok-phone": "m-1", "tok-tablet": "m-2"},
		InvalidTokens: []string{"tok-stale"},
		Failures:      map[string]string{"tok-stale": "registration-token-not-registered"},
	}, nil)
	expectTransaction(t, fx, func(devices *mockRepo.MockDeviceRepository, logs *mockRepo.MockNotificationLogRepository) {
		devices.EXPECT().DeactivateByTokens(ctx, []string{"tok-stale"}).Return(1, nil)
		logs.EXPECT().BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(entries []*entity.NotificationLog) bool {
			return len(entries) == 3 &&
				entries[0].Status == entity.NotificationStatusSent && entries[0].FCMMessageID == "m-1" &&
				entries[2].Status == entity.NotificationStatusFailed && entries[2].DeviceID == stale.ID &&
				entries[2].EventID == event.EventID
		})).Return(nil)
	})

	report, err := fx.service.DeliverEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Devices)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Deactivated)
	assert.False(t, report.Duplicate)
}

func TestPushService_DeliverEvent_Duplicate(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	event := testEvent()

	fx.logs.EXPECT().CountLogsByEvent(ctx, event.EventID).Return(2, nil)

	report, err := fx.service.DeliverEvent(ctx, event)

	require.NoError(t, err)
	assert.True(t, report.Duplicate)
}

func TestPushService_DeliverEvent_NoDevices(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	event := testEvent()

	fx.logs.EXPECT().CountLogsByEvent(ctx, event.EventID).Return(0, nil)
	fx.devices.EXPECT().FindActiveDevicesByUser(ctx, "c-1").Return(nil, nil)

	report, err := fx.service.DeliverEvent(ctx, event)

	require.NoError(t, err)
	assert.Zero(t, report.Devices)
}

func TestPushService_DeliverEvent_SendFailsEntirely(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	event := testEvent()
	sendErr := errors.New("fcm unavailable")

	fx.logs.EXPECT().CountLogsByEvent(ctx, event.EventID).Return(0, nil)
	fx.devices.EXPECT().FindActiveDevicesByUser(ctx, "c-1").
		Return([]*entity.UserDevice{{ID: uuid.New(), FCMToken: "tok"}}, nil)
	fx.notifier.EXPECT().SendBatchNotification(ctx, []string{"tok"}, mock.Anything).
		Return(&service.BatchResult{MessageIDs: map[string]string{}}, sendErr)

	_, err := fx.service.DeliverEvent(ctx, event)

	assert.ErrorIs(t, err, sendErr)
}

func TestPushService_DeliverEvent_PartialSendIsRecorded(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	event := testEvent()
	sendErr := errors.New("second batch failed")

	fx.logs.EXPECT().CountLogsByEvent(ctx, event.EventID).Return(0, nil)
	fx.devices.EXPECT().FindActiveDevicesByUser(ctx, "c-1").Return([]*entity.UserDevice{
		{ID: uuid.New(), FCMToken: "a"},
		{ID: uuid.New(), FCMToken: "b"},
		{ID: uuid.New(), FCMToken: "a"},
	}, nil)
	fx.notifier.EXPECT().SendBatchNotification(ctx, []string{"a", "b"}, mock.Anything).
		Return(&service.BatchResult{SuccessCount: 1, MessageIDs: map[string]string{"a": "m-a"}}, sendErr)
	expectTransaction(t, fx, func(_ *mockRepo.MockDeviceRepository, logs *mockRepo.MockNotificationLogRepository) {
		logs.EXPECT().BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(entries []*entity.NotificationLog) bool {
			return len(entries) == 2 && entries[1].ErrorMessage == "batch send error: second batch failed"
		})).Return(nil)
	})

	report, err := fx.service.DeliverEvent(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
}

func TestPushService_DeliverEvent_RejectsIncompleteEvent(t *testing.T) {
	fx := createTestPushService(t)

	_, err := fx.service.DeliverEvent(context.Background(), &entity.StorefrontEvent{EventID: uuid.New()})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPushService_History_ClampsPaging(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()

	fx.logs.EXPECT().FindLogsByUser(ctx, "c-1", maxHistoryLimit, 0).Return([]*entity.NotificationLog{}, nil)

	_, err := fx.service.History(ctx, "c-1", 1000, -5)

	require.NoError(t, err)
}
