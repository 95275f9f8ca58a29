package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/repository"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type pushService struct {
	txManager repository.TransactionManager
	devices   repository.DeviceRepository
	logs      repository.NotificationLogRepository
	notifier  service.NotificationService
	now       func() time.Time
	logger    *slog.Logger
}

// NewPushService creates the worker-side push delivery service.
func NewPushService(
	txManager repository.TransactionManager,
	devices repository.DeviceRepository,
	logs repository.NotificationLogRepository,
	notifier service.NotificationService,
	logger *slog.Logger,
) usecase.PushUsecase {
	return &pushService{
		txManager: txManager,
		devices:   devices,
		logs:      logs,
		notifier:  notifier,
		now:       time.Now,
		logger:    logger,
	}
}

// DeliverEvent returns an error only when nothing was sent, so a redelivery can
// try again without pushing twice.
func (s *pushService) DeliverEvent(ctx context.Context, event *entity.StorefrontEvent) (*usecase.PushReport, error) {
	if event == nil || event.UserID == "" || event.EventID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event needs an id and a recipient")
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("event_id", event.EventID.String()),
		slog.String("event_type", event.Type),
	)

	delivered, err := s.logs.CountLogsByEvent(ctx, event.EventID)
	if err != nil {
		return nil, errors.Wrap(err, "count delivery logs")
	}
	if delivered > 0 {
		logger.Info("Event already delivered, skipping", slog.Int64("logs", delivered))

		return &usecase.PushReport{Duplicate: true}, nil
	}

	devices, err := s.devices.FindActiveDevicesByUser(ctx, event.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "find active devices")
	}
	if len(devices) == 0 {
		logger.Info("No active devices for recipient", slog.String("user_id", event.UserID))

		return &usecase.PushReport{}, nil
	}

	byToken := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken == "" {
			continue
		}
		if _, dup := byToken[device.FCMToken]; dup {
			continue
		}
		byToken[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	result, sendErr := s.notifier.SendBatchNotification(ctx, tokens, pushMessage(event))
	if sendErr != nil && (result == nil || len(result.MessageIDs) == 0) {
		return nil, errors.Wrap(sendErr, "send push notifications")
	}
	if result == nil {
		result = &service.BatchResult{}
	}

	report := &usecase.PushReport{Devices: len(tokens)}
	logs := s.buildLogs(event, tokens, byToken, result, sendErr)
	for _, entry := range logs {
		if entry.Status == entity.NotificationStatusSent {
			report.Sent++
		} else {
			report.Failed++
		}
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if len(result.InvalidTokens) > 0 {
			n, err := repos.NewDeviceRepository().DeactivateByTokens(ctx, result.InvalidTokens)
			if err != nil {
				return errors.Wrap(err, "deactivate invalid tokens")
			}
			report.Deactivated = int(n)
		}

		return repos.NewNotificationLogRepository().BatchCreateNotificationLogs(ctx, logs)
	})
	if err != nil {
		report.Deactivated = 0
		logger.Error("Failed to record push results", slog.Any("error", err))
	}

	logger.Info("Push delivery completed",
		slog.Int("devices", report.Devices),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("deactivated", report.Deactivated),
	)

	return report, nil
}

func pushMessage(event *entity.StorefrontEvent) *service.PushMessage {
	data := make(map[string]string, len(event.Data)+2)
	for k, v := range event.Data {
		data[k] = v
	}
	data["event_id"] = event.EventID.String()
	data["event_type"] = event.Type

	return &service.PushMessage{
		Title: event.Title,
		Body:  event.Body,
		Data:  data,
	}
}

// buildLogs records one entry per device token. Tokens the provider never answered
// for count as failed.
func (s *pushService) buildLogs(
	event *entity.StorefrontEvent,
	tokens []string,
	byToken map[string]*entity.UserDevice,
	result *service.BatchResult,
	sendErr error,
) []*entity.NotificationLog {
	now := s.now()
	logs := make([]*entity.NotificationLog, 0, len(tokens))
	for _, token := range tokens {
		device := byToken[token]
		entry := &entity.NotificationLog{
			ID:        uuid.New(),
			EventID:   event.EventID,
			EventType: event.Type,
			UserID:    event.UserID,
			DeviceID:  device.ID,
			SentAt:    now,
		}

		switch {
		case result.MessageIDs[token] != "":
			entry.Status = entity.NotificationStatusSent
			entry.FCMMessageID = result.MessageIDs[token]
		case result.Failures[token] != "":
			entry.Status = entity.NotificationStatusFailed
			entry.ErrorMessage = result.Failures[token]
		case sendErr != nil:
			entry.Status = entity.NotificationStatusFailed
			entry.ErrorMessage = fmt.Sprintf("batch send error: %v", sendErr)
		default:
			entry.Status = entity.NotificationStatusFailed
			entry.ErrorMessage = "no response from provider"
		}
		logs = append(logs, entry)
	}

	return logs
}

func (s *pushService) History(ctx context.Context, userID string, limit, offset int) ([]*entity.NotificationLog, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)
	offset = max(offset, 0)

	logs, err := s.logs.FindLogsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "find notification logs")
	}

	return logs, nil
}
