package postgres

import (
	"context"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/repository"
	"quickmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationLogBatchSize = 100

type notificationLogRepository struct {
	db *gorm.DB
}

// NewNotificationLogRepository is the constructor for notificationLogRepository.
func NewNotificationLogRepository(db *gorm.DB) repository.NotificationLogRepository {
	return &notificationLogRepository{
		db: db,
	}
}

// BatchCreateNotificationLogs persists multiple log entries in batches.
func (repo *notificationLogRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification log information in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// CountLogsByEvent returns how many deliveries were recorded for an event.
func (repo *notificationLogRepository) CountLogsByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationLogModel{}).
		Where("event_id = ?", eventID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notification logs")
	}

	return count, nil
}

// FindLogsByUser lists the most recent deliveries to a user.
func (repo *notificationLogRepository) FindLogsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.NotificationLog, error) {
	var logModels []*model.NotificationLogModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification logs by user")
	}

	logs := make([]*entity.NotificationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toNotificationLogDomain(logM))
	}

	return logs, nil
}

func toNotificationLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	if data == nil {
		return nil
	}

	return &entity.NotificationLog{
		ID:           data.ID,
		EventID:      data.EventID,
		EventType:    data.EventType,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Status:       data.Status,
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}

func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:           data.ID,
		EventID:      data.EventID,
		EventType:    data.EventType,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Status:       data.Status,
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
