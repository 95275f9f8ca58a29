// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"quickmart/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationLogRepository records push deliveries.
type NotificationLogRepository interface {
	// BatchCreateNotificationLogs persists multiple log entries in one statement.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error

	// CountLogsByEvent returns how many deliveries were recorded for an event.
	// The worker uses it to skip redelivered events.
	CountLogsByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)

	// FindLogsByUser lists the most recent deliveries to a user.
	FindLogsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.NotificationLog, error)
}
