package usecase

import (
	"context"

	"quickmart/internal/domain/entity"
)

// NotificationUsecase proxies in-app notifications.
type NotificationUsecase interface {
	// List returns unread notifications first, newest first within each group.
	List(ctx context.Context, session *entity.Session) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, session *entity.Session, notificationID string) error
}

// PushReport summarizes one event delivery.
type PushReport struct {
	Devices     int  `json:"devices"`
	Sent        int  `json:"sent"`
	Failed      int  `json:"failed"`
	Deactivated int  `json:"deactivated"`
	Duplicate   bool `json:"duplicate"`
}

// PushUsecase fans storefront events out to a user's devices.
type PushUsecase interface {
	// DeliverEvent pushes event to every active device of its recipient. Events that
	// already have delivery logs are skipped.
	DeliverEvent(ctx context.Context, event *entity.StorefrontEvent) (*PushReport, error)

	// History lists pushes recorded for a user.
	History(ctx context.Context, userID string, limit, offset int) ([]*entity.NotificationLog, error)
}
