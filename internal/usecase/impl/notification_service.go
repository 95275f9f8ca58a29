package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/domain/service"
	"quickmart/internal/usecase"

	"github.com/pkg/errors"
)

type notificationService struct {
	api    service.NotificationAPI
	logger *slog.Logger
}

// NewNotificationService proxies in-app notifications.
func NewNotificationService(api service.NotificationAPI, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		api:    api,
		logger: logger,
	}
}

func (s *notificationService) List(ctx context.Context, session *entity.Session) ([]*entity.Notification, error) {
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return nil, err
	}

	notifications, err := s.api.ListNotifications(apiCtx)
	if err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}

	notifications = withoutNil(notifications)
	slices.SortStableFunc(notifications, func(a, b *entity.Notification) int {
		if a.Read != b.Read {
			if !a.Read {
				return -1
			}

			return 1
		}

		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, session *entity.Session, notificationID string) error {
	apiCtx, err := apiContext(ctx, session)
	if err != nil {
		return err
	}
	if strings.TrimSpace(notificationID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("notification id is required")
	}

	if err := s.api.MarkNotificationRead(apiCtx, notificationID); err != nil {
		return errors.Wrap(err, "mark notification read")
	}

	return nil
}
