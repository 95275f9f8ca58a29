package storefront

import (
	"context"
	"net/http"

	"quickmart/internal/domain/entity"
)

func (c *Client) ListNotifications(ctx context.Context) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	if err := c.do(ctx, http.MethodGet, "notifications", nil, nil, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, escape("notifications", id, "read"), nil, nil, nil)
}
