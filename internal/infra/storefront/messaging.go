package storefront

import (
	"context"
	"net/http"
	"net/url"

	"quickmart/internal/domain/entity"
)

func (c *Client) ListDirectory(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	values := url.Values{"role": []string{role.String()}}

	var users []*entity.User
	if err := c.do(ctx, http.MethodGet, "users/directory", values, nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// ListMessages returns every message the current account sent or received.
func (c *Client) ListMessages(ctx context.Context) ([]*entity.Message, error) {
	var messages []*entity.Message
	if err := c.do(ctx, http.MethodGet, "messages", nil, nil, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

func (c *Client) GetConversation(ctx context.Context, peerID string) ([]*entity.Message, error) {
	var messages []*entity.Message
	if err := c.do(ctx, http.MethodGet, escape("messages/conversation", peerID), nil, nil, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, receiverID, content string) (*entity.Message, error) {
	body := map[string]string{"receiver_id": receiverID, "content": content}

	var message entity.Message
	if err := c.do(ctx, http.MethodPost, "messages", nil, body, &message); err != nil {
		return nil, err
	}

	return &message, nil
}
