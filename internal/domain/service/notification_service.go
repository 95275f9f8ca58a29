package service

import (
	"context"
)

// PushMessage is the visible part of a push plus its data payload.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult summarises one multicast send.
type BatchResult struct {
	SuccessCount  int
	FailureCount  int
	MessageIDs    map[string]string // token -> provider message ID
	InvalidTokens []string          // tokens the provider reported as unregistered
	Failures      map[string]string // token -> error text
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends the message to every token, splitting into provider-sized batches
	SendBatchNotification(ctx context.Context, tokens []string, msg *PushMessage) (*BatchResult, error)
}
