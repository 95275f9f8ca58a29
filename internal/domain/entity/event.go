package entity

import (
	"time"

	"github.com/google/uuid"
)

// StorefrontEvent is published when something a user should hear about happens.
type StorefrontEvent struct {
	EventID    uuid.UUID         `json:"event_id"`
	RequestID  string            `json:"request_id,omitempty"`
	Type       string            `json:"type"`
	UserID     string            `json:"user_id"` // recipient
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
