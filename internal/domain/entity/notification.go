// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app notification held by the storefront API.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationLog represents a log entry for a single push sent to a user device.
type NotificationLog struct {
	ID           uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the log entry.
	EventID      uuid.UUID `json:"event_id"`       // The storefront event that triggered the push.
	EventType    string    `json:"event_type"`     // e.g. order.placed
	UserID       string    `json:"user_id"`        // Storefront account that received the push.
	DeviceID     uuid.UUID `json:"device_id"`      // The ID of the device that received the push.
	Status       string    `json:"status"`         // The status of the push (sent, failed).
	FCMMessageID string    `json:"fcm_message_id"` // The Firebase Cloud Messaging message ID.
	ErrorMessage string    `json:"error_message"`  // Error message if the push failed.
	SentAt       time.Time `json:"sent_at"`        // Timestamp of when the push was sent.
}

// Notification log statuses
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)
