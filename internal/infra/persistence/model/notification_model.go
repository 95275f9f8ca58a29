package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// One row per (event, device) push attempt.
type NotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType    string    `gorm:"type:varchar(64);not null"`
	UserID       string    `gorm:"type:varchar(64);not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       string    `gorm:"type:text;not null;default:'sent'"`
	FCMMessageID string    `gorm:"type:text"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
