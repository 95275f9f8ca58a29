package service

import (
	"context"

	"quickmart/internal/domain/entity"
)

// EventPublisher defines the interface for publishing storefront events to a message queue
type EventPublisher interface {
	// PublishEvent publishes an event for async push delivery
	PublishEvent(ctx context.Context, event *entity.StorefrontEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
