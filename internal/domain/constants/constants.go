package constants

import "time"

// Environments
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Storefront event types
const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventMessageReceived    = "message.received"
)

// Message content bounds, in runes after trimming.
const (
	MessageMinLength = 1
	MessageMaxLength = 2000
)

// FCMBatchSize is the multicast limit of Firebase Cloud Messaging.
const FCMBatchSize = 500

// CartKeyPrefix namespaces cached carts in Redis.
const CartKeyPrefix = "cart:"

// LowStockThreshold flags vendor products that need restocking.
const LowStockThreshold = 5

// SessionTouchInterval limits how often a busy session's LastSeenAt is written back.
const SessionTouchInterval = time.Minute
