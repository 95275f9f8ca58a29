package postgres

import "go.uber.org/fx"

// Module provides the database and the repositories backed by it.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewDeviceRepository,
		NewNotificationLogRepository,
	),
)
