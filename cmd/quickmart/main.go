package main

import (
	"context"
	"log/slog"

	"quickmart/config"
	"quickmart/internal/delivery"
	"quickmart/internal/delivery/http"
	"quickmart/internal/delivery/http/middleware"
	"quickmart/internal/delivery/http/router/handler"
	"quickmart/internal/delivery/poller"
	"quickmart/internal/domain/service"
	"quickmart/internal/infra/auth"
	"quickmart/internal/infra/cache"
	logs "quickmart/internal/infra/log"
	"quickmart/internal/infra/notification"
	"quickmart/internal/infra/payment"
	"quickmart/internal/infra/persistence/postgres"
	"quickmart/internal/infra/pubsub"
	"quickmart/internal/infra/qrcode"
	"quickmart/internal/infra/session"
	"quickmart/internal/infra/storefront"
	"quickmart/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		postgres.Module,
		storefront.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			cache.NewCartCache,
			session.NewStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			payment.NewStripeGateway,
			qrcode.NewQRCodeService,
			newNotificationService,
		),
	)
}

// newNotificationService sends through Firebase when it is configured and only logs otherwise.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		logger.Warn("Firebase is not configured, push notifications will only be logged")

		return notification.NewLogService(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewNavigationService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewMessagingService,
			impl.NewNotificationService,
			impl.NewDeviceService,
			impl.NewPushService,
			impl.NewVendorService,
			impl.NewDeliveryService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewNavigationHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewMessagingHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewVendorHandler,
			handler.NewDeliveryHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				poller.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Delivery stopped with error", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				}
			}
		}()
	}
}
