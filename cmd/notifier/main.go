package main

import (
	"context"
	"log/slog"
	"os"

	"quickmart/config"
	"quickmart/internal/delivery"
	"quickmart/internal/delivery/worker"
	"quickmart/internal/delivery/worker/handler"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/service"
	logs "quickmart/internal/infra/log"
	"quickmart/internal/infra/notification"
	"quickmart/internal/infra/persistence/postgres"
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
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(cfg),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
		),
		postgres.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationService,
		),
	)
}

// newNotificationService requires Firebase; the notifier has nothing to do without it.
func newNotificationService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required for the notifier")
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
			impl.NewPushService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

// injectDelivery always serves /push; the Kafka consumer joins when kafka is the provider.
func injectDelivery(cfg *config.Config) fx.Option {
	deliveries := []any{
		fx.Annotate(
			worker.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	}
	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderKafka {
		deliveries = append(deliveries, fx.Annotate(
			worker.NewConsumer,
			fx.ResultTags(`group:"deliveries"`),
		))
	}

	return fx.Options(
		fx.Provide(deliveries...),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
