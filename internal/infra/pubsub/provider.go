package pubsub

import (
	"context"
	"log/slog"

	"quickmart/config"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"
	"quickmart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishEvent(ctx context.Context, event *entity.StorefrontEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event",
		slog.String("event_type", event.Type),
		slog.String("user_id", event.UserID),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider. An empty
// provider disables publishing; an unknown one is a startup error.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	provider := ""
	if params.Config.PubSub != nil {
		provider = params.Config.PubSub.Provider
	}

	if provider == "" {
		params.Logger.Info("PubSub not configured, storefront events will be dropped")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := buildPublisher(params.Ctx, provider, params.Config, params.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub provider %q", provider)
	}

	params.Logger.Info("Event publisher ready", slog.String("provider", provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing event publisher", slog.String("provider", provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func buildPublisher(ctx context.Context, provider string, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	ps := cfg.PubSub

	switch provider {
	case constants.PubSubProviderLocal:
		if ps.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required")
		}

		return NewLocalHTTPPublisher(ps.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if ps.ProjectID == "" || ps.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required")
		}

		return NewGooglePubSubPublisher(ctx, ps.ProjectID, ps.TopicID, logger)

	case constants.PubSubProviderKafka:
		if cfg.Kafka == nil || len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "" {
			return nil, errors.New("kafka.brokers and kafka.topic are required")
		}

		return NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger), nil

	default:
		return nil, errors.New("unknown provider")
	}
}

// Module provides the event publisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
