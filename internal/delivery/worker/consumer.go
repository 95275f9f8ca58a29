package worker

import (
	"context"
	"log/slog"
	"sync"

	"quickmart/config"
	"quickmart/internal/delivery"
	deliverycontext "quickmart/internal/delivery/context"
	"quickmart/internal/domain/entity"
	domainerrors "quickmart/internal/domain/errors"
	"quickmart/internal/infra/pubsub"
	"quickmart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventSource interface {
	Run(ctx context.Context, handle pubsub.EventHandler) error
}

// ConsumerParams holds dependencies for the Kafka consumer delivery.
type ConsumerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	PushUC usecase.PushUsecase
}

type kafkaConsumer struct {
	source eventSource
	logger *slog.Logger
	pushUC usecase.PushUsecase

	stopOnce sync.Once
	stopped  chan struct{}
}

// NewConsumer reads storefront events from the configured Kafka topic.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	kafkaCfg := params.Cfg.Kafka
	if kafkaCfg == nil || len(kafkaCfg.Brokers) == 0 || kafkaCfg.Topic == "" {
		return nil, errors.New("kafka brokers and topic are required for the consumer")
	}

	consumer := &kafkaConsumer{
		source:  pubsub.NewKafkaConsumer(kafkaCfg.Brokers, kafkaCfg.GroupID, kafkaCfg.Topic, params.Logger),
		logger:  params.Logger,
		pushUC:  params.PushUC,
		stopped: make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			consumer.stop()

			return nil
		},
	})

	return consumer, nil
}

// Serve blocks until the consumer is stopped or the reader fails.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-k.stopped:
			cancel()
		case <-ctx.Done():
		}
	}()

	k.logger.Info("Starting Kafka event consumer")

	return k.source.Run(ctx, k.handle)
}

func (k *kafkaConsumer) stop() {
	k.stopOnce.Do(func() { close(k.stopped) })
}

// handle treats invalid events as done so the offset moves on; other failures are retried.
func (k *kafkaConsumer) handle(ctx context.Context, event *entity.StorefrontEvent) error {
	reqLogger := k.logger.With(
		slog.String("request_id", event.RequestID),
		slog.String("event_id", event.EventID.String()),
	)
	ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	report, err := k.pushUC.DeliverEvent(ctx, event)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			reqLogger.Warn("[Worker] Dropping invalid event", slog.Any("error", err))

			return nil
		}

		return err
	}

	reqLogger.Info("[Worker] Event delivered",
		slog.Int("sent", report.Sent),
		slog.Bool("duplicate", report.Duplicate),
	)

	return nil
}
