package pubsub

import (
	"context"
	"log/slog"
	"time"

	"quickmart/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded event. Returning nil commits the offset.
type EventHandler func(ctx context.Context, event *entity.StorefrontEvent) error

type kafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConsumer feeds events from a consumer group into an EventHandler.
type KafkaConsumer struct {
	reader  kafkaReader
	logger  *slog.Logger
	backoff time.Duration
}

// NewKafkaConsumer joins groupID on topic.
func NewKafkaConsumer(brokers []string, groupID, topic string, logger *slog.Logger) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        brokers,
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       10e6,
			CommitInterval: 0,
		}),
		logger:  logger,
		backoff: 200 * time.Millisecond,
	}
}

// Run blocks until ctx is cancelled or the reader fails.
// Undecodable records are committed and skipped; handler failures are retried.
func (c *KafkaConsumer) Run(ctx context.Context, handle EventHandler) error {
	defer c.reader.Close()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "kafka fetch")
		}

		event, err := DecodeEventData(msg.Value)
		if err != nil {
			c.logger.WarnContext(ctx, "Skipping malformed event record",
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		} else if err := c.handleWithRetry(ctx, event, handle); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "kafka commit")
		}
	}
}

func (c *KafkaConsumer) handleWithRetry(ctx context.Context, event *entity.StorefrontEvent, handle EventHandler) error {
	for {
		err := handle(ctx, event)
		if err == nil {
			return nil
		}

		c.logger.ErrorContext(ctx, "Event handler failed, retrying",
			slog.String("event_id", event.EventID.String()),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(c.backoff):
		}
	}
}
