package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quickmart/config"
	"quickmart/internal/domain/constants"
	"quickmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *entity.StorefrontEvent {
	return &entity.StorefrontEvent{
		EventID:    uuid.New(),
		RequestID:  "req-1",
		Type:       constants.EventOrderPlaced,
		UserID:     "cust-1",
		Title:      "Order placed",
		Body:       "Order o-1 is confirmed",
		Data:       map[string]string{"order_id": "o-1"},
		OccurredAt: time.Unix(1700000000, 0).UTC(),
	}
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	event := sampleEvent()

	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.EventID.String(), received.Message.MessageID)
	assert.Equal(t, constants.EventOrderPlaced, received.Message.Attributes["event_type"])
	assert.Equal(t, "cust-1", received.Message.Attributes["user_id"])

	decoded, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, "o-1", decoded.Data["order_id"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestDecodeEventData_RequiresUserAndType(t *testing.T) {
	_, err := DecodeEventData([]byte(`{"event_id":"` + uuid.NewString() + `"}`))
	require.Error(t, err)

	_, err = DecodeEventData([]byte(`not json`))
	require.Error(t, err)
}

type fakeWriter struct {
	msgs   []kafka.Message
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysByRecipient(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &kafkaPublisher{writer: writer, logger: discardLogger()}

	event := sampleEvent()
	require.NoError(t, publisher.PublishEvent(context.Background(), event))
	require.Len(t, writer.msgs, 1)

	msg := writer.msgs[0]
	assert.Equal(t, []byte("cust-1"), msg.Key)

	decoded, err := DecodeEventData(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, event.EventID.String(), headers["event_id"])
	assert.Equal(t, "req-1", headers["request_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

type fakeReader struct {
	records   []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.records) == 0 {
		r.cancel()
		<-ctx.Done()

		return kafka.Message{}, ctx.Err()
	}
	msg := r.records[0]
	r.records = r.records[1:]

	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}

	return nil
}

func (r *fakeReader) Close() error { return nil }

func TestKafkaConsumer_SkipsMalformedAndCommits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(sampleEvent())
	require.NoError(t, err)

	reader := &fakeReader{
		records: []kafka.Message{
			{Offset: 1, Value: []byte("garbage")},
			{Offset: 2, Value: payload},
		},
		cancel: cancel,
	}
	consumer := &KafkaConsumer{reader: reader, logger: discardLogger(), backoff: time.Millisecond}

	attempts := 0
	var handled []*entity.StorefrontEvent
	err = consumer.Run(ctx, func(_ context.Context, event *entity.StorefrontEvent) error {
		attempts++
		if attempts == 1 {
			return assert.AnError
		}
		handled = append(handled, event)

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, attempts)
	require.Len(t, handled, 1)
	assert.Equal(t, "cust-1", handled[0].UserID)
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
		wantT   any
	}{
		{
			name:  "unset falls back to noop",
			cfg:   &config.Config{},
			wantT: &noopPublisher{},
		},
		{
			name:  "local",
			cfg:   &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1/push"}},
			wantT: &localHTTPPublisher{},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			wantErr: true,
		},
		{
			name:    "google without topic",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
			wantErr: true,
		},
		{
			name: "kafka",
			cfg: &config.Config{
				PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka},
				Kafka:  &config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "storefront-events"},
			},
			wantT: &kafkaPublisher{},
		},
		{
			name:    "kafka without brokers",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka}},
			wantErr: true,
		},
		{
			name:    "unknown",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: "carrier-pigeon"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: tt.cfg,
				Logger: discardLogger(),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantT, publisher)
		})
	}
}
