package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"quickmart/internal/domain/entity"

	"github.com/pkg/errors"
)

// PubSubPushMessage represents the structure of a Pub/Sub push message.
// The local publisher mimics it so the worker has a single push format.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are attached to every published message for filtering and tracing.
func eventAttributes(event *entity.StorefrontEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID.String(),
		"event_type": event.Type,
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps an event the way Pub/Sub push delivers it.
func NewPushMessage(event *entity.StorefrontEvent, subscription string) (*PubSubPushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PubSubPushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.EventID.String()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the storefront event from a push message.
func (m *PubSubPushMessage) DecodeEvent() (*entity.StorefrontEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode base64 data")
	}

	return DecodeEventData(data)
}

// DecodeEventData parses a raw event payload, as carried by Kafka records.
func DecodeEventData(data []byte) (*entity.StorefrontEvent, error) {
	var event entity.StorefrontEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal storefront event")
	}
	if event.UserID == "" || event.Type == "" {
		return nil, errors.New("event is missing user or type")
	}

	return &event, nil
}
