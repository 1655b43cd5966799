// Package pubsub publishes audit events to Google Pub/Sub or, in development, straight to the worker.
package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"pixelforge/internal/domain/entity"

	"github.com/pkg/errors"
)

// Message attribute keys.
const (
	AttrEventID   = "event_id"
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
)

// PushMessage mirrors the envelope Pub/Sub uses when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an encoded event in a push envelope.
func NewPushMessage(event *entity.SystemEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.ID.String()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the system event carried by a push message.
func (m *PushMessage) DecodeEvent() (*entity.SystemEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event entity.SystemEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal system event")
	}

	if !event.Type.IsValid() {
		return nil, errors.Errorf("unknown event type: %q", event.Type)
	}

	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes[AttrRequestID]
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	return &event, nil
}

func eventAttributes(event *entity.SystemEvent) map[string]string {
	attributes := map[string]string{
		AttrEventID:   event.ID.String(),
		AttrEventType: string(event.Type),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
