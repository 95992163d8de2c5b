package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"guardian/internal/domain/service"

	"github.com/pkg/errors"
)

// PushEnvelope is the body Pub/Sub POSTs to a push subscription. The local
// publisher produces the same shape so the worker cannot tell them apart.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localSubscription names the simulated subscription in development.
const localSubscription = "projects/local/subscriptions/alert-push"

// newPushEnvelope wraps an encoded event the way Pub/Sub push does.
func newPushEnvelope(event *service.AlertEvent, data []byte, now time.Time) *PushEnvelope {
	env := &PushEnvelope{Subscription: localSubscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = alertAttributes(event)
	env.Message.MessageID = event.AlertID
	env.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return env
}

// DecodeAlertEvent extracts the alert event carried by a push envelope.
func (e *PushEnvelope) DecodeAlertEvent() (*service.AlertEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.AlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse alert event")
	}

	return &event, nil
}

// alertAttributes are used for subscription filters and tracing.
func alertAttributes(event *service.AlertEvent) map[string]string {
	attributes := map[string]string{
		"alert_id":   event.AlertID,
		"parent_id":  event.ParentID,
		"alert_type": event.AlertType,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
