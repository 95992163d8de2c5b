package service

import (
	"context"
	"time"
)

// AlertEvent is published after a geofence alert is recorded, for offline
// delivery to the parent's registered devices.
type AlertEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	AlertID   string    `json:"alert_id"`
	ParentID  string    `json:"parent_id"`
	TeenID    string    `json:"teen_id"`
	TeenName  string    `json:"teen_name"`
	FenceName string    `json:"fence_name"`
	AlertType string    `json:"alert_type"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event for async push delivery
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
