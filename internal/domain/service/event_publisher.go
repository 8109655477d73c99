package service

import (
	"context"

	"petwelfare/internal/domain/entity"
)

// NotificationEvent is a push notification request handled asynchronously by the event worker.
type NotificationEvent struct {
	RequestID string                  `json:"request_id,omitempty"` // For distributed tracing
	EventID   string                  `json:"event_id"`
	Kind      entity.NotificationKind `json:"kind"`
	UserIDs   []string                `json:"user_ids"`
	Title     string                  `json:"title"`
	Body      string                  `json:"body"`
	Data      map[string]string       `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
