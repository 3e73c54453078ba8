package service

import (
	"context"
)

// Cause lifecycle event types.
const (
	CauseEventCreated = "cause.created"
	CauseEventUpdated = "cause.updated"
	CauseEventLiked   = "cause.liked"
)

// CauseEvent represents a cause lifecycle event for async consumers
type CauseEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventType string `json:"event_type"`
	CauseID   string `json:"cause_id"`
	CreatorID string `json:"creator_id"`
	Category  string `json:"category"`
	CauseType string `json:"cause_type"`
	Title     string `json:"title"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCauseEvent publishes a cause lifecycle event for async processing
	PublishCauseEvent(ctx context.Context, event *CauseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
