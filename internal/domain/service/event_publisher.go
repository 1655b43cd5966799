package service

import (
	"context"

	"pixelforge/internal/domain/entity"
)

// EventPublisher defines the interface for publishing audit events to a message queue
type EventPublisher interface {
	// PublishSystemEvent publishes an audit event for asynchronous storage
	PublishSystemEvent(ctx context.Context, event *entity.SystemEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
