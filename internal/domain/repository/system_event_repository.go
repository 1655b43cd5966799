package repository

import (
	"context"

	"pixelforge/internal/domain/entity"
)

// SystemEventRepository stores audit events.
type SystemEventRepository interface {
	// Create stores the event. Storing an event whose ID already exists is a no-op,
	// so redelivered messages are harmless.
	Create(ctx context.Context, event *entity.SystemEvent) error
}
