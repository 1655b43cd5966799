// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "pixelforge/internal/delivery/context"
	"pixelforge/internal/domain/entity"
	"pixelforge/internal/domain/service"

	"github.com/google/uuid"
)

// publishEvent hands an audit event to the publisher. Failures are logged and
// never change the outcome of the calling operation.
func publishEvent(
	ctx context.Context,
	logger *slog.Logger,
	publisher service.EventPublisher,
	eventType entity.EventType,
	userID uuid.UUID,
	details map[string]any,
) {
	if publisher == nil {
		return
	}

	event := entity.NewSystemEvent(eventType, userID, details)
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := publisher.PublishSystemEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish system event",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", string(eventType)),
			slog.Any("error", err),
		)
	}
}
