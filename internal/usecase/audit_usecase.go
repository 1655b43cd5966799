package usecase

import (
	"context"

	"pixelforge/internal/domain/entity"
)

// AuditUsecase stores audit events delivered to the worker.
type AuditUsecase interface {
	// RecordEvent stores event; redelivered events are ignored.
	RecordEvent(ctx context.Context, event *entity.SystemEvent) error
}
