package impl

import (
	"context"
	"log/slog"

	deliverycontext "pixelforge/internal/delivery/context"
	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/repository"
	"pixelforge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	eventRepo repository.SystemEventRepository
	logger    *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	EventRepo repository.SystemEventRepository
	Logger    *slog.Logger
}

// NewAuditService creates a new audit service.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

// RecordEvent stores an audit event delivered by the broker.
func (srv *auditService) RecordEvent(ctx context.Context, event *entity.SystemEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event == nil || !event.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown system event type")
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return errors.Wrap(err, "failed to store system event")
	}

	logger.Debug("System event stored",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}
