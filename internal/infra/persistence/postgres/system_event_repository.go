package postgres

import (
	"context"

	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/repository"
	"pixelforge/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type systemEventRepository struct {
	db *gorm.DB
}

// NewSystemEventRepository is the constructor for systemEventRepository.
func NewSystemEventRepository(db *gorm.DB) repository.SystemEventRepository {
	return &systemEventRepository{
		db: db,
	}
}

// Create stores the event, ignoring IDs that were already stored.
func (repo *systemEventRepository) Create(ctx context.Context, event *entity.SystemEvent) error {
	details := datatypes.JSONMap{}
	for k, v := range event.Details {
		details[k] = v
	}

	eventM := &model.SystemEventModel{
		ID:        event.ID,
		EventType: string(event.Type),
		UserID:    event.UserID,
		RequestID: event.RequestID,
		Details:   details,
		CreatedAt: event.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store system event")
	}

	return nil
}
