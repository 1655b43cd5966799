package repository

import (
	"context"

	"pixelforge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrImageNotFound is returned when an image record does not exist.
var ErrImageNotFound = errors.New("image not found")

// ImageRepository defines persistence for uploaded images and their manipulation history.
type ImageRepository interface {
	// Create persists a new image record.
	Create(ctx context.Context, image *entity.ImageFile) error

	// FindByID retrieves an image record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ImageFile, error)

	// Delete removes an image record.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateManipulation appends a manipulation history entry.
	CreateManipulation(ctx context.Context, record *entity.ImageManipulationRecord) error

	// FindManipulationsByImageID lists the history of an image, oldest first.
	FindManipulationsByImageID(ctx context.Context, imageID uuid.UUID) ([]*entity.ImageManipulationRecord, error)
}
