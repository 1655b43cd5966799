package postgres

import (
	"context"

	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/repository"
	"pixelforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// imageRepository implements the repository.ImageRepository interface.
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{
		db: db,
	}
}

// Create persists a new image record.
func (repo *imageRepository) Create(ctx context.Context, image *entity.ImageFile) error {
	imageM := fromImageFileDomain(image)
	if imageM.ID == uuid.Nil {
		imageM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image record")
	}

	image.ID = imageM.ID
	image.UploadedAt = imageM.UploadedAt

	return nil
}

// FindByID retrieves an image record by its ID.
func (repo *imageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ImageFile, error) {
	var imageM model.ImageFileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image by id")
	}

	return toImageFileDomain(&imageM), nil
}

// Delete removes an image record. Its manipulation history goes with it.
func (repo *imageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ImageFileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete image record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

// CreateManipulation appends a manipulation history entry.
func (repo *imageRepository) CreateManipulation(ctx context.Context, record *entity.ImageManipulationRecord) error {
	recordM := fromManipulationDomain(record)
	if recordM.ID == uuid.Nil {
		recordM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrImageNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create manipulation record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindManipulationsByImageID lists the history of an image, oldest first.
func (repo *imageRepository) FindManipulationsByImageID(ctx context.Context, imageID uuid.UUID) ([]*entity.ImageManipulationRecord, error) {
	var recordsM []model.ImageManipulationModel

	if err := repo.db.WithContext(ctx).
		Where("image_file_id = ?", imageID).
		Order("created_at ASC").
		Find(&recordsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find manipulation records")
	}

	records := make([]*entity.ImageManipulationRecord, 0, len(recordsM))
	for i := range recordsM {
		records = append(records, toManipulationDomain(&recordsM[i]))
	}

	return records, nil
}

// --- Mapper Functions ---

func toImageFileDomain(data *model.ImageFileModel) *entity.ImageFile {
	if data == nil {
		return nil
	}

	return &entity.ImageFile{
		ID:               data.ID,
		UserID:           data.UserID,
		Format:           entity.ImageFormat(data.Format),
		OriginalFilename: data.OriginalFilename,
		StoragePath:      data.StoragePath,
		Checksum:         data.Checksum,
		SizeBytes:        data.SizeBytes,
		UploadedAt:       data.UploadedAt,
	}
}

func fromImageFileDomain(data *entity.ImageFile) *model.ImageFileModel {
	if data == nil {
		return nil
	}

	return &model.ImageFileModel{
		ID:               data.ID,
		UserID:           data.UserID,
		Format:           string(data.Format),
		OriginalFilename: data.OriginalFilename,
		StoragePath:      data.StoragePath,
		Checksum:         data.Checksum,
		SizeBytes:        data.SizeBytes,
		UploadedAt:       data.UploadedAt,
	}
}

func toManipulationDomain(data *model.ImageManipulationModel) *entity.ImageManipulationRecord {
	if data == nil {
		return nil
	}

	return &entity.ImageManipulationRecord{
		ID:           data.ID,
		ImageFileID:  data.ImageFileID,
		UserID:       data.UserID,
		Manipulation: entity.ManipulationType(data.Manipulation),
		Parameters:   map[string]any(data.Parameters),
		CreatedAt:    data.CreatedAt,
	}
}

func fromManipulationDomain(data *entity.ImageManipulationRecord) *model.ImageManipulationModel {
	if data == nil {
		return nil
	}

	params := datatypes.JSONMap{}
	for k, v := range data.Parameters {
		params[k] = v
	}

	return &model.ImageManipulationModel{
		ID:           data.ID,
		ImageFileID:  data.ImageFileID,
		UserID:       data.UserID,
		Manipulation: string(data.Manipulation),
		Parameters:   params,
		CreatedAt:    data.CreatedAt,
	}
}
