package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ImageFileModel mirrors the 'image_files' table.
type ImageFileModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Format           string    `gorm:"type:varchar(10);not null"`
	OriginalFilename string    `gorm:"type:varchar(255)"`
	StoragePath      string    `gorm:"type:varchar(512);not null"`
	Checksum         string    `gorm:"type:char(64);not null"`
	SizeBytes        int64     `gorm:"not null"`
	UploadedAt       time.Time `gorm:"not null"`

	Manipulations []ImageManipulationModel `gorm:"foreignKey:ImageFileID"`
}

// TableName explicitly sets the table name for GORM.
func (ImageFileModel) TableName() string {
	return "image_files"
}

// ImageManipulationModel mirrors the append-only 'image_manipulation_records' table.
type ImageManipulationModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ImageFileID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null"`
	Manipulation string            `gorm:"type:varchar(20);not null"`
	Parameters   datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImageManipulationModel) TableName() string {
	return "image_manipulation_records"
}
