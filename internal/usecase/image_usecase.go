package usecase

import (
	"context"
	"io"

	"pixelforge/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UploadImageInput carries an uploaded file. Format is optional and overrides the filename extension.
type UploadImageInput struct {
	Filename string
	Format   string
	Content  io.Reader
}

// CropImageInput identifies the image and the rectangle to keep.
type CropImageInput struct {
	ImageID uuid.UUID
	Rect    entity.CropRect
}

// ResizeImageInput describes a resize request. Crop is optional.
type ResizeImageInput struct {
	ImageID uuid.UUID
	Width   int
	Height  int
	Crop    *entity.CropRect
}

// --- Output DTOs ---

// UploadImageOutput is the soft result of an upload.
type UploadImageOutput struct {
	Success  bool
	Message  string
	ImageID  *uuid.UUID
	ImageURL string
}

// CropImageOutput is the soft result of a crop. CroppedImagePath is empty on failure.
type CropImageOutput struct {
	ImageID          uuid.UUID
	CroppedImagePath string
	Message          string
}

// ImageReference points at the image a resize applies to.
type ImageReference struct {
	ImageID  *uuid.UUID
	ImageURL string
}

// ResizeImageOutput is the soft result of a resize request.
type ResizeImageOutput struct {
	Success        bool
	Message        string
	ImageReference ImageReference
}

// StoredFile is an open stored object.
type StoredFile struct {
	Content     io.ReadCloser
	ContentType string
}

// ImageUsecase defines image upload, manipulation and serving.
type ImageUsecase interface {
	Upload(ctx context.Context, userID uuid.UUID, input UploadImageInput) (*UploadImageOutput, error)
	Crop(ctx context.Context, userID uuid.UUID, input CropImageInput) (*CropImageOutput, error)
	Resize(ctx context.Context, userID uuid.UUID, input ResizeImageInput) (*ResizeImageOutput, error)
	// ShareQRCode renders a PNG QR code holding the image's absolute public URL.
	ShareQRCode(ctx context.Context, userID, imageID uuid.UUID) ([]byte, error)
	// OpenFile opens a stored upload by its public file name.
	OpenFile(ctx context.Context, name string) (*StoredFile, error)
}
