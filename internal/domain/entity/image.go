package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImageFormat is the declared format of an uploaded image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "PNG"
	ImageFormatJPG  ImageFormat = "JPG"
	ImageFormatJPEG ImageFormat = "JPEG"
	ImageFormatSVG  ImageFormat = "SVG"
)

// IsSupported checks if the format can be uploaded.
func (f ImageFormat) IsSupported() bool {
	switch f {
	case ImageFormatPNG, ImageFormatJPG, ImageFormatJPEG, ImageFormatSVG:
		return true
	default:
		return false
	}
}

// StoredFormat returns the format the file is kept in. Raster uploads are stored as PNG.
func (f ImageFormat) StoredFormat() ImageFormat {
	if f == ImageFormatSVG {
		return ImageFormatSVG
	}

	return ImageFormatPNG
}

// IsVector reports whether the format is a vector format.
func (f ImageFormat) IsVector() bool {
	return f == ImageFormatSVG
}

// ManipulationType is an operation recorded against an image.
type ManipulationType string

const (
	ManipulationCrop   ManipulationType = "CROP"
	ManipulationResize ManipulationType = "RESIZE"
)

// ImageFile is an uploaded image and where its bytes live.
type ImageFile struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Format           ImageFormat
	OriginalFilename string
	StoragePath      string // Blob key, e.g. "uploads/<id>.png".
	Checksum         string // SHA-256 hex of the stored bytes.
	SizeBytes        int64
	UploadedAt       time.Time
}

// ImageManipulationRecord is an append-only history entry for an image.
type ImageManipulationRecord struct {
	ID           uuid.UUID
	ImageFileID  uuid.UUID
	UserID       uuid.UUID
	Manipulation ManipulationType
	Parameters   map[string]any
	CreatedAt    time.Time
}

// CropRect is a crop rectangle in pixel coordinates of the source image.
type CropRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Parameters returns the rectangle as manipulation parameters.
func (r CropRect) Parameters() map[string]any {
	return map[string]any{
		"x":      r.X,
		"y":      r.Y,
		"width":  r.Width,
		"height": r.Height,
	}
}
