package service

import (
	"io"

	"pixelforge/internal/domain/entity"
)

// ImageProcessor wraps the imaging library. Implementations do not keep state between calls.
type ImageProcessor interface {
	// Normalize decodes a raster image and re-encodes it in the stored format.
	// It fails with domainerrors.ErrInvalidImage when src is not a decodable image.
	Normalize(src io.Reader, format entity.ImageFormat) ([]byte, error)

	// Crop cuts rect out of the encoded image and returns it encoded in the same format.
	Crop(src io.Reader, format entity.ImageFormat, rect entity.CropRect) ([]byte, error)
}
