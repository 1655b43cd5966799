// Package imaging implements the image processor on top of disintegration/imaging.
package imaging

import (
	"bytes"
	"image"
	"io"

	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// maxPixels bounds decoded images so a small compressed upload cannot exhaust memory.
const maxPixels = 50_000_000

type processor struct{}

// NewProcessor creates the image processor.
func NewProcessor() service.ImageProcessor {
	return &processor{}
}

// Normalize decodes src, applying EXIF orientation, and re-encodes it in the stored format.
func (p *processor) Normalize(src io.Reader, format entity.ImageFormat) ([]byte, error) {
	if format.IsVector() {
		return nil, domainerrors.ErrUnsupportedImageFormat.WrapMessage("vector images are stored as uploaded")
	}

	img, err := decode(src)
	if err != nil {
		return nil, err
	}

	return encode(img, format.StoredFormat())
}

// Crop cuts rect out of src. The rectangle is clipped to the image bounds and must
// keep a non-empty intersection with it.
func (p *processor) Crop(src io.Reader, format entity.ImageFormat, rect entity.CropRect) ([]byte, error) {
	if format.IsVector() {
		return nil, domainerrors.ErrUnsupportedImageFormat.WrapMessage("vector images cannot be cropped")
	}
	if rect.Width <= 0 || rect.Height <= 0 || rect.X < 0 || rect.Y < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("crop rectangle must have positive size and non-negative origin")
	}

	img, err := decode(src)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	area := image.Rect(
		bounds.Min.X+rect.X,
		bounds.Min.Y+rect.Y,
		bounds.Min.X+rect.X+rect.Width,
		bounds.Min.Y+rect.Y+rect.Height,
	)
	if !area.Overlaps(bounds) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("crop rectangle is outside the image")
	}

	return encode(imaging.Crop(img, area), format.StoredFormat())
}

func decode(src io.Reader) (image.Image, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, domainerrors.ErrInvalidImage.WrapMessage(err.Error())
	}
	if cfg.Width*cfg.Height > maxPixels {
		return nil, domainerrors.ErrInvalidImage.WrapMessage("image dimensions are too large")
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, domainerrors.ErrInvalidImage.WrapMessage(err.Error())
	}

	return img, nil
}

func encode(img image.Image, format entity.ImageFormat) ([]byte, error) {
	var out imaging.Format
	switch format {
	case entity.ImageFormatPNG:
		out = imaging.PNG
	case entity.ImageFormatJPG, entity.ImageFormatJPEG:
		out = imaging.JPEG
	default:
		return nil, domainerrors.ErrUnsupportedImageFormat.WrapMessage(string(format))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode image")
	}

	return buf.Bytes(), nil
}
