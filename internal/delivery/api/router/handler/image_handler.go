package handler

import (
	"log/slog"
	"net/http"

	"pixelforge/internal/delivery/api/middleware"
	"pixelforge/internal/delivery/api/response"
	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	formFieldImage  = "image"
	formFieldFormat = "format"
	contentTypePNG  = "image/png"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
	Logger  *slog.Logger
}

// ImageHandler serves image upload, manipulation and stored files.
type ImageHandler struct {
	imageUC usecase.ImageUsecase
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler.
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageUC: params.ImageUC,
		logger:  params.Logger,
	}
}

// Upload handles POST /image/upload with a multipart "image" file and an optional "format" field.
func (h *ImageHandler) Upload(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	fileHeader, err := c.FormFile(formFieldImage)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field \"image\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	output, err := h.imageUC.Upload(c.Request().Context(), userID, usecase.UploadImageInput{
		Filename: fileHeader.Filename,
		Format:   c.FormValue(formFieldFormat),
		Content:  file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, UploadImageResponse{
		Success:  output.Success,
		Message:  output.Message,
		ImageID:  output.ImageID,
		ImageURL: output.ImageURL,
	})
}

// Crop handles POST /image/crop.
func (h *ImageHandler) Crop(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req CropImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid crop input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.imageUC.Crop(c.Request().Context(), userID, usecase.CropImageInput{
		ImageID: uuid.MustParse(req.ImageID),
		Rect:    entity.CropRect{X: req.X, Y: req.Y, Width: req.Width, Height: req.Height},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CropImageResponse{
		ImageID:          output.ImageID,
		CroppedImagePath: output.CroppedImagePath,
		Message:          output.Message,
	})
}

// Resize handles POST /image/resize.
func (h *ImageHandler) Resize(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req ResizeImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid resize input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.ResizeImageInput{
		ImageID: uuid.MustParse(req.ImageID),
		Width:   req.Width,
		Height:  req.Height,
	}
	if req.Crop != nil {
		input.Crop = &entity.CropRect{
			X:      req.Crop.StartX,
			Y:      req.Crop.StartY,
			Width:  req.Crop.CropWidth,
			Height: req.Crop.CropHeight,
		}
	}

	output, err := h.imageUC.Resize(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ResizeImageResponse{
		Success: output.Success,
		Message: output.Message,
		ImageReference: ImageReferenceResponse{
			ImageID:  output.ImageReference.ImageID,
			ImageURL: output.ImageReference.ImageURL,
		},
	})
}

// ShareQRCode handles GET /image/:id/qrcode and answers with a PNG.
func (h *ImageHandler) ShareQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image ID")
	}

	png, err := h.imageUC.ShareQRCode(c.Request().Context(), userID, imageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, contentTypePNG, png)
}

// ServeFile handles GET /files/:name.
func (h *ImageHandler) ServeFile(c echo.Context) error {
	file, err := h.imageUC.OpenFile(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Content.Close()

	return c.Stream(http.StatusOK, file.ContentType, file.Content)
}
