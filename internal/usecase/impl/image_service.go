package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"
	"time"

	"pixelforge/config"
	deliverycontext "pixelforge/internal/delivery/context"
	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/repository"
	"pixelforge/internal/domain/service"
	"pixelforge/internal/usecase"
	"pixelforge/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgImageUploaded   = "Image uploaded successfully"
	msgImageCropped    = "Image cropped successfully."
	msgImageResized    = "Image resized successfully."
	msgImageNotFound   = "Image not found."
	msgCropFailedFmt   = "Failed to crop image: "
	croppedSuffix      = "_cropped"
	defaultUploadsDir  = "uploads"
	defaultFilesPrefix = "/files"
)

// imageService implements the ImageUsecase interface.
type imageService struct {
	imageRepo    repository.ImageRepository
	storage      service.BlobStorage
	processor    service.ImageProcessor
	qrCode       service.QRCodeService
	publisher    service.EventPublisher
	uploadPrefix string
	publicPrefix string
	shareBaseURL string
	logger       *slog.Logger
	now          func() time.Time
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	ImageRepo repository.ImageRepository
	Storage   service.BlobStorage
	Processor service.ImageProcessor
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewImageService creates a new image service.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	srv := &imageService{
		imageRepo:    params.ImageRepo,
		storage:      params.Storage,
		processor:    params.Processor,
		qrCode:       params.QRCode,
		publisher:    params.Publisher,
		uploadPrefix: defaultUploadsDir,
		publicPrefix: defaultFilesPrefix,
		logger:       params.Logger,
		now:          func() time.Time { return time.Now().UTC() },
	}

	if cfg := params.Config; cfg != nil {
		if cfg.Storage != nil {
			if cfg.Storage.UploadPrefix != "" {
				srv.uploadPrefix = strings.Trim(cfg.Storage.UploadPrefix, "/")
			}
			if cfg.Storage.PublicPathPrefix != "" {
				srv.publicPrefix = "/" + strings.Trim(cfg.Storage.PublicPathPrefix, "/")
			}
		}
		if cfg.QRCode != nil {
			srv.shareBaseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
		}
	}

	return srv
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload validates and stores an image. Raster images are re-encoded as PNG.
func (srv *imageService) Upload(ctx context.Context, userID uuid.UUID, input usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	format := resolveFormat(input.Filename, input.Format)
	if !format.IsSupported() {
		return &usecase.UploadImageOutput{Success: false, Message: domainerrors.ErrUnsupportedImageFormat.Message()}, nil
	}

	raw, err := io.ReadAll(input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}

	data := raw
	if !format.IsVector() {
		data, err = srv.processor.Normalize(bytes.NewReader(raw), format)
		if err != nil {
			if appErr, ok := domainerrors.AsAppError(err); ok {
				return &usecase.UploadImageOutput{Success: false, Message: appErr.Message()}, nil
			}

			return nil, errors.Wrap(err, "failed to normalize image")
		}
	}

	stored := format.StoredFormat()
	imageID := uuid.New()
	fileName := imageID.String() + "." + strings.ToLower(string(stored))
	image := &entity.ImageFile{
		ID:               imageID,
		UserID:           userID,
		Format:           stored,
		OriginalFilename: input.Filename,
		StoragePath:      srv.storageKey(fileName),
		Checksum:         util.Checksum(data),
		SizeBytes:        int64(len(data)),
		UploadedAt:       srv.now(),
	}

	if err := srv.storage.Put(ctx, image.StoragePath, data, contentTypeOf(fileName)); err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	if err := srv.imageRepo.Create(ctx, image); err != nil {
		// The row is the source of truth; do not leave an orphaned blob behind.
		if delErr := srv.storage.Delete(ctx, image.StoragePath); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned upload",
				slog.String("key", image.StoragePath),
				slog.Any("error", delErr),
			)
		}

		return nil, errors.Wrap(err, "failed to record image")
	}

	imageURL := srv.publicURL(fileName)
	srv.log(ctx).Info("Image uploaded",
		slog.String("imageID", imageID.String()),
		slog.String("format", string(format)),
		slog.String("size", util.FormatBytes(image.SizeBytes)),
	)
	publishEvent(ctx, srv.log(ctx), srv.publisher, entity.EventImageUploaded, userID, map[string]any{
		"image_id":   imageID.String(),
		"format":     string(format),
		"size_bytes": image.SizeBytes,
	})

	return &usecase.UploadImageOutput{
		Success:  true,
		Message:  msgImageUploaded,
		ImageID:  &imageID,
		ImageURL: imageURL,
	}, nil
}

// Crop stores the cropped copy next to the original and appends a CROP record.
func (srv *imageService) Crop(ctx context.Context, userID uuid.UUID, input usecase.CropImageInput) (*usecase.CropImageOutput, error) {
	image, err := srv.findOwnedImage(ctx, userID, input.ImageID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrImageNotFound) {
			return &usecase.CropImageOutput{ImageID: input.ImageID, Message: msgImageNotFound}, nil
		}

		return nil, err
	}

	src, err := srv.storage.Open(ctx, image.StoragePath)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return &usecase.CropImageOutput{ImageID: input.ImageID, Message: msgImageNotFound}, nil
		}

		return nil, errors.Wrap(err, "failed to open image")
	}
	defer src.Close()

	cropped, err := srv.processor.Crop(src, image.Format, input.Rect)
	if err != nil {
		if appErr, ok := domainerrors.AsAppError(err); ok {
			return &usecase.CropImageOutput{ImageID: input.ImageID, Message: msgCropFailedFmt + appErr.Message()}, nil
		}

		return nil, errors.Wrap(err, "failed to crop image")
	}

	croppedKey := croppedPath(image.StoragePath)
	if err := srv.storage.Put(ctx, croppedKey, cropped, contentTypeOf(croppedKey)); err != nil {
		return nil, errors.Wrap(err, "failed to store cropped image")
	}

	record := &entity.ImageManipulationRecord{
		ImageFileID:  image.ID,
		UserID:       userID,
		Manipulation: entity.ManipulationCrop,
		Parameters:   input.Rect.Parameters(),
		CreatedAt:    srv.now(),
	}
	if err := srv.imageRepo.CreateManipulation(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to record crop")
	}

	srv.publishManipulation(ctx, userID, record)

	return &usecase.CropImageOutput{
		ImageID:          image.ID,
		CroppedImagePath: srv.publicURL(path.Base(croppedKey)),
		Message:          msgImageCropped,
	}, nil
}

// Resize records the requested dimensions against the image. Pixels are not touched.
func (srv *imageService) Resize(ctx context.Context, userID uuid.UUID, input usecase.ResizeImageInput) (*usecase.ResizeImageOutput, error) {
	image, err := srv.findOwnedImage(ctx, userID, input.ImageID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrImageNotFound) {
			return &usecase.ResizeImageOutput{Success: false, Message: msgImageNotFound}, nil
		}

		return nil, err
	}

	params := map[string]any{
		"width":  input.Width,
		"height": input.Height,
	}
	if input.Crop != nil {
		params["crop"] = input.Crop.Parameters()
	}

	record := &entity.ImageManipulationRecord{
		ImageFileID:  image.ID,
		UserID:       userID,
		Manipulation: entity.ManipulationResize,
		Parameters:   params,
		CreatedAt:    srv.now(),
	}
	if err := srv.imageRepo.CreateManipulation(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to record resize")
	}

	srv.publishManipulation(ctx, userID, record)

	imageID := image.ID

	return &usecase.ResizeImageOutput{
		Success: true,
		Message: msgImageResized,
		ImageReference: usecase.ImageReference{
			ImageID:  &imageID,
			ImageURL: srv.publicURL(path.Base(image.StoragePath)),
		},
	}, nil
}

// ShareQRCode renders a QR code pointing at the image's absolute URL.
func (srv *imageService) ShareQRCode(ctx context.Context, userID, imageID uuid.UUID) ([]byte, error) {
	image, err := srv.findOwnedImage(ctx, userID, imageID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateImageShareQR(srv.shareBaseURL + srv.publicURL(path.Base(image.StoragePath)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// OpenFile opens a stored object by the file name used in its public URL.
func (srv *imageService) OpenFile(ctx context.Context, name string) (*usecase.StoredFile, error) {
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return nil, domainerrors.ErrNotFound.WrapMessage("invalid file name")
	}

	content, err := srv.storage.Open(ctx, srv.storageKey(name))
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("file " + name + " does not exist")
		}

		return nil, errors.Wrap(err, "failed to open file")
	}

	return &usecase.StoredFile{Content: content, ContentType: contentTypeOf(name)}, nil
}

// findOwnedImage hides images of other users behind the same not-found error.
func (srv *imageService) findOwnedImage(ctx context.Context, userID, imageID uuid.UUID) (*entity.ImageFile, error) {
	image, err := srv.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image")
	}
	if image.UserID != userID {
		return nil, domainerrors.ErrImageNotFound
	}

	return image, nil
}

func (srv *imageService) publishManipulation(ctx context.Context, userID uuid.UUID, record *entity.ImageManipulationRecord) {
	publishEvent(ctx, srv.log(ctx), srv.publisher, entity.EventImageManipulated, userID, map[string]any{
		"image_id":     record.ImageFileID.String(),
		"manipulation": string(record.Manipulation),
		"parameters":   record.Parameters,
	})
}

func (srv *imageService) storageKey(fileName string) string {
	return srv.uploadPrefix + "/" + fileName
}

func (srv *imageService) publicURL(fileName string) string {
	return srv.publicPrefix + "/" + fileName
}

// resolveFormat prefers the explicit format and falls back to the file extension.
func resolveFormat(filename, explicit string) entity.ImageFormat {
	tag := strings.TrimSpace(explicit)
	if tag == "" {
		tag = strings.TrimPrefix(path.Ext(filename), ".")
	}

	return entity.ImageFormat(strings.ToUpper(tag))
}

// croppedPath turns "uploads/<id>.png" into "uploads/<id>_cropped.png".
func croppedPath(key string) string {
	ext := path.Ext(key)

	return strings.TrimSuffix(key, ext) + croppedSuffix + ext
}

func contentTypeOf(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}

	return "application/octet-stream"
}
