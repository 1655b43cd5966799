package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/repository"
	"pixelforge/internal/domain/service"
	mockRepo "pixelforge/internal/mocks/repository"
	mockSvc "pixelforge/internal/mocks/service"
	"pixelforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type imageServiceFixtures struct {
	service   usecase.ImageUsecase
	imageRepo *mockRepo.MockImageRepository
	storage   *mockSvc.MockBlobStorage
	processor *mockSvc.MockImageProcessor
	qrCode    *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
	now       time.Time
}

func createTestImageService(t *testing.T) imageServiceFixtures {
	t.Helper()

	fx := imageServiceFixtures{
		imageRepo: mockRepo.NewMockImageRepository(t),
		storage:   mockSvc.NewMockBlobStorage(t),
		processor: mockSvc.NewMockImageProcessor(t),
		qrCode:    mockSvc.NewMockQRCodeService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		now:       time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC),
	}

	srv := NewImageService(ImageServiceParams{
		ImageRepo: fx.imageRepo,
		Storage:   fx.storage,
		Processor: fx.processor,
		QRCode:    fx.qrCode,
		Publisher: fx.publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*imageService)
	srv.now = func() time.Time { return fx.now }
	fx.service = srv

	return fx
}

func storedImage(userID uuid.UUID, format entity.ImageFormat) *entity.ImageFile {
	id := uuid.New()
	ext := strings.ToLower(string(format))

	return &entity.ImageFile{
		ID:          id,
		UserID:      userID,
		Format:      format,
		StoragePath: "uploads/" + id.String() + "." + ext,
	}
}

func TestImageService_Upload(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("raster upload is re-encoded as PNG", func(t *testing.T) {
		fx := createTestImageService(t)
		pngBytes := []byte("normalized-png")

		fx.processor.EXPECT().Normalize(mock.Anything, entity.ImageFormatJPG).Return(pngBytes, nil)
		fx.storage.EXPECT().
			Put(ctx, mock.MatchedBy(func(key string) bool {
				return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, ".png")
			}), pngBytes, "image/png").
			Return(nil)
		fx.imageRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.ImageFile")).
			Run(func(_ context.Context, image *entity.ImageFile) {
				assert.Equal(t, userID, image.UserID)
				assert.Equal(t, entity.ImageFormatPNG, image.Format)
				assert.Equal(t, "holiday.jpg", image.OriginalFilename)
				assert.Equal(t, int64(len(pngBytes)), image.SizeBytes)
				assert.Len(t, image.Checksum, 64)
				assert.Equal(t, fx.now, image.UploadedAt)
			}).
			Return(nil)
		fx.publisher.EXPECT().PublishSystemEvent(ctx, eventOfType(entity.EventImageUploaded)).Return(nil)

		out, err := fx.service.Upload(ctx, userID, usecase.UploadImageInput{
			Filename: "holiday.jpg",
			Content:  strings.NewReader("jpeg-bytes"),
		})

		require.NoError(t, err)
		assert.True(t, out.Success)
		require.NotNil(t, out.ImageID)
		assert.Equal(t, "/files/"+out.ImageID.String()+".png", out.ImageURL)
	})

	t.Run("svg is stored as uploaded", func(t *testing.T) {
		fx := createTestImageService(t)
		svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)

		fx.storage.EXPECT().
			Put(ctx, mock.MatchedBy(func(key string) bool { return strings.HasSuffix(key, ".svg") }), svg, "image/svg+xml").
			Return(nil)
		fx.imageRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		fx.publisher.EXPECT().PublishSystemEvent(ctx, mock.Anything).Return(nil)

		out, err := fx.service.Upload(ctx, userID, usecase.UploadImageInput{
			Filename: "logo.bin",
			Format:   "svg",
			Content:  bytes.NewReader(svg),
		})

		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.True(t, strings.HasSuffix(out.ImageURL, ".svg"))
	})

	t.Run("unsupported extension is rejected", func(t *testing.T) {
		fx := createTestImageService(t)

		out, err := fx.service.Upload(ctx, userID, usecase.UploadImageInput{
			Filename: "anim.gif",
			Content:  strings.NewReader("GIF89a"),
		})

		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.Equal(t, "Unsupported image format", out.Message)
		assert.Nil(t, out.ImageID)
	})

	t.Run("undecodable raster fails softly", func(t *testing.T) {
		fx := createTestImageService(t)

		fx.processor.EXPECT().
			Normalize(mock.Anything, entity.ImageFormatPNG).
			Return(nil, domainerrors.ErrInvalidImage.WrapMessage("png: invalid format"))

		out, err := fx.service.Upload(ctx, userID, usecase.UploadImageInput{
			Filename: "fake.png",
			Content:  strings.NewReader("not an image"),
		})

		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.Equal(t, "File is not a readable image", out.Message)
	})

	t.Run("failed insert removes the stored blob", func(t *testing.T) {
		fx := createTestImageService(t)
		var storedKey string

		fx.processor.EXPECT().Normalize(mock.Anything, entity.ImageFormatPNG).Return([]byte("png"), nil)
		fx.storage.EXPECT().
			Put(ctx, mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, key string, _ []byte, _ string) { storedKey = key }).
			Return(nil)
		fx.imageRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
		fx.storage.EXPECT().
			Delete(ctx, mock.Anything).
			Run(func(_ context.Context, key string) { assert.Equal(t, storedKey, key) }).
			Return(nil)

		out, err := fx.service.Upload(ctx, userID, usecase.UploadImageInput{
			Filename: "a.png",
			Content:  strings.NewReader("png"),
		})

		assert.Nil(t, out)
		assert.Error(t, err)
	})
}

func TestImageService_Crop(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	rect := entity.CropRect{X: 10, Y: 20, Width: 100, Height: 50}

	t.Run("stores the cropped copy and appends one CROP record", func(t *testing.T) {
		fx := createTestImageService(t)
		image := storedImage(userID, entity.ImageFormatPNG)
		wantKey := "uploads/" + image.ID.String() + "_cropped.png"

		fx.imageRepo.EXPECT().FindByID(ctx, image.ID).Return(image, nil)
		fx.storage.EXPECT().Open(ctx, image.StoragePath).Return(io.NopCloser(strings.NewReader("png")), nil)
		fx.processor.EXPECT().Crop(mock.Anything, entity.ImageFormatPNG, rect).Return([]byte("cropped"), nil)
		fx.storage.EXPECT().Put(ctx, wantKey, []byte("cropped"), "image/png").Return(nil)
		fx.imageRepo.EXPECT().
			CreateManipulation(ctx, mock.MatchedBy(func(record *entity.ImageManipulationRecord) bool {
				return record.ImageFileID == image.ID &&
					record.Manipulation == entity.ManipulationCrop &&
					assert.ObjectsAreEqual(rect.Parameters(), record.Parameters)
			})).
			Return(nil).
			Once()
		fx.publisher.EXPECT().PublishSystemEvent(ctx, eventOfType(entity.EventImageManipulated)).Return(nil)

		out, err := fx.service.Crop(ctx, userID, usecase.CropImageInput{ImageID: image.ID, Rect: rect})

		require.NoError(t, err)
		assert.Equal(t, image.ID, out.ImageID)
		assert.Equal(t, "/files/"+image.ID.String()+"_cropped.png", out.CroppedImagePath)
		assert.Equal(t, "Image cropped successfully.", out.Message)
	})

	t.Run("unknown image", func(t *testing.T) {
		fx := createTestImageService(t)
		imageID := uuid.New()

		fx.imageRepo.EXPECT().FindByID(ctx, imageID).Return(nil, repository.ErrImageNotFound)

		out, err := fx.service.Crop(ctx, userID, usecase.CropImageInput{ImageID: imageID, Rect: rect})

		require.NoError(t, err)
		assert.Equal(t, "Image not found.", out.Message)
		assert.Empty(t, out.CroppedImagePath)
	})

	t.Run("image of another user is not found", func(t *testing.T) {
		fx := createTestImageService(t)
		image := storedImage(uuid.New(), entity.ImageFormatPNG)

		fx.imageRepo.EXPECT().FindByID(ctx, image.ID).Return(image, nil)

		out, err := fx.service.Crop(ctx, userID, usecase.CropImageInput{ImageID: image.ID, Rect: rect})

		require.NoError(t, err)
		assert.Equal(t, "Image not found.", out.Message)
	})

	t.Run("svg cannot be cropped", func(t *testing.T) {
		fx := createTestImageService(t)
		image := storedImage(userID, entity.ImageFormatSVG)

		fx.imageRepo.EXPECT().FindByID(ctx, image.ID).Return(image, nil)
		fx.storage.EXPECT().Open(ctx, image.StoragePath).Return(io.NopCloser(strings.NewReader("<svg/>")), nil)
		fx.processor.EXPECT().
			Crop(mock.Anything, entity.ImageFormatSVG, rect).
			Return(nil, domainerrors.ErrUnsupportedImageFormat.WrapMessage("vector images cannot be cropped"))

		out, err := fx.service.Crop(ctx, userID, usecase.CropImageInput{ImageID: image.ID, Rect: rect})

		require.NoError(t, err)
		assert.Empty(t, out.CroppedImagePath)
		assert.Equal(t, "Failed to crop image: Unsupported image format", out.Message)
	})
}

func TestImageService_Resize(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("records the requested dimensions", func(t *testing.T) {
		fx := createTestImageService(t)
		image := storedImage(userID, entity.ImageFormatPNG)
		crop := &entity.CropRect{X: 0, Y: 0, Width: 10, Height: 10}

		fx.imageRepo.EXPECT().FindByID(ctx, image.ID).Return(image, nil)
		fx.imageRepo.EXPECT().
			CreateManipulation(ctx, mock.MatchedBy(func(record *entity.ImageManipulationRecord) bool {
				return record.Manipulation == entity.ManipulationResize &&
					record.Parameters["width"] == 640 &&
					record.Parameters["height"] == 480 &&
					record.Parameters["crop"] != nil
			})).
			Return(nil)
		fx.publisher.EXPECT().PublishSystemEvent(ctx, eventOfType(entity.EventImageManipulated)).Return(nil)

		out, err := fx.service.Resize(ctx, userID, usecase.ResizeImageInput{ImageID: image.ID, Width: 640, Height: 480, Crop: crop})

		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, "Image resized successfully.", out.Message)
		require.NotNil(t, out.ImageReference.ImageID)
		assert.Equal(t, image.ID, *out.ImageReference.ImageID)
		assert.Equal(t, "/files/"+image.ID.String()+".png", out.ImageReference.ImageURL)
	})

	t.Run("unknown image", func(t *testing.T) {
		fx := createTestImageService(t)
		imageID := uuid.New()

		fx.imageRepo.EXPECT().FindByID(ctx, imageID).Return(nil, repository.ErrImageNotFound)

		out, err := fx.service.Resize(ctx, userID, usecase.ResizeImageInput{ImageID: imageID, Width: 1, Height: 1})

		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.Equal(t, "Image not found.", out.Message)
		assert.Nil(t, out.ImageReference.ImageID)
	})
}

func TestImageService_ShareQRCode(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("encodes the absolute image URL", func(t *testing.T) {
		fx := createTestImageService(t)
		image := storedImage(userID, entity.ImageFormatPNG)

		fx.imageRepo.EXPECT().FindByID(ctx, image.ID).Return(image, nil)
		fx.qrCode.EXPECT().
			GenerateImageShareQR("https://pixelforge.example.com/files/"+image.ID.String()+".png").
			Return([]byte("qr-png"), nil)

		png, err := fx.service.ShareQRCode(ctx, userID, image.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte("qr-png"), png)
	})

	t.Run("unknown image is an error", func(t *testing.T) {
		fx := createTestImageService(t)
		imageID := uuid.New()

		fx.imageRepo.EXPECT().FindByID(ctx, imageID).Return(nil, repository.ErrImageNotFound)

		_, err := fx.service.ShareQRCode(ctx, userID, imageID)

		assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
	})
}

func TestImageService_OpenFile(t *testing.T) {
	ctx := context.Background()

	t.Run("opens the stored object", func(t *testing.T) {
		fx := createTestImageService(t)

		fx.storage.EXPECT().Open(ctx, "uploads/abc.png").Return(io.NopCloser(strings.NewReader("png")), nil)

		file, err := fx.service.OpenFile(ctx, "abc.png")

		require.NoError(t, err)
		defer file.Content.Close()
		assert.Equal(t, "image/png", file.ContentType)
	})

	t.Run("missing object is not found", func(t *testing.T) {
		fx := createTestImageService(t)

		fx.storage.EXPECT().Open(ctx, "uploads/gone.png").Return(nil, service.ErrObjectNotFound)

		_, err := fx.service.OpenFile(ctx, "gone.png")

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	for _, name := range []string{"", "../secret", ".env", "a/b.png"} {
		t.Run("rejects "+name, func(t *testing.T) {
			fx := createTestImageService(t)

			_, err := fx.service.OpenFile(ctx, name)

			assert.ErrorIs(t, err, domainerrors.ErrNotFound)
		})
	}
}

func TestCroppedPath(t *testing.T) {
	assert.Equal(t, "uploads/abc_cropped.png", croppedPath("uploads/abc.png"))
	assert.Equal(t, "uploads/abc_cropped.svg", croppedPath("uploads/abc.svg"))
}

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, entity.ImageFormatJPEG, resolveFormat("photo.jpeg", ""))
	assert.Equal(t, entity.ImageFormatPNG, resolveFormat("photo.jpeg", " png "))
	assert.Equal(t, entity.ImageFormat(""), resolveFormat("noext", ""))
}
