package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pixelforge/config"
	"pixelforge/internal/delivery/api/middleware"
	"pixelforge/internal/delivery/api/router"
	"pixelforge/internal/delivery/api/router/handler"
	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/infra/metrics"
	mockUsecase "pixelforge/internal/mocks/usecase"
	"pixelforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type apiFixtures struct {
	echo           *echo.Echo
	authUC         *mockUsecase.MockAuthUsecase
	profileUC      *mockUsecase.MockProfileUsecase
	subscriptionUC *mockUsecase.MockSubscriptionUsecase
	imageUC        *mockUsecase.MockImageUsecase
	userID         uuid.UUID
}

func createTestAPI(t *testing.T) *apiFixtures {
	t.Helper()

	cfg := &config.Config{
		Storage: &config.StorageConfig{UploadPrefix: "uploads", PublicPathPrefix: "/files"},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "10MB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &apiFixtures{
		authUC:         mockUsecase.NewMockAuthUsecase(t),
		profileUC:      mockUsecase.NewMockProfileUsecase(t),
		subscriptionUC: mockUsecase.NewMockSubscriptionUsecase(t),
		imageUC:        mockUsecase.NewMockImageUsecase(t),
		userID:         uuid.New(),
	}

	f.echo = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.authUC, Logger: logger}),
		ProfileHandler:      handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: f.profileUC, Logger: logger}),
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{SubscriptionUC: f.subscriptionUC, Logger: logger}),
		ImageHandler:        handler.NewImageHandler(handler.ImageHandlerParams{ImageUC: f.imageUC, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(f.authUC),
		Config:              cfg,
		Metrics:             metrics.NewMetrics(),
	})

	return f
}

// expectSession lets testToken through the auth middleware.
func (f *apiFixtures) expectSession() {
	f.authUC.EXPECT().
		Authenticate(mock.Anything, testToken).
		Return(&entity.Session{
			UserID:    f.userID,
			Email:     "ada@example.com",
			TokenID:   "jti-1",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil).
		Once()
}

func (f *apiFixtures) do(t *testing.T, method, target string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  map[string]any `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := createTestAPI(t)
		userID := uuid.New()

		f.authUC.EXPECT().
			Register(mock.Anything, usecase.RegisterInput{Email: "ada@example.com", Username: "ada", Password: "s3cret!"}).
			Return(&usecase.RegisterOutput{User: &entity.User{ID: userID, Email: "ada@example.com", Username: "ada"}}, nil).
			Once()

		rec := f.do(t, http.MethodPost, "/user/register", map[string]string{
			"email": "ada@example.com", "username": "ada", "password": "s3cret!",
		}, "")

		require.Equal(t, http.StatusCreated, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, userID.String(), env.Data["id"])
		assert.Equal(t, "ada", env.Data["username"])
		assert.NotEmpty(t, env.Meta.RequestID)
		assert.Equal(t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		f := createTestAPI(t)

		rec := f.do(t, http.MethodPost, "/user/register", map[string]string{"email": "not-an-email"}, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, rec.Body.String(), `"field":"email"`)
		assert.Contains(t, rec.Body.String(), `"field":"password"`)
	})

	t.Run("password over 72 bytes is rejected", func(t *testing.T) {
		f := createTestAPI(t)

		rec := f.do(t, http.MethodPost, "/user/register", map[string]string{
			"email": "ada@example.com", "username": "ada", "password": strings.Repeat("é", 72),
		}, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
		assert.Contains(t, rec.Body.String(), `"rule":"maxbytes"`)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := createTestAPI(t)

		f.authUC.EXPECT().
			Register(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrDuplicateEmail).
			Once()

		rec := f.do(t, http.MethodPost, "/user/register", map[string]string{
			"email": "ada@example.com", "username": "ada", "password": "s3cret!",
		}, "")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DUPLICATE_EMAIL", decode(t, rec).Error.Code)
	})
}

func TestLoginAndLogout(t *testing.T) {
	t.Run("login returns bearer token", func(t *testing.T) {
		f := createTestAPI(t)
		expiresAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

		f.authUC.EXPECT().
			Login(mock.Anything, usecase.LoginInput{Email: "ada@example.com", Password: "s3cret!"}).
			Return(&usecase.LoginOutput{
				AccessToken: "jwt",
				TokenType:   "bearer",
				ExpiresAt:   expiresAt,
				User:        &entity.User{ID: f.userID, Email: "ada@example.com", Role: "FREE"},
			}, nil).
			Once()

		rec := f.do(t, http.MethodPost, "/auth/login", map[string]string{"email": "ada@example.com", "password": "s3cret!"}, "")

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "jwt", env.Data["access_token"])
		assert.Equal(t, "bearer", env.Data["token_type"])
		assert.Equal(t, "FREE", env.Data["user"].(map[string]any)["role"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		f := createTestAPI(t)

		f.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		rec := f.do(t, http.MethodPost, "/auth/login", map[string]string{"email": "ada@example.com", "password": "nope"}, "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})

	t.Run("logout without token reports failure", func(t *testing.T) {
		f := createTestAPI(t)

		f.authUC.EXPECT().
			Logout(mock.Anything, "").
			Return(&usecase.LogoutOutput{Status: usecase.LogoutFailed, Message: "Session not found"}, nil).
			Once()

		rec := f.do(t, http.MethodPost, "/auth/logout", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Failed", decode(t, rec).Data["status"])
	})

	t.Run("logout with token", func(t *testing.T) {
		f := createTestAPI(t)

		f.authUC.EXPECT().
			Logout(mock.Anything, testToken).
			Return(&usecase.LogoutOutput{Status: usecase.LogoutSuccess, Message: "Logout successful"}, nil).
			Once()

		rec := f.do(t, http.MethodPost, "/auth/logout", nil, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Success", decode(t, rec).Data["status"])
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(t, http.MethodGet, "/subscription/details", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)

	f.authUC.EXPECT().
		Authenticate(mock.Anything, "revoked").
		Return(nil, domainerrors.ErrUnauthorized.WrapMessage("token revoked")).
		Once()

	rec = f.do(t, http.MethodGet, "/subscription/details", nil, "revoked")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	f := createTestAPI(t)
	f.expectSession()

	f.profileUC.EXPECT().
		UpdateProfile(mock.Anything, f.userID, mock.MatchedBy(func(input usecase.UpdateProfileInput) bool {
			return input.Email != nil && *input.Email == "new@example.com" && input.Password == nil
		})).
		Return(&usecase.UpdateProfileOutput{Success: true, Message: "Profile updated successfully"}, nil).
		Once()

	rec := f.do(t, http.MethodPut, "/user/profile/update", map[string]string{"email": "new@example.com"}, testToken)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, true, env.Data["success"])
	assert.Equal(t, "Profile updated successfully", env.Data["message"])
}

func TestUpdateProfileRejectsOversizedFields(t *testing.T) {
	tests := []struct {
		name  string
		body  map[string]string
		field string
	}{
		{name: "password over 72 bytes", body: map[string]string{"password": strings.Repeat("é", 72)}, field: "password"},
		{name: "plan tag longer than the role column", body: map[string]string{"subscription_type": strings.Repeat("P", 21)}, field: "subscription_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAPI(t)
			f.expectSession()

			rec := f.do(t, http.MethodPut, "/user/profile/update", tt.body, testToken)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
			assert.Contains(t, rec.Body.String(), `"field":"`+tt.field+`"`)
			f.profileUC.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSubscription(t *testing.T) {
	t.Run("details", func(t *testing.T) {
		f := createTestAPI(t)
		f.expectSession()
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		f.subscriptionUC.EXPECT().
			ViewSubscription(mock.Anything, f.userID).
			Return(entity.FreeSubscription(f.userID, start), nil).
			Once()

		rec := f.do(t, http.MethodGet, "/subscription/details", nil, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "FREE", env.Data["subscription_type"])
		assert.NotContains(t, env.Data, "end_date")
	})

	t.Run("upgrade", func(t *testing.T) {
		f := createTestAPI(t)
		f.expectSession()
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

		f.subscriptionUC.EXPECT().
			UpgradeSubscription(mock.Anything, f.userID, "MONTHLY").
			Return(entity.NewPlanSubscription(f.userID, entity.PlanMonthly, start), nil).
			Once()

		rec := f.do(t, http.MethodPost, "/subscription/upgrade", map[string]string{"new_subscription_type": "MONTHLY"}, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "MONTHLY", env.Data["subscription_type"])
		assert.Equal(t, f.userID.String(), env.Data["user_id"])
		assert.NotNil(t, env.Data["end"])
	})

	t.Run("unsupported plan", func(t *testing.T) {
		f := createTestAPI(t)
		f.expectSession()

		f.subscriptionUC.EXPECT().
			UpgradeSubscription(mock.Anything, f.userID, "LIFETIME").
			Return(nil, domainerrors.ErrUnsupportedPlan).
			Once()

		rec := f.do(t, http.MethodPost, "/subscription/upgrade", map[string]string{"new_subscription_type": "LIFETIME"}, testToken)

		assert.Equal(t, domainerrors.ErrUnsupportedPlan.HTTPCode(), rec.Code)
	})
}

func TestImageUpload(t *testing.T) {
	f := createTestAPI(t)
	f.expectSession()
	imageID := uuid.New()

	f.imageUC.EXPECT().
		Upload(mock.Anything, f.userID, mock.MatchedBy(func(input usecase.UploadImageInput) bool {
			return input.Filename == "cat.png" && input.Format == "png"
		})).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, input usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
			data, err := io.ReadAll(input.Content)
			require.NoError(t, err)
			assert.Equal(t, "raw-bytes", string(data))

			return &usecase.UploadImageOutput{
				Success:  true,
				Message:  "Image uploaded successfully",
				ImageID:  &imageID,
				ImageURL: "/files/" + imageID.String() + ".png",
			}, nil
		}).
		Once()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "cat.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("raw-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("format", "png"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/image/upload", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, true, env.Data["success"])
	assert.Equal(t, imageID.String(), env.Data["image_id"])
}

func TestImageUploadRequiresFile(t *testing.T) {
	f := createTestAPI(t)
	f.expectSession()

	rec := f.do(t, http.MethodPost, "/image/upload", map[string]string{}, testToken)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}

func TestImageCropAndResize(t *testing.T) {
	t.Run("crop", func(t *testing.T) {
		f := createTestAPI(t)
		f.expectSession()
		imageID := uuid.New()

		f.imageUC.EXPECT().
			Crop(mock.Anything, f.userID, usecase.CropImageInput{
				ImageID: imageID,
				Rect:    entity.CropRect{X: 1, Y: 2, Width: 30, Height: 40},
			}).
			Return(&usecase.CropImageOutput{
				ImageID:          imageID,
				CroppedImagePath: "/files/" + imageID.String() + "_cropped.png",
				Message:          "Image cropped successfully.",
			}, nil).
			Once()

		rec := f.do(t, http.MethodPost, "/image/crop", map[string]any{
			"image_id": imageID.String(), "x": 1, "y": 2, "width": 30, "height": 40,
		}, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Image cropped successfully.", decode(t, rec).Data["message"])
	})

	t.Run("crop rejects empty rectangle", func(t *testing.T) {
		f := createTestAPI(t)
		f.expectSession()

		rec := f.do(t, http.MethodPost, "/image/crop", map[string]any{
			"image_id": uuid.NewString(), "x": 0, "y": 0, "width": 0, "height": 10,
		}, testToken)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("resize with crop", func(t *testing.T) {
		f := createTestAPI(t)
		f.expectSession()
		imageID := uuid.New()

		f.imageUC.EXPECT().
			Resize(mock.Anything, f.userID, usecase.ResizeImageInput{
				ImageID: imageID,
				Width:   100,
				Height:  50,
				Crop:    &entity.CropRect{X: 0, Y: 0, Width: 10, Height: 10},
			}).
			Return(&usecase.ResizeImageOutput{
				Success:        true,
				Message:        "Image resized successfully.",
				ImageReference: usecase.ImageReference{ImageID: &imageID, ImageURL: "/files/" + imageID.String() + ".png"},
			}, nil).
			Once()

		rec := f.do(t, http.MethodPost, "/image/resize", map[string]any{
			"image_id": imageID.String(), "width": 100, "height": 50,
			"crop": map[string]int{"start_x": 0, "start_y": 0, "crop_width": 10, "crop_height": 10},
		}, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, imageID.String(), env.Data["image_reference"].(map[string]any)["image_id"])
	})
}

func TestShareQRCode(t *testing.T) {
	f := createTestAPI(t)
	f.expectSession()
	imageID := uuid.New()

	f.imageUC.EXPECT().
		ShareQRCode(mock.Anything, f.userID, imageID).
		Return([]byte("\x89PNG"), nil).
		Once()

	rec := f.do(t, http.MethodGet, "/image/"+imageID.String()+"/qrcode", nil, testToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestServeFile(t *testing.T) {
	t.Run("streams stored file", func(t *testing.T) {
		f := createTestAPI(t)

		f.imageUC.EXPECT().
			OpenFile(mock.Anything, "abc.png").
			Return(&usecase.StoredFile{Content: io.NopCloser(strings.NewReader("png-bytes")), ContentType: "image/png"}, nil).
			Once()

		rec := f.do(t, http.MethodGet, "/files/abc.png", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		f := createTestAPI(t)

		f.imageUC.EXPECT().OpenFile(mock.Anything, "nope.png").Return(nil, domainerrors.ErrNotFound).Once()

		rec := f.do(t, http.MethodGet, "/files/nope.png", nil, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInfrastructureErrorsAreHidden(t *testing.T) {
	f := createTestAPI(t)
	f.expectSession()

	f.subscriptionUC.EXPECT().
		ViewSubscription(mock.Anything, f.userID).
		Return(nil, errors.New("pq: connection refused")).
		Once()

	rec := f.do(t, http.MethodGet, "/subscription/details", nil, testToken)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestHealthAndMetrics(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec).Data["status"])

	rec = f.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `pixelforge_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
