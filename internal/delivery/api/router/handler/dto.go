package handler

import (
	"time"

	"github.com/google/uuid"
)

// --- Requests ---

// RegisterRequest is the body of POST /user/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Username string `json:"username" validate:"required,max=100"`
	// bcrypt rejects passwords longer than 72 bytes.
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body of PUT /user/profile/update. Absent fields are left untouched.
type UpdateProfileRequest struct {
	Email            *string `json:"email" validate:"omitempty,email,max=254"`
	Password         *string `json:"password" validate:"omitempty,maxbytes=72"`
	SubscriptionType *string `json:"subscription_type" validate:"omitempty,max=20"`
}

// UpgradeSubscriptionRequest is the body of POST /subscription/upgrade.
type UpgradeSubscriptionRequest struct {
	NewSubscriptionType string `json:"new_subscription_type" validate:"required"`
}

// CropImageRequest is the body of POST /image/crop.
type CropImageRequest struct {
	ImageID string `json:"image_id" validate:"required,uuid"`
	X       int    `json:"x" validate:"gte=0"`
	Y       int    `json:"y" validate:"gte=0"`
	Width   int    `json:"width" validate:"gt=0"`
	Height  int    `json:"height" validate:"gt=0"`
}

// CropParameters is the optional crop of a resize request.
type CropParameters struct {
	StartX     int `json:"start_x" validate:"gte=0"`
	StartY     int `json:"start_y" validate:"gte=0"`
	CropWidth  int `json:"crop_width" validate:"gt=0"`
	CropHeight int `json:"crop_height" validate:"gt=0"`
}

// ResizeImageRequest is the body of POST /image/resize.
type ResizeImageRequest struct {
	ImageID string          `json:"image_id" validate:"required,uuid"`
	Width   int             `json:"width" validate:"gt=0"`
	Height  int             `json:"height" validate:"gt=0"`
	Crop    *CropParameters `json:"crop"`
}

// --- Responses ---

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username,omitempty"`
	Role     string    `json:"role,omitempty"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// LogoutResponse is returned by POST /auth/logout.
type LogoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UpdateProfileResponse is returned by PUT /user/profile/update.
type UpdateProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubscriptionDetailsResponse is returned by GET /subscription/details.
type SubscriptionDetailsResponse struct {
	SubscriptionType string     `json:"subscription_type"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
}

// UpgradeSubscriptionResponse is returned by POST /subscription/upgrade.
type UpgradeSubscriptionResponse struct {
	UserID           uuid.UUID  `json:"user_id"`
	SubscriptionType string     `json:"subscription_type"`
	Start            time.Time  `json:"start"`
	End              *time.Time `json:"end"`
}

// UploadImageResponse is returned by POST /image/upload.
type UploadImageResponse struct {
	Success  bool       `json:"success"`
	Message  string     `json:"message"`
	ImageID  *uuid.UUID `json:"image_id,omitempty"`
	ImageURL string     `json:"image_url,omitempty"`
}

// CropImageResponse is returned by POST /image/crop.
type CropImageResponse struct {
	ImageID          uuid.UUID `json:"image_id"`
	CroppedImagePath string    `json:"cropped_image_path"`
	Message          string    `json:"message"`
}

// ImageReferenceResponse points at the image a resize applies to.
type ImageReferenceResponse struct {
	ImageID  *uuid.UUID `json:"image_id,omitempty"`
	ImageURL string     `json:"image_url,omitempty"`
}

// ResizeImageResponse is returned by POST /image/resize.
type ResizeImageResponse struct {
	Success        bool                   `json:"success"`
	Message        string                 `json:"message"`
	ImageReference ImageReferenceResponse `json:"image_reference"`
}
