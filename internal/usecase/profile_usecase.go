package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UpdateProfileInput lists the fields to change. Nil fields are left untouched.
type UpdateProfileInput struct {
	Email            *string
	Password         *string
	SubscriptionType *string
}

// UpdateProfileOutput is the soft result of a profile update.
type UpdateProfileOutput struct {
	Success bool
	Message string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*UpdateProfileOutput, error)
}
