package usecase

import (
	"context"

	"pixelforge/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase defines viewing and upgrading of a user's plan.
type SubscriptionUsecase interface {
	// ViewSubscription returns the latest subscription, or a FREE one starting now when none is stored.
	ViewSubscription(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)
	// UpgradeSubscription moves the user to plan (MONTHLY or YEARLY, any case).
	UpgradeSubscription(ctx context.Context, userID uuid.UUID, plan string) (*entity.Subscription, error)
}
