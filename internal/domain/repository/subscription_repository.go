// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pixelforge/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSubscriptionNotFound is returned when a user has no stored subscription.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines persistence for user plan subscriptions.
type SubscriptionRepository interface {
	// FindLatestByUserID returns the user's most recent subscription by start date.
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)

	// UpsertActive inserts the user's non-FREE subscription, or replaces plan and
	// dates of the existing one, in a single conditional write. The stored row is
	// written back into sub.
	UpsertActive(ctx context.Context, sub *entity.Subscription) error
}
