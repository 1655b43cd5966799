// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a paid plan held by a user. A user has at most one non-FREE row.
type Subscription struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	PlanType  PlanType   `json:"plan_type"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"` // nil means no fixed end (FREE).
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewPlanSubscription builds a subscription for plan starting at start,
// with the end date derived from the plan's duration.
func NewPlanSubscription(userID uuid.UUID, plan PlanType, start time.Time) *Subscription {
	sub := &Subscription{
		UserID:    userID,
		PlanType:  plan,
		StartDate: start,
	}

	if d := plan.Duration(); d > 0 {
		end := start.Add(d)
		sub.EndDate = &end
	}

	return sub
}

// FreeSubscription is the presentation default for users with no stored subscription.
func FreeSubscription(userID uuid.UUID, now time.Time) *Subscription {
	return &Subscription{
		UserID:    userID,
		PlanType:  PlanFree,
		StartDate: now,
	}
}
