package entity

import "time"

// PlanType is the subscription tier of a user.
type PlanType string

const (
	// PlanFree is the implicit tier of every user without a stored subscription.
	PlanFree PlanType = "FREE"
	// PlanMonthly lasts 30 days from the upgrade.
	PlanMonthly PlanType = "MONTHLY"
	// PlanYearly lasts 365 days from the upgrade.
	PlanYearly PlanType = "YEARLY"
)

const (
	monthlyDuration = 30 * 24 * time.Hour
	yearlyDuration  = 365 * 24 * time.Hour
)

// ParsePlanType matches s exactly against the known plan tags.
// Case and surrounding whitespace are significant.
func ParsePlanType(s string) (PlanType, bool) {
	plan := PlanType(s)

	return plan, plan.IsValid()
}

// String returns the string representation of the PlanType.
func (p PlanType) String() string {
	return string(p)
}

// IsValid checks if the PlanType is one of the known plans.
func (p PlanType) IsValid() bool {
	switch p {
	case PlanFree, PlanMonthly, PlanYearly:
		return true
	default:
		return false
	}
}

// IsUpgradable reports whether a user can upgrade to this plan.
// FREE is not a purchasable plan.
func (p PlanType) IsUpgradable() bool {
	return p == PlanMonthly || p == PlanYearly
}

// Duration returns how long a subscription of this plan lasts.
// It returns zero for plans without a fixed duration.
func (p PlanType) Duration() time.Duration {
	switch p {
	case PlanMonthly:
		return monthlyDuration
	case PlanYearly:
		return yearlyDuration
	default:
		return 0
	}
}
