// Package types - Persisted pricing settings
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingSettings are the admin-managed paywall knobs. The budget
// composer does not read these; they govern premium economics only.
type PricingSettings struct {
	// PremiumMonthly is the monthly premium subscription price
	PremiumMonthly decimal.Decimal `json:"premium_monthly"`

	// PremiumAnnual is the annual premium subscription price
	PremiumAnnual decimal.Decimal `json:"premium_annual"`

	// PlanningPackage is the one-off curated itinerary price
	PlanningPackage decimal.Decimal `json:"planning_package"`

	// TestMode routes checkouts to the gateway sandbox
	TestMode bool `json:"test_mode"`

	// UpdatedAt is when an admin last changed the settings
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultPricingSettings returns the launch pricing
func DefaultPricingSettings() PricingSettings {
	return PricingSettings{
		PremiumMonthly:  decimal.NewFromFloat(19.90),
		PremiumAnnual:   decimal.NewFromFloat(199.90),
		PlanningPackage: decimal.NewFromFloat(49.90),
		TestMode:        false,
	}
}
