// Package types - Budget recommendation types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripParams describes a full trip for budget composition
type TripParams struct {
	// OriginCity is the departure city name
	OriginCity string `json:"origin_city"`

	// DestinationCity is the arrival city name
	DestinationCity string `json:"destination_city"`

	// DestinationCode is the IATA-style code used for live lookups
	DestinationCode string `json:"destination_code,omitempty"`

	// Mode is the transport mode shared across tiers
	Mode TransportMode `json:"mode"`

	// FlightClass applies when Mode is flight
	FlightClass FlightClass `json:"flight_class,omitempty"`

	// BusClass applies when Mode is bus
	BusClass BusClass `json:"bus_class,omitempty"`

	// Passengers is the traveller count, must be >= 1
	Passengers int `json:"passengers"`

	// StartDate is the first trip day
	StartDate time.Time `json:"start_date"`

	// EndDate is the last trip day
	EndDate time.Time `json:"end_date"`
}

// Days returns the trip length in days, minimum 1
func (p TripParams) Days() int {
	days := int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// TransportRequest derives the per-trip transport query
func (p TripParams) TransportRequest() TransportRequest {
	return TransportRequest{
		OriginCity:      p.OriginCity,
		DestinationCity: p.DestinationCity,
		Mode:            p.Mode,
		FlightClass:     p.FlightClass,
		BusClass:        p.BusClass,
		Passengers:      p.Passengers,
		TravelDate:      p.StartDate,
	}
}

// BudgetTier is one tier of a budget recommendation.
// Derived entity: recomputed wholesale whenever any input changes.
type BudgetTier struct {
	// Level identifies the tier
	Level TierLevel `json:"level"`

	// DailyAccommodation is the per-day accommodation estimate
	DailyAccommodation decimal.Decimal `json:"daily_accommodation"`

	// DailyFood is the per-day food estimate
	DailyFood decimal.Decimal `json:"daily_food"`

	// DailyLocalTransport is the per-day local transport estimate
	DailyLocalTransport decimal.Decimal `json:"daily_local_transport"`

	// DailyActivities is the per-day activities estimate
	DailyActivities decimal.Decimal `json:"daily_activities"`

	// Transport is the shared intercity transport quote
	Transport *TransportQuote `json:"transport,omitempty"`

	// TotalEstimate is daily components x trip days + transport total
	TotalEstimate decimal.Decimal `json:"total_estimate"`
}

// DailyTotal sums the per-day components
func (t BudgetTier) DailyTotal() decimal.Decimal {
	return t.DailyAccommodation.
		Add(t.DailyFood).
		Add(t.DailyLocalTransport).
		Add(t.DailyActivities)
}

// BudgetRecommendation is the three-tier budget shown to the user
type BudgetRecommendation struct {
	// Economy is the cheapest tier
	Economy BudgetTier `json:"economy"`

	// Medium is the mid-range tier
	Medium BudgetTier `json:"medium"`

	// Comfort is the most expensive tier
	Comfort BudgetTier `json:"comfort"`

	// Days is the trip length the totals cover
	Days int `json:"days"`

	// Currency is the recommendation currency
	Currency Currency `json:"currency"`

	// AccommodationSource records whether accommodation came from a
	// live quote or the estimation fallback
	AccommodationSource PriceSource `json:"accommodation_source"`
}
