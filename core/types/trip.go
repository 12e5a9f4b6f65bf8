// Package types - Transport request and quote types
package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CityLocation is an entry in the static city coordinate table.
// Immutable reference data, loaded once at startup.
type CityLocation struct {
	// Name is the exact-match lookup key
	Name string `json:"name"`

	// Latitude in decimal degrees
	Latitude float64 `json:"latitude"`

	// Longitude in decimal degrees
	Longitude float64 `json:"longitude"`

	// Region groups cities for display (e.g., "Sudeste", "Europe")
	Region string `json:"region"`
}

// TransportRequest describes one transport cost query.
// Created per user query; never persisted beyond the request lifecycle.
type TransportRequest struct {
	// OriginCity is the departure city name
	OriginCity string `json:"origin_city"`

	// DestinationCity is the arrival city name
	DestinationCity string `json:"destination_city"`

	// Mode is the transport mode
	Mode TransportMode `json:"mode"`

	// FlightClass applies when Mode is flight (defaults to economy)
	FlightClass FlightClass `json:"flight_class,omitempty"`

	// BusClass applies when Mode is bus (defaults to conventional)
	BusClass BusClass `json:"bus_class,omitempty"`

	// Passengers is the traveller count, must be >= 1
	Passengers int `json:"passengers"`

	// TravelDate is the departure calendar date
	TravelDate time.Time `json:"travel_date"`
}

// CacheKey returns a collision-safe cache key for this request.
// The travel date is bucketed by day so prices that genuinely differ
// (seasonality) never share an entry.
func (r TransportRequest) CacheKey() string {
	class := ""
	switch r.Mode {
	case ModeFlight:
		class = string(r.FlightClass)
	case ModeBus:
		class = string(r.BusClass)
	}
	return fmt.Sprintf("transport:%s:%s:%s:%s:%d:%s",
		r.OriginCity, r.DestinationCity, r.Mode, class,
		r.Passengers, r.TravelDate.Format("2006-01-02"))
}

// FareBreakdown itemizes how a quote total was built
type FareBreakdown struct {
	// BaseCost is the distance-based cost before adjustments
	BaseCost decimal.Decimal `json:"base_cost"`

	// SeasonalAdjustment is the amount added by the high-season surcharge
	SeasonalAdjustment decimal.Decimal `json:"seasonal_adjustment"`

	// ClassMultiplier is the multiplier applied for the travel class
	ClassMultiplier decimal.Decimal `json:"class_multiplier"`

	// TotalCost is the final rounded total
	TotalCost decimal.Decimal `json:"total_cost"`
}

// TransportQuote is the result of a transport cost calculation.
// Immutable once returned.
type TransportQuote struct {
	// DistanceKm is the great-circle distance used for pricing
	DistanceKm float64 `json:"distance_km"`

	// DistanceEstimated is true when a city was unresolved and the
	// generic fallback distance was used
	DistanceEstimated bool `json:"distance_estimated,omitempty"`

	// TotalCost is the rounded total for all passengers
	TotalCost decimal.Decimal `json:"total_cost"`

	// CostPerPerson is TotalCost divided by passenger count
	CostPerPerson decimal.Decimal `json:"cost_per_person"`

	// Currency is the quote currency
	Currency Currency `json:"currency"`

	// IsHighSeason records the seasonality flag used
	IsHighSeason bool `json:"is_high_season"`

	// Breakdown itemizes the calculation
	Breakdown FareBreakdown `json:"breakdown"`
}

// AccommodationEstimate is the output of the fallback estimation chain
type AccommodationEstimate struct {
	// Accommodation is the nightly accommodation price
	Accommodation decimal.Decimal `json:"accommodation"`

	// DailyExpenses is the non-accommodation daily spend estimate
	DailyExpenses decimal.Decimal `json:"daily_expenses"`

	// Currency is the estimate currency
	Currency Currency `json:"currency"`

	// Source records whether a live quote backed the value
	Source PriceSource `json:"source"`
}
