// Package api - Request and response types
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"tripcost/core/types"
	"tripcost/internal/errors"
)

// dateLayout is the calendar date format accepted on the wire
const dateLayout = "2006-01-02"

// TransportCostRequest is the POST /transport-cost body
type TransportCostRequest struct {
	OriginCity      string `json:"origin_city"`
	DestinationCity string `json:"destination_city"`
	Mode            string `json:"mode"`
	Class           string `json:"class,omitempty"`
	Passengers      int    `json:"passengers"`
	TravelDate      string `json:"travel_date"`
}

// ToRequest converts the wire form into the domain request
func (r *TransportCostRequest) ToRequest() (types.TransportRequest, error) {
	date, err := parseDate(r.TravelDate, "travel_date")
	if err != nil {
		return types.TransportRequest{}, err
	}

	req := types.TransportRequest{
		OriginCity:      r.OriginCity,
		DestinationCity: r.DestinationCity,
		Mode:            types.TransportMode(r.Mode),
		Passengers:      r.Passengers,
		TravelDate:      date,
	}
	switch req.Mode {
	case types.ModeFlight:
		req.FlightClass = types.FlightClass(r.Class)
	case types.ModeBus:
		req.BusClass = types.BusClass(r.Class)
	}
	return req, nil
}

// BudgetRequest is the POST /budget body
type BudgetRequest struct {
	OriginCity      string `json:"origin_city"`
	DestinationCity string `json:"destination_city"`
	DestinationCode string `json:"destination_code,omitempty"`
	Mode            string `json:"mode"`
	Class           string `json:"class,omitempty"`
	Passengers      int    `json:"passengers"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

// ToParams converts the wire form into domain trip parameters
func (r *BudgetRequest) ToParams() (types.TripParams, error) {
	start, err := parseDate(r.StartDate, "start_date")
	if err != nil {
		return types.TripParams{}, err
	}
	end, err := parseDate(r.EndDate, "end_date")
	if err != nil {
		return types.TripParams{}, err
	}

	params := types.TripParams{
		OriginCity:      r.OriginCity,
		DestinationCity: r.DestinationCity,
		DestinationCode: r.DestinationCode,
		Mode:            types.TransportMode(r.Mode),
		Passengers:      r.Passengers,
		StartDate:       start,
		EndDate:         end,
	}
	switch params.Mode {
	case types.ModeFlight:
		params.FlightClass = types.FlightClass(r.Class)
	case types.ModeBus:
		params.BusClass = types.BusClass(r.Class)
	}
	return params, nil
}

// ResponseMetadata is attached to estimation responses
type ResponseMetadata struct {
	RequestID     string `json:"request_id"`
	InputHash     string `json:"input_hash,omitempty"`
	EngineVersion string `json:"engine_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// BudgetResponse is the POST /budget reply
type BudgetResponse struct {
	Budget   types.BudgetRecommendation `json:"budget"`
	Metadata *ResponseMetadata          `json:"metadata,omitempty"`
}

// TransportCostResponse is the POST /transport-cost reply
type TransportCostResponse struct {
	Quote    types.TransportQuote `json:"quote"`
	Metadata *ResponseMetadata    `json:"metadata,omitempty"`
}

// AccommodationResponse is the GET /accommodation reply
type AccommodationResponse struct {
	Estimate types.AccommodationEstimate `json:"estimate"`
	Metadata *ResponseMetadata           `json:"metadata,omitempty"`
}

// PricingSettingsRequest is the PUT /pricing-config body
type PricingSettingsRequest struct {
	PremiumMonthly  string `json:"premium_monthly"`
	PremiumAnnual   string `json:"premium_annual"`
	PlanningPackage string `json:"planning_package"`
	TestMode        bool   `json:"test_mode"`
}

// ToSettings converts the wire form into domain settings
func (r *PricingSettingsRequest) ToSettings() (types.PricingSettings, error) {
	monthly, err := parsePrice(r.PremiumMonthly, "premium_monthly")
	if err != nil {
		return types.PricingSettings{}, err
	}
	annual, err := parsePrice(r.PremiumAnnual, "premium_annual")
	if err != nil {
		return types.PricingSettings{}, err
	}
	pkg, err := parsePrice(r.PlanningPackage, "planning_package")
	if err != nil {
		return types.PricingSettings{}, err
	}
	return types.PricingSettings{
		PremiumMonthly:  monthly,
		PremiumAnnual:   annual,
		PlanningPackage: pkg,
		TestMode:        r.TestMode,
	}, nil
}

// ErrorResponse is the error reply body
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func parseDate(raw, field string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.Inputf("%s is required", field)
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errors.Inputf("%s must be YYYY-MM-DD, got %q", field, raw)
	}
	return t, nil
}

func parsePrice(raw, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errors.Inputf("%s must be a decimal number, got %q", field, raw)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errors.Inputf("%s must not be negative", field)
	}
	return d, nil
}
