// Package engine - Input contract validation
// The pricing core assumes validated input; this is the boundary that
// enforces the contract.
package engine

import (
	"tripcost/core/types"
	"tripcost/internal/errors"
)

// ValidateTransportRequest checks the input contract for a transport query
func ValidateTransportRequest(req types.TransportRequest) error {
	if req.OriginCity == "" {
		return errors.Input("origin city is required")
	}
	if req.DestinationCity == "" {
		return errors.Input("destination city is required")
	}
	if !req.Mode.Valid() {
		return errors.Inputf("unknown transport mode: %q", string(req.Mode))
	}
	if req.Passengers < 1 {
		return errors.Inputf("passenger count must be at least 1, got %d", req.Passengers)
	}
	if req.TravelDate.IsZero() {
		return errors.Input("travel date is required")
	}
	return nil
}

// ValidateTripParams checks the input contract for budget composition
func ValidateTripParams(params types.TripParams) error {
	if err := ValidateTransportRequest(params.TransportRequest()); err != nil {
		return err
	}
	if params.EndDate.IsZero() {
		return errors.Input("end date is required")
	}
	if params.EndDate.Before(params.StartDate) {
		return errors.Input("end date precedes start date")
	}
	return nil
}
