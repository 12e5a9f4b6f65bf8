// Package engine orchestrates the estimation pipeline: resolve
// distance, classify the date, price the fare, fill in accommodation,
// compose tiers. Data-availability failures (unknown city, dead quote
// API, cache trouble) degrade to estimates; only input-contract
// violations surface as errors.
package engine

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tripcost/core/budget"
	"tripcost/core/cache"
	"tripcost/core/estimate"
	"tripcost/core/fare"
	"tripcost/core/geo"
	"tripcost/core/season"
	"tripcost/core/types"
	"tripcost/internal/logging"
)

// Engine is the estimation core exposed to the rest of the application
type Engine struct {
	cities    *geo.CityIndex
	cache     cache.Cache
	estimator *estimate.Estimator
	composer  *budget.Composer
	currency  types.Currency
}

// New creates an Engine. cache may be nil to disable memoization.
func New(cities *geo.CityIndex, c cache.Cache, estimator *estimate.Estimator, composer *budget.Composer, currency types.Currency) *Engine {
	return &Engine{
		cities:    cities,
		cache:     c,
		estimator: estimator,
		composer:  composer,
		currency:  currency,
	}
}

// CalculateTransportCost computes a transport quote. It is a pure
// computation: coordinates are local, no I/O happens, and the same
// request always yields the same quote.
func (e *Engine) CalculateTransportCost(req types.TransportRequest) (types.TransportQuote, error) {
	if err := ValidateTransportRequest(req); err != nil {
		return types.TransportQuote{}, err
	}

	distanceKm, estimated := e.resolveDistance(req.OriginCity, req.DestinationCity)
	highSeason := season.IsHighSeason(req.TravelDate)

	var quote types.TransportQuote
	switch req.Mode {
	case types.ModeFlight:
		class := req.FlightClass
		if class == "" {
			class = types.FlightEconomy
		}
		quote = fare.PriceFlight(distanceKm, class, req.Passengers, highSeason, e.currency)
	case types.ModeBus:
		class := req.BusClass
		if class == "" {
			class = types.BusConventional
		}
		quote = fare.PriceBus(distanceKm, class, req.Passengers, highSeason, e.currency)
	case types.ModeCar:
		quote = fare.PriceCar(distanceKm, req.Passengers, highSeason, e.currency)
	}

	quote.DistanceEstimated = estimated
	return quote, nil
}

// TransportCost is the cached variant of CalculateTransportCost
func (e *Engine) TransportCost(ctx context.Context, req types.TransportRequest) (types.TransportQuote, error) {
	if e.cache == nil {
		return e.CalculateTransportCost(req)
	}

	key := req.CacheKey()
	if cached, _, ok := cache.Lookup[types.TransportQuote](ctx, e.cache, key); ok {
		return cached, nil
	}

	quote, err := e.CalculateTransportCost(req)
	if err != nil {
		return types.TransportQuote{}, err
	}

	source := types.SourceAPI
	if quote.DistanceEstimated {
		source = types.SourceEstimated
	}
	if err := e.cache.Put(ctx, key, quote, source); err != nil {
		logging.Warn("transport quote cache put failed", zap.String("key", key), zap.Error(err))
	}
	return quote, nil
}

// AccommodationPrice runs the fallback estimation chain for a
// destination, anchored on the given flight price
func (e *Engine) AccommodationPrice(ctx context.Context, destinationCode string, flightPrice decimal.Decimal) (types.AccommodationEstimate, error) {
	return e.estimator.AccommodationPrice(ctx, destinationCode, flightPrice)
}

// ComposeBudget builds the three-tier budget recommendation for a trip
func (e *Engine) ComposeBudget(ctx context.Context, params types.TripParams) (types.BudgetRecommendation, error) {
	if err := ValidateTripParams(params); err != nil {
		return types.BudgetRecommendation{}, err
	}

	quote, err := e.TransportCost(ctx, params.TransportRequest())
	if err != nil {
		return types.BudgetRecommendation{}, err
	}

	accom, err := e.estimator.AccommodationPrice(ctx, params.DestinationCode, e.flightAnchor(params, quote))
	if err != nil {
		return types.BudgetRecommendation{}, err
	}

	return e.composer.Compose(params, &quote, accom), nil
}

// Cities exposes the injected city index
func (e *Engine) Cities() *geo.CityIndex {
	return e.cities
}

// resolveDistance maps the city pair to a distance, falling back to
// the documented generic distance when either city is unresolved
func (e *Engine) resolveDistance(origin, destination string) (km float64, estimated bool) {
	distanceKm, err := e.cities.Distance(origin, destination)
	if err != nil {
		logging.Debug("city unresolved, using generic distance",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.Float64("generic_km", geo.GenericDistanceKm))
		return geo.GenericDistanceKm, true
	}
	return distanceKm, false
}

// flightAnchor returns the per-person economy flight price used to
// correlate accommodation estimates. When the trip itself is a flight
// its own quote is the anchor; for bus and car trips an equivalent
// economy flight is priced for the same pair and date.
func (e *Engine) flightAnchor(params types.TripParams, quote types.TransportQuote) decimal.Decimal {
	if params.Mode == types.ModeFlight {
		return quote.CostPerPerson
	}
	equivalent := fare.PriceFlight(quote.DistanceKm, types.FlightEconomy, 1,
		season.IsHighSeason(params.StartDate), e.currency)
	return equivalent.CostPerPerson
}
