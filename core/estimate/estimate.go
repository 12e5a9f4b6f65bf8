// Package estimate derives accommodation prices when no live quote is
// available. The control flow is an explicit three-state machine
// (TryLiveQuote -> Estimate -> Done) so the failure path is
// enumerable: a failed live lookup silently degrades to the heuristic
// estimate, never to a user-facing error. Estimates beat blocking the
// user.
package estimate

import (
	"context"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tripcost/core/cache"
	"tripcost/core/types"
	"tripcost/internal/logging"
)

// DailyExpensesRatio derives non-accommodation daily spend from the
// nightly accommodation price
const DailyExpensesRatio = 0.7

// JitterBand is the bounded random spread applied to step-function
// estimates so similar flight prices do not produce identical quotes
const JitterBand = 0.15

// LiveLookupTimeout bounds a single live lookup. Timeout is a
// correctness requirement: the chain must proceed to estimation
// rather than block.
const LiveLookupTimeout = 8 * time.Second

// QuoteSource is the live hotel price lookup. A zero price, an error,
// or a timeout are all treated identically by the estimator.
type QuoteSource interface {
	// NightlyPrice returns the nightly accommodation price for a
	// destination code, or an error when no quote is available
	NightlyPrice(ctx context.Context, destinationCode string) (decimal.Decimal, error)
}

// chain states
type state int

const (
	stateTryLiveQuote state = iota
	stateEstimate
	stateDone
)

// Estimator runs the fallback estimation chain
type Estimator struct {
	source   QuoteSource
	cache    cache.Cache
	currency types.Currency
	timeout  time.Duration

	// rand returns a value in [0,1); injectable for exact-bound tests
	rand func() float64
}

// Option configures an Estimator
type Option func(*Estimator)

// WithRand overrides the jitter source
func WithRand(r func() float64) Option {
	return func(e *Estimator) { e.rand = r }
}

// WithTimeout overrides the live lookup timeout
func WithTimeout(d time.Duration) Option {
	return func(e *Estimator) { e.timeout = d }
}

// New creates an Estimator. source may be nil, in which case every
// request takes the estimate path.
func New(source QuoteSource, c cache.Cache, currency types.Currency, opts ...Option) *Estimator {
	e := &Estimator{
		source:   source,
		cache:    c,
		currency: currency,
		timeout:  LiveLookupTimeout,
		rand:     rand.Float64,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AccommodationPrice returns the nightly accommodation price and daily
// expenses for a destination, from cache, a live quote, or the
// flight-price heuristic — in that order. The only error it returns is
// context cancellation.
func (e *Estimator) AccommodationPrice(ctx context.Context, destinationCode string, flightPrice decimal.Decimal) (types.AccommodationEstimate, error) {
	key := "accommodation:" + destinationCode

	if e.cache != nil {
		if cached, _, ok := cache.Lookup[types.AccommodationEstimate](ctx, e.cache, key); ok {
			return cached, nil
		}
	}

	var nightly decimal.Decimal
	var source types.PriceSource

	current := stateTryLiveQuote
	for current != stateDone {
		if err := ctx.Err(); err != nil {
			return types.AccommodationEstimate{}, err
		}

		switch current {
		case stateTryLiveQuote:
			price, ok := e.tryLive(ctx, destinationCode)
			if ok {
				nightly = price
				source = types.SourceAPI
				current = stateDone
			} else {
				current = stateEstimate
			}

		case stateEstimate:
			nightly = e.EstimateFromFlightPrice(flightPrice)
			source = types.SourceEstimated
			current = stateDone
		}
	}

	result := types.AccommodationEstimate{
		Accommodation: nightly.Round(2),
		DailyExpenses: nightly.Mul(decimal.NewFromFloat(DailyExpensesRatio)).Round(2),
		Currency:      e.currency,
		Source:        source,
	}

	if e.cache != nil {
		if err := e.cache.Put(ctx, key, result, source); err != nil {
			logging.Warn("accommodation cache put failed", zap.String("key", key), zap.Error(err))
		}
	}
	return result, nil
}

// tryLive attempts the live lookup under a bounded timeout. Any
// failure mode (error, timeout, non-positive price, missing source)
// reports false and the chain moves on.
func (e *Estimator) tryLive(ctx context.Context, destinationCode string) (decimal.Decimal, bool) {
	if e.source == nil || destinationCode == "" {
		return decimal.Zero, false
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	price, err := e.source.NightlyPrice(ctx, destinationCode)
	if err != nil {
		logging.Debug("live hotel lookup failed, estimating",
			zap.String("destination", destinationCode), zap.Error(err))
		return decimal.Zero, false
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}
	return price, true
}

// hotelPriceSteps maps flight price thresholds to nightly base prices.
// A pricier flight correlates with a pricier destination.
var hotelPriceSteps = []struct {
	flightAtLeast float64
	nightly       float64
}{
	{3000, 550},
	{2000, 400},
	{1200, 280},
	{600, 200},
	{0, 150},
}

// EstimateFromFlightPrice derives a nightly accommodation price from
// the flight price step function, with bounded jitter so similar
// flights do not yield suspiciously identical quotes. The result
// always lies within JitterBand of the step value.
func (e *Estimator) EstimateFromFlightPrice(flightPrice decimal.Decimal) decimal.Decimal {
	base := hotelPriceSteps[len(hotelPriceSteps)-1].nightly
	for _, step := range hotelPriceSteps {
		if flightPrice.GreaterThanOrEqual(decimal.NewFromFloat(step.flightAtLeast)) {
			base = step.nightly
			break
		}
	}

	// jitter in [-JitterBand, +JitterBand)
	jitter := e.rand()*2*JitterBand - JitterBand
	return decimal.NewFromFloat(base * (1 + jitter)).Round(2)
}
