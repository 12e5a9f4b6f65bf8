package engine

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tripcost/core/budget"
	"tripcost/core/cache"
	"tripcost/core/estimate"
	"tripcost/core/geo"
	"tripcost/core/types"
	"tripcost/internal/errors"
)

func newTestEngine(c cache.Cache) *Engine {
	estimator := estimate.New(nil, c, types.CurrencyBRL,
		estimate.WithRand(func() float64 { return 0.5 }))
	return New(geo.NewDefaultIndex(), c, estimator, budget.NewComposer(types.CurrencyBRL), types.CurrencyBRL)
}

func flightRequest() types.TransportRequest {
	return types.TransportRequest{
		OriginCity:      "São Paulo",
		DestinationCity: "Rio de Janeiro",
		Mode:            types.ModeFlight,
		Passengers:      1,
		TravelDate:      time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestCalculateTransportCostFlight(t *testing.T) {
	eng := newTestEngine(nil)

	quote, err := eng.CalculateTransportCost(flightRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// São Paulo-Rio in March prices at the short-haul minimum band
	if !quote.TotalCost.Equal(decimal.NewFromInt(550)) {
		t.Errorf("total = %s, want 550", quote.TotalCost)
	}
	if quote.DistanceEstimated {
		t.Error("distance flagged estimated for two known cities")
	}
	if quote.IsHighSeason {
		t.Error("March must not classify as high season")
	}
}

func TestCalculateTransportCostDefaultsClass(t *testing.T) {
	eng := newTestEngine(nil)

	req := flightRequest()
	req.FlightClass = ""
	plain, err := eng.CalculateTransportCost(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.FlightClass = types.FlightEconomy
	economy, err := eng.CalculateTransportCost(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plain.TotalCost.Equal(economy.TotalCost) {
		t.Errorf("empty class %s != economy %s", plain.TotalCost, economy.TotalCost)
	}
}

func TestUnknownCityFallsBackToGenericDistance(t *testing.T) {
	eng := newTestEngine(nil)

	req := flightRequest()
	req.DestinationCity = "Atlantis"
	quote, err := eng.CalculateTransportCost(req)
	if err != nil {
		t.Fatalf("unresolved city must degrade, not fail: %v", err)
	}
	if !quote.DistanceEstimated {
		t.Error("expected the estimated-distance flag")
	}
	if quote.DistanceKm != geo.GenericDistanceKm {
		t.Errorf("distance = %.0f, want generic %.0f", quote.DistanceKm, geo.GenericDistanceKm)
	}
}

func TestTransportCostValidation(t *testing.T) {
	eng := newTestEngine(nil)

	tests := []struct {
		name   string
		mutate func(*types.TransportRequest)
	}{
		{"missing origin", func(r *types.TransportRequest) { r.OriginCity = "" }},
		{"missing destination", func(r *types.TransportRequest) { r.DestinationCity = "" }},
		{"bad mode", func(r *types.TransportRequest) { r.Mode = "teleport" }},
		{"zero passengers", func(r *types.TransportRequest) { r.Passengers = 0 }},
		{"negative passengers", func(r *types.TransportRequest) { r.Passengers = -2 }},
		{"zero date", func(r *types.TransportRequest) { r.TravelDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := flightRequest()
			tt.mutate(&req)
			_, err := eng.CalculateTransportCost(req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.IsType(err, errors.TypeInput) {
				t.Errorf("expected INPUT_ERROR, got %v", err)
			}
		})
	}
}

func TestTransportCostUsesCache(t *testing.T) {
	mem := cache.NewMemory(cache.DefaultTTL)
	eng := newTestEngine(mem)
	ctx := context.Background()

	first, err := eng.TransportCost(ctx, flightRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mem.Len() == 0 {
		t.Fatal("quote was not cached")
	}

	second, err := eng.TransportCost(ctx, flightRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.TotalCost.Equal(second.TotalCost) {
		t.Errorf("cached quote diverged: %s vs %s", first.TotalCost, second.TotalCost)
	}
}

func TestComposeBudgetEndToEnd(t *testing.T) {
	eng := newTestEngine(cache.NewMemory(cache.DefaultTTL))

	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	params := types.TripParams{
		OriginCity:      "São Paulo",
		DestinationCity: "Rio de Janeiro",
		Mode:            types.ModeFlight,
		Passengers:      2,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 4),
	}

	rec, err := eng.ComposeBudget(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Days != 5 {
		t.Errorf("days = %d, want 5", rec.Days)
	}
	if !rec.Economy.TotalEstimate.LessThan(rec.Comfort.TotalEstimate) {
		t.Errorf("economy %s not below comfort %s", rec.Economy.TotalEstimate, rec.Comfort.TotalEstimate)
	}
	// no live source configured, so accommodation is estimated
	if rec.AccommodationSource != types.SourceEstimated {
		t.Errorf("accommodation source = %s, want %s", rec.AccommodationSource, types.SourceEstimated)
	}
	if rec.Medium.Transport == nil {
		t.Fatal("tiers must carry the shared transport quote")
	}
	t.Logf("2 pax, 5 days: economy=%s medium=%s comfort=%s",
		rec.Economy.TotalEstimate, rec.Medium.TotalEstimate, rec.Comfort.TotalEstimate)
}

func TestComposeBudgetValidation(t *testing.T) {
	eng := newTestEngine(nil)

	params := types.TripParams{
		OriginCity:      "São Paulo",
		DestinationCity: "Rio de Janeiro",
		Mode:            types.ModeFlight,
		Passengers:      1,
		StartDate:       time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
	}
	if _, err := eng.ComposeBudget(context.Background(), params); err == nil {
		t.Fatal("expected an error for end date before start date")
	}
}

func TestComposeBudgetCarUsesFlightAnchor(t *testing.T) {
	eng := newTestEngine(nil)

	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	params := types.TripParams{
		OriginCity:      "São Paulo",
		DestinationCity: "Rio de Janeiro",
		Mode:            types.ModeCar,
		Passengers:      2,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 2),
	}

	rec, err := eng.ComposeBudget(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the 550 economy flight equivalent anchors accommodation at the
	// 150 nightly step, never at the car's much lower quote
	if !rec.Medium.DailyAccommodation.Equal(decimal.NewFromInt(150)) {
		t.Errorf("medium accommodation = %s, want 150", rec.Medium.DailyAccommodation)
	}
}
