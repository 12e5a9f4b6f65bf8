package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"tripcost/core/budget"
	"tripcost/core/cache"
	"tripcost/core/engine"
	"tripcost/core/estimate"
	"tripcost/core/geo"
	"tripcost/core/types"
	"tripcost/db"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	mem := cache.NewMemory(cache.DefaultTTL)
	estimator := estimate.New(nil, mem, types.CurrencyBRL,
		estimate.WithRand(func() float64 { return 0.5 }))
	eng := engine.New(geo.NewDefaultIndex(), mem, estimator,
		budget.NewComposer(types.CurrencyBRL), types.CurrencyBRL)
	return NewServer(eng, nil, db.NewMemoryStore(), "test", nil)
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestTransportCostEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/transport-cost", TransportCostRequest{
		OriginCity:      "São Paulo",
		DestinationCity: "Rio de Janeiro",
		Mode:            "flight",
		Passengers:      1,
		TravelDate:      "2026-03-10",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp TransportCostResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Quote.TotalCost.Equal(decimal.NewFromInt(550)) {
		t.Errorf("total = %s, want 550", resp.Quote.TotalCost)
	}
	if resp.Metadata == nil || resp.Metadata.EngineVersion != "test" {
		t.Errorf("missing or wrong metadata: %+v", resp.Metadata)
	}
}

func TestTransportCostRejectsBadInput(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body TransportCostRequest
	}{
		{"missing date", TransportCostRequest{OriginCity: "São Paulo", DestinationCity: "Rio de Janeiro", Mode: "flight", Passengers: 1}},
		{"bad mode", TransportCostRequest{OriginCity: "São Paulo", DestinationCity: "Rio de Janeiro", Mode: "boat", Passengers: 1, TravelDate: "2026-03-10"}},
		{"zero passengers", TransportCostRequest{OriginCity: "São Paulo", DestinationCity: "Rio de Janeiro", Mode: "flight", TravelDate: "2026-03-10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, s, "/transport-cost", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", rec.Code, rec.Body)
			}
			var errResp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if errResp.Code == "" {
				t.Error("error response carries no code")
			}
		})
	}
}

func TestTransportCostRejectsMalformedJSON(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/transport-cost", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestBudgetEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/budget", BudgetRequest{
		OriginCity:      "São Paulo",
		DestinationCity: "Rio de Janeiro",
		Mode:            "flight",
		Passengers:      2,
		StartDate:       "2026-03-10",
		EndDate:         "2026-03-14",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp BudgetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Budget.Days != 5 {
		t.Errorf("days = %d, want 5", resp.Budget.Days)
	}
	if !resp.Budget.Economy.TotalEstimate.LessThan(resp.Budget.Comfort.TotalEstimate) {
		t.Errorf("economy %s not below comfort %s",
			resp.Budget.Economy.TotalEstimate, resp.Budget.Comfort.TotalEstimate)
	}
	if resp.Metadata == nil || resp.Metadata.RequestID == "" || resp.Metadata.InputHash == "" {
		t.Errorf("budget metadata incomplete: %+v", resp.Metadata)
	}
}

func TestBudgetUnknownCityStillSucceeds(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/budget", BudgetRequest{
		OriginCity:      "São Paulo",
		DestinationCity: "Atlantis",
		Mode:            "flight",
		Passengers:      1,
		StartDate:       "2026-03-10",
		EndDate:         "2026-03-12",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown destination must estimate, not fail: status %d, body %s", rec.Code, rec.Body)
	}

	var resp BudgetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if tq := resp.Budget.Medium.Transport; tq == nil || !tq.DistanceEstimated {
		t.Error("expected the estimated-distance flag on the transport quote")
	}
}

func TestAccommodationEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/accommodation?destination=RIO&flight_price=900", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp AccommodationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Estimate.Source != types.SourceEstimated {
		t.Errorf("source = %s, want %s", resp.Estimate.Source, types.SourceEstimated)
	}
	if !resp.Estimate.Accommodation.Equal(decimal.NewFromInt(200)) {
		t.Errorf("accommodation = %s, want 200", resp.Estimate.Accommodation)
	}
}

func TestAccommodationRequiresDestination(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/accommodation", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPricingConfigRoundTrip(t *testing.T) {
	s := newTestServer(t)

	payload, _ := json.Marshal(PricingSettingsRequest{
		PremiumMonthly:  "24.90",
		PremiumAnnual:   "249.00",
		PlanningPackage: "59.90",
		TestMode:        true,
	})
	put := httptest.NewRequest(http.MethodPut, "/pricing-config", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, put)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, body %s", rec.Code, rec.Body)
	}

	get := httptest.NewRequest(http.MethodGet, "/pricing-config", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, get)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, body %s", rec.Code, rec.Body)
	}

	var settings types.PricingSettings
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if !settings.PremiumMonthly.Equal(decimal.RequireFromString("24.90")) {
		t.Errorf("premium monthly = %s, want 24.90", settings.PremiumMonthly)
	}
	if !settings.TestMode {
		t.Error("test mode flag was lost")
	}
}

func TestPricingConfigRejectsNegativePrice(t *testing.T) {
	s := newTestServer(t)

	payload, _ := json.Marshal(PricingSettingsRequest{
		PremiumMonthly:  "-1",
		PremiumAnnual:   "249.00",
		PlanningPackage: "59.90",
	})
	req := httptest.NewRequest(http.MethodPut, "/pricing-config", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDestinationInfoUnavailableWithoutClient(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/destination-info?city=Rio+de+Janeiro", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode health body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
}
