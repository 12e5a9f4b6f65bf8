package travelapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNightlyPriceMedian(t *testing.T) {
	var gotPath, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Access-Token")
		w.Header().Set("Content-Type", "application/json")
		// a luxury outlier that the median must ignore
		w.Write([]byte(`{"data":[
			{"hotel_name":"Pousada A","stars":3,"price_per_night":180},
			{"hotel_name":"Hotel B","stars":4,"price_per_night":260},
			{"hotel_name":"Palace C","stars":5,"price_per_night":2400}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-123", "BRL", time.Second)
	price, err := client.NightlyPrice(context.Background(), "RIO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(decimal.NewFromInt(260)) {
		t.Errorf("nightly = %s, want median 260", price)
	}
	if gotPath != "/v2/hotels/prices" {
		t.Errorf("path = %q", gotPath)
	}
	if gotToken != "tok-123" {
		t.Errorf("token header = %q", gotToken)
	}
}

func TestNightlyPriceEvenSampleCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"price_per_night":100},
			{"price_per_night":300},
			{"price_per_night":200},
			{"price_per_night":400}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "BRL", time.Second)
	price, err := client.NightlyPrice(context.Background(), "SSA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !price.Equal(decimal.NewFromInt(250)) {
		t.Errorf("nightly = %s, want 250", price)
	}
}

func TestNightlyPriceErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"upstream failure", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
		{"empty result set", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[]}`))
		}},
		{"only zero prices", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"price_per_night":0}]}`))
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": nope`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, "", "BRL", time.Second)
			if _, err := client.NightlyPrice(context.Background(), "GIG"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMedianSingleValue(t *testing.T) {
	if got := median([]float64{42}); got != 42 {
		t.Errorf("median = %v, want 42", got)
	}
}
