package geodata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripcost/core/types"
)

func testCity() types.CityLocation {
	return types.CityLocation{Name: "Rio de Janeiro", Latitude: -22.9068, Longitude: -43.1729}
}

func TestFetchCombinesAllSources(t *testing.T) {
	country := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":{"common":"Brazil"},"capital":["Brasília"],
			"currencies":{"BRL":{"name":"Brazilian real"}},"languages":{"por":"Portuguese"}}]`))
	}))
	defer country.Close()

	weather := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":28.5,"windspeed":12.0}}`))
	}))
	defer weather.Close()

	exchange := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base_code":"BRL","rates":{"USD":0.19,"EUR":0.17,"JPY":28.1}}`))
	}))
	defer exchange.Close()

	client := NewClient(country.URL, weather.URL, exchange.URL, time.Second)
	info := client.Fetch(context.Background(), testCity(), "Brazil", types.CurrencyBRL)

	if info.City != "Rio de Janeiro" {
		t.Errorf("city = %q", info.City)
	}
	if info.Country == nil || info.Country.Name != "Brazil" || info.Country.Capital != "Brasília" {
		t.Errorf("country = %+v", info.Country)
	}
	if info.Weather == nil || info.Weather.TemperatureC != 28.5 {
		t.Errorf("weather = %+v", info.Weather)
	}
	if info.Exchange == nil || info.Exchange.Base != "BRL" {
		t.Fatalf("exchange = %+v", info.Exchange)
	}
	// the rate table is filtered to the common travel currencies
	if _, ok := info.Exchange.Rates["JPY"]; ok {
		t.Error("exchange rates were not filtered")
	}
	if info.Exchange.Rates["USD"] != 0.19 {
		t.Errorf("USD rate = %v, want 0.19", info.Exchange.Rates["USD"])
	}
}

func TestFetchToleratesPartialFailure(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	weather := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":21.0,"windspeed":8.0}}`))
	}))
	defer weather.Close()

	client := NewClient(broken.URL, weather.URL, broken.URL, time.Second)
	info := client.Fetch(context.Background(), testCity(), "Brazil", types.CurrencyBRL)

	if info.Country != nil {
		t.Error("failed country lookup must leave the field nil")
	}
	if info.Exchange != nil {
		t.Error("failed exchange lookup must leave the field nil")
	}
	if info.Weather == nil || info.Weather.TemperatureC != 21.0 {
		t.Errorf("weather = %+v", info.Weather)
	}
}

func TestFetchSkipsCountryWithoutName(t *testing.T) {
	var countryCalled bool
	country := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		countryCalled = true
		w.Write([]byte(`[]`))
	}))
	defer country.Close()

	weather := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":21.0,"windspeed":8.0}}`))
	}))
	defer weather.Close()

	exchange := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base_code":"BRL","rates":{"USD":0.19}}`))
	}))
	defer exchange.Close()

	client := NewClient(country.URL, weather.URL, exchange.URL, time.Second)
	info := client.Fetch(context.Background(), testCity(), "", types.CurrencyBRL)

	if countryCalled {
		t.Error("country lookup ran without a country name")
	}
	if info.Country != nil {
		t.Error("country must be nil when the lookup is skipped")
	}
}
