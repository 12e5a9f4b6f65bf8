// Package geodata fetches supporting destination information: country
// facts, current weather, and exchange rates. The three lookups are
// independent and fetched concurrently; a failed lookup leaves its
// field nil rather than failing the whole view.
package geodata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"tripcost/core/types"
	"tripcost/internal/errors"
	"tripcost/internal/logging"
)

// Client fetches destination info from public APIs
type Client struct {
	countryURL  string
	weatherURL  string
	exchangeURL string
	httpClient  *http.Client
}

// NewClient creates a Client
func NewClient(countryURL, weatherURL, exchangeURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		countryURL:  countryURL,
		weatherURL:  weatherURL,
		exchangeURL: exchangeURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// CountryInfo is a subset of the country facts API
type CountryInfo struct {
	Name       string   `json:"name"`
	Capital    string   `json:"capital,omitempty"`
	Currencies []string `json:"currencies,omitempty"`
	Languages  []string `json:"languages,omitempty"`
}

// WeatherInfo is the current weather at the destination
type WeatherInfo struct {
	TemperatureC float64 `json:"temperature_c"`
	WindKmh      float64 `json:"wind_kmh"`
}

// ExchangeInfo is the exchange rate from the base currency
type ExchangeInfo struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Info is the combined destination view
type Info struct {
	City     string        `json:"city"`
	Country  *CountryInfo  `json:"country,omitempty"`
	Weather  *WeatherInfo  `json:"weather,omitempty"`
	Exchange *ExchangeInfo `json:"exchange,omitempty"`
}

// Fetch retrieves the combined view for a destination. countryName may
// be empty, in which case the country lookup is skipped.
func (c *Client) Fetch(ctx context.Context, city types.CityLocation, countryName string, baseCurrency types.Currency) Info {
	info := Info{City: city.Name}

	var wg sync.WaitGroup

	if countryName != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			country, err := c.country(ctx, countryName)
			if err != nil {
				logging.Debug("country lookup failed", zap.String("country", countryName), zap.Error(err))
				return
			}
			info.Country = country
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		weather, err := c.weather(ctx, city.Latitude, city.Longitude)
		if err != nil {
			logging.Debug("weather lookup failed", zap.String("city", city.Name), zap.Error(err))
			return
		}
		info.Weather = weather
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		exchange, err := c.exchange(ctx, baseCurrency)
		if err != nil {
			logging.Debug("exchange lookup failed", zap.String("base", string(baseCurrency)), zap.Error(err))
			return
		}
		info.Exchange = exchange
	}()

	wg.Wait()
	return info
}

func (c *Client) country(ctx context.Context, name string) (*CountryInfo, error) {
	endpoint := fmt.Sprintf("%s/name/%s?fields=name,capital,currencies,languages",
		c.countryURL, url.PathEscape(name))

	var body []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
		Capital    []string                     `json:"capital"`
		Currencies map[string]map[string]string `json:"currencies"`
		Languages  map[string]string            `json:"languages"`
	}
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errors.NotFound("country", name)
	}

	first := body[0]
	info := &CountryInfo{Name: first.Name.Common}
	if len(first.Capital) > 0 {
		info.Capital = first.Capital[0]
	}
	for code := range first.Currencies {
		info.Currencies = append(info.Currencies, code)
	}
	for _, lang := range first.Languages {
		info.Languages = append(info.Languages, lang)
	}
	return info, nil
}

func (c *Client) weather(ctx context.Context, lat, lon float64) (*WeatherInfo, error) {
	endpoint := fmt.Sprintf("%s/forecast?latitude=%.4f&longitude=%.4f&current_weather=true",
		c.weatherURL, lat, lon)

	var body struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
		} `json:"current_weather"`
	}
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	return &WeatherInfo{
		TemperatureC: body.CurrentWeather.Temperature,
		WindKmh:      body.CurrentWeather.WindSpeed,
	}, nil
}

func (c *Client) exchange(ctx context.Context, base types.Currency) (*ExchangeInfo, error) {
	endpoint := fmt.Sprintf("%s/latest/%s", c.exchangeURL, base)

	var body struct {
		BaseCode string             `json:"base_code"`
		Rates    map[string]float64 `json:"rates"`
	}
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	if len(body.Rates) == 0 {
		return nil, errors.New(errors.TypeLookup, "empty exchange rate table")
	}

	// keep the table small for the view
	keep := map[string]bool{"USD": true, "EUR": true, "GBP": true, "BRL": true, "ARS": true, "CLP": true}
	rates := make(map[string]float64, len(keep))
	for code, rate := range body.Rates {
		if keep[code] {
			rates[code] = rate
		}
	}
	return &ExchangeInfo{Base: body.BaseCode, Rates: rates}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(errors.TypeNetwork, "building request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(errors.TypeNetwork, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.TypeLookup, "unexpected status %d from %s", resp.StatusCode, endpoint)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
