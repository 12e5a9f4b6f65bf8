// Package travelapi is the live hotel price lookup client. The engine
// treats any non-2xx response, malformed body, or empty result set
// identically: the estimator falls back to the heuristic path, never
// to a user-facing error.
package travelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tripcost/internal/errors"
	"tripcost/internal/logging"
)

// Client talks to the hotel price API
type Client struct {
	baseURL    string
	token      string
	currency   string
	httpClient *http.Client
}

// NewClient creates a Client. The timeout bounds every request; the
// estimator additionally enforces its own deadline.
func NewClient(baseURL, token, currency string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		currency:   currency,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// hotelPricesResponse mirrors the hotel price endpoint payload
type hotelPricesResponse struct {
	Data []struct {
		HotelName     string  `json:"hotel_name"`
		Stars         int     `json:"stars"`
		PricePerNight float64 `json:"price_per_night"`
	} `json:"data"`
}

// NightlyPrice returns the median nightly accommodation price for the
// destination, implementing estimate.QuoteSource
func (c *Client) NightlyPrice(ctx context.Context, destinationCode string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/v2/hotels/prices?%s", c.baseURL, url.Values{
		"location": {destinationCode},
		"currency": {c.currency},
		"limit":    {"10"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, errors.Lookup("building hotel price request", err)
	}
	if c.token != "" {
		req.Header.Set("X-Access-Token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, errors.Wrap(errors.TypeNetwork, "hotel price request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, errors.Newf(errors.TypeLookup, "hotel price API returned %d", resp.StatusCode)
	}

	var body hotelPricesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, errors.Lookup("decoding hotel price response", err)
	}
	if len(body.Data) == 0 {
		return decimal.Zero, errors.Newf(errors.TypeLookup, "no hotel prices for %s", destinationCode)
	}

	prices := make([]float64, 0, len(body.Data))
	for _, h := range body.Data {
		if h.PricePerNight > 0 {
			prices = append(prices, h.PricePerNight)
		}
	}
	if len(prices) == 0 {
		return decimal.Zero, errors.Newf(errors.TypeLookup, "no usable hotel prices for %s", destinationCode)
	}

	price := median(prices)
	logging.Debug("live hotel price resolved",
		zap.String("destination", destinationCode),
		zap.Float64("nightly", price),
		zap.Int("samples", len(prices)))
	return decimal.NewFromFloat(price).Round(2), nil
}

// median avoids a single luxury outlier skewing the nightly price
func median(values []float64) float64 {
	// insertion sort, small N by construction
	for i := 1; i < len(values); i++ {
		key := values[i]
		j := i - 1
		for j >= 0 && values[j] > key {
			values[j+1] = values[j]
			j--
		}
		values[j+1] = key
	}
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}
