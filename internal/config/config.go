// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"tripcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains fare pricing settings
	Pricing PricingConfig `json:"pricing"`

	// Cache contains cache settings
	Cache CacheConfig `json:"cache"`

	// Output contains output settings
	Output OutputConfig `json:"output"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Flights contains the live flight/hotel quote API settings
	Flights FlightsConfig `json:"flights"`

	// Geodata contains destination info API settings
	Geodata GeodataConfig `json:"geodata"`

	// Database contains the persisted pricing-config store settings
	Database DatabaseConfig `json:"database"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains fare pricing settings
type PricingConfig struct {
	// Currency is the currency all quotes are denominated in
	Currency string `json:"currency"`

	// CacheTTLSeconds is how long quotes and coordinate lookups stay fresh
	CacheTTLSeconds int `json:"cache_ttl_seconds"`
}

// CacheConfig contains cache settings
type CacheConfig struct {
	// Enabled enables quote caching
	Enabled bool `json:"enabled"`

	// Backend selects the cache implementation (memory, redis)
	Backend string `json:"backend"`

	// RedisAddr is the Redis address when backend is redis
	RedisAddr string `json:"redis_addr,omitempty"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	// DefaultFormat is the default output format (text, json, pdf)
	DefaultFormat string `json:"default_format"`

	// ShowBreakdown shows the fare breakdown in output
	ShowBreakdown bool `json:"show_breakdown"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// AllowedOrigins are the CORS origins for the web front-end
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
}

// FlightsConfig contains the live quote API settings
type FlightsConfig struct {
	// BaseURL is the quote API endpoint
	BaseURL string `json:"base_url"`

	// Token is the API token (usually set via TRIPCOST_FLIGHTS_TOKEN)
	Token string `json:"token,omitempty"`

	// TimeoutSeconds bounds a single live lookup
	TimeoutSeconds int `json:"timeout_seconds"`
}

// GeodataConfig contains destination info API settings
type GeodataConfig struct {
	// CountryURL is the country info API endpoint
	CountryURL string `json:"country_url"`

	// WeatherURL is the weather API endpoint
	WeatherURL string `json:"weather_url"`

	// ExchangeURL is the exchange rate API endpoint
	ExchangeURL string `json:"exchange_url"`

	// TimeoutSeconds bounds each lookup
	TimeoutSeconds int `json:"timeout_seconds"`
}

// DatabaseConfig contains the pricing-config store settings
type DatabaseConfig struct {
	// Driver selects the store implementation (memory, postgres)
	Driver string `json:"driver"`

	// DSN is the Postgres connection string when driver is postgres
	DSN string `json:"dsn,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			Currency:        "BRL",
			CacheTTLSeconds: 86400, // 24 hours
		},
		Cache: CacheConfig{
			Enabled: true,
			Backend: "memory",
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ShowBreakdown: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Flights: FlightsConfig{
			BaseURL:        "https://api.travelpayouts.com",
			TimeoutSeconds: 8,
		},
		Geodata: GeodataConfig{
			CountryURL:     "https://restcountries.com/v3.1",
			WeatherURL:     "https://api.open-meteo.com/v1",
			ExchangeURL:    "https://open.er-api.com/v6",
			TimeoutSeconds: 8,
		},
		Database: DatabaseConfig{
			Driver: "memory",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
