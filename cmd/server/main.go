// Package main - Entry point for the tripcost API server
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tripcost/adapters/geodata"
	"tripcost/adapters/travelapi"
	"tripcost/api"
	"tripcost/core/budget"
	"tripcost/core/cache"
	"tripcost/core/engine"
	"tripcost/core/estimate"
	"tripcost/core/geo"
	"tripcost/core/types"
	"tripcost/db"
	"tripcost/internal/config"
	"tripcost/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "server address (overrides config)")
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if token := os.Getenv("TRIPCOST_FLIGHTS_TOKEN"); token != "" {
		cfg.Flights.Token = token
	}
	if dsn := os.Getenv("TRIPCOST_DB_DSN"); dsn != "" {
		cfg.Database.Driver = "postgres"
		cfg.Database.DSN = dsn
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	server := buildServer(cfg)

	logging.Info("tripcost server starting",
		zap.String("addr", listenAddr),
		zap.String("version", version),
		zap.String("cache_backend", cfg.Cache.Backend))

	if err := http.ListenAndServe(listenAddr, server); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

// buildServer assembles the engine and API server from configuration
func buildServer(cfg *config.Config) *api.Server {
	currency := types.Currency(cfg.Pricing.Currency)
	ttl := time.Duration(cfg.Pricing.CacheTTLSeconds) * time.Second

	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Backend == "redis" && cfg.Cache.RedisAddr != "" {
			redisCache := cache.NewRedis(cfg.Cache.RedisAddr, ttl)
			if err := redisCache.Ping(context.Background()); err != nil {
				logging.Warn("redis unreachable, falling back to memory cache", zap.Error(err))
				store = cache.NewMemory(ttl)
			} else {
				store = redisCache
			}
		} else {
			store = cache.NewMemory(ttl)
		}
	}

	var source estimate.QuoteSource
	if cfg.Flights.Token != "" {
		source = travelapi.NewClient(cfg.Flights.BaseURL, cfg.Flights.Token,
			cfg.Pricing.Currency, time.Duration(cfg.Flights.TimeoutSeconds)*time.Second)
	} else {
		logging.Warn("no flights API token configured, accommodation will always be estimated")
	}

	estimator := estimate.New(source, store, currency,
		estimate.WithTimeout(time.Duration(cfg.Flights.TimeoutSeconds)*time.Second))
	eng := engine.New(geo.NewDefaultIndex(), store, estimator,
		budget.NewComposer(currency), currency)

	geoClient := geodata.NewClient(cfg.Geodata.CountryURL, cfg.Geodata.WeatherURL,
		cfg.Geodata.ExchangeURL, time.Duration(cfg.Geodata.TimeoutSeconds)*time.Second)

	var configStore db.ConfigStore
	if cfg.Database.Driver == "postgres" && cfg.Database.DSN != "" {
		pgStore, err := db.NewPostgresStore(context.Background(), cfg.Database.DSN)
		if err != nil {
			logging.Warn("pricing database unavailable, using in-memory settings", zap.Error(err))
			configStore = db.NewMemoryStore()
		} else {
			configStore = pgStore
		}
	} else {
		configStore = db.NewMemoryStore()
	}

	return api.NewServer(eng, geoClient, configStore, version, cfg.Server.AllowedOrigins)
}
