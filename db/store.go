// Package db persists the admin-managed pricing settings. The
// estimation core never reads these; they govern premium and paywall
// economics only.
package db

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "github.com/lib/pq"

	"tripcost/core/types"
	"tripcost/internal/errors"
)

// ConfigStore reads and writes pricing settings
type ConfigStore interface {
	// Get returns the current settings, or the defaults when none
	// have been saved yet
	Get(ctx context.Context) (types.PricingSettings, error)

	// Update replaces the settings and returns the stored record
	Update(ctx context.Context, settings types.PricingSettings) (types.PricingSettings, error)

	// Close releases the store
	Close() error
}

// MemoryStore is an in-process ConfigStore for tests and development
type MemoryStore struct {
	mu       sync.RWMutex
	settings types.PricingSettings
}

// NewMemoryStore creates a MemoryStore seeded with the defaults
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{settings: types.DefaultPricingSettings()}
}

// Get returns the current settings
func (s *MemoryStore) Get(_ context.Context) (types.PricingSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

// Update replaces the settings
func (s *MemoryStore) Update(_ context.Context, settings types.PricingSettings) (types.PricingSettings, error) {
	settings.UpdatedAt = time.Now().UTC()
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return settings, nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

// PostgresStore persists settings in Postgres
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the database and ensures the schema exists
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Config("opening pricing database", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		return nil, errors.Config("pinging pricing database", err)
	}

	store := &PostgresStore{db: conn}
	if err := store.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS pricing_settings (
	id               UUID PRIMARY KEY,
	premium_monthly  NUMERIC(10,2) NOT NULL,
	premium_annual   NUMERIC(10,2) NOT NULL,
	planning_package NUMERIC(10,2) NOT NULL,
	test_mode        BOOLEAN NOT NULL DEFAULT FALSE,
	updated_at       TIMESTAMPTZ NOT NULL
)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return errors.Config("creating pricing_settings table", err)
	}
	return nil
}

// Get returns the most recently updated settings row
func (s *PostgresStore) Get(ctx context.Context) (types.PricingSettings, error) {
	const query = `
SELECT premium_monthly, premium_annual, planning_package, test_mode, updated_at
FROM pricing_settings
ORDER BY updated_at DESC
LIMIT 1`

	var (
		monthly, annual, pkg string
		settings             types.PricingSettings
	)
	err := s.db.QueryRowContext(ctx, query).Scan(
		&monthly, &annual, &pkg, &settings.TestMode, &settings.UpdatedAt)
	if err == sql.ErrNoRows {
		return types.DefaultPricingSettings(), nil
	}
	if err != nil {
		return types.PricingSettings{}, errors.Internal("reading pricing settings", err)
	}

	if settings.PremiumMonthly, err = decimal.NewFromString(monthly); err != nil {
		return types.PricingSettings{}, errors.Internal("parsing premium_monthly", err)
	}
	if settings.PremiumAnnual, err = decimal.NewFromString(annual); err != nil {
		return types.PricingSettings{}, errors.Internal("parsing premium_annual", err)
	}
	if settings.PlanningPackage, err = decimal.NewFromString(pkg); err != nil {
		return types.PricingSettings{}, errors.Internal("parsing planning_package", err)
	}
	return settings, nil
}

// Update inserts a new settings row; history is kept for auditability
func (s *PostgresStore) Update(ctx context.Context, settings types.PricingSettings) (types.PricingSettings, error) {
	const insert = `
INSERT INTO pricing_settings (id, premium_monthly, premium_annual, planning_package, test_mode, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	settings.UpdatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx, insert,
		uuid.New(),
		settings.PremiumMonthly.StringFixed(2),
		settings.PremiumAnnual.StringFixed(2),
		settings.PlanningPackage.StringFixed(2),
		settings.TestMode,
		settings.UpdatedAt)
	if err != nil {
		return types.PricingSettings{}, errors.Internal("saving pricing settings", err)
	}
	return settings, nil
}

// Close closes the database
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
