package db

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"tripcost/core/types"
)

func TestMemoryStoreDefaults(t *testing.T) {
	store := NewMemoryStore()

	settings, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defaults := types.DefaultPricingSettings()
	if !settings.PremiumMonthly.Equal(defaults.PremiumMonthly) {
		t.Errorf("premium monthly = %s, want default %s", settings.PremiumMonthly, defaults.PremiumMonthly)
	}
	if settings.TestMode {
		t.Error("test mode must default to off")
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	updated, err := store.Update(ctx, types.PricingSettings{
		PremiumMonthly:  decimal.RequireFromString("29.90"),
		PremiumAnnual:   decimal.RequireFromString("299.00"),
		PlanningPackage: decimal.RequireFromString("79.90"),
		TestMode:        true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("update must stamp UpdatedAt")
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.PremiumMonthly.Equal(decimal.RequireFromString("29.90")) {
		t.Errorf("premium monthly = %s, want 29.90", got.PremiumMonthly)
	}
	if !got.TestMode {
		t.Error("test mode flag was lost")
	}
}
