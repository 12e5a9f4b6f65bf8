// Package cmd - pricing settings commands
package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tripcost/core/types"
	"tripcost/db"
	"tripcost/internal/config"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Pricing settings management (admin only)",
	Long: `Read and update the persisted pricing settings: premium
subscription prices, the planning package price, and the payment
test-mode flag. These do not affect trip cost estimation.`,
}

var pricingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current pricing settings",
	RunE:  runPricingShow,
}

var (
	premiumMonthly  string
	premiumAnnual   string
	planningPackage string
	testMode        bool
)

var pricingUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the pricing settings",
	RunE:  runPricingUpdate,
}

func init() {
	pricingUpdateCmd.Flags().StringVar(&premiumMonthly, "premium-monthly", "", "premium monthly price")
	pricingUpdateCmd.Flags().StringVar(&premiumAnnual, "premium-annual", "", "premium annual price")
	pricingUpdateCmd.Flags().StringVar(&planningPackage, "planning-package", "", "planning package price")
	pricingUpdateCmd.Flags().BoolVar(&testMode, "test-mode", false, "route checkouts to the gateway sandbox")

	pricingCmd.AddCommand(pricingShowCmd)
	pricingCmd.AddCommand(pricingUpdateCmd)
}

func openConfigStore(ctx context.Context) (db.ConfigStore, error) {
	cfg := config.Get()
	if cfg.Database.Driver == "postgres" {
		return db.NewPostgresStore(ctx, cfg.Database.DSN)
	}
	return db.NewMemoryStore(), nil
}

func runPricingShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := openConfigStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	settings, err := store.Get(ctx)
	if err != nil {
		return err
	}
	printSettings(settings)
	return nil
}

func runPricingUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := openConfigStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	settings, err := store.Get(ctx)
	if err != nil {
		return err
	}

	if premiumMonthly != "" {
		if settings.PremiumMonthly, err = decimal.NewFromString(premiumMonthly); err != nil {
			return fmt.Errorf("invalid premium-monthly: %w", err)
		}
	}
	if premiumAnnual != "" {
		if settings.PremiumAnnual, err = decimal.NewFromString(premiumAnnual); err != nil {
			return fmt.Errorf("invalid premium-annual: %w", err)
		}
	}
	if planningPackage != "" {
		if settings.PlanningPackage, err = decimal.NewFromString(planningPackage); err != nil {
			return fmt.Errorf("invalid planning-package: %w", err)
		}
	}
	if cmd.Flags().Changed("test-mode") {
		settings.TestMode = testMode
	}

	stored, err := store.Update(ctx, settings)
	if err != nil {
		return err
	}

	fmt.Println("Pricing settings updated:")
	printSettings(stored)
	return nil
}

func printSettings(s types.PricingSettings) {
	fmt.Printf("  premium monthly:   %s\n", s.PremiumMonthly.StringFixed(2))
	fmt.Printf("  premium annual:    %s\n", s.PremiumAnnual.StringFixed(2))
	fmt.Printf("  planning package:  %s\n", s.PlanningPackage.StringFixed(2))
	fmt.Printf("  test mode:         %t\n", s.TestMode)
	if !s.UpdatedAt.IsZero() {
		fmt.Printf("  updated at:        %s\n", s.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
	}
}
