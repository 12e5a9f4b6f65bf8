// Package cmd - estimate command
package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tripcost/adapters/travelapi"
	"tripcost/core/budget"
	"tripcost/core/cache"
	"tripcost/core/engine"
	"tripcost/core/estimate"
	"tripcost/core/geo"
	"tripcost/core/output"
	"tripcost/core/tripfile"
	"tripcost/core/types"
	"tripcost/internal/config"
	"tripcost/internal/logging"
)

var (
	outputFormat  string
	outputFile    string
	showBreakdown bool
	offline       bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <plan-file>",
	Short: "Estimate budgets for a trip plan",
	Long: `Estimate transport costs and tiered budgets for every trip in a
plan file.

Examples:
  tripcost estimate vacation.trip
  tripcost estimate --format json vacation.trip
  tripcost estimate --format pdf --out quote.pdf vacation.trip
  tripcost estimate --offline vacation.trip`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json, pdf)")
	estimateCmd.Flags().StringVarP(&outputFile, "out", "o", "", "write output to a file instead of stdout")
	estimateCmd.Flags().BoolVarP(&showBreakdown, "breakdown", "b", true, "show the fare breakdown")
	estimateCmd.Flags().BoolVar(&offline, "offline", false, "skip live lookups, estimate everything")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()
	currency := types.Currency(cfg.Pricing.Currency)

	trips, err := tripfile.NewParser().ParseFile(args[0])
	if err != nil {
		return err
	}

	eng := buildEngine(cfg, currency)

	report := &output.Report{
		GeneratedAt: time.Now().UTC(),
		Currency:    currency,
	}
	for _, trip := range trips {
		rec, err := eng.ComposeBudget(ctx, trip.Params)
		if err != nil {
			return err
		}
		report.Trips = append(report.Trips, output.TripEstimate{
			Name:   trip.Name,
			Params: trip.Params,
			Budget: rec,
		})
		logging.Debug("trip estimated",
			zap.String("trip", trip.Name),
			zap.String("total_medium", rec.Medium.TotalEstimate.String()))
	}

	format := output.Format(outputFormat)
	if format == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.NewFormatter(format, showBreakdown)
	if err != nil {
		return err
	}

	w := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return formatter.Render(w, report)
}

// buildEngine assembles the estimation engine from configuration
func buildEngine(cfg *config.Config, currency types.Currency) *engine.Engine {
	ttl := time.Duration(cfg.Pricing.CacheTTLSeconds) * time.Second

	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Backend == "redis" && cfg.Cache.RedisAddr != "" {
			store = cache.NewRedis(cfg.Cache.RedisAddr, ttl)
		} else {
			store = cache.NewMemory(ttl)
		}
	}

	var source estimate.QuoteSource
	if !offline && cfg.Flights.Token != "" {
		source = travelapi.NewClient(cfg.Flights.BaseURL, cfg.Flights.Token,
			cfg.Pricing.Currency, time.Duration(cfg.Flights.TimeoutSeconds)*time.Second)
	}

	estimator := estimate.New(source, store, currency,
		estimate.WithTimeout(time.Duration(cfg.Flights.TimeoutSeconds)*time.Second))

	return engine.New(geo.NewDefaultIndex(), store, estimator,
		budget.NewComposer(currency), currency)
}
