// Package cmd provides the CLI commands for tripcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"tripcost/internal/config"
	"tripcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tripcost",
	Short: "Estimate travel trip budgets",
	Long: `tripcost estimates transport costs and tiered trip budgets.

It prices flights, buses, and car trips from distance, class, and
seasonality, and composes economy/medium/comfort budget
recommendations for a trip plan.

Examples:
  tripcost estimate vacation.trip
  tripcost estimate --format json vacation.trip
  tripcost pricing show`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tripcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(pricingCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	// Local development secrets, ignored when absent
	_ = godotenv.Load()

	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if token := os.Getenv("TRIPCOST_FLIGHTS_TOKEN"); token != "" {
		cfg.Flights.Token = token
	}

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tripcost version 0.1.0")
	},
}
