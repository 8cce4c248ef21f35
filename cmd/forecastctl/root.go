package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/services"
	"github.com/SscSPs/cashflow_forecast_app/internal/middleware"
	"github.com/SscSPs/cashflow_forecast_app/internal/platform/config"
	"github.com/SscSPs/cashflow_forecast_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/cashflow_forecast_app/pkg/database"
	"github.com/spf13/cobra"
)

var (
	flagAccount string
	flagYear    int
	flagMonth   int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "forecastctl",
	Short:         "Cash-flow forecasting from the command line",
	Long:          "Run forecasts, estimates and insights against the forecast database and print them as JSON.",
	SilenceUsage: true,
}

func init() {
	now := time.Now()
	rootCmd.PersistentFlags().StringVarP(&flagAccount, "account", "a", "", "Account ID")
	rootCmd.PersistentFlags().IntVarP(&flagYear, "year", "y", now.Year(), "Year")
	rootCmd.PersistentFlags().IntVarP(&flagMonth, "month", "m", int(now.Month()), "Month (1-12)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level to stderr")
}

// withServices loads config, connects to the database and hands fn the service container.
func withServices(cmd *cobra.Command, fn func(ctx context.Context, svc *portssvc.ServiceContainer) (any, error)) error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := middleware.WithLogger(cmd.Context(), logger)
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	out, err := fn(ctx, services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool)))
	if err != nil {
		return err
	}
	return printJSON(cmd, out)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func requireAccount(_ *cobra.Command, _ []string) error {
	if flagAccount == "" {
		return fmt.Errorf("--account is required")
	}
	return checkMonth()
}

func checkMonth() error {
	if flagMonth < 1 || flagMonth > 12 {
		return fmt.Errorf("--month must be between 1 and 12, got %d", flagMonth)
	}
	if flagYear < 1 {
		return fmt.Errorf("--year must be positive, got %d", flagYear)
	}
	return nil
}
