package main

import (
	"context"
	"fmt"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_forecast_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagExpense     string
	flagPeriodStart string
	flagPeriodEnd   string
	flagAsOf        string
	flagBalance     string
)

var forecastCmd = &cobra.Command{
	Use:     "forecast",
	Short:   "Day-by-day balance forecast for one month",
	PreRunE: requireAccount,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) (any, error) {
			res, err := svc.Forecast.GenerateForecast(ctx, flagAccount, flagYear, flagMonth)
			if err != nil {
				return nil, err
			}
			return dto.ToForecastResponse(res), nil
		})
	},
}

var sixMonthCmd = &cobra.Command{
	Use:     "six-month",
	Short:   "Six month summary starting at --year/--month",
	PreRunE: requireAccount,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) (any, error) {
			return svc.Forecast.GenerateSixMonthForecast(ctx, flagAccount, flagYear, flagMonth)
		})
	},
}

var estimatesCmd = &cobra.Command{
	Use:     "estimates",
	Short:   "Variable expense estimates with their signals",
	PreRunE: requireAccount,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) (any, error) {
			return svc.VariableExpense.ExplainVariableExpenseEstimates(ctx, flagAccount, flagYear, flagMonth)
		})
	},
}

var trendsCmd = &cobra.Command{
	Use:     "trends",
	Short:   "Rising and falling variable spend",
	PreRunE: requireAccount,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) (any, error) {
			return svc.Trend.DetectTrends(ctx, flagAccount, flagYear, flagMonth)
		})
	},
}

var recommendCmd = &cobra.Command{
	Use:     "recommend",
	Short:   "Ranked recommendations and a contribution adjustment",
	PreRunE: requireAccount,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) (any, error) {
			return svc.Recommendation.Recommend(ctx, flagAccount, flagYear, flagMonth)
		})
	},
}

var periodTrendCmd = &cobra.Command{
	Use:   "period-trend",
	Short: "Spend pace and remaining-day predictions for a billing period",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if flagExpense == "" {
			return fmt.Errorf("--expense is required")
		}
		if (flagPeriodStart == "") != (flagPeriodEnd == "") {
			return fmt.Errorf("--start and --end must be given together")
		}
		for _, d := range []string{flagPeriodStart, flagPeriodEnd, flagAsOf} {
			if d == "" {
				continue
			}
			if _, err := calendar.ParseDate(d); err != nil {
				return err
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		balance, err := decimal.NewFromString(flagBalance)
		if err != nil {
			return fmt.Errorf("invalid --balance %q: %w", flagBalance, err)
		}
		body := dto.PeriodTrendRequest{
			PeriodStart:    optional(flagPeriodStart),
			PeriodEnd:      optional(flagPeriodEnd),
			AsOf:           optional(flagAsOf),
			CurrentBalance: balance,
		}
		req, err := body.ToDomain(flagExpense)
		if err != nil {
			return err
		}
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) (any, error) {
			res, err := svc.PeriodTrend.CalculatePeriodTrendForecast(ctx, req)
			if err != nil {
				return nil, err
			}
			return dto.ToPeriodTrendResponse(res), nil
		})
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh-daily-averages",
	Short: "Rebuild the daily spending shape of every variable expense",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) (any, error) {
			n, err := svc.DailyAverage.RefreshDailyAverages(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]int{"refreshed": n}, nil
		})
	},
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func init() {
	periodTrendCmd.Flags().StringVarP(&flagExpense, "expense", "e", "", "Recurring expense ID")
	periodTrendCmd.Flags().StringVar(&flagPeriodStart, "start", "", "Period start (YYYY-MM-DD), defaults to the billing cycle")
	periodTrendCmd.Flags().StringVar(&flagPeriodEnd, "end", "", "Period end (YYYY-MM-DD)")
	periodTrendCmd.Flags().StringVar(&flagAsOf, "as-of", "", "Evaluation date (YYYY-MM-DD), defaults to today")
	periodTrendCmd.Flags().StringVarP(&flagBalance, "balance", "b", "0", "Current balance of the expense account")

	rootCmd.AddCommand(forecastCmd, sixMonthCmd, estimatesCmd, trendsCmd, recommendCmd, periodTrendCmd, refreshCmd)
}
