package services

import (
	"context"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ForecastSvc projects an account's balance day by day.
type ForecastSvc interface {
	// GenerateForecast simulates one calendar month. Fails with apperrors.ErrNotFound
	// when the account does not exist.
	GenerateForecast(ctx context.Context, accountID string, year, month int) (*domain.ForecastResult, error)

	// GenerateSixMonthForecast folds six consecutive months starting at startYear/startMonth.
	GenerateSixMonthForecast(ctx context.Context, accountID string, startYear, startMonth int) (*domain.SixMonthForecast, error)
}

// VariableExpenseSvc predicts variable recurring expenses.
type VariableExpenseSvc interface {
	// GetVariableExpenseEstimates returns expenseID -> predicted amount for the month.
	GetVariableExpenseEstimates(ctx context.Context, accountID string, year, month int) (map[string]decimal.Decimal, error)

	// ExplainVariableExpenseEstimates returns the estimates with the signals that produced them.
	ExplainVariableExpenseEstimates(ctx context.Context, accountID string, year, month int) ([]domain.VariableExpenseEstimate, error)
}

// PeriodTrendSvc forecasts spend within an in-progress billing period.
type PeriodTrendSvc interface {
	CalculatePeriodTrendForecast(ctx context.Context, req domain.PeriodTrendRequest) (*domain.PeriodTrendForecast, error)
}

// TrendSvc flags rising or falling variable spend.
type TrendSvc interface {
	DetectTrends(ctx context.Context, accountID string, year, month int) ([]domain.ExpenseTrend, error)
}

// RecommendationSvc turns forecasts and trends into suggestions.
type RecommendationSvc interface {
	Recommend(ctx context.Context, accountID string, year, month int) (*domain.RecommendationReport, error)
}

// DailyAverageSvc maintains the stored daily spending shape.
type DailyAverageSvc interface {
	// RefreshDailyAverages recomputes the shape of every variable expense and
	// returns how many expenses were refreshed.
	RefreshDailyAverages(ctx context.Context) (int, error)
}
