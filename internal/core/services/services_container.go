package services

import (
	portsrepo "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_forecast_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	reader := repos.ForecastReader()
	container := &portssvc.ServiceContainer{}

	container.Forecast = NewForecastService(
		reader,
		WithFuzzyMatchWindow(cfg.FuzzyMatchWindowDays),
		WithMaxLookbackMonths(cfg.MaxForecastLookbackMonths),
	)
	container.VariableExpense = NewVariableExpenseService(reader)
	container.PeriodTrend = NewPeriodTrendService(reader)
	container.Trend = NewTrendService(reader)

	// Recommendations sit on top of the forecast and trend services
	container.Recommendation = NewRecommendationService(reader, container.Forecast, container.Trend)

	container.DailyAverage = NewDailyAverageService(repos.RecurringExpenseRepo, repos.TransactionRepo, repos.DailySpendingRepo)

	return container
}
