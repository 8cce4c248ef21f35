package repositories

// ForecastReader bundles every read the forecasting core performs.
// The core never writes; see DailySpendingWriter for the one optional cache.
type ForecastReader interface {
	AccountReader
	IncomeRuleReader
	RecurringExpenseReader
	TransactionReader
	DailySpendingReader
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo          AccountRepositoryFacade
	IncomeRuleRepo       IncomeRuleRepositoryFacade
	RecurringExpenseRepo RecurringExpenseRepositoryFacade
	TransactionRepo      TransactionRepositoryFacade
	DailySpendingRepo    DailySpendingRepositoryFacade
}

// ForecastReader composes the individual repositories into one reader.
func (p RepositoryProvider) ForecastReader() ForecastReader {
	return forecastReader{
		AccountRepositoryFacade:          p.AccountRepo,
		IncomeRuleRepositoryFacade:       p.IncomeRuleRepo,
		RecurringExpenseRepositoryFacade: p.RecurringExpenseRepo,
		TransactionRepositoryFacade:      p.TransactionRepo,
		DailySpendingReader:              p.DailySpendingRepo,
	}
}

type forecastReader struct {
	AccountRepositoryFacade
	IncomeRuleRepositoryFacade
	RecurringExpenseRepositoryFacade
	TransactionRepositoryFacade
	DailySpendingReader
}
