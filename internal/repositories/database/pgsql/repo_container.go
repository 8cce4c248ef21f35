package pgsql

import (
	portsrepo "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:          newPgxAccountRepository(dbPool),
		IncomeRuleRepo:       newPgxIncomeRuleRepository(dbPool),
		RecurringExpenseRepo: newPgxRecurringExpenseRepository(dbPool),
		TransactionRepo:      newPgxTransactionRepository(dbPool),
		DailySpendingRepo:    newPgxDailySpendingRepository(dbPool),
	}
}
