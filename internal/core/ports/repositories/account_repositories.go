package repositories

import (
	"context"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	// Returns apperrors.ErrNotFound when the account does not exist.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// IncomeRuleReader defines read operations for income rules
type IncomeRuleReader interface {
	// ListIncomeRulesByAccount retrieves every income rule configured for an account.
	ListIncomeRulesByAccount(ctx context.Context, accountID string) ([]domain.IncomeRule, error)
}

// RecurringExpenseReader defines read operations for recurring expenses
type RecurringExpenseReader interface {
	// FindRecurringExpenseByID retrieves a single expense.
	// Returns apperrors.ErrNotFound when the expense does not exist.
	FindRecurringExpenseByID(ctx context.Context, expenseID string) (*domain.RecurringExpense, error)

	// ListRecurringExpensesByAccount retrieves every recurring expense configured for an account.
	ListRecurringExpensesByAccount(ctx context.Context, accountID string) ([]domain.RecurringExpense, error)

	// ListVariableRecurringExpenses retrieves variable expenses across all accounts.
	ListVariableRecurringExpenses(ctx context.Context) ([]domain.RecurringExpense, error)
}

// AccountRepositoryFacade combines the account-scoped readers
type AccountRepositoryFacade interface {
	AccountReader
}

// IncomeRuleRepositoryFacade combines income rule operations
type IncomeRuleRepositoryFacade interface {
	IncomeRuleReader
}

// RecurringExpenseRepositoryFacade combines recurring expense operations
type RecurringExpenseRepositoryFacade interface {
	RecurringExpenseReader
}
