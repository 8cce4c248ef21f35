package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
)

// TransactionReader defines read operations for historical transactions.
// Date ranges are inclusive calendar days interpreted in UTC.
type TransactionReader interface {
	// ListTransactionsByAccountInRange retrieves an account's transactions dated within [from, to].
	ListTransactionsByAccountInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Transaction, error)

	// ListTransactionsByExpense retrieves every transaction linked to a recurring expense.
	ListTransactionsByExpense(ctx context.Context, expenseID string) ([]domain.Transaction, error)

	// ListTransactionsByExpenseInRange retrieves transactions linked to an expense within [from, to].
	ListTransactionsByExpenseInRange(ctx context.Context, expenseID string, from, to time.Time) ([]domain.Transaction, error)
}

// DailySpendingReader defines read operations for the daily spending shape
type DailySpendingReader interface {
	// ListDailySpendingAverages retrieves every (month, day) average stored for an expense.
	ListDailySpendingAverages(ctx context.Context, expenseID string) ([]domain.DailySpendingAverage, error)
}

// DailySpendingWriter defines write operations for the daily spending shape
type DailySpendingWriter interface {
	// ReplaceDailySpendingAverages atomically swaps the stored averages of an expense.
	ReplaceDailySpendingAverages(ctx context.Context, expenseID string, rows []domain.DailySpendingAverage) error
}

// TransactionRepositoryFacade combines transaction operations
type TransactionRepositoryFacade interface {
	TransactionReader
}

// DailySpendingRepositoryFacade combines daily spending operations
type DailySpendingRepositoryFacade interface {
	DailySpendingReader
	DailySpendingWriter
}
