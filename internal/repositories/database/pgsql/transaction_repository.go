package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_forecast_app/internal/models"
	"github.com/SscSPs/cashflow_forecast_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for historical transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const selectTransaction = `
	SELECT transaction_id, account_id, transaction_date, amount, description, category,
		income_rule_id, recurring_expense_id, created_at, last_updated_at
	FROM transactions
`

// Ties on the same day keep insertion order so reconciliation stays deterministic.
const orderTransactions = " ORDER BY transaction_date, created_at, transaction_id;"

// ListTransactionsByAccountInRange retrieves an account's transactions dated within [from, to].
func (r *PgxTransactionRepository) ListTransactionsByAccountInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Transaction, error) {
	return r.list(ctx,
		selectTransaction+" WHERE account_id = $1 AND transaction_date BETWEEN $2 AND $3"+orderTransactions,
		accountID, calendar.Day(from), calendar.Day(to))
}

// ListTransactionsByExpense retrieves every transaction linked to a recurring expense.
func (r *PgxTransactionRepository) ListTransactionsByExpense(ctx context.Context, expenseID string) ([]domain.Transaction, error) {
	return r.list(ctx, selectTransaction+" WHERE recurring_expense_id = $1"+orderTransactions, expenseID)
}

// ListTransactionsByExpenseInRange retrieves transactions linked to an expense within [from, to].
func (r *PgxTransactionRepository) ListTransactionsByExpenseInRange(ctx context.Context, expenseID string, from, to time.Time) ([]domain.Transaction, error) {
	return r.list(ctx,
		selectTransaction+" WHERE recurring_expense_id = $1 AND transaction_date BETWEEN $2 AND $3"+orderTransactions,
		expenseID, calendar.Day(from), calendar.Day(to))
}

func (r *PgxTransactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.TransactionDate,
			&m.Amount,
			&m.Description,
			&m.Category,
			&m.IncomeRuleID,
			&m.RecurringExpenseID,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}
