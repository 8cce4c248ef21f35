package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cashflow_forecast_app/internal/apperrors"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_forecast_app/internal/models"
	"github.com/SscSPs/cashflow_forecast_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIncomeRuleRepository struct {
	BaseRepository
}

// newPgxIncomeRuleRepository creates a new repository for income rules.
func newPgxIncomeRuleRepository(pool *pgxpool.Pool) portsrepo.IncomeRuleRepositoryFacade {
	return &PgxIncomeRuleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IncomeRuleRepositoryFacade = (*PgxIncomeRuleRepository)(nil)

// ListIncomeRulesByAccount retrieves every income rule of an account, ordered by name.
func (r *PgxIncomeRuleRepository) ListIncomeRulesByAccount(ctx context.Context, accountID string) ([]domain.IncomeRule, error) {
	query := `
		SELECT income_rule_id, account_id, name, annual_salary, contribution_amount, frequency, pay_days, created_at, last_updated_at
		FROM income_rules
		WHERE account_id = $1
		ORDER BY name, income_rule_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query income rules for account %s: %w", accountID, err)
	}
	defer rows.Close()

	rules := make([]domain.IncomeRule, 0)
	for rows.Next() {
		var m models.IncomeRule
		if err := rows.Scan(
			&m.IncomeRuleID,
			&m.AccountID,
			&m.Name,
			&m.AnnualSalary,
			&m.ContributionAmount,
			&m.Frequency,
			&m.PayDays,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan income rule row: %w", err)
		}
		rule, err := mapping.ToDomainIncomeRule(m)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income rule rows: %w", err)
	}
	return rules, nil
}

type PgxRecurringExpenseRepository struct {
	BaseRepository
}

// newPgxRecurringExpenseRepository creates a new repository for recurring expenses.
func newPgxRecurringExpenseRepository(pool *pgxpool.Pool) portsrepo.RecurringExpenseRepositoryFacade {
	return &PgxRecurringExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecurringExpenseRepositoryFacade = (*PgxRecurringExpenseRepository)(nil)

const selectRecurringExpense = `
	SELECT expense_id, account_id, name, amount, due_day, category, frequency, is_variable,
		active_from, active_to, budget_goal, billing_cycle_start_day, created_at, last_updated_at
	FROM recurring_expenses
`

func scanRecurringExpense(row pgx.Row) (domain.RecurringExpense, error) {
	var m models.RecurringExpense
	if err := row.Scan(
		&m.ExpenseID,
		&m.AccountID,
		&m.Name,
		&m.Amount,
		&m.DueDay,
		&m.Category,
		&m.Frequency,
		&m.IsVariable,
		&m.ActiveFrom,
		&m.ActiveTo,
		&m.BudgetGoal,
		&m.BillingCycleStartDay,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	); err != nil {
		return domain.RecurringExpense{}, err
	}
	return mapping.ToDomainRecurringExpense(m)
}

// FindRecurringExpenseByID retrieves a single recurring expense.
func (r *PgxRecurringExpenseRepository) FindRecurringExpenseByID(ctx context.Context, expenseID string) (*domain.RecurringExpense, error) {
	exp, err := scanRecurringExpense(r.Pool.QueryRow(ctx, selectRecurringExpense+" WHERE expense_id = $1;", expenseID))
	if err != nil {
		if err = notFound(err); errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: recurring expense %s", apperrors.ErrNotFound, expenseID)
		}
		return nil, fmt.Errorf("failed to find recurring expense %s: %w", expenseID, err)
	}
	return &exp, nil
}

// ListRecurringExpensesByAccount retrieves every recurring expense of an account, ordered by name.
func (r *PgxRecurringExpenseRepository) ListRecurringExpensesByAccount(ctx context.Context, accountID string) ([]domain.RecurringExpense, error) {
	return r.list(ctx, selectRecurringExpense+" WHERE account_id = $1 ORDER BY name, expense_id;", accountID)
}

// ListVariableRecurringExpenses retrieves the variable expenses of every account.
func (r *PgxRecurringExpenseRepository) ListVariableRecurringExpenses(ctx context.Context) ([]domain.RecurringExpense, error) {
	return r.list(ctx, selectRecurringExpense+" WHERE is_variable ORDER BY account_id, expense_id;")
}

func (r *PgxRecurringExpenseRepository) list(ctx context.Context, query string, args ...any) ([]domain.RecurringExpense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.RecurringExpense, 0)
	for rows.Next() {
		exp, err := scanRecurringExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring expense row: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring expense rows: %w", err)
	}
	return expenses, nil
}
