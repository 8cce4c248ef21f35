package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashflow_forecast_app/internal/models"
	"github.com/SscSPs/cashflow_forecast_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDailySpendingRepository struct {
	BaseRepository
}

// newPgxDailySpendingRepository creates a new repository for the daily spending shape.
func newPgxDailySpendingRepository(pool *pgxpool.Pool) portsrepo.DailySpendingRepositoryFacade {
	return &PgxDailySpendingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DailySpendingRepositoryFacade = (*PgxDailySpendingRepository)(nil)

// ListDailySpendingAverages retrieves the stored averages of an expense ordered by month and day.
func (r *PgxDailySpendingRepository) ListDailySpendingAverages(ctx context.Context, expenseID string) ([]domain.DailySpendingAverage, error) {
	query := `
		SELECT expense_id, month, day_of_month, average_amount
		FROM daily_spending_averages
		WHERE expense_id = $1
		ORDER BY month, day_of_month;
	`
	rows, err := r.Pool.Query(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily spending averages for %s: %w", expenseID, err)
	}
	defer rows.Close()

	averages := make([]domain.DailySpendingAverage, 0)
	for rows.Next() {
		var m models.DailySpendingAverage
		if err := rows.Scan(&m.ExpenseID, &m.Month, &m.DayOfMonth, &m.AverageAmount); err != nil {
			return nil, fmt.Errorf("failed to scan daily spending average row: %w", err)
		}
		averages = append(averages, mapping.ToDomainDailySpendingAverage(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily spending average rows: %w", err)
	}
	return averages, nil
}

// ReplaceDailySpendingAverages deletes the stored averages of an expense and
// inserts rows in one database transaction, so readers never see a partial shape.
func (r *PgxDailySpendingRepository) ReplaceDailySpendingAverages(ctx context.Context, expenseID string, rows []domain.DailySpendingAverage) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM daily_spending_averages WHERE expense_id = $1;`, expenseID); err != nil {
		return fmt.Errorf("failed to clear daily spending averages for %s: %w", expenseID, err)
	}

	if len(rows) > 0 {
		insert := `
			INSERT INTO daily_spending_averages (expense_id, month, day_of_month, average_amount)
			VALUES ($1, $2, $3, $4);
		`
		batch := &pgx.Batch{}
		for _, row := range rows {
			m := mapping.ToModelDailySpendingAverage(row)
			batch.Queue(insert, expenseID, m.Month, m.DayOfMonth, m.AverageAmount)
		}

		br := tx.SendBatch(ctx, batch)
		var batchErr error
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil && batchErr == nil {
				batchErr = fmt.Errorf("failed to insert daily spending average %d/%d for %s: %w", rows[i].Month, rows[i].DayOfMonth, expenseID, err)
			}
		}
		if err := br.Close(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to close daily spending batch: %w", err)
		}
		if batchErr != nil {
			return batchErr
		}
	}

	return r.Commit(ctx, tx)
}
