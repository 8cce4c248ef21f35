package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// dailyAverageService implements portssvc.DailyAverageSvc.
type dailyAverageService struct {
	BaseService
	expenses portsrepo.RecurringExpenseReader
	txns     portsrepo.TransactionReader
	store    portsrepo.DailySpendingWriter
}

// NewDailyAverageService creates the daily spending shape refresher.
func NewDailyAverageService(expenses portsrepo.RecurringExpenseReader, txns portsrepo.TransactionReader, store portsrepo.DailySpendingWriter) portssvc.DailyAverageSvc {
	return &dailyAverageService{BaseService: newBaseService(), expenses: expenses, txns: txns, store: store}
}

var _ portssvc.DailyAverageSvc = (*dailyAverageService)(nil)

// RefreshDailyAverages rebuilds the shape of every variable expense. A failure
// on one expense is logged and does not stop the others.
func (s *dailyAverageService) RefreshDailyAverages(ctx context.Context) (int, error) {
	expenses, err := s.expenses.ListVariableRecurringExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list variable expenses")
		return 0, fmt.Errorf("failed to list variable expenses: %w", err)
	}

	refreshed := 0
	var errs []error
	for _, exp := range expenses {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		txns, err := s.txns.ListTransactionsByExpense(ctx, exp.ExpenseID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list expense transactions", slog.String("expense_id", exp.ExpenseID))
			errs = append(errs, fmt.Errorf("expense %s: %w", exp.ExpenseID, err))
			continue
		}
		rows := DailyAverages(exp.ExpenseID, txns)
		if err := s.store.ReplaceDailySpendingAverages(ctx, exp.ExpenseID, rows); err != nil {
			s.LogError(ctx, err, "Failed to store daily averages", slog.String("expense_id", exp.ExpenseID))
			errs = append(errs, fmt.Errorf("expense %s: %w", exp.ExpenseID, err))
			continue
		}
		refreshed++
		s.LogDebug(ctx, "Refreshed daily averages", slog.String("expense_id", exp.ExpenseID), slog.Int("rows", len(rows)))
	}

	s.LogInfo(ctx, "Daily average refresh finished", slog.Int("refreshed", refreshed), slog.Int("failed", len(errs)))
	return refreshed, errors.Join(errs...)
}

// DailyAverages computes, for each calendar (month, day), the mean spend on
// that day across the years in which the expense had activity in that month.
// Every day of an observed month gets a row, zero when nothing was spent.
func DailyAverages(expenseID string, txns []domain.Transaction) []domain.DailySpendingAverage {
	perDay := make(map[time.Time]decimal.Decimal)
	yearsByMonth := make(map[time.Month]map[int]bool)
	for _, t := range txns {
		d := calendar.Day(t.Date)
		perDay[d] = perDay[d].Add(t.Amount.Abs())
		if yearsByMonth[d.Month()] == nil {
			yearsByMonth[d.Month()] = make(map[int]bool)
		}
		yearsByMonth[d.Month()][d.Year()] = true
	}

	type cell struct {
		month time.Month
		day   int
	}
	sums := make(map[cell]decimal.Decimal)
	for d, amount := range perDay {
		c := cell{d.Month(), d.Day()}
		sums[c] = sums[c].Add(amount)
	}

	var rows []domain.DailySpendingAverage
	for month, years := range yearsByMonth {
		n := decimal.NewFromInt(int64(len(years)))
		// Feb 29 only exists in leap years, so size every month by a leap year.
		for day := 1; day <= calendar.DaysIn(2024, month); day++ {
			rows = append(rows, domain.DailySpendingAverage{
				ExpenseID:     expenseID,
				Month:         month,
				DayOfMonth:    day,
				AverageAmount: domain.RoundCents(sums[cell{month, day}].Div(n)),
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		return rows[i].DayOfMonth < rows[j].DayOfMonth
	})
	return rows
}
