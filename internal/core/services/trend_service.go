package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/cashflow_forecast_app/internal/apperrors"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var (
	trendThresholdPercent = decimal.NewFromInt(5)
	alertThresholdRatio   = decimal.RequireFromString("1.15")
	hundred               = decimal.NewFromInt(100)
)

// trendService implements portssvc.TrendSvc.
type trendService struct {
	BaseService
	reader portsrepo.ForecastReader
}

// NewTrendService creates the spending trend detector.
func NewTrendService(reader portsrepo.ForecastReader) portssvc.TrendSvc {
	return &trendService{BaseService: newBaseService(), reader: reader}
}

var _ portssvc.TrendSvc = (*trendService)(nil)

// DetectTrends compares the 3- and 6-month averages of the complete months
// before year/month for every variable expense of the account. Months with no
// transactions count as zero. The current month is only used for the alert.
func (s *trendService) DetectTrends(ctx context.Context, accountID string, year, month int) ([]domain.ExpenseTrend, error) {
	current, err := calendar.NewYearMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if _, err := s.reader.FindAccountByID(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to find account for trends", slog.String("account_id", accountID))
		return nil, err
	}
	expenses, err := s.reader.ListRecurringExpensesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	from := current.AddMonths(-sixMonths).First()
	out := make([]domain.ExpenseTrend, 0)
	for _, exp := range expenses {
		if !exp.IsVariable {
			continue
		}
		txns, err := s.reader.ListTransactionsByExpenseInRange(ctx, exp.ExpenseID, from, current.Last())
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions for expense %s: %w", exp.ExpenseID, err)
		}
		trend := classifyTrend(exp, current, MonthlyTotals(txns))
		if trend.Alert {
			s.LogInfo(ctx, "Spending alert",
				slog.String("expense_id", exp.ExpenseID),
				slog.String("current", trend.CurrentMonthTotal.String()),
				slog.String("six_month_average", trend.SixMonthAverage.String()))
		}
		out = append(out, trend)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func classifyTrend(exp domain.RecurringExpense, current calendar.YearMonth, totals []domain.MonthlyTotal) domain.ExpenseTrend {
	byMonth := make(map[calendar.YearMonth]decimal.Decimal, len(totals))
	for _, t := range totals {
		byMonth[calendar.YearMonth{Year: t.Year, Month: t.Month}] = t.Total
	}

	windowAverage := func(n int) decimal.Decimal {
		sum := decimal.Zero
		for i := 1; i <= n; i++ {
			sum = sum.Add(byMonth[current.AddMonths(-i)])
		}
		return sum.Div(decimal.NewFromInt(int64(n)))
	}

	trend := domain.ExpenseTrend{
		ExpenseID:           exp.ExpenseID,
		Name:                exp.Name,
		Category:            exp.Category,
		CurrentMonthTotal:   domain.RoundCents(byMonth[current]),
		ThreeMonthAverage:   domain.RoundCents(windowAverage(3)),
		SixMonthAverage:     domain.RoundCents(windowAverage(sixMonths)),
		PercentChange:       decimal.Zero,
		CurrentVsSixMonthPc: decimal.Zero,
		Trend:               domain.TrendStable,
		BudgetGoal:          exp.BudgetGoal,
	}

	if trend.SixMonthAverage.IsPositive() {
		trend.PercentChange = trend.ThreeMonthAverage.Sub(trend.SixMonthAverage).Div(trend.SixMonthAverage).Mul(hundred).Round(2)
		trend.CurrentVsSixMonthPc = trend.CurrentMonthTotal.Sub(trend.SixMonthAverage).Div(trend.SixMonthAverage).Mul(hundred).Round(2)
		trend.Alert = trend.CurrentMonthTotal.GreaterThan(trend.SixMonthAverage.Mul(alertThresholdRatio))
	}
	switch {
	case trend.PercentChange.GreaterThan(trendThresholdPercent):
		trend.Trend = domain.TrendIncreasing
	case trend.PercentChange.LessThan(trendThresholdPercent.Neg()):
		trend.Trend = domain.TrendDecreasing
	}
	return trend
}
