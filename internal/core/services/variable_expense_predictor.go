package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/SscSPs/cashflow_forecast_app/internal/apperrors"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_forecast_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	minHistoryMonths   = 3
	minTrendMonths     = 6
	maxTrendMonths     = 12
	seasonalWeight     = 0.4
	recencyWeight      = 0.6
	maxTrendAdjustment = 0.10
)

// MonthlyTotals groups transactions by UTC calendar month and sums their
// absolute amounts, oldest month first.
func MonthlyTotals(txns []domain.Transaction) []domain.MonthlyTotal {
	sums := make(map[calendar.YearMonth]decimal.Decimal)
	for _, t := range txns {
		ym := calendar.YearMonthOf(t.Date)
		sums[ym] = sums[ym].Add(t.Amount.Abs())
	}

	months := make([]calendar.YearMonth, 0, len(sums))
	for ym := range sums {
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]domain.MonthlyTotal, 0, len(months))
	for _, ym := range months {
		out = append(out, domain.MonthlyTotal{Year: ym.Year, Month: ym.Month, Total: domain.RoundCents(sums[ym])})
	}
	return out
}

// PredictVariableExpense estimates the spend of a variable expense in target
// from its monthly history. annualInflation is a fraction (0.03 for 3%).
//
// With fewer than three months of history the nominal amount is returned.
// Otherwise a seasonal mean over every month sharing the target's month
// number and a recency-weighted average of the months strictly before target
// are blended 40/60, then nudged by the least-squares trend of the months
// strictly before target. The trend may move the estimate by at most 10%.
func PredictVariableExpense(expense domain.RecurringExpense, history []domain.MonthlyTotal, target calendar.YearMonth, annualInflation float64) domain.VariableExpenseEstimate {
	est := domain.VariableExpenseEstimate{
		ExpenseID:  expense.ExpenseID,
		Name:       expense.Name,
		Year:       target.Year,
		Month:      target.Month,
		Nominal:    domain.RoundCents(expense.Amount.Abs()),
		TrendSlope: decimal.Zero,
	}

	est.DataPoints = len(history)
	if len(history) < minHistoryMonths {
		est.UsedFallback = true
		est.Base = est.Nominal
		est.Amount = est.Nominal
		return est
	}

	// months/adjusted hold only the history strictly before target.
	var months []calendar.YearMonth
	var adjusted []float64
	var sameMonth []float64
	for _, h := range history {
		ym := calendar.YearMonth{Year: h.Year, Month: h.Month}
		factor := math.Pow(1+annualInflation, float64(ym.MonthsUntil(target))/12)
		value := h.Total.InexactFloat64() * factor
		if ym.Month == target.Month {
			sameMonth = append(sameMonth, value)
		}
		if ym.Before(target) {
			months = append(months, ym)
			adjusted = append(adjusted, value)
		}
	}

	seasonal, hasSeasonal := accounting.Mean(sameMonth)
	recency, hasRecency := accounting.WeightedRecency(adjusted)
	if hasSeasonal {
		v := accounting.ToMoney(seasonal)
		est.Seasonal = &v
	}
	if hasRecency {
		v := accounting.ToMoney(recency)
		est.Recency = &v
	}

	var slope float64
	if n := len(adjusted); n >= minTrendMonths {
		from := 0
		if n > maxTrendMonths {
			from = n - maxTrendMonths
		}
		origin := months[from].Index()
		xs := make([]float64, 0, n-from)
		for _, ym := range months[from:] {
			xs = append(xs, float64(ym.Index()-origin))
		}
		slope = accounting.LinearRegressionSlope(xs, adjusted[from:])
	}
	est.TrendSlope = accounting.ToMoney(slope)

	var base float64
	switch {
	case hasSeasonal && hasRecency:
		base = seasonalWeight*seasonal + recencyWeight*recency
	case hasSeasonal:
		base = seasonal
	case hasRecency:
		base = recency
	default:
		base = est.Nominal.InexactFloat64()
	}
	est.Base = accounting.ToMoney(base)

	monthsAhead := 0
	if len(months) > 0 {
		monthsAhead = months[len(months)-1].MonthsUntil(target)
	}
	lo, hi := base*(1-maxTrendAdjustment), base*(1+maxTrendAdjustment)
	if lo > hi {
		lo, hi = hi, lo
	}
	value := accounting.Clamp(base+slope*float64(monthsAhead), lo, hi)

	est.Amount = decimal.Max(decimal.Zero, accounting.ToMoney(value))
	return est
}

// variableExpenseService implements portssvc.VariableExpenseSvc.
type variableExpenseService struct {
	BaseService
	reader portsrepo.ForecastReader
}

// NewVariableExpenseService creates the predictor service.
func NewVariableExpenseService(reader portsrepo.ForecastReader) portssvc.VariableExpenseSvc {
	return &variableExpenseService{BaseService: newBaseService(), reader: reader}
}

var _ portssvc.VariableExpenseSvc = (*variableExpenseService)(nil)

func (s *variableExpenseService) GetVariableExpenseEstimates(ctx context.Context, accountID string, year, month int) (map[string]decimal.Decimal, error) {
	estimates, err := s.ExplainVariableExpenseEstimates(ctx, accountID, year, month)
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal, len(estimates))
	for _, e := range estimates {
		out[e.ExpenseID] = e.Amount
	}
	return out, nil
}

func (s *variableExpenseService) ExplainVariableExpenseEstimates(ctx context.Context, accountID string, year, month int) ([]domain.VariableExpenseEstimate, error) {
	target, err := calendar.NewYearMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	account, err := s.reader.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for estimates", slog.String("account_id", accountID))
		return nil, err
	}

	expenses, err := s.reader.ListRecurringExpensesByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring expenses", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	history, err := loadExpenseHistories(ctx, s.reader, expenses)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expense history", slog.String("account_id", accountID))
		return nil, err
	}

	out := make([]domain.VariableExpenseEstimate, 0, len(history))
	for _, exp := range expenses {
		if !exp.IsVariable {
			continue
		}
		est := PredictVariableExpense(exp, history[exp.ExpenseID], target, account.AnnualInflationFraction())
		s.LogDebug(ctx, "Estimated variable expense",
			slog.String("expense_id", exp.ExpenseID),
			slog.String("amount", est.Amount.String()),
			slog.Bool("fallback", est.UsedFallback))
		out = append(out, est)
	}
	return out, nil
}

// loadExpenseHistories reads the full linked history of every variable expense once.
func loadExpenseHistories(ctx context.Context, reader portsrepo.TransactionReader, expenses []domain.RecurringExpense) (map[string][]domain.MonthlyTotal, error) {
	out := make(map[string][]domain.MonthlyTotal)
	for _, exp := range expenses {
		if !exp.IsVariable {
			continue
		}
		txns, err := reader.ListTransactionsByExpense(ctx, exp.ExpenseID)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions for expense %s: %w", exp.ExpenseID, err)
		}
		out[exp.ExpenseID] = MonthlyTotals(txns)
	}
	return out, nil
}

func estimateAmounts(expenses []domain.RecurringExpense, history map[string][]domain.MonthlyTotal, target calendar.YearMonth, annualInflation float64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, exp := range expenses {
		if exp.IsVariable {
			out[exp.ExpenseID] = PredictVariableExpense(exp, history[exp.ExpenseID], target, annualInflation).Amount
		}
	}
	return out
}
