package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/apperrors"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_forecast_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	trendHigherRatio = decimal.RequireFromString("1.10")
	trendLowerRatio  = decimal.RequireFromString("0.90")
)

const (
	currentRateWeight = 0.5
	recentRateWeight  = 0.3
	recentRateMonths  = 3
	baseRateShare     = 0.8
	patternRateShare  = 0.2
)

type shapeKey struct {
	month time.Month
	day   int
}

// periodTrendService implements portssvc.PeriodTrendSvc.
type periodTrendService struct {
	BaseService
	reader portsrepo.ForecastReader
}

// NewPeriodTrendService creates the in-period trend forecaster.
func NewPeriodTrendService(reader portsrepo.ForecastReader) portssvc.PeriodTrendSvc {
	return &periodTrendService{BaseService: newBaseService(), reader: reader}
}

var _ portssvc.PeriodTrendSvc = (*periodTrendService)(nil)

func (s *periodTrendService) CalculatePeriodTrendForecast(ctx context.Context, req domain.PeriodTrendRequest) (*domain.PeriodTrendForecast, error) {
	expense, err := s.reader.FindRecurringExpenseByID(ctx, req.ExpenseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find expense for period trend", slog.String("expense_id", req.ExpenseID))
		return nil, err
	}
	if !expense.IsVariable {
		return nil, fmt.Errorf("%w: expense %s is not variable", apperrors.ErrValidation, expense.ExpenseID)
	}

	asOf := calendar.Day(s.now())
	if req.AsOf != nil {
		asOf = calendar.Day(*req.AsOf)
	}

	start, end, err := resolvePeriod(req, *expense, asOf)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: period start %s must be before period end %s", apperrors.ErrValidation, calendar.Format(start), calendar.Format(end))
	}
	if asOf.Before(start) {
		return nil, fmt.Errorf("%w: as-of date %s precedes period start %s", apperrors.ErrValidation, calendar.Format(asOf), calendar.Format(start))
	}

	account, err := s.reader.FindAccountByID(ctx, expense.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for expense", slog.String("account_id", expense.AccountID))
		return nil, err
	}
	allTxns, err := s.reader.ListTransactionsByExpense(ctx, expense.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense transactions: %w", err)
	}
	shapeRows, err := s.reader.ListDailySpendingAverages(ctx, expense.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily spending averages: %w", err)
	}

	asOfMonth := calendar.YearMonthOf(asOf)
	recentFrom := asOfMonth.AddMonths(-recentRateMonths).First()
	recentTo := asOfMonth.Prev().Last()
	recentTxns, err := s.reader.ListTransactionsByExpenseInRange(ctx, expense.ExpenseID, recentFrom, recentTo)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent expense transactions: %w", err)
	}

	baseline := PredictVariableExpense(*expense, MonthlyTotals(allTxns), calendar.YearMonthOf(start), account.AnnualInflationFraction()).Amount

	in := periodInput{
		start:       start,
		end:         end,
		asOf:        asOf,
		baseline:    baseline,
		actual:      req.CurrentBalance.Abs(),
		shape:       shapeIndex(shapeRows),
		recentTotal: accounting.SumAbs(transactionAmounts(recentTxns)),
		recentDays:  calendar.DaysBetween(recentFrom, recentTo) + 1,
		hasRecent:   len(recentTxns) > 0,
	}
	out := forecastPeriod(in)
	out.ExpenseID = expense.ExpenseID

	s.LogInfo(ctx, "Calculated period trend forecast",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("status", string(out.Status)),
		slog.String("predicted_total", out.PredictedTotal.String()))
	return out, nil
}

// resolvePeriod returns the explicit period, or the billing cycle containing asOf.
func resolvePeriod(req domain.PeriodTrendRequest, expense domain.RecurringExpense, asOf time.Time) (time.Time, time.Time, error) {
	switch {
	case req.PeriodStart != nil && req.PeriodEnd != nil:
		return calendar.Day(*req.PeriodStart), calendar.Day(*req.PeriodEnd), nil
	case req.PeriodStart == nil && req.PeriodEnd == nil:
		startDay := 1
		if expense.BillingCycleStartDay != nil {
			startDay = *expense.BillingCycleStartDay
		}
		start, end := calendar.BillingPeriod(startDay, asOf)
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: period start and end must be given together", apperrors.ErrValidation)
	}
}

type periodInput struct {
	start, end, asOf time.Time
	baseline         decimal.Decimal
	actual           decimal.Decimal
	shape            map[shapeKey]float64
	recentTotal      decimal.Decimal
	recentDays       int
	hasRecent        bool
}

// forecastPeriod is the arithmetic of the period trend forecast, free of I/O.
func forecastPeriod(in periodInput) *domain.PeriodTrendForecast {
	totalDays := calendar.DaysBetween(in.start, in.end) + 1
	daysElapsed := calendar.DaysBetween(in.start, in.asOf) + 1
	if daysElapsed > totalDays {
		daysElapsed = totalDays
	}

	out := &domain.PeriodTrendForecast{
		PeriodStart:      in.start,
		PeriodEnd:        in.end,
		AsOf:             in.asOf,
		TotalDays:        totalDays,
		DaysElapsed:      daysElapsed,
		DaysRemaining:    totalDays - daysElapsed,
		BaselineEstimate: in.baseline,
		ActualToDate:     domain.RoundCents(in.actual),
		DailyPredictions: []domain.DailyPrediction{},
	}

	// Shape weights are used only when at least one day of the period has history.
	var elapsedWeight, totalWeight float64
	i := 0
	calendar.EachDay(in.start, in.end, func(d time.Time) {
		w, ok := in.shape[shapeKey{d.Month(), d.Day()}]
		if ok {
			out.UsedShapeData = true
		}
		totalWeight += w
		if i < daysElapsed {
			elapsedWeight += w
		}
		i++
	})

	fraction := decimal.NewFromInt(int64(daysElapsed)).Div(decimal.NewFromInt(int64(totalDays)))
	if out.UsedShapeData && totalWeight > 0 {
		fraction = decimal.NewFromFloat(elapsedWeight / totalWeight)
	} else {
		out.UsedShapeData = false
	}
	out.FractionElapsed = fraction.Round(4)
	out.ExpectedToDate = domain.RoundCents(in.baseline.Mul(fraction))

	out.Status = domain.OnTrack
	if !out.ExpectedToDate.IsZero() {
		ratio := out.ActualToDate.Div(out.ExpectedToDate)
		switch {
		case ratio.GreaterThanOrEqual(trendHigherRatio):
			out.Status = domain.TrendingHigher
		case ratio.LessThanOrEqual(trendLowerRatio):
			out.Status = domain.TrendingLower
		}
		rounded := ratio.Round(4)
		out.TrendRatio = &rounded
	}

	current := in.actual.InexactFloat64() / float64(daysElapsed)
	base := current
	out.CurrentDailyRate = accounting.ToMoney(current)
	if in.hasRecent && in.recentDays > 0 {
		recent := in.recentTotal.InexactFloat64() / float64(in.recentDays)
		r := accounting.ToMoney(recent)
		out.RecentDailyRate = &r
		base = (currentRateWeight*current + recentRateWeight*recent) / (currentRateWeight + recentRateWeight)
	}
	out.BaseDailyRate = accounting.ToMoney(base)

	var remaining []time.Time
	var remainingWeights []float64
	if out.DaysRemaining > 0 {
		calendar.EachDay(in.asOf.AddDate(0, 0, 1), in.end, func(d time.Time) {
			remaining = append(remaining, d)
			if w, ok := in.shape[shapeKey{d.Month(), d.Day()}]; ok && out.UsedShapeData {
				remainingWeights = append(remainingWeights, w)
			}
		})
	}
	avgWeight, _ := accounting.Mean(remainingWeights)

	predicted := decimal.Zero
	for _, d := range remaining {
		rate := base
		if w, ok := in.shape[shapeKey{d.Month(), d.Day()}]; ok && out.UsedShapeData && avgWeight > 0 {
			rate = baseRateShare*base + patternRateShare*base*(w/avgWeight)
		}
		amount := accounting.ToMoney(rate)
		out.DailyPredictions = append(out.DailyPredictions, domain.DailyPrediction{Date: d, Amount: amount})
		predicted = predicted.Add(amount)
	}
	out.PredictedRemaining = predicted
	out.PredictedTotal = out.ActualToDate.Add(predicted)
	return out
}

func shapeIndex(rows []domain.DailySpendingAverage) map[shapeKey]float64 {
	out := make(map[shapeKey]float64, len(rows))
	for _, r := range rows {
		out[shapeKey{r.Month, r.DayOfMonth}] = r.AverageAmount.Abs().InexactFloat64()
	}
	return out
}

func transactionAmounts(txns []domain.Transaction) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.Amount)
	}
	return out
}
