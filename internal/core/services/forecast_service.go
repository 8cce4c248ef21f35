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
	"github.com/shopspring/decimal"
)

// DefaultMaxLookbackMonths bounds how far before the target month a forward
// pass may begin.
const DefaultMaxLookbackMonths = 600

const sixMonths = 6

// forecastService implements portssvc.ForecastSvc.
type forecastService struct {
	BaseService
	reader            portsrepo.ForecastReader
	fuzzyWindowDays   int
	maxLookbackMonths int
}

// ForecastOption is a functional option for configuring the forecast service
type ForecastOption func(*forecastService)

// WithFuzzyMatchWindow sets how many days a linked transaction may drift from its scheduled date.
func WithFuzzyMatchWindow(days int) ForecastOption {
	return func(s *forecastService) {
		if days >= 0 {
			s.fuzzyWindowDays = days
		}
	}
}

// WithMaxLookbackMonths sets the date floor for the forward pass.
func WithMaxLookbackMonths(months int) ForecastOption {
	return func(s *forecastService) {
		if months > 0 {
			s.maxLookbackMonths = months
		}
	}
}

// WithClock overrides the service clock.
func WithClock(now func() time.Time) ForecastOption {
	return func(s *forecastService) {
		s.Now = now
	}
}

// NewForecastService creates the balance forecast service with the provided options
func NewForecastService(reader portsrepo.ForecastReader, options ...ForecastOption) portssvc.ForecastSvc {
	svc := &forecastService{
		BaseService:       newBaseService(),
		reader:            reader,
		fuzzyWindowDays:   DefaultFuzzyMatchWindowDays,
		maxLookbackMonths: DefaultMaxLookbackMonths,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ForecastSvc = (*forecastService)(nil)

func (s *forecastService) GenerateForecast(ctx context.Context, accountID string, year, month int) (*domain.ForecastResult, error) {
	target, err := calendar.NewYearMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	run, err := s.newRun(ctx, accountID, target, target)
	if err != nil {
		return nil, err
	}
	return run.month(target), nil
}

func (s *forecastService) GenerateSixMonthForecast(ctx context.Context, accountID string, startYear, startMonth int) (*domain.SixMonthForecast, error) {
	start, err := calendar.NewYearMonth(startYear, startMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	end := start.AddMonths(sixMonths - 1)

	run, err := s.newRun(ctx, accountID, start, end)
	if err != nil {
		return nil, err
	}

	out := &domain.SixMonthForecast{
		AccountID:   accountID,
		SafeMinimum: domain.RoundCents(run.account.SafeMinimum),
		Months:      make([]domain.MonthSummary, 0, sixMonths),
	}
	for i := 0; i < sixMonths; i++ {
		summary := SummarizeMonth(run.month(start.AddMonths(i)))
		if i == 0 || summary.LowestBalance.LessThan(out.LowestBalance) {
			out.LowestBalance = summary.LowestBalance
		}
		if summary.Status != domain.StatusSafe {
			out.MonthsAtRisk++
		}
		out.Months = append(out.Months, summary)
	}

	s.LogInfo(ctx, "Generated six month forecast",
		slog.String("account_id", accountID),
		slog.String("start", start.String()),
		slog.Int("months_at_risk", out.MonthsAtRisk))
	return out, nil
}

// forecastRun is the scope of one forecasting request. All data-store reads
// happen in newRun; afterwards every month is derived from memory and cached.
type forecastRun struct {
	svc      *forecastService
	ctx      context.Context
	account  domain.Account
	rules    []domain.IncomeRule
	expenses []domain.RecurringExpense
	byID     map[string]domain.RecurringExpense
	history  map[string][]domain.MonthlyTotal
	txns     map[calendar.YearMonth][]domain.Transaction

	passStart calendar.YearMonth
	floored   bool
	cache     map[calendar.YearMonth]*domain.ForecastResult
}

// newRun loads everything needed to simulate months from the account start
// (or the lookback floor) up to last, then runs the forward pass.
func (s *forecastService) newRun(ctx context.Context, accountID string, first, last calendar.YearMonth) (*forecastRun, error) {
	account, err := s.reader.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for forecast", slog.String("account_id", accountID))
		return nil, err
	}

	rules, err := s.reader.ListIncomeRulesByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list income rules", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list income rules: %w", err)
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

	run := &forecastRun{
		svc:      s,
		ctx:      ctx,
		account:  *account,
		rules:    rules,
		expenses: expenses,
		byID:     make(map[string]domain.RecurringExpense, len(expenses)),
		history:  history,
		txns:     make(map[calendar.YearMonth][]domain.Transaction),
		cache:    make(map[calendar.YearMonth]*domain.ForecastResult),
	}
	for _, e := range expenses {
		run.byID[e.ExpenseID] = e
	}

	startMonth := calendar.YearMonthOf(account.StartDate)
	run.passStart = startMonth
	if floor := last.AddMonths(-s.maxLookbackMonths); startMonth.Before(floor) {
		run.passStart = floor
		run.floored = true
		s.LogWarn(ctx, "Account history exceeds forecast lookback, starting from floor",
			slog.String("account_id", accountID),
			slog.String("start_month", startMonth.String()),
			slog.String("floor", floor.String()))
	}

	fetchFrom := first
	if run.passStart.Before(fetchFrom) {
		fetchFrom = run.passStart
	}
	txns, err := s.reader.ListTransactionsByAccountInRange(ctx, accountID, fetchFrom.First(), last.Last())
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	for _, t := range txns {
		if err := t.Validate(); err != nil {
			s.LogWarn(ctx, "Skipping transaction linked to both an income rule and an expense",
				slog.String("transaction_id", t.TransactionID))
			continue
		}
		ym := calendar.YearMonthOf(t.Date)
		run.txns[ym] = append(run.txns[ym], t)
	}

	run.forwardPass(last)
	return run, nil
}

// forwardPass simulates every month from passStart through last, feeding each
// closing balance into the next month.
func (r *forecastRun) forwardPass(last calendar.YearMonth) {
	opening := r.account.StartingBalance
	for ym := r.passStart; !ym.After(last); ym = ym.Next() {
		result := r.simulate(ym, opening)
		r.cache[ym] = result
		opening = result.EndingBalance
	}
}

// month returns the cached simulation of ym. Months outside the forward pass
// (before the account starts) open on the starting balance.
func (r *forecastRun) month(ym calendar.YearMonth) *domain.ForecastResult {
	if cached, ok := r.cache[ym]; ok {
		return cached
	}
	result := r.simulate(ym, r.account.StartingBalance)
	r.cache[ym] = result
	return result
}

func (r *forecastRun) simulate(ym calendar.YearMonth, opening decimal.Decimal) *domain.ForecastResult {
	firstDay := ym.First()
	if !r.floored && ym.Contains(r.account.StartDate) {
		firstDay = calendar.Day(r.account.StartDate)
	}

	estimates := estimateAmounts(r.expenses, r.history, ym, r.account.AnnualInflationFraction())
	events := GenerateCashEvents(ym, r.rules, r.expenses, estimates)
	events = ReconcileEvents(events, r.txns[ym], r.byID, r.svc.fuzzyWindowDays)

	result := SimulateMonth(r.account, ym, opening, firstDay, events)
	r.svc.LogDebug(r.ctx, "Simulated month",
		slog.String("account_id", r.account.AccountID),
		slog.String("month", ym.String()),
		slog.String("ending_balance", result.EndingBalance.String()))
	return result
}
