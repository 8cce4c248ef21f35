package services_test

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockForecastReader is a mock type for the ForecastReader interface.
// It also satisfies DailySpendingWriter for the refresher tests.
type MockForecastReader struct {
	mock.Mock
}

func (m *MockForecastReader) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockForecastReader) ListIncomeRulesByAccount(ctx context.Context, accountID string) ([]domain.IncomeRule, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IncomeRule), args.Error(1)
}

func (m *MockForecastReader) FindRecurringExpenseByID(ctx context.Context, expenseID string) (*domain.RecurringExpense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringExpense), args.Error(1)
}

func (m *MockForecastReader) ListRecurringExpensesByAccount(ctx context.Context, accountID string) ([]domain.RecurringExpense, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringExpense), args.Error(1)
}

func (m *MockForecastReader) ListVariableRecurringExpenses(ctx context.Context) ([]domain.RecurringExpense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringExpense), args.Error(1)
}

func (m *MockForecastReader) ListTransactionsByAccountInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockForecastReader) ListTransactionsByExpense(ctx context.Context, expenseID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockForecastReader) ListTransactionsByExpenseInRange(ctx context.Context, expenseID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, expenseID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockForecastReader) ListDailySpendingAverages(ctx context.Context, expenseID string) ([]domain.DailySpendingAverage, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySpendingAverage), args.Error(1)
}

func (m *MockForecastReader) ReplaceDailySpendingAverages(ctx context.Context, expenseID string, rows []domain.DailySpendingAverage) error {
	args := m.Called(ctx, expenseID, rows)
	return args.Error(0)
}

// MockForecastSvc is a mock type for the ForecastSvc interface
type MockForecastSvc struct {
	mock.Mock
}

func (m *MockForecastSvc) GenerateForecast(ctx context.Context, accountID string, year, month int) (*domain.ForecastResult, error) {
	args := m.Called(ctx, accountID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForecastResult), args.Error(1)
}

func (m *MockForecastSvc) GenerateSixMonthForecast(ctx context.Context, accountID string, startYear, startMonth int) (*domain.SixMonthForecast, error) {
	args := m.Called(ctx, accountID, startYear, startMonth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SixMonthForecast), args.Error(1)
}

// MockTrendSvc is a mock type for the TrendSvc interface
type MockTrendSvc struct {
	mock.Mock
}

func (m *MockTrendSvc) DetectTrends(ctx context.Context, accountID string, year, month int) ([]domain.ExpenseTrend, error) {
	args := m.Called(ctx, accountID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseTrend), args.Error(1)
}

// --- fixtures ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func expenseTxn(id, expenseID string, date time.Time, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID:      id,
		Date:               date,
		Amount:             dec(amount),
		Description:        "txn " + id,
		RecurringExpenseID: strPtr(expenseID),
	}
}

func incomeTxn(id, ruleID string, date time.Time, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          date,
		Amount:        dec(amount),
		Description:   "txn " + id,
		IncomeRuleID:  strPtr(ruleID),
	}
}

// monthlyHistory builds one expense transaction per month starting at start.
func monthlyHistory(expenseID string, start time.Time, totals ...string) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(totals))
	for i, total := range totals {
		out = append(out, expenseTxn(expenseID+"-h"+strconv.Itoa(i), expenseID, start.AddDate(0, i, 0), "-"+total))
	}
	return out
}
