package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDailyAverages(t *testing.T) {
	txns := []domain.Transaction{
		expenseTxn("a", "food", day(2023, time.January, 5), "-100"),
		expenseTxn("b", "food", day(2024, time.January, 5), "-30"),
		expenseTxn("c", "food", day(2024, time.January, 5), "-20"),
		expenseTxn("d", "food", day(2024, time.January, 6), "-30"),
		expenseTxn("e", "food", day(2024, time.March, 31), "-12.34"),
	}

	rows := services.DailyAverages("food", txns)

	require.Len(t, rows, 31+31)
	byKey := make(map[[2]int]domain.DailySpendingAverage)
	for _, r := range rows {
		assert.Equal(t, "food", r.ExpenseID)
		byKey[[2]int{int(r.Month), r.DayOfMonth}] = r
	}
	// January was seen in two years, March in one.
	assert.Equal(t, "75.00", byKey[[2]int{1, 5}].AverageAmount.StringFixed(2))
	assert.Equal(t, "15.00", byKey[[2]int{1, 6}].AverageAmount.StringFixed(2))
	assert.Equal(t, "0.00", byKey[[2]int{1, 7}].AverageAmount.StringFixed(2))
	assert.Equal(t, "12.34", byKey[[2]int{3, 31}].AverageAmount.StringFixed(2))
	_, hasFeb := byKey[[2]int{2, 1}]
	assert.False(t, hasFeb, "unobserved months get no rows")
	assert.Equal(t, time.January, rows[0].Month)
	assert.Equal(t, 1, rows[0].DayOfMonth)
}

func TestRefreshDailyAverages(t *testing.T) {
	ctx := context.Background()
	reader := new(MockForecastReader)
	food := groceries()
	fuel := domain.RecurringExpense{ExpenseID: "fuel", Name: "Fuel", IsVariable: true}

	reader.On("ListVariableRecurringExpenses", ctx).Return([]domain.RecurringExpense{food, fuel}, nil)
	reader.On("ListTransactionsByExpense", ctx, "food").Return([]domain.Transaction{expenseTxn("a", "food", day(2024, time.February, 2), "-10")}, nil)
	reader.On("ListTransactionsByExpense", ctx, "fuel").Return(nil, errors.New("connection reset"))
	reader.On("ReplaceDailySpendingAverages", ctx, "food", mock.MatchedBy(func(rows []domain.DailySpendingAverage) bool {
		return len(rows) == 29
	})).Return(nil)

	svc := services.NewDailyAverageService(reader, reader, reader)
	refreshed, err := svc.RefreshDailyAverages(ctx)

	assert.Equal(t, 1, refreshed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuel")
	reader.AssertExpectations(t)
	reader.AssertNotCalled(t, "ReplaceDailySpendingAverages", ctx, "fuel", mock.Anything)
}
