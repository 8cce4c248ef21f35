package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/apperrors"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDetectTrends(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		history   []domain.Transaction
		wantTrend domain.SpendingTrend
		wantAlert bool
		wantThree string
		wantSix   string
	}{
		{
			name:      "rising with alert",
			history:   monthlyHistory("food", day(2025, time.January, 10), "100", "100", "100", "130", "130", "130", "140"),
			wantTrend: domain.TrendIncreasing,
			wantAlert: true,
			wantThree: "130.00",
			wantSix:   "115.00",
		},
		{
			name:      "falling",
			history:   monthlyHistory("food", day(2025, time.January, 10), "200", "200", "200", "150", "150", "150", "150"),
			wantTrend: domain.TrendDecreasing,
			wantAlert: false,
			wantThree: "150.00",
			wantSix:   "175.00",
		},
		{
			name:      "stable within five percent",
			history:   monthlyHistory("food", day(2025, time.January, 10), "100", "100", "100", "104", "104", "104", "100"),
			wantTrend: domain.TrendStable,
			wantAlert: false,
			wantThree: "104.00",
			wantSix:   "102.00",
		},
		{
			name:      "missing months count as zero",
			history:   monthlyHistory("food", day(2025, time.April, 10), "90", "90", "90"),
			wantTrend: domain.TrendIncreasing,
			wantAlert: false,
			wantThree: "90.00",
			wantSix:   "45.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := new(MockForecastReader)
			reader.On("FindAccountByID", ctx, "acct-1").Return(&domain.Account{AccountID: "acct-1"}, nil)
			reader.On("ListRecurringExpensesByAccount", ctx, "acct-1").Return([]domain.RecurringExpense{
				groceries(),
				{ExpenseID: "rent", Name: "Rent", Amount: dec("1500"), Frequency: domain.Monthly},
			}, nil)
			reader.On("ListTransactionsByExpenseInRange", ctx, "food", day(2025, time.January, 1), day(2025, time.July, 31)).Return(tt.history, nil)

			trends, err := services.NewTrendService(reader).DetectTrends(ctx, "acct-1", 2025, 7)

			require.NoError(t, err)
			require.Len(t, trends, 1, "only variable expenses are analysed")
			got := trends[0]
			assert.Equal(t, "food", got.ExpenseID)
			assert.Equal(t, tt.wantTrend, got.Trend)
			assert.Equal(t, tt.wantAlert, got.Alert)
			assert.Equal(t, tt.wantThree, got.ThreeMonthAverage.StringFixed(2))
			assert.Equal(t, tt.wantSix, got.SixMonthAverage.StringFixed(2))
			reader.AssertExpectations(t)
		})
	}
}

func TestDetectTrends_NoHistory(t *testing.T) {
	ctx := context.Background()
	reader := new(MockForecastReader)
	reader.On("FindAccountByID", ctx, "acct-1").Return(&domain.Account{AccountID: "acct-1"}, nil)
	reader.On("ListRecurringExpensesByAccount", ctx, "acct-1").Return([]domain.RecurringExpense{groceries()}, nil)
	reader.On("ListTransactionsByExpenseInRange", ctx, "food", mock.Anything, mock.Anything).Return([]domain.Transaction{}, nil)

	trends, err := services.NewTrendService(reader).DetectTrends(ctx, "acct-1", 2025, 7)

	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, domain.TrendStable, trends[0].Trend)
	assert.False(t, trends[0].Alert)
	assert.True(t, trends[0].PercentChange.IsZero())
}

func TestDetectTrends_AccountNotFound(t *testing.T) {
	ctx := context.Background()
	reader := new(MockForecastReader)
	reader.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := services.NewTrendService(reader).DetectTrends(ctx, "missing", 2025, 7)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
