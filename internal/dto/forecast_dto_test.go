package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPeriodTrendRequest_DateOnlyRule(t *testing.T) {
	RegisterValidators()

	tests := []struct {
		name    string
		req     PeriodTrendRequest
		wantErr bool
	}{
		{name: "no dates", req: PeriodTrendRequest{}},
		{name: "valid dates", req: PeriodTrendRequest{PeriodStart: strPtr("2025-06-01"), PeriodEnd: strPtr("2025-06-30"), AsOf: strPtr("2025-06-10")}},
		{name: "timestamp rejected", req: PeriodTrendRequest{AsOf: strPtr("2025-06-10T00:00:00Z")}, wantErr: true},
		{name: "impossible day rejected", req: PeriodTrendRequest{PeriodEnd: strPtr("2025-02-30")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPeriodTrendRequest_ToDomain(t *testing.T) {
	req := PeriodTrendRequest{
		PeriodStart:    strPtr("2025-06-01"),
		PeriodEnd:      strPtr("2025-06-30"),
		CurrentBalance: decimal.RequireFromString("-412.50"),
	}

	out, err := req.ToDomain("card")

	require.NoError(t, err)
	assert.Equal(t, "card", out.ExpenseID)
	require.NotNil(t, out.PeriodStart)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), *out.PeriodStart)
	require.NotNil(t, out.PeriodEnd)
	assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), *out.PeriodEnd)
	assert.Nil(t, out.AsOf)
	assert.Equal(t, "-412.5", out.CurrentBalance.String())
}

func TestToForecastResponse_AddsVariance(t *testing.T) {
	forecast := decimal.RequireFromString("-1500")
	txnID := "jan-rent"
	day := time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)
	result := &domain.ForecastResult{
		AccountID: "acct-1",
		Year:      2025,
		Month:     time.January,
		Days: []domain.DayForecast{{
			Date: day,
			Events: []domain.CashEvent{
				{Date: day, Amount: decimal.RequireFromString("-1600"), Type: domain.EventFixedExpense, Actualized: true, TransactionID: &txnID, ForecastedAmount: &forecast},
				{Date: day, Amount: decimal.RequireFromString("750"), Type: domain.EventIncome},
			},
		}},
	}

	res := ToForecastResponse(result)

	assert.Equal(t, 1, res.Month)
	assert.Empty(t, res.LowestBalanceDate)
	require.Len(t, res.Days, 1)
	assert.Equal(t, "2025-01-03", res.Days[0].Date)
	require.Len(t, res.Days[0].Events, 2)
	require.NotNil(t, res.Days[0].Events[0].Variance)
	assert.Equal(t, "-100", res.Days[0].Events[0].Variance.String())
	assert.Nil(t, res.Days[0].Events[1].Variance)
}
