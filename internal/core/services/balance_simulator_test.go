package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simAccount() domain.Account {
	return domain.Account{
		AccountID:       "acct-1",
		StartingBalance: dec("2500"),
		StartDate:       day(2025, time.January, 1),
		SafeMinimum:     dec("500"),
	}
}

func TestSimulateMonth_NetChangeSumsToBalanceMovement(t *testing.T) {
	events := []domain.CashEvent{
		{Date: day(2025, time.March, 1), Amount: dec("750.10"), Type: domain.EventIncome},
		{Date: day(2025, time.March, 1), Amount: dec("-1500.333"), Type: domain.EventFixedExpense},
		{Date: day(2025, time.March, 9), Amount: dec("-33.37"), Type: domain.EventVariableExpense},
		{Date: day(2025, time.March, 15), Amount: dec("750.10"), Type: domain.EventIncome},
		{Date: day(2025, time.March, 31), Amount: dec("-0.01"), Type: domain.EventFixedExpense},
	}

	r := services.SimulateMonth(simAccount(), ym(2025, time.March), dec("1000"), day(2025, time.March, 1), events)

	require.Len(t, r.Days, 31)
	sum := decimal.Zero
	for _, d := range r.Days {
		sum = sum.Add(d.NetChange)
		assert.True(t, d.ClosingBalance.Equal(d.OpeningBalance.Add(d.NetChange)), "closing = opening + net on %s", d.Date)
	}
	first, last := r.Days[0], r.Days[len(r.Days)-1]
	assert.True(t, sum.Equal(last.ClosingBalance.Sub(first.OpeningBalance)))
	assert.True(t, r.EndingBalance.Equal(last.ClosingBalance))
}

func TestSimulateMonth_EventFreeDaysCarryBalance(t *testing.T) {
	events := []domain.CashEvent{
		{Date: day(2025, time.March, 5), Amount: dec("-100"), Type: domain.EventFixedExpense},
	}

	r := services.SimulateMonth(simAccount(), ym(2025, time.March), dec("1000"), day(2025, time.March, 1), events)

	for i := 1; i < len(r.Days); i++ {
		prev, cur := r.Days[i-1], r.Days[i]
		assert.True(t, cur.OpeningBalance.Equal(prev.ClosingBalance))
		if len(cur.Events) == 0 {
			assert.True(t, cur.NetChange.IsZero())
			assert.True(t, cur.ClosingBalance.Equal(prev.ClosingBalance))
		}
	}
	assert.NotNil(t, r.Days[0].Events, "event-free days carry an empty list")
}

func TestSimulateMonth_TracksLowestAndDaysBelowMinimum(t *testing.T) {
	events := []domain.CashEvent{
		{Date: day(2025, time.April, 10), Amount: dec("-700"), Type: domain.EventFixedExpense},
		{Date: day(2025, time.April, 20), Amount: dec("600"), Type: domain.EventIncome},
	}

	r := services.SimulateMonth(simAccount(), ym(2025, time.April), dec("1000"), day(2025, time.April, 1), events)

	assert.True(t, r.LowestBalance.Equal(dec("300")))
	assert.Equal(t, day(2025, time.April, 10), r.LowestBalanceDate)
	assert.Equal(t, 10, r.DaysBelowSafeMinimum) // April 10..19
	assert.True(t, r.Days[9].BelowSafeMinimum)
	assert.False(t, r.Days[19].BelowSafeMinimum)
}

func TestSimulateMonth_StartsOnFirstVisibleDay(t *testing.T) {
	events := []domain.CashEvent{
		{Date: day(2025, time.January, 3), Amount: dec("-50"), Type: domain.EventFixedExpense},
		{Date: day(2025, time.January, 20), Amount: dec("-25"), Type: domain.EventFixedExpense},
	}

	r := services.SimulateMonth(simAccount(), ym(2025, time.January), dec("2500"), day(2025, time.January, 10), events)

	require.Len(t, r.Days, 22)
	assert.Equal(t, day(2025, time.January, 10), r.Days[0].Date)
	assert.True(t, r.EndingBalance.Equal(dec("2475")), "events before the first visible day are not applied")
}

func TestSummarizeMonth(t *testing.T) {
	events := []domain.CashEvent{
		{Date: day(2025, time.May, 1), Amount: dec("2000"), Type: domain.EventIncome},
		{Date: day(2025, time.May, 2), Amount: dec("-1200"), Type: domain.EventFixedExpense},
		{Date: day(2025, time.May, 3), Amount: dec("-310.25"), Type: domain.EventVariableExpense},
	}
	r := services.SimulateMonth(simAccount(), ym(2025, time.May), dec("100"), day(2025, time.May, 1), events)

	s := services.SummarizeMonth(r)

	assert.True(t, s.Income.Equal(dec("2000")))
	assert.True(t, s.FixedExpenses.Equal(dec("1200")))
	assert.True(t, s.VariableExpenses.Equal(dec("310.25")))
	assert.True(t, s.TotalExpenses.Equal(dec("1510.25")))
	assert.True(t, s.OpeningBalance.Equal(dec("100")))
	assert.True(t, s.ClosingBalance.Equal(dec("589.75")))
	assert.Equal(t, domain.StatusSafe, s.Status)
}
