package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ym(y int, m time.Month) calendar.YearMonth {
	return calendar.YearMonth{Year: y, Month: m}
}

func days(dates []time.Time) []int {
	out := make([]int, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Day())
	}
	return out
}

func TestExpenseOccurrences(t *testing.T) {
	tests := []struct {
		name    string
		expense domain.RecurringExpense
		month   calendar.YearMonth
		want    []int
	}{
		{
			name:    "monthly clamps to month length",
			expense: domain.RecurringExpense{Frequency: domain.Monthly, DueDay: 31},
			month:   ym(2025, time.April),
			want:    []int{30},
		},
		{
			name:    "monthly in leap february",
			expense: domain.RecurringExpense{Frequency: domain.Monthly, DueDay: 31},
			month:   ym(2024, time.February),
			want:    []int{29},
		},
		{
			name:    "weekly every matching weekday",
			expense: domain.RecurringExpense{Frequency: domain.Weekly, DueDay: int(time.Wednesday)},
			month:   ym(2025, time.January),
			want:    []int{1, 8, 15, 22, 29},
		},
		{
			name:    "bi-weekly keeps even weeks from month start",
			expense: domain.RecurringExpense{Frequency: domain.BiWeekly, DueDay: int(time.Wednesday)},
			month:   ym(2025, time.January),
			want:    []int{1, 15, 29},
		},
		{
			name:    "semi-monthly second date clamped",
			expense: domain.RecurringExpense{Frequency: domain.SemiMonthly, DueDay: 20},
			month:   ym(2025, time.February),
			want:    []int{20, 28},
		},
		{
			name:    "semi-monthly collapses when both clamp to the same day",
			expense: domain.RecurringExpense{Frequency: domain.SemiMonthly, DueDay: 28},
			month:   ym(2025, time.February),
			want:    []int{28},
		},
		{
			name: "active bounds filter occurrences",
			expense: domain.RecurringExpense{
				Frequency:  domain.Weekly,
				DueDay:     int(time.Wednesday),
				ActiveFrom: dayPtr(2025, time.January, 8),
				ActiveTo:   dayPtr(2025, time.January, 22),
			},
			month: ym(2025, time.January),
			want:  []int{8, 15, 22},
		},
		{
			name:    "inactive month yields nothing",
			expense: domain.RecurringExpense{Frequency: domain.Monthly, DueDay: 5, ActiveTo: dayPtr(2024, time.December, 31)},
			month:   ym(2025, time.January),
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, days(services.ExpenseOccurrences(tt.expense, tt.month)))
		})
	}
}

// Bi-weekly dates restart counting each month, so the gap across a month
// boundary is not always 14 days.
func TestExpenseOccurrences_BiWeeklyDriftsAcrossMonths(t *testing.T) {
	exp := domain.RecurringExpense{Frequency: domain.BiWeekly, DueDay: int(time.Wednesday)}

	jan := services.ExpenseOccurrences(exp, ym(2025, time.January))
	feb := services.ExpenseOccurrences(exp, ym(2025, time.February))

	require.NotEmpty(t, jan)
	require.NotEmpty(t, feb)
	assert.Equal(t, []int{5, 19}, days(feb))
	assert.Equal(t, 7, calendar.DaysBetween(jan[len(jan)-1], feb[0]))
}

func TestGenerateCashEvents(t *testing.T) {
	rules := []domain.IncomeRule{{
		IncomeRuleID:       "salary",
		Name:               "Salary",
		ContributionAmount: dec("750.004"),
		Frequency:          domain.SemiMonthly,
		PayDays:            []int{1, 15, 31},
	}}
	expenses := []domain.RecurringExpense{
		{ExpenseID: "rent", Name: "Rent", Amount: dec("1500"), DueDay: 1, Category: "Housing", Frequency: domain.Monthly},
		{ExpenseID: "food", Name: "Groceries", Amount: dec("400"), DueDay: 10, Category: "Food", Frequency: domain.Monthly, IsVariable: true},
		{ExpenseID: "fuel", Name: "Fuel", Amount: dec("120"), DueDay: 20, Category: "Car", Frequency: domain.Monthly, IsVariable: true},
	}
	estimates := map[string]decimal.Decimal{"food": dec("432.5")}

	events := services.GenerateCashEvents(ym(2025, time.February), rules, expenses, estimates)

	require.Len(t, events, 5)

	// Pay day 31 does not exist in February and is skipped.
	assert.Equal(t, day(2025, time.February, 1), events[0].Date)
	assert.Equal(t, domain.EventIncome, events[0].Type)
	assert.True(t, events[0].Amount.Equal(dec("750")), "contribution rounded to cents")
	assert.Equal(t, "salary", *events[0].IncomeRuleID)

	// Income precedes expenses on the same day.
	assert.Equal(t, day(2025, time.February, 1), events[1].Date)
	assert.Equal(t, domain.EventFixedExpense, events[1].Type)
	assert.Equal(t, domain.OriginConfigured, events[1].Origin)
	assert.True(t, events[1].Amount.Equal(dec("-1500")))
	assert.Equal(t, "Rent", events[1].Description)

	food := events[2]
	assert.Equal(t, day(2025, time.February, 10), food.Date)
	assert.Equal(t, domain.EventVariableExpense, food.Type)
	assert.Equal(t, domain.OriginEstimated, food.Origin)
	assert.Equal(t, "Groceries (estimated)", food.Description)
	assert.True(t, food.Amount.Equal(dec("-432.5")))

	assert.Equal(t, day(2025, time.February, 15), events[3].Date)

	fuel := events[4]
	assert.True(t, fuel.Amount.Equal(dec("-120")), "missing estimate falls back to nominal")
	assert.Equal(t, domain.OriginEstimated, fuel.Origin)

	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Date.Before(events[i-1].Date), "events must be date ordered")
	}
}
