package services

import (
	"sort"
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateCashEvents expands income rules and recurring expenses into dated
// events for one month. estimates maps expenseID to a predicted amount for
// variable expenses; a missing entry falls back to the nominal amount.
// Income events come before expense events on the same day.
func GenerateCashEvents(month calendar.YearMonth, rules []domain.IncomeRule, expenses []domain.RecurringExpense, estimates map[string]decimal.Decimal) []domain.CashEvent {
	events := make([]domain.CashEvent, 0, len(rules)*2+len(expenses))

	for _, rule := range rules {
		for _, day := range rule.PayDays {
			if day < 1 || day > month.Days() {
				continue
			}
			ruleID := rule.IncomeRuleID
			events = append(events, domain.CashEvent{
				Date:         calendar.Date(month.Year, month.Month, day),
				Amount:       domain.RoundCents(rule.ContributionAmount),
				Description:  rule.Name,
				Category:     "Income",
				Type:         domain.EventIncome,
				Origin:       domain.OriginConfigured,
				IncomeRuleID: &ruleID,
			})
		}
	}

	for _, expense := range expenses {
		dates := ExpenseOccurrences(expense, month)
		if len(dates) == 0 {
			continue
		}

		amount := expense.Amount
		eventType := domain.EventFixedExpense
		origin := domain.OriginConfigured
		description := expense.Name
		if expense.IsVariable {
			eventType = domain.EventVariableExpense
			origin = domain.OriginEstimated
			description = expense.Name + domain.EstimatedSuffix
			if est, ok := estimates[expense.ExpenseID]; ok {
				amount = est
			}
		}
		amount = domain.RoundCents(amount.Abs()).Neg()

		for _, d := range dates {
			expenseID := expense.ExpenseID
			events = append(events, domain.CashEvent{
				Date:               d,
				Amount:             amount,
				Description:        description,
				Category:           expense.Category,
				Type:               eventType,
				Origin:             origin,
				RecurringExpenseID: &expenseID,
			})
		}
	}

	SortEvents(events)
	return events
}

// ExpenseOccurrences returns the dates an expense falls on within month,
// filtered by its active bounds.
//
// Bi-weekly expenses use every second matching weekday counted from the
// start of the month (weeks 0, 2, 4). This does not follow a true 14-day
// cadence across month boundaries; there is no anchor date to derive one from.
func ExpenseOccurrences(expense domain.RecurringExpense, month calendar.YearMonth) []time.Time {
	var dates []time.Time

	switch {
	case expense.Frequency.UsesWeekday():
		if expense.DueDay < 0 || expense.DueDay > 6 {
			return nil
		}
		weekday := time.Weekday(expense.DueDay)
		for day := 1; day <= month.Days(); day++ {
			d := calendar.Date(month.Year, month.Month, day)
			if d.Weekday() != weekday {
				continue
			}
			if expense.Frequency == domain.BiWeekly && ((day-1)/7)%2 != 0 {
				continue
			}
			dates = append(dates, d)
		}
	case expense.Frequency == domain.SemiMonthly:
		first := calendar.ClampDay(month.Year, month.Month, expense.DueDay)
		second := calendar.ClampDay(month.Year, month.Month, expense.DueDay+14)
		dates = append(dates, calendar.Date(month.Year, month.Month, first))
		if second != first {
			dates = append(dates, calendar.Date(month.Year, month.Month, second))
		}
	default:
		day := calendar.ClampDay(month.Year, month.Month, expense.DueDay)
		dates = append(dates, calendar.Date(month.Year, month.Month, day))
	}

	active := dates[:0]
	for _, d := range dates {
		if calendar.Within(d, expense.ActiveFrom, expense.ActiveTo) {
			active = append(active, d)
		}
	}
	return active
}

// SortEvents orders events by calendar date, keeping the relative order of same-day events.
func SortEvents(events []domain.CashEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return calendar.Day(events[i].Date).Before(calendar.Day(events[j].Date))
	})
}
