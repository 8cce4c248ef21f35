package services

import (
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SimulateMonth walks the days of month from firstDay to the month end,
// applying each day's events to a running balance that starts at opening.
// Events dated outside that range are ignored. Every balance is rounded to cents.
func SimulateMonth(account domain.Account, month calendar.YearMonth, opening decimal.Decimal, firstDay time.Time, events []domain.CashEvent) *domain.ForecastResult {
	first := calendar.Day(firstDay)
	if !month.Contains(first) {
		first = month.First()
	}

	byDay := make(map[time.Time][]domain.CashEvent)
	for _, e := range events {
		d := calendar.Day(e.Date)
		byDay[d] = append(byDay[d], e)
	}

	result := &domain.ForecastResult{
		AccountID:       account.AccountID,
		Year:            month.Year,
		Month:           month.Month,
		SafeMinimum:     domain.RoundCents(account.SafeMinimum),
		StartingBalance: domain.RoundCents(opening),
		Days:            make([]domain.DayForecast, 0, calendar.DaysBetween(first, month.Last())+1),
	}

	balance := result.StartingBalance
	calendar.EachDay(first, month.Last(), func(d time.Time) {
		dayEvents := byDay[d]
		if dayEvents == nil {
			dayEvents = []domain.CashEvent{}
		}

		net := decimal.Zero
		for _, e := range dayEvents {
			net = net.Add(e.Amount)
		}
		net = domain.RoundCents(net)
		closing := domain.RoundCents(balance.Add(net))
		below := closing.LessThan(result.SafeMinimum)

		result.Days = append(result.Days, domain.DayForecast{
			Date:             d,
			Events:           dayEvents,
			OpeningBalance:   balance,
			NetChange:        net,
			ClosingBalance:   closing,
			BelowSafeMinimum: below,
		})

		if len(result.Days) == 1 || closing.LessThan(result.LowestBalance) {
			result.LowestBalance = closing
			result.LowestBalanceDate = d
		}
		if below {
			result.DaysBelowSafeMinimum++
		}
		balance = closing
	})

	result.EndingBalance = balance
	return result
}

// SummarizeMonth folds a simulated month into income and expense totals.
// Expense totals are reported as positive amounts.
func SummarizeMonth(r *domain.ForecastResult) domain.MonthSummary {
	summary := domain.MonthSummary{
		Year:                 r.Year,
		Month:                r.Month,
		Income:               decimal.Zero,
		FixedExpenses:        decimal.Zero,
		VariableExpenses:     decimal.Zero,
		OpeningBalance:       r.StartingBalance,
		ClosingBalance:       r.EndingBalance,
		LowestBalance:        r.LowestBalance,
		LowestBalanceDate:    r.LowestBalanceDate,
		DaysBelowSafeMinimum: r.DaysBelowSafeMinimum,
		Status:               domain.RiskStatusFor(r.DaysBelowSafeMinimum),
	}

	for _, e := range r.Events() {
		switch e.Type {
		case domain.EventIncome:
			summary.Income = summary.Income.Add(e.Amount)
		case domain.EventVariableExpense:
			summary.VariableExpenses = summary.VariableExpenses.Sub(e.Amount)
		case domain.EventFixedExpense:
			summary.FixedExpenses = summary.FixedExpenses.Sub(e.Amount)
		}
	}
	summary.Income = domain.RoundCents(summary.Income)
	summary.FixedExpenses = domain.RoundCents(summary.FixedExpenses)
	summary.VariableExpenses = domain.RoundCents(summary.VariableExpenses)
	summary.TotalExpenses = summary.FixedExpenses.Add(summary.VariableExpenses)
	return summary
}
