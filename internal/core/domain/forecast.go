package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayForecast is one day of a simulated month.
type DayForecast struct {
	Date             time.Time       `json:"date"`
	Events           []CashEvent     `json:"events"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	NetChange        decimal.Decimal `json:"netChange"`
	ClosingBalance   decimal.Decimal `json:"closingBalance"`
	BelowSafeMinimum bool            `json:"belowSafeMinimum"`
}

// ForecastResult is a month of day-by-day balances for one account.
type ForecastResult struct {
	AccountID            string          `json:"accountID"`
	Year                 int             `json:"year"`
	Month                time.Month      `json:"month"`
	SafeMinimum          decimal.Decimal `json:"safeMinimum"`
	StartingBalance      decimal.Decimal `json:"startingBalance"`
	EndingBalance        decimal.Decimal `json:"endingBalance"`
	LowestBalance        decimal.Decimal `json:"lowestBalance"`
	LowestBalanceDate    time.Time       `json:"lowestBalanceDate"`
	DaysBelowSafeMinimum int             `json:"daysBelowSafeMinimum"`
	Days                 []DayForecast   `json:"days"`
}

// Events flattens the events of every day in date order.
func (r *ForecastResult) Events() []CashEvent {
	var out []CashEvent
	for _, d := range r.Days {
		out = append(out, d.Events...)
	}
	return out
}

// RiskStatus grades a month by how many days it spends below the safe minimum.
type RiskStatus string

const (
	StatusSafe    RiskStatus = "safe"
	StatusWarning RiskStatus = "warning"
	StatusDanger  RiskStatus = "danger"
)

// RiskStatusFor maps days-below-minimum to a status: 0 safe, 1-7 warning, more is danger.
func RiskStatusFor(daysBelow int) RiskStatus {
	switch {
	case daysBelow <= 0:
		return StatusSafe
	case daysBelow <= 7:
		return StatusWarning
	default:
		return StatusDanger
	}
}

// MonthSummary folds one ForecastResult into totals.
type MonthSummary struct {
	Year                 int             `json:"year"`
	Month                time.Month      `json:"month"`
	Income               decimal.Decimal `json:"income"`
	FixedExpenses        decimal.Decimal `json:"fixedExpenses"`
	VariableExpenses     decimal.Decimal `json:"variableExpenses"`
	TotalExpenses        decimal.Decimal `json:"totalExpenses"`
	OpeningBalance       decimal.Decimal `json:"openingBalance"`
	ClosingBalance       decimal.Decimal `json:"closingBalance"`
	LowestBalance        decimal.Decimal `json:"lowestBalance"`
	LowestBalanceDate    time.Time       `json:"lowestBalanceDate"`
	DaysBelowSafeMinimum int             `json:"daysBelowSafeMinimum"`
	Status               RiskStatus      `json:"status"`
}

// SixMonthForecast is six consecutive month summaries.
type SixMonthForecast struct {
	AccountID     string          `json:"accountID"`
	SafeMinimum   decimal.Decimal `json:"safeMinimum"`
	Months        []MonthSummary  `json:"months"`
	LowestBalance decimal.Decimal `json:"lowestBalance"`
	MonthsAtRisk  int             `json:"monthsAtRisk"`
}
