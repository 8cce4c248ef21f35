package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType classifies a cash event.
type EventType string

const (
	EventIncome          EventType = "income"
	EventFixedExpense    EventType = "fixed_expense"
	EventVariableExpense EventType = "variable_expense"
)

// EventOrigin says where a forecast amount came from.
type EventOrigin string

const (
	OriginConfigured EventOrigin = "configured" // Nominal amount from a rule, or an actual transaction
	OriginEstimated  EventOrigin = "estimated"  // Predicted by the variable expense model
)

// EstimatedSuffix is appended to the description of predicted variable expenses.
const EstimatedSuffix = " (estimated)"

// CashEvent is a single dated, signed amount contributing to a day's balance change.
// Values are treated as immutable; reconciliation produces new events.
type CashEvent struct {
	Date               time.Time        `json:"date"`
	Amount             decimal.Decimal  `json:"amount"`
	Description        string           `json:"description"`
	Category           string           `json:"category,omitempty"`
	Type               EventType        `json:"type"`
	Origin             EventOrigin      `json:"origin"`
	Actualized         bool             `json:"actualized"`
	IncomeRuleID       *string          `json:"incomeRuleID,omitempty"`
	RecurringExpenseID *string          `json:"recurringExpenseID,omitempty"`
	TransactionID      *string          `json:"transactionID,omitempty"`
	ForecastedAmount   *decimal.Decimal `json:"forecastedAmount,omitempty"`
}

// RuleKey returns the id of the rule the event was generated from, if any.
func (e CashEvent) RuleKey() (string, bool) {
	if e.IncomeRuleID != nil {
		return "income:" + *e.IncomeRuleID, true
	}
	if e.RecurringExpenseID != nil {
		return "expense:" + *e.RecurringExpenseID, true
	}
	return "", false
}

// IsExpense reports whether the event is either kind of expense.
func (e CashEvent) IsExpense() bool {
	return e.Type == EventFixedExpense || e.Type == EventVariableExpense
}

// Variance is actual minus forecast for actualized events.
func (e CashEvent) Variance() decimal.Decimal {
	if !e.Actualized || e.ForecastedAmount == nil {
		return decimal.Zero
	}
	return e.Amount.Sub(*e.ForecastedAmount)
}
