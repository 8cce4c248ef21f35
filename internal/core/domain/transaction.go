package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrTransactionDoubleLink is returned when a transaction references both an income rule and an expense.
var ErrTransactionDoubleLink = errors.New("transaction may reference an income rule or a recurring expense, not both")

// Transaction is an immutable historical fact on an account.
type Transaction struct {
	TransactionID      string          `json:"transactionID"`
	AccountID          string          `json:"accountID"`
	Date               time.Time       `json:"date"`
	Amount             decimal.Decimal `json:"amount"` // Positive = deposit, negative = withdrawal
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	IncomeRuleID       *string         `json:"incomeRuleID,omitempty"`
	RecurringExpenseID *string         `json:"recurringExpenseID,omitempty"`
	AuditFields
}

// Validate checks the single-link invariant.
func (t Transaction) Validate() error {
	if t.IncomeRuleID != nil && t.RecurringExpenseID != nil {
		return ErrTransactionDoubleLink
	}
	return nil
}

// IsOneOff reports whether the transaction actualizes no rule.
func (t Transaction) IsOneOff() bool {
	return t.IncomeRuleID == nil && t.RecurringExpenseID == nil
}

// DailySpendingAverage is the historical average spend of an expense on one calendar day.
type DailySpendingAverage struct {
	ExpenseID     string          `json:"expenseID"`
	Month         time.Month      `json:"month"`
	DayOfMonth    int             `json:"dayOfMonth"`
	AverageAmount decimal.Decimal `json:"averageAmount"`
}

// MonthlyTotal is the absolute spend of an expense in one calendar month.
type MonthlyTotal struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Total decimal.Decimal `json:"total"`
}
