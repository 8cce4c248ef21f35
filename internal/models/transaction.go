package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
// At most one of IncomeRuleID and RecurringExpenseID is set; the table enforces it.
type Transaction struct {
	TransactionID      string          `db:"transaction_id"`
	AccountID          string          `db:"account_id"`
	TransactionDate    time.Time       `db:"transaction_date"` // DATE
	Amount             decimal.Decimal `db:"amount"`           // Signed, negative = withdrawal
	Description        string          `db:"description"`
	Category           string          `db:"category"`
	IncomeRuleID       *string         `db:"income_rule_id"`
	RecurringExpenseID *string         `db:"recurring_expense_id"`
	AuditFields
}

// DailySpendingAverage is a row of the daily_spending_averages table.
type DailySpendingAverage struct {
	ExpenseID     string          `db:"expense_id"`
	Month         int16           `db:"month"`
	DayOfMonth    int16           `db:"day_of_month"`
	AverageAmount decimal.Decimal `db:"average_amount"`
}
