package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID       string          `db:"account_id"`
	Name            string          `db:"name"`
	StartingBalance decimal.Decimal `db:"starting_balance"`
	StartDate       time.Time       `db:"start_date"`
	SafeMinimum     decimal.Decimal `db:"safe_minimum"`
	InflationRate   decimal.Decimal `db:"inflation_rate"` // Percent per year
	AuditFields
}
