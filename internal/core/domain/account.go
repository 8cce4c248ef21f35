package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a financial account whose balance is projected forward.
// Balance is never stored; it is always derived from the starting balance
// and the cash events that follow the start date.
type Account struct {
	AccountID       string          `json:"accountID"`       // Primary Key (e.g., UUID)
	Name            string          `json:"name"`            // User-defined name
	StartingBalance decimal.Decimal `json:"startingBalance"` // Balance on StartDate
	StartDate       time.Time       `json:"startDate"`       // First day the forecast knows about
	SafeMinimum     decimal.Decimal `json:"safeMinimum"`     // Threshold below which the account is at risk
	InflationRate   decimal.Decimal `json:"inflationRate"`   // Annual rate in percent, e.g. 3 for 3%
	AuditFields
}

// AnnualInflationFraction returns the inflation rate as a fraction (3% -> 0.03).
func (a Account) AnnualInflationFraction() float64 {
	return a.InflationRate.Div(decimal.NewFromInt(100)).InexactFloat64()
}
