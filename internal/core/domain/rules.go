package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeRule describes a recurring paycheck contributed to an account.
type IncomeRule struct {
	IncomeRuleID       string          `json:"incomeRuleID"`
	AccountID          string          `json:"accountID"`
	Name               string          `json:"name"`
	AnnualSalary       decimal.Decimal `json:"annualSalary"`       // Informational only
	ContributionAmount decimal.Decimal `json:"contributionAmount"` // Per paycheck
	Frequency          Frequency       `json:"frequency"`
	PayDays            []int           `json:"payDays"` // Days of month, 1-31
	AuditFields
}

// PaychecksPerYear counts the pay days that fall in a common (non-leap) year.
// Every pay day is a day of month and recurs monthly; a day past the end of
// a month is skipped in that month, as when generating events.
func (r IncomeRule) PaychecksPerYear() int {
	n := 0
	for m := time.January; m <= time.December; m++ {
		days := time.Date(2001, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
		for _, d := range r.PayDays {
			if d >= 1 && d <= days {
				n++
			}
		}
	}
	return n
}

// AnnualContribution is the contribution amount times the paychecks per year.
func (r IncomeRule) AnnualContribution() decimal.Decimal {
	return r.ContributionAmount.Mul(decimal.NewFromInt(int64(r.PaychecksPerYear())))
}

// RecurringExpense describes a bill or spending category that repeats.
type RecurringExpense struct {
	ExpenseID            string           `json:"expenseID"`
	AccountID            string           `json:"accountID"`
	Name                 string           `json:"name"`
	Amount               decimal.Decimal  `json:"amount"`   // Nominal, positive
	DueDay               int              `json:"dueDay"`   // Day of month, or weekday 0-6 for weekly/bi-weekly
	Category             string           `json:"category"` // Free text
	Frequency            Frequency        `json:"frequency"`
	IsVariable           bool             `json:"isVariable"`
	ActiveFrom           *time.Time       `json:"activeFrom,omitempty"`
	ActiveTo             *time.Time       `json:"activeTo,omitempty"`
	BudgetGoal           *decimal.Decimal `json:"budgetGoal,omitempty"`
	BillingCycleStartDay *int             `json:"billingCycleStartDay,omitempty"`
	AuditFields
}
