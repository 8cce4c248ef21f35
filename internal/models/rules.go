package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeRule is a row of the income_rules table.
type IncomeRule struct {
	IncomeRuleID       string          `db:"income_rule_id"`
	AccountID          string          `db:"account_id"`
	Name               string          `db:"name"`
	AnnualSalary       decimal.Decimal `db:"annual_salary"`
	ContributionAmount decimal.Decimal `db:"contribution_amount"`
	Frequency          string          `db:"frequency"`
	PayDays            []int32         `db:"pay_days"` // INTEGER[]
	AuditFields
}

// RecurringExpense is a row of the recurring_expenses table.
type RecurringExpense struct {
	ExpenseID            string           `db:"expense_id"`
	AccountID            string           `db:"account_id"`
	Name                 string           `db:"name"`
	Amount               decimal.Decimal  `db:"amount"`
	DueDay               int32            `db:"due_day"`
	Category             string           `db:"category"`
	Frequency            string           `db:"frequency"`
	IsVariable           bool             `db:"is_variable"`
	ActiveFrom           *time.Time       `db:"active_from"`
	ActiveTo             *time.Time       `db:"active_to"`
	BudgetGoal           *decimal.Decimal `db:"budget_goal"`
	BillingCycleStartDay *int32           `db:"billing_cycle_start_day"`
	AuditFields
}
