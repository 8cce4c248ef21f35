package mapping

import (
	"fmt"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/SscSPs/cashflow_forecast_app/internal/models"
)

// ToDomainIncomeRule converts a model IncomeRule to a domain IncomeRule.
// An unknown frequency string is reported as an error instead of guessed.
func ToDomainIncomeRule(m models.IncomeRule) (domain.IncomeRule, error) {
	freq, err := domain.ParseFrequency(m.Frequency)
	if err != nil {
		return domain.IncomeRule{}, fmt.Errorf("income rule %s: %w", m.IncomeRuleID, err)
	}
	payDays := make([]int, len(m.PayDays))
	for i, d := range m.PayDays {
		payDays[i] = int(d)
	}
	return domain.IncomeRule{
		IncomeRuleID:       m.IncomeRuleID,
		AccountID:          m.AccountID,
		Name:               m.Name,
		AnnualSalary:       m.AnnualSalary,
		ContributionAmount: m.ContributionAmount,
		Frequency:          freq,
		PayDays:            payDays,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainRecurringExpense converts a model RecurringExpense to a domain RecurringExpense
func ToDomainRecurringExpense(m models.RecurringExpense) (domain.RecurringExpense, error) {
	freq, err := domain.ParseFrequency(m.Frequency)
	if err != nil {
		return domain.RecurringExpense{}, fmt.Errorf("recurring expense %s: %w", m.ExpenseID, err)
	}
	d := domain.RecurringExpense{
		ExpenseID:   m.ExpenseID,
		AccountID:   m.AccountID,
		Name:        m.Name,
		Amount:      m.Amount,
		DueDay:      int(m.DueDay),
		Category:    m.Category,
		Frequency:   freq,
		IsVariable:  m.IsVariable,
		BudgetGoal:  m.BudgetGoal,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.ActiveFrom != nil {
		from := calendar.Day(*m.ActiveFrom)
		d.ActiveFrom = &from
	}
	if m.ActiveTo != nil {
		to := calendar.Day(*m.ActiveTo)
		d.ActiveTo = &to
	}
	if m.BillingCycleStartDay != nil {
		start := int(*m.BillingCycleStartDay)
		d.BillingCycleStartDay = &start
	}
	return d, nil
}
