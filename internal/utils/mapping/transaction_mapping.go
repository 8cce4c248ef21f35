package mapping

import (
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/SscSPs/cashflow_forecast_app/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		AccountID:          m.AccountID,
		Date:               calendar.Day(m.TransactionDate),
		Amount:             m.Amount,
		Description:        m.Description,
		Category:           m.Category,
		IncomeRuleID:       m.IncomeRuleID,
		RecurringExpenseID: m.RecurringExpenseID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelDailySpendingAverage converts a domain DailySpendingAverage to its row
func ToModelDailySpendingAverage(d domain.DailySpendingAverage) models.DailySpendingAverage {
	return models.DailySpendingAverage{
		ExpenseID:     d.ExpenseID,
		Month:         int16(d.Month),
		DayOfMonth:    int16(d.DayOfMonth),
		AverageAmount: d.AverageAmount,
	}
}

// ToDomainDailySpendingAverage converts a row to a domain DailySpendingAverage
func ToDomainDailySpendingAverage(m models.DailySpendingAverage) domain.DailySpendingAverage {
	return domain.DailySpendingAverage{
		ExpenseID:     m.ExpenseID,
		Month:         time.Month(m.Month),
		DayOfMonth:    int(m.DayOfMonth),
		AverageAmount: m.AverageAmount,
	}
}
