package mapping

import (
	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/SscSPs/cashflow_forecast_app/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account.
// DATE columns come back at midnight UTC already; Day keeps that true for any driver.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		Name:            m.Name,
		StartingBalance: m.StartingBalance,
		StartDate:       calendar.Day(m.StartDate),
		SafeMinimum:     m.SafeMinimum,
		InflationRate:   m.InflationRate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
