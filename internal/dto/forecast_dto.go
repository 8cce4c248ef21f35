package dto

import (
	"time"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthQuery selects a calendar month through the query string.
type MonthQuery struct {
	Year  int `form:"year" binding:"required,min=1,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// CashEventResponse is one event of a forecast day.
type CashEventResponse struct {
	Date               string             `json:"date"` // YYYY-MM-DD
	Amount             decimal.Decimal    `json:"amount"`
	Description        string             `json:"description"`
	Category           string             `json:"category,omitempty"`
	Type               domain.EventType   `json:"type"`
	Origin             domain.EventOrigin `json:"origin"`
	Actualized         bool               `json:"actualized"`
	IncomeRuleID       *string            `json:"incomeRuleID,omitempty"`
	RecurringExpenseID *string            `json:"recurringExpenseID,omitempty"`
	TransactionID      *string            `json:"transactionID,omitempty"`
	ForecastedAmount   *decimal.Decimal   `json:"forecastedAmount,omitempty"`
	Variance           *decimal.Decimal   `json:"variance,omitempty"`
}

// DayForecastResponse is one simulated day.
type DayForecastResponse struct {
	Date             string              `json:"date"`
	Events           []CashEventResponse `json:"events"`
	OpeningBalance   decimal.Decimal     `json:"openingBalance"`
	NetChange        decimal.Decimal     `json:"netChange"`
	ClosingBalance   decimal.Decimal     `json:"closingBalance"`
	BelowSafeMinimum bool                `json:"belowSafeMinimum"`
}

// ForecastResponse is a simulated month.
type ForecastResponse struct {
	AccountID            string                `json:"accountID"`
	Year                 int                   `json:"year"`
	Month                int                   `json:"month"`
	SafeMinimum          decimal.Decimal       `json:"safeMinimum"`
	StartingBalance      decimal.Decimal       `json:"startingBalance"`
	EndingBalance        decimal.Decimal       `json:"endingBalance"`
	LowestBalance        decimal.Decimal       `json:"lowestBalance"`
	LowestBalanceDate    string                `json:"lowestBalanceDate"`
	DaysBelowSafeMinimum int                   `json:"daysBelowSafeMinimum"`
	Days                 []DayForecastResponse `json:"days"`
}

// ToCashEventResponse converts a domain.CashEvent to its response form
func ToCashEventResponse(e domain.CashEvent) CashEventResponse {
	res := CashEventResponse{
		Date:               calendar.Format(e.Date),
		Amount:             e.Amount,
		Description:        e.Description,
		Category:           e.Category,
		Type:               e.Type,
		Origin:             e.Origin,
		Actualized:         e.Actualized,
		IncomeRuleID:       e.IncomeRuleID,
		RecurringExpenseID: e.RecurringExpenseID,
		TransactionID:      e.TransactionID,
		ForecastedAmount:   e.ForecastedAmount,
	}
	if e.Actualized && e.ForecastedAmount != nil {
		v := e.Variance()
		res.Variance = &v
	}
	return res
}

// ToForecastResponse converts a domain.ForecastResult to ForecastResponse
func ToForecastResponse(r *domain.ForecastResult) ForecastResponse {
	res := ForecastResponse{
		AccountID:            r.AccountID,
		Year:                 r.Year,
		Month:                int(r.Month),
		SafeMinimum:          r.SafeMinimum,
		StartingBalance:      r.StartingBalance,
		EndingBalance:        r.EndingBalance,
		LowestBalance:        r.LowestBalance,
		DaysBelowSafeMinimum: r.DaysBelowSafeMinimum,
		Days:                 make([]DayForecastResponse, len(r.Days)),
	}
	if !r.LowestBalanceDate.IsZero() {
		res.LowestBalanceDate = calendar.Format(r.LowestBalanceDate)
	}
	for i, d := range r.Days {
		events := make([]CashEventResponse, len(d.Events))
		for j, e := range d.Events {
			events[j] = ToCashEventResponse(e)
		}
		res.Days[i] = DayForecastResponse{
			Date:             calendar.Format(d.Date),
			Events:           events,
			OpeningBalance:   d.OpeningBalance,
			NetChange:        d.NetChange,
			ClosingBalance:   d.ClosingBalance,
			BelowSafeMinimum: d.BelowSafeMinimum,
		}
	}
	return res
}

// EstimatesResponse carries the predicted amounts and how they were reached.
type EstimatesResponse struct {
	AccountID string                           `json:"accountID"`
	Year      int                              `json:"year"`
	Month     int                              `json:"month"`
	Estimates map[string]decimal.Decimal       `json:"estimates"`
	Details   []domain.VariableExpenseEstimate `json:"details"`
}

// PeriodTrendRequest is the body of the period trend endpoint.
// Either both period bounds are sent or neither; without them the expense's billing cycle is used.
type PeriodTrendRequest struct {
	PeriodStart    *string         `json:"periodStart" binding:"omitempty,dateonly" example:"2025-06-01"`
	PeriodEnd      *string         `json:"periodEnd" binding:"omitempty,dateonly" example:"2025-06-30"`
	CurrentBalance decimal.Decimal `json:"currentBalance" swaggertype:"string" example:"-412.50"`
	AsOf           *string         `json:"asOf" binding:"omitempty,dateonly" example:"2025-06-10"`
}

// ToDomain converts the request into a domain.PeriodTrendRequest.
// Binding normally rejects bad dates first through the dateonly rule.
func (r PeriodTrendRequest) ToDomain(expenseID string) (domain.PeriodTrendRequest, error) {
	req := domain.PeriodTrendRequest{ExpenseID: expenseID, CurrentBalance: r.CurrentBalance}
	for _, f := range []struct {
		src *string
		dst **time.Time
	}{
		{r.PeriodStart, &req.PeriodStart},
		{r.PeriodEnd, &req.PeriodEnd},
		{r.AsOf, &req.AsOf},
	} {
		if f.src == nil {
			continue
		}
		t, err := calendar.ParseDate(*f.src)
		if err != nil {
			return domain.PeriodTrendRequest{}, err
		}
		*f.dst = &t
	}
	return req, nil
}

// DailyPredictionResponse is one remaining day of a period.
type DailyPredictionResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// PeriodTrendResponse is the in-progress forecast of a billing period.
type PeriodTrendResponse struct {
	ExpenseID          string                    `json:"expenseID"`
	PeriodStart        string                    `json:"periodStart"`
	PeriodEnd          string                    `json:"periodEnd"`
	AsOf               string                    `json:"asOf"`
	TotalDays          int                       `json:"totalDays"`
	DaysElapsed        int                       `json:"daysElapsed"`
	DaysRemaining      int                       `json:"daysRemaining"`
	BaselineEstimate   decimal.Decimal           `json:"baselineEstimate"`
	UsedShapeData      bool                      `json:"usedShapeData"`
	FractionElapsed    decimal.Decimal           `json:"fractionElapsed"`
	ExpectedToDate     decimal.Decimal           `json:"expectedToDate"`
	ActualToDate       decimal.Decimal           `json:"actualToDate"`
	TrendRatio         *decimal.Decimal          `json:"trendRatio,omitempty"`
	Status             domain.TrendStatus        `json:"status"`
	CurrentDailyRate   decimal.Decimal           `json:"currentDailyRate"`
	RecentDailyRate    *decimal.Decimal          `json:"recentDailyRate,omitempty"`
	BaseDailyRate      decimal.Decimal           `json:"baseDailyRate"`
	DailyPredictions   []DailyPredictionResponse `json:"dailyPredictions"`
	PredictedRemaining decimal.Decimal           `json:"predictedRemaining"`
	PredictedTotal     decimal.Decimal           `json:"predictedTotal"`
}

// ToPeriodTrendResponse converts a domain.PeriodTrendForecast to PeriodTrendResponse
func ToPeriodTrendResponse(f *domain.PeriodTrendForecast) PeriodTrendResponse {
	predictions := make([]DailyPredictionResponse, len(f.DailyPredictions))
	for i, p := range f.DailyPredictions {
		predictions[i] = DailyPredictionResponse{Date: calendar.Format(p.Date), Amount: p.Amount}
	}
	return PeriodTrendResponse{
		ExpenseID:          f.ExpenseID,
		PeriodStart:        calendar.Format(f.PeriodStart),
		PeriodEnd:          calendar.Format(f.PeriodEnd),
		AsOf:               calendar.Format(f.AsOf),
		TotalDays:          f.TotalDays,
		DaysElapsed:        f.DaysElapsed,
		DaysRemaining:      f.DaysRemaining,
		BaselineEstimate:   f.BaselineEstimate,
		UsedShapeData:      f.UsedShapeData,
		FractionElapsed:    f.FractionElapsed,
		ExpectedToDate:     f.ExpectedToDate,
		ActualToDate:       f.ActualToDate,
		TrendRatio:         f.TrendRatio,
		Status:             f.Status,
		CurrentDailyRate:   f.CurrentDailyRate,
		RecentDailyRate:    f.RecentDailyRate,
		BaseDailyRate:      f.BaseDailyRate,
		DailyPredictions:   predictions,
		PredictedRemaining: f.PredictedRemaining,
		PredictedTotal:     f.PredictedTotal,
	}
}
