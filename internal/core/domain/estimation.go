package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariableExpenseEstimate explains how a variable expense prediction was reached.
type VariableExpenseEstimate struct {
	ExpenseID    string           `json:"expenseID"`
	Name         string           `json:"name"`
	Year         int              `json:"year"`
	Month        time.Month       `json:"month"`
	Nominal      decimal.Decimal  `json:"nominal"`
	Amount       decimal.Decimal  `json:"amount"`
	DataPoints   int              `json:"dataPoints"`
	UsedFallback bool             `json:"usedFallback"` // Not enough history, nominal returned
	Seasonal     *decimal.Decimal `json:"seasonal,omitempty"`
	Recency      *decimal.Decimal `json:"recency,omitempty"`
	TrendSlope   decimal.Decimal  `json:"trendSlope"`
	Base         decimal.Decimal  `json:"base"`
}

// TrendStatus classifies an in-progress billing period.
type TrendStatus string

const (
	TrendingHigher TrendStatus = "Trending Higher"
	TrendingLower  TrendStatus = "Trending Lower"
	OnTrack        TrendStatus = "On Track"
)

// PeriodTrendRequest is the input to the period trend forecast.
// When PeriodStart/PeriodEnd are nil the expense's billing cycle is used.
type PeriodTrendRequest struct {
	ExpenseID      string
	PeriodStart    *time.Time
	PeriodEnd      *time.Time
	CurrentBalance decimal.Decimal
	AsOf           *time.Time
}

// DailyPrediction is the predicted spend for one remaining day of a period.
type DailyPrediction struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// PeriodTrendForecast is the in-progress forecast for one billing period.
type PeriodTrendForecast struct {
	ExpenseID          string            `json:"expenseID"`
	PeriodStart        time.Time         `json:"periodStart"`
	PeriodEnd          time.Time         `json:"periodEnd"`
	AsOf               time.Time         `json:"asOf"`
	TotalDays          int               `json:"totalDays"`
	DaysElapsed        int               `json:"daysElapsed"`
	DaysRemaining      int               `json:"daysRemaining"`
	BaselineEstimate   decimal.Decimal   `json:"baselineEstimate"`
	UsedShapeData      bool              `json:"usedShapeData"`
	FractionElapsed    decimal.Decimal   `json:"fractionElapsed"`
	ExpectedToDate     decimal.Decimal   `json:"expectedToDate"`
	ActualToDate       decimal.Decimal   `json:"actualToDate"`
	TrendRatio         *decimal.Decimal  `json:"trendRatio,omitempty"`
	Status             TrendStatus       `json:"status"`
	CurrentDailyRate   decimal.Decimal   `json:"currentDailyRate"`
	RecentDailyRate    *decimal.Decimal  `json:"recentDailyRate,omitempty"`
	BaseDailyRate      decimal.Decimal   `json:"baseDailyRate"`
	DailyPredictions   []DailyPrediction `json:"dailyPredictions"`
	PredictedRemaining decimal.Decimal   `json:"predictedRemaining"`
	PredictedTotal     decimal.Decimal   `json:"predictedTotal"`
}

// SpendingTrend is the direction of a variable expense's recent spend.
type SpendingTrend string

const (
	TrendIncreasing SpendingTrend = "increasing"
	TrendDecreasing SpendingTrend = "decreasing"
	TrendStable     SpendingTrend = "stable"
)

// ExpenseTrend compares short and long rolling averages of one variable expense.
type ExpenseTrend struct {
	ExpenseID           string           `json:"expenseID"`
	Name                string           `json:"name"`
	Category            string           `json:"category"`
	CurrentMonthTotal   decimal.Decimal  `json:"currentMonthTotal"`
	ThreeMonthAverage   decimal.Decimal  `json:"threeMonthAverage"`
	SixMonthAverage     decimal.Decimal  `json:"sixMonthAverage"`
	PercentChange       decimal.Decimal  `json:"percentChange"` // 3-month vs 6-month
	Trend               SpendingTrend    `json:"trend"`
	Alert               bool             `json:"alert"`
	CurrentVsSixMonthPc decimal.Decimal  `json:"currentVsSixMonthPercent"`
	BudgetGoal          *decimal.Decimal `json:"budgetGoal,omitempty"`
}

// RecommendationPriority ranks suggestions.
type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// Rank orders priorities, lower is more urgent.
func (p RecommendationPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Recommendation is a single human-readable suggestion.
type Recommendation struct {
	Priority RecommendationPriority `json:"priority"`
	Category string                 `json:"category"` // balance, spending, budget, contribution
	Title    string                 `json:"title"`
	Message  string                 `json:"message"`
	Amount   decimal.Decimal        `json:"amount"`
}

// ContributionAdjustment proposes a change to the yearly contribution.
type ContributionAdjustment struct {
	CurrentAnnual  decimal.Decimal `json:"currentAnnual"`
	ProposedAnnual decimal.Decimal `json:"proposedAnnual"`
	Change         decimal.Decimal `json:"change"`
	Reason         string          `json:"reason"`
}

// RecommendationReport bundles the ranked suggestions and the contribution proposal.
type RecommendationReport struct {
	AccountID       string                 `json:"accountID"`
	Recommendations []Recommendation       `json:"recommendations"`
	Contribution    ContributionAdjustment `json:"contribution"`
}
