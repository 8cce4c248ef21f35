package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_forecast_app/internal/utils"
	"github.com/shopspring/decimal"
)

// horizonsPerYear converts a six-month shortfall into an annual amount.
var horizonsPerYear = decimal.NewFromInt(12 / sixMonths)

// recommendationService implements portssvc.RecommendationSvc.
type recommendationService struct {
	BaseService
	reader   portsrepo.ForecastReader
	forecast portssvc.ForecastSvc
	trends   portssvc.TrendSvc
}

// NewRecommendationService creates the recommendation engine on top of the forecast and trend services.
func NewRecommendationService(reader portsrepo.ForecastReader, forecast portssvc.ForecastSvc, trends portssvc.TrendSvc) portssvc.RecommendationSvc {
	return &recommendationService{BaseService: newBaseService(), reader: reader, forecast: forecast, trends: trends}
}

var _ portssvc.RecommendationSvc = (*recommendationService)(nil)

func (s *recommendationService) Recommend(ctx context.Context, accountID string, year, month int) (*domain.RecommendationReport, error) {
	outlook, err := s.forecast.GenerateSixMonthForecast(ctx, accountID, year, month)
	if err != nil {
		return nil, err
	}
	trends, err := s.trends.DetectTrends(ctx, accountID, year, month)
	if err != nil {
		return nil, err
	}
	rules, err := s.reader.ListIncomeRulesByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list income rules", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list income rules: %w", err)
	}

	report := &domain.RecommendationReport{
		AccountID:       accountID,
		Recommendations: []domain.Recommendation{},
	}
	report.Recommendations = append(report.Recommendations, balanceRecommendations(outlook)...)
	report.Recommendations = append(report.Recommendations, spendingRecommendations(trends)...)
	report.Contribution = proposeContribution(outlook, rules)
	if !report.Contribution.Change.IsZero() {
		priority := domain.PriorityLow
		title := "Release surplus contributions"
		if report.Contribution.Change.IsPositive() {
			priority = domain.PriorityHigh
			title = "Increase contributions"
		}
		report.Recommendations = append(report.Recommendations, domain.Recommendation{
			Priority: priority,
			Category: "contribution",
			Title:    title,
			Message:  report.Contribution.Reason,
			Amount:   report.Contribution.Change.Abs(),
		})
	}

	sort.SliceStable(report.Recommendations, func(i, j int) bool {
		return report.Recommendations[i].Priority.Rank() < report.Recommendations[j].Priority.Rank()
	})

	s.LogInfo(ctx, "Generated recommendations",
		slog.String("account_id", accountID),
		slog.Int("count", len(report.Recommendations)))
	return report, nil
}

func balanceRecommendations(outlook *domain.SixMonthForecast) []domain.Recommendation {
	var out []domain.Recommendation
	for _, m := range outlook.Months {
		if m.Status == domain.StatusSafe {
			continue
		}
		priority := domain.PriorityMedium
		if m.Status == domain.StatusDanger {
			priority = domain.PriorityHigh
		}
		shortfall := outlook.SafeMinimum.Sub(m.LowestBalance)
		out = append(out, domain.Recommendation{
			Priority: priority,
			Category: "balance",
			Title:    fmt.Sprintf("Balance below safe minimum in %d-%02d", m.Year, int(m.Month)),
			Message: fmt.Sprintf("The balance spends %d days below the safe minimum and bottoms out at %s on %s.",
				m.DaysBelowSafeMinimum, utils.FormatMoney(m.LowestBalance), m.LowestBalanceDate.Format("Jan 2")),
			Amount: shortfall,
		})
	}
	return out
}

func spendingRecommendations(trends []domain.ExpenseTrend) []domain.Recommendation {
	var out []domain.Recommendation
	for _, t := range trends {
		switch {
		case t.Alert:
			priority := domain.PriorityMedium
			if t.Trend == domain.TrendIncreasing {
				priority = domain.PriorityHigh
			}
			out = append(out, domain.Recommendation{
				Priority: priority,
				Category: "spending",
				Title:    fmt.Sprintf("%s is well above average", t.Name),
				Message: fmt.Sprintf("%s this month is %s%% above its six-month average of %s.",
					utils.FormatMoney(t.CurrentMonthTotal), t.CurrentVsSixMonthPc.StringFixed(0), utils.FormatMoney(t.SixMonthAverage)),
				Amount: t.CurrentMonthTotal.Sub(t.SixMonthAverage),
			})
		case t.Trend == domain.TrendIncreasing:
			out = append(out, domain.Recommendation{
				Priority: domain.PriorityMedium,
				Category: "spending",
				Title:    fmt.Sprintf("%s is trending up", t.Name),
				Message: fmt.Sprintf("The three-month average of %s is %s%% above the six-month average.",
					utils.FormatMoney(t.ThreeMonthAverage), t.PercentChange.StringFixed(0)),
				Amount: t.ThreeMonthAverage.Sub(t.SixMonthAverage),
			})
		}

		if t.BudgetGoal != nil && t.CurrentMonthTotal.GreaterThan(*t.BudgetGoal) {
			over := t.CurrentMonthTotal.Sub(*t.BudgetGoal)
			out = append(out, domain.Recommendation{
				Priority: domain.PriorityMedium,
				Category: "budget",
				Title:    fmt.Sprintf("%s is over budget", t.Name),
				Message:  fmt.Sprintf("Spending is %s over the %s goal.", utils.FormatMoney(over), utils.FormatMoney(*t.BudgetGoal)),
				Amount:   over,
			})
		}
	}
	return out
}

// proposeContribution sizes the annual contribution so the deepest projected
// shortfall is recovered within the horizon. When every month stays above twice
// the safe minimum the excess is offered back.
func proposeContribution(outlook *domain.SixMonthForecast, rules []domain.IncomeRule) domain.ContributionAdjustment {
	current := decimal.Zero
	for _, r := range rules {
		current = current.Add(r.AnnualContribution())
	}
	current = domain.RoundCents(current)

	adj := domain.ContributionAdjustment{
		CurrentAnnual:  current,
		ProposedAnnual: current,
		Change:         decimal.Zero,
		Reason:         "Current contributions keep the balance above the safe minimum.",
	}
	if len(outlook.Months) == 0 {
		return adj
	}

	shortfall := outlook.SafeMinimum.Sub(outlook.LowestBalance)
	comfort := outlook.SafeMinimum.Mul(decimal.NewFromInt(2))
	switch {
	case shortfall.IsPositive():
		adj.Change = domain.RoundCents(shortfall.Mul(horizonsPerYear))
		adj.Reason = fmt.Sprintf("The balance is projected to fall %s below the safe minimum within six months.", utils.FormatMoney(shortfall))
	case outlook.SafeMinimum.IsPositive() && outlook.LowestBalance.GreaterThan(comfort):
		surplus := outlook.LowestBalance.Sub(comfort)
		release := decimal.Min(domain.RoundCents(surplus.Mul(horizonsPerYear)), current)
		adj.Change = release.Neg()
		adj.Reason = fmt.Sprintf("The balance never drops below %s, more than twice the safe minimum.", utils.FormatMoney(outlook.LowestBalance))
	}
	adj.ProposedAnnual = current.Add(adj.Change)
	return adj
}
