package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_forecast_app/internal/dto"
	"github.com/SscSPs/cashflow_forecast_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// insightsHandler serves spending trends, recommendations and billing period forecasts.
type insightsHandler struct {
	trendService          portssvc.TrendSvc
	recommendationService portssvc.RecommendationSvc
	periodTrendService    portssvc.PeriodTrendSvc
}

func newInsightsHandler(ts portssvc.TrendSvc, rs portssvc.RecommendationSvc, ps portssvc.PeriodTrendSvc) *insightsHandler {
	return &insightsHandler{
		trendService:          ts,
		recommendationService: rs,
		periodTrendService:    ps,
	}
}

// registerInsightRoutes registers the account insight routes and the expense period trend route.
func registerInsightRoutes(accounts, expenses *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newInsightsHandler(services.Trend, services.Recommendation, services.PeriodTrend)

	accounts.GET("/trends", h.getTrends)
	accounts.GET("/recommendations", h.getRecommendations)
	expenses.POST("/period-trend", h.calculatePeriodTrend)
}

// getTrends godoc
// @Summary Spending trends
// @Description Compares 3- and 6-month averages of every variable expense and flags spikes in the given month
// @Tags insights
// @Produce json
// @Param accountID path string true "Account ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {array} domain.ExpenseTrend
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to detect trends"
// @Router /accounts/{accountID}/trends [get]
func (h *insightsHandler) getTrends(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", accountID))
	q, ok := bindMonth(c, logger)
	if !ok {
		return
	}

	trends, err := h.trendService.DetectTrends(c.Request.Context(), accountID, q.Year, q.Month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to detect trends")
		return
	}
	c.JSON(http.StatusOK, trends)
}

// getRecommendations godoc
// @Summary Recommendations
// @Description Ranked suggestions from the six-month forecast and spending trends, plus a contribution adjustment
// @Tags insights
// @Produce json
// @Param accountID path string true "Account ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} domain.RecommendationReport
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build recommendations"
// @Router /accounts/{accountID}/recommendations [get]
func (h *insightsHandler) getRecommendations(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", accountID))
	q, ok := bindMonth(c, logger)
	if !ok {
		return
	}

	report, err := h.recommendationService.Recommend(c.Request.Context(), accountID, q.Year, q.Month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build recommendations")
		return
	}
	c.JSON(http.StatusOK, report)
}

// calculatePeriodTrend godoc
// @Summary Billing period trend
// @Description Compares spend so far in a billing period against the expected pace and predicts the rest of the period
// @Tags insights
// @Accept json
// @Produce json
// @Param expenseID path string true "Recurring expense ID"
// @Param request body dto.PeriodTrendRequest true "Period and current balance"
// @Success 200 {object} dto.PeriodTrendResponse
// @Failure 400 {object} map[string]string "Invalid input or expense is not variable"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to forecast period"
// @Router /expenses/{expenseID}/period-trend [post]
func (h *insightsHandler) calculatePeriodTrend(c *gin.Context) {
	expenseID := c.Param("expenseID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("expense_id", expenseID))

	var body dto.PeriodTrendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.Warn("Failed to bind JSON for period trend", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req, err := body.ToDomain(expenseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	forecast, err := h.periodTrendService.CalculatePeriodTrendForecast(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to forecast period")
		return
	}

	logger.Info("Period trend calculated", slog.String("status", string(forecast.Status)))
	c.JSON(http.StatusOK, dto.ToPeriodTrendResponse(forecast))
}
