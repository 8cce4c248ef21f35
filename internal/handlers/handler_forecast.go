package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_forecast_app/internal/dto"
	"github.com/SscSPs/cashflow_forecast_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// forecastHandler handles HTTP requests for account forecasts.
type forecastHandler struct {
	forecastService        portssvc.ForecastSvc
	variableExpenseService portssvc.VariableExpenseSvc
}

// newForecastHandler creates a new forecastHandler.
func newForecastHandler(fs portssvc.ForecastSvc, vs portssvc.VariableExpenseSvc) *forecastHandler {
	return &forecastHandler{
		forecastService:        fs,
		variableExpenseService: vs,
	}
}

// registerForecastRoutes registers the forecast routes under an account.
func registerForecastRoutes(accounts *gin.RouterGroup, fs portssvc.ForecastSvc, vs portssvc.VariableExpenseSvc) {
	h := newForecastHandler(fs, vs)

	accounts.GET("/forecast", h.getForecast)
	accounts.GET("/forecast/six-month", h.getSixMonthForecast)
	accounts.GET("/estimates", h.getEstimates)
}

// bindMonth reads ?year=&month= and writes a 400 when they are missing or out of range.
func bindMonth(c *gin.Context, logger *slog.Logger) (dto.MonthQuery, bool) {
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid month query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return q, false
	}
	return q, true
}

// getForecast godoc
// @Summary Forecast one month
// @Description Simulates the account balance day by day for a calendar month
// @Tags forecasts
// @Produce json
// @Param accountID path string true "Account ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to generate forecast"
// @Router /accounts/{accountID}/forecast [get]
func (h *forecastHandler) getForecast(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", accountID))
	q, ok := bindMonth(c, logger)
	if !ok {
		return
	}

	result, err := h.forecastService.GenerateForecast(c.Request.Context(), accountID, q.Year, q.Month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate forecast")
		return
	}

	logger.Info("Forecast generated", slog.Int("year", q.Year), slog.Int("month", q.Month), slog.Int("days", len(result.Days)))
	c.JSON(http.StatusOK, dto.ToForecastResponse(result))
}

// getSixMonthForecast godoc
// @Summary Forecast six months
// @Description Summarises six consecutive months starting at year/month, with a risk status per month
// @Tags forecasts
// @Produce json
// @Param accountID path string true "Account ID"
// @Param year query int true "Start year"
// @Param month query int true "Start month (1-12)"
// @Success 200 {object} domain.SixMonthForecast
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to generate forecast"
// @Router /accounts/{accountID}/forecast/six-month [get]
func (h *forecastHandler) getSixMonthForecast(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", accountID))
	q, ok := bindMonth(c, logger)
	if !ok {
		return
	}

	result, err := h.forecastService.GenerateSixMonthForecast(c.Request.Context(), accountID, q.Year, q.Month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate forecast")
		return
	}

	logger.Info("Six-month forecast generated", slog.Int("months_at_risk", result.MonthsAtRisk))
	c.JSON(http.StatusOK, result)
}

// getEstimates godoc
// @Summary Variable expense estimates
// @Description Predicts every variable expense of the account for a month and explains each prediction
// @Tags forecasts
// @Produce json
// @Param accountID path string true "Account ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.EstimatesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to estimate expenses"
// @Router /accounts/{accountID}/estimates [get]
func (h *forecastHandler) getEstimates(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", accountID))
	q, ok := bindMonth(c, logger)
	if !ok {
		return
	}

	details, err := h.variableExpenseService.ExplainVariableExpenseEstimates(c.Request.Context(), accountID, q.Year, q.Month)
	if err != nil {
		respondWithError(c, logger, err, "Failed to estimate expenses")
		return
	}

	res := dto.EstimatesResponse{AccountID: accountID, Year: q.Year, Month: q.Month, Details: details}
	res.Estimates = make(map[string]decimal.Decimal, len(details))
	for _, d := range details {
		res.Estimates[d.ExpenseID] = d.Amount
	}
	c.JSON(http.StatusOK, res)
}
