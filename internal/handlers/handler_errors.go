package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cashflow_forecast_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors onto status codes. Internal errors are
// logged with detail but reported to the client with the generic message only.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, message string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(message, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(message, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(message, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
