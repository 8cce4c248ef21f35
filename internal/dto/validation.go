package dto

import (
	"sync"

	"github.com/SscSPs/cashflow_forecast_app/internal/core/calendar"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules to gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("dateonly", validateDateOnly)
		}
	})
}

// validateDateOnly accepts YYYY-MM-DD strings.
func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := calendar.ParseDate(fl.Field().String())
	return err == nil
}
