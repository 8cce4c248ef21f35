package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Frequency is how often an income rule pays or a recurring expense occurs.
type Frequency string

const (
	Weekly      Frequency = "weekly"
	BiWeekly    Frequency = "bi_weekly"
	SemiMonthly Frequency = "semi_monthly"
	Monthly     Frequency = "monthly"
)

// ParseFrequency converts a stored string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case Weekly, BiWeekly, SemiMonthly, Monthly:
		return f, nil
	default:
		return "", fmt.Errorf("unknown frequency %q", s)
	}
}

// UsesWeekday reports whether the day indicator is a weekday (0-6) rather than a day of month.
func (f Frequency) UsesWeekday() bool {
	return f == Weekly || f == BiWeekly
}

// CentPlaces is the precision every monetary value is rounded to.
const CentPlaces int32 = 2

// RoundCents rounds a money amount to cents.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(CentPlaces)
}
