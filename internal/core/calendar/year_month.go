package calendar

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth validates and builds a YearMonth.
func NewYearMonth(year, month int) (YearMonth, error) {
	if month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return YearMonth{}, fmt.Errorf("year out of range: %d", year)
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

// YearMonthOf returns the UTC month containing t.
func YearMonthOf(t time.Time) YearMonth {
	u := t.UTC()
	return YearMonth{Year: u.Year(), Month: u.Month()}
}

// Index is a monotonically increasing month number, handy for arithmetic.
func (ym YearMonth) Index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

// FromIndex is the inverse of Index.
func FromIndex(idx int) YearMonth {
	return YearMonth{Year: idx / 12, Month: time.Month(idx%12 + 1)}
}

// AddMonths shifts ym by n months (n may be negative).
func (ym YearMonth) AddMonths(n int) YearMonth {
	return FromIndex(ym.Index() + n)
}

// Prev returns the preceding month.
func (ym YearMonth) Prev() YearMonth { return ym.AddMonths(-1) }

// Next returns the following month.
func (ym YearMonth) Next() YearMonth { return ym.AddMonths(1) }

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool { return ym.Index() < other.Index() }

// After reports whether ym is strictly later than other.
func (ym YearMonth) After(other YearMonth) bool { return ym.Index() > other.Index() }

// MonthsUntil returns other - ym in months.
func (ym YearMonth) MonthsUntil(other YearMonth) int { return other.Index() - ym.Index() }

// First returns the first day of the month.
func (ym YearMonth) First() time.Time { return Date(ym.Year, ym.Month, 1) }

// Last returns the last day of the month.
func (ym YearMonth) Last() time.Time { return Date(ym.Year, ym.Month, ym.Days()) }

// Days returns the month length.
func (ym YearMonth) Days() int { return DaysIn(ym.Year, ym.Month) }

// Contains reports whether t falls within the month.
func (ym YearMonth) Contains(t time.Time) bool { return YearMonthOf(t) == ym }

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// BillingPeriod returns the billing cycle containing asOf for a cycle that
// starts on startDay each month. The cycle ends the day before the next start.
func BillingPeriod(startDay int, asOf time.Time) (time.Time, time.Time) {
	day := Day(asOf)
	ym := YearMonthOf(day)
	start := Date(ym.Year, ym.Month, ClampDay(ym.Year, ym.Month, startDay))
	if day.Before(start) {
		prev := ym.Prev()
		start = Date(prev.Year, prev.Month, ClampDay(prev.Year, prev.Month, startDay))
	}
	next := YearMonthOf(start).Next()
	end := Date(next.Year, next.Month, ClampDay(next.Year, next.Month, startDay)).AddDate(0, 0, -1)
	return start, end
}
