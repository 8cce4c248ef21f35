// Package calendar is the single place where dates are interpreted.
//
// Every scheduling rule in the forecaster is expressed in terms of calendar
// days (day of month, weekday, year-month). All of those are evaluated in UTC
// so that the same stored instant always lands on the same day regardless of
// the host time zone.
package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format used for plain dates.
const DateLayout = "2006-01-02"

// Date builds a UTC midnight for the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Format renders t as YYYY-MM-DD in UTC.
func Format(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the signed number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// AbsDaysBetween is DaysBetween without the sign.
func AbsDaysBetween(a, b time.Time) int {
	d := DaysBetween(a, b)
	if d < 0 {
		return -d
	}
	return d
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay pins day into [1, DaysIn(year, month)].
func ClampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	if last := DaysIn(year, month); day > last {
		return last
	}
	return day
}

// Within reports whether day lies in [from, to] by calendar date. Nil bounds are open.
func Within(day time.Time, from, to *time.Time) bool {
	d := Day(day)
	if from != nil && d.Before(Day(*from)) {
		return false
	}
	if to != nil && d.After(Day(*to)) {
		return false
	}
	return true
}

// EachDay calls fn for every calendar day in [from, to].
func EachDay(from, to time.Time, fn func(time.Time)) {
	for d := Day(from); !d.After(Day(to)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
