package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay_UsesUTCCalendar(t *testing.T) {
	// 23:30 in UTC-5 on Jan 31 is already Feb 1 in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2025, time.January, 31, 23, 30, 0, 0, loc)

	assert.Equal(t, Date(2025, time.February, 1), Day(local))
	assert.True(t, SameDay(local, Date(2025, time.February, 1)))
	assert.False(t, SameDay(local, Date(2025, time.January, 31)))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", Date(2025, 1, 10), Date(2025, 1, 10).Add(20 * time.Hour), 0},
		{"forward", Date(2025, 1, 10), Date(2025, 1, 17), 7},
		{"backward", Date(2025, 1, 17), Date(2025, 1, 9), -8},
		{"across month", Date(2025, 1, 28), Date(2025, 2, 4), 7},
		{"leap year", Date(2024, 2, 28), Date(2024, 3, 1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
	assert.Equal(t, 8, AbsDaysBetween(Date(2025, 1, 17), Date(2025, 1, 9)))
}

func TestClampDay(t *testing.T) {
	assert.Equal(t, 28, ClampDay(2025, time.February, 31))
	assert.Equal(t, 29, ClampDay(2024, time.February, 30))
	assert.Equal(t, 30, ClampDay(2025, time.April, 31))
	assert.Equal(t, 15, ClampDay(2025, time.April, 15))
	assert.Equal(t, 1, ClampDay(2025, time.April, 0))
}

func TestWithin(t *testing.T) {
	from := Date(2025, 3, 10)
	to := Date(2025, 3, 20)

	assert.True(t, Within(Date(2025, 3, 10), &from, &to))
	assert.True(t, Within(Date(2025, 3, 20).Add(23*time.Hour), &from, &to))
	assert.False(t, Within(Date(2025, 3, 9), &from, &to))
	assert.False(t, Within(Date(2025, 3, 21), &from, &to))
	assert.True(t, Within(Date(1990, 1, 1), nil, &to))
	assert.True(t, Within(Date(2090, 1, 1), &from, nil))
}

func TestYearMonth_Arithmetic(t *testing.T) {
	ym, err := NewYearMonth(2025, 1)
	require.NoError(t, err)

	assert.Equal(t, YearMonth{2024, time.December}, ym.Prev())
	assert.Equal(t, YearMonth{2025, time.February}, ym.Next())
	assert.Equal(t, YearMonth{2026, time.March}, ym.AddMonths(14))
	assert.Equal(t, 6, ym.MonthsUntil(YearMonth{2025, time.July}))
	assert.True(t, ym.Before(ym.Next()))
	assert.True(t, ym.Next().After(ym))
	assert.Equal(t, "2025-01", ym.String())
	assert.Equal(t, Date(2025, 1, 31), ym.Last())
	assert.True(t, ym.Contains(Date(2025, 1, 15)))

	_, err = NewYearMonth(2025, 13)
	assert.Error(t, err)
	_, err = NewYearMonth(2025, 0)
	assert.Error(t, err)
}

func TestBillingPeriod(t *testing.T) {
	tests := []struct {
		name      string
		startDay  int
		asOf      time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"mid cycle", 15, Date(2025, 3, 20), Date(2025, 3, 15), Date(2025, 4, 14)},
		{"before start day", 15, Date(2025, 3, 3), Date(2025, 2, 15), Date(2025, 3, 14)},
		{"first of month", 1, Date(2025, 2, 10), Date(2025, 2, 1), Date(2025, 2, 28)},
		{"clamped start", 31, Date(2025, 2, 28), Date(2025, 2, 28), Date(2025, 3, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := BillingPeriod(tt.startDay, tt.asOf)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, Date(2025, 1, 15), d)
	assert.Equal(t, "2025-01-15", Format(d))

	_, err = ParseDate("15/01/2025")
	assert.Error(t, err)
}
