package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-11-12 is a Wednesday.
var windowNow = time.Date(2025, time.November, 12, 10, 30, 0, 0, time.UTC)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		raw    string
		want   Period
		wantOK bool
	}{
		{"today", PeriodToday, true},
		{"this_week", PeriodThisWeek, true},
		{"This Week", PeriodThisWeek, true},
		{"LAST 7 DAYS", PeriodLast7Days, true},
		{"last_30_days", PeriodLast30Days, true},
		{"this_month", PeriodThisMonth, true},
		{"", "", false},
		{"fortnight", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePeriod(tt.raw)
		assert.Equal(t, tt.wantOK, ok, "ParsePeriod(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "ParsePeriod(%q)", tt.raw)
	}
}

func TestResolveWindowToday(t *testing.T) {
	w := ResolveWindow(PeriodToday, windowNow)

	wantDay := time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, wantDay, w.From)
	assert.Equal(t, wantDay, w.To, "single-day window keeps start-of-day bounds")
	assert.Equal(t, "2025-11-12", w.FromDate())
	assert.Equal(t, "2025-11-12", w.ToDate())
}

func TestResolveWindowThisWeek(t *testing.T) {
	w := ResolveWindow(PeriodThisWeek, windowNow)

	assert.Equal(t, time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC), w.From, "week starts Sunday")
	assert.Equal(t, time.Date(2025, 11, 15, 23, 59, 59, 999_000_000, time.UTC), w.To)
	assert.Equal(t, "This Week", w.Label())
}

func TestResolveWindowThisWeekFromSunday(t *testing.T) {
	sunday := time.Date(2025, time.November, 9, 8, 0, 0, 0, time.UTC)
	w := ResolveWindow(PeriodThisWeek, sunday)

	assert.Equal(t, time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, time.Date(2025, 11, 15, 23, 59, 59, 999_000_000, time.UTC), w.To)
}

func TestResolveWindowThisMonth(t *testing.T) {
	w := ResolveWindow(PeriodThisMonth, windowNow)

	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, time.Date(2025, 11, 30, 23, 59, 59, 999_000_000, time.UTC), w.To)
}

func TestResolveWindowThisMonthDecember(t *testing.T) {
	w := ResolveWindow(PeriodThisMonth, time.Date(2025, time.December, 15, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 999_000_000, time.UTC), w.To, "month rollover across year end")
}

func TestResolveWindowLastNDays(t *testing.T) {
	w := ResolveWindow(PeriodLast7Days, windowNow)
	assert.Equal(t, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, time.Date(2025, 11, 12, 23, 59, 59, 999_000_000, time.UTC), w.To)

	w = ResolveWindow(PeriodLast30Days, windowNow)
	assert.Equal(t, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, time.Date(2025, 11, 12, 23, 59, 59, 999_000_000, time.UTC), w.To)
}

func TestResolveWindowDefaultsToThisWeek(t *testing.T) {
	w := ResolveWindow(DefaultPeriod, windowNow)
	assert.Equal(t, PeriodThisWeek, w.Period)

	w = ResolveWindow(Period("nonsense"), windowNow)
	assert.Equal(t, PeriodThisWeek, w.Period, "unrecognized selectors fall back to the default window")
	assert.Equal(t, "2025-11-09", w.FromDate())
}
