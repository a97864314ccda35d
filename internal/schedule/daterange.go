package schedule

import (
	"strings"
	"time"
)

// Period is a symbolic date-range selector. The admin UI exposes it as a
// single dropdown; there is exactly one source of truth for the active
// window.
type Period string

const (
	PeriodToday      Period = "today"
	PeriodThisWeek   Period = "this_week"
	PeriodThisMonth  Period = "this_month"
	PeriodLast7Days  Period = "last_7_days"
	PeriodLast30Days Period = "last_30_days"
)

// DefaultPeriod applies when no period has been explicitly chosen.
const DefaultPeriod = PeriodThisWeek

// ParsePeriod normalizes a query-parameter value ("this_week",
// "This Week", "LAST 7 DAYS") into a Period.
func ParsePeriod(raw string) (Period, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "_")

	switch Period(normalized) {
	case PeriodToday, PeriodThisWeek, PeriodThisMonth, PeriodLast7Days, PeriodLast30Days:
		return Period(normalized), true
	}
	return "", false
}

// Window is an inclusive [From, To] date range. From is always
// start-of-day. To is end-of-day (23:59:59.999) except for the
// single-day Today window, where To equals From and the range is
// understood to cover the whole day when compared against a date-only
// field.
type Window struct {
	Period Period    `json:"period"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
}

// FromDate formats the lower bound as YYYY-MM-DD for the
// hearing_date_from query filter.
func (w Window) FromDate() string {
	return w.From.Format("2006-01-02")
}

// ToDate formats the upper bound as YYYY-MM-DD for the hearing_date_to
// query filter.
func (w Window) ToDate() string {
	return w.To.Format("2006-01-02")
}

// Label returns the human name of the window's period.
func (w Window) Label() string {
	switch w.Period {
	case PeriodToday:
		return "Today"
	case PeriodThisWeek:
		return "This Week"
	case PeriodThisMonth:
		return "This Month"
	case PeriodLast7Days:
		return "Last 7 days"
	case PeriodLast30Days:
		return "Last 30 days"
	}
	return string(w.Period)
}

// ResolveWindow computes the concrete date window for a period. now is
// an explicit input so resolution is deterministic; all arithmetic is
// done in now's location with today = start-of-day of now. Weeks start
// on Sunday.
func ResolveWindow(period Period, now time.Time) Window {
	today := startOfDay(now)

	switch period {
	case PeriodToday:
		return Window{Period: period, From: today, To: today}

	case PeriodThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		last := first.AddDate(0, 1, -1)
		return Window{Period: period, From: first, To: endOfDay(last)}

	case PeriodLast7Days:
		return Window{Period: period, From: today.AddDate(0, 0, -7), To: endOfDay(today)}

	case PeriodLast30Days:
		return Window{Period: period, From: today.AddDate(0, 0, -30), To: endOfDay(today)}

	default:
		// This Week, and the fallback for anything unrecognized
		sunday := today.AddDate(0, 0, -int(today.Weekday()))
		return Window{Period: PeriodThisWeek, From: sunday, To: endOfDay(sunday.AddDate(0, 0, 6))}
	}
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
