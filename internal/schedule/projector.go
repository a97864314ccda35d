package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/courtregistry/admin-api/internal/database"
)

// UntitledCase is the display title for a hearing with neither a case
// title nor a suit number.
const UntitledCase = "Untitled Case"

// Event is an ephemeral calendar entry derived from a CauseList record.
// Events are recomputed from the current record list on every request
// and never persisted.
type Event struct {
	ID       uint                `json:"id"`
	Title    string              `json:"title"`
	Start    time.Time           `json:"start"`
	End      time.Time           `json:"end"`
	Resource *database.CauseList `json:"resource"`
}

// Options controls the display conventions applied during projection.
// DefaultHour positions hearings that carry no recorded time; Duration
// is the fixed span given to every event. Neither reflects a stored
// domain field.
type Options struct {
	DefaultHour int
	Duration    time.Duration
	Location    *time.Location
}

// DefaultOptions returns the conventional 09:00 start and one-hour span.
func DefaultOptions() Options {
	return Options{
		DefaultHour: 9,
		Duration:    time.Hour,
		Location:    time.Local,
	}
}

var (
	clockTimeRe  = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	twelveHourRe = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
)

// Date formats the backend has been observed to supply, ISO first.
var hearingDateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"02 Jan 2006",
	"Jan 02, 2006",
}

// Project converts cause-list records into calendar events. It is total:
// exactly one event is emitted per input record, in input order, and no
// malformed date or time string aborts the batch. Records whose hearing
// date is absent or unparseable degrade to the start of now's day.
func Project(records []database.CauseList, now time.Time, opts Options) []Event {
	if opts.Duration == 0 {
		opts.Duration = time.Hour
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	events := make([]Event, 0, len(records))
	for i := range records {
		rec := &records[i]

		day, ok := parseHearingDate(rec.HearingDate, opts.Location)
		if !ok {
			// Degraded path: keep the record on the calendar rather
			// than dropping it, pinned to today
			day = startOfDay(now.In(opts.Location))
		}

		hour, minute := resolveTimeOfDay(rec.HearingTime, opts.DefaultHour)
		start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, opts.Location)

		events = append(events, Event{
			ID:       rec.ID,
			Title:    eventTitle(rec),
			Start:    start,
			End:      start.Add(opts.Duration),
			Resource: rec,
		})
	}

	return events
}

// parseHearingDate tries the known backend date formats in order. Only
// the calendar date survives; any time component in the string is
// discarded in favour of the hearing_time field.
func parseHearingDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, format := range hearingDateFormats {
		if d, err := time.ParseInLocation(format, raw, loc); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc), true
		}
	}

	return time.Time{}, false
}

// resolveTimeOfDay resolves a hearing_time string to a 24-hour
// hour/minute pair, trying in order:
//
//  1. colon-separated 24-hour form (HH:MM or HH:MM:SS, seconds ignored)
//  2. 12-hour display form (H:MM AM/PM, case-insensitive)
//  3. the fixed default hour
//
// Each record is resolved independently; a malformed string falls
// through to the default rather than failing.
func resolveTimeOfDay(raw string, defaultHour int) (int, int) {
	raw = strings.TrimSpace(raw)

	if m := clockTimeRe.FindStringSubmatch(raw); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return hour, minute
		}
	}

	if m := twelveHourRe.FindStringSubmatch(raw); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour >= 1 && hour <= 12 && minute <= 59 {
			meridiem := strings.ToUpper(m[3])
			if meridiem == "PM" && hour != 12 {
				hour += 12
			}
			if meridiem == "AM" && hour == 12 {
				hour = 0
			}
			return hour, minute
		}
	}

	return defaultHour, 0
}

func eventTitle(rec *database.CauseList) string {
	if rec.CaseTitle != "" {
		return rec.CaseTitle
	}
	if rec.SuitNo != "" {
		return rec.SuitNo
	}
	return UntitledCase
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
