// Package schedule holds the pure date arithmetic behind reminders and
// curfews. All recurrence math uses calendar field increments (AddDate),
// not fixed durations, so weekly and yearly reminders stay pinned to the
// same local weekday/date across DST shifts.
package schedule

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"house-maid/internal/storagetypes"
)

// Validation errors, surfaced to the invoking command before any mutation.
var (
	ErrBadTime     = errors.New("time must be HH:MM (24h)")
	ErrBadDateTime = errors.New("datetime must be YYYY-MM-DD HH:MM (24h)")
	ErrBadWeekday  = errors.New("unknown weekday name")
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

var (
	timeRe     = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
	dateTimeRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2}) (\d{2}):(\d{2})$`)
)

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseTimeOfDay parses a strict "HH:MM" 24-hour string.
func ParseTimeOfDay(input string) (TimeOfDay, error) {
	m := timeRe.FindStringSubmatch(input)
	if m == nil {
		return TimeOfDay{}, ErrBadTime
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, ErrBadTime
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseDateTime parses a strict "YYYY-MM-DD HH:MM" string in local time.
func ParseDateTime(input string) (time.Time, error) {
	m := dateTimeRe.FindStringSubmatch(input)
	if m == nil {
		return time.Time{}, ErrBadDateTime
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
		return time.Time{}, ErrBadDateTime
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), nil
}

// Advance returns the next occurrence of a fired reminder. RepeatNone is
// returned unchanged; the caller removes such reminders instead.
func Advance(t time.Time, repeat string) time.Time {
	switch repeat {
	case storagetypes.RepeatDaily:
		return t.AddDate(0, 0, 1)
	case storagetypes.RepeatWeekly:
		return t.AddDate(0, 0, 7)
	case storagetypes.RepeatYearly:
		return t.AddDate(1, 0, 0)
	}
	return t
}

// NextWeeklyOccurrence returns the next instant at or after now that falls
// on the given weekday at the given time of day. Weekday names match on a
// case-insensitive 3-letter prefix ("Fri", "friday"). If today is the
// target weekday but the time of day already passed, the occurrence a full
// week out is returned.
func NextWeeklyOccurrence(now time.Time, day string, tod TimeOfDay) (time.Time, error) {
	key := strings.ToLower(day)
	if len(key) < 3 {
		return time.Time{}, ErrBadWeekday
	}
	target, ok := weekdays[key[:3]]
	if !ok {
		return time.Time{}, ErrBadWeekday
	}

	result := AtTimeOfDay(now, tod)
	diff := (int(target) - int(now.Weekday()) + 7) % 7
	if diff == 0 {
		if !result.After(now) {
			result = result.AddDate(0, 0, 7)
		}
	} else {
		result = result.AddDate(0, 0, diff)
	}
	return result, nil
}

// EnsureFuture pushes a date one year forward when it is not strictly after
// now. Used when seeding birthdays/anniversaries so the first fire is always
// upcoming.
func EnsureFuture(now, t time.Time) time.Time {
	if !t.After(now) {
		return t.AddDate(1, 0, 0)
	}
	return t
}

// AtTimeOfDay returns the instant on day's calendar date at the given time
// of day, in day's location.
func AtTimeOfDay(day time.Time, tod TimeOfDay) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour, tod.Minute, 0, 0, day.Location())
}

// DayString formats a calendar-day marker (curfew gating, check-ins).
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}
