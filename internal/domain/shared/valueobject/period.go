package valueobject

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Period is a value object identifying one calendar month, parsed from a
// "YYYY-MM" token. It bounds monthly report queries and record filters.
type Period struct {
	year  int
	month time.Month
}

var periodPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ParsePeriod parses a "YYYY-MM" token into a Period
func ParsePeriod(token string) (Period, error) {
	matches := periodPattern.FindStringSubmatch(token)
	if matches == nil {
		return Period{}, fmt.Errorf("invalid period token %q: expected YYYY-MM", token)
	}

	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid period token %q: month out of range", token)
	}

	return Period{year: year, month: time.Month(month)}, nil
}

// PeriodOf returns the Period containing the given time
func PeriodOf(t time.Time) Period {
	return Period{year: t.Year(), month: t.Month()}
}

// CurrentPeriod returns the Period for the current month
func CurrentPeriod() Period {
	return PeriodOf(time.Now())
}

// Year returns the period's year
func (p Period) Year() int {
	return p.year
}

// Month returns the period's month
func (p Period) Month() time.Month {
	return p.month
}

// Start returns the first day of the month at midnight UTC
func (p Period) Start() time.Time {
	return time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the month at midnight UTC.
// Day 0 of the following month normalizes to the correct month length,
// including leap-year February.
func (p Period) End() time.Time {
	return time.Date(p.year, p.month+1, 0, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the calendar date of t falls within the
// period, inclusive on both ends. Only the date matters; the time of
// day and location are discarded before comparing.
func (p Period) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(p.Start()) && !d.After(p.End())
}

// String returns the period in "YYYY-MM" form
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.year, int(p.month))
}
