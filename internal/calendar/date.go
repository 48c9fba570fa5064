package calendar

import (
	"strings"
	"time"
)

const (
	// ISODate is the layout of holiday start dates and range endpoints.
	ISODate = "2006-01-02"
	// RangeSeparator splits a "YYYY-MM-DD - YYYY-MM-DD" range.
	RangeSeparator = " - "
)

// DateOf truncates t to its calendar date, expressed at midnight UTC.
// Callers compare dates with ==, so every date the package hands out goes through here.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date. Out-of-range parts normalize the way time.Date does.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// MonthBounds returns the first and last calendar day of the month.
func MonthBounds(year int, month time.Month) (first, last time.Time) {
	first = Date(year, month, 1)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// ParseDate parses a "YYYY-MM-DD" string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(ISODate, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errorf(MalformedDate, err, "%q", s)
	}
	return t, nil
}

func ValidMonth(month int) error {
	if month < 1 || month > 12 {
		return errorf(InvalidArgument, nil, "month %d outside 1..12", month)
	}
	return nil
}
