package catalog

import (
	"strconv"
	"strings"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
)

// MonthSlugs are the content keys of month.json, January first.
var MonthSlugs = [12]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// MonthSlug returns "" for months outside 1..12.
func MonthSlug(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthSlugs[month-1]
}

// ParseMonth accepts a slug ("feb", "Feb") or a month number ("2").
func ParseMonth(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, slug := range MonthSlugs {
		if s == slug {
			return i + 1, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &calendar.Error{Kind: calendar.InvalidArgument, Msg: "unknown month " + strconv.Quote(s)}
	}
	if err := calendar.ValidMonth(n); err != nil {
		return 0, err
	}
	return n, nil
}
