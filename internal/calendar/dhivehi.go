package calendar

import (
	"strconv"
	"strings"
	"time"
)

var dhivehiGregorianMonths = [12]string{
	"ޖެނުއަރީ",
	"ފެބްރުއަރީ",
	"މާރިޗް",
	"އޭޕްރިލް",
	"މޭ",
	"ޖޫން",
	"ޖުލައި",
	"އޯގަސްޓް",
	"ސެޕްޓެމްބަރ",
	"އޮކްޓޯބަރ",
	"ނޮވެމްބަރ",
	"ޑިސެމްބަރ",
}

var dhivehiWeekdays = [7]string{
	"އާދިއްތަ",
	"ހޯމަ",
	"އަންގާރަ",
	"ބުދަ",
	"ބުރާސްފަތި",
	"ހުކުރު",
	"ހޮނިހިރު",
}

// DhivehiOptions picks the parts of a Dhivehi Gregorian label.
type DhivehiOptions struct {
	Day   bool
	Month bool
	Year  bool
}

// DefaultDhivehiOptions renders the month name only.
var DefaultDhivehiOptions = DhivehiOptions{Month: true}

// DhivehiGregorianLabel renders the enabled parts in Month Year Day order.
func DhivehiGregorianLabel(date time.Time, opts DhivehiOptions) string {
	parts := make([]string, 0, 3)
	if opts.Month {
		parts = append(parts, dhivehiGregorianMonths[date.Month()-1])
	}
	if opts.Year {
		parts = append(parts, strconv.Itoa(date.Year()))
	}
	if opts.Day {
		parts = append(parts, strconv.Itoa(date.Day()))
	}
	return strings.Join(parts, " ")
}

func DhivehiWeekday(day time.Weekday) string {
	return dhivehiWeekdays[day]
}
