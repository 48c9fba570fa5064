package view

import (
	"time"

	"github.com/rickar/cal/v2"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
)

// WorkingDays counts Sunday-to-Thursday days of the month that are not public
// holidays, the Maldivian working week.
func WorkingDays(year, month int, holidays []calendar.Holiday) (int, error) {
	monthHolidays, err := calendar.HolidaysForMonth(year, month, holidays)
	if err != nil {
		return 0, err
	}

	bc := cal.NewBusinessCalendar()
	bc.SetWorkday(time.Friday, false)
	bc.SetWorkday(time.Saturday, false)
	bc.SetWorkday(time.Sunday, true)

	first, last := calendar.MonthBounds(year, time.Month(month))
	for _, h := range monthHolidays {
		if h.Type != calendar.PublicHoliday {
			continue
		}
		for _, d := range holidayDays(h, first, last) {
			bc.AddHoliday(&cal.Holiday{
				Name:      h.Name,
				Type:      cal.ObservancePublic,
				Month:     d.Month(),
				Day:       d.Day(),
				StartYear: d.Year(),
				EndYear:   d.Year(),
				Func:      cal.CalcDayOfMonth,
			})
		}
	}

	n := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if bc.IsWorkday(d) {
			n++
		}
	}
	return n, nil
}

// holidayDays lists the days of h that fall within [from, to].
func holidayDays(h calendar.Holiday, from, to time.Time) []time.Time {
	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if h.Includes(d) {
			out = append(out, d)
		}
	}
	return out
}
