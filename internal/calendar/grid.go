package calendar

import "time"

// Day is one cell of a month grid.
type Day struct {
	Date           time.Time
	InCurrentMonth bool
	IsToday        bool
}

// Week is seven consecutive days, Sunday first.
type Week [7]Day

// BuildMonthGrid lays out the month as full Sunday-first weeks. Leading and
// trailing cells are filled from the adjacent months. today is only used to
// flag IsToday and is compared by calendar date.
func BuildMonthGrid(year, month int, today time.Time) ([]Week, error) {
	if err := ValidMonth(month); err != nil {
		return nil, err
	}

	first, last := MonthBounds(year, time.Month(month))
	today = DateOf(today)

	current := first.AddDate(0, 0, -int(first.Weekday()))
	weeks := make([]Week, 0, 6)
	for len(weeks) == 0 || !current.After(last) {
		var w Week
		for i := range w {
			w[i] = Day{
				Date:           current,
				InCurrentMonth: current.Month() == time.Month(month) && current.Year() == year,
				IsToday:        current.Equal(today),
			}
			current = current.AddDate(0, 0, 1)
		}
		weeks = append(weeks, w)
	}
	return weeks, nil
}

// CurrentWeekIndex is the index of the week holding today, or 0 when today is
// outside the grid.
func CurrentWeekIndex(weeks []Week) int {
	for i, w := range weeks {
		for _, d := range w {
			if d.IsToday {
				return i
			}
		}
	}
	return 0
}

// Days flattens the grid in display order.
func Days(weeks []Week) []Day {
	out := make([]Day, 0, len(weeks)*7)
	for _, w := range weeks {
		out = append(out, w[:]...)
	}
	return out
}
