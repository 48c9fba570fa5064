package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridFebruary2026(t *testing.T) {
	today := time.Date(2026, time.February, 14, 21, 30, 0, 0, time.UTC)
	weeks, err := BuildMonthGrid(2026, 2, today)
	require.NoError(t, err)

	// Feb 1 2026 is a Sunday and Feb 28 a Saturday: exactly four weeks.
	require.Len(t, weeks, 4)
	assert.Equal(t, Date(2026, time.February, 1), weeks[0][0].Date)
	assert.Equal(t, Date(2026, time.February, 28), weeks[3][6].Date)

	todays := 0
	for _, d := range Days(weeks) {
		assert.True(t, d.InCurrentMonth)
		if d.IsToday {
			todays++
			assert.Equal(t, Date(2026, time.February, 14), d.Date)
		}
	}
	assert.Equal(t, 1, todays)
	assert.Equal(t, 1, CurrentWeekIndex(weeks))
}

func TestBuildMonthGridPadsFromAdjacentMonths(t *testing.T) {
	// August 2026 starts on a Saturday and ends on a Monday.
	weeks, err := BuildMonthGrid(2026, 8, time.Time{})
	require.NoError(t, err)
	require.Len(t, weeks, 6)

	assert.Equal(t, Date(2026, time.July, 26), weeks[0][0].Date)
	assert.False(t, weeks[0][0].InCurrentMonth)
	assert.True(t, weeks[0][6].InCurrentMonth)
	assert.Equal(t, Date(2026, time.September, 5), weeks[5][6].Date)
	assert.Equal(t, 0, CurrentWeekIndex(weeks))
}

func TestBuildMonthGridProperties(t *testing.T) {
	today := Date(2026, time.June, 10)
	for year := 2024; year <= 2027; year++ {
		for month := 1; month <= 12; month++ {
			weeks, err := BuildMonthGrid(year, month, today)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, len(weeks), 4)
			assert.LessOrEqual(t, len(weeks), 6)

			first, last := MonthBounds(year, time.Month(month))
			inMonth := 0
			prev := time.Time{}
			for i, d := range Days(weeks) {
				if i%7 == 0 {
					assert.Equal(t, time.Sunday, d.Date.Weekday())
				}
				if !prev.IsZero() {
					assert.Equal(t, prev.AddDate(0, 0, 1), d.Date)
				}
				prev = d.Date

				within := !d.Date.Before(first) && !d.Date.After(last)
				assert.Equal(t, within, d.InCurrentMonth, "%s", d.Date)
				if within {
					inMonth++
				}
				assert.Equal(t, d.Date.Equal(today), d.IsToday)
			}
			assert.Equal(t, last.Day(), inMonth)
		}
	}
}

func TestBuildMonthGridIsDeterministic(t *testing.T) {
	today := Date(2026, time.February, 3)
	a, err := BuildMonthGrid(2026, 2, today)
	require.NoError(t, err)
	b, err := BuildMonthGrid(2026, 2, today)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildMonthGridRejectsInvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := BuildMonthGrid(2026, month, time.Time{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, InvalidArgument, KindOf(err))
	}
}
