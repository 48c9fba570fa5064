package view

import (
	"time"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
)

// Selection is the month a visitor lands on and the day selected in it.
type Selection struct {
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	Selected time.Time `json:"selected"`
}

// DefaultSelection decides where the site opens. The calendar covers
// seasonYear: during the December before it visitors start on January 1,
// during seasonYear they start on today, and otherwise on January.
func DefaultSelection(now time.Time, seasonYear int) Selection {
	today := calendar.DateOf(now)
	switch {
	case today.Year() == seasonYear-1 && today.Month() == time.December:
		return Selection{Year: seasonYear, Month: 1, Selected: calendar.Date(seasonYear, time.January, 1)}
	case today.Year() == seasonYear:
		return Selection{Year: seasonYear, Month: int(today.Month()), Selected: today}
	default:
		return Selection{Year: seasonYear, Month: 1, Selected: calendar.Date(seasonYear, time.January, 1)}
	}
}
