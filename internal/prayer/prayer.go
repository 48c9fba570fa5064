// Package prayer looks up the per-day nakai period and prayer timetable.
package prayer

import (
	"fmt"
	"math"
	"time"

	"github.com/Nixie-Tech-LLC/nakai/internal/model"
)

// KeyLayout formats dates the way nakai_prayer.json keys them ("01 Jan 2026").
const KeyLayout = "02 Jan 2006"

func Key(date time.Time) string {
	return date.Format(KeyLayout)
}

// Lookup finds the record for date. A missing record is a normal outcome.
func Lookup(records map[string]model.NakaiPrayer, date time.Time) (model.NakaiPrayer, bool) {
	rec, ok := records[Key(date)]
	return rec, ok
}

// DecimalHoursToClock converts 12.13 into ("12:08", "PM").
func DecimalHoursToClock(decimalHours float64) (string, string) {
	hours := int(math.Floor(decimalHours))
	minutes := int(math.Round((decimalHours - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	hours %= 24

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours
	switch {
	case hours == 0:
		display = 12
	case hours > 12:
		display = hours - 12
	}
	return fmt.Sprintf("%02d:%02d", display, minutes), period
}

// Prayers lists the six times of rec in display order.
func Prayers(rec model.NakaiPrayer) []model.Prayer {
	order := []struct {
		name, icon string
		at         float64
	}{
		{"Fajr", "icon-fajr.svg", rec.Fajr},
		{"Sun Rise", "icon-sunrise.svg", rec.Sunrise},
		{"Dhuhr", "icon-dhuhr.svg", rec.Dhuhr},
		{"Asr", "icon-asr.svg", rec.Asr},
		{"Maghrib", "icon-magrib.svg", rec.Maghrib},
		{"Isha", "icon-isha.svg", rec.Isha},
	}
	out := make([]model.Prayer, len(order))
	for i, p := range order {
		clock, period := DecimalHoursToClock(p.at)
		out[i] = model.Prayer{Name: p.name, Time: clock, Period: period, Icon: p.icon}
	}
	return out
}

// NakaiOf builds the nakai summary for rec.
func NakaiOf(rec model.NakaiPrayer) model.Nakai {
	return model.Nakai{
		NameEn:      rec.NakaiNameEn,
		NameMv:      rec.NakaiNameMv,
		Day:         rec.NakaiDay,
		Description: NakaiDescription(rec.NakaiNameEn),
	}
}
