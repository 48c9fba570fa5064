// Package view composes calendar pages from the catalog and the calendar core.
package view

import (
	"time"

	"github.com/Nixie-Tech-LLC/nakai/internal/calendar"
	"github.com/Nixie-Tech-LLC/nakai/internal/catalog"
	"github.com/Nixie-Tech-LLC/nakai/internal/model"
	"github.com/Nixie-Tech-LLC/nakai/internal/prayer"
)

// DayCell is one grid cell. HolidayType is the winning type when several
// holidays share the day.
type DayCell struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	InCurrentMonth bool   `json:"in_current_month"`
	IsToday        bool   `json:"is_today"`
	IsSelected     bool   `json:"is_selected"`
	HolidayType    string `json:"holiday_type,omitempty"`
	HolidayClass   string `json:"holiday_class,omitempty"`
}

type HolidayItem struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	DateLabel string `json:"date_label"`
	Type      string `json:"type"`
	TypeClass string `json:"type_class"`
}

type TodayHeader struct {
	Date      string `json:"date"`
	Day       string `json:"day"`
	Weekday   string `json:"weekday"`
	WeekdayMv string `json:"weekday_mv"`
}

type MonthView struct {
	Year             int           `json:"year"`
	Month            int           `json:"month"`
	Slug             string        `json:"slug"`
	MonthName        string        `json:"month_name"`
	HijriLabel       string        `json:"hijri_label"`
	DhivehiLabel     string        `json:"dhivehi_label"`
	Today            TodayHeader   `json:"today"`
	Weeks            [][]DayCell   `json:"weeks"`
	CurrentWeekIndex int           `json:"current_week_index"`
	Holidays         []HolidayItem `json:"holidays"`
	WorkingDays      int           `json:"working_days"`
	Selected         *DayView      `json:"selected,omitempty"`
}

type DayView struct {
	Date     string         `json:"date"`
	Key      string         `json:"key"`
	Hijri    string         `json:"hijri"`
	Dhivehi  string         `json:"dhivehi"`
	Holidays []HolidayItem  `json:"holidays"`
	Nakai    *model.Nakai   `json:"nakai"`
	Prayers  []model.Prayer `json:"prayers"`
}

// Options carries the injected clock and label settings.
type Options struct {
	Now       time.Time
	Converter calendar.HijriConverter
	Locale    calendar.Locale
}

func (o Options) converter() calendar.HijriConverter {
	if o.Converter == nil {
		return calendar.TabularHijri{}
	}
	return o.Converter
}

func (o Options) locale() calendar.Locale {
	if o.Locale == "" {
		return calendar.LocaleArabic
	}
	return o.Locale
}

// BuildMonth renders the month page. selected may be zero, in which case no
// day is marked and the day panel is omitted.
func BuildMonth(cat *catalog.Catalog, year, month int, selected time.Time, opts Options) (*MonthView, error) {
	weeks, err := calendar.BuildMonthGrid(year, month, opts.Now)
	if err != nil {
		return nil, err
	}
	monthHolidays, err := calendar.HolidaysForMonth(year, month, cat.Holidays)
	if err != nil {
		return nil, err
	}
	workingDays, err := WorkingDays(year, month, cat.Holidays)
	if err != nil {
		return nil, err
	}

	first, _ := calendar.MonthBounds(year, time.Month(month))
	today := calendar.DateOf(opts.Now)

	v := &MonthView{
		Year:         year,
		Month:        month,
		Slug:         catalog.MonthSlug(month),
		MonthName:    first.Month().String(),
		HijriLabel:   calendar.HijriMonthLabel(first, opts.converter(), opts.locale()),
		DhivehiLabel: calendar.DhivehiGregorianLabel(first, calendar.DefaultDhivehiOptions),
		Today: TodayHeader{
			Date:      today.Format(calendar.ISODate),
			Day:       today.Format("02"),
			Weekday:   today.Weekday().String(),
			WeekdayMv: calendar.DhivehiWeekday(today.Weekday()),
		},
		Weeks:            make([][]DayCell, 0, len(weeks)),
		CurrentWeekIndex: calendar.CurrentWeekIndex(weeks),
		Holidays:         holidayItems(monthHolidays),
		WorkingDays:      workingDays,
	}

	for _, w := range weeks {
		row := make([]DayCell, 0, len(w))
		for _, d := range w {
			cell := DayCell{
				Date:           d.Date.Format(calendar.ISODate),
				Day:            d.Date.Day(),
				InCurrentMonth: d.InCurrentMonth,
				IsToday:        d.IsToday,
				IsSelected:     !selected.IsZero() && calendar.SameDay(d.Date, selected),
			}
			if h, ok := calendar.ResolvePriority(calendar.HolidaysForDate(d.Date, cat.Holidays)); ok {
				cell.HolidayType = h.Type.String()
				cell.HolidayClass = h.Type.Slug()
			}
			row = append(row, cell)
		}
		v.Weeks = append(v.Weeks, row)
	}

	if !selected.IsZero() {
		v.Selected = BuildDay(cat, selected, opts)
	}
	return v, nil
}

// BuildDay renders the detail panel for one date. Nakai and Prayers stay nil
// when the timetable has no entry for the date.
func BuildDay(cat *catalog.Catalog, date time.Time, opts Options) *DayView {
	date = calendar.DateOf(date)
	v := &DayView{
		Date:     date.Format(calendar.ISODate),
		Key:      prayer.Key(date),
		Hijri:    calendar.FormatHijriDate(date, opts.converter(), opts.locale()),
		Dhivehi:  calendar.DhivehiGregorianLabel(date, calendar.DhivehiOptions{Day: true, Month: true, Year: true}),
		Holidays: holidayItems(calendar.HolidaysForDate(date, cat.Holidays)),
	}
	if rec, ok := prayer.Lookup(cat.Prayers, date); ok {
		n := prayer.NakaiOf(rec)
		v.Nakai = &n
		v.Prayers = prayer.Prayers(rec)
	}
	return v
}

func holidayItems(hs []calendar.Holiday) []HolidayItem {
	out := make([]HolidayItem, 0, len(hs))
	for _, h := range hs {
		out = append(out, NewHolidayItem(h))
	}
	return out
}

// NewHolidayItem renders a single holiday for display.
func NewHolidayItem(h calendar.Holiday) HolidayItem {
	item := HolidayItem{
		Name:      h.Name,
		StartDate: h.StartDate.Format(calendar.ISODate),
		DateLabel: h.StartDate.Format("02 January"),
		Type:      h.Type.String(),
		TypeClass: h.Type.Slug(),
	}
	if h.Range != nil {
		item.EndDate = h.Range.End.Format(calendar.ISODate)
	}
	return item
}
