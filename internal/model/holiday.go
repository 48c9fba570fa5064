package model

// HolidayRecord is a holiday as it appears in holidays.json and the holidays table.
type HolidayRecord struct {
	ID        int     `db:"id"          json:"-"`
	Name      string  `db:"name"        json:"name"      validate:"required"`
	StartDate string  `db:"start_date"  json:"startDate" validate:"required"`
	DateRange *string `db:"date_range"  json:"dateRange"`
	Type      string  `db:"type"        json:"type"      validate:"required,oneof='Public Holiday' 'School Days' 'Other' 'Special Days' 'Term Holidays' 'Exam Days'"`
}

// HolidayRow is the CSV import shape; an empty DateRange means no range.
type HolidayRow struct {
	Name      string `csv:"name"`
	StartDate string `csv:"start_date"`
	DateRange string `csv:"date_range"`
	Type      string `csv:"type"`
}

func (r HolidayRow) Record() HolidayRecord {
	rec := HolidayRecord{Name: r.Name, StartDate: r.StartDate, Type: r.Type}
	if r.DateRange != "" {
		dr := r.DateRange
		rec.DateRange = &dr
	}
	return rec
}
