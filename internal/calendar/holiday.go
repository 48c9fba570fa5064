package calendar

import (
	"strings"
	"time"

	"github.com/Nixie-Tech-LLC/nakai/internal/model"
)

type HolidayType int

const (
	PublicHoliday HolidayType = iota + 1
	SchoolDays
	Other
	SpecialDays
	TermHolidays
	ExamDays
)

var holidayTypeNames = map[HolidayType]string{
	PublicHoliday: "Public Holiday",
	SchoolDays:    "School Days",
	Other:         "Other",
	SpecialDays:   "Special Days",
	TermHolidays:  "Term Holidays",
	ExamDays:      "Exam Days",
}

var holidayTypeSlugs = map[HolidayType]string{
	PublicHoliday: "public-holiday",
	SchoolDays:    "school-days",
	Other:         "other",
	SpecialDays:   "special-days",
	TermHolidays:  "term-holidays",
	ExamDays:      "exam-days",
}

// String returns the name used in the holiday data files.
func (t HolidayType) String() string {
	if name, ok := holidayTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Slug is the styling key clients attach to day cells and list bullets.
func (t HolidayType) Slug() string {
	return holidayTypeSlugs[t]
}

func (t HolidayType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func ParseHolidayType(s string) (HolidayType, bool) {
	s = strings.TrimSpace(s)
	for t, name := range holidayTypeNames {
		if strings.EqualFold(name, s) {
			return t, true
		}
	}
	return 0, false
}

// DateRange is inclusive of both endpoints.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(date time.Time) bool {
	date = DateOf(date)
	return !date.Before(r.Start) && !date.After(r.End)
}

// Overlaps reports whether the range shares at least one day with [from, to].
func (r DateRange) Overlaps(from, to time.Time) bool {
	return !r.Start.After(to) && !r.End.Before(from)
}

func (r DateRange) String() string {
	return r.Start.Format(ISODate) + RangeSeparator + r.End.Format(ISODate)
}

// ParseDateRange parses "YYYY-MM-DD - YYYY-MM-DD".
func ParseDateRange(s string) (DateRange, error) {
	parts := strings.Split(s, RangeSeparator)
	if len(parts) != 2 {
		return DateRange{}, errorf(MalformedRange, nil, "%q", s)
	}
	start, err := ParseDate(parts[0])
	if err != nil {
		return DateRange{}, errorf(MalformedRange, err, "%q", s)
	}
	end, err := ParseDate(parts[1])
	if err != nil {
		return DateRange{}, errorf(MalformedRange, err, "%q", s)
	}
	if end.Before(start) {
		return DateRange{}, errorf(MalformedRange, nil, "%q ends before it starts", s)
	}
	return DateRange{Start: start, End: end}, nil
}

type Holiday struct {
	Name      string
	StartDate time.Time
	Range     *DateRange
	Type      HolidayType
}

// ParseHoliday converts a raw data record. A bad startDate is MalformedDate,
// a bad dateRange is MalformedRange and an unknown type is InvalidArgument.
func ParseHoliday(rec model.HolidayRecord) (Holiday, error) {
	start, err := ParseDate(rec.StartDate)
	if err != nil {
		return Holiday{}, err
	}
	typ, ok := ParseHolidayType(rec.Type)
	if !ok {
		return Holiday{}, errorf(InvalidArgument, nil, "unknown holiday type %q", rec.Type)
	}

	h := Holiday{Name: rec.Name, StartDate: start, Type: typ}
	if rec.DateRange != nil && strings.TrimSpace(*rec.DateRange) != "" {
		r, err := ParseDateRange(*rec.DateRange)
		if err != nil {
			return Holiday{}, err
		}
		h.Range = &r
	}
	return h, nil
}

// RecordError ties a parse failure to the position of the offending record.
type RecordError struct {
	Index int
	Name  string
	Err   error
}

func (e RecordError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e RecordError) Unwrap() error { return e.Err }

// ParseHolidays parses every record and drops the ones that fail. Surviving
// holidays keep their input order; the failures are returned for logging.
func ParseHolidays(recs []model.HolidayRecord) ([]Holiday, []RecordError) {
	out := make([]Holiday, 0, len(recs))
	var bad []RecordError
	for i, rec := range recs {
		h, err := ParseHoliday(rec)
		if err != nil {
			bad = append(bad, RecordError{Index: i, Name: rec.Name, Err: err})
			continue
		}
		out = append(out, h)
	}
	return out, bad
}

// Record is the inverse of ParseHoliday.
func (h Holiday) Record() model.HolidayRecord {
	rec := model.HolidayRecord{
		Name:      h.Name,
		StartDate: h.StartDate.Format(ISODate),
		Type:      h.Type.String(),
	}
	if h.Range != nil {
		s := h.Range.String()
		rec.DateRange = &s
	}
	return rec
}

// Includes reports whether the holiday falls on date: either its start date or
// any day of its range, both range endpoints included.
func (h Holiday) Includes(date time.Time) bool {
	date = DateOf(date)
	if date.Equal(h.StartDate) {
		return true
	}
	return h.Range != nil && h.Range.Contains(date)
}

// HolidaysForDate returns every holiday on date in input order.
func HolidaysForDate(date time.Time, holidays []Holiday) []Holiday {
	var out []Holiday
	for _, h := range holidays {
		if h.Includes(date) {
			out = append(out, h)
		}
	}
	return out
}

// HolidaysForMonth returns holidays starting in the month or whose range
// overlaps it. Output follows input order, not date order.
func HolidaysForMonth(year, month int, holidays []Holiday) ([]Holiday, error) {
	if err := ValidMonth(month); err != nil {
		return nil, err
	}
	first, last := MonthBounds(year, time.Month(month))

	var out []Holiday
	for _, h := range holidays {
		if h.StartDate.Year() == year && h.StartDate.Month() == time.Month(month) {
			out = append(out, h)
			continue
		}
		if h.Range != nil && h.Range.Overlaps(first, last) {
			out = append(out, h)
		}
	}
	return out, nil
}

// holidayPriority is the styling precedence for days with several holidays.
var holidayPriority = []HolidayType{
	PublicHoliday,
	ExamDays,
	TermHolidays,
	SchoolDays,
	SpecialDays,
	Other,
}

// ResolvePriority picks the one holiday that styles a day cell.
func ResolvePriority(matches []Holiday) (Holiday, bool) {
	if len(matches) == 0 {
		return Holiday{}, false
	}
	for _, typ := range holidayPriority {
		for _, h := range matches {
			if h.Type == typ {
				return h, true
			}
		}
	}
	return matches[0], true
}
