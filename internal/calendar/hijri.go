package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HijriDate is a date in the Islamic lunar calendar. Month is 1..12.
type HijriDate struct {
	Year  int
	Month int
	Day   int
}

// HijriConverter maps a Gregorian calendar date onto the Hijri calendar.
type HijriConverter interface {
	ToHijri(date time.Time) HijriDate
}

// TabularHijri is the arithmetic Islamic civil calendar: 30-year cycles with
// 11 leap years, months alternating 30 and 29 days.
type TabularHijri struct{}

// first day of 1 Muharram 1 AH, civil epoch
const hijriEpochJDN = 1948440

func (TabularHijri) ToHijri(date time.Time) HijriDate {
	jdn := julianDayNumber(DateOf(date))

	year := (30*(jdn-hijriEpochJDN) + 10646) / 10631
	if jdn < hijriToJDN(year, 1, 1) {
		year--
	} else if jdn >= hijriToJDN(year+1, 1, 1) {
		year++
	}

	day := jdn - hijriToJDN(year, 1, 1) + 1
	month := 1
	for month < 12 && day > HijriMonthLength(year, month) {
		day -= HijriMonthLength(year, month)
		month++
	}
	return HijriDate{Year: year, Month: month, Day: day}
}

// IsHijriLeapYear reports whether Dhu al-Hijjah has 30 days in year.
func IsHijriLeapYear(year int) bool {
	return (11*year+14)%30 < 11
}

// HijriMonthLength is the number of days in a tabular Hijri month.
func HijriMonthLength(year, month int) int {
	if month%2 == 1 || (month == 12 && IsHijriLeapYear(year)) {
		return 30
	}
	return 29
}

func hijriToJDN(year, month, day int) int {
	return day + (59*(month-1)+1)/2 + (year-1)*354 + (3+11*year)/30 + hijriEpochJDN - 1
}

func julianDayNumber(t time.Time) int {
	y, m, d := t.Date()
	a := (14 - int(m)) / 12
	yy := y + 4800 - a
	mm := int(m) + 12*a - 3
	return d + (153*mm+2)/5 + 365*yy + yy/4 - yy/100 + yy/400 - 32045
}

// Locale selects month names and digits for Hijri labels.
type Locale string

const (
	LocaleArabic  Locale = "ar-SA"
	LocaleEnglish Locale = "en"
)

var hijriMonthNames = map[Locale][12]string{
	LocaleArabic: {
		"محرم", "صفر", "ربيع الأول", "ربيع الآخر", "جمادى الأولى", "جمادى الآخرة",
		"رجب", "شعبان", "رمضان", "شوال", "ذو القعدة", "ذو الحجة",
	},
	LocaleEnglish: {
		"Muharram", "Safar", "Rabi I", "Rabi II", "Jumada I", "Jumada II",
		"Rajab", "Shaban", "Ramadan", "Shawwal", "Dhul-Qidah", "Dhul-Hijjah",
	},
}

func normalizeLocale(locale Locale) Locale {
	if strings.HasPrefix(strings.ToLower(string(locale)), "ar") {
		return LocaleArabic
	}
	return LocaleEnglish
}

// HijriMonthName returns the localized name of Hijri month 1..12.
func HijriMonthName(month int, locale Locale) string {
	if month < 1 || month > 12 {
		return ""
	}
	return hijriMonthNames[normalizeLocale(locale)][month-1]
}

var arabicIndicDigits = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
)

func localizeNumber(n int, locale Locale) string {
	s := strconv.Itoa(n)
	if normalizeLocale(locale) == LocaleArabic {
		return arabicIndicDigits.Replace(s)
	}
	return s
}

// HijriMonthLabel names the Hijri month(s) covered by the Gregorian month
// containing date, e.g. "1447 Shaban – Ramadan".
func HijriMonthLabel(date time.Time, conv HijriConverter, locale Locale) string {
	first, last := MonthBounds(date.Year(), date.Month())
	start := conv.ToHijri(first)
	end := conv.ToHijri(last)

	startYear := localizeNumber(start.Year, locale)
	startMonth := HijriMonthName(start.Month, locale)
	endMonth := HijriMonthName(end.Month, locale)

	switch {
	case start.Year == end.Year && start.Month == end.Month:
		return fmt.Sprintf("%s %s", startYear, startMonth)
	case start.Year == end.Year:
		return fmt.Sprintf("%s %s – %s", startYear, startMonth, endMonth)
	default:
		return fmt.Sprintf("%s %s – %s %s", startYear, startMonth, localizeNumber(end.Year, locale), endMonth)
	}
}

// FormatHijriDate renders a single date as "{day} {month} {year}".
func FormatHijriDate(date time.Time, conv HijriConverter, locale Locale) string {
	h := conv.ToHijri(date)
	return fmt.Sprintf("%s %s %s",
		localizeNumber(h.Day, locale),
		HijriMonthName(h.Month, locale),
		localizeNumber(h.Year, locale),
	)
}
