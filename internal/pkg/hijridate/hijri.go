// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package hijridate converts dates between the Gregorian calendar and the
// Umm al-Qura Hijri calendar.
//
// Conversions go through Julian Day Numbers: a Hijri date is located in the
// Umm al-Qura month-start table by index, and a Gregorian date is located by
// a binary search over the same table. Only dates covered by the table are
// supported, see the ummalqura package for the exact range.
//
// Hijri and Gregorian are immutable, comparable value types. They can be used
// as map keys and are safe for concurrent use.
package hijridate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bufdev/hijrictl/internal/pkg/julianday"
	"github.com/bufdev/hijrictl/internal/pkg/ummalqura"
)

// Hijri is a date in the Umm al-Qura Hijri calendar.
//
// The zero value is not a valid date. Construct a Hijri with NewHijri,
// ParseHijri, HijriToday, or Gregorian.ToHijri. Methods that look the date up
// in the month-start table panic on the zero value.
type Hijri struct {
	year  int
	month int
	day   int
}

// NewHijri returns a new validated Hijri date.
//
// Returns an *OutOfRangeError if year is outside the supported range, and an
// *InvalidArgumentError if month is not within 1-12 or day is not within
// 1 and the length of the month.
func NewHijri(year int, month int, day int) (Hijri, error) {
	hijri := newHijriUnchecked(year, month, day)
	if err := hijri.validate(); err != nil {
		return Hijri{}, err
	}
	return hijri, nil
}

// ParseHijri parses a Hijri date in YYYY-MM-DD format and validates it.
func ParseHijri(s string) (Hijri, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Hijri{}, newParseError("Hijri", s, nil)
	}
	values := make([]int, len(parts))
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return Hijri{}, newParseError("Hijri", s, err)
		}
		values[i] = value
	}
	return NewHijri(values[0], values[1], values[2])
}

// HijriToday returns the current Hijri date according to the system clock.
func HijriToday() (Hijri, error) {
	return HijriTodayFrom(SystemClock{})
}

// HijriTodayFrom returns the current Hijri date according to the clock.
func HijriTodayFrom(clock Clock) (Hijri, error) {
	return GregorianTodayFrom(clock).ToHijri()
}

// Year returns the year.
func (h Hijri) Year() int {
	return h.year
}

// Month returns the month, 1-12.
func (h Hijri) Month() int {
	return h.month
}

// Day returns the day of the month, starting at 1.
func (h Hijri) Day() int {
	return h.day
}

// DateTuple returns the year, month, and day.
func (h Hijri) DateTuple() (int, int, int) {
	return h.year, h.month, h.day
}

// IsZero reports whether the date is the zero value.
func (h Hijri) IsZero() bool {
	return h == Hijri{}
}

// String returns the date in ISO format, i.e. YYYY-MM-DD.
func (h Hijri) String() string {
	return h.ISOFormat()
}

// GoString implements fmt.GoStringer.
func (h Hijri) GoString() string {
	return fmt.Sprintf("Hijri(%d, %d, %d)", h.year, h.month, h.day)
}

// ISOFormat returns the date in ISO format, i.e. YYYY-MM-DD.
func (h Hijri) ISOFormat() string {
	return fmt.Sprintf("%04d-%02d-%02d", h.year, h.month, h.day)
}

// DMYFormat returns the date in day-month-year order joined by separator.
//
// If padding is true, day and month are zero-padded to two digits.
func (h Hijri) DMYFormat(separator string, padding bool) string {
	return dmyFormat(h.year, h.month, h.day, separator, padding)
}

// MonthLength returns the number of days in the month, 29 or 30.
//
// Panics if h was not constructed by this package, e.g. the zero value.
func (h Hijri) MonthLength() int {
	return ummalqura.MonthLength(h.monthIndex())
}

// YearLength returns the number of days in the year.
//
// Panics if h was not constructed by this package, e.g. the zero value.
func (h Hijri) YearLength() int {
	return ummalqura.YearLength(ummalqura.MonthIndex(h.year, 1))
}

// Weekday returns the day of the week, where Monday is 0 and Sunday is 6.
func (h Hijri) Weekday() int {
	return weekday(h.ToJulian())
}

// ISOWeekday returns the day of the week, where Monday is 1 and Sunday is 7.
func (h Hijri) ISOWeekday() int {
	return weekday(h.ToJulian()) + 1
}

// ToJulian returns the Julian Day Number of the date.
//
// Panics if h was not constructed by this package, e.g. the zero value.
func (h Hijri) ToJulian() int {
	rjd := ummalqura.MonthStart(h.monthIndex()) + h.day - 1
	return julianday.RJDToJDN(rjd)
}

// ToGregorian returns the Gregorian date for the Hijri date.
func (h Hijri) ToGregorian() Gregorian {
	return gregorianFromJDN(h.ToJulian())
}

// AddDays returns the date n days after h. n can be negative.
//
// Returns an *OutOfRangeError if the result is outside the supported range.
func (h Hijri) AddDays(n int) (Hijri, error) {
	rjd := julianday.JDNToRJD(h.ToJulian()) + n
	if rjd < ummalqura.MonthStart(0) || rjd >= ummalqura.MonthStart(ummalqura.Len()-1) {
		hijriMin, hijriMax := ummalqura.HijriRange()
		return Hijri{}, &OutOfRangeError{
			Field: fieldDate,
			Value: fmt.Sprintf("%s%+d", h.ISOFormat(), n),
			Min:   newHijriUnchecked(hijriMin.Year, hijriMin.Month, hijriMin.Day).ISOFormat(),
			Max:   newHijriUnchecked(hijriMax.Year, hijriMax.Month, hijriMax.Day).ISOFormat(),
		}
	}
	return hijriFromRJD(rjd), nil
}

// DaysSince returns the signed number of days from other to h.
func (h Hijri) DaysSince(other Hijri) int {
	return h.ToJulian() - other.ToJulian()
}

// Compare compares h and other by year, then month, then day.
//
// Returns -1 if h is before other, +1 if h is after other, and 0 otherwise.
func (h Hijri) Compare(other Hijri) int {
	return compareTuples(h.year, h.month, h.day, other.year, other.month, other.day)
}

// Before reports whether h occurs before other.
func (h Hijri) Before(other Hijri) bool {
	return h.Compare(other) < 0
}

// After reports whether h occurs after other.
func (h Hijri) After(other Hijri) bool {
	return h.Compare(other) > 0
}

// Equal reports whether h and other are the same date.
func (h Hijri) Equal(other Hijri) bool {
	return h == other
}

// MonthName returns the localized name of the month.
func (h Hijri) MonthName(locale Locale) string {
	return locale.HijriMonthName(h.month)
}

// DayName returns the localized name of the weekday.
func (h Hijri) DayName(locale Locale) string {
	return locale.DayName(h.ISOWeekday())
}

// Notation returns the localized era notation of the Hijri calendar.
func (Hijri) Notation(locale Locale) string {
	return locale.HijriNotation()
}

// MarshalText implements encoding.TextMarshaler.
func (h Hijri) MarshalText() ([]byte, error) {
	return []byte(h.ISOFormat()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// The text is parsed and validated with ParseHijri.
func (h *Hijri) UnmarshalText(data []byte) error {
	hijri, err := ParseHijri(string(data))
	if err != nil {
		return err
	}
	*h = hijri
	return nil
}

// *** PRIVATE ***

// newHijriUnchecked returns a Hijri without validation.
//
// Only used for dates derived from the month-start table, which are valid by construction.
func newHijriUnchecked(year int, month int, day int) Hijri {
	return Hijri{
		year:  year,
		month: month,
		day:   day,
	}
}

// hijriFromRJD derives the Hijri date of an RJD within the table.
func hijriFromRJD(rjd int) Hijri {
	index := ummalqura.Search(rjd)
	months := index + ummalqura.Offset
	years := months / ummalqura.MonthsPerYear
	year := years + 1
	month := months - years*ummalqura.MonthsPerYear + 1
	day := rjd - ummalqura.MonthStart(index) + 1
	return newHijriUnchecked(year, month, day)
}

// validate checks year, then month, then day.
//
// The day check needs a valid month index, so the order must not change.
func (h Hijri) validate() error {
	if h.year < ummalqura.MinYear || h.year > ummalqura.MaxYear {
		return &OutOfRangeError{
			Field: fieldYear,
			Value: strconv.Itoa(h.year),
			Min:   strconv.Itoa(ummalqura.MinYear),
			Max:   strconv.Itoa(ummalqura.MaxYear),
		}
	}
	if h.month < 1 || h.month > ummalqura.MonthsPerYear {
		return &InvalidArgumentError{
			Field: fieldMonth,
			Value: h.month,
			Min:   1,
			Max:   ummalqura.MonthsPerYear,
		}
	}
	if monthLength := h.MonthLength(); h.day < 1 || h.day > monthLength {
		return &InvalidArgumentError{
			Field: fieldDay,
			Value: h.day,
			Min:   1,
			Max:   monthLength,
		}
	}
	return nil
}

func (h Hijri) monthIndex() int {
	return ummalqura.MonthIndex(h.year, h.month)
}

// weekday maps a JDN to Monday=0 through Sunday=6. JDN 0 was a Monday.
func weekday(jdn int) int {
	return ((jdn % 7) + 7) % 7
}

func dmyFormat(year int, month int, day int, separator string, padding bool) string {
	if padding {
		return fmt.Sprintf("%02d%s%02d%s%d", day, separator, month, separator, year)
	}
	return fmt.Sprintf("%d%s%d%s%d", day, separator, month, separator, year)
}

func compareTuples(year1, month1, day1, year2, month2, day2 int) int {
	switch {
	case year1 != year2:
		return sign(year1 - year2)
	case month1 != month2:
		return sign(month1 - month2)
	default:
		return sign(day1 - day2)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return +1
	default:
		return 0
	}
}
