// Copyright 2026 Peter Edge
//
// All rights reserved.

package hijridate

import (
	"time"

	"github.com/bufdev/hijrictl/internal/pkg/julianday"
	"github.com/bufdev/hijrictl/internal/pkg/ummalqura"
	"github.com/bufdev/hijrictl/internal/standard/xtime"
)

// Gregorian is a date in the proleptic Gregorian calendar.
//
// Any valid Gregorian date can be represented. Only dates within
// ummalqura.GregorianRange can be converted to Hijri.
type Gregorian struct {
	date xtime.Date
}

// NewGregorian returns a new Gregorian date.
//
// Returns an *InvalidArgumentError if month is not within 1-12 or day is not
// within 1 and the length of the month.
func NewGregorian(year int, month time.Month, day int) (Gregorian, error) {
	return GregorianFromDate(xtime.Date{Year: year, Month: month, Day: day})
}

// GregorianFromDate returns a new Gregorian date for the xtime.Date.
//
// Returns an *InvalidArgumentError if the date is not valid.
func GregorianFromDate(date xtime.Date) (Gregorian, error) {
	if !date.IsValid() {
		if date.Month < time.January || date.Month > time.December {
			return Gregorian{}, &InvalidArgumentError{
				Field: fieldMonth,
				Value: int(date.Month),
				Min:   1,
				Max:   12,
			}
		}
		return Gregorian{}, &InvalidArgumentError{
			Field: fieldDay,
			Value: date.Day,
			Min:   1,
			Max:   xtime.DaysIn(date.Year, date.Month),
		}
	}
	return Gregorian{date: date}, nil
}

// GregorianFromTime returns the Gregorian date on which t occurs in t's location.
func GregorianFromTime(t time.Time) Gregorian {
	return Gregorian{date: xtime.TimeToDate(t)}
}

// ParseGregorian parses a Gregorian date in YYYY-MM-DD format.
func ParseGregorian(s string) (Gregorian, error) {
	date, err := xtime.ParseDate(s)
	if err != nil {
		return Gregorian{}, newParseError("Gregorian", s, err)
	}
	return Gregorian{date: date}, nil
}

// GregorianToday returns the current Gregorian date according to the system clock.
func GregorianToday() Gregorian {
	return GregorianTodayFrom(SystemClock{})
}

// GregorianTodayFrom returns the current Gregorian date according to the clock.
func GregorianTodayFrom(clock Clock) Gregorian {
	return GregorianFromTime(clock.Now())
}

// Year returns the year.
func (g Gregorian) Year() int {
	return g.date.Year
}

// Month returns the month.
func (g Gregorian) Month() time.Month {
	return g.date.Month
}

// Day returns the day of the month, starting at 1.
func (g Gregorian) Day() int {
	return g.date.Day
}

// Date returns the underlying xtime.Date.
func (g Gregorian) Date() xtime.Date {
	return g.date
}

// DateTuple returns the year, month, and day.
func (g Gregorian) DateTuple() (int, int, int) {
	return g.date.Year, int(g.date.Month), g.date.Day
}

// IsZero reports whether the date is the zero value.
func (g Gregorian) IsZero() bool {
	return g.date.IsZero()
}

// String returns the date in ISO format, i.e. YYYY-MM-DD.
func (g Gregorian) String() string {
	return g.date.String()
}

// ISOFormat returns the date in ISO format, i.e. YYYY-MM-DD.
func (g Gregorian) ISOFormat() string {
	return g.date.String()
}

// DMYFormat returns the date in day-month-year order joined by separator.
//
// If padding is true, day and month are zero-padded to two digits.
func (g Gregorian) DMYFormat(separator string, padding bool) string {
	return dmyFormat(g.date.Year, int(g.date.Month), g.date.Day, separator, padding)
}

// Weekday returns the day of the week, where Monday is 0 and Sunday is 6.
func (g Gregorian) Weekday() int {
	return weekday(g.ToJulian())
}

// ISOWeekday returns the day of the week, where Monday is 1 and Sunday is 7.
func (g Gregorian) ISOWeekday() int {
	return weekday(g.ToJulian()) + 1
}

// ToJulian returns the Julian Day Number of the date.
func (g Gregorian) ToJulian() int {
	return julianday.OrdinalToJDN(g.date.Ordinal())
}

// InRange reports whether the date can be converted to Hijri.
func (g Gregorian) InRange() bool {
	return g.CheckRange() == nil
}

// CheckRange returns an *OutOfRangeError if the date is outside the supported range.
func (g Gregorian) CheckRange() error {
	gregorianMin, gregorianMax := ummalqura.GregorianRange()
	if g.date.Before(gregorianMin) || g.date.After(gregorianMax) {
		return &OutOfRangeError{
			Field: fieldDate,
			Value: g.date.String(),
			Min:   gregorianMin.String(),
			Max:   gregorianMax.String(),
		}
	}
	return nil
}

// ToHijri returns the Hijri date for the Gregorian date.
//
// Returns an *OutOfRangeError if the date is outside the supported range.
func (g Gregorian) ToHijri() (Hijri, error) {
	if err := g.CheckRange(); err != nil {
		return Hijri{}, err
	}
	return hijriFromRJD(julianday.JDNToRJD(g.ToJulian())), nil
}

// Compare compares g and other by year, then month, then day.
//
// Returns -1 if g is before other, +1 if g is after other, and 0 otherwise.
func (g Gregorian) Compare(other Gregorian) int {
	return g.date.Compare(other.date)
}

// Before reports whether g occurs before other.
func (g Gregorian) Before(other Gregorian) bool {
	return g.date.Before(other.date)
}

// After reports whether g occurs after other.
func (g Gregorian) After(other Gregorian) bool {
	return g.date.After(other.date)
}

// Equal reports whether g and other are the same date.
func (g Gregorian) Equal(other Gregorian) bool {
	return g == other
}

// MonthName returns the localized name of the month.
func (g Gregorian) MonthName(locale Locale) string {
	return locale.GregorianMonthName(int(g.date.Month))
}

// DayName returns the localized name of the weekday.
func (g Gregorian) DayName(locale Locale) string {
	return locale.DayName(g.ISOWeekday())
}

// Notation returns the localized era notation of the Gregorian calendar.
func (Gregorian) Notation(locale Locale) string {
	return locale.GregorianNotation()
}

// MarshalText implements encoding.TextMarshaler.
func (g Gregorian) MarshalText() ([]byte, error) {
	return g.date.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gregorian) UnmarshalText(data []byte) error {
	gregorian, err := ParseGregorian(string(data))
	if err != nil {
		return err
	}
	*g = gregorian
	return nil
}

// *** PRIVATE ***

func gregorianFromJDN(jdn int) Gregorian {
	return Gregorian{date: xtime.DateFromOrdinal(julianday.JDNToOrdinal(jdn))}
}
