// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package hijrictlreport builds the rows that hijrictl commands print.
//
// Every report type has a Headers function and a ToRow function for table and
// CSV output, and JSON tags for JSON output.
package hijrictlreport

import (
	"strconv"

	"github.com/bufdev/hijrictl/internal/pkg/hijridate"
	"github.com/bufdev/hijrictl/internal/pkg/ummalqura"
)

// Formatter formats dates and names for one locale and DMY style.
type Formatter struct {
	locale       hijridate.Locale
	dmySeparator string
	dmyPadding   bool
}

// NewFormatter returns a new Formatter.
func NewFormatter(locale hijridate.Locale, dmySeparator string, dmyPadding bool) *Formatter {
	return &Formatter{
		locale:       locale,
		dmySeparator: dmySeparator,
		dmyPadding:   dmyPadding,
	}
}

// Conversion is one date expressed in both calendars.
type Conversion struct {
	// Hijri is the Hijri date in YYYY-MM-DD format.
	Hijri string `json:"hijri"`
	// HijriDMY is the Hijri date in day-month-year format followed by the era notation.
	HijriDMY string `json:"hijri_dmy"`
	// HijriMonth is the localized Hijri month name.
	HijriMonth string `json:"hijri_month"`
	// Gregorian is the Gregorian date in YYYY-MM-DD format.
	Gregorian string `json:"gregorian"`
	// GregorianDMY is the Gregorian date in day-month-year format followed by the era notation.
	GregorianDMY string `json:"gregorian_dmy"`
	// GregorianMonth is the localized Gregorian month name.
	GregorianMonth string `json:"gregorian_month"`
	// Weekday is the localized weekday name.
	Weekday string `json:"weekday"`
	// ISOWeekday is the weekday where Monday is 1 and Sunday is 7.
	ISOWeekday int `json:"iso_weekday"`
	// JulianDay is the Julian Day Number.
	JulianDay int `json:"julian_day"`
}

// NewConversion returns the Conversion for a Hijri date.
func (f *Formatter) NewConversion(hijri hijridate.Hijri) *Conversion {
	gregorian := hijri.ToGregorian()
	return &Conversion{
		Hijri:          hijri.ISOFormat(),
		HijriDMY:       hijri.DMYFormat(f.dmySeparator, f.dmyPadding) + " " + hijri.Notation(f.locale),
		HijriMonth:     hijri.MonthName(f.locale),
		Gregorian:      gregorian.ISOFormat(),
		GregorianDMY:   gregorian.DMYFormat(f.dmySeparator, f.dmyPadding) + " " + gregorian.Notation(f.locale),
		GregorianMonth: gregorian.MonthName(f.locale),
		Weekday:        hijri.DayName(f.locale),
		ISOWeekday:     hijri.ISOWeekday(),
		JulianDay:      hijri.ToJulian(),
	}
}

// NewGregorianConversion returns the Conversion for a Gregorian date.
//
// Returns an error if the date is outside the supported range.
func (f *Formatter) NewGregorianConversion(gregorian hijridate.Gregorian) (*Conversion, error) {
	hijri, err := gregorian.ToHijri()
	if err != nil {
		return nil, err
	}
	return f.NewConversion(hijri), nil
}

// ConversionHeaders returns the column headers for Conversion rows.
func ConversionHeaders() []string {
	return []string{
		"HIJRI",
		"HIJRI DMY",
		"HIJRI MONTH",
		"GREGORIAN",
		"GREGORIAN DMY",
		"GREGORIAN MONTH",
		"WEEKDAY",
		"JULIAN DAY",
	}
}

// ConversionToRow converts a Conversion to a row of strings.
func ConversionToRow(c *Conversion) []string {
	return []string{
		c.Hijri,
		c.HijriDMY,
		c.HijriMonth,
		c.Gregorian,
		c.GregorianDMY,
		c.GregorianMonth,
		c.Weekday,
		strconv.Itoa(c.JulianDay),
	}
}

// NewMonth returns a Conversion for every day of the Hijri month.
//
// Returns an error if year or month is invalid.
func (f *Formatter) NewMonth(year int, month int) ([]*Conversion, error) {
	first, err := hijridate.NewHijri(year, month, 1)
	if err != nil {
		return nil, err
	}
	conversions := make([]*Conversion, 0, first.MonthLength())
	for day := 1; day <= first.MonthLength(); day++ {
		hijri, err := hijridate.NewHijri(year, month, day)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, f.NewConversion(hijri))
	}
	return conversions, nil
}

// MonthSummary summarizes one Hijri month.
type MonthSummary struct {
	// Month is the Hijri month, 1-12.
	Month int `json:"month"`
	// Name is the localized Hijri month name.
	Name string `json:"name"`
	// Start is the Gregorian date of the first day of the month.
	Start string `json:"start"`
	// End is the Gregorian date of the last day of the month.
	End string `json:"end"`
	// Length is the number of days in the month, 29 or 30.
	Length int `json:"length"`
}

// Year summarizes one Hijri year.
type Year struct {
	// Year is the Hijri year.
	Year int `json:"year"`
	// Months are the twelve months of the year in order.
	Months []*MonthSummary `json:"months"`
	// Length is the number of days in the year.
	Length int `json:"length"`
}

// NewYear returns the Year summary for a Hijri year.
//
// Returns an error if the year is outside the supported range.
func (f *Formatter) NewYear(year int) (*Year, error) {
	newYear, err := hijridate.NewHijri(year, 1, 1)
	if err != nil {
		return nil, err
	}
	months := make([]*MonthSummary, 0, ummalqura.MonthsPerYear)
	for month := 1; month <= ummalqura.MonthsPerYear; month++ {
		first, err := hijridate.NewHijri(year, month, 1)
		if err != nil {
			return nil, err
		}
		last, err := hijridate.NewHijri(year, month, first.MonthLength())
		if err != nil {
			return nil, err
		}
		months = append(months, &MonthSummary{
			Month:  month,
			Name:   first.MonthName(f.locale),
			Start:  first.ToGregorian().ISOFormat(),
			End:    last.ToGregorian().ISOFormat(),
			Length: first.MonthLength(),
		})
	}
	return &Year{
		Year:   year,
		Months: months,
		Length: newYear.YearLength(),
	}, nil
}

// MonthSummaryHeaders returns the column headers for MonthSummary rows.
func MonthSummaryHeaders() []string {
	return []string{"MONTH", "NAME", "START", "END", "DAYS"}
}

// MonthSummaryToRow converts a MonthSummary to a row of strings.
func MonthSummaryToRow(m *MonthSummary) []string {
	return []string{
		strconv.Itoa(m.Month),
		m.Name,
		m.Start,
		m.End,
		strconv.Itoa(m.Length),
	}
}

// YearTotalsRow returns the totals row for a Year, aligned to MonthSummaryHeaders.
func YearTotalsRow(y *Year) []string {
	totalsRow := make([]string, len(MonthSummaryHeaders()))
	totalsRow[0] = "TOTAL"
	totalsRow[len(totalsRow)-1] = strconv.Itoa(y.Length)
	return totalsRow
}

// Range is the supported range of one calendar.
type Range struct {
	// Calendar is the localized era notation of the calendar.
	Calendar string `json:"calendar"`
	// Min is the first supported date in YYYY-MM-DD format.
	Min string `json:"min"`
	// Max is the last supported date in YYYY-MM-DD format.
	Max string `json:"max"`
}

// NewRanges returns the supported Hijri and Gregorian ranges, Hijri first.
func (f *Formatter) NewRanges() ([]*Range, error) {
	hijriMin, hijriMax := ummalqura.HijriRange()
	minHijri, err := hijridate.NewHijri(hijriMin.Year, hijriMin.Month, hijriMin.Day)
	if err != nil {
		return nil, err
	}
	maxHijri, err := hijridate.NewHijri(hijriMax.Year, hijriMax.Month, hijriMax.Day)
	if err != nil {
		return nil, err
	}
	minGregorian := minHijri.ToGregorian()
	maxGregorian := maxHijri.ToGregorian()
	return []*Range{
		{
			Calendar: minHijri.Notation(f.locale),
			Min:      minHijri.ISOFormat(),
			Max:      maxHijri.ISOFormat(),
		},
		{
			Calendar: minGregorian.Notation(f.locale),
			Min:      minGregorian.ISOFormat(),
			Max:      maxGregorian.ISOFormat(),
		},
	}, nil
}

// RangeHeaders returns the column headers for Range rows.
func RangeHeaders() []string {
	return []string{"CALENDAR", "MIN", "MAX"}
}

// RangeToRow converts a Range to a row of strings.
func RangeToRow(r *Range) []string {
	return []string{r.Calendar, r.Min, r.Max}
}
