// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ummalqura provides the Umm al-Qura month-start table.
//
// The table is a strictly increasing sequence of Reduced Julian Day (RJD)
// numbers, one per Hijri month from MinYear-01 through MaxYear-12, plus a
// trailing sentinel holding the day after the last supported date. Month
// lengths are the differences of consecutive entries.
//
// The table is compiled in and never mutated, so every function in this
// package is safe for concurrent use.
package ummalqura

import (
	"sort"

	"github.com/bufdev/hijrictl/internal/pkg/julianday"
	"github.com/bufdev/hijrictl/internal/standard/xtime"
)

const (
	// MinYear is the first Hijri year covered by the table.
	MinYear = 1356
	// MaxYear is the last Hijri year covered by the table.
	MaxYear = 1500
	// MonthsPerYear is the number of months in a Hijri year.
	MonthsPerYear = 12
	// Offset is the absolute month number of MinYear-01, counting 1-01 as zero.
	Offset = (MinYear - 1) * MonthsPerYear
)

// YearMonthDay is a Hijri calendar triple.
type YearMonthDay struct {
	Year  int
	Month int
	Day   int
}

var (
	hijriMin     YearMonthDay
	hijriMax     YearMonthDay
	gregorianMin xtime.Date
	gregorianMax xtime.Date
)

func init() {
	last := len(monthStarts) - 1
	hijriMin = YearMonthDay{Year: MinYear, Month: 1, Day: 1}
	hijriMax = YearMonthDay{Year: MaxYear, Month: MonthsPerYear, Day: monthStarts[last] - monthStarts[last-1]}
	gregorianMin = rjdToDate(monthStarts[0])
	gregorianMax = rjdToDate(monthStarts[last] - 1)
}

// Len returns the number of entries in the table, including the sentinel.
func Len() int {
	return len(monthStarts)
}

// MonthStart returns the RJD of the first day of the month at index.
//
// Panics if index is outside [0, Len()).
func MonthStart(index int) int {
	return monthStarts[index]
}

// MonthIndex returns the table index of the given Hijri year and month.
//
// The result is only a valid index when year is within [MinYear, MaxYear]
// and month is within [1, 12].
func MonthIndex(year int, month int) int {
	return (year-1)*MonthsPerYear + (month - 1) - Offset
}

// MonthLength returns the number of days in the month at index.
func MonthLength(index int) int {
	return monthStarts[index+1] - monthStarts[index]
}

// YearLength returns the number of days in the Hijri year whose first month is at firstIndex.
func YearLength(firstIndex int) int {
	return monthStarts[firstIndex+MonthsPerYear] - monthStarts[firstIndex]
}

// Search returns the index of the last month that starts on or before rjd.
//
// Returns -1 if rjd is before the first entry. Callers are expected to
// range-check rjd beforehand.
func Search(rjd int) int {
	return sort.Search(len(monthStarts), func(i int) bool {
		return monthStarts[i] > rjd
	}) - 1
}

// HijriRange returns the first and last supported Hijri dates, inclusive.
func HijriRange() (YearMonthDay, YearMonthDay) {
	return hijriMin, hijriMax
}

// GregorianRange returns the first and last supported Gregorian dates, inclusive.
func GregorianRange() (xtime.Date, xtime.Date) {
	return gregorianMin, gregorianMax
}

// *** PRIVATE ***

func rjdToDate(rjd int) xtime.Date {
	return xtime.DateFromOrdinal(julianday.JDNToOrdinal(julianday.RJDToJDN(rjd)))
}
