// Copyright 2026 Peter Edge
//
// All rights reserved.

package hijridate

import "time"

// Locale provides localized calendar names.
//
// Implementations are supplied by the caller, see the hijrilocale package.
type Locale interface {
	// HijriMonthName returns the name of the Hijri month, 1-12.
	HijriMonthName(month int) string
	// GregorianMonthName returns the name of the Gregorian month, 1-12.
	GregorianMonthName(month int) string
	// DayName returns the name of the weekday, where Monday is 1 and Sunday is 7.
	DayName(isoWeekday int) string
	// HijriNotation returns the era notation for the Hijri calendar (e.g., "AH").
	HijriNotation() string
	// GregorianNotation returns the era notation for the Gregorian calendar (e.g., "CE").
	GregorianNotation() string
}

// Clock abstracts time.Now for the today constructors.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock that reads the system clock in the local time zone.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
