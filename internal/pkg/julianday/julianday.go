// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package julianday converts between proleptic Gregorian ordinals, Julian Day
// Numbers (JDN), and Reduced Julian Days (RJD).
//
// All conversions are exact integer offsets. The offsets define the units of
// the Umm al-Qura month-start table and must not change.
package julianday

const (
	// OrdinalOffset is the JDN of the day before 0001-01-01 in the proleptic Gregorian calendar.
	OrdinalOffset = 1721425
	// ReducedOffset is subtracted from a JDN to get an RJD.
	ReducedOffset = 2400000
)

// OrdinalToJDN converts a proleptic Gregorian ordinal (0001-01-01 is 1) to a JDN.
func OrdinalToJDN(ordinal int) int {
	return ordinal + OrdinalOffset
}

// JDNToOrdinal converts a JDN to a proleptic Gregorian ordinal.
func JDNToOrdinal(jdn int) int {
	return jdn - OrdinalOffset
}

// JDNToRJD converts a JDN to an RJD.
func JDNToRJD(jdn int) int {
	return jdn - ReducedOffset
}

// RJDToJDN converts an RJD to a JDN.
func RJDToJDN(rjd int) int {
	return rjd + ReducedOffset
}
