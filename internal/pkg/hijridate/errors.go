// Copyright 2026 Peter Edge
//
// All rights reserved.

package hijridate

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange matches any error for a value outside the supported calendar data.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidArgument matches any error for a value that violates calendar shape rules.
	ErrInvalidArgument = errors.New("invalid argument")
)

// OutOfRangeError is returned when a year or date is structurally plausible
// but outside the window covered by the Umm al-Qura table.
type OutOfRangeError struct {
	// Field is the name of the offending field ("year" or "date").
	Field string
	// Value is the offending value.
	Value string
	// Min is the first supported value, inclusive.
	Min string
	// Max is the last supported value, inclusive.
	Max string
}

// Error implements error.
func (e *OutOfRangeError) Error() string {
	if e.Field == fieldDate {
		return fmt.Sprintf("%s must be in '%s'-'%s', got '%s'", e.Field, e.Min, e.Max, e.Value)
	}
	return fmt.Sprintf("%s must be in %s-%s, got '%s'", e.Field, e.Min, e.Max, e.Value)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// InvalidArgumentError is returned when a month or day is outside the bounds
// that are structurally possible for an otherwise valid date.
type InvalidArgumentError struct {
	// Field is the name of the offending field ("month" or "day").
	Field string
	// Value is the offending value.
	Value int
	// Min is the smallest valid value, inclusive.
	Min int
	// Max is the largest valid value, inclusive.
	//
	// For days this is the actual length of the month.
	Max int
}

// Error implements error.
func (e *InvalidArgumentError) Error() string {
	if e.Field == fieldDay {
		return fmt.Sprintf("%s must be in %d-%d for month, got '%d'", e.Field, e.Min, e.Max, e.Value)
	}
	return fmt.Sprintf("%s must be in %d-%d, got '%d'", e.Field, e.Min, e.Max, e.Value)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// *** PRIVATE ***

const (
	fieldYear  = "year"
	fieldMonth = "month"
	fieldDay   = "day"
	fieldDate  = "date"
)

func newParseError(calendar string, s string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: could not parse %s date %q, expected YYYY-MM-DD: %v", ErrInvalidArgument, calendar, s, err)
	}
	return fmt.Errorf("%w: could not parse %s date %q, expected YYYY-MM-DD", ErrInvalidArgument, calendar, s)
}
