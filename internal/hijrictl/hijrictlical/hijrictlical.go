// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package hijrictlical exports Hijri months as iCalendar all-day events.
//
// Every Hijri month becomes one VEVENT spanning its Gregorian days, so a
// calendar application shows the Hijri month alongside the Gregorian one.
// Event UIDs are name-based UUIDs derived from the Hijri year and month, so
// re-importing an export updates events instead of duplicating them.
package hijrictlical

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bufdev/hijrictl/internal/pkg/hijridate"
	"github.com/bufdev/hijrictl/internal/pkg/ummalqura"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const (
	icalVersion   = "2.0"
	icalProductID = "-//hijrictl//Umm al-Qura//EN"
	icalScale     = "GREGORIAN"
	icalCalName   = "Umm al-Qura"
	icalUIDDomain = "hijrictl"

	propCalName = "X-WR-CALNAME"
)

// uidNamespace is the namespace for event UIDs.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(icalUIDDomain))

// Generator builds iCalendar exports.
type Generator struct {
	locale hijridate.Locale
	clock  hijridate.Clock
}

// NewGenerator returns a new Generator.
//
// The locale names the months, the clock stamps the events.
func NewGenerator(locale hijridate.Locale, clock hijridate.Clock) *Generator {
	return &Generator{
		locale: locale,
		clock:  clock,
	}
}

// NewCalendar returns a calendar with one event per month of each Hijri year.
//
// Returns an error if any year is outside the supported range.
func (g *Generator) NewCalendar(years ...int) (*ical.Calendar, error) {
	calendar := ical.NewCalendar()
	calendar.Props.SetText(ical.PropVersion, icalVersion)
	calendar.Props.SetText(ical.PropProductID, icalProductID)
	calendar.Props.SetText(ical.PropCalendarScale, icalScale)
	calendar.Props.SetText(propCalName, icalCalName)

	dtStampProp := ical.NewProp(ical.PropDateTimeStamp)
	dtStampProp.SetDateTime(g.clock.Now().UTC())
	for _, year := range years {
		for month := 1; month <= ummalqura.MonthsPerYear; month++ {
			event, err := g.newEvent(year, month)
			if err != nil {
				return nil, err
			}
			event.Props.Set(dtStampProp)
			calendar.Children = append(calendar.Children, event.Component)
		}
	}
	return calendar, nil
}

// Encode writes the calendar to the writer in iCalendar format.
func Encode(writer io.Writer, calendar *ical.Calendar) error {
	if err := ical.NewEncoder(writer).Encode(calendar); err != nil {
		return fmt.Errorf("encoding iCalendar data: %w", err)
	}
	return nil
}

// EventUID returns the UID of the event for the Hijri year and month.
func EventUID(year int, month int) string {
	name := strconv.Itoa(year) + "-" + strconv.Itoa(month)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@" + icalUIDDomain
}

// *** PRIVATE ***

func (g *Generator) newEvent(year int, month int) (*ical.Event, error) {
	first, err := hijridate.NewHijri(year, month, 1)
	if err != nil {
		return nil, err
	}
	last, err := hijridate.NewHijri(year, month, first.MonthLength())
	if err != nil {
		return nil, err
	}
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, EventUID(year, month))
	event.Props.SetText(
		ical.PropSummary,
		fmt.Sprintf("%s %d %s", first.MonthName(g.locale), year, first.Notation(g.locale)),
	)
	event.Props.SetText(
		ical.PropDescription,
		fmt.Sprintf("%s - %s (%d)", first.ISOFormat(), last.ISOFormat(), first.MonthLength()),
	)
	dtStartProp := ical.NewProp(ical.PropDateTimeStart)
	dtStartProp.SetDate(first.ToGregorian().Date().In(g.clock.Now().Location()))
	event.Props.Set(dtStartProp)
	// DTEND is exclusive for all-day events.
	dtEndProp := ical.NewProp(ical.PropDateTimeEnd)
	dtEndProp.SetDate(last.ToGregorian().Date().AddDays(1).In(g.clock.Now().Location()))
	event.Props.Set(dtEndProp)
	return event, nil
}
