// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package calendar implements the "calendar" command group.
package calendar

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/command/calendar/calendarical"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/command/calendar/calendarmonth"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/command/calendar/calendarrange"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/command/calendar/calendaryear"
)

// NewCommand returns a new calendar command group with month, year, range, and ical sub-commands.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Display the Umm al-Qura calendar",
		SubCommands: []*appcmd.Command{
			calendarmonth.NewCommand("month", builder),
			calendaryear.NewCommand("year", builder),
			calendarrange.NewCommand("range", builder),
			calendarical.NewCommand("ical", builder),
		},
	}
}
