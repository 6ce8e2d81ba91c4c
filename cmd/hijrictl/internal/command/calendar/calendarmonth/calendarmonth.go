// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package calendarmonth implements the "calendar month" command.
package calendarmonth

import (
	"context"
	"strconv"
	"strings"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/hijrictlcmd"
	"github.com/bufdev/hijrictl/internal/hijrictl/hijrictlreport"
	"github.com/bufdev/hijrictl/internal/pkg/cliio"
	"github.com/bufdev/hijrictl/internal/pkg/hijridate"
)

// NewCommand returns a new calendar month command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := hijrictlcmd.NewOutputFlags()
	return &appcmd.Command{
		Use:   name + " [YYYY-MM]",
		Short: "Display every day of a Hijri month",
		Long: `Display every day of a Hijri month with its Gregorian date.

The argument is a Hijri year and month in YYYY-MM format.
Without an argument, displays the current Hijri month.`,
		Args: appcmd.MaximumNArgs(1),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

func run(_ context.Context, container appext.Container, flags *hijrictlcmd.OutputFlags) error {
	output, err := hijrictlcmd.NewOutput(container, flags)
	if err != nil {
		return err
	}
	var year, month int
	if container.NumArgs() == 0 {
		today, err := hijridate.HijriToday()
		if err != nil {
			return err
		}
		year, month = today.Year(), today.Month()
	} else {
		year, month, err = parseYearMonth(container.Arg(0))
		if err != nil {
			return err
		}
	}
	conversions, err := output.Formatter.NewMonth(year, month)
	if err != nil {
		return hijrictlcmd.NewDateError(err)
	}
	container.Logger().Debug("month", "year", year, "month", month, "length", len(conversions))
	return cliio.Write(
		container.Stdout(),
		output.Format,
		hijrictlreport.ConversionHeaders(),
		hijrictlreport.ConversionToRow,
		conversions...,
	)
}

// parseYearMonth parses a year and month in YYYY-MM format.
func parseYearMonth(s string) (int, int, error) {
	yearString, monthString, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, appcmd.NewInvalidArgumentErrorf("invalid month %q, expected YYYY-MM format", s)
	}
	year, err := strconv.Atoi(yearString)
	if err != nil {
		return 0, 0, appcmd.NewInvalidArgumentErrorf("invalid year in %q: %v", s, err)
	}
	month, err := strconv.Atoi(monthString)
	if err != nil {
		return 0, 0, appcmd.NewInvalidArgumentErrorf("invalid month in %q: %v", s, err)
	}
	return year, month, nil
}
