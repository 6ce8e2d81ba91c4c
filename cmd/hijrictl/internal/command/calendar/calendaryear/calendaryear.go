// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package calendaryear implements the "calendar year" command.
package calendaryear

import (
	"context"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/hijrictlcmd"
	"github.com/bufdev/hijrictl/internal/hijrictl/hijrictlreport"
	"github.com/bufdev/hijrictl/internal/pkg/cliio"
	"github.com/bufdev/hijrictl/internal/pkg/hijridate"
)

// NewCommand returns a new calendar year command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := hijrictlcmd.NewOutputFlags()
	return &appcmd.Command{
		Use:   name + " [YYYY]",
		Short: "Display the months of a Hijri year",
		Long: `Display the months of a Hijri year with their Gregorian start and end dates.

The argument is a Hijri year between 1356 and 1500.
Without an argument, displays the current Hijri year.`,
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
	var yearValue int
	if container.NumArgs() == 0 {
		today, err := hijridate.HijriToday()
		if err != nil {
			return err
		}
		yearValue = today.Year()
	} else {
		yearValue, err = strconv.Atoi(container.Arg(0))
		if err != nil {
			return appcmd.NewInvalidArgumentErrorf("invalid year %q: %v", container.Arg(0), err)
		}
	}
	year, err := output.Formatter.NewYear(yearValue)
	if err != nil {
		return hijrictlcmd.NewDateError(err)
	}
	writer := container.Stdout()
	switch output.Format {
	case cliio.FormatTable:
		rows := make([][]string, 0, len(year.Months))
		for _, month := range year.Months {
			rows = append(rows, hijrictlreport.MonthSummaryToRow(month))
		}
		return cliio.WriteTableWithTotals(
			writer,
			hijrictlreport.MonthSummaryHeaders(),
			rows,
			hijrictlreport.YearTotalsRow(year),
		)
	case cliio.FormatCSV:
		return cliio.Write(
			writer,
			output.Format,
			hijrictlreport.MonthSummaryHeaders(),
			hijrictlreport.MonthSummaryToRow,
			year.Months...,
		)
	case cliio.FormatJSON:
		return cliio.WriteJSON(writer, year)
	default:
		return appcmd.NewInvalidArgumentErrorf("unsupported format: %s", output.Format)
	}
}
