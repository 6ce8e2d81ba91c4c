// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package converttohijri implements the "convert tohijri" command.
package converttohijri

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/hijrictlcmd"
	"github.com/bufdev/hijrictl/internal/hijrictl/hijrictlreport"
	"github.com/bufdev/hijrictl/internal/pkg/cliio"
	"github.com/bufdev/hijrictl/internal/pkg/hijridate"
)

// NewCommand returns a new convert tohijri command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := hijrictlcmd.NewOutputFlags()
	return &appcmd.Command{
		Use:   name + " [YYYY-MM-DD...]",
		Short: "Convert Gregorian dates to Hijri dates",
		Long: `Convert Gregorian dates to Hijri dates.

Each argument is a Gregorian date in YYYY-MM-DD format.
Without arguments, converts today's date in the local time zone.
Dates must be between 1937-03-14 and 2077-11-16.`,
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
	gregorians := []hijridate.Gregorian{hijridate.GregorianToday()}
	if container.NumArgs() > 0 {
		gregorians = make([]hijridate.Gregorian, 0, container.NumArgs())
		for i := range container.NumArgs() {
			gregorian, err := hijridate.ParseGregorian(container.Arg(i))
			if err != nil {
				return hijrictlcmd.NewDateError(err)
			}
			gregorians = append(gregorians, gregorian)
		}
	}
	conversions := make([]*hijrictlreport.Conversion, 0, len(gregorians))
	for _, gregorian := range gregorians {
		conversion, err := output.Formatter.NewGregorianConversion(gregorian)
		if err != nil {
			return hijrictlcmd.NewDateError(err)
		}
		conversions = append(conversions, conversion)
	}
	return cliio.Write(
		container.Stdout(),
		output.Format,
		hijrictlreport.ConversionHeaders(),
		hijrictlreport.ConversionToRow,
		conversions...,
	)
}
