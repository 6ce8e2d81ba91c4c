// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package converttogregorian implements the "convert togregorian" command.
package converttogregorian

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/hijrictlcmd"
	"github.com/bufdev/hijrictl/internal/hijrictl/hijrictlreport"
	"github.com/bufdev/hijrictl/internal/pkg/cliio"
	"github.com/bufdev/hijrictl/internal/pkg/hijridate"
)

// NewCommand returns a new convert togregorian command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := hijrictlcmd.NewOutputFlags()
	return &appcmd.Command{
		Use:   name + " [YYYY-MM-DD...]",
		Short: "Convert Hijri dates to Gregorian dates",
		Long: `Convert Hijri dates to Gregorian dates.

Each argument is a Hijri date in YYYY-MM-DD format.
Without arguments, converts today's date in the local time zone.
Years must be between 1356 and 1500.`,
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
	var hijris []hijridate.Hijri
	if container.NumArgs() == 0 {
		today, err := hijridate.HijriToday()
		if err != nil {
			return err
		}
		hijris = append(hijris, today)
	}
	for i := range container.NumArgs() {
		hijri, err := hijridate.ParseHijri(container.Arg(i))
		if err != nil {
			return hijrictlcmd.NewDateError(err)
		}
		hijris = append(hijris, hijri)
	}
	conversions := make([]*hijrictlreport.Conversion, 0, len(hijris))
	for _, hijri := range hijris {
		conversions = append(conversions, output.Formatter.NewConversion(hijri))
	}
	return cliio.Write(
		container.Stdout(),
		output.Format,
		hijrictlreport.ConversionHeaders(),
		hijrictlreport.ConversionToRow,
		conversions...,
	)
}
