// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package calendarrange implements the "calendar range" command.
package calendarrange

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/hijrictlcmd"
	"github.com/bufdev/hijrictl/internal/hijrictl/hijrictlreport"
	"github.com/bufdev/hijrictl/internal/pkg/cliio"
)

// NewCommand returns a new calendar range command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := hijrictlcmd.NewOutputFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Display the supported Hijri and Gregorian date ranges",
		Args:  appcmd.NoArgs,
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
	ranges, err := output.Formatter.NewRanges()
	if err != nil {
		return err
	}
	return cliio.Write(
		container.Stdout(),
		output.Format,
		hijrictlreport.RangeHeaders(),
		hijrictlreport.RangeToRow,
		ranges...,
	)
}
