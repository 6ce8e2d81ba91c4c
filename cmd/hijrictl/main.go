// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/command/calendar"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/command/config"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/command/convert"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("hijrictl"))
}

// newRootCommand creates the root hijrictl command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Convert dates between the Gregorian and Umm al-Qura Hijri calendars",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			calendar.NewCommand("calendar", builder),
			config.NewCommand("config", builder),
			convert.NewCommand("convert", builder),
		},
	}
}
