// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package convert implements the "convert" command group.
package convert

import (
	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/command/convert/converttogregorian"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/command/convert/converttohijri"
)

// NewCommand returns a new convert command group.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	return &appcmd.Command{
		Use:   name,
		Short: "Convert dates between calendars",
		SubCommands: []*appcmd.Command{
			converttohijri.NewCommand("tohijri", builder),
			converttogregorian.NewCommand("togregorian", builder),
		},
	}
}
