// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package calendarical implements the "calendar ical" command.
package calendarical

import (
	"context"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/hijrictl/cmd/hijrictl/internal/hijrictlcmd"
	"github.com/bufdev/hijrictl/internal/hijrictl/hijrictlical"
	"github.com/bufdev/hijrictl/internal/pkg/hijridate"
	"github.com/spf13/pflag"
)

// NewCommand returns a new calendar ical command.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " [YYYY...]",
		Short: "Export Hijri months as iCalendar events",
		Long: `Export Hijri months as iCalendar events.

Writes an iCalendar file to stdout with one all-day event per Hijri month
of each given Hijri year. Without arguments, exports the current Hijri year.

Event UIDs are stable, so importing a new export updates existing events.`,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Language is the language for month and era names.
	Language string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Language, hijrictlcmd.LanguageFlagName, "", "Language for names (en, ar, bn), overrides the config file")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	locale, err := hijrictlcmd.NewLocale(container, flags.Language)
	if err != nil {
		return err
	}
	var years []int
	if container.NumArgs() == 0 {
		today, err := hijridate.HijriToday()
		if err != nil {
			return err
		}
		years = append(years, today.Year())
	}
	for i := range container.NumArgs() {
		year, err := strconv.Atoi(container.Arg(i))
		if err != nil {
			return appcmd.NewInvalidArgumentErrorf("invalid year %q: %v", container.Arg(i), err)
		}
		years = append(years, year)
	}
	calendar, err := hijrictlical.NewGenerator(locale, hijridate.SystemClock{}).NewCalendar(years...)
	if err != nil {
		return hijrictlcmd.NewDateError(err)
	}
	container.Logger().Debug("exporting calendar", "years", years, "events", len(calendar.Children))
	return hijrictlical.Encode(container.Stdout(), calendar)
}
