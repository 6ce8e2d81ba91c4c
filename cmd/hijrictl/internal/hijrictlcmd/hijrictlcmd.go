// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package hijrictlcmd provides shared wiring for hijrictl commands that print
// dates (reading config, resolving the locale, and choosing the output format).
package hijrictlcmd

import (
	"errors"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/hijrictl/internal/hijrictl/hijrictlconfig"
	"github.com/bufdev/hijrictl/internal/hijrictl/hijrictlreport"
	"github.com/bufdev/hijrictl/internal/pkg/cliio"
	"github.com/bufdev/hijrictl/internal/pkg/hijridate"
	"github.com/bufdev/hijrictl/internal/pkg/hijrilocale"
	"github.com/spf13/pflag"
)

const (
	// FormatFlagName is the flag name for the output format.
	FormatFlagName = "format"
	// LanguageFlagName is the flag name for the output language.
	LanguageFlagName = "lang"
)

// OutputFlags are the flags shared by all commands that print dates.
type OutputFlags struct {
	// Format is the output format (table, csv, json).
	Format string
	// Language is the language for month, weekday, and era names.
	Language string
}

// NewOutputFlags returns a new OutputFlags.
func NewOutputFlags() *OutputFlags {
	return &OutputFlags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *OutputFlags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Format, FormatFlagName, "", "Output format (table, csv, json), overrides the config file")
	flagSet.StringVar(&f.Language, LanguageFlagName, "", "Language for names (en, ar, bn), overrides the config file")
}

// Output is the resolved output configuration for a command.
type Output struct {
	// Format is the output format.
	Format cliio.Format
	// Formatter formats dates and names.
	Formatter *hijrictlreport.Formatter
}

// NewOutput constructs an Output from the appext container by reading the
// config file and applying the flag overrides.
func NewOutput(container appext.Container, flags *OutputFlags) (*Output, error) {
	// Read and validate the configuration file, if any.
	config, err := hijrictlconfig.ReadConfig(container.ConfigDirPath())
	if err != nil {
		return nil, err
	}
	format := config.Format
	if flags.Format != "" {
		format, err = cliio.ParseFormat(flags.Format)
		if err != nil {
			return nil, appcmd.NewInvalidArgumentError(err.Error())
		}
	}
	locale, err := newLocale(config, flags.Language)
	if err != nil {
		return nil, err
	}
	container.Logger().Debug(
		"resolved output",
		"language", locale.Tag().String(),
		"format", string(format),
		"dmy_separator", config.DMYSeparator,
		"dmy_padding", config.DMYPadding,
	)
	return &Output{
		Format:    format,
		Formatter: hijrictlreport.NewFormatter(locale, config.DMYSeparator, config.DMYPadding),
	}, nil
}

// NewLocale resolves the Locale from the config file and the language flag.
//
// The flag takes precedence when set.
func NewLocale(container appext.Container, languageFlag string) (*hijrilocale.Locale, error) {
	config, err := hijrictlconfig.ReadConfig(container.ConfigDirPath())
	if err != nil {
		return nil, err
	}
	locale, err := newLocale(config, languageFlag)
	if err != nil {
		return nil, err
	}
	container.Logger().Debug("resolved locale", "language", locale.Tag().String())
	return locale, nil
}

// NewDateError converts a date validation error into an invalid argument error.
//
// Any other error is returned unchanged.
func NewDateError(err error) error {
	if errors.Is(err, hijridate.ErrInvalidArgument) || errors.Is(err, hijridate.ErrOutOfRange) {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	return err
}

// *** PRIVATE ***

func newLocale(config *hijrictlconfig.Config, languageFlag string) (*hijrilocale.Locale, error) {
	languageName := config.Language
	if languageFlag != "" {
		languageName = languageFlag
	}
	registry, err := hijrilocale.NewRegistry()
	if err != nil {
		return nil, err
	}
	locale, err := registry.Locale(languageName)
	if err != nil {
		if errors.Is(err, hijrilocale.ErrUnsupportedLanguage) {
			return nil, appcmd.NewInvalidArgumentErrorf("%v, must be one of: %v", err, registry.Languages())
		}
		return nil, err
	}
	return locale, nil
}
