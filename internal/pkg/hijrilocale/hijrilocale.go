// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package hijrilocale provides localized month, weekday, and era names for
// the Hijri and Gregorian calendars.
//
// Names are loaded from embedded go-i18n message files named
// locales/active.<tag>.json. Every file must define all message IDs:
//
//	HijriMonth1 ... HijriMonth12
//	GregorianMonth1 ... GregorianMonth12
//	Day1 ... Day7 (Monday first)
//	HijriNotation
//	GregorianNotation
package hijrilocale

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned when no locale matches a language name.
var ErrUnsupportedLanguage = errors.New("unsupported language")

//go:embed locales/*.json
var localeFS embed.FS

// Registry resolves language names to Locales.
//
// A Registry is read-only after construction and safe for concurrent use.
type Registry struct {
	tags    []language.Tag
	matcher language.Matcher
	locales map[language.Tag]*Locale
}

// NewRegistry loads the embedded locale files.
//
// Returns an error if a file cannot be parsed or does not define every name.
func NewRegistry() (*Registry, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("reading embedded locales: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("loading locale file %s: %w", name, err)
		}
	}
	tags := bundle.LanguageTags()
	locales := make(map[language.Tag]*Locale, len(tags))
	for _, tag := range tags {
		locale, err := newLocale(bundle, tag)
		if err != nil {
			return nil, err
		}
		locales[tag] = locale
	}
	return &Registry{
		tags:    tags,
		matcher: language.NewMatcher(tags),
		locales: locales,
	}, nil
}

// Languages returns the tags of all loaded locales.
func (r *Registry) Languages() []language.Tag {
	return append([]language.Tag(nil), r.tags...)
}

// Locale returns the Locale for the language name.
//
// The name can be a BCP 47 tag ("en", "en-US") or a POSIX locale name
// ("en_US.UTF-8"). Returns an error wrapping ErrUnsupportedLanguage if no
// loaded locale matches.
func (r *Registry) Locale(name string) (*Locale, error) {
	tag, err := language.Parse(normalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
	}
	_, index, confidence := r.matcher.Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
	}
	return r.locales[r.tags[index]], nil
}

// Locale holds the localized names of one language.
type Locale struct {
	tag               language.Tag
	hijriMonths       [12]string
	gregorianMonths   [12]string
	dayNames          [7]string
	hijriNotation     string
	gregorianNotation string
}

// Tag returns the language tag of the locale.
func (l *Locale) Tag() language.Tag {
	return l.tag
}

// HijriMonthName returns the name of the Hijri month, 1-12.
//
// Returns an empty string for any other month.
func (l *Locale) HijriMonthName(month int) string {
	if month < 1 || month > len(l.hijriMonths) {
		return ""
	}
	return l.hijriMonths[month-1]
}

// GregorianMonthName returns the name of the Gregorian month, 1-12.
//
// Returns an empty string for any other month.
func (l *Locale) GregorianMonthName(month int) string {
	if month < 1 || month > len(l.gregorianMonths) {
		return ""
	}
	return l.gregorianMonths[month-1]
}

// DayName returns the name of the weekday, where Monday is 1 and Sunday is 7.
//
// Returns an empty string for any other value.
func (l *Locale) DayName(isoWeekday int) string {
	if isoWeekday < 1 || isoWeekday > len(l.dayNames) {
		return ""
	}
	return l.dayNames[isoWeekday-1]
}

// HijriNotation returns the Hijri era notation.
func (l *Locale) HijriNotation() string {
	return l.hijriNotation
}

// GregorianNotation returns the Gregorian era notation.
func (l *Locale) GregorianNotation() string {
	return l.gregorianNotation
}

// *** PRIVATE ***

func newLocale(bundle *i18n.Bundle, tag language.Tag) (*Locale, error) {
	localizer := i18n.NewLocalizer(bundle, tag.String())
	localize := func(messageID string) (string, error) {
		message, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
		if err != nil {
			return "", fmt.Errorf("locale %s: %w", tag, err)
		}
		if message == "" {
			return "", fmt.Errorf("locale %s: message %s is empty", tag, messageID)
		}
		return message, nil
	}
	locale := &Locale{tag: tag}
	var err error
	for i := range locale.hijriMonths {
		if locale.hijriMonths[i], err = localize(fmt.Sprintf("HijriMonth%d", i+1)); err != nil {
			return nil, err
		}
	}
	for i := range locale.gregorianMonths {
		if locale.gregorianMonths[i], err = localize(fmt.Sprintf("GregorianMonth%d", i+1)); err != nil {
			return nil, err
		}
	}
	for i := range locale.dayNames {
		if locale.dayNames[i], err = localize(fmt.Sprintf("Day%d", i+1)); err != nil {
			return nil, err
		}
	}
	if locale.hijriNotation, err = localize("HijriNotation"); err != nil {
		return nil, err
	}
	if locale.gregorianNotation, err = localize("GregorianNotation"); err != nil {
		return nil, err
	}
	return locale, nil
}

// normalizeName converts a POSIX locale name such as "en_US.UTF-8" to a BCP 47 tag.
func normalizeName(name string) string {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, "_", "-")
}
