// Copyright 2026 Peter Edge
//
// All rights reserved.

package hijrilocale

import (
	"testing"

	"github.com/bufdev/hijrictl/internal/pkg/hijridate"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var _ hijridate.Locale = (*Locale)(nil)

func TestRegistry(t *testing.T) {
	t.Parallel()
	registry, err := NewRegistry()
	require.NoError(t, err)
	require.ElementsMatch(t, []language.Tag{language.English, language.Arabic, language.Bengali}, registry.Languages())
	for _, tag := range registry.Languages() {
		locale, err := registry.Locale(tag.String())
		require.NoError(t, err)
		require.Equal(t, tag, locale.Tag())
		for month := 1; month <= 12; month++ {
			require.NotEmpty(t, locale.HijriMonthName(month))
			require.NotEmpty(t, locale.GregorianMonthName(month))
		}
		for day := 1; day <= 7; day++ {
			require.NotEmpty(t, locale.DayName(day))
		}
		require.NotEmpty(t, locale.HijriNotation())
		require.NotEmpty(t, locale.GregorianNotation())
		require.Empty(t, locale.HijriMonthName(0))
		require.Empty(t, locale.HijriMonthName(13))
		require.Empty(t, locale.DayName(8))
	}
}

func TestEnglish(t *testing.T) {
	t.Parallel()
	registry, err := NewRegistry()
	require.NoError(t, err)
	for _, name := range []string{"en", "EN", "en-US", "en-us", "en_US", "en_US.UTF-8"} {
		locale, err := registry.Locale(name)
		require.NoError(t, err, name)
		require.Equal(t, language.English, locale.Tag())
	}
	locale, err := registry.Locale("en")
	require.NoError(t, err)
	hijri, err := hijridate.NewHijri(1410, 8, 13)
	require.NoError(t, err)
	require.Equal(t, "Sha’ban", hijri.MonthName(locale))
	require.Equal(t, "Saturday", hijri.DayName(locale))
	require.Equal(t, "AH", hijri.Notation(locale))
	gregorian := hijri.ToGregorian()
	require.Equal(t, "March", gregorian.MonthName(locale))
	require.Equal(t, "Saturday", gregorian.DayName(locale))
	require.Equal(t, "CE", gregorian.Notation(locale))
}

func TestArabic(t *testing.T) {
	t.Parallel()
	registry, err := NewRegistry()
	require.NoError(t, err)
	locale, err := registry.Locale("ar_SA.UTF-8")
	require.NoError(t, err)
	require.Equal(t, "رمضان", locale.HijriMonthName(9))
	require.Equal(t, "الجمعة", locale.DayName(5))
	require.Equal(t, "هـ", locale.HijriNotation())
}

func TestUnsupported(t *testing.T) {
	t.Parallel()
	registry, err := NewRegistry()
	require.NoError(t, err)
	for _, name := range []string{"xy", "fr", "", "not a tag"} {
		_, err := registry.Locale(name)
		require.ErrorIs(t, err, ErrUnsupportedLanguage, name)
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()
	require.Equal(t, "en-US", normalizeName("en_US.UTF-8"))
	require.Equal(t, "bn-BD", normalizeName("bn_BD@latin"))
	require.Equal(t, "ar", normalizeName("ar"))
}
