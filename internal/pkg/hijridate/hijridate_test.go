// Copyright 2026 Peter Edge
//
// All rights reserved.

package hijridate

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/bufdev/hijrictl/internal/pkg/ummalqura"
	"github.com/bufdev/hijrictl/internal/standard/xtime"
	"github.com/stretchr/testify/require"
)

func TestReferenceDate(t *testing.T) {
	t.Parallel()
	hijri, err := NewHijri(1410, 8, 13)
	require.NoError(t, err)
	require.Equal(t, 2447961, hijri.ToJulian())
	gregorian := hijri.ToGregorian()
	year, month, day := gregorian.DateTuple()
	require.Equal(t, []int{1990, 3, 10}, []int{year, month, day})
	require.Equal(t, 2447961, gregorian.ToJulian())
	converted, err := gregorian.ToHijri()
	require.NoError(t, err)
	require.Equal(t, hijri, converted)
	require.Equal(t, 29, hijri.MonthLength())
	require.Equal(t, 5, hijri.Weekday())
	require.Equal(t, 6, hijri.ISOWeekday())
	require.Equal(t, 5, gregorian.Weekday())
	require.Equal(t, 6, gregorian.ISOWeekday())
}

func TestUmmAlQuraMonthStarts(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		hijri     [3]int
		gregorian string
	}{
		{[3]int{1356, 1, 1}, "1937-03-14"},
		{[3]int{1375, 2, 1}, "1955-09-19"},
		{[3]int{1410, 8, 1}, "1990-02-26"},
		{[3]int{1410, 8, 13}, "1990-03-10"},
		{[3]int{1410, 9, 30}, "1990-04-25"},
		{[3]int{1444, 11, 1}, "2023-05-21"},
		{[3]int{1445, 6, 30}, "2024-01-12"},
		{[3]int{1445, 7, 1}, "2024-01-13"},
		{[3]int{1447, 6, 1}, "2025-11-22"},
		{[3]int{1447, 9, 1}, "2026-02-18"},
		{[3]int{1500, 12, 30}, "2077-11-16"},
	} {
		hijri := mustHijri(t, test.hijri[0], test.hijri[1], test.hijri[2])
		require.Equal(t, test.gregorian, hijri.ToGregorian().String(), hijri.String())
		gregorian, err := ParseGregorian(test.gregorian)
		require.NoError(t, err)
		converted, err := gregorian.ToHijri()
		require.NoError(t, err)
		require.Equal(t, hijri, converted, test.gregorian)
	}
}

func TestYearLength(t *testing.T) {
	t.Parallel()
	hijri, err := NewHijri(1410, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 355, hijri.YearLength())
	// Every day of the year reports the same year length.
	last, err := NewHijri(1410, 12, 1)
	require.NoError(t, err)
	require.Equal(t, 355, last.YearLength())
}

func TestFormat(t *testing.T) {
	t.Parallel()
	hijri := mustHijri(t, 1410, 8, 3)
	require.Equal(t, "1410-08-03", hijri.String())
	require.Equal(t, "1410-08-03", hijri.ISOFormat())
	require.Equal(t, "Hijri(1410, 8, 3)", hijri.GoString())
	require.Equal(t, "03/08/1410", hijri.DMYFormat("/", true))
	require.Equal(t, "3/8/1410", hijri.DMYFormat("/", false))
	require.Equal(t, "03.08.1410", hijri.DMYFormat(".", true))
	gregorian := mustGregorian(t, 1990, time.March, 10)
	require.Equal(t, "1990-03-10", gregorian.String())
	require.Equal(t, "10/03/1990", gregorian.DMYFormat("/", true))
	require.Equal(t, "10/3/1990", gregorian.DMYFormat("/", false))
	require.Equal(t, "10.03.1990", gregorian.DMYFormat(".", true))
}

func TestParse(t *testing.T) {
	t.Parallel()
	hijri, err := ParseHijri("1410-08-13")
	require.NoError(t, err)
	require.Equal(t, mustHijri(t, 1410, 8, 13), hijri)
	for _, bad := range []string{"", "1410-08", "1410/08/13", "1410-08-1x"} {
		_, err := ParseHijri(bad)
		require.ErrorIs(t, err, ErrInvalidArgument, bad)
	}
	_, err = ParseHijri("1410-08-30")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ParseHijri("1501-01-01")
	require.ErrorIs(t, err, ErrOutOfRange)
	gregorian, err := ParseGregorian("1990-03-10")
	require.NoError(t, err)
	require.Equal(t, mustGregorian(t, 1990, time.March, 10), gregorian)
	_, err = ParseGregorian("1990-02-30")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHijriValidation(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		year, month, day int
		wantKind         error
		wantMessage      string
	}{
		{1355, 12, 29, ErrOutOfRange, "year must be in 1356-1500, got '1355'"},
		{1501, 1, 1, ErrOutOfRange, "year must be in 1356-1500, got '1501'"},
		{37, 12, 30, ErrOutOfRange, "year must be in 1356-1500, got '37'"},
		// Year is checked before month.
		{1501, 13, 1, ErrOutOfRange, "year must be in 1356-1500, got '1501'"},
		{1410, 0, 1, ErrInvalidArgument, "month must be in 1-12, got '0'"},
		{1410, 13, 1, ErrInvalidArgument, "month must be in 1-12, got '13'"},
		{1356, 0, 1, ErrInvalidArgument, "month must be in 1-12, got '0'"},
		{1500, 13, 1, ErrInvalidArgument, "month must be in 1-12, got '13'"},
		{1410, 8, 30, ErrInvalidArgument, "day must be in 1-29 for month, got '30'"},
		{1410, 8, 0, ErrInvalidArgument, "day must be in 1-29 for month, got '0'"},
	} {
		_, err := NewHijri(test.year, test.month, test.day)
		require.Error(t, err)
		require.ErrorIs(t, err, test.wantKind)
		require.EqualError(t, err, test.wantMessage)
	}
	for _, valid := range [][3]int{{1410, 9, 30}, {1356, 1, 1}, {1500, 12, 30}} {
		_, err := NewHijri(valid[0], valid[1], valid[2])
		require.NoError(t, err)
	}
}

func TestDayBoundIsMonthLength(t *testing.T) {
	t.Parallel()
	for year := ummalqura.MinYear; year <= ummalqura.MaxYear; year += 17 {
		for month := 1; month <= 12; month++ {
			length := mustHijri(t, year, month, 1).MonthLength()
			_, err := NewHijri(year, month, length+1)
			var invalidArgumentError *InvalidArgumentError
			require.True(t, errors.As(err, &invalidArgumentError))
			require.Equal(t, length, invalidArgumentError.Max)
			require.Equal(t, "day", invalidArgumentError.Field)
		}
	}
}

func TestGregorianValidation(t *testing.T) {
	t.Parallel()
	_, err := NewGregorian(2023, time.February, 29)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.EqualError(t, err, "day must be in 1-28 for month, got '29'")
	_, err = NewGregorian(2023, time.Month(13), 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewGregorian(2024, time.February, 29)
	require.NoError(t, err)
	// Out of range dates can be constructed but not converted.
	for _, test := range []struct {
		gregorian   Gregorian
		wantMessage string
	}{
		{mustGregorian(t, 1937, time.March, 13), "date must be in '1937-03-14'-'2077-11-16', got '1937-03-13'"},
		{mustGregorian(t, 2077, time.November, 17), "date must be in '1937-03-14'-'2077-11-16', got '2077-11-17'"},
	} {
		require.False(t, test.gregorian.InRange())
		_, err := test.gregorian.ToHijri()
		require.ErrorIs(t, err, ErrOutOfRange)
		require.NotErrorIs(t, err, ErrInvalidArgument)
		require.EqualError(t, err, test.wantMessage)
	}
	for _, gregorian := range []Gregorian{
		mustGregorian(t, 1937, time.March, 14),
		mustGregorian(t, 2077, time.November, 16),
	} {
		require.True(t, gregorian.InRange())
		_, err := gregorian.ToHijri()
		require.NoError(t, err)
	}
}

func TestBoundaries(t *testing.T) {
	t.Parallel()
	first := mustHijri(t, 1356, 1, 1)
	require.Equal(t, mustGregorian(t, 1937, time.March, 14), first.ToGregorian())
	last := mustHijri(t, 1500, 12, 30)
	require.Equal(t, mustGregorian(t, 2077, time.November, 16), last.ToGregorian())
	_, err := first.AddDays(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = last.AddDays(1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestRoundTripHijri(t *testing.T) {
	t.Parallel()
	for year := ummalqura.MinYear; year <= ummalqura.MaxYear; year++ {
		for month := 1; month <= 12; month++ {
			length := mustHijri(t, year, month, 1).MonthLength()
			for day := 1; day <= length; day++ {
				hijri := mustHijri(t, year, month, day)
				converted, err := hijri.ToGregorian().ToHijri()
				require.NoError(t, err)
				require.Equal(t, hijri, converted)
			}
		}
	}
}

func TestRoundTripGregorian(t *testing.T) {
	t.Parallel()
	gregorianMin, gregorianMax := ummalqura.GregorianRange()
	var previous Hijri
	for date := gregorianMin; !date.After(gregorianMax); date = date.AddDays(1) {
		gregorian, err := GregorianFromDate(date)
		require.NoError(t, err)
		hijri, err := gregorian.ToHijri()
		require.NoError(t, err)
		require.Equal(t, gregorian, hijri.ToGregorian())
		if !previous.IsZero() {
			require.True(t, previous.Before(hijri))
			require.Equal(t, 1, hijri.DaysSince(previous))
		}
		previous = hijri
	}
}

func TestAddDays(t *testing.T) {
	t.Parallel()
	hijri := mustHijri(t, 1410, 8, 29)
	next, err := hijri.AddDays(1)
	require.NoError(t, err)
	require.Equal(t, mustHijri(t, 1410, 9, 1), next)
	back, err := next.AddDays(-30)
	require.NoError(t, err)
	require.Equal(t, -30, back.DaysSince(next))
	year, err := mustHijri(t, 1410, 1, 1).AddDays(355)
	require.NoError(t, err)
	require.Equal(t, mustHijri(t, 1411, 1, 1), year)
}

func TestWeekday(t *testing.T) {
	t.Parallel()
	hijri := mustHijri(t, 1445, 9, 1)
	gregorian := hijri.ToGregorian()
	for range 3 {
		require.Equal(t, hijri.Weekday()+1, hijri.ISOWeekday())
		require.GreaterOrEqual(t, hijri.Weekday(), 0)
		require.LessOrEqual(t, hijri.Weekday(), 6)
		require.Equal(t, hijri.Weekday(), gregorian.Weekday())
	}
	// Weekday agrees with the standard library, shifted to Monday=0.
	require.Equal(t, stdlibWeekday(gregorian), gregorian.Weekday())
}

func TestWeekdayNegativeJulianDay(t *testing.T) {
	t.Parallel()
	gregorian := mustGregorian(t, -5000, time.January, 1)
	require.Equal(t, -105152, gregorian.ToJulian())
	require.Equal(t, 2, gregorian.Weekday())
	require.Equal(t, 3, gregorian.ISOWeekday())
	require.Equal(t, stdlibWeekday(gregorian), gregorian.Weekday())
	for _, year := range []int{-4713, -1, 0, 1} {
		for day := 1; day <= 7; day++ {
			gregorian := mustGregorian(t, year, time.January, day)
			require.GreaterOrEqual(t, gregorian.Weekday(), 0)
			require.LessOrEqual(t, gregorian.Weekday(), 6)
			require.Equal(t, stdlibWeekday(gregorian), gregorian.Weekday(), gregorian.String())
		}
	}
}

func TestZeroValuePanics(t *testing.T) {
	t.Parallel()
	var hijri Hijri
	require.True(t, hijri.IsZero())
	require.Equal(t, "0000-00-00", hijri.ISOFormat())
	require.Panics(t, func() { hijri.MonthLength() })
	require.Panics(t, func() { hijri.YearLength() })
	require.Panics(t, func() { hijri.ToJulian() })
	require.Panics(t, func() { hijri.ToGregorian() })
}

func TestOrdering(t *testing.T) {
	t.Parallel()
	hijri := mustHijri(t, 1410, 8, 13)
	for _, test := range []struct {
		other Hijri
		want  int
	}{
		{mustHijri(t, 1410, 8, 12), +1},
		{mustHijri(t, 1410, 8, 13), 0},
		{mustHijri(t, 1410, 8, 14), -1},
		{mustHijri(t, 1409, 12, 29), +1},
		{mustHijri(t, 1411, 1, 1), -1},
		{mustHijri(t, 1410, 9, 1), -1},
	} {
		got := hijri.Compare(test.other)
		require.Equal(t, test.want, got)
		require.Equal(t, -test.want, test.other.Compare(hijri))
		require.Equal(t, test.want == 0, hijri.Equal(test.other))
		require.Equal(t, test.want < 0, hijri.Before(test.other))
		require.Equal(t, test.want > 0, hijri.After(test.other))
		// Ordering agrees with the timeline.
		require.Equal(t, test.want, sign(hijri.ToJulian()-test.other.ToJulian()))
	}
	// Comparable values can key maps.
	set := map[Hijri]struct{}{hijri: {}}
	_, ok := set[mustHijri(t, 1410, 8, 13)]
	require.True(t, ok)
}

func TestToday(t *testing.T) {
	t.Parallel()
	clock := fixedClock(time.Date(1990, time.March, 10, 23, 59, 0, 0, time.UTC))
	gregorian := GregorianTodayFrom(clock)
	require.Equal(t, mustGregorian(t, 1990, time.March, 10), gregorian)
	hijri, err := HijriTodayFrom(clock)
	require.NoError(t, err)
	require.Equal(t, mustHijri(t, 1410, 8, 13), hijri)
	_, err = HijriTodayFrom(fixedClock(time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)))
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestLocaleNames(t *testing.T) {
	t.Parallel()
	locale := testLocale{}
	hijri := mustHijri(t, 1410, 8, 13)
	require.Equal(t, "hijri-8", hijri.MonthName(locale))
	require.Equal(t, "day-6", hijri.DayName(locale))
	require.Equal(t, "AH", hijri.Notation(locale))
	gregorian := hijri.ToGregorian()
	require.Equal(t, "gregorian-3", gregorian.MonthName(locale))
	require.Equal(t, "day-6", gregorian.DayName(locale))
	require.Equal(t, "CE", gregorian.Notation(locale))
}

func TestJSON(t *testing.T) {
	t.Parallel()
	type pair struct {
		Hijri     Hijri     `json:"hijri"`
		Gregorian Gregorian `json:"gregorian"`
	}
	hijri := mustHijri(t, 1410, 8, 13)
	data, err := json.Marshal(pair{Hijri: hijri, Gregorian: hijri.ToGregorian()})
	require.NoError(t, err)
	require.JSONEq(t, `{"hijri":"1410-08-13","gregorian":"1990-03-10"}`, string(data))
	var decoded pair
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, hijri, decoded.Hijri)
	require.Equal(t, hijri.ToGregorian(), decoded.Gregorian)
	require.Error(t, json.Unmarshal([]byte(`{"hijri":"1410-08-30"}`), &decoded))
}

func TestGregorianFromDate(t *testing.T) {
	t.Parallel()
	gregorian, err := GregorianFromDate(xtime.Date{Year: 2014, Month: time.December, Day: 28})
	require.NoError(t, err)
	year, month, day := gregorian.DateTuple()
	require.Equal(t, []int{2014, 12, 28}, []int{year, month, day})
	require.Equal(t, gregorian, GregorianFromTime(time.Date(2014, time.December, 28, 12, 0, 0, 0, time.UTC)))
}

func mustHijri(t *testing.T, year int, month int, day int) Hijri {
	t.Helper()
	hijri, err := NewHijri(year, month, day)
	require.NoError(t, err)
	return hijri
}

func mustGregorian(t *testing.T, year int, month time.Month, day int) Gregorian {
	t.Helper()
	gregorian, err := NewGregorian(year, month, day)
	require.NoError(t, err)
	return gregorian
}

func stdlibWeekday(gregorian Gregorian) int {
	return (int(gregorian.Date().In(time.UTC).Weekday()) + 6) % 7
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

type testLocale struct{}

func (testLocale) HijriMonthName(month int) string {
	return "hijri-" + strconv.Itoa(month)
}

func (testLocale) GregorianMonthName(month int) string {
	return "gregorian-" + strconv.Itoa(month)
}

func (testLocale) DayName(isoWeekday int) string {
	return "day-" + strconv.Itoa(isoWeekday)
}

func (testLocale) HijriNotation() string {
	return "AH"
}

func (testLocale) GregorianNotation() string {
	return "CE"
}
