// Copyright 2026 Peter Edge
//
// All rights reserved.

package calendarmonth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	t.Parallel()
	year, month, err := parseYearMonth("1410-08")
	require.NoError(t, err)
	require.Equal(t, 1410, year)
	require.Equal(t, 8, month)
	for _, input := range []string{"1410", "1410-", "-08", "1410-aug", "x-08"} {
		_, _, err := parseYearMonth(input)
		require.Error(t, err, input)
	}
}
