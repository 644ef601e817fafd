package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spring-petclinic/petclinic-graphql/types"
)

func TestNewCalendarDate(t *testing.T) {
	d, err := types.NewCalendarDate(2023, time.July, 4)
	require.NoError(t, err)
	require.Equal(t, 2023, d.Year())
	require.Equal(t, time.July, d.Month())
	require.Equal(t, 4, d.Day())
	require.False(t, d.IsZero())

	for _, tc := range []struct {
		year  int
		month time.Month
		day   int
	}{
		{2023, time.April, 31},
		{2023, time.February, 29},
		{2023, 13, 1},
		{2023, 0, 1},
		{2023, time.January, 0},
		{10000, time.January, 1},
		{0, time.January, 1},
		{-1, time.January, 1},
	} {
		_, err := types.NewCalendarDate(tc.year, tc.month, tc.day)
		require.Error(t, err, "%d/%d/%d", tc.year, tc.month, tc.day)
	}

	_, err = types.NewCalendarDate(2024, time.February, 29)
	require.NoError(t, err)

	_, err = types.NewCalendarDate(1, time.January, 1)
	require.NoError(t, err)
	_, err = types.NewCalendarDate(9999, time.December, 31)
	require.NoError(t, err)
}

func TestCalendarDateString(t *testing.T) {
	require.Equal(t, "2023/07/04", types.MustCalendarDate(2023, time.July, 4).String())
	require.Equal(t, "0987/01/09", types.MustCalendarDate(987, time.January, 9).String())
	require.Equal(t, "1999/12/31", types.MustCalendarDate(1999, time.December, 31).String())
}

func TestParseCalendarDate(t *testing.T) {
	d, err := types.ParseCalendarDate("2023/07/04")
	require.NoError(t, err)
	require.Equal(t, types.MustCalendarDate(2023, time.July, 4), d)

	for _, s := range []string{
		"2023-07-04",
		"23/07/04",
		"2023/13/01",
		"2023/02/30",
		"2023/7/4",
		"+023/07/04",
		" 2023/07/04",
		"2023/07/04 ",
		"2023/07/04T00:00",
		"0000/01/01",
		"0000/00/00",
		"",
	} {
		_, err := types.ParseCalendarDate(s)
		require.Error(t, err, s)
	}
}

func TestParseCalendarDateYearBounds(t *testing.T) {
	d, err := types.ParseCalendarDate("0001/01/01")
	require.NoError(t, err)
	require.Equal(t, types.MustCalendarDate(1, time.January, 1), d)

	d, err = types.ParseCalendarDate("9999/12/31")
	require.NoError(t, err)
	require.Equal(t, "9999/12/31", d.String())

	_, err = types.ParseCalendarDate("0000/12/31")
	require.Error(t, err)
}

func TestCalendarDateBefore(t *testing.T) {
	a := types.MustCalendarDate(2023, time.July, 4)
	b := types.MustCalendarDate(2023, time.July, 5)
	require.True(t, a.Before(b))
	require.False(t, b.Before(a))
	require.False(t, a.Before(a))
	require.True(t, types.MustCalendarDate(2022, time.December, 31).Before(a))
}

func TestCalendarDateMarshalJSON(t *testing.T) {
	b, err := types.MustCalendarDate(2010, time.September, 7).MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"2010/09/07"`, string(b))
}
