package lib

import (
	"testing"
	"time"

	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"

	"github.com/stretchr/testify/require"
)

func TestMonthDays_MondayAligned(t *testing.T) {
	for year := 1999; year <= 2031; year++ {
		for month := 0; month < 12; month++ {
			days := MonthDays(year, month)

			first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
			length := first.AddDate(0, 1, -1).Day()
			blanks := WeekdayIndex(first)

			require.GreaterOrEqual(t, blanks, 0)
			require.LessOrEqual(t, blanks, 6)
			require.Equal(t, blanks+length, len(days), "%v-%v", year, month)

			for i := 0; i < blanks; i++ {
				require.True(t, days[i].Blank)
			}

			require.False(t, days[blanks].Blank)
			require.Equal(t, 1, days[blanks].Date.Day())
			// the column of the first real day is its Monday-based weekday
			require.Equal(t, WeekdayIndex(days[blanks].Date), blanks%7)
			require.Equal(t, length, days[len(days)-1].Date.Day())
		}
	}
}

func TestMonthDays_KnownMonths(t *testing.T) {
	// March 2024 starts on a Friday
	days := MonthDays(2024, 2)
	require.Equal(t, 4+31, len(days))
	require.Equal(t, "", days[3].String())
	require.Equal(t, "1", days[4].String())
	require.Equal(t, time.Friday, days[4].Date.Weekday())

	// September 2024 starts on a Sunday, the last column
	days = MonthDays(2024, 8)
	require.Equal(t, 6+30, len(days))
	require.Equal(t, time.Sunday, days[6].Date.Weekday())

	// April 2024 starts on a Monday, so there is no padding at all
	days = MonthDays(2024, 3)
	require.Equal(t, 30, len(days))
	require.False(t, days[0].Blank)

	// February in a leap year
	days = MonthDays(2024, 1)
	require.Equal(t, 29, days[len(days)-1].Date.Day())
}

func TestMonthDays_OutOfRangeMonthNormalizes(t *testing.T) {
	days := MonthDays(2024, 12)
	jan := MonthDays(2025, 0)
	require.Equal(t, jan, days)
}

func TestPrevNextMonth(t *testing.T) {
	y, mo := NextMonth(2024, 11)
	require.Equal(t, 2025, y)
	require.Equal(t, 0, mo)

	y, mo = PrevMonth(2024, 0)
	require.Equal(t, 2023, y)
	require.Equal(t, 11, mo)

	y, mo = NextMonth(2024, 4)
	require.Equal(t, 2024, y)
	require.Equal(t, 5, mo)

	y, mo = PrevMonth(2024, 4)
	require.Equal(t, 2024, y)
	require.Equal(t, 3, mo)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), d)
	require.Equal(t, "2024-03-15", FormatDate(d))

	_, err = ParseDate("15/03/2024")
	require.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	y, mo, err := ParseMonth("2024-12")
	require.NoError(t, err)
	require.Equal(t, 2024, y)
	require.Equal(t, 11, mo)

	_, _, err = ParseMonth("2024-13")
	require.Error(t, err)
}

func TestEntriesOnAndInMonth(t *testing.T) {
	entries := []m.Entry{
		{Date: "2024-03-15", Card: "Visa", Description: "Paycheck"},
		{Date: "2024-03-16", Card: "Amex", Description: "Groceries"},
		{Date: "2024-03-15", Card: "Visa", Description: "Paycheck"},
		{Date: "2024-04-15", Card: "Visa", Description: "Paycheck"},
	}

	on := EntriesOn("2024-03-15", entries)
	require.Equal(t, 2, len(on))
	require.Equal(t, "Visa - Paycheck", GetEntryText(on[0]))

	require.Equal(t, 3, len(EntriesInMonth(2024, 2, entries)))
	require.Equal(t, 0, len(EntriesOn("2024-01-01", entries)))
}
