package lib

import (
	"fmt"
	"strings"
	"time"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"
)

// DayCell is one position in the month grid. Blank cells only pad the first
// week so that day 1 lines up with its weekday column.
type DayCell struct {
	Blank bool
	Date  time.Time
}

// String returns the day of the month, or an empty string for blank cells.
func (d DayCell) String() string {
	if d.Blank {
		return ""
	}

	return fmt.Sprintf("%d", d.Date.Day())
}

// WeekdayIndex converts Go's Sunday-first weekday into a Monday-first index,
// so Monday is 0 and Sunday is 6.
func WeekdayIndex(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}

	return wd - 1
}

// MonthDays returns the cells of the month grid for a 0-indexed month
// (0=January). The sequence is left-padded with blanks so that the first day
// falls on its Monday-based weekday column, followed by one cell per day of
// the month.
//
// Nothing is validated: month values outside 0..11 are normalized by
// time.Date, so month 12 of 2024 yields January 2025.
func MonthDays(year, month int) []DayCell {
	date := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	days := []DayCell{}

	for i := 0; i < WeekdayIndex(date); i++ {
		days = append(days, DayCell{Blank: true})
	}

	target := date.Month()
	for date.Month() == target {
		days = append(days, DayCell{Date: date})
		date = date.AddDate(0, 0, 1)
	}

	return days
}

// PrevMonth returns the year and 0-indexed month before the provided one.
func PrevMonth(year, month int) (int, int) {
	if month == 0 {
		return year - 1, 11
	}

	return year, month - 1
}

// NextMonth returns the year and 0-indexed month after the provided one.
func NextMonth(year, month int) (int, int) {
	if month == 11 {
		return year + 1, 0
	}

	return year, month + 1
}

// FormatDate takes an input time and formats it using the standard
// representation of a date in this application: "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(c.DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(input string) (time.Time, error) {
	t, err := time.ParseInLocation(c.DateLayout, strings.TrimSpace(input), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", input, err)
	}

	return t, nil
}

// ParseMonth parses a YYYY-MM string into a year and 0-indexed month.
func ParseMonth(input string) (int, int, error) {
	t, err := time.ParseInLocation(c.MonthLayout, strings.TrimSpace(input), time.UTC)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", input, err)
	}

	return t.Year(), int(t.Month()) - 1, nil
}

// Midnight drops the clock portion of t, keeping its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	y, mo, d := t.Date()

	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// EntriesOn returns every entry whose date exactly matches the provided date
// string, in insertion order.
func EntriesOn(date string, entries []m.Entry) []m.Entry {
	result := []m.Entry{}

	for i := range entries {
		if entries[i].Date == date {
			result = append(result, entries[i])
		}
	}

	return result
}

// EntriesInMonth returns every entry dated within the 0-indexed month.
func EntriesInMonth(year, month int, entries []m.Entry) []m.Entry {
	prefix := fmt.Sprintf("%04d-%02d-", year, month+1)
	result := []m.Entry{}

	for i := range entries {
		if strings.HasPrefix(entries[i].Date, prefix) {
			result = append(result, entries[i])
		}
	}

	return result
}

// GetEntryText renders an entry the way the detail view lists it.
func GetEntryText(e m.Entry) string {
	return fmt.Sprintf("%v - %v", e.Card, e.Description)
}
