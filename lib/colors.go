package lib

import (
	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"
)

type DayStatus int

const (
	DayNone DayStatus = iota
	DaySalary
	DaySpending
	DayBoth
)

func hasDate(date string, entries []m.Entry) bool {
	for i := range entries {
		if entries[i].Date == date {
			return true
		}
	}

	return false
}

// GetDayStatus determines which of the four day states applies to date,
// based only on whether either collection holds an entry for that exact date.
func GetDayStatus(date string, col m.Collections) DayStatus {
	salary := hasDate(date, col.Salaries)
	spending := hasDate(date, col.Spendings)

	switch {
	case salary && spending:
		return DayBoth
	case salary:
		return DaySalary
	case spending:
		return DaySpending
	default:
		return DayNone
	}
}

// ColorKey returns the theme key that holds the color for the status.
func (s DayStatus) ColorKey() string {
	switch s {
	case DayBoth:
		return c.ColorDayBoth
	case DaySalary:
		return c.ColorDaySalary
	case DaySpending:
		return c.ColorDaySpending
	case DayNone:
		fallthrough
	default:
		return c.ColorDayNone
	}
}

// GetDayColor looks up the theme color for a date.
func GetDayColor(date string, col m.Collections, colors map[string]string) string {
	return colors[GetDayStatus(date, col).ColorKey()]
}
