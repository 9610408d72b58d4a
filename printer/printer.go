// Package printer renders a month of the calendar to a plain writer, for use
// outside of the terminal UI.
package printer

import (
	"fmt"
	"io"
	"time"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	"git.cmcode.dev/cmcode/finance-calendar-tui/lib"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Options controls the month printout.
type Options struct {
	// Colors disables ANSI colors when false, e.g. when piping to a file.
	Colors bool
}

var statusColors = map[lib.DayStatus]text.Colors{
	lib.DayBoth:     {text.FgMagenta, text.Bold},
	lib.DaySalary:   {text.FgGreen},
	lib.DaySpending: {text.FgBlue},
	lib.DayNone:     {text.FgRed},
}

// marker is appended to the day number so that the grid stays readable
// without colors.
var statusMarkers = map[lib.DayStatus]string{
	lib.DayBoth:     " +-",
	lib.DaySalary:   " +",
	lib.DaySpending: " -",
	lib.DayNone:     "",
}

// MonthTitle returns e.g. "March 2024" using the translation table.
func MonthTitle(year, month int, t map[string]string) string {
	name := time.Month(month + 1).String()
	if v, ok := t[name]; ok && v != "" {
		name = v
	}

	return fmt.Sprintf("%v %v", name, year)
}

func dayText(d lib.DayCell, col m.Collections, opts Options) string {
	if d.Blank {
		return ""
	}

	status := lib.GetDayStatus(lib.FormatDate(d.Date), col)
	s := fmt.Sprintf("%v%v", d.String(), statusMarkers[status])

	if opts.Colors {
		return statusColors[status].Sprint(s)
	}

	return s
}

// PrintMonth writes the month grid for a 0-indexed month, followed by a
// table of every entry dated within that month.
func PrintMonth(w io.Writer, year, month int, col m.Collections, t map[string]string, opts Options) {
	days := lib.MonthDays(year, month)

	grid := table.NewWriter()
	grid.SetOutputMirror(w)
	grid.SetTitle(MonthTitle(year, month, t))

	header := table.Row{}
	for _, key := range c.WeekdayHeaders {
		header = append(header, t[key])
	}

	grid.AppendHeader(header)

	row := table.Row{}

	for _, d := range days {
		row = append(row, dayText(d, col, opts))
		if len(row) == c.DaysInWeek {
			grid.AppendRow(row)
			row = table.Row{}
		}
	}

	if len(row) > 0 {
		grid.AppendRow(row)
	}

	grid.SetStyle(table.StyleRounded)
	grid.Style().Format.Header = text.FormatDefault

	columns := []table.ColumnConfig{}
	for i := 1; i <= c.DaysInWeek; i++ {
		columns = append(columns, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}

	grid.SetColumnConfigs(columns)
	grid.Render()

	printEntries(w, year, month, col, t)
}

func printEntries(w io.Writer, year, month int, col m.Collections, t map[string]string) {
	entries := table.NewWriter()
	entries.SetOutputMirror(w)
	entries.SetTitle(t["PrintEntriesTitle"])
	entries.AppendHeader(table.Row{
		t["PrintColumnDate"],
		t["PrintColumnType"],
		t["PrintColumnCard"],
		t["PrintColumnDescription"],
	})

	count := 0

	for _, et := range []m.EntryType{m.Salary, m.Spending} {
		for _, e := range lib.EntriesInMonth(year, month, col.Get(et)) {
			entries.AppendRow(table.Row{e.Date, string(et), e.Card, e.Description})
			count++
		}
	}

	if count == 0 {
		entries.AppendRow(table.Row{t["PrintNoEntries"], "", "", ""})
	}

	entries.SortBy([]table.SortBy{{Name: t["PrintColumnDate"], Mode: table.Asc}})
	entries.SetStyle(table.StyleRounded)
	entries.Style().Format.Header = text.FormatDefault
	entries.Render()
}
