package main

import (
	"fmt"
	"strings"
	"time"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	"git.cmcode.dev/cmcode/finance-calendar-tui/lib"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"
	"git.cmcode.dev/cmcode/finance-calendar-tui/printer"
	"git.cmcode.dev/cmcode/finance-calendar-tui/state"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// getCalendarPage builds the month view: a title bar with previous/next
// buttons, the day grid, and the status line.
func (f *FinanceCalendar) getCalendarPage() *tview.Flex {
	f.CalendarTitle = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	f.PrevButton = tview.NewButton(f.T["CalendarPrevButton"]).SetSelectedFunc(func() {
		f.dispatch(state.PrevMonth{})
	})

	f.NextButton = tview.NewButton(f.T["CalendarNextButton"]).SetSelectedFunc(func() {
		f.dispatch(state.NextMonth{})
	})

	f.CalendarTable = tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, true).
		SetBorders(true)

	f.CalendarTable.SetBorder(true).SetTitle(f.T["AppTitle"])

	f.CalendarTable.SetSelectedFunc(func(row, column int) {
		d, ok := f.dateAt(row, column)
		if !ok {
			return
		}

		f.dispatch(state.SelectDay{Date: d})
	})

	f.StatusText = tview.NewTextView().SetDynamicColors(true)

	titleBar := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(f.PrevButton, 10, 0, false).
		AddItem(f.CalendarTitle, 0, 1, false).
		AddItem(f.NextButton, 10, 0, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(titleBar, 1, 0, false).
		AddItem(f.CalendarTable, 0, 1, true).
		AddItem(f.StatusText, 1, 0, false)
}

func (f *FinanceCalendar) getWeekdayHeaders() []m.TableCell {
	headers := []m.TableCell{}

	for _, key := range c.WeekdayHeaders {
		headers = append(headers, m.TableCell{
			Text:   f.T[key],
			Color:  f.Colors[c.ColorHeader],
			Expand: 1,
			Align:  tview.AlignCenter,
		})
	}

	return headers
}

// renderCalendar redraws the title and the grid of the current month. The
// table selection is kept at the same position when possible.
func (f *FinanceCalendar) renderCalendar() {
	year, month := f.State.CurrentYear, f.State.CurrentMonth

	f.CalendarTitle.SetText(fmt.Sprintf("[%v::b]%v%v",
		f.Colors[c.ColorTitle],
		printer.MonthTitle(year, month, f.T),
		c.Reset,
	))

	selRow, selCol := f.CalendarTable.GetSelection()

	f.CalendarTable.Clear()

	for i, h := range f.getWeekdayHeaders() {
		f.CalendarTable.SetCell(0, i, tview.NewTableCell(h.Text).
			SetTextColor(tcell.GetColor(h.Color)).
			SetAlign(h.Align).
			SetExpansion(h.Expand).
			SetSelectable(false))
	}

	textColor := tcell.GetColor(f.Colors[c.ColorDayText])

	for i, d := range lib.MonthDays(year, month) {
		row, col := 1+i/c.DaysInWeek, i%c.DaysInWeek

		if d.Blank {
			f.CalendarTable.SetCell(row, col, tview.NewTableCell("").
				SetBackgroundColor(tcell.GetColor(f.Colors[c.ColorDayBlank])).
				SetExpansion(1).
				SetSelectable(false))

			continue
		}

		date := d.Date
		bg := lib.GetDayColor(lib.FormatDate(date), f.State.Entries, f.Colors)

		cell := tview.NewTableCell(d.String()).
			SetTextColor(textColor).
			SetBackgroundColor(tcell.GetColor(bg)).
			SetAlign(tview.AlignCenter).
			SetExpansion(1).
			SetReference(date)

		cell.SetClickedFunc(func() bool {
			f.CalendarTable.Select(row, col)
			f.dispatch(state.SelectDay{Date: date})

			return true
		})

		f.CalendarTable.SetCell(row, col, cell)
	}

	if _, ok := f.dateAt(selRow, selCol); ok {
		f.CalendarTable.Select(selRow, selCol)
	} else {
		f.selectFirstDay()
	}
}

// dateAt returns the date of the day cell at row/column, if there is one.
func (f *FinanceCalendar) dateAt(row, column int) (time.Time, bool) {
	cell := f.CalendarTable.GetCell(row, column)
	if cell == nil {
		return time.Time{}, false
	}

	d, ok := cell.GetReference().(time.Time)

	return d, ok
}

// selectedDate returns the date of the currently highlighted day cell.
func (f *FinanceCalendar) selectedDate() (time.Time, bool) {
	return f.dateAt(f.CalendarTable.GetSelection())
}

func (f *FinanceCalendar) selectFirstDay() {
	for row := 1; row < f.CalendarTable.GetRowCount(); row++ {
		for col := 0; col < c.DaysInWeek; col++ {
			if _, ok := f.dateAt(row, col); ok {
				f.CalendarTable.Select(row, col)
				return
			}
		}
	}
}

// selectDate highlights the cell of d if it is part of the shown month.
func (f *FinanceCalendar) selectDate(d time.Time) {
	want := lib.FormatDate(d)

	for row := 1; row < f.CalendarTable.GetRowCount(); row++ {
		for col := 0; col < c.DaysInWeek; col++ {
			cellDate, ok := f.dateAt(row, col)
			if ok && lib.FormatDate(cellDate) == want {
				f.CalendarTable.Select(row, col)
				return
			}
		}
	}
}

// setBottomPageNavText renders the bound keys of the main actions, always
// visible at the bottom of the screen.
func (f *FinanceCalendar) setBottomPageNavText() {
	items := []struct {
		action string
		label  string
	}{
		{c.ActionCalendar, f.T["BottomBarCalendar"]},
		{c.ActionAdd, f.T["BottomBarAdd"]},
		{c.ActionSearch, f.T["BottomBarSearch"]},
		{c.ActionGlobalHelp, f.T["BottomBarHelp"]},
		{c.ActionQuit, f.T["BottomBarQuit"]},
	}

	parts := []string{}

	for _, item := range items {
		keys := f.ActionBindings[item.action]
		if len(keys) == 0 {
			continue
		}

		parts = append(parts, fmt.Sprintf("[gold]%v[white] %v", displayKey(keys[0]), item.label))
	}

	f.BottomPageNavText.SetText(strings.Join(parts, "  "))
}

// displayKey turns a tcell key name such as "Rune[a]" into "a".
func displayKey(name string) string {
	if strings.HasPrefix(name, "Rune[") && strings.HasSuffix(name, "]") {
		return tview.Escape(strings.TrimSuffix(strings.TrimPrefix(name, "Rune["), "]"))
	}

	return name
}
