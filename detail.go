package main

import (
	"fmt"
	"strings"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	"git.cmcode.dev/cmcode/finance-calendar-tui/lib"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"
	"git.cmcode.dev/cmcode/finance-calendar-tui/state"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// getDetailPage builds the overlay that lists the entries of the selected
// day, with buttons to add another entry or close it.
func (f *FinanceCalendar) getDetailPage() tview.Primitive {
	f.DetailText = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)

	f.DetailAddButton = tview.NewButton(f.T["DetailAddButton"]).SetSelectedFunc(func() {
		if f.State.SelectedDate == nil {
			return
		}

		f.dispatch(state.OpenForm{Date: *f.State.SelectedDate})
	})

	f.DetailCloseButton = tview.NewButton(f.T["DetailCloseButton"]).SetSelectedFunc(func() {
		f.dispatch(state.CloseDetail{})
	})

	// tab moves between the two buttons
	f.DetailAddButton.SetExitFunc(func(key tcell.Key) {
		if key == tcell.KeyTab || key == tcell.KeyBacktab {
			f.App.SetFocus(f.DetailCloseButton)
		}
	})
	f.DetailCloseButton.SetExitFunc(func(key tcell.Key) {
		if key == tcell.KeyTab || key == tcell.KeyBacktab {
			f.App.SetFocus(f.DetailAddButton)
		}
	})

	buttons := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 0, 1, false).
		AddItem(f.DetailAddButton, 10, 0, false).
		AddItem(nil, 2, 0, false).
		AddItem(f.DetailCloseButton, 10, 0, true)

	frame := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(f.DetailText, 0, 1, false).
		AddItem(buttons, 1, 0, true)

	frame.SetBorder(true)

	return center(frame, 60, 18)
}

// getDetailText renders the salaries and then the spendings recorded on
// date, one "card - description" line per entry.
func getDetailText(date string, col m.Collections, t, colors map[string]string) string {
	var b strings.Builder

	sections := []struct {
		heading string
		empty   string
		color   string
		entries []m.Entry
	}{
		{t["DetailSalaries"], t["DetailNoSalaries"], colors[c.ColorDetailSalary], lib.EntriesOn(date, col.Salaries)},
		{t["DetailSpendings"], t["DetailNoSpendings"], colors[c.ColorDetailSpending], lib.EntriesOn(date, col.Spendings)},
	}

	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(fmt.Sprintf("%v%v%v\n", s.color, s.heading, c.Reset))

		if len(s.entries) == 0 {
			b.WriteString(fmt.Sprintf("%v%v%v\n", colors[c.ColorDetailEmpty], s.empty, c.Reset))
			continue
		}

		for _, e := range s.entries {
			b.WriteString(fmt.Sprintf("%v%v\n", s.color, tview.Escape(lib.GetEntryText(e))))
		}
	}

	return b.String()
}

func (f *FinanceCalendar) renderDetail() {
	if f.State.SelectedDate == nil {
		return
	}

	date := lib.FormatDate(*f.State.SelectedDate)

	f.DetailText.SetText(fmt.Sprintf("[%v::b]%v%v\n\n%v",
		f.Colors[c.ColorTitle],
		fmt.Sprintf(f.T["DetailTitle"], date),
		c.Reset,
		getDetailText(date, f.State.Entries, f.T, f.Colors),
	))
}
