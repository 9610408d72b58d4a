package main

import (
	"time"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	"git.cmcode.dev/cmcode/finance-calendar-tui/lib"
	"git.cmcode.dev/cmcode/finance-calendar-tui/state"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type searchItem struct {
	result lib.SearchResult
	date   time.Time
}

func (f *FinanceCalendar) getSearchPage() *tview.Flex {
	f.SearchInput = tview.NewInputField().
		SetLabel(f.T["SearchInputLabel"]).
		SetFieldWidth(0)

	f.SearchList = tview.NewList().ShowSecondaryText(false)
	f.SearchList.SetBorder(true).SetTitle(f.T["SearchTitle"])

	f.SearchInput.SetChangedFunc(f.updateSearch)
	f.SearchInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter || key == tcell.KeyTab || key == tcell.KeyDown {
			f.App.SetFocus(f.SearchList)
		}
	})

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(f.SearchInput, 1, 0, true).
		AddItem(f.SearchList, 0, 1, false)
}

// updateSearch refills the result list for query.
func (f *FinanceCalendar) updateSearch(query string) {
	f.SearchList.Clear()
	f.SearchResults = []searchItem{}

	for _, r := range lib.SearchEntries(query, f.State.Entries) {
		d, err := lib.ParseDate(r.Entry.Date)
		if err != nil {
			f.Log.WithError(err).WithField("date", r.Entry.Date).Debug("skipping search result with invalid date")
			continue
		}

		f.SearchResults = append(f.SearchResults, searchItem{result: r, date: d})
	}

	if len(f.SearchResults) == 0 && query != "" {
		f.SearchList.AddItem(f.Colors[c.ColorStatusPassive]+f.T["SearchNoResults"], "", 0, nil)
		return
	}

	for _, item := range f.SearchResults {
		d := item.date
		f.SearchList.AddItem(tview.Escape(item.result.String()), "", 0, func() {
			f.openSearchResult(d)
		})
	}
}

// openSearchResult jumps to the month of d and shows its details.
func (f *FinanceCalendar) openSearchResult(d time.Time) {
	f.showCalendar()
	f.dispatch(state.GoTo{Year: d.Year(), Month: int(d.Month()) - 1})
	f.selectDate(d)
	f.dispatch(state.SelectDay{Date: d})
}

func (f *FinanceCalendar) showSearch() {
	f.PrevPage, _ = f.Pages.GetFrontPage()
	f.Pages.SwitchToPage(c.PageSearch)
	f.updateSearch(f.SearchInput.GetText())
	f.App.SetFocus(f.SearchInput)
}
