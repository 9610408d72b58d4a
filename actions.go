package main

import (
	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	"git.cmcode.dev/cmcode/finance-calendar-tui/state"
	"git.cmcode.dev/cmcode/finance-calendar-tui/store"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (f *FinanceCalendar) frontPage() string {
	name, _ := f.Pages.GetFrontPage()

	return name
}

// showCalendar switches back to the month view and re-applies any overlay
// that the state still asks for.
func (f *FinanceCalendar) showCalendar() {
	f.Pages.SwitchToPage(c.PageCalendar)
	f.detailVisible = false
	f.formVisible = false
	f.App.SetFocus(f.CalendarTable)
	f.render()
}

func (f *FinanceCalendar) actionQuit() *tcell.EventKey {
	f.promptExit()
	return nil
}

func (f *FinanceCalendar) actionMonth(e *tcell.EventKey, a state.Action) *tcell.EventKey {
	if f.frontPage() != c.PageCalendar {
		return e
	}

	f.dispatch(a)

	return nil
}

func (f *FinanceCalendar) actionToday(e *tcell.EventKey) *tcell.EventKey {
	if f.frontPage() != c.PageCalendar {
		return e
	}

	now := f.Now()
	f.dispatch(state.GoTo{Year: now.Year(), Month: int(now.Month()) - 1})
	f.selectDate(now)

	return nil
}

// actionAdd opens the add-entry form for the highlighted day, or for the day
// shown in the detail view.
func (f *FinanceCalendar) actionAdd(e *tcell.EventKey) *tcell.EventKey {
	switch f.frontPage() {
	case c.PageCalendar:
		d, ok := f.selectedDate()
		if !ok {
			f.setStatus(c.ColorStatusPassive, f.T["StatusNothingToSelect"])
			return nil
		}

		f.dispatch(state.OpenForm{Date: d})

		return nil
	case c.PageDetail:
		if f.State.SelectedDate == nil {
			return e
		}

		f.dispatch(state.OpenForm{Date: *f.State.SelectedDate})

		return nil
	default:
		return e
	}
}

func (f *FinanceCalendar) actionView(e *tcell.EventKey) *tcell.EventKey {
	if f.frontPage() != c.PageCalendar {
		return e
	}

	d, ok := f.selectedDate()
	if !ok {
		f.setStatus(c.ColorStatusPassive, f.T["StatusNothingToSelect"])
		return nil
	}

	f.dispatch(state.SelectDay{Date: d})

	return nil
}

func (f *FinanceCalendar) actionSearch(e *tcell.EventKey) *tcell.EventKey {
	switch f.frontPage() {
	case c.PageForm:
		return e
	case c.PageSearch:
		f.App.SetFocus(f.SearchInput)
		return nil
	default:
		f.showSearch()
		return nil
	}
}

// actionSave submits the form when it is open. Otherwise it writes the
// entries again, which is useful after the store was changed externally.
func (f *FinanceCalendar) actionSave() *tcell.EventKey {
	if f.frontPage() == c.PageForm {
		f.submit()
		return nil
	}

	err := store.Save(f.Store, f.State.Entries)
	if err != nil {
		f.Log.WithError(err).Error("failed to save entries")
		f.setStatus(c.ColorStatusError, f.T["StatusSaveFailed"])

		return nil
	}

	f.setStatus(c.ColorStatusSuccess, f.T["StatusSaved"])

	return nil
}

// actionEsc closes the topmost overlay or page, and finally prompts to exit.
func (f *FinanceCalendar) actionEsc() *tcell.EventKey {
	switch f.frontPage() {
	case c.PageForm:
		f.dispatch(state.CloseForm{})
	case c.PageDetail:
		f.dispatch(state.CloseDetail{})
	case c.PageSearch, c.PageHelp:
		f.showCalendar()
	default:
		f.promptExit()
	}

	return nil
}

func (f *FinanceCalendar) actionGlobalHelp() *tcell.EventKey {
	f.showHelp()
	return nil
}

// actionHelp toggles the help page.
func (f *FinanceCalendar) actionHelp() *tcell.EventKey {
	if f.frontPage() == c.PageHelp {
		f.showCalendar()
		return nil
	}

	f.showHelp()

	return nil
}

func (f *FinanceCalendar) actionCalendar() *tcell.EventKey {
	f.showCalendar()
	return nil
}

func (f *FinanceCalendar) action(action string, e *tcell.EventKey) *tcell.EventKey {
	switch action {
	case c.ActionQuit:
		return f.actionQuit()
	case c.ActionPrevMonth:
		return f.actionMonth(e, state.PrevMonth{})
	case c.ActionNextMonth:
		return f.actionMonth(e, state.NextMonth{})
	case c.ActionToday:
		return f.actionToday(e)
	case c.ActionAdd:
		return f.actionAdd(e)
	case c.ActionView:
		return f.actionView(e)
	case c.ActionSearch:
		return f.actionSearch(e)
	case c.ActionSave:
		return f.actionSave()
	case c.ActionEsc:
		return f.actionEsc()
	case c.ActionGlobalHelp:
		return f.actionGlobalHelp()
	case c.ActionHelp:
		return f.actionHelp()
	case c.ActionCalendar:
		return f.actionCalendar()
	default:
		return e
	}
}

// capture is the primary input capture handler for the app, and should be used
// like: app.SetInputCapture(f.capture)
func (f *FinanceCalendar) capture(e *tcell.EventKey) *tcell.EventKey {
	n := e.Name()
	if f.FlagKeyboardEchoMode {
		f.StatusText.SetText(tview.Escape(n))

		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			f.App.Stop()
		}

		return nil
	}

	// the modal handles its own keys
	if f.frontPage() == c.PagePrompt {
		return e
	}

	// typing into a text field always wins over single-key bindings
	if _, ok := f.App.GetFocus().(*tview.InputField); ok && e.Key() == tcell.KeyRune {
		return e
	}

	actions, ok := f.KeyBindings[n]
	if !ok {
		return e
	}

	final := e

	for _, a := range actions {
		final = f.action(a, final)
	}

	return final
}
