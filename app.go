package main

import (
	"fmt"
	"time"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"
	"git.cmcode.dev/cmcode/finance-calendar-tui/state"
	"git.cmcode.dev/cmcode/finance-calendar-tui/store"

	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

type FinanceCalendar struct {
	// The tview/tcell terminal application.
	App *tview.Application

	// The currently loaded configuration.
	Config m.Config

	// Translations that are loaded at runtime.
	T map[string]string

	// All default & custom colors are stored in here at runtime. Themes can be
	// loaded via the theme flag or config value.
	Colors map[string]string

	// All activated key bindings. Composed of the user's key bindings merged on
	// top of the default key bindings, as one would expect. It is
	// possible for unsupported actions to be present in this map.
	//
	// usage example: KeyBindings["Ctrl+P"] = ["prevMonth"].
	KeyBindings map[string][]string

	// All activated action bindings, the inverse of KeyBindings.
	//
	// usage example: ActionBindings["prevMonth"] = ["Ctrl+P", "Rune[[]"].
	ActionBindings map[string][]string

	// Where the salary and spending collections are persisted.
	Store store.KV

	Log logrus.FieldLogger

	// State is only ever replaced through dispatch.
	State state.AppState

	// Now is used for the "today" action, and can be replaced in tests.
	Now func() time.Time

	// The primary primitive that the app uses as its root in the terminal.
	Layout *tview.Flex

	// The primary page-switching primitive.
	Pages *tview.Pages

	// The previously shown page (via the primary pages primitive).
	PrevPage string

	CalendarTitle *tview.TextView
	CalendarTable *tview.Table
	PrevButton    *tview.Button
	NextButton    *tview.Button

	// Shown below the calendar. Contains status and error messages.
	StatusText *tview.TextView

	// Always shown on every page - renders the keyboard shortcuts for
	// the main actions.
	BottomPageNavText *tview.TextView

	// The add-entry form. It is rebuilt every time it is opened, and left
	// alone while the user is typing into it.
	Form        *tview.Form
	formVisible bool

	DetailText        *tview.TextView
	DetailAddButton   *tview.Button
	DetailCloseButton *tview.Button
	detailVisible     bool

	SearchInput   *tview.InputField
	SearchList    *tview.List
	SearchResults []searchItem

	// Shows the help text on the help page.
	HelpTextView *tview.TextView

	// There is a hidden page that only shows a modal, typically shown
	// only for exiting or keyboard echo mode.
	PromptBox *tview.Modal

	// If this is set to true, the application will only show the user the
	// keyboard keys that they press. They will of course be prompted to
	// proceed before being fully immersed into this restricted mode.
	FlagKeyboardEchoMode bool
}

// NewFinanceCalendar creates the calendar with its initial state loaded from
// kv. Call bootstrap before running it.
func NewFinanceCalendar(conf m.Config, t, colors map[string]string, kv store.KV, log logrus.FieldLogger, now time.Time) *FinanceCalendar {
	f := &FinanceCalendar{
		Config: conf,
		T:      t,
		Colors: colors,
		Store:  kv,
		Log:    log,
		Now:    time.Now,
	}

	f.State = state.New(now, store.Load(kv, log))
	if conf.Recurrences > 0 {
		f.State.Recurrences = min(conf.Recurrences, c.MaxRecurrences)
	}

	return f
}

// dispatch runs a through the reducer, persists the entries when they
// changed, and re-renders. Every UI event goes through here.
func (f *FinanceCalendar) dispatch(a state.Action) {
	var effect state.Effect

	f.State, effect = state.Reduce(f.State, a)

	if effect.Persist {
		f.persist(effect.Err)
	}

	f.render()
}

// persist saves both collections. Failures are logged and shown in the
// status line; the in-memory entries are kept either way.
func (f *FinanceCalendar) persist(actionErr error) {
	err := store.Save(f.Store, f.State.Entries)
	if err != nil {
		f.Log.WithError(err).Error("failed to save entries")
		f.setStatus(c.ColorStatusError, f.T["StatusSaveFailed"])

		return
	}

	if actionErr != nil {
		f.Log.WithError(actionErr).Warn("failed to create recurring entries")
		f.setStatus(c.ColorStatusError, f.T["StatusRecurrenceFailed"])

		return
	}

	f.Log.WithField("entries", f.State.Entries.Len()).Debug("saved entries")
	f.setStatus(c.ColorStatusSuccess, fmt.Sprintf(f.T["StatusSavedEntries"], f.State.Entries.Len()))
}

// setStatus replaces the status line text, prefixed by the theme color
// found under colorKey.
func (f *FinanceCalendar) setStatus(colorKey, text string) {
	if f.StatusText == nil {
		return
	}

	f.StatusText.SetText(fmt.Sprintf("%v%v%v", f.Colors[colorKey], text, c.Reset))
}

// render brings every page in line with the current state. The form is only
// rebuilt when it becomes visible, so that typing into it is not disturbed.
func (f *FinanceCalendar) render() {
	if f.Pages == nil {
		return
	}

	f.renderCalendar()
	f.renderDetail()

	showForm := f.State.InputDate != nil
	showDetail := f.State.SelectedDate != nil

	switch {
	case showDetail && !f.detailVisible:
		f.Pages.ShowPage(c.PageDetail)
		f.Pages.SendToFront(c.PageDetail)
		f.App.SetFocus(f.DetailCloseButton)
	case !showDetail && f.detailVisible:
		f.Pages.HidePage(c.PageDetail)
		f.App.SetFocus(f.CalendarTable)
	}

	f.detailVisible = showDetail

	switch {
	case showForm && !f.formVisible:
		f.buildForm()
		f.Pages.ShowPage(c.PageForm)
		f.Pages.SendToFront(c.PageForm)
		f.App.SetFocus(f.Form)
	case !showForm && f.formVisible:
		f.Pages.HidePage(c.PageForm)

		if showDetail {
			f.App.SetFocus(f.DetailCloseButton)
		} else {
			f.App.SetFocus(f.CalendarTable)
		}
	}

	f.formVisible = showForm
}

// bootstrap is the initialization function for the app. This function should
// only ever be run once.
func (f *FinanceCalendar) bootstrap() {
	f.KeyBindings = GetCombinedKeybindings(f.Config.Keybindings, c.DefaultMappings)
	f.ActionBindings = GetAllBoundActions(f.KeyBindings)

	f.App = tview.NewApplication()
	f.Pages = tview.NewPages()
	f.PromptBox = tview.NewModal()

	f.Pages.AddPage(c.PageCalendar, f.getCalendarPage(), true, true).
		AddPage(c.PageSearch, f.getSearchPage(), true, false).
		AddPage(c.PageHelp, f.getHelpPage(), true, false).
		AddPage(c.PageDetail, f.getDetailPage(), true, false).
		AddPage(c.PageForm, f.getFormPage(), true, false).
		AddPage(c.PagePrompt, f.PromptBox, true, false)

	f.BottomPageNavText = tview.NewTextView()
	f.BottomPageNavText.SetDynamicColors(true)
	f.setBottomPageNavText()

	f.Layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(f.Pages, 0, 1, true).
		AddItem(f.BottomPageNavText, 1, 0, false)

	f.App.SetRoot(f.Layout, true)
	f.App.SetFocus(f.CalendarTable)

	f.render()
	f.selectDate(f.Now())
	f.setStatus(c.ColorStatusPassive, fmt.Sprintf(f.T["StatusLoadedEntries"], f.State.Entries.Len()))

	f.promptKBMode()

	f.App.SetInputCapture(f.capture)
}
