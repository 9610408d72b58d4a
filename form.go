package main

import (
	"fmt"

	"git.cmcode.dev/cmcode/finance-calendar-tui/lib"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"
	"git.cmcode.dev/cmcode/finance-calendar-tui/state"

	"github.com/rivo/tview"
)

var entryTypes = []m.EntryType{m.Salary, m.Spending}

// center wraps p in a flex that keeps it at the provided size in the middle
// of the screen, so that it can be shown on top of another page.
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

func (f *FinanceCalendar) getFormPage() tview.Primitive {
	f.Form = tview.NewForm()
	f.Form.SetBorder(true)

	return center(f.Form, 60, 15)
}

// buildForm fills the add-entry form from the current draft. Field changes
// are dispatched as they happen, without rebuilding the form.
func (f *FinanceCalendar) buildForm() {
	f.Form.Clear(true)

	if f.State.InputDate != nil {
		f.Form.SetTitle(fmt.Sprintf(f.T["FormTitle"], lib.FormatDate(*f.State.InputDate)))
	}

	initial := 0
	if f.State.EntryType == m.Spending {
		initial = 1
	}

	// the selected func is set after the current option, otherwise setting
	// the initial option would dispatch while the form is being built
	typeDropDown := tview.NewDropDown().
		SetLabel(f.T["FormEntryTypeLabel"]).
		SetOptions([]string{f.T["FormEntryTypeSalary"], f.T["FormEntryTypeSpending"]}, nil).
		SetCurrentOption(initial)

	typeDropDown.SetSelectedFunc(func(_ string, index int) {
		if index < 0 || index >= len(entryTypes) {
			return
		}

		f.dispatch(state.SetEntryType{Type: entryTypes[index]})
	})

	f.Form.AddFormItem(typeDropDown).
		AddInputField(f.T["FormCardLabel"], f.State.InputData.Card, 40, nil, func(text string) {
			f.dispatch(state.SetCard{Text: text})
		}).
		AddInputField(f.T["FormDescriptionLabel"], f.State.InputData.Description, 40, nil, func(text string) {
			f.dispatch(state.SetDescription{Text: text})
		}).
		AddCheckbox(f.T["FormRecurringLabel"], f.State.InputData.Recurring, func(checked bool) {
			f.dispatch(state.SetRecurring{Recurring: checked})
		}).
		AddButton(f.T["FormSaveButton"], f.submit).
		AddButton(f.T["FormCancelButton"], func() {
			f.dispatch(state.CloseForm{})
		})

	f.Form.SetFocus(0)
}

func (f *FinanceCalendar) submit() {
	f.dispatch(state.Submit{})
}
