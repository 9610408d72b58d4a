package main

import (
	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"

	"github.com/gdamore/tcell/v2"
)

// This file mainly contains functions for the hidden prompt page in the
// application.

func (f *FinanceCalendar) promptExit() {
	// check if we are already prompting
	currentPage, _ := f.Pages.GetFrontPage()
	if currentPage == c.PagePrompt {
		return
	}

	f.PrevPage = currentPage
	previousFocus := f.App.GetFocus()

	f.PromptBox.ClearButtons().AddButtons(
		[]string{
			f.T["PromptExitButtonExit"],
			f.T["PromptExitButtonCancel"],
		},
	).SetText(f.T["PromptExitText"]).SetDoneFunc(
		func(buttonIndex int, _ string) {
			switch buttonIndex {
			case 0:
				f.App.Stop()
			default:
				f.Pages.HidePage(c.PagePrompt)
				f.App.SetFocus(previousFocus)
			}
		},
	).SetBackgroundColor(tcell.ColorGoldenrod).
		SetTextColor(tcell.ColorBlack)

	f.Pages.ShowPage(c.PagePrompt)
	f.Pages.SendToFront(c.PagePrompt)
	f.PromptBox.SetFocus(1)
	f.App.SetFocus(f.PromptBox)
}

// promptKBMode shows a modal that informs the user that they are in keyboard
// echo mode. If KB echo mode is not enabled, this gracefully returns
// immediately and does nothing.
func (f *FinanceCalendar) promptKBMode() {
	if !f.FlagKeyboardEchoMode {
		return
	}

	// temporarily turn off KB echo mode so that the user's keys are captured
	// properly until they can give consent to entering the mode
	f.FlagKeyboardEchoMode = false

	f.PromptBox.ClearButtons().AddButtons(
		[]string{
			f.T["PromptKeyboardEchoModeButtonTurnOff"],
			f.T["PromptKeyboardEchoModeButtonExitNow"],
			f.T["PromptKeyboardEchoModeButtonContinue"],
		},
	).SetText(f.T["PromptKeyboardEchoModeText"]).SetDoneFunc(
		func(buttonIndex int, _ string) {
			switch buttonIndex {
			case 0:
				f.FlagKeyboardEchoMode = false
				f.Pages.HidePage(c.PagePrompt)
			case 2:
				f.FlagKeyboardEchoMode = true
				f.Pages.HidePage(c.PagePrompt)
			default:
				f.FlagKeyboardEchoMode = false
				f.App.Stop()
			}

			f.App.SetFocus(f.CalendarTable)
		},
	).SetBackgroundColor(tcell.ColorDimGray).
		SetTextColor(tcell.ColorWhite)

	f.Pages.ShowPage(c.PagePrompt)
	f.Pages.SendToFront(c.PagePrompt)
	f.PromptBox.SetFocus(2)
	f.App.SetFocus(f.PromptBox)
}
