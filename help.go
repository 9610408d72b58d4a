package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"

	"github.com/rivo/tview"
)

type helpAction struct {
	Name string
	Keys string
}

// getHelpText renders the help page from the ordered action list and the
// currently active key bindings.
func getHelpText(t, colors map[string]string, actionBindings map[string][]string) (string, error) {
	type tmplDataShape struct {
		Both     string
		Salary   string
		Spending string
		None     string
		Actions  []helpAction
	}

	swatch := func(colorKey, label string) string {
		return fmt.Sprintf("[%v:%v]  %v %v", colors[colorKey], colors[colorKey], c.Reset, t[label])
	}

	tmplData := tmplDataShape{
		Both:     swatch(c.ColorDayBoth, "HelpColorBoth"),
		Salary:   swatch(c.ColorDaySalary, "HelpColorSalary"),
		Spending: swatch(c.ColorDaySpending, "HelpColorSpending"),
		None:     swatch(c.ColorDayNone, "HelpColorNone"),
	}

	for _, a := range c.AllActions {
		keys := []string{}
		for _, k := range actionBindings[a] {
			keys = append(keys, displayKey(k))
		}

		if len(keys) == 0 {
			keys = append(keys, "-")
		}

		tmplData.Actions = append(tmplData.Actions, helpAction{Name: a, Keys: strings.Join(keys, ", ")})
	}

	tmpl, err := template.New("help").Parse(c.HelpTextTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse help text template: %w", err)
	}

	var b bytes.Buffer

	err = tmpl.Execute(&b, tmplData)
	if err != nil {
		return "", fmt.Errorf("failed to render help text: %w", err)
	}

	return b.String(), nil
}

func (f *FinanceCalendar) getHelpPage() *tview.TextView {
	f.HelpTextView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)

	f.HelpTextView.SetBorder(true).SetTitle(f.T["HelpTitle"])

	return f.HelpTextView
}

func (f *FinanceCalendar) showHelp() {
	text, err := getHelpText(f.T, f.Colors, f.ActionBindings)
	if err != nil {
		f.Log.WithError(err).Error("failed to build help text")
		text = err.Error()
	}

	f.HelpTextView.SetText(text).ScrollToBeginning()

	f.PrevPage, _ = f.Pages.GetFrontPage()
	f.Pages.SwitchToPage(c.PageHelp)
	f.App.SetFocus(f.HelpTextView)
}
