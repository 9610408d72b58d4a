package main

import (
	"testing"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"

	"github.com/stretchr/testify/require"
)

func TestGetCombinedKeybindings(t *testing.T) {
	combined := GetCombinedKeybindings(map[string][]string{
		"Ctrl+Q":  {c.ActionSave, c.ActionQuit},
		"Rune[n]": {c.ActionNextMonth},
	}, c.DefaultMappings)

	require.Equal(t, []string{c.ActionSave, c.ActionQuit}, combined["Ctrl+Q"])
	require.Equal(t, []string{c.ActionNextMonth}, combined["Rune[n]"])
	require.Equal(t, []string{c.ActionPrevMonth}, combined["Rune[[]"])
	require.Len(t, combined, len(c.DefaultMappings)+1)
}

func TestGetAllBoundActions(t *testing.T) {
	bound := GetAllBoundActions(GetCombinedKeybindings(nil, c.DefaultMappings))

	require.Equal(t, []string{"Ctrl+P", "Rune[[]"}, bound[c.ActionPrevMonth])
	require.Equal(t, []string{"Ctrl+F", "Rune[/]"}, bound[c.ActionSearch])

	// every action on the help page has a default key
	for _, a := range c.AllActions {
		require.NotEmpty(t, bound[a], a)
	}
}

func TestGetHelpText(t *testing.T) {
	bound := GetAllBoundActions(GetCombinedKeybindings(nil, c.DefaultMappings))

	text, err := getHelpText(testT(t), map[string]string{c.ColorDayBoth: "purple"}, bound)
	require.NoError(t, err)
	require.Contains(t, text, "[gold]prevMonth[white]: Ctrl+P, [")
	require.Contains(t, text, "salary + spending")
	require.Contains(t, text, "[purple:purple]")

	text, err = getHelpText(testT(t), nil, map[string][]string{})
	require.NoError(t, err)
	require.Contains(t, text, "[gold]quit[white]: -")
}

func TestDisplayKey(t *testing.T) {
	require.Equal(t, "a", displayKey("Rune[a]"))
	require.Equal(t, "Ctrl+Q", displayKey("Ctrl+Q"))
	require.Equal(t, "/", displayKey("Rune[/]"))
}
