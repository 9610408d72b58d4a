package main

import (
	"sort"
)

// GetCombinedKeybindings returns every active key binding, composed of the
// user's key bindings merged on top of the default key bindings. A key bound
// by the user replaces the default binding for that key entirely.
//
// usage example: GetCombinedKeybindings(conf.Keybindings, c.DefaultMappings)["Ctrl+Q"] = ["quit"].
func GetCombinedKeybindings(kb map[string][]string, defaults map[string]string) map[string][]string {
	result := make(map[string][]string)

	for k, v := range defaults {
		result[k] = []string{v}
	}

	for k, v := range kb {
		result[k] = v
	}

	return result
}

// GetAllBoundActions inverts the combined key bindings so that every action
// maps to the keys that trigger it, sorted for stable display.
//
// usage example: GetAllBoundActions(combined)["quit"] = ["Ctrl+Q"].
func GetAllBoundActions(combined map[string][]string) map[string][]string {
	result := make(map[string][]string)

	for key, actions := range combined {
		for _, a := range actions {
			result[a] = append(result[a], key)
		}
	}

	for a := range result {
		sort.Strings(result[a])
	}

	return result
}
