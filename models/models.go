package models

import (
	"slices"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
)

// Entry is a dated salary or spending record. Entries have no identity of
// their own; two entries with identical fields are still two entries.
type Entry struct {
	Date        string `json:"date" yaml:"date"` // YYYY-MM-DD
	Card        string `json:"card" yaml:"card"`
	Description string `json:"description" yaml:"description"`
}

type EntryType string

const (
	Salary   EntryType = c.EntryTypeSalary
	Spending EntryType = c.EntryTypeSpending
)

// Collections holds the two independent entry lists in insertion order.
type Collections struct {
	Salaries  []Entry
	Spendings []Entry
}

// Get returns the collection for the provided entry type. Anything that isn't
// a salary is treated as spending.
func (col Collections) Get(t EntryType) []Entry {
	if t == Salary {
		return col.Salaries
	}

	return col.Spendings
}

// Append returns a copy of col with e added to the end of the collection
// selected by t. The receiver's slices are never written to, so older copies
// of the collections stay intact.
func (col Collections) Append(t EntryType, e ...Entry) Collections {
	if t == Salary {
		col.Salaries = append(slices.Clip(col.Salaries), e...)
	} else {
		col.Spendings = append(slices.Clip(col.Spendings), e...)
	}

	return col
}

// Len is the total number of entries across both collections.
func (col Collections) Len() int {
	return len(col.Salaries) + len(col.Spendings)
}

type StoreConfig struct {
	// Backend is one of file, sqlite or memory.
	Backend string `yaml:"backend"`
	// Path overrides the default location of the file or sqlite store.
	Path string `yaml:"path"`
}

type Config struct {
	// usage example: Keybindings["Ctrl+Z"] = ["prevMonth"].
	Keybindings map[string][]string `yaml:"keybindings"`
	Version     string              `yaml:"version"`
	Theme       string              `yaml:"theme"`
	Language    string              `yaml:"language"`
	Store       StoreConfig         `yaml:"store"`
	LogLevel    string              `yaml:"logLevel"`
	// number of monthly follow-ups generated for a recurring entry
	Recurrences int `yaml:"recurrences"`
}

type TableCell struct {
	Color  string
	Text   string
	Expand int
	Align  int
}
