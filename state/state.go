// Package state holds the calendar's view state and the pure function that
// applies user actions to it. Nothing in here touches the terminal or the
// store; callers persist the entries whenever Reduce asks for it.
package state

import (
	"time"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	"git.cmcode.dev/cmcode/finance-calendar-tui/lib"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"
)

// InputData holds the draft fields of the add-entry form.
type InputData struct {
	Card        string
	Description string
	Recurring   bool
}

type AppState struct {
	// 0-indexed, 0 is January
	CurrentMonth int
	CurrentYear  int

	// The detail view is shown while this is set.
	SelectedDate *time.Time

	// The add-entry form is shown while this is set.
	InputDate *time.Time

	EntryType m.EntryType
	InputData InputData

	Entries m.Collections

	// Number of monthly follow-ups generated for a recurring entry.
	Recurrences int
}

// Effect describes what the caller has to do after a state change.
type Effect struct {
	// Persist is true when the entries changed and need to be saved.
	Persist bool
	// Err is set when part of an action could not be applied, for example
	// when recurrences could not be generated. The rest of the action still
	// went through.
	Err error
}

// New returns the initial state, showing the month of now.
func New(now time.Time, entries m.Collections) AppState {
	return AppState{
		CurrentMonth: int(now.Month()) - 1,
		CurrentYear:  now.Year(),
		EntryType:    m.Salary,
		Entries:      entries,
		Recurrences:  c.DefaultRecurrences,
	}
}

// Action is anything that can be passed to Reduce.
type Action interface {
	apply(s AppState) (AppState, Effect)
}

// Reduce applies a to s and returns the new state. s itself is left
// untouched, including the slices of its entry collections.
func Reduce(s AppState, a Action) (AppState, Effect) {
	if a == nil {
		return s, Effect{}
	}

	return a.apply(s)
}

func datePtr(t time.Time) *time.Time {
	d := lib.Midnight(t)

	return &d
}

// SelectDay opens the detail view for a day. It does not open the add-entry
// form.
type SelectDay struct{ Date time.Time }

func (a SelectDay) apply(s AppState) (AppState, Effect) {
	s.SelectedDate = datePtr(a.Date)

	return s, Effect{}
}

type CloseDetail struct{}

func (CloseDetail) apply(s AppState) (AppState, Effect) {
	s.SelectedDate = nil

	return s, Effect{}
}

// OpenForm opens the add-entry form for a day.
type OpenForm struct{ Date time.Time }

func (a OpenForm) apply(s AppState) (AppState, Effect) {
	s.InputDate = datePtr(a.Date)

	return s, Effect{}
}

// CloseForm discards the draft and hides the add-entry form.
type CloseForm struct{}

func (CloseForm) apply(s AppState) (AppState, Effect) {
	s.InputDate = nil
	s.InputData = InputData{}

	return s, Effect{}
}

type SetEntryType struct{ Type m.EntryType }

func (a SetEntryType) apply(s AppState) (AppState, Effect) {
	s.EntryType = a.Type

	return s, Effect{}
}

type SetCard struct{ Text string }

func (a SetCard) apply(s AppState) (AppState, Effect) {
	s.InputData.Card = a.Text

	return s, Effect{}
}

type SetDescription struct{ Text string }

func (a SetDescription) apply(s AppState) (AppState, Effect) {
	s.InputData.Description = a.Text

	return s, Effect{}
}

type SetRecurring struct{ Recurring bool }

func (a SetRecurring) apply(s AppState) (AppState, Effect) {
	s.InputData.Recurring = a.Recurring

	return s, Effect{}
}

// Submit saves the draft as a new entry on the input date. Without an input
// date this does nothing. Card and description are not validated.
type Submit struct{}

// recurrences is the number of follow-up months a recurring submission
// generates, kept within 1..MaxRecurrences.
func (s AppState) recurrences() int {
	switch {
	case s.Recurrences <= 0:
		return c.DefaultRecurrences
	case s.Recurrences > c.MaxRecurrences:
		return c.MaxRecurrences
	}

	return s.Recurrences
}

func (Submit) apply(s AppState) (AppState, Effect) {
	if s.InputDate == nil {
		return s, Effect{}
	}

	t := s.EntryType
	if t != m.Salary {
		t = m.Spending
	}

	e := m.Entry{
		Date:        lib.FormatDate(*s.InputDate),
		Card:        s.InputData.Card,
		Description: s.InputData.Description,
	}

	effect := Effect{Persist: true}
	s.Entries = s.Entries.Append(t, e)

	if s.InputData.Recurring {
		recurring, err := lib.RecurringEntries(e, s.recurrences())
		if err != nil {
			effect.Err = err
		} else {
			s.Entries = s.Entries.Append(t, recurring...)
		}
	}

	s.InputData = InputData{}
	s.InputDate = nil

	return s, effect
}

type PrevMonth struct{}

func (PrevMonth) apply(s AppState) (AppState, Effect) {
	s.CurrentYear, s.CurrentMonth = lib.PrevMonth(s.CurrentYear, s.CurrentMonth)

	return s, Effect{}
}

type NextMonth struct{}

func (NextMonth) apply(s AppState) (AppState, Effect) {
	s.CurrentYear, s.CurrentMonth = lib.NextMonth(s.CurrentYear, s.CurrentMonth)

	return s, Effect{}
}

// GoTo shows the provided year and 0-indexed month. Out of range months are
// normalized, so month 12 of 2024 is January 2025.
type GoTo struct {
	Year  int
	Month int
}

func (a GoTo) apply(s AppState) (AppState, Effect) {
	t := time.Date(a.Year, time.Month(a.Month+1), 1, 0, 0, 0, 0, time.UTC)
	s.CurrentYear = t.Year()
	s.CurrentMonth = int(t.Month()) - 1

	return s, Effect{}
}
