package state

import (
	"testing"
	"time"

	"git.cmcode.dev/cmcode/finance-calendar-tui/lib"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"

	"github.com/stretchr/testify/require"
)

func day(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func emptyState() AppState {
	return New(day(2024, time.March, 1), m.Collections{Salaries: []m.Entry{}, Spendings: []m.Entry{}})
}

func TestNew(t *testing.T) {
	s := emptyState()
	require.Equal(t, 2, s.CurrentMonth)
	require.Equal(t, 2024, s.CurrentYear)
	require.Equal(t, m.Salary, s.EntryType)
	require.Nil(t, s.SelectedDate)
	require.Nil(t, s.InputDate)
	require.Equal(t, 12, s.Recurrences)
}

func TestSubmit_SingleSalary(t *testing.T) {
	s := emptyState()

	s, _ = Reduce(s, OpenForm{Date: day(2024, time.March, 15)})
	s, _ = Reduce(s, SetEntryType{Type: m.Salary})
	s, _ = Reduce(s, SetCard{Text: "Visa"})
	s, _ = Reduce(s, SetDescription{Text: "Paycheck"})
	s, _ = Reduce(s, SetRecurring{Recurring: false})

	s, effect := Reduce(s, Submit{})
	require.True(t, effect.Persist)
	require.NoError(t, effect.Err)
	require.Equal(t, []m.Entry{{Date: "2024-03-15", Card: "Visa", Description: "Paycheck"}}, s.Entries.Salaries)
	require.Empty(t, s.Entries.Spendings)

	require.Nil(t, s.InputDate)
	require.Equal(t, InputData{}, s.InputData)
}

func TestSubmit_RecurringSpending(t *testing.T) {
	s := emptyState()

	s, _ = Reduce(s, OpenForm{Date: day(2024, time.January, 31)})
	s, _ = Reduce(s, SetEntryType{Type: m.Spending})
	s, _ = Reduce(s, SetCard{Text: "Amex"})
	s, _ = Reduce(s, SetDescription{Text: "Gym"})
	s, _ = Reduce(s, SetRecurring{Recurring: true})

	s, effect := Reduce(s, Submit{})
	require.True(t, effect.Persist)
	require.NoError(t, effect.Err)
	require.Empty(t, s.Entries.Salaries)
	require.Equal(t, 13, len(s.Entries.Spendings))

	require.Equal(t, "2024-01-31", s.Entries.Spendings[0].Date)
	require.Equal(t, "2024-02-29", s.Entries.Spendings[1].Date)
	require.Equal(t, "2024-03-31", s.Entries.Spendings[2].Date)
	require.Equal(t, "2025-01-31", s.Entries.Spendings[12].Date)

	prev, err := lib.ParseDate(s.Entries.Spendings[0].Date)
	require.NoError(t, err)

	for _, e := range s.Entries.Spendings[1:] {
		require.Equal(t, "Amex", e.Card)
		require.Equal(t, "Gym", e.Description)

		d, err := lib.ParseDate(e.Date)
		require.NoError(t, err)
		require.Equal(t, 1, (d.Year()-prev.Year())*12+int(d.Month())-int(prev.Month()))
		prev = d
	}

	require.False(t, s.InputData.Recurring)
}

func TestSubmit_RecurrencesAreCapped(t *testing.T) {
	s := emptyState()
	s.Recurrences = 40

	s, _ = Reduce(s, OpenForm{Date: day(2024, time.January, 31)})
	s, _ = Reduce(s, SetRecurring{Recurring: true})

	s, effect := Reduce(s, Submit{})
	require.NoError(t, effect.Err)
	require.Len(t, s.Entries.Salaries, 13)
	require.Equal(t, "2025-01-31", s.Entries.Salaries[12].Date)

	s.Recurrences = 3
	s, _ = Reduce(s, OpenForm{Date: day(2024, time.June, 1)})
	s, _ = Reduce(s, SetRecurring{Recurring: true})
	s, _ = Reduce(s, Submit{})
	require.Len(t, s.Entries.Salaries, 17)
	require.Equal(t, "2024-09-01", s.Entries.Salaries[16].Date)
}

func TestSubmit_WithoutInputDateIsNoop(t *testing.T) {
	s := emptyState()
	s, _ = Reduce(s, SetCard{Text: "Visa"})

	after, effect := Reduce(s, Submit{})
	require.False(t, effect.Persist)
	require.Equal(t, s, after)
	require.Equal(t, 0, after.Entries.Len())
}

func TestSubmit_KeepsDuplicatesAndOrder(t *testing.T) {
	s := emptyState()

	for i := 0; i < 2; i++ {
		s, _ = Reduce(s, OpenForm{Date: day(2024, time.March, 15)})
		s, _ = Reduce(s, SetCard{Text: "Visa"})
		s, _ = Reduce(s, Submit{})
	}

	s, _ = Reduce(s, OpenForm{Date: day(2024, time.March, 1)})
	s, _ = Reduce(s, Submit{})

	require.Equal(t, 3, len(s.Entries.Salaries))
	require.Equal(t, s.Entries.Salaries[0], s.Entries.Salaries[1])
	require.Equal(t, "2024-03-01", s.Entries.Salaries[2].Date)
	require.Equal(t, "", s.Entries.Salaries[2].Card)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	base := emptyState()
	base.Entries.Salaries = make([]m.Entry, 1, 10)
	base.Entries.Salaries[0] = m.Entry{Date: "2024-03-01"}

	s, _ := Reduce(base, OpenForm{Date: day(2024, time.March, 2)})
	s, _ = Reduce(s, Submit{})

	other, _ := Reduce(base, OpenForm{Date: day(2024, time.March, 3)})
	other, _ = Reduce(other, Submit{})

	require.Equal(t, 1, len(base.Entries.Salaries))
	require.Equal(t, "2024-03-02", s.Entries.Salaries[1].Date)
	require.Equal(t, "2024-03-03", other.Entries.Salaries[1].Date)
	require.Nil(t, base.InputDate)
}

func TestSelectDay_DoesNotOpenForm(t *testing.T) {
	s := emptyState()

	s, effect := Reduce(s, SelectDay{Date: day(2024, time.March, 15).Add(13 * time.Hour)})
	require.False(t, effect.Persist)
	require.NotNil(t, s.SelectedDate)
	require.Equal(t, day(2024, time.March, 15), *s.SelectedDate)
	require.Nil(t, s.InputDate)

	s, _ = Reduce(s, CloseDetail{})
	require.Nil(t, s.SelectedDate)
}

func TestCloseForm_DiscardsDraft(t *testing.T) {
	s := emptyState()
	s, _ = Reduce(s, OpenForm{Date: day(2024, time.March, 15)})
	s, _ = Reduce(s, SetCard{Text: "Visa"})
	s, _ = Reduce(s, CloseForm{})

	require.Nil(t, s.InputDate)
	require.Equal(t, InputData{}, s.InputData)
	require.Equal(t, 0, s.Entries.Len())
}

func TestMonthNavigation(t *testing.T) {
	s := emptyState()
	s, _ = Reduce(s, GoTo{Year: 2024, Month: 11})

	s, _ = Reduce(s, NextMonth{})
	require.Equal(t, 0, s.CurrentMonth)
	require.Equal(t, 2025, s.CurrentYear)

	s, _ = Reduce(s, PrevMonth{})
	require.Equal(t, 11, s.CurrentMonth)
	require.Equal(t, 2024, s.CurrentYear)

	s, _ = Reduce(s, GoTo{Year: 2024, Month: 0})
	s, _ = Reduce(s, PrevMonth{})
	require.Equal(t, 11, s.CurrentMonth)
	require.Equal(t, 2023, s.CurrentYear)

	s, _ = Reduce(s, GoTo{Year: 2024, Month: 12})
	require.Equal(t, 0, s.CurrentMonth)
	require.Equal(t, 2025, s.CurrentYear)
}

func TestReduce_NilAction(t *testing.T) {
	s := emptyState()
	after, effect := Reduce(s, nil)
	require.Equal(t, s, after)
	require.Equal(t, Effect{}, effect)
}
