package lib

import (
	"testing"

	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"

	"github.com/stretchr/testify/require"
)

func TestSearchEntries(t *testing.T) {
	col := m.Collections{
		Salaries: []m.Entry{
			{Date: "2024-03-15", Card: "Visa", Description: "Paycheck"},
			{Date: "2024-02-15", Card: "Visa", Description: "Paycheck"},
		},
		Spendings: []m.Entry{
			{Date: "2024-03-02", Card: "Amex", Description: "Groceries"},
			{Date: "2024-03-15", Card: "Visa", Description: "Rent"},
		},
	}

	results := SearchEntries("paycheck", col)
	require.Equal(t, 2, len(results))
	require.Equal(t, "2024-02-15", results[0].Entry.Date)
	require.Equal(t, 1, results[0].Index)
	require.Equal(t, m.Salary, results[0].Type)
	require.Equal(t, "2024-03-15", results[1].Entry.Date)

	results = SearchEntries("GROC", col)
	require.Equal(t, 1, len(results))
	require.Equal(t, m.Spending, results[0].Type)
	require.Equal(t, "2024-03-02 [spending] Amex - Groceries", results[0].String())

	results = SearchEntries("visa", col)
	require.Equal(t, 3, len(results))

	require.Empty(t, SearchEntries("   ", col))
	require.Empty(t, SearchEntries("zzz", col))
}
