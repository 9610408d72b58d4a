package lib

import (
	"fmt"
	"sort"
	"strings"

	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchResult is a single entry that matched a search query. Index is the
// entry's position within its own collection.
type SearchResult struct {
	Entry    m.Entry
	Type     m.EntryType
	Index    int
	Distance int
}

// String renders a search result for list views.
func (r SearchResult) String() string {
	return fmt.Sprintf("%v [%v] %v", r.Entry.Date, r.Type, GetEntryText(r.Entry))
}

// SearchEntries performs a case-insensitive fuzzy search over the card and
// description of every entry. Results are ordered by match distance, then
// by date, with salaries ahead of spendings on ties.
func SearchEntries(query string, col m.Collections) []SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchResult{}
	}

	candidates := []SearchResult{}
	targets := []string{}

	for _, t := range []m.EntryType{m.Salary, m.Spending} {
		entries := col.Get(t)
		for i := range entries {
			candidates = append(candidates, SearchResult{Entry: entries[i], Type: t, Index: i})
			targets = append(targets, fmt.Sprintf("%v %v", entries[i].Card, entries[i].Description))
		}
	}

	ranks := fuzzy.RankFindFold(query, targets)
	results := make([]SearchResult, 0, len(ranks))

	for _, rank := range ranks {
		r := candidates[rank.OriginalIndex]
		r.Distance = rank.Distance
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}

		if results[i].Entry.Date != results[j].Entry.Date {
			return results[i].Entry.Date < results[j].Entry.Date
		}

		return results[i].Type == m.Salary && results[j].Type != m.Salary
	})

	return results
}
