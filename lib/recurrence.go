package lib

import (
	"fmt"
	"time"

	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"

	"github.com/teambition/rrule-go"
)

// the shortest month has 28 days; any day above this can fall off the end
// of a month
const minMonthLength = 28

// monthDayOptions returns the BYMONTHDAY/BYSETPOS pair for a base day of the
// month. Days that exist in every month are used as-is. Later days are
// expressed as "the last of 28..day", which is the base day when the month is
// long enough and the month's final day otherwise.
func monthDayOptions(day int) ([]int, []int) {
	if day <= minMonthLength {
		return []int{day}, nil
	}

	days := []int{}
	for d := minMonthLength; d <= day; d++ {
		days = append(days, d)
	}

	return days, []int{-1}
}

// MonthlyDates returns count dates following base, one per month, at +1 to
// +count months. The base day of the month is clamped to the last day of
// shorter months, so Jan 31 is followed by Feb 28 (or 29), then Mar 31.
func MonthlyDates(base time.Time, count int) ([]time.Time, error) {
	if count <= 0 {
		return []time.Time{}, nil
	}

	base = Midnight(base)
	byMonthDay, bySetPos := monthDayOptions(base.Day())

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:       rrule.MONTHLY,
		Interval:   1,
		Dtstart:    base,
		Count:      count + 1,
		Bymonthday: byMonthDay,
		Bysetpos:   bySetPos,
	})
	if err != nil {
		return []time.Time{}, fmt.Errorf("failed to construct monthly rrule from %v: %w", FormatDate(base), err)
	}

	all := r.All()

	// the first occurrence is the base date itself
	if len(all) > 0 && all[0].Equal(base) {
		all = all[1:]
	}

	if len(all) > count {
		all = all[:count]
	}

	return all, nil
}

// RecurringEntries creates count independent copies of base, each dated one
// month after the previous one.
func RecurringEntries(base m.Entry, count int) ([]m.Entry, error) {
	start, err := ParseDate(base.Date)
	if err != nil {
		return []m.Entry{}, fmt.Errorf("failed to parse recurring entry date: %w", err)
	}

	dates, err := MonthlyDates(start, count)
	if err != nil {
		return []m.Entry{}, err
	}

	result := make([]m.Entry, 0, len(dates))

	for _, dt := range dates {
		e := base
		e.Date = FormatDate(dt)
		result = append(result, e)
	}

	return result, nil
}
