// Package calendar computes the working-date list for a (year, month),
// the input every other component of the optimizer is indexed against.
package calendar

import "time"

// WorkingDates returns every date in (year, month) whose weekday is
// Monday through Friday and which is not present in holidays. The list
// is ascending. holidays entries are "YYYY-MM-DD" strings matching the
// PublicHolidays table (spec.md §6).
func WorkingDates(year int, month time.Month, holidays map[string]bool) []time.Time {
	var dates []time.Time

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		if holidays[d.Format("2006-01-02")] {
			continue
		}
		dates = append(dates, d)
	}

	return dates
}

// HolidaySet builds the lookup map WorkingDates expects from a slice of
// "YYYY-MM-DD" date strings.
func HolidaySet(dates []string) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set
}
