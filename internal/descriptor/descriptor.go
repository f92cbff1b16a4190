// Package descriptor resolves free-form day descriptors such as
// "1st Tue" or "Last Working Friday" against a month's working-date
// list (spec.md §4.2).
package descriptor

import (
	"strings"
	"time"
)

var occurrenceTokens = map[string]int{
	"1st":  0,
	"2nd":  1,
	"3rd":  2,
	"4th":  3,
	"5th":  4,
	"last": -1,
}

var weekdayPrefixes = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
}

// Parsed is the two salient tokens extracted from a descriptor string.
type Parsed struct {
	Occurrence int // 0-indexed position, or -1 for "last"
	Weekday    time.Weekday
	OK         bool // false if either token was absent
}

// Parse extracts the occurrence and weekday tokens from a free-form
// descriptor. Filler words ("working", "day", ...) are ignored.
// Matching is case-insensitive.
func Parse(descriptor string) Parsed {
	fields := strings.Fields(strings.ToLower(descriptor))

	occurrence := -2 // sentinel: not yet found
	var weekday time.Weekday
	haveOccurrence := false
	haveWeekday := false

	for _, f := range fields {
		if n, ok := occurrenceTokens[f]; ok && !haveOccurrence {
			occurrence = n
			haveOccurrence = true
			continue
		}
		if haveWeekday {
			continue
		}
		for prefix, wd := range weekdayPrefixes {
			if strings.HasPrefix(f, prefix) {
				weekday = wd
				haveWeekday = true
				break
			}
		}
	}

	if !haveOccurrence || !haveWeekday {
		return Parsed{OK: false}
	}
	return Parsed{Occurrence: occurrence, Weekday: weekday, OK: true}
}

// Resolve returns the concrete date a descriptor names within
// workingDates (assumed ascending, scoped to the target month), and
// whether resolution succeeded.
func Resolve(descriptorStr string, workingDates []time.Time) (time.Time, bool) {
	parsed := Parse(descriptorStr)
	if !parsed.OK {
		return time.Time{}, false
	}

	var candidates []time.Time
	for _, d := range workingDates {
		if d.Weekday() == parsed.Weekday {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return time.Time{}, false
	}

	if parsed.Occurrence == -1 {
		return candidates[len(candidates)-1], true
	}
	if parsed.Occurrence < 0 || parsed.Occurrence >= len(candidates) {
		return time.Time{}, false
	}
	return candidates[parsed.Occurrence], true
}

// Matches reports whether descriptorStr resolves to exactly date within
// workingDates (the signature spec.md §4.2 names: resolve(descriptor,
// date, working_dates) -> bool).
func Matches(descriptorStr string, date time.Time, workingDates []time.Time) bool {
	resolved, ok := Resolve(descriptorStr, workingDates)
	if !ok {
		return false
	}
	return sameDate(resolved, date)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
