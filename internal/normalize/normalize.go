// Package normalize implements spec.md §4.3: coercing raw table rows into
// canonical forms and building the indices the model builder consults
// instead of re-scanning tables (spec.md §9 "Replacement for
// cyclic/loose references").
package normalize

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ricferreira/roster-optimizer/internal/descriptor"
	"github.com/ricferreira/roster-optimizer/internal/models"
)

var weekdayAliases = map[string]string{
	"mon": "mon", "monday": "mon",
	"tue": "tue", "tuesday": "tue",
	"wed": "wed", "wednesday": "wed",
	"thu": "thu", "thursday": "thu",
	"fri": "fri", "friday": "fri",
	"sat": "sat", "saturday": "sat",
	"sun": "sun", "sunday": "sun",
}

var weekdayToCanonical = map[time.Weekday]string{
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
	time.Sunday:    "sun",
}

// CanonicalWeekday maps a short or full, any-case weekday name to its
// canonical 3-letter lowercase token.
func CanonicalWeekday(s string) (string, bool) {
	token, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(s))]
	return token, ok
}

// ParseDayList splits a comma-separated weekday list into a canonical
// token set. Unrecognized entries are skipped.
func ParseDayList(csv string) map[string]bool {
	set := make(map[string]bool)
	for _, part := range strings.Split(csv, ",") {
		if token, ok := CanonicalWeekday(part); ok {
			set[token] = true
		}
	}
	return set
}

// SubTeam trims and lower-cases a sub-team name.
func SubTeam(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Warning is a non-fatal SemanticError (spec.md §7.2): logged, never
// aborts the run.
type Warning struct {
	Message string
}

// Index holds every lookup the model builder and projector need,
// built once from normalized inputs.
type Index struct {
	WorkingDates []time.Time // ascending, target month

	Employees   []models.Employee
	EmpByID     map[string]*models.Employee
	Seats       []models.Seat
	SeatsByCode map[string]*models.Seat

	// AvailableDays[seatCode][dateStr] precomputed per spec.md §4.3.
	AvailableDays map[string]map[string]bool

	// FixedAt[(seatCode,dateStr)] = employeeID, for seats with Kind == Fixed.
	FixedAt map[seatDateKey]string

	// DesignatedDates[empID] = set of working dateStr in the employee's
	// sub-team's designated-day set.
	DesignatedDates map[string]map[string]bool

	// SpecialDay[dateStr] = resolved rule, first-matching-row wins.
	SpecialDay map[string]models.SpecialDayRule

	// Preferences[(empID,seatCode)] = true.
	Preferences map[prefKey]bool

	History []models.SpecialHistoryEntry

	Warnings []Warning
}

type seatDateKey struct {
	Seat string
	Date string
}

type prefKey struct {
	Employee string
	Seat     string
}

// Build normalizes raw inputs into an Index, scoped to workingDates (the
// output of calendar.WorkingDates for the target month).
func Build(in models.Inputs, workingDates []time.Time) (*Index, error) {
	idx := &Index{
		WorkingDates:    workingDates,
		EmpByID:         make(map[string]*models.Employee),
		SeatsByCode:     make(map[string]*models.Seat),
		AvailableDays:   make(map[string]map[string]bool),
		FixedAt:         make(map[seatDateKey]string),
		DesignatedDates: make(map[string]map[string]bool),
		SpecialDay:      make(map[string]models.SpecialDayRule),
		Preferences:     make(map[prefKey]bool),
	}

	dateStrs := make([]string, len(workingDates))
	for i, d := range workingDates {
		dateStrs[i] = d.Format("2006-01-02")
	}

	// Employees.
	for _, row := range in.Employees {
		emp := models.Employee{
			ID:      row.EmployeeID,
			Name:    row.EmployeeName,
			SubTeam: SubTeam(row.SubTeam),
		}
		idx.Employees = append(idx.Employees, emp)
	}
	for i := range idx.Employees {
		idx.EmpByID[idx.Employees[i].ID] = &idx.Employees[i]
	}

	// Seats.
	for _, row := range in.Seats {
		days := ParseDayList(row.Days)
		if len(days) == 0 {
			idx.Warnings = append(idx.Warnings, Warning{
				Message: fmt.Sprintf("seat %s: empty Days list", row.SeatCode),
			})
		}
		kind := models.SeatFlexible
		if strings.EqualFold(strings.TrimSpace(row.SeatType), "fixed") {
			kind = models.SeatFixed
		}
		seat := models.Seat{
			Code:               row.SeatCode,
			Kind:               kind,
			AvailableDays:      days,
			AssignedEmployeeID: row.AssignedEmployeeID,
		}
		idx.Seats = append(idx.Seats, seat)
	}
	for i := range idx.Seats {
		s := &idx.Seats[i]
		idx.SeatsByCode[s.Code] = s

		avail := make(map[string]bool, len(dateStrs))
		for j, d := range workingDates {
			token := weekdayToCanonical[d.Weekday()]
			avail[dateStrs[j]] = s.AvailableDays[token]
		}
		idx.AvailableDays[s.Code] = avail

		if s.Kind == models.SeatFixed {
			if _, ok := idx.EmpByID[s.AssignedEmployeeID]; !ok {
				idx.Warnings = append(idx.Warnings, Warning{
					Message: fmt.Sprintf("seat %s: fixed assignee %q not found in EmployeeData", s.Code, s.AssignedEmployeeID),
				})
				continue
			}
			for j, d := range workingDates {
				if avail[dateStrs[j]] {
					idx.FixedAt[seatDateKey{s.Code, d.Format("2006-01-02")}] = s.AssignedEmployeeID
				}
			}
		}
	}

	// SubTeamOfficeDays: union across rows.
	subTeamDays := make(models.SubTeamOfficeDays)
	for _, row := range in.SubTeamOfficeDays {
		team := SubTeam(row.SubTeam)
		if subTeamDays[team] == nil {
			subTeamDays[team] = make(map[string]bool)
		}
		for token := range ParseDayList(row.OfficeDays) {
			subTeamDays[team][token] = true
		}
	}
	for _, emp := range idx.Employees {
		designated := subTeamDays[emp.SubTeam]
		if len(designated) == 0 {
			continue
		}
		dates := make(map[string]bool)
		for j, d := range workingDates {
			token := weekdayToCanonical[d.Weekday()]
			if designated[token] {
				dates[dateStrs[j]] = true
			}
		}
		if len(dates) > 0 {
			idx.DesignatedDates[emp.ID] = dates
		}
	}

	// SpecialSubTeamDays: resolve each rule; first matching row wins per date.
	for _, row := range in.SpecialSubTeamDays {
		resolved, ok := descriptor.Resolve(row.DayDescriptor, workingDates)
		if !ok {
			idx.Warnings = append(idx.Warnings, Warning{
				Message: fmt.Sprintf("special day rule %q (%s): does not resolve within target month", row.DayDescriptor, row.SubTeam),
			})
			continue
		}
		key := resolved.Format("2006-01-02")
		if _, taken := idx.SpecialDay[key]; taken {
			continue // first matching row wins
		}
		idx.SpecialDay[key] = models.SpecialDayRule{
			Descriptor: row.DayDescriptor,
			SubTeam:    SubTeam(row.SubTeam),
		}
	}

	// SeatPreferences.
	for _, row := range in.SeatPreferences {
		idx.Preferences[prefKey{row.EmployeeID, row.SeatCode}] = true
	}

	// SpecialHistory (optional; absent == empty, already nil-safe).
	for _, row := range in.SpecialHistory {
		idx.History = append(idx.History, models.SpecialHistoryEntry{
			Descriptor: row.Descriptor,
			EmployeeID: row.EmployeeID,
			MonthYear:  row.MonthYear,
		})
	}

	return idx, nil
}

// RequiredDays returns round(len(workingDates) * officePercentage),
// spec.md §3 invariant 5. Ties round to even, matching the original
// implementation's Python round() rather than round-half-up.
func RequiredDays(workingDateCount int, officePercentage float64) int {
	return int(math.RoundToEven(float64(workingDateCount) * officePercentage))
}

// FixedAssignee returns the employee pinned to (seatCode, dateStr) by a
// fixed seat, if any.
func (idx *Index) FixedAssignee(seatCode, dateStr string) (string, bool) {
	id, ok := idx.FixedAt[seatDateKey{seatCode, dateStr}]
	return id, ok
}

// HasFixedObligation reports whether emp occupies any fixed seat on any
// working date (spec.md §4.4 H7's "employees not fixed anywhere").
func (idx *Index) HasFixedObligation(empID string) bool {
	for _, owner := range idx.FixedAt {
		if owner == empID {
			return true
		}
	}
	return false
}

// HasPreference reports whether (empID, seatCode) is a registered seat
// preference.
func (idx *Index) HasPreference(empID, seatCode string) bool {
	return idx.Preferences[prefKey{empID, seatCode}]
}

// IsDesignated reports whether dateStr is a designated day for empID.
func (idx *Index) IsDesignated(empID, dateStr string) bool {
	dates := idx.DesignatedDates[empID]
	return dates != nil && dates[dateStr]
}

// ConsecutivePairAllowed implements spec.md §4.4's exception: the pair
// (d, dNext) is allowed iff exactly one side is a designated day for
// empID AND the other is a special day whose sub-team equals subTeam.
func (idx *Index) ConsecutivePairAllowed(empID, subTeam, d, dNext string) bool {
	dIsDesignated := idx.IsDesignated(empID, d)
	nextIsDesignated := idx.IsDesignated(empID, dNext)
	dRule, dHasRule := idx.SpecialDay[d]
	nextRule, nextHasRule := idx.SpecialDay[dNext]
	dIsSpecial := dHasRule && dRule.SubTeam == subTeam
	nextIsSpecial := nextHasRule && nextRule.SubTeam == subTeam

	exactlyOneDesignated := dIsDesignated != nextIsDesignated
	oneSideDesignatedOtherSpecial := exactlyOneDesignated &&
		((dIsDesignated && nextIsSpecial) || (nextIsDesignated && dIsSpecial))
	return oneSideDesignatedOtherSpecial
}

// SpecialDatesFor returns the set of working dateStr whose special[d]
// sub-team equals subTeam (spec.md §4.4 H7's special_days_of_e).
func (idx *Index) SpecialDatesFor(subTeam string) map[string]bool {
	dates := make(map[string]bool)
	for dateStr, rule := range idx.SpecialDay {
		if rule.SubTeam == subTeam {
			dates[dateStr] = true
		}
	}
	return dates
}
