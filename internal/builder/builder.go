// Package builder implements spec.md §4.4: translating a normalized
// Index into decision variables, hard constraints H1-H8, and the
// weighted objective, against the solver.Backend abstraction.
package builder

import (
	"time"

	"github.com/ricferreira/roster-optimizer/internal/models"
	"github.com/ricferreira/roster-optimizer/internal/normalize"
	"github.com/ricferreira/roster-optimizer/internal/solver"
)

// Large sentinel bounds standing in for "no lower/upper bound" in
// constraints the spec states as one-sided inequalities. Every variable
// in this model is itself bounded (bool in {0,1}, z in a small integer
// range), so these sentinels are never loose enough to admit a value a
// real bound would have excluded.
const (
	noLowerBound int64 = -1_000_000
	noUpperBound int64 = 1_000_000
)

// Model holds every variable handle the Result Projector (C6) needs to
// read back, plus per-family constraint counts.
type Model struct {
	Backend  solver.Backend
	Index    *normalize.Index
	Weights  models.Weights

	X map[xKey]solver.Var // employee, seat, date -> x[e,s,d]
	Z map[string]solver.Var // employee -> z[e], only where designated_dates nonempty
	Y map[yKey]solver.Var // employee, date -> y[e,d]

	// ConstraintCounts records how many constraints of each family were
	// added. internal/roster's feasibility pre-check does not read it; it
	// works from the Index directly.
	ConstraintCounts map[string]int
}

type xKey struct {
	Employee string
	Seat     string
	Date     string
}

type yKey struct {
	Employee string
	Date     string
}

// Build constructs the full ILP against backend and returns the handles
// needed to read a solved assignment. requiredDays is spec.md §3's
// required_days, precomputed by the caller (normalize.RequiredDays)
// since it depends only on workingDateCount and officePercentage.
func Build(backend solver.Backend, idx *normalize.Index, weights models.Weights, requiredDays int) *Model {
	m := &Model{
		Backend:          backend,
		Index:            idx,
		Weights:          weights,
		X:                make(map[xKey]solver.Var),
		Z:                make(map[string]solver.Var),
		Y:                make(map[yKey]solver.Var),
		ConstraintCounts: make(map[string]int),
	}

	dateStrs := dateStrings(idx.WorkingDates)

	// --- decision variables ---

	// x[e,s,d], only where the seat is available on that date (H6 is
	// then automatically satisfied: the variable simply never exists).
	// For a fixed seat's available dates, only the assignee's variable
	// is created at all — no other employee's x[e,s,d] exists, which is
	// what makes H5 ("no other employee does") structural rather than
	// an explicit constraint.
	for _, emp := range idx.Employees {
		for _, seat := range idx.Seats {
			avail := idx.AvailableDays[seat.Code]
			for _, dateStr := range dateStrs {
				if !avail[dateStr] {
					continue
				}
				if seat.Kind == models.SeatFixed {
					if owner, ok := idx.FixedAssignee(seat.Code, dateStr); !ok || owner != emp.ID {
						continue
					}
				}
				name := "x_" + emp.ID + "_" + seat.Code + "_" + dateStr
				m.X[xKey{emp.ID, seat.Code, dateStr}] = backend.NewBoolVar(name)
			}
		}
	}

	// z[e], only for employees with a nonempty designated-day set.
	for empID, dates := range idx.DesignatedDates {
		if len(dates) == 0 {
			continue
		}
		m.Z[empID] = backend.NewIntVar(0, int64(weights.DesignatedMin), "z_"+empID)
	}

	// y[e,d] for every employee and every consecutive working-date pair.
	for _, emp := range idx.Employees {
		for i := 0; i+1 < len(dateStrs); i++ {
			m.Y[yKey{emp.ID, dateStrs[i]}] = backend.NewBoolVar("y_" + emp.ID + "_" + dateStrs[i])
		}
	}

	// --- hard constraints ---
	m.addH1SeatCapacity(backend, dateStrs)
	m.addH2OneSeatPerEmployee(backend, dateStrs)
	m.addH3MonthlyQuota(backend, dateStrs, requiredDays)
	m.addH4DesignatedTarget(backend)
	m.addH5FixedPinning(backend, dateStrs)
	// H6 is structural (see variable construction above); H7 and H8 remain.
	m.addH7FlexibleUpperBound(backend, dateStrs, requiredDays)
	m.addH8ConsecutiveLinearization(backend, dateStrs)

	// --- objective ---
	m.setObjective(backend, dateStrs)

	return m
}

// AssignedSeat returns the seat code empID is assigned to on dateStr in
// the solved backend, or "" if none (H2 guarantees at most one).
func (m *Model) AssignedSeat(empID, dateStr string) string {
	for _, seat := range m.Index.Seats {
		v, ok := m.X[xKey{empID, seat.Code, dateStr}]
		if !ok {
			continue
		}
		if m.Backend.BoolValue(v) {
			return seat.Code
		}
	}
	return ""
}

func dateStrings(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	return out
}
