package builder

import "github.com/ricferreira/roster-optimizer/internal/solver"

// H1: seat capacity — at most one employee per (seat, date).
func (m *Model) addH1SeatCapacity(backend solver.Backend, dateStrs []string) {
	for _, seat := range m.Index.Seats {
		for _, dateStr := range dateStrs {
			var vars []solver.Var
			for _, emp := range m.Index.Employees {
				if v, ok := m.X[xKey{emp.ID, seat.Code, dateStr}]; ok {
					vars = append(vars, v)
				}
			}
			if len(vars) == 0 {
				continue
			}
			backend.AddLinearConstraint(vars, 0, 1)
			m.ConstraintCounts["H1"]++
		}
	}
}

// H2: one seat per employee per day.
func (m *Model) addH2OneSeatPerEmployee(backend solver.Backend, dateStrs []string) {
	for _, emp := range m.Index.Employees {
		for _, dateStr := range dateStrs {
			var vars []solver.Var
			for _, seat := range m.Index.Seats {
				if v, ok := m.X[xKey{emp.ID, seat.Code, dateStr}]; ok {
					vars = append(vars, v)
				}
			}
			if len(vars) == 0 {
				continue
			}
			backend.AddLinearConstraint(vars, 0, 1)
			m.ConstraintCounts["H2"]++
		}
	}
}

// H3: monthly quota — total assigned days >= required_days, per employee.
func (m *Model) addH3MonthlyQuota(backend solver.Backend, dateStrs []string, requiredDays int) {
	for _, emp := range m.Index.Employees {
		var vars []solver.Var
		for _, seat := range m.Index.Seats {
			for _, dateStr := range dateStrs {
				if v, ok := m.X[xKey{emp.ID, seat.Code, dateStr}]; ok {
					vars = append(vars, v)
				}
			}
		}
		backend.AddLinearConstraint(vars, int64(requiredDays), noUpperBound)
		m.ConstraintCounts["H3"]++
	}
}

// H4: designated-day target with slack. Only defined for employees with
// a nonempty designated_dates set.
func (m *Model) addH4DesignatedTarget(backend solver.Backend) {
	for empID, dates := range m.Index.DesignatedDates {
		z, hasZ := m.Z[empID]
		if !hasZ {
			continue
		}
		var terms []solver.Term
		for dateStr := range dates {
			for _, seat := range m.Index.Seats {
				if v, ok := m.X[xKey{empID, seat.Code, dateStr}]; ok {
					terms = append(terms, solver.Term{Var: v, Coeff: 1})
				}
			}
		}
		terms = append(terms, solver.Term{Var: z, Coeff: 1})
		backend.AddWeightedConstraint(terms, int64(m.Weights.DesignatedMin), noUpperBound)
		m.ConstraintCounts["H4"]++
	}
}

// H5: fixed-seat pinning — the fixed assignee occupies (s,d); nobody
// else does. Because only the assignee's x[e,s,d] variable exists for a
// fixed seat's available dates (every other employee's x[e,s,d] was
// never created for that seat/date at all by Build's fixed-seat check,
// so it appears in no sum), pinning the assignee to 1 fully expresses H5.
func (m *Model) addH5FixedPinning(backend solver.Backend, dateStrs []string) {
	for key, empID := range m.Index.FixedAt {
		v, ok := m.X[xKey{empID, key.Seat, key.Date}]
		if !ok {
			continue
		}
		backend.AddLinearConstraint([]solver.Var{v}, 1, 1)
		m.ConstraintCounts["H5"]++
	}
}

// H7: flexible upper bound on non-special days, for employees with no
// fixed obligations anywhere.
func (m *Model) addH7FlexibleUpperBound(backend solver.Backend, dateStrs []string, requiredDays int) {
	for _, emp := range m.Index.Employees {
		if m.Index.HasFixedObligation(emp.ID) {
			continue
		}
		specialDates := m.Index.SpecialDatesFor(emp.SubTeam)

		var vars []solver.Var
		for _, seat := range m.Index.Seats {
			for _, dateStr := range dateStrs {
				if specialDates[dateStr] {
					continue
				}
				if v, ok := m.X[xKey{emp.ID, seat.Code, dateStr}]; ok {
					vars = append(vars, v)
				}
			}
		}
		if len(vars) == 0 {
			continue
		}
		backend.AddLinearConstraint(vars, 0, int64(requiredDays))
		m.ConstraintCounts["H7"]++
	}
}

// H8: consecutive-day linearization. y[e,d] = a(e,d) AND a(e,d_next),
// where a(e,d) = sum_s x[e,s,d]. Because of H2, a(e,d) in {0,1}.
func (m *Model) addH8ConsecutiveLinearization(backend solver.Backend, dateStrs []string) {
	for _, emp := range m.Index.Employees {
		for i := 0; i+1 < len(dateStrs); i++ {
			d, dNext := dateStrs[i], dateStrs[i+1]
			y, ok := m.Y[yKey{emp.ID, d}]
			if !ok {
				continue
			}

			aD := m.occupancyTerms(emp.ID, d)
			aDNext := m.occupancyTerms(emp.ID, dNext)
			if len(aD) == 0 || len(aDNext) == 0 {
				// employee can never occupy a seat on one side of the
				// pair: y is forced to 0.
				backend.AddLinearConstraint([]solver.Var{y}, 0, 0)
				m.ConstraintCounts["H8"]++
				continue
			}

			// y <= a(e,d)  <=>  a(e,d) - y >= 0
			backend.AddWeightedConstraint(negate(aD, y), 0, noUpperBound)
			// y <= a(e,d_next)  <=>  a(e,d_next) - y >= 0
			backend.AddWeightedConstraint(negate(aDNext, y), 0, noUpperBound)
			// y >= a(e,d) + a(e,d_next) - 1  <=>  a(e,d)+a(e,d_next)-y <= 1
			combined := append(append([]solver.Term{}, aD...), aDNext...)
			backend.AddWeightedConstraint(negate(combined, y), noLowerBound, 1)

			m.ConstraintCounts["H8"] += 3
		}
	}
}

// occupancyTerms returns the unit-coefficient terms summing to a(e,d).
func (m *Model) occupancyTerms(empID, dateStr string) []solver.Term {
	var terms []solver.Term
	for _, seat := range m.Index.Seats {
		if v, ok := m.X[xKey{empID, seat.Code, dateStr}]; ok {
			terms = append(terms, solver.Term{Var: v, Coeff: 1})
		}
	}
	return terms
}

func negate(terms []solver.Term, minus solver.Var) []solver.Term {
	out := append(append([]solver.Term{}, terms...), solver.Term{Var: minus, Coeff: -1})
	return out
}
