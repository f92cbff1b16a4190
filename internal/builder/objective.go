package builder

import "github.com/ricferreira/roster-optimizer/internal/solver"

// setObjective builds spec.md §4.4's weighted maximization objective:
//
//	Σ bonus(e,s,d)·x[e,s,d] − big_penalty·Σ z[e] − consecutive_penalty·Σ y[e,d] (disallowed pairs only)
func (m *Model) setObjective(backend solver.Backend, dateStrs []string) {
	var terms []solver.Term

	historySeen := make(map[historyKey]bool, len(m.Index.History))
	for _, h := range m.Index.History {
		historySeen[historyKey{h.Descriptor, h.EmployeeID}] = true
	}

	for key, v := range m.X {
		emp := m.Index.EmpByID[key.Employee]
		if emp == nil {
			continue
		}
		bonus := m.Weights.FillBonus

		if m.Index.HasPreference(key.Employee, key.Seat) {
			bonus += m.Weights.PrefBonus
		}
		if m.Index.IsDesignated(key.Employee, key.Date) {
			bonus += m.Weights.DesignatedBonus
		}
		if rule, ok := m.Index.SpecialDay[key.Date]; ok && rule.SubTeam == emp.SubTeam {
			bonus += m.Weights.SpecialBonus
			if !historySeen[historyKey{rule.Descriptor, key.Employee}] {
				bonus += m.Weights.FairnessCoef
			}
		}

		terms = append(terms, solver.Term{Var: v, Coeff: int64(bonus)})
	}

	for _, z := range m.Z {
		terms = append(terms, solver.Term{Var: z, Coeff: -int64(m.Weights.BigPenalty)})
	}

	for _, emp := range m.Index.Employees {
		for i := 0; i+1 < len(dateStrs); i++ {
			d, dNext := dateStrs[i], dateStrs[i+1]
			y, ok := m.Y[yKey{emp.ID, d}]
			if !ok {
				continue
			}
			if !m.disallowedConsecutive(emp.ID, emp.SubTeam, d, dNext) {
				continue
			}
			terms = append(terms, solver.Term{Var: y, Coeff: -int64(m.Weights.ConsecutivePenalty)})
		}
	}

	backend.SetObjective(terms)
}

type historyKey struct {
	Descriptor string
	Employee   string
}

// disallowedConsecutive implements spec.md §4.4's disallowed_consec:
// the pair (d, d_next) is allowed iff exactly one side is a designated
// day for emp AND the other is a special day for subTeam; otherwise it
// is disallowed.
func (m *Model) disallowedConsecutive(empID, subTeam, d, dNext string) bool {
	return !m.Index.ConsecutivePairAllowed(empID, subTeam, d, dNext)
}
