// Package project implements spec.md §4.6: turning a solved assignment
// into the dense employee×date grid and the special-day history
// write-back.
package project

import (
	"time"

	"github.com/ricferreira/roster-optimizer/internal/builder"
	"github.com/ricferreira/roster-optimizer/internal/models"
)

var weekdayAbbrev = map[time.Weekday]string{
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thu",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
	time.Sunday:    "Sun",
}

// Result is everything the Orchestrator needs after a solved run.
type Result struct {
	Grid             models.Grid
	HistoryAppends   []models.SpecialHistoryEntry
	ExclusivityFlags []string // observational only, spec.md Open Question 1
}

// Project reads the solved model's boolean variables and produces the
// rectangular grid plus this run's special-day history entries. dates
// must be the same ascending working-date list the model was built
// against; monthYear is spec.md §6's TargetMonthYear ("Mmm-YY").
func Project(m *builder.Model, dates []time.Time, monthYear string) Result {
	var res Result

	res.Grid.DateHeader = make([]string, len(dates)+1)
	res.Grid.WeekdayHeader = make([]string, len(dates)+1)
	res.Grid.DateHeader[0] = "Employee Name"
	res.Grid.WeekdayHeader[0] = ""
	for i, d := range dates {
		res.Grid.DateHeader[i+1] = d.Format("2006-01-02")
		res.Grid.WeekdayHeader[i+1] = weekdayAbbrev[d.Weekday()]
	}

	seenHistory := make(map[string]bool)

	for _, emp := range m.Index.Employees {
		row := make([]string, len(dates)+1)
		row[0] = emp.Name

		for i, d := range dates {
			dateStr := d.Format("2006-01-02")
			seatCode := m.AssignedSeat(emp.ID, dateStr)
			row[i+1] = seatCode

			if seatCode == "" {
				continue
			}

			rule, isSpecial := m.Index.SpecialDay[dateStr]
			if !isSpecial {
				continue
			}
			if rule.SubTeam == emp.SubTeam {
				key := rule.Descriptor + "|" + emp.ID + "|" + monthYear
				if !seenHistory[key] {
					seenHistory[key] = true
					res.HistoryAppends = append(res.HistoryAppends, models.SpecialHistoryEntry{
						Descriptor: rule.Descriptor,
						EmployeeID: emp.ID,
						MonthYear:  monthYear,
					})
				}
			} else {
				res.ExclusivityFlags = append(res.ExclusivityFlags,
					"special day "+dateStr+" ("+rule.Descriptor+", "+rule.SubTeam+") seat "+seatCode+" occupied by "+emp.ID+" of sub-team "+emp.SubTeam)
			}
		}

		res.Grid.Rows = append(res.Grid.Rows, row)
	}

	return res
}
