// Package roster implements spec.md §4.7's Orchestrator (C7): the single
// entry point that turns raw Inputs into a projected Grid or a typed
// diagnostic, wiring together every other internal package.
package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ricferreira/roster-optimizer/internal/builder"
	"github.com/ricferreira/roster-optimizer/internal/calendar"
	"github.com/ricferreira/roster-optimizer/internal/history"
	"github.com/ricferreira/roster-optimizer/internal/models"
	"github.com/ricferreira/roster-optimizer/internal/normalize"
	"github.com/ricferreira/roster-optimizer/internal/project"
	"github.com/ricferreira/roster-optimizer/internal/solver"
)

// BackendFactory produces a fresh solver.Backend for one run.
type BackendFactory func() solver.Backend

// Orchestrator wires normalize -> builder -> solver -> project for one
// optimization run, per spec.md §4.7.
type Orchestrator struct {
	Backend      BackendFactory
	History      *history.Store // nil: no store load or append; Inputs.SpecialHistory is still used
	SolveTimeout time.Duration
	Logger       zerolog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the default
// branch-and-bound solver. store may be nil (history tracking disabled).
func NewOrchestrator(store *history.Store, solveTimeout time.Duration, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		Backend:      func() solver.Backend { return solver.NewBranchAndBoundBackend() },
		History:      store,
		SolveTimeout: solveTimeout,
		Logger:       logger,
	}
}

// Run executes one optimization for in, returning the projected grid and
// any observational flags, or a typed error (InputSchemaError,
// InfeasibleModel, SolverError) per spec.md §7.
func (o *Orchestrator) Run(ctx context.Context, in models.Inputs) (project.Result, error) {
	log := o.Logger.With().Str("month_year", in.TargetMonthYear).Logger()

	if err := validateSchema(in); err != nil {
		log.Error().Err(err).Msg("input schema rejected")
		return project.Result{}, err
	}

	year, month, err := parseMonthYear(in.TargetMonthYear)
	if err != nil {
		wrapped := &InputSchemaError{Reason: err.Error()}
		log.Error().Err(wrapped).Msg("input schema rejected")
		return project.Result{}, wrapped
	}

	if o.History != nil && len(in.SpecialHistory) == 0 {
		rows, err := o.History.LoadAll()
		if err != nil {
			wrapped := fmt.Errorf("loading special history: %w", err)
			log.Error().Err(wrapped).Msg("history load failed")
			return project.Result{}, wrapped
		}
		in.SpecialHistory = rows
	}

	holidayDates := make([]string, len(in.Holidays))
	for i, h := range in.Holidays {
		holidayDates[i] = h.Date
	}
	workingDates := calendar.WorkingDates(year, month, calendar.HolidaySet(holidayDates))

	idx, err := normalize.Build(in, workingDates)
	if err != nil {
		wrapped := &InputSchemaError{Reason: err.Error()}
		log.Error().Err(wrapped).Msg("input schema rejected")
		return project.Result{}, wrapped
	}
	for _, w := range idx.Warnings {
		log.Warn().Str("reason", w.Message).Msg("semantic warning")
	}

	weights := in.EffectiveWeights()
	required := normalize.RequiredDays(len(workingDates), in.OfficePercentage)
	culprits := feasibilityPreCheck(idx, required)
	if len(culprits) > 0 {
		log.Warn().Strs("employees", culprits).Msg("feasibility pre-check flagged insufficient available seat-days")
	}

	backend := o.Backend()
	m := builder.Build(backend, idx, weights, required)

	solveCtx := ctx
	var cancel context.CancelFunc
	if o.SolveTimeout > 0 {
		solveCtx, cancel = context.WithTimeout(ctx, o.SolveTimeout)
		defer cancel()
	}

	status, err := solver.NewDriver(backend).Solve(solveCtx)
	if err != nil {
		wrapped := &SolverError{Err: err}
		log.Error().Err(wrapped).Msg("solver failed")
		return project.Result{}, wrapped
	}
	if !status.Optimal {
		wrapped := &InfeasibleModel{Culprits: culprits}
		log.Error().Err(wrapped).Msg("no feasible assignment")
		return project.Result{}, wrapped
	}

	res := project.Project(m, workingDates, in.TargetMonthYear)
	for _, flag := range res.ExclusivityFlags {
		log.Warn().Str("flag", flag).Msg("special-day exclusivity violation")
	}

	if o.History != nil {
		if err := o.History.Append(res.HistoryAppends); err != nil {
			wrapped := fmt.Errorf("appending special history: %w", err)
			log.Error().Err(wrapped).Msg("history append failed")
			return project.Result{}, wrapped
		}
	}

	log.Info().
		Int("employee_count", len(idx.Employees)).
		Int("seat_count", len(idx.Seats)).
		Str("status", "optimal").
		Msg("optimization run complete")

	return res, nil
}

func validateSchema(in models.Inputs) error {
	if in.TargetMonthYear == "" {
		return &InputSchemaError{Reason: "TargetMonthYear is required"}
	}
	if in.OfficePercentage < 0 || in.OfficePercentage > 1 {
		return &InputSchemaError{Reason: "OfficePercentage must be in [0, 1]"}
	}
	if len(in.Employees) == 0 {
		return &InputSchemaError{Reason: "EmployeeData has no rows"}
	}
	if len(in.Seats) == 0 {
		return &InputSchemaError{Reason: "SeatData has no rows"}
	}
	seen := make(map[string]bool, len(in.Employees))
	for _, e := range in.Employees {
		if e.EmployeeID == "" {
			return &InputSchemaError{Reason: "EmployeeData row missing EmployeeID"}
		}
		if seen[e.EmployeeID] {
			return &InputSchemaError{Reason: fmt.Sprintf("duplicate EmployeeID %q", e.EmployeeID)}
		}
		seen[e.EmployeeID] = true
	}
	seatSeen := make(map[string]bool, len(in.Seats))
	for _, s := range in.Seats {
		if s.SeatCode == "" {
			return &InputSchemaError{Reason: "SeatData row missing SeatCode"}
		}
		if seatSeen[s.SeatCode] {
			return &InputSchemaError{Reason: fmt.Sprintf("duplicate SeatCode %q", s.SeatCode)}
		}
		seatSeen[s.SeatCode] = true
	}
	return nil
}

func parseMonthYear(monthYear string) (int, time.Month, error) {
	t, err := time.Parse("Jan-06", monthYear)
	if err != nil {
		return 0, 0, fmt.Errorf("TargetMonthYear %q is not in Mmm-YY form: %w", monthYear, err)
	}
	return t.Year(), t.Month(), nil
}

// feasibilityPreCheck implements Open Question 3's cheap H3/H6
// diagnostic: an employee whose total available seat-days (across every
// seat, excluding days already pinned to someone else) falls short of
// required_days can never meet the monthly quota regardless of how the
// solver runs.
func feasibilityPreCheck(idx *normalize.Index, requiredDays int) []string {
	var culprits []string
	for _, emp := range idx.Employees {
		var available int
		for _, dateStr := range dateStringsOf(idx.WorkingDates) {
			for _, seat := range idx.Seats {
				if !idx.AvailableDays[seat.Code][dateStr] {
					continue
				}
				if owner, fixed := idx.FixedAssignee(seat.Code, dateStr); fixed && owner != emp.ID {
					continue
				}
				available++
				break
			}
		}
		if available < requiredDays {
			culprits = append(culprits, emp.ID)
		}
	}
	return culprits
}

func dateStringsOf(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	return out
}
