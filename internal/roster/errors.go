package roster

import "fmt"

// InputSchemaError means a required table/column was missing or
// malformed — the run never reaches the solver (spec.md §7.1).
type InputSchemaError struct {
	Reason string
}

func (e *InputSchemaError) Error() string {
	return fmt.Sprintf("input schema error: %s", e.Reason)
}

// SemanticError is a non-fatal condition logged as a warning and
// otherwise skipped (spec.md §7.2) — unknown fixed-seat assignee, empty
// availability list, an unresolvable special-day descriptor. Carried as
// an error type so callers that do want to treat it as fatal can with
// errors.As, but Orchestrator.Run never returns it as the run's error.
type SemanticError struct {
	Reason string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic warning: %s", e.Reason)
}

// InfeasibleModel means the solver concluded no assignment satisfies
// every hard constraint (spec.md §7.3). Culprits, when detectable by the
// feasibility pre-check, names the employee IDs likely responsible.
type InfeasibleModel struct {
	Culprits []string
}

func (e *InfeasibleModel) Error() string {
	if len(e.Culprits) == 0 {
		return "infeasible model: no satisfying assignment found"
	}
	return fmt.Sprintf("infeasible model: likely binding on H3/H6 for employees %v", e.Culprits)
}

// SolverError wraps an unexpected failure from the solver backend itself
// (spec.md §7.4), as opposed to a legitimate infeasibility conclusion.
type SolverError struct {
	Err error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver error: %v", e.Err)
}

func (e *SolverError) Unwrap() error {
	return e.Err
}
