// Package solver defines the minimal 0/1 MIP backend abstraction spec.md
// §9 calls for ("add binary variable, add integer variable with bounds,
// add linear constraint, add linear objective term, solve, read
// values. Any 0/1 MIP backend fits") and a branch-and-bound
// implementation of it.
package solver

import "context"

// Var is an opaque handle to a decision variable returned by a Backend.
// Callers never inspect it; they pass it back into Backend methods.
type Var interface {
	isVar()
}

// Term is one coefficient*variable pair of a linear expression.
type Term struct {
	Var   Var
	Coeff int64
}

// Status is the outcome of a solve attempt.
type Status int

const (
	// StatusUnknown covers any outcome a caller must treat as
	// NotOptimal per spec.md §4.4 ("Failure semantics"): infeasible,
	// timed out, or an otherwise non-optimal termination.
	StatusUnknown Status = iota
	StatusOptimal
)

// Backend is the minimal MIP-building interface spec.md §9 describes.
// internal/builder builds a model purely in terms of this interface so
// BranchAndBoundBackend can be swapped for any other 0/1 MIP solver
// without touching constraint-construction code.
type Backend interface {
	// NewBoolVar declares a binary decision variable.
	NewBoolVar(name string) Var

	// NewIntVar declares a bounded integer variable (used for the
	// designated-day slack z[e], spec.md §4.4 H4).
	NewIntVar(lower, upper int64, name string) Var

	// AddLinearConstraint adds lb <= sum(vars) <= ub, i.e. a
	// unit-coefficient constraint — the shape internal/builder uses for
	// H1, H2, H3, H5, H7 and H8's forced-zero case (H6 adds no
	// constraint: unavailable variables are never created).
	AddLinearConstraint(vars []Var, lb, ub int64)

	// AddWeightedConstraint adds lb <= sum(term.Coeff*term.Var) <= ub —
	// used where a constraint mixes bool and int vars or needs
	// non-unit coefficients (spec.md §4.4 H4, H8).
	AddWeightedConstraint(terms []Term, lb, ub int64)

	// SetObjective sets the (always maximized) weighted objective.
	SetObjective(terms []Term)

	// Solve runs the solver and returns its terminal status.
	Solve(ctx context.Context) (Status, error)

	// BoolValue reads a solved boolean variable's value. Only valid
	// after a StatusOptimal Solve.
	BoolValue(v Var) bool

	// IntValue reads a solved integer variable's value. Only valid
	// after a StatusOptimal Solve.
	IntValue(v Var) int64
}
