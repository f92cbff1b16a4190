package solver

import (
	"context"
	"errors"
)

// Result is the outcome of a Driver.Solve call.
type Result struct {
	Optimal bool
	Backend Backend // valid (readable) only when Optimal
}

// Driver is the thin contract spec.md §4.5 names: given a built model,
// return either Optimal(assignment) or NotOptimal. It adds no solving
// logic of its own — callers read values straight off Backend.
type Driver struct {
	Backend Backend
}

// NewDriver wraps an already-built Backend (spec.md §4.4's model has
// already been constructed against it by internal/builder).
func NewDriver(backend Backend) *Driver {
	return &Driver{Backend: backend}
}

// Solve runs the backend's solver. Any non-optimal termination —
// infeasible, or ctx's deadline reached without an optimum — is
// reported as NotOptimal (spec.md §4.5), never as a partial solution.
func (d *Driver) Solve(ctx context.Context) (Result, error) {
	status, err := d.Backend.Solve(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{Optimal: false}, nil
		}
		return Result{}, err
	}
	if status != StatusOptimal {
		return Result{Optimal: false}, nil
	}
	return Result{Optimal: true, Backend: d.Backend}, nil
}
