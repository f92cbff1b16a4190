package solver

import "context"

// BranchAndBoundBackend is the shipped Backend implementation: a
// dependency-free depth-first search over the declared 0/1 and bounded
// integer variables, pruning a branch the moment its partial assignment
// can no longer satisfy a constraint or beat the best objective found
// so far. spec.md §9 only requires "any 0/1 MIP backend" behind this
// interface; this one needs nothing beyond the standard library, which
// matters since no Go binding for a dedicated MIP/CP-SAT solver is a
// real, fetchable module (see DESIGN.md). It targets the model sizes
// spec.md describes — a handful of employees and seats over one month —
// not the scale a dedicated solver would handle.
type BranchAndBoundBackend struct {
	vars        []varSpec
	constraints []weightedConstraint
	objective   []Term

	assignment []int64 // solution values, indexed like vars
}

type varSpec struct {
	lower, upper int64
}

type weightedConstraint struct {
	terms  []Term
	lb, ub int64
}

type bfVar struct {
	backend *BranchAndBoundBackend
	index   int
}

func (bfVar) isVar() {}

// NewBranchAndBoundBackend returns an empty model.
func NewBranchAndBoundBackend() *BranchAndBoundBackend {
	return &BranchAndBoundBackend{}
}

func (b *BranchAndBoundBackend) NewBoolVar(name string) Var {
	b.vars = append(b.vars, varSpec{lower: 0, upper: 1})
	return bfVar{b, len(b.vars) - 1}
}

func (b *BranchAndBoundBackend) NewIntVar(lower, upper int64, name string) Var {
	b.vars = append(b.vars, varSpec{lower: lower, upper: upper})
	return bfVar{b, len(b.vars) - 1}
}

func (b *BranchAndBoundBackend) AddLinearConstraint(vars []Var, lb, ub int64) {
	terms := make([]Term, len(vars))
	for i, v := range vars {
		terms[i] = Term{Var: v, Coeff: 1}
	}
	b.constraints = append(b.constraints, weightedConstraint{terms: terms, lb: lb, ub: ub})
}

func (b *BranchAndBoundBackend) AddWeightedConstraint(terms []Term, lb, ub int64) {
	b.constraints = append(b.constraints, weightedConstraint{terms: terms, lb: lb, ub: ub})
}

func (b *BranchAndBoundBackend) SetObjective(terms []Term) {
	b.objective = terms
}

// Solve performs branch-and-bound: variables are assigned in
// declaration order, and after each assignment every constraint is
// checked against the best- and worst-case contribution its still-
// unassigned terms could make, pruning the branch immediately if no
// completion could possibly satisfy it. A second bound prunes any
// branch whose remaining variables, even at their most favorable
// values, cannot beat the incumbent objective.
func (b *BranchAndBoundBackend) Solve(ctx context.Context) (Status, error) {
	n := len(b.vars)
	current := make([]int64, n)
	best := make([]int64, n)
	bestScore := int64(-1 << 62)
	found := false

	objCoeff := make([]int64, n)
	for _, t := range b.objective {
		objCoeff[t.Var.(bfVar).index] += t.Coeff
	}

	// remainingMax[i] is the best-case objective contribution of
	// variables i..n-1 on their own, used to cut off branches that
	// cannot possibly beat the incumbent.
	remainingMax := make([]int64, n+1)
	for i := n - 1; i >= 0; i-- {
		c := objCoeff[i]
		v := b.vars[i]
		var term int64
		if c >= 0 {
			term = c * v.upper
		} else {
			term = c * v.lower
		}
		remainingMax[i] = remainingMax[i+1] + term
	}

	var recurse func(i int, score int64) error
	recurse = func(i int, score int64) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if found && score+remainingMax[i] <= bestScore {
			return nil
		}

		if i == n {
			if !found || score > bestScore {
				found = true
				bestScore = score
				copy(best, current)
			}
			return nil
		}

		spec := b.vars[i]
		for v := spec.lower; v <= spec.upper; v++ {
			current[i] = v
			if !b.partialFeasible(current, i+1) {
				continue
			}
			if err := recurse(i+1, score+objCoeff[i]*v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := recurse(0, 0); err != nil {
		return StatusUnknown, err
	}
	if !found {
		return StatusUnknown, nil
	}
	b.assignment = best
	return StatusOptimal, nil
}

// partialFeasible checks every constraint against current, treating
// indices below assignedUpTo as fixed and bounding the rest by their
// own [lower, upper] range. It is a relaxation (it ignores interaction
// between constraints), so it only ever prunes branches that truly have
// no feasible completion; at assignedUpTo == len(vars) it is an exact
// feasibility check.
func (b *BranchAndBoundBackend) partialFeasible(current []int64, assignedUpTo int) bool {
	for _, c := range b.constraints {
		var sum, minRem, maxRem int64
		for _, t := range c.terms {
			idx := t.Var.(bfVar).index
			if idx < assignedUpTo {
				sum += t.Coeff * current[idx]
				continue
			}
			v := b.vars[idx]
			if t.Coeff >= 0 {
				minRem += t.Coeff * v.lower
				maxRem += t.Coeff * v.upper
			} else {
				minRem += t.Coeff * v.upper
				maxRem += t.Coeff * v.lower
			}
		}
		if sum+maxRem < c.lb || sum+minRem > c.ub {
			return false
		}
	}
	return true
}

func (b *BranchAndBoundBackend) BoolValue(v Var) bool {
	return b.assignment[v.(bfVar).index] != 0
}

func (b *BranchAndBoundBackend) IntValue(v Var) int64 {
	return b.assignment[v.(bfVar).index]
}
