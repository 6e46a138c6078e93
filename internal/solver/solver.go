package solver

import (
	"errors"
	"fmt"

	"svw.info/diagsudoku/internal/topology"
)

// ErrUnsolvable is returned when no assignment of digits satisfies the
// puzzle. ErrContradiction is the special case where propagation alone
// already empties a candidate set at the root; it wraps ErrUnsolvable, so
// errors.Is(err, ErrUnsolvable) covers both.
var (
	ErrUnsolvable    = errors.New("puzzle has no solution")
	ErrContradiction = fmt.Errorf("%w: contradiction during propagation", ErrUnsolvable)
)

// ConstraintSolver drives three propagation strategies (elimination,
// only-choice, naked twins) to a fixed point, then branches depth-first on
// the most constrained cell.
type ConstraintSolver struct {
	topo *topology.Topology
}

func NewConstraintSolver(t *topology.Topology) *ConstraintSolver {
	return &ConstraintSolver{topo: t}
}
