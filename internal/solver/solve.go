package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/ports"
)

// Solve reduces the board via constraint propagation and depth-first search.
// On success it returns the solved board and the trace of every assignment
// that fixed a cell. Unsolvable input yields ErrUnsolvable (or the wrapped
// ErrContradiction when propagation alone disproves the givens); this is an
// expected outcome, not a fault.
func (s *ConstraintSolver) Solve(ctx context.Context, g domain.Values) (domain.Values, *domain.Trace, ports.Stats, error) {
	start := time.Now()
	st := newState(g)
	nodes := 0
	out, err := s.search(ctx, st, &nodes)
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, st.trace, stats, err
	}
	return out.values, st.trace, stats, nil
}

// reduce applies only-choice, elimination, and naked twins in sequence until
// the total candidate count stops shrinking (a fixed point) or some cell
// runs out of candidates (a contradiction).
func (s *ConstraintSolver) reduce(st *state) error {
	for st.makesSense() {
		before := st.totalCandidates()
		s.onlyChoice(st)
		s.eliminate(st)
		s.nakedTwins(st)
		if st.totalCandidates() == before {
			return nil
		}
	}
	return ErrContradiction
}

// search is one node of the depth-first search: reduce to a fixed point,
// succeed if everything is fixed, otherwise branch on the unfixed cell with
// the fewest candidates (ties broken by scan order) and try its digits in
// ascending order, each on an independent copy of the board.
func (s *ConstraintSolver) search(ctx context.Context, st *state, nodes *int) (*state, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	*nodes++

	if err := s.reduce(st); err != nil {
		return nil, err
	}

	var branch domain.Cell
	best := len(domain.Digits) + 1
	for _, c := range s.topo.Cells {
		if n := len(st.values[c]); n > 1 && n < best {
			best = n
			branch = c
		}
	}
	if branch == "" {
		return st, nil
	}

	for i := 0; i < len(st.values[branch]); i++ {
		d := st.values[branch][i]
		child := st.copy()
		child.assign(branch, string(d))
		out, err := s.search(ctx, child, nodes)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, ErrUnsolvable) {
			return nil, err // context cancellation, not a dead end
		}
	}
	return nil, ErrUnsolvable
}
