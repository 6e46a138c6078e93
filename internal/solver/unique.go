package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/ports"
)

// Unique counts solutions up to 2 and reports whether exactly one exists.
// The propagation strategies never discard a digit that belongs to some
// solution, so the search enumerates every completion.
func (s *ConstraintSolver) Unique(ctx context.Context, g domain.Values) (bool, ports.Stats, error) {
	start := time.Now()
	st := newState(g)
	nodes, count := 0, 0
	if err := s.countSolutions(ctx, st, &nodes, &count, 2); err != nil {
		return false, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func (s *ConstraintSolver) countSolutions(ctx context.Context, st *state, nodes, count *int, limit int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if *count >= limit {
		return nil
	}
	*nodes++

	if err := s.reduce(st); err != nil {
		if errors.Is(err, ErrUnsolvable) {
			return nil // dead branch, keep counting elsewhere
		}
		return err
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
		*count++
		return nil
	}

	for i := 0; i < len(st.values[branch]); i++ {
		child := st.copy()
		child.assign(branch, string(st.values[branch][i]))
		if err := s.countSolutions(ctx, child, nodes, count, limit); err != nil {
			return err
		}
		if *count >= limit {
			return nil
		}
	}
	return nil
}
