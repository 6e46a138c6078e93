package solver

import "svw.info/diagsudoku/internal/domain"

// state is one node of the search: a board plus the trace shared by every
// node of the same solve. Branches copy the board but append to the same
// trace, so it stays a chronological record of every cell that became
// fixed, including inside branches that were later abandoned.
type state struct {
	values domain.Values
	trace  *domain.Trace
}

func newState(g domain.Values) *state {
	return &state{values: g.Copy(), trace: &domain.Trace{}}
}

// copy returns an independent board for a new branch; mutations in the
// child are never visible to the parent or to sibling branches.
func (st *state) copy() *state {
	return &state{values: st.values.Copy(), trace: st.trace}
}

// assign is the only sanctioned mutation path for a cell's candidates.
// Assigning the set a cell already holds is a no-op; narrowing a cell to a
// single digit snapshots the whole board into the trace. An empty set may
// be stored while a pass finishes — the reducer is the one to notice it and
// call the board contradictory.
func (st *state) assign(c domain.Cell, cands string) {
	if st.values[c] == cands {
		return
	}
	st.values[c] = cands
	if len(cands) == 1 {
		st.trace.Steps = append(st.trace.Steps, st.values.Copy())
	}
}

// makesSense reports whether the board is still potentially solvable, i.e.
// no cell has run out of candidates.
func (st *state) makesSense() bool {
	for _, cands := range st.values {
		if len(cands) == 0 {
			return false
		}
	}
	return true
}

// totalCandidates sums candidate-set sizes across all cells. The reducer
// uses it to detect that a pass made no progress.
func (st *state) totalCandidates() int {
	n := 0
	for _, cands := range st.values {
		n += len(cands)
	}
	return n
}
