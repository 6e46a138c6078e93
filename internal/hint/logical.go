package hint

import (
	"context"
	"fmt"
	"strings"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/topology"
)

// Logical implements a Hinter that suggests the next deduction a player
// could make: naked singles first, then naked pairs if the tier allows.
type Logical struct {
	topo *topology.Topology
}

func NewLogical(t *topology.Topology) *Logical { return &Logical{topo: t} }

func (h *Logical) Hint(ctx context.Context, g domain.Values, max domain.StrategyTier) (domain.Hint, bool, error) {
	for _, c := range h.topo.Cells {
		if len(g[c]) == 1 {
			continue
		}
		cands := h.candidates(g, c)
		if len(cands) == 1 {
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %s fits in %s", cands, c),
				Cells:    []domain.Cell{c},
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}
	if max < domain.StrategyPairs {
		return domain.Hint{}, false, nil
	}
	return h.nakedPair(g)
}

// nakedPair looks for two cells of one unit confined to the same two
// digits while a third cell of the unit still carries one of them.
func (h *Logical) nakedPair(g domain.Values) (domain.Hint, bool, error) {
	for _, u := range h.topo.Units {
		seen := make(map[string]domain.Cell, 9)
		for _, c := range u {
			if len(g[c]) == 1 {
				continue
			}
			cands := h.candidates(g, c)
			if len(cands) != 2 {
				continue
			}
			first, ok := seen[cands]
			if !ok {
				seen[cands] = c
				continue
			}
			if !h.pairExcludes(g, u, first, c, cands) {
				continue
			}
			return domain.Hint{
				Message:  fmt.Sprintf("Naked pair: %s and %s keep %s out of the rest of their unit", first, c, cands),
				Cells:    []domain.Cell{first, c},
				Strategy: domain.StrategyPairs,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// pairExcludes reports whether the pair actually removes anything, i.e.
// some other cell of the unit still carries one of the pair digits.
func (h *Logical) pairExcludes(g domain.Values, u domain.Unit, a, b domain.Cell, pair string) bool {
	for _, c := range u {
		if c == a || c == b || len(g[c]) == 1 {
			continue
		}
		cands := h.candidates(g, c)
		for i := 0; i < len(pair); i++ {
			if strings.IndexByte(cands, pair[i]) >= 0 {
				return true
			}
		}
	}
	return false
}

// candidates narrows a cell's recorded set by the fixed values of its peers.
func (h *Logical) candidates(g domain.Values, c domain.Cell) string {
	cands := g[c]
	for _, p := range h.topo.Peers[c] {
		if v := g[p]; len(v) == 1 {
			cands = strings.Replace(cands, v, "", 1)
		}
	}
	return cands
}
