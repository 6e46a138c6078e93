package generator

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/ports"
)

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle with a unique solution using seed and target
// difficulty: fill a full random solution for the variant, then carve out
// clues while uniqueness holds.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full := make(map[domain.Cell]byte, 81)
	if !g.fillRandom(ctx, rng, full, 0) {
		return nil, ports.Stats{}, context.Canceled
	}

	puz := make(map[domain.Cell]byte, 81)
	for c, d := range full {
		puz[c] = d
	}
	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for _, pos := range positions {
		if time.Now().After(deadline) {
			break
		}
		if countGivens(puz) <= target {
			break
		}
		c := g.Topo.Cells[pos]
		if puz[c] == 0 {
			continue
		}
		old := puz[c]
		puz[c] = 0
		unique, st, _ := g.Solver.Unique(ctx, g.toValues(puz))
		nodes += st.Nodes
		if !unique {
			puz[c] = old
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Variant:    g.Topo.Variant,
		Difficulty: diff,
		Grid:       g.gridString(puz),
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

func countGivens(puz map[domain.Cell]byte) int {
	n := 0
	for _, d := range puz {
		if d != 0 {
			n++
		}
	}
	return n
}

// fillRandom completes an empty grid into a full valid solution by trying
// digits in random order cell by cell, respecting all peer constraints of
// the variant.
func (g *UniqueGenerator) fillRandom(ctx context.Context, rng *rand.Rand, grid map[domain.Cell]byte, idx int) bool {
	if ctx.Err() != nil {
		return false
	}
	if idx == len(g.Topo.Cells) {
		return true
	}
	c := g.Topo.Cells[idx]
	var nums [9]byte
	for i := range nums {
		nums[i] = byte('1' + i)
	}
	rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
	for _, d := range nums {
		if g.allowed(grid, c, d) {
			grid[c] = d
			if g.fillRandom(ctx, rng, grid, idx+1) {
				return true
			}
			grid[c] = 0
		}
	}
	return false
}

// allowed reports whether no peer of c already holds d.
func (g *UniqueGenerator) allowed(grid map[domain.Cell]byte, c domain.Cell, d byte) bool {
	for _, p := range g.Topo.Peers[c] {
		if grid[p] == d {
			return false
		}
	}
	return true
}

// toValues expands a givens grid into board state for the solver.
func (g *UniqueGenerator) toValues(puz map[domain.Cell]byte) domain.Values {
	v := make(domain.Values, 81)
	for _, c := range g.Topo.Cells {
		if d := puz[c]; d != 0 {
			v[c] = string(d)
		} else {
			v[c] = domain.Digits
		}
	}
	return v
}

func (g *UniqueGenerator) gridString(puz map[domain.Cell]byte) string {
	var b strings.Builder
	b.Grow(81)
	for _, c := range g.Topo.Cells {
		if d := puz[c]; d != 0 {
			b.WriteByte(d)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
