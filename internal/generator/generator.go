package generator

import (
	"svw.info/diagsudoku/internal/ports"
	"svw.info/diagsudoku/internal/topology"
)

// UniqueGenerator creates puzzles with a unique solution using a provided
// Solver for uniqueness checks. The topology decides which variant the
// puzzles are valid for.
type UniqueGenerator struct {
	Solver ports.Solver
	Topo   *topology.Topology
}

func NewUniqueGenerator(s ports.Solver, t *topology.Topology) *UniqueGenerator {
	return &UniqueGenerator{Solver: s, Topo: t}
}
